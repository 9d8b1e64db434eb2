package vector

import (
	"errors"
)

var (
	ErrorEmptyCollection = errors.New("vector is empty")
	ErrorIndexOutOfRange = errors.New("vector index is out of range")
)
