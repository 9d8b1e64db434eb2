package list

import (
	"errors"
)

var (
	ErrorEmptyCollection  = errors.New("list is empty")
	ErrorElementIsNil     = errors.New("list element is nil")
	ErrorElementNotInList = errors.New("list element is not in the list")
)
