package avl

import (
	"errors"
)

// ErrorEmptyCollection is returned by Min and Max on an empty tree, the one
// query that has no meaningful result. All other operations on missing or
// duplicate values are defined no-ops.
var ErrorEmptyCollection = errors.New("tree is empty")
