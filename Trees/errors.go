package Trees

import "fmt"

// NotFoundError is returned when the value being deleted isn't in the tree.
// The tree is left unchanged.
type NotFoundError[T any] struct {
	V T
}

func (e *NotFoundError[T]) Error() string {
	return fmt.Sprintf("Trees: value %v not found", e.V)
}

// EmptyTreeError is returned when deleting from a tree with no nodes.
type EmptyTreeError struct {
}

func (e *EmptyTreeError) Error() string {
	return "Trees: tree is empty"
}

// InvalidValueError is the panic value of Insert when given a value that doesn't compare
// equal to itself, e.g. a floating point NaN. Such a value can't be ordered and would
// corrupt the tree.
type InvalidValueError struct {
	V any
}

func (e InvalidValueError) Error() string {
	return fmt.Sprintf("Trees: value %v is not ordered with itself", e.V)
}
