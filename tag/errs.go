package tag

import "fmt"

// ElemKindError reports an attempt to place an element of the wrong
// kind into a homogeneous list.
type ElemKindError struct {
	List Type
	Elem Type
}

func (e *ElemKindError) Error() string {
	return fmt.Sprintf("list of %s cannot hold %s element", e.List, e.Elem)
}
