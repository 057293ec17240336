package nameindex

import "fmt"

// UnreadableError reports a name list that could not be opened or read.
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("failed to read sequence name list %s: %v", e.Path, e.Err)
}

func (e *UnreadableError) Unwrap() error { return e.Err }

// DuplicateError reports a name that appears twice in the same list.
type DuplicateError struct {
	Name string
	Path string
	Line int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("sequence name %q appears more than once in %s (again at line %d)", e.Name, e.Path, e.Line)
}
