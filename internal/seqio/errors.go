package seqio

import "fmt"

// OpenError reports an input that could not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open input %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// DecodeError reports input that does not conform to the record grammar.
// Record is the 1-based ordinal of the record being decoded.
type DecodeError struct {
	Format Format
	Record int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s input at record %d: %v", e.Format, e.Record, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
