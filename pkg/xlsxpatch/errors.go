package xlsxpatch

import (
	"errors"
	"fmt"
)

// ErrEntryNotFound indicates a named entry is missing from the archive.
var ErrEntryNotFound = errors.New("entry not found")

// ErrNotWorksheet indicates an entry's root element is not a worksheet.
var ErrNotWorksheet = errors.New("not a worksheet document")

// ErrMissingRoot indicates an XML entry has no root element.
var ErrMissingRoot = errors.New("document has no root element")

// PatchError represents a failure while reading, parsing, or rewriting
// one archive entry.
type PatchError struct {
	Entry string
	Op    string // "read", "parse", "serialize", "write"
	Err   error
}

func (e *PatchError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entry, e.Err)
}

func (e *PatchError) Unwrap() error {
	return e.Err
}

// NewPatchError creates a new PatchError.
func NewPatchError(entry, op string, err error) *PatchError {
	return &PatchError{
		Entry: entry,
		Op:    op,
		Err:   err,
	}
}
