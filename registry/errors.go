package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNotFound is returned when no entry has the requested name.
	ErrNotFound = errors.New("registry: not found")

	// ErrIndexOutOfRange is returned when an index is outside [0, Len()).
	ErrIndexOutOfRange = errors.New("registry: index out of range")

	// ErrDuplicateName is returned when inserting a name that is already present.
	// The existing entry is kept and the rejected handle is disposed.
	ErrDuplicateName = errors.New("registry: duplicate name")

	// ErrDecode is returned when a payload cannot be decoded into a handle.
	ErrDecode = errors.New("registry: decode failed")

	// ErrDestroyed is returned when a registry is used after Destroy.
	// Calling Destroy twice is a programming error and reports it too.
	ErrDestroyed = errors.New("registry: destroyed")
)

// Populate operations recorded in EntryError.
const (
	OpRead   = "read"
	OpDecode = "decode"
)

// EntryError describes a recoverable per-entry failure during Populate.
type EntryError struct {
	Name string
	Op   string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
