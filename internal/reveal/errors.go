package reveal

import (
	"errors"
	"fmt"
)

// Sentinel errors for each failure kind. Use errors.Is to test for them.
var (
	ErrNotFound          = errors.New("path does not exist")
	ErrNoParentDirectory = errors.New("path has no parent directory")
	ErrSpawnFailed       = errors.New("could not start file manager")
)

// Error codes reported across the command boundary
const (
	CodeNotFound          = "not_found"
	CodeNoParentDirectory = "no_parent_directory"
	CodeSpawnFailed       = "spawn_failed"
	CodeInternal          = "internal"
)

// Error describes a failed reveal. Kind is one of the sentinel errors above
// and Err, when set, is the underlying OS error.
type Error struct {
	Path string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reveal %q: %v: %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("reveal %q: %v", e.Path, e.Kind)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Code maps an error returned by this package to a stable string code
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrNoParentDirectory):
		return CodeNoParentDirectory
	case errors.Is(err, ErrSpawnFailed):
		return CodeSpawnFailed
	default:
		return CodeInternal
	}
}
