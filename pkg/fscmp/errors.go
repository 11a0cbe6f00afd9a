package fscmp

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := cli.Execute()
//	if errors.Is(err, fscmp.ErrDirectoryNotFound) {
//	    // Handle a missing input directory
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid:
	// fewer than two directories, a --match without its --replace, or an
	// empty match string.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDirectoryNotFound indicates an input directory does not exist.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrNotADirectory indicates an input path exists but is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrDirectoryNotFound):
		return ExitDirectoryNotFound
	case errors.Is(err, ErrNotADirectory):
		return ExitNotADirectory
	}

	return ExitGeneralError
}
