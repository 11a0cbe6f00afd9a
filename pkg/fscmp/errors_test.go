package fscmp

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"invalid config", ErrInvalidConfig, ExitConfigError},
		{"wrapped invalid config", fmt.Errorf("%w: details", ErrInvalidConfig), ExitConfigError},
		{"directory not found", fmt.Errorf("%w: /missing", ErrDirectoryNotFound), ExitDirectoryNotFound},
		{"not a directory", fmt.Errorf("%w: /some/file", ErrNotADirectory), ExitNotADirectory},
		{"unclassified", errors.New("something else"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
