// Package filesystem abstracts directory traversal behind a provider
// interface, enabling both production use with the OS filesystem and testing
// with in-memory filesystems. The comparison core never reads file content;
// entries carry only their path and metadata.
package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// Entry is a single path yielded by a directory traversal.
type Entry interface {
	// Path returns the full path of the entry, rooted at the path the
	// directory was opened with (verbatim, not canonicalized). Exclusion
	// patterns match against this string.
	Path() string

	// Info returns the entry's metadata.
	Info() FileInfo
}

// Directory represents an opened directory that can be traversed.
type Directory interface {
	// Path returns the path the directory was opened with.
	Path() string

	// Walk traverses the whole directory tree, calling fn for every entry
	// (files and subdirectories) and for any traversal error. If fn returns
	// an error, walking stops. No ordering is guaranteed.
	Walk(fn func(Entry, error) error) error

	// List yields only the immediate children of the directory, with the
	// same callback contract as Walk.
	List(fn func(Entry, error) error) error
}

// Provider is a factory for Directory instances.
type Provider interface {
	// Open opens a directory at the specified path.
	Open(path string) (Directory, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)
}
