package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// osEntry implements Entry for the OS filesystem
type osEntry struct {
	path string
	info fs.FileInfo
}

func (e *osEntry) Path() string   { return e.path }
func (e *osEntry) Info() FileInfo { return e.info }

// osDirectory implements Directory for the OS filesystem.
// The path is kept exactly as given by the caller so that walked entry paths
// stay rooted at the caller's spelling of the directory.
type osDirectory struct {
	path string
}

func (d *osDirectory) Path() string { return d.path }

func (d *osDirectory) Walk(fn func(Entry, error) error) error {
	return filepath.Walk(d.path, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return fn(nil, walkErr)
		}
		if path == d.path {
			// The root itself is not an entry of its own listing.
			return nil
		}
		return fn(&osEntry{path: path, info: info}, nil)
	})
}

func (d *osDirectory) List(fn func(Entry, error) error) error {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return fn(nil, fmt.Errorf("failed to read directory: %w", err))
	}

	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			if cbErr := fn(nil, fmt.Errorf("failed to get file info for %s: %w", entry.Name(), err)); cbErr != nil {
				return cbErr
			}
			continue
		}
		if cbErr := fn(&osEntry{path: filepath.Join(d.path, entry.Name()), info: info}, nil); cbErr != nil {
			return cbErr
		}
	}
	return nil
}

// OSFileSystem implements Provider for the OS filesystem
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (p *OSFileSystem) Open(path string) (Directory, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", path)
	}

	return &osDirectory{path: path}, nil
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	// os.Stat returns os.FileInfo which implements fs.FileInfo
	return os.Stat(path)
}
