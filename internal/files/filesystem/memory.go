package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryEntry implements Entry for in-memory filesystems
type memoryEntry struct {
	path string
	info fs.FileInfo
}

func (e *memoryEntry) Path() string   { return e.path }
func (e *memoryEntry) Info() FileInfo { return e.info }

// memoryDirectory implements Directory for in-memory filesystems
type memoryDirectory struct {
	path string
	fs   *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.path }

func (d *memoryDirectory) Walk(fn func(Entry, error) error) error {
	entries := d.fs.entriesUnder(d.path, false)

	// Sort by path for deterministic order
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].path < entries[j].path
	})

	for _, entry := range entries {
		if err := fn(entry, nil); err != nil {
			return err
		}
	}
	return nil
}

func (d *memoryDirectory) List(fn func(Entry, error) error) error {
	entries := d.fs.entriesUnder(d.path, true)

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].path < entries[j].path
	})

	for _, entry := range entries {
		if err := fn(entry, nil); err != nil {
			return err
		}
	}
	return nil
}

// MemoryFileSystem implements Provider for in-memory testing. Paths use
// forward slashes by virtual filesystem convention.
type MemoryFileSystem struct {
	entries map[string]*memoryEntry // map of clean path -> entry
	root    string
}

// NewMemoryFileSystem creates a new in-memory filesystem rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(root)

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.entries[root] = &memoryEntry{
		path: root,
		info: &memoryFileInfo{
			name:    path.Base(root),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
	return mfs
}

// AddFile adds a regular file at relPath under the root, creating
// intermediate directories as needed. size is synthetic metadata only; the
// filesystem stores no content.
func (m *MemoryFileSystem) AddFile(relPath string, size int64) {
	full := path.Join(m.root, relPath)
	m.ensureParents(full)
	m.entries[full] = &memoryEntry{
		path: full,
		info: &memoryFileInfo{
			name:    path.Base(full),
			size:    size,
			mode:    0644,
			modTime: time.Now(),
			isDir:   false,
		},
	}
}

// AddDir adds an empty directory at relPath under the root.
func (m *MemoryFileSystem) AddDir(relPath string) {
	full := path.Join(m.root, relPath)
	m.ensureParents(full)
	m.addDirEntry(full)
}

func (m *MemoryFileSystem) ensureParents(full string) {
	dir := path.Dir(full)
	for dir != m.root && dir != "/" && dir != "." {
		m.addDirEntry(dir)
		dir = path.Dir(dir)
	}
}

func (m *MemoryFileSystem) addDirEntry(full string) {
	if _, exists := m.entries[full]; exists {
		return
	}
	m.entries[full] = &memoryEntry{
		path: full,
		info: &memoryFileInfo{
			name:    path.Base(full),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// entriesUnder returns the entries below dir, excluding dir itself.
// With immediateOnly, only direct children are returned.
func (m *MemoryFileSystem) entriesUnder(dir string, immediateOnly bool) []*memoryEntry {
	prefix := dir + "/"
	var result []*memoryEntry
	for p, entry := range m.entries {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		if immediateOnly && strings.Contains(p[len(prefix):], "/") {
			continue
		}
		result = append(result, entry)
	}
	return result
}

// Open opens a directory at the specified path.
func (m *MemoryFileSystem) Open(p string) (Directory, error) {
	p = path.Clean(p)
	entry, exists := m.entries[p]
	if !exists {
		return nil, fmt.Errorf("failed to access path: %w", fs.ErrNotExist)
	}
	if !entry.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", p)
	}
	return &memoryDirectory{path: p, fs: m}, nil
}

// Stat returns file information for the given path.
func (m *MemoryFileSystem) Stat(p string) (FileInfo, error) {
	entry, exists := m.entries[path.Clean(p)]
	if !exists {
		return nil, fs.ErrNotExist
	}
	return entry.info, nil
}

var _ Provider = (*MemoryFileSystem)(nil)
var _ Provider = (*OSFileSystem)(nil)
