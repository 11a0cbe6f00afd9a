// Package collector turns a directory into the set of comparison keys it
// contains: every regular file's stem, normalized through the configured
// rule set, with excluded paths filtered out first.
package collector

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vvka-141/fscmp/internal/files/filesystem"
	"github.com/vvka-141/fscmp/internal/rules"
	"github.com/vvka-141/fscmp/pkg/fscmp"
)

// Options configures a Collector. The rule set and exclusion patterns are
// constructed once and read-only thereafter.
type Options struct {
	// Recursive enumerates all descendants instead of immediate children.
	Recursive bool

	// Rules is the ordered substitution rule set applied to each stem.
	Rules fscmp.RuleSet

	// Exclude lists substring patterns; an entry whose full path contains
	// any of them is skipped before further processing.
	Exclude []string
}

// Collector collects normalized file name sets from directories.
// Safe for concurrent use as long as the provider is.
type Collector struct {
	opts       Options
	fsProvider filesystem.Provider
}

// New creates a Collector using the OS filesystem.
func New(opts Options) *Collector {
	return &Collector{
		opts:       opts,
		fsProvider: filesystem.NewOSFileSystem(),
	}
}

// NewWithFS creates a Collector with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewWithFS(opts Options, fsProvider filesystem.Provider) *Collector {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Collector{
		opts:       opts,
		fsProvider: fsProvider,
	}
}

// Collect scans root and returns the set of comparison keys found in it.
// Fails with fscmp.ErrDirectoryNotFound if root does not exist and
// fscmp.ErrNotADirectory if root exists but is not a directory. The scan has
// no side effects beyond reading filesystem metadata.
func (c *Collector) Collect(root string) (fscmp.KeySet, error) {
	info, err := c.fsProvider.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", fscmp.ErrDirectoryNotFound, root)
		}
		return nil, fmt.Errorf("failed to access %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", fscmp.ErrNotADirectory, root)
	}

	dir, err := c.fsProvider.Open(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", root, err)
	}

	keys := make(fscmp.KeySet)
	visit := func(entry filesystem.Entry, err error) error {
		if err != nil {
			return fmt.Errorf("error walking %s: %w", root, err)
		}

		// Exclusion applies to every yielded entry, never to pruning the
		// walk: an excluded directory's descendants are still visited and
		// excluded individually by their own paths.
		if c.excluded(entry.Path()) {
			return nil
		}

		// Only regular files are comparable.
		if !entry.Info().Mode().IsRegular() {
			return nil
		}

		keys.Add(rules.Apply(Stem(entry.Info().Name()), c.opts.Rules))
		return nil
	}

	if c.opts.Recursive {
		err = dir.Walk(visit)
	} else {
		err = dir.List(visit)
	}
	if err != nil {
		return nil, err
	}

	return keys, nil
}

// excluded reports whether any exclusion pattern occurs as a literal
// substring of path.
func (c *Collector) excluded(path string) bool {
	for _, pattern := range c.opts.Exclude {
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

// Stem returns name with its final extension suffix removed.
// "archive.tar.gz" stems to "archive.tar"; a name without an extension is
// returned unchanged, and a dotfile like ".bashrc" is its own stem.
func Stem(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}

var _ fscmp.Collector = (*Collector)(nil)
