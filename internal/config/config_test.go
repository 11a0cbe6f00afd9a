package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `rules:
  - match: "_"
    replace: "-"
  - match: " copy"
    replace: ""

exclude:
  - /tmp/
  - .bak

recursive: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Len(t, cfg.Rules, 2)
	assert.Equal(t, "_", cfg.Rules[0].Match)
	assert.Equal(t, "-", cfg.Rules[0].Replace)
	assert.Equal(t, " copy", cfg.Rules[1].Match)
	assert.Equal(t, "", cfg.Rules[1].Replace)
	assert.Equal(t, []string{"/tmp/", ".bak"}, cfg.Exclude)
	assert.True(t, cfg.Recursive)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	content := `exclude:
  - node_modules
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Empty(t, cfg.Rules)
	assert.Equal(t, []string{"node_modules"}, cfg.Exclude)
	assert.False(t, cfg.Recursive)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
