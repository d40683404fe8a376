package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbaskett248/atlex/atlang"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, FileName)
	settings := `grammar: custom.rules
start_mode: magic
max_errors: 5
exclude:
  - "*.gen.at"
`
	err := os.WriteFile(path, []byte(settings), 0o644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom.rules", cfg.Grammar)
	assert.Equal(t, "magic", cfg.StartMode)
	assert.Equal(t, 5, cfg.MaxErrors)
	assert.Equal(t, []string{"*.gen.at"}, cfg.Exclude)
	// keys the file does not set keep their defaults
	assert.True(t, cfg.Resync)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.Error(t, err)
}

func TestLoadBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	err := os.WriteFile(path, []byte("\tgrammar: [unclosed\n"), 0o644)
	require.NoError(t, err)

	_, err = Load(path)
	assert.Error(t, err)
}

func TestDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Default().Write(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestWriteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", FileName)
	require.NoError(t, Default().Write(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSearch(t *testing.T) {
	tmpDir := t.TempDir()
	leaf := filepath.Join(tmpDir, "a", "b", "c")
	require.NoError(t, os.MkdirAll(leaf, 0o755))

	expected := filepath.Join(tmpDir, "a", FileName)
	require.NoError(t, os.WriteFile(expected, []byte("resync: false\n"), 0o644))

	found, err := Search(leaf)
	require.NoError(t, err)
	assert.Equal(t, expected, found)
}

func TestSearchNotFound(t *testing.T) {
	found, err := Search(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestExcluded(t *testing.T) {
	cfg := Default()
	cfg.Exclude = []string{"*.gen.at", "scratch.*"}

	assert.True(t, cfg.Excluded(filepath.Join("some", "dir", "report.gen.at")))
	assert.True(t, cfg.Excluded("scratch.at"))
	assert.False(t, cfg.Excluded("report.at"))
}

func TestCatalogsEmbedded(t *testing.T) {
	cs := NewCatalogs()

	c, err := cs.Load(Default())
	require.NoError(t, err)
	assert.Same(t, atlang.Catalog(), c)
}

func TestCatalogsCacheByPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.rules")
	err := os.WriteFile(path, []byte("m main .\nr word [a-z]+\n"), 0o644)
	require.NoError(t, err)

	cs := NewCatalogs()
	cfg := Default()
	cfg.Grammar = path

	c1, err := cs.Load(cfg)
	require.NoError(t, err)
	require.NotNil(t, c1.Mode("main"))

	c2, err := cs.Load(cfg)
	require.NoError(t, err)
	assert.Same(t, c1, c2)
}

func TestCatalogsErrors(t *testing.T) {
	cs := NewCatalogs()
	cfg := Default()

	cfg.Grammar = filepath.Join(t.TempDir(), "absent.rules")
	_, err := cs.Load(cfg)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.rules")
	require.NoError(t, os.WriteFile(path, []byte("r word [a-z]+\n"), 0o644))
	cfg.Grammar = path
	_, err = cs.Load(cfg)
	assert.Error(t, err)
}
