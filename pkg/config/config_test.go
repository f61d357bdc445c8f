package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tile:
  width: 2
  height: 2
ordering: [1, 0]
s3:
  bucket: pages
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Tile.Width)
	assert.Equal(t, 2, cfg.Tile.Height)
	assert.Equal(t, []int{1, 0}, cfg.Ordering)
	assert.Equal(t, "pages", cfg.S3.Bucket)
	// untouched keys keep their defaults
	assert.Equal(t, Default().S3.Endpoint, cfg.S3.Endpoint)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tile: ["), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
