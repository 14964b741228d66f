package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`
project_root = "/srv/site"
vendor_dir = "/srv/site/vendor"
package = "acme/copilot"
package_dir = "/opt/copilot"
gitignore = false
`)
	cfg, err := ParseConfig(data, "test.toml")
	require.NoError(t, err)
	assert.Equal(t, "/srv/site", cfg.ProjectRoot)
	assert.Equal(t, "/srv/site/vendor", cfg.VendorDir)
	assert.Equal(t, "acme/copilot", cfg.Package)
	assert.Equal(t, "/opt/copilot", cfg.PackageDir)
	require.NotNil(t, cfg.Gitignore)
	assert.False(t, *cfg.Gitignore)
}

func TestParseConfigRejectsUnknownKeys(t *testing.T) {
	_, err := ParseConfig([]byte("vendor = \"x\"\n"), "test.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized keys in config test.toml")
}

func TestParseConfigRejectsInvalidTOML(t *testing.T) {
	_, err := ParseConfig([]byte("vendor_dir = \n"), "test.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config test.toml")
}

func TestLoadOptionalConfigMissing(t *testing.T) {
	cfg, err := LoadOptionalConfig(filepath.Join(t.TempDir(), DefaultConfigFile))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadOptionalConfigPresent(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("package = \"acme/copilot\"\n"), 0o644))

	cfg, err := LoadOptionalConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "acme/copilot", cfg.Package)
}

func TestLoadConfigMissingFails(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMerge(t *testing.T) {
	off := false
	base := Config{ProjectRoot: "/a", VendorDir: "/a/vendor", Package: "x/y"}
	override := Config{VendorDir: "/b/vendor", Gitignore: &off}

	merged := Merge(base, override)
	assert.Equal(t, "/a", merged.ProjectRoot)
	assert.Equal(t, "/b/vendor", merged.VendorDir)
	assert.Equal(t, "x/y", merged.Package)
	require.NotNil(t, merged.Gitignore)
	assert.False(t, *merged.Gitignore)

	off = true
	assert.False(t, *merged.Gitignore, "merge must copy the override value")
}
