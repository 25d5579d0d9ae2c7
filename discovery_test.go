// FILE: strata/discovery_test.go
package strata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	// Unique name keeps stray config.yaml files in parent dirs out of the search
	const fileName = "strata_discover_fixture.yaml"

	t.Run("StartDirectory", func(t *testing.T) {
		tmpDir := t.TempDir()
		expected := writeConfig(t, tmpDir, fileName, "k: v\n")

		found, err := Discover(DiscoveryOptions{
			FileName: fileName,
			StartDir: tmpDir,
		})
		require.NoError(t, err)
		assert.Equal(t, expected, found)
	})

	t.Run("EnvVarWins", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeConfig(t, tmpDir, fileName, "k: local\n")
		explicit := writeConfig(t, tmpDir, "explicit.yaml", "k: explicit\n")
		t.Setenv("STRATA_DISCOVER_TEST", explicit)

		found, err := Discover(DiscoveryOptions{
			FileName: fileName,
			EnvVar:   "STRATA_DISCOVER_TEST",
			StartDir: tmpDir,
		})
		require.NoError(t, err)
		assert.Equal(t, explicit, found)
	})

	t.Run("EnvVarPointingNowhere", func(t *testing.T) {
		t.Setenv("STRATA_DISCOVER_TEST", filepath.Join(t.TempDir(), "ghost.yaml"))

		_, err := Discover(DiscoveryOptions{
			FileName: fileName,
			EnvVar:   "STRATA_DISCOVER_TEST",
			StartDir: t.TempDir(),
		})

		var missing *MissingFileError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "$STRATA_DISCOVER_TEST", missing.ReferencedBy)
	})

	t.Run("ProjectRoot", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeConfig(t, tmpDir, ".git/HEAD", "ref: refs/heads/main\n")
		expected := writeConfig(t, tmpDir, fileName, "k: v\n")
		nested := filepath.Join(tmpDir, "internal", "service")
		require.NoError(t, os.MkdirAll(nested, 0755))

		found, err := Discover(DiscoveryOptions{
			FileName:    fileName,
			StartDir:    nested,
			RootMarkers: []string{".git"},
		})
		require.NoError(t, err)
		assert.Equal(t, expected, found)
	})

	t.Run("ParentDirectoryFallback", func(t *testing.T) {
		tmpDir := t.TempDir()
		expected := writeConfig(t, tmpDir, fileName, "k: v\n")
		nested := filepath.Join(tmpDir, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0755))

		// No root markers anywhere, so the parent scan finds it
		found, err := Discover(DiscoveryOptions{
			FileName:    fileName,
			StartDir:    nested,
			RootMarkers: []string{"strata_no_such_marker"},
		})
		require.NoError(t, err)
		assert.Equal(t, expected, found)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := Discover(DiscoveryOptions{
			FileName:    fileName,
			StartDir:    t.TempDir(),
			RootMarkers: []string{"strata_no_such_marker"},
		})
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})
}

func TestBuilderDiscovery(t *testing.T) {
	const fileName = "strata_builder_fixture.yaml"

	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, fileName, "app:\n  port: 8080\n")
	t.Setenv("STRATA_CONFIG", "")

	cfg, err := NewBuilder().
		WithRootDir(tmpDir).
		WithFileName(fileName).
		Build()
	require.NoError(t, err)

	port, err := cfg.Int64("app.port")
	require.NoError(t, err)
	assert.Equal(t, int64(8080), port)
}

func TestBuilderOptions(t *testing.T) {
	t.Run("RelativeFileAgainstRootDir", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeConfig(t, tmpDir, "app.yaml", "k: v\n")

		cfg, err := NewBuilder().
			WithRootDir(tmpDir).
			WithFile("app.yaml").
			Build()
		require.NoError(t, err)

		v, err := cfg.String("k")
		require.NoError(t, err)
		assert.Equal(t, "v", v)
	})

	t.Run("ForcedFormat", func(t *testing.T) {
		tmpDir := t.TempDir()
		// YAML content behind a .conf extension
		writeConfig(t, tmpDir, "service.conf", "app:\n  name: svc\n")

		cfg, err := NewBuilder().
			WithRootDir(tmpDir).
			WithFile("service.conf").
			WithFormat(FormatYAML).
			Build()
		require.NoError(t, err)

		name, err := cfg.String("app.name")
		require.NoError(t, err)
		assert.Equal(t, "svc", name)
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		_, err := NewBuilder().WithFormat("ini").Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ini")
	})

	t.Run("MustBuildPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBuilder().WithFile(filepath.Join(t.TempDir(), "absent.yaml")).MustBuild()
		})
	})
}
