package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cberrors "github.com/alexisbeaulieu97/cellbutton/pkg/errors"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Defaults(), *s)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	content := "log_level: debug\ncatalog: ui/buttons.yaml\ndark: true\nwatch_debounce: 1s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", s.LogLevel)
	require.Equal(t, "ui/buttons.yaml", s.Catalog)
	require.True(t, s.Dark)
	require.Equal(t, time.Second, s.WatchDebounce)
	require.Equal(t, "snapshots", s.SnapshotDir)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("snapshot_dir: from-file\n"), 0o644))
	t.Setenv("CELLBUTTON_SNAPSHOT_DIR", "from-env")
	t.Setenv("CELLBUTTON_PREVIEW_WIDTH", "120")

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-env", s.SnapshotDir)
	require.Equal(t, 120, s.PreviewWidth)
}

func TestLoadWorkingDirectoryFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cellbutton.yaml"), []byte("gallery_out: out/index.html\n"), 0o644))
	t.Chdir(dir)

	s, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "out/index.html", s.GalleryOut)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	var parseErr *cberrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadRejectsInvalidWidth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preview_width: 0\n"), 0o644))

	_, err := Load(path)

	var validationErr *cberrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "preview_width", validationErr.Field)
}

func TestLoadExampleSettings(t *testing.T) {
	s, err := Load(filepath.Join("..", "..", "examples", "cellbutton.yaml"))
	require.NoError(t, err)
	require.Equal(t, "examples/buttons.yaml", s.Catalog)
	require.Equal(t, 250*time.Millisecond, s.WatchDebounce)
}
