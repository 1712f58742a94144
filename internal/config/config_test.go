package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(newViper(), "")
	require.NoError(t, err)
	assert.Equal(t, Config{Theme: "classic"}, cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: neon\nseed: tasks.yaml\nlog_file: todo.log\ndebug: true\n"), 0o644))

	cfg, err := Load(newViper(), path)
	require.NoError(t, err)
	assert.Equal(t, Config{Theme: "neon", Seed: "tasks.yaml", LogFile: "todo.log", Debug: true}, cfg)
}

func TestLoadDefaultFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("theme: mono\n"), 0o644))
	chdir(t, dir)

	cfg, err := Load(newViper(), "")
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.Theme)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: neon\n"), 0o644))
	t.Setenv("TODO_THEME", "mono")

	cfg, err := Load(newViper(), path)
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.Theme)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(newViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "read config")
}

func TestLoadRejectsUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: solarized\n"), 0o644))

	_, err := Load(newViper(), path)
	assert.ErrorContains(t, err, `unknown "solarized"`)
}
