package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.DBPath, cfg.DBPath)
	assert.Equal(t, "Local", cfg.Timezone)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdle)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yml := "db_path: " + filepath.Join(dir, "a.db") + "\ntimezone: Europe/Berlin\nsession_idle: 10m\nlog:\n  level: info\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.db"), cfg.DBPath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 10*time.Minute, cfg.SessionIdle)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())

	t.Setenv("FLAVORTOWN_DB_PATH", filepath.Join(dir, "b.db"))
	t.Setenv("FLAVORTOWN_LOG_LEVEL", "debug")
	t.Setenv("FLAVORTOWN_SESSION_IDLE", "0s")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "b.db"), cfg.DBPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Zero(t, cfg.SessionIdle)
	assert.Equal(t, "Europe/Berlin", cfg.Timezone, "unset env keeps file value")
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("timezone: Mars/Olympus\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("log: [nope"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Timezone = "UTC"
	cfg.Log.Format = "json"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	loc, err := got.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}
