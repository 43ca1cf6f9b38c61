package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and TUTOR_CONFIG at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("TUTOR_CONFIG", filepath.Join(dir, "config.toml"))
	for _, k := range []string{
		"TUTOR_DB", "TUTOR_CORPUS", "TUTOR_USER", "TUTOR_LOG_LEVEL", "TUTOR_LOG_FILE",
		"TUTOR_LOG_DIR", "TUTOR_SIMILARITY_THRESHOLD", "TUTOR_SESSION_WINDOW_MIN",
		"TUTOR_DOWNLOAD_TIMEOUT_MS",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func TestDefaultConfig(t *testing.T) {
	dir := isolate(t)
	t.Setenv("USER", "alice")

	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(dir, ".tutor", "tutor.db"), cfg.DBPath)
	assert.Equal(t, "alice", cfg.User)
	assert.Equal(t, 0.3, cfg.SimilarityThreshold)
	assert.Equal(t, time.Hour, cfg.SessionWindow())
	assert.Equal(t, 10*time.Second, cfg.DownloadTimeout())
	assert.Equal(t, 50, cfg.Download.MaxItems)
	assert.Len(t, cfg.CorpusPaths, 2)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
user = "bob"
similarity_threshold = 0.45
corpus = ["/data/a.db", "/data/b.json"]

[log]
level = "debug"

[download]
timeout_ms = 2500

[download.sources]
Science = ["https://example.com/science.json"]
`), 0600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "bob", cfg.User)
	assert.Equal(t, 0.45, cfg.SimilarityThreshold)
	assert.Equal(t, []string{"/data/a.db", "/data/b.json"}, cfg.CorpusPaths)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 2500, cfg.Download.TimeoutMs)
	assert.Equal(t, 50, cfg.Download.MaxItems, "keys absent from the file keep defaults")
	assert.Equal(t, []string{"https://example.com/science.json"}, cfg.Download.Sources["Science"])
	assert.Equal(t, 60, cfg.SessionWindowMin)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`user = "bob"
session_window_min = 30
`), 0600))

	t.Setenv("TUTOR_USER", "carol")
	t.Setenv("TUTOR_DB", "/tmp/x.db")
	t.Setenv("TUTOR_CORPUS", " /a.db , ,/b.json")
	t.Setenv("TUTOR_SESSION_WINDOW_MIN", "15")
	t.Setenv("TUTOR_LOG_FILE", "true")
	t.Setenv("TUTOR_SIMILARITY_THRESHOLD", "0.5")
	t.Setenv("TUTOR_DOWNLOAD_TIMEOUT_MS", "750")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "carol", cfg.User)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, []string{"/a.db", "/b.json"}, cfg.CorpusPaths)
	assert.Equal(t, 15*time.Minute, cfg.SessionWindow())
	assert.True(t, cfg.Log.File)
	assert.Equal(t, 0.5, cfg.SimilarityThreshold)
	assert.Equal(t, 750*time.Millisecond, cfg.DownloadTimeout())
}

func TestSaveAndLoadFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.User = "dana"
	cfg.Download.Sources = map[string][]string{"History": {"https://example.com/h.md"}}
	require.NoError(t, cfg.Save(path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

// ============ NEGATIVE TEST CASES ============

func TestLoadConfig_InvalidEnvIgnored(t *testing.T) {
	isolate(t)
	t.Setenv("TUTOR_SIMILARITY_THRESHOLD", "1.5")
	t.Setenv("TUTOR_SESSION_WINDOW_MIN", "-3")
	t.Setenv("TUTOR_DOWNLOAD_TIMEOUT_MS", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 0.3, cfg.SimilarityThreshold)
	assert.Equal(t, 60, cfg.SessionWindowMin)
	assert.Equal(t, 10000, cfg.Download.TimeoutMs)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("user = [unterminated"), 0600))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_InvalidFileValue(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("similarity_threshold = 2.0\n"), 0600))

	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
