package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cda "github.com/gofhir/cda"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.False(t, cfg.Strict)
	assert.True(t, cfg.Narrative)
	assert.True(t, cfg.Terminology)
	assert.True(t, cfg.Constraints)
	assert.True(t, cfg.Identifiers)
	assert.Zero(t, cfg.PhaseTimeout)
}

func TestLoadEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CDAGEN_LOG_LEVEL", "debug")
	t.Setenv("CDAGEN_STRICT", "true")
	t.Setenv("CDAGEN_MAX_ERRORS", "5")
	t.Setenv("CDAGEN_PHASE_TIMEOUT", "2s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 5, cfg.MaxErrors)
	assert.Equal(t, 2*time.Second, cfg.PhaseTimeout)
}

func TestLoadConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "cdagen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 42\nnarrative: false\noutput_dir: samples\n"), 0o600))
	t.Setenv("CDAGEN_OUTPUT_DIR", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.False(t, cfg.Narrative)
	assert.Equal(t, "from-env", cfg.OutputDir)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CDAGEN_WORKERS=3\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("CDAGEN_WORKERS") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		path string
	}{
		{name: "missing file", path: "does-not-exist.yaml"},
		{name: "negative max errors", env: map[string]string{"CDAGEN_MAX_ERRORS": "-1"}},
		{name: "negative workers", env: map[string]string{"CDAGEN_WORKERS": "-2"}},
		{name: "bad log format", env: map[string]string{"CDAGEN_LOG_FORMAT": "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.path)
			assert.Error(t, err)
		})
	}
}

func TestOptions(t *testing.T) {
	cfg := &Config{
		Strict:       true,
		MaxErrors:    7,
		Workers:      2,
		PhaseTimeout: time.Second,
		Terminology:  false,
		Constraints:  true,
		Identifiers:  true,
	}

	opts := cda.NewOptions(cfg.Options()...)
	assert.True(t, opts.StrictMode)
	assert.Equal(t, 7, opts.MaxErrors)
	assert.Equal(t, 2, opts.WorkerCount)
	assert.Equal(t, time.Second, opts.PhaseTimeout)
	assert.False(t, opts.ValidateTerminology)
	assert.False(t, opts.GenerateNarrative)

	lc := (&Config{LogLevel: "warn", LogFormat: "json"}).Logger()
	assert.Equal(t, "warn", lc.Level)
	assert.Equal(t, "json", lc.Format)
}
