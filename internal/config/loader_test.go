package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps user and system config files out of the test
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoader_Load_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.False(t, cfg.Strict)
}

func TestLoader_Load_FromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("NETKIT_OUTPUT", "json")
	t.Setenv("NETKIT_LOG_LEVEL", "debug")
	t.Setenv("NETKIT_STRICT", "true")
	t.Setenv("NETKIT_HTTP_TIMEOUT", "5")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestLoader_Load_FromWorkingDir(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".netkit.yaml", []byte("output: json\nlog_format: json\n"), 0644))

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoader_LoadWithPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\nhttp_timeout: 10\n"), 0644))

	cfg, err := NewLoader().LoadWithPath(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.Timeout())

	_, err = NewLoader().LoadWithPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoader_Validation(t *testing.T) {
	tests := map[string]string{
		"bad log level":  "NETKIT_LOG_LEVEL=trace",
		"bad log format": "NETKIT_LOG_FORMAT=xml",
		"bad output":     "NETKIT_OUTPUT=yaml",
		"zero timeout":   "NETKIT_HTTP_TIMEOUT=0",
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			key, value, _ := strings.Cut(env, "=")
			t.Setenv(key, value)

			_, err := NewLoader().Load()
			assert.Error(t, err)
		})
	}
}
