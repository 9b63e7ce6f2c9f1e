package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv makes the key truly absent so
	// a host exporting these vars cannot leak into the defaults.
	for _, key := range []string{"APP_ENV", "DATA_PATH", "LOG_LEVEL", "LOG_FORMAT", "THEME_FILE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "hospital.db", cfg.Storage.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Format)
	require.Empty(t, cfg.ThemeFile)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DATA_PATH", "/tmp/ward.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("THEME_FILE", "/tmp/color-scheme")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "/tmp/ward.db", cfg.Storage.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, "/tmp/color-scheme", cfg.ThemeFile)
}
