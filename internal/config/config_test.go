package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envFile  string
		env      map[string]string
		expected Config
	}{
		{
			name: "defaults",
			expected: Config{
				LogLevel:  slog.LevelInfo,
				LogFormat: LogFormatJSON,
				Env:       "development",
			},
		},
		{
			name:    "values from env file",
			envFile: "NETWORTH_ACCOUNT_FILES=a.csv, b.csv\nNETWORTH_LOG_LEVEL=debug\nNETWORTH_LOG_FORMAT=text\nNETWORTH_ENV=production\n",
			expected: Config{
				AccountFiles: []string{"a.csv", "b.csv"},
				LogLevel:     slog.LevelDebug,
				LogFormat:    LogFormatText,
				Env:          "production",
			},
		},
		{
			name:    "process environment wins over env file",
			envFile: "NETWORTH_LOG_LEVEL=debug\nNETWORTH_ACCOUNT_FILES=file.csv\n",
			env: map[string]string{
				"NETWORTH_LOG_LEVEL":     "error",
				"NETWORTH_ACCOUNT_FILES": "env.csv",
			},
			expected: Config{
				AccountFiles: []string{"env.csv"},
				LogLevel:     slog.LevelError,
				LogFormat:    LogFormatJSON,
				Env:          "development",
			},
		},
		{
			name: "invalid values fall back",
			env: map[string]string{
				"NETWORTH_LOG_LEVEL":  "loud",
				"NETWORTH_LOG_FORMAT": "yaml",
			},
			expected: Config{
				LogLevel:  slog.LevelInfo,
				LogFormat: LogFormatJSON,
				Env:       "development",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"NETWORTH_ACCOUNT_FILES", "NETWORTH_LOG_LEVEL", "NETWORTH_LOG_FORMAT", "NETWORTH_ENV"} {
				unsetEnv(t, key)
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			path := filepath.Join(t.TempDir(), ".env")
			if tt.envFile != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.envFile), 0o600))
			}

			got := Load(path)

			assert.Equal(t, tt.expected, *got)
		})
	}
}

func TestConfig_NewLogger(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &Config{LogLevel: slog.LevelInfo, LogFormat: LogFormatJSON}

		logger := cfg.NewLogger(&buf)
		logger.Debug("hidden")
		logger.Info("shown", "net_worth", "-131500")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "shown", entry["msg"])
		assert.Equal(t, "-131500", entry["net_worth"])
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &Config{LogLevel: slog.LevelDebug, LogFormat: LogFormatText}

		cfg.NewLogger(&buf).Debug("visible")

		assert.Contains(t, buf.String(), "msg=visible")
	})
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(" , "))
	assert.Equal(t, []string{"a.csv", "b.csv"}, SplitList("a.csv,,b.csv "))
}

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
