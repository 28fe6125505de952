package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

type Config struct {
	AccountFiles []string
	LogLevel     slog.Level
	LogFormat    string
	Env          string
}

// Load reads the optional dotenv files and returns a Config.
// The process environment wins over dotenv values, which win over defaults.
func Load(envFiles ...string) *Config {
	fileValues, err := godotenv.Read(envFiles...)
	if err != nil {
		// Not fatal: production relies on the real environment
		slog.Warn("No .env file found, relying on System Env Variables", "error", err)
		fileValues = map[string]string{}
	}

	getEnv := func(key, fallback string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
		if value, exists := fileValues[key]; exists {
			return value
		}
		return fallback
	}

	return &Config{
		AccountFiles: SplitList(getEnv("NETWORTH_ACCOUNT_FILES", "")),
		LogLevel:     parseLevel(getEnv("NETWORTH_LOG_LEVEL", "info")),
		LogFormat:    parseFormat(getEnv("NETWORTH_LOG_FORMAT", LogFormatJSON)),
		Env:          getEnv("NETWORTH_ENV", "development"),
	}
}

// NewLogger builds the structured logger described by the config.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == LogFormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// SplitList splits a comma-separated list, dropping blank entries.
func SplitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseLevel(value string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseFormat(value string) string {
	if strings.EqualFold(value, LogFormatText) {
		return LogFormatText
	}
	return LogFormatJSON
}
