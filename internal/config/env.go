package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads .env and .env.local when present. Variables already set
// in the process environment are not overwritten.
func loadEnvFiles() {
	for _, path := range envFiles {
		err := godotenv.Load(path)
		switch {
		case err == nil:
			slog.Debug("Loaded environment file", slog.String("path", path))
		case errors.Is(err, fs.ErrNotExist):
		default:
			slog.Warn("Could not load environment file", slog.String("path", path), slog.String("error", err.Error()))
		}
	}
}
