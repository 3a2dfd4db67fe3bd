package utils

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/cryptfolio/cryptfolio-tools/internal/logger"
)

// LoadEnvironment loads .env files from the current directory and from the
// directory of the executable. Variables already set in the process win.
// It returns the files that were loaded.
func LoadEnvironment() []string {
	candidates := []string{".env"}

	if execPath, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(execPath), ".env"))
	}

	return LoadEnvFiles(candidates...)
}

// LoadEnvFiles loads each existing file in order and skips the missing ones.
// It runs before the log level is known, so only load failures are logged.
func LoadEnvFiles(paths ...string) []string {
	var loaded []string
	seen := make(map[string]bool)

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil || seen[abs] {
			continue
		}
		seen[abs] = true

		if _, err := os.Stat(abs); err != nil {
			continue
		}

		if err := godotenv.Load(abs); err != nil {
			logger.Warn("Failed to load .env file %s: %v", abs, err)
			continue
		}

		loaded = append(loaded, abs)
	}

	return loaded
}
