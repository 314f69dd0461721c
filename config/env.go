package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvFiles are read by LoadEnv when no files are named: the working
// directory's .env, then the per-user config.env next to the session store.
func EnvFiles() []string {
	files := []string{".env"}
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, appDirName, "config.env"))
	}
	return files
}

// LoadEnv fills unset environment variables from the given files, or from
// EnvFiles. Missing files are skipped and variables already set win.
func LoadEnv(files ...string) {
	if len(files) == 0 {
		files = EnvFiles()
	}
	for _, file := range files {
		err := godotenv.Load(file)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			Logger.Warn("Error loading env file, skipping: ", file, ": ", err)
			continue
		}
		Logger.Debug("Loaded env file: ", file)
	}
}
