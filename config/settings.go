package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Settings holds everything the client needs to reach the API and persist
// its session document.
type Settings struct {
	APIBaseURL        string
	StoreDriver       string
	StorePath         string
	HTTPTimeout       time.Duration
	OfflineReplyDelay time.Duration
	DefaultUserID     int64
	LogLevel          string
}

const (
	defaultAPIBaseURL   = "http://localhost:8092/api/v1"
	defaultOfflineDelay = 1500 * time.Millisecond
	defaultUserID       = 1
	appDirName          = ".ai-helper-client"
)

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

// FromEnv builds Settings from the process environment. Malformed values
// are logged and replaced by their defaults.
func FromEnv() Settings {
	s := Settings{
		APIBaseURL:        strings.TrimRight(getenv("API_BASE_URL", defaultAPIBaseURL), "/"),
		StoreDriver:       strings.ToLower(getenv("STORE_DRIVER", StoreFile)),
		StorePath:         os.Getenv("STORE_PATH"),
		OfflineReplyDelay: defaultOfflineDelay,
		DefaultUserID:     defaultUserID,
		LogLevel:          getenv("LOG_LEVEL", "info"),
	}

	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			Logger.Warn("Invalid HTTP_TIMEOUT, using transport default:", err)
		} else {
			s.HTTPTimeout = d
		}
	}
	if v := os.Getenv("OFFLINE_REPLY_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			Logger.Warn("Invalid OFFLINE_REPLY_DELAY, using default:", v)
		} else {
			s.OfflineReplyDelay = d
		}
	}
	if v := os.Getenv("DEFAULT_USER_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			Logger.Warn("Invalid DEFAULT_USER_ID, using default:", v)
		} else {
			s.DefaultUserID = id
		}
	}

	if s.StorePath == "" {
		s.StorePath = DefaultStorePath(s.StoreDriver)
	}
	return s
}

// DefaultStorePath returns the per-user location of the session document.
func DefaultStorePath(driver string) string {
	name := "session.json"
	if driver == StoreSQLite {
		name = "session.db"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(appDirName, name)
	}
	return filepath.Join(home, appDirName, name)
}
