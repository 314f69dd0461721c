// config/logger.go
package config

import (
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

// InitLogger applies the formatter and the level named by level
// (debug, info, warn, error). Unknown names keep info.
func InitLogger(level string) {
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		if level != "" {
			Logger.Warn("Unknown log level, using info:", level)
		}
		lvl = logrus.InfoLevel
	}
	Logger.SetLevel(lvl)
}

// Component returns a logger entry tagged with the component name.
func Component(name string) *logrus.Entry {
	return Logger.WithField("component", name)
}
