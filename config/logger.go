package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the process logger. Level is adjusted by ApplyLogLevel
// once the config is loaded.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log
}

func ApplyLogLevel(log *logrus.Logger, level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("unknown LOG_LEVEL, keeping info")
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
}
