package logger

import (
	"famhealth-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger builds the console logger used around process startup and
// shutdown, before and after the zap logger is in play.
func NewLogrusLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	if internalConfig.App.Env == "production" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{})
	}
	return logger
}
