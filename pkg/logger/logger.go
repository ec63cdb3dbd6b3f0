package logger

import (
	"os"

	log "github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sangkips/trademarket/internal/config"
)

// Setup configures the global logrus logger from config.
func Setup(cfg *config.LogConfig) {
	log.SetOutput(os.Stderr)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.WithError(err).Warnf("unknown log level %q, falling back to info", cfg.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

// GormLevel maps the logrus level onto gorm's SQL logger level.
func GormLevel() gormlogger.LogLevel {
	switch log.GetLevel() {
	case log.TraceLevel, log.DebugLevel:
		return gormlogger.Info
	case log.InfoLevel, log.WarnLevel:
		return gormlogger.Warn
	case log.ErrorLevel:
		return gormlogger.Error
	default:
		return gormlogger.Silent
	}
}
