package logger

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sangkips/trademarket/internal/config"
)

func TestSetup(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	Setup(&config.LogConfig{Level: "debug", Format: "json"})
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)
	assert.Equal(t, gormlogger.Info, GormLevel())

	Setup(&config.LogConfig{Level: "nonsense", Format: "text"})
	assert.Equal(t, log.InfoLevel, log.GetLevel())
	assert.Equal(t, gormlogger.Warn, GormLevel())
}
