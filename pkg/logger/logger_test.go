package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitLogger(t *testing.T) {
	defer os.Remove("test.log")

	cfg := &Config{
		Level:      "DEBUG",
		Filename:   "test.log",
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
		Compress:   false,
	}

	err := InitLogger(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, Log)

	Log.Info("registry started", zap.String("port", "8080"))
	Sync()

	// Verify file exists
	_, err = os.Stat("test.log")
	assert.NoError(t, err)
}

func TestInitLoggerReplacesGlobal(t *testing.T) {
	defer os.Remove("test_global.log")

	err := InitLogger(&Config{Level: "INFO", Filename: "test_global.log"})
	assert.NoError(t, err)
	assert.Equal(t, Log, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:    "INVALID",
		Filename: "test_invalid.log",
	}

	err := InitLogger(cfg)
	assert.Error(t, err)
}
