package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger_NamedWithFields(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bridge.log")

	logger, err := NewLogger(LoggingConfig{Level: "info", Format: "json", OutputPath: out}, zap.String("environment", EnvSepolia))
	require.NoError(t, err)

	logger.Info("hello")
	logger.Debug("filtered")
	_ = logger.Sync()

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry), string(data))
	assert.Equal(t, LoggerName, entry["logger"])
	assert.Equal(t, EnvSepolia, entry["environment"])
	assert.Equal(t, "hello", entry["msg"])
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(LoggingConfig{Level: "loud", Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
