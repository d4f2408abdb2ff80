package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{LogFormat: "json", LogLevel: "warn"}, &buf)

	logger.Info("dropped")
	logger.Warn("kept", "banner_id", "b1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "b1", entry["banner_id"])
	assert.NotContains(t, buf.String(), "dropped")
}

func TestNewLoggerTextDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(nil, &buf)

	logger.Debug("hidden")
	logger.Info("visible")

	assert.Contains(t, buf.String(), "msg=visible")
	assert.NotContains(t, buf.String(), "hidden")
}
