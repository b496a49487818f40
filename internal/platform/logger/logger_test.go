package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstrand/flashdeck/internal/config"
)

func TestSetupLevels(t *testing.T) {
	testCases := []struct {
		name         string
		configured   string
		debugVisible bool
	}{
		{name: "debug level shows debug", configured: "debug", debugVisible: true},
		{name: "info level hides debug", configured: "info", debugVisible: false},
		{name: "warn level hides debug", configured: "WARN", debugVisible: false},
		{name: "invalid level falls back to info", configured: "loud", debugVisible: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := setup(config.ServerConfig{Port: 8080, LogLevel: tc.configured}, &buf)
			require.NotNil(t, log)

			log.Debug("probe")
			assert.Equal(t, tc.debugVisible, buf.Len() > 0)
		})
	}
}

func TestSetupEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := setup(config.ServerConfig{Port: 8080, LogLevel: "info"}, &buf)

	log.Info("server started", "port", 8080)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "server started", record["msg"])
	assert.Equal(t, float64(8080), record["port"])
}
