package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("JSON format writes structured records", func(t *testing.T) {
		// Given: a JSON logger at info
		var buf bytes.Buffer
		log := New(&buf, "info", FormatJSON)

		// When: a debug and an info record are written
		log.Debug("hidden")
		log.Info("shown", "component", "game")

		// Then: only the info record is there and it is valid JSON
		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "shown", record["msg"])
		assert.Equal(t, "game", record["component"])
	})

	t.Run("Text format goes through the console handler", func(t *testing.T) {
		// Given: a text logger at debug
		var buf bytes.Buffer
		log := New(&buf, "debug", FormatText)

		// When: a record is written
		log.Debug("board index out of bounds", "row", 4)

		// Then: message and attributes appear
		assert.Contains(t, buf.String(), "board index out of bounds")
		assert.Contains(t, buf.String(), "row")
	})

	t.Run("Text format respects the level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, "error", FormatText)

		log.Warn("nope")

		assert.Empty(t, buf.String())
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("whatever"))
}
