package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZapLogger(t *testing.T) {
	t.Parallel()

	t.Run("verbose logs debug entries with fields", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := newLogger(&buf, true)
		logger.Debug("HTTP Request", map[string]interface{}{"method": "GET", "url": "/accounts/42"})
		logger.Sync()

		output := buf.String()
		assert.Contains(t, output, "DEBUG")
		assert.Contains(t, output, "web3api")
		assert.Contains(t, output, "HTTP Request")
		assert.Contains(t, output, `"method": "GET"`)
		assert.Contains(t, output, `"url": "/accounts/42"`)
	})

	t.Run("quiet mode drops debug and info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		logger := newLogger(&buf, false)
		logger.Debug("hidden", nil)
		logger.Info("hidden too", nil)
		logger.Warn("shown", nil)
		logger.Error("failed", map[string]interface{}{"status": 500})
		logger.Sync()

		output := buf.String()
		assert.NotContains(t, output, "hidden")
		assert.Contains(t, output, "WARN")
		assert.Contains(t, output, "shown")
		assert.Contains(t, output, "ERROR")
		assert.Contains(t, output, `"status": 500`)
	})
}
