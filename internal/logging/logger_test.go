package logging_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/cliopts/internal/logging"
)

func init() {
	// Disable color output in tests so assertions match plain text.
	color.NoColor = true
}

// capture collects log output produced by fn.
func capture(t *testing.T, fn func()) string {
	t.Helper()

	var buf bytes.Buffer
	prev := logging.SetOutput(&buf)
	defer logging.SetOutput(prev)

	fn()
	return buf.String()
}

// ---------------------------------------------------------------------------
// FormatDuration tests
// ---------------------------------------------------------------------------

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0s"},
		{45, "45s"},
		{90, "1m 30s"},
		{3661, "1h 1m 1s"},
		{7200, "2h 0m 0s"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, logging.FormatDuration(tt.seconds))
		})
	}
}

// ---------------------------------------------------------------------------
// Log output tests
// ---------------------------------------------------------------------------

func TestInfoOutput(t *testing.T) {
	out := capture(t, func() {
		logging.Info("test message")
	})
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "test message")
}

func TestWarnOutput(t *testing.T) {
	out := capture(t, func() {
		logging.Warn("caution")
	})
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "caution")
}

func TestErrorOutput(t *testing.T) {
	out := capture(t, func() {
		logging.Error("failure")
	})
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "failure")
}

func TestDebugSuppressedWhenNotVerbose(t *testing.T) {
	logging.SetVerbose(false)
	out := capture(t, func() {
		logging.Debug("hidden")
	})
	assert.Empty(t, out)
}

func TestDebugShownWhenVerbose(t *testing.T) {
	logging.SetVerbose(true)
	defer logging.SetVerbose(false)

	out := capture(t, func() {
		logging.Debug("visible")
	})
	assert.Contains(t, out, "[DEBUG]")
	assert.Contains(t, out, "visible")
}
