package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.error)
	assert.NotNil(t, logger.warn)
}

func TestInfo(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWithWriter(&out, &errOut)

	logger.Info("Test message: %s", "info")

	assert.Contains(t, out.String(), "[INFO] ")
	assert.Contains(t, out.String(), "Test message: info")
	assert.Empty(t, errOut.String())
}

func TestError(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWithWriter(&out, &errOut)

	logger.Error("Test error: %s", "error")

	assert.Contains(t, errOut.String(), "[ERROR] Test error: error")
	assert.Empty(t, out.String())
}

func TestWarn(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWithWriter(&out, &errOut)

	logger.Warn("Test warning: %s", "warning")

	assert.Contains(t, out.String(), "[WARN] Test warning: warning")
}

func TestLogger_Formatting(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWithWriter(&out, &errOut)

	logger.Info("Transaction %s settled for %d units", "tx-1", 100)
	logger.Error("Failed to process request %d: %s", 404, "not found")

	assert.Contains(t, out.String(), "Transaction tx-1 settled for 100 units")
	assert.Contains(t, errOut.String(), "Failed to process request 404: not found")
}
