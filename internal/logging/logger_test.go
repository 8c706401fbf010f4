package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_FiltersBelowWarn(t *testing.T) {
	var buf bytes.Buffer
	log := New(zapcore.AddSync(&buf))

	log.Info("hidden")
	log.Warn("skipping malformed line", zap.String("text", "5 6 7"))
	_ = log.Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "skipping malformed line")
	assert.Contains(t, out, `"text": "5 6 7"`)
}
