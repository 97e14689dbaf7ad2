package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/inch/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("session created")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "session created")
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("configuration fell back to defaults")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "configuration fell back to defaults")
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(zerr.New("emit failed"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "emit failed")
}
