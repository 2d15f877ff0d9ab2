package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedLogger(buf *bytes.Buffer, level string) *ConsoleLogger {
	l := NewConsoleLogger(buf, level)
	l.now = func() time.Time { return time.Date(2026, 1, 2, 9, 4, 5, 0, time.UTC) }
	return l
}

func TestConsoleLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, "info")

	l.Infof("scanned %d files", 3)

	assert.Equal(t, "[09:04:05] [INFO] scanned 3 files\n", buf.String())
}

func TestConsoleLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, "warn")

	l.Debugf("hidden")
	l.Infof("hidden")
	l.Warnf("shown")
	l.Errorf("shown too")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[WARN] shown")
	assert.Contains(t, buf.String(), "[ERROR] shown too")
}

func TestConsoleLogger_NoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, "debug")
	assert.False(t, l.colorOutput)
}

func TestConsoleLogger_NilWriter(t *testing.T) {
	l := NewConsoleLogger(nil, "trace")
	assert.NotPanics(t, func() { l.Errorf("nothing") })
}

func TestNormalizeLevel(t *testing.T) {
	assert.Equal(t, "debug", NormalizeLevel(" DEBUG "))
	assert.Equal(t, "info", NormalizeLevel("verbose"))
	assert.Equal(t, "info", NormalizeLevel(""))
}

func TestOrNop(t *testing.T) {
	assert.Equal(t, Nop(), OrNop(nil))
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, "info")
	assert.Same(t, l, OrNop(l))
}
