package logger_test

import (
	"bytes"
	"testing"

	"github.com/Josmithr/rushstack/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func newBuffered(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()

	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_Info(t *testing.T) {
	l, buf := newBuffered(t)

	l.Info("checking repo state")

	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "checking repo state")
}

func TestLogger_Warn(t *testing.T) {
	l, buf := newBuffered(t)

	l.Warn("repo state is out of date")

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "repo state is out of date")
}

func TestLogger_Error(t *testing.T) {
	l, buf := newBuffered(t)

	l.Error(zerr.New("boom"))

	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "boom")
}
