package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogLevel(t *testing.T) {
	l := New("")

	for _, level := range []string{"trace", "debug", "info", "warn", "error", "fatal"} {
		l.SetLogLevel(level)
		assert.Equal(t, level, l.GetLogLevel())
	}

	l.SetLogLevel("verbose")
	assert.Equal(t, "info", l.GetLogLevel())
}

func TestTaggedLoggerDelegatesLevel(t *testing.T) {
	inner := New("")
	tagged := NewTaggedLogger(inner, "session", "abc")

	tagged.SetLogLevel("debug")
	assert.Equal(t, "debug", inner.GetLogLevel())
	assert.Equal(t, "debug", tagged.GetLogLevel())
}

func TestTaggedLoggerPrependsTag(t *testing.T) {
	tagged := NewTaggedLogger(New(""), "session", "abc")

	args := tagged.with([]any{"k", 1})
	assert.Equal(t, []any{"session", "abc", "k", 1}, args)

	// исходный срез тега не должен меняться
	_ = tagged.with([]any{"x", 2})
	assert.Equal(t, []any{"session", "abc"}, tagged.tag)
}

func TestCustomLevelLabels(t *testing.T) {
	var buf bytes.Buffer
	l := New("", WithOutput(&buf))

	l.Trace("hidden")
	assert.Empty(t, buf.String())

	l.SetLogLevel("trace")
	l.Trace("compiled", "engine", "re2")
	assert.Contains(t, buf.String(), "level=TRACE")
	assert.Contains(t, buf.String(), "msg=compiled")
	assert.Contains(t, buf.String(), "engine=re2")
}

func TestErrorAddsErrorAttr(t *testing.T) {
	var buf bytes.Buffer
	l := New("", WithOutput(&buf))

	l.Error("Match failed", errors.New("timeout"), "session", "abc")
	assert.Contains(t, buf.String(), "error=timeout")
	assert.Contains(t, buf.String(), "session=abc")
}

func TestFileHandlerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "main.log")
	l := New(path, WithOutput(&bytes.Buffer{}), WithRotation(1, 1, 1, false))

	l.Info("Session created", "session", "abc")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Session created"`)
	assert.Contains(t, string(data), `"session":"abc"`)
}
