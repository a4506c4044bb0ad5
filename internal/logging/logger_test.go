package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.LevelInfo, &buf)

	l.Info("boom", "error", errors.New("bad"))
	l.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "err=bad")
	assert.NotContains(t, out, "error=")
	assert.NotContains(t, out, "hidden")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(" info "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("whatever"))
}

func TestRunID(t *testing.T) {
	id := NewRunID()
	_, err := ulid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, NewRunID())

	var buf bytes.Buffer
	WithRunID(New(slog.LevelInfo, &buf), id).Info("started")
	assert.Contains(t, buf.String(), "run_id="+id)
}
