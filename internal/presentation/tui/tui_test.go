package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner_Ascii(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, termenv.Ascii, "serve", "v0.1.0", "listening on :8080")
	assert.Equal(t, "live serve v0.1.0 listening on :8080\n", buf.String())

	buf.Reset()
	PrintBanner(&buf, termenv.Ascii, "tail", "v0.1.0", "")
	assert.Equal(t, "live tail v0.1.0\n", buf.String())
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer(60)
	require.NoError(t, err)

	out, err := render("# Config\n\nsome `value`")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "Config"))
}
