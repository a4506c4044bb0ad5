package display

import (
	"bytes"
	"testing"

	"github.com/aretw0/live/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_VerbosityGate(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(buf, WithVerbosity(2), WithColorMode(ColorNever))

	c.Display("always", 0, domain.ColorNone)
	c.Display("two", 2, domain.ColorOK)
	c.Display("three", 3, domain.ColorOK)

	assert.Equal(t, "always\ntwo\n", buf.String())
	assert.Equal(t, 2, c.Verbosity())
}

func TestConsole_NegativeVerbosityClamps(t *testing.T) {
	c := New(&bytes.Buffer{}, WithVerbosity(-4))
	assert.Equal(t, 0, c.Verbosity())
}

func TestConsole_ColorAlways(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(buf, WithColorMode(ColorAlways))

	c.Display("ok line\n\nsecond", 0, domain.ColorOK)

	out := buf.String()
	assert.Contains(t, out, "\x1b[32mok line")
	assert.Contains(t, out, "\x1b[32msecond")
	assert.Contains(t, out, "\n\n", "empty lines stay uncolored")
}

func TestConsole_NoColorForUntagged(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(buf, WithColorMode(ColorAlways))

	c.Display("plain", 0, domain.ColorNone)

	assert.Equal(t, "plain\n", buf.String())
}

func TestConsole_AutoOnBufferIsPlain(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(buf)

	c.Display("x", 0, domain.ColorError)

	assert.Equal(t, "x\n", buf.String())
	assert.False(t, IsTerminal(buf))
}

func TestPalette_Merge(t *testing.T) {
	p := DefaultPalette().Merge(map[string]string{"ok": "#00ff00", "debug": ""})

	assert.Equal(t, "#00ff00", p[domain.ColorOK])
	_, hasDebug := p[domain.ColorDebug]
	assert.False(t, hasDebug)
	assert.Equal(t, "2", DefaultPalette()[domain.ColorOK], "default palette is not modified")
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": ColorAuto, "AUTO": ColorAuto, "always": ColorAlways, " never ": ColorNever} {
		got, err := ParseColorMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseColorMode("sometimes")
	assert.Error(t, err)
}
