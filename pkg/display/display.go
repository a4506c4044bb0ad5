// Package display implements the leveled, color-tagged console sink.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/live/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode selects when escape sequences are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode accepts auto, always and never (empty means auto).
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// Console writes leveled messages to an io.Writer.
type Console struct {
	mu        sync.Mutex
	out       io.Writer
	verbosity int
	mode      ColorMode
	palette   Palette
	profile   termenv.Profile
}

// Option configures a Console.
type Option func(*Console)

// WithVerbosity sets the threshold messages are gated on.
func WithVerbosity(v int) Option {
	return func(c *Console) {
		if v < 0 {
			v = 0
		}
		c.verbosity = v
	}
}

// WithColorMode overrides terminal detection.
func WithColorMode(mode ColorMode) Option {
	return func(c *Console) {
		c.mode = mode
	}
}

// WithPalette replaces the default color assignments.
func WithPalette(p Palette) Option {
	return func(c *Console) {
		c.palette = p
	}
}

// New creates a console sink. A nil writer means os.Stdout.
func New(w io.Writer, opts ...Option) *Console {
	if w == nil {
		w = os.Stdout
	}
	c := &Console{
		out:     w,
		mode:    ColorAuto,
		palette: DefaultPalette(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.profile = c.resolveProfile()
	return c
}

func (c *Console) resolveProfile() termenv.Profile {
	switch c.mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		return termenv.ANSI
	}
	if !IsTerminal(c.out) || termenv.EnvNoColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Verbosity implements ports.Display.
func (c *Console) Verbosity() int {
	return c.verbosity
}

// Profile returns the resolved color profile.
func (c *Console) Profile() termenv.Profile {
	return c.profile
}

// Display implements ports.Display. Each line is colored separately so
// escape sequences never span a newline.
func (c *Console) Display(msg string, minVerbosity int, color domain.Color) {
	if c.verbosity < minVerbosity {
		return
	}

	out := msg
	if code, ok := c.palette[color]; ok && color != domain.ColorNone && c.profile != termenv.Ascii {
		lines := strings.Split(msg, "\n")
		for i, line := range lines {
			if line == "" {
				continue
			}
			lines[i] = c.profile.String(line).Foreground(c.profile.Color(code)).String()
		}
		out = strings.Join(lines, "\n")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, out)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
