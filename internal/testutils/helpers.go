package testutils

import (
	"strings"
	"sync"

	"github.com/aretw0/live/pkg/domain"
)

// Line is one call recorded by Display.
type Line struct {
	Text         string
	MinVerbosity int
	Color        domain.Color
}

// Display is a ports.Display fake that records every call, including the
// ones its verbosity would suppress. Shown returns what a real sink prints.
type Display struct {
	mu    sync.Mutex
	Level int
	Lines []Line
}

// NewDisplay returns a recording display at the given verbosity.
func NewDisplay(level int) *Display {
	return &Display{Level: level}
}

// Display implements ports.Display.
func (d *Display) Display(msg string, minVerbosity int, color domain.Color) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Lines = append(d.Lines, Line{Text: msg, MinVerbosity: minVerbosity, Color: color})
}

// Verbosity implements ports.Display.
func (d *Display) Verbosity() int {
	return d.Level
}

// Shown returns the lines a sink at Level would actually write.
func (d *Display) Shown() []Line {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []Line
	for _, l := range d.Lines {
		if d.Level >= l.MinVerbosity {
			out = append(out, l)
		}
	}
	return out
}

// Texts returns the text of the shown lines.
func (d *Display) Texts() []string {
	shown := d.Shown()
	out := make([]string, len(shown))
	for i, l := range shown {
		out[i] = l.Text
	}
	return out
}

// Output joins the shown lines the way a console would print them.
func (d *Display) Output() string {
	return strings.Join(d.Texts(), "\n")
}

// Reset forgets recorded lines.
func (d *Display) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Lines = nil
}
