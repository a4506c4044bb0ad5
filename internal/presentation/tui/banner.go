package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the one-line startup banner for long-running commands.
// The profile decides whether it carries color.
func PrintBanner(w io.Writer, p termenv.Profile, mode, version, detail string) {
	name := p.String("live").Foreground(p.Color("#a78bfa")).Bold()
	meta := p.String(fmt.Sprintf("%s %s", mode, version)).Foreground(p.Color("#818cf8"))
	if detail == "" {
		fmt.Fprintf(w, "%s %s\n", name, meta)
		return
	}
	fmt.Fprintf(w, "%s %s %s\n", name, meta, p.String(detail).Faint())
}
