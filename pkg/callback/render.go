package callback

import (
	"fmt"
	"strings"

	"github.com/aretw0/live/pkg/domain"
)

// displayCommandGenericMsg prints the rc line, stdout (unless it was already
// streamed live) and stderr of a free-form command.
func (c *Callback) displayCommandGenericMsg(task domain.Task, result domain.Result, caption string, color domain.Color) {
	c.display.Display(fmt.Sprintf("%s | rc=%d >>", TaskLabel(task, caption), result.Int(domain.KeyRC, -1)), 0, color)

	if !result.Bool(domain.KeyLiveStdout) {
		c.display.Display("stdout was:", 0, domain.ColorHighlight)
		c.display.Display(result.String(domain.KeyStdout), 0, domain.ColorNone)
	}

	if stderr := result.String(domain.KeyStderr); stderr != "" {
		c.display.Display("stderr was:", 0, domain.ColorHighlight)
		c.display.Display(stderr, 0, domain.ColorError)
	}
}

// displayDebugMsg prints what a debug task asked for: its msg and/or the
// variable it names. An undefined variable switches to the error color.
func (c *Callback) displayDebugMsg(task domain.Task, result domain.Result) {
	color := domain.ColorOK

	if task.Arg(domain.ArgMsg) != "" {
		c.display.Display("debug msg", 0, domain.ColorHighlight)
		c.display.Display(result.String(domain.KeyMsg), 0, color)
	}

	if name := task.Arg(domain.ArgVar); name != "" {
		c.display.Display(fmt.Sprintf("debug var '%s'", name), 0, domain.ColorHighlight)
		text := result.String(name)
		if strings.Contains(text, domain.NotDefinedMarker) {
			color = domain.ColorError
			if task.Path != "" {
				c.display.Display("task path: "+task.Path, 0, domain.ColorDebug)
			}
		}
		c.display.Display(text, 0, color)
	}

	c.display.Display(encodeJSON(map[string]any(result), 0), tierJSON, domain.ColorNone)
}

// commandGenericMsg is the single-block failure text for actions that never
// return JSON.
func commandGenericMsg(host string, result domain.Result, caption string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s | %s | rc=%d >>\n", host, caption, result.Int(domain.KeyRC, -1))
	b.WriteString(result.String(domain.KeyStdout))
	b.WriteString(result.String(domain.KeyStderr))
	b.WriteString(result.String(domain.KeyMsg))
	b.WriteString("\n")
	return b.String()
}
