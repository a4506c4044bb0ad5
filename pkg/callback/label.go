package callback

import (
	"fmt"

	"github.com/aretw0/live/pkg/domain"
	"golang.org/x/text/unicode/norm"
)

const (
	labelMaxLen   = 25
	labelKeepLen  = 22
	labelEllipsis = "..."
)

// TaskLabel returns "<action> [<name>] <suffix>". Unnamed free-form tasks
// are named after their argument string, cut to 22 characters plus an
// ellipsis when it is longer than 25.
func TaskLabel(task domain.Task, suffix string) string {
	name := task.Name
	if name == "" && domain.IsFreeForm(task.Action) {
		name = truncate(norm.NFC.String(task.Arg(domain.ArgRawParams)))
	}
	return fmt.Sprintf("%s [%s] %s", task.Action, name, suffix)
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= labelMaxLen {
		return s
	}
	return string(runes[:labelKeepLen]) + labelEllipsis
}
