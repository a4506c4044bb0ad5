package live

import (
	"io"

	"github.com/aretw0/live/pkg/callback"
	"github.com/aretw0/live/pkg/display"
)

// Version is the release reported by the CLI. Builds override it with
// -ldflags "-X github.com/aretw0/live.Version=...".
var Version = "0.1.0-dev"

// New returns a callback writing to w with the default collaborators.
// Display options tune verbosity, color mode and palette.
func New(w io.Writer, policy callback.FailurePolicy, opts ...display.Option) (*callback.Callback, error) {
	return callback.New(display.New(w, opts...), callback.WithFailurePolicy(policy))
}
