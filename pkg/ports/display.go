package ports

import "github.com/aretw0/live/pkg/domain"

// Display is the leveled output sink.
type Display interface {
	// Display writes msg when the sink's verbosity is at least minVerbosity.
	// A minVerbosity of 0 always writes.
	Display(msg string, minVerbosity int, color domain.Color)

	// Verbosity returns the sink's threshold. It is read, never changed, by renderers.
	Verbosity() int
}
