package callback

import (
	"log/slog"

	"github.com/aretw0/live/pkg/domain"
	"github.com/aretw0/live/pkg/ports"
)

// Hooks observe rendered outcomes. Nil fields are skipped.
type Hooks struct {
	OnPlayStart func(*domain.Play)
	OnOutcome   func(domain.Outcome)
}

// Option defines a functional option for configuring the Callback.
type Option func(*Callback)

// WithFailurePolicy chooses the failure rendering policy. It is required.
func WithFailurePolicy(policy FailurePolicy) Option {
	return func(c *Callback) {
		c.policy = policy
	}
}

// WithSanitizer replaces the default result sanitizer.
func WithSanitizer(s ports.Sanitizer) Option {
	return func(c *Callback) {
		c.sanitizer = s
	}
}

// WithDiffRenderer replaces the default unified diff renderer.
func WithDiffRenderer(r ports.DiffRenderer) Option {
	return func(c *Callback) {
		c.diff = r
	}
}

// WithDiagnosticDumper enables the diagnostic block on failures.
// It only takes effect with FailureDetailed.
func WithDiagnosticDumper(d ports.DiagnosticDumper) Option {
	return func(c *Callback) {
		c.diagnostic = d
	}
}

// WithItemRenderer replaces the baseline looped-item rendering.
func WithItemRenderer(r ports.ItemRenderer) Option {
	return func(c *Callback) {
		c.items = r
	}
}

// WithHooks registers outcome observers.
func WithHooks(h Hooks) Option {
	return func(c *Callback) {
		c.hooks = h
	}
}

// WithLogger sets the structured logger for operational messages.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Callback) {
		c.logger = logger
	}
}
