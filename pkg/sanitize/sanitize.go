// Package sanitize strips engine bookkeeping from results before display and
// reports the warnings, deprecations and exceptions results carry.
package sanitize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aretw0/live/pkg/domain"
	"github.com/aretw0/live/pkg/ports"
)

// debugAllowedKeys survive cleaning of a debug result that carries msg.
var debugAllowedKeys = map[string]bool{
	domain.KeyMsg:          true,
	domain.KeyException:    true,
	domain.KeyWarnings:     true,
	domain.KeyDeprecations: true,
}

// hiddenInDebug are removed from debug results that print a variable.
var hiddenInDebug = []string{
	domain.KeyChanged,
	domain.KeyFailed,
	domain.KeySkipped,
	domain.KeyInvocation,
	domain.KeySkipReason,
}

// Sanitizer is the default ports.Sanitizer.
type Sanitizer struct {
	display ports.Display
	prefix  string
	redact  []*regexp.Regexp
}

var _ ports.Sanitizer = (*Sanitizer)(nil)

// Option configures a Sanitizer.
type Option func(*Sanitizer)

// WithInternalPrefix changes the prefix that marks internal keys.
func WithInternalPrefix(prefix string) Option {
	return func(s *Sanitizer) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// New creates a sanitizer reporting warnings and exceptions to d.
func New(d ports.Display, opts ...Option) *Sanitizer {
	s := &Sanitizer{display: d, prefix: domain.InternalPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StripInternalKeys returns a copy of result without internal keys, at any
// depth, and with redacted keys masked.
func (s *Sanitizer) StripInternalKeys(result domain.Result) domain.Result {
	clean := StripInternalKeys(result, s.prefix)
	if len(s.redact) > 0 {
		maskMap(clean, s.redact)
	}
	return clean
}

// StripInternalKeys returns a copy of result without keys starting with prefix.
func StripInternalKeys(result domain.Result, prefix string) domain.Result {
	clean := result.Clone()
	stripMap(clean, prefix)
	return clean
}

func stripMap(m map[string]any, prefix string) {
	for k, v := range m {
		if strings.HasPrefix(k, prefix) {
			delete(m, k)
			continue
		}
		switch val := v.(type) {
		case map[string]any:
			stripMap(val, prefix)
		case domain.Result:
			stripMap(val, prefix)
		case []any:
			for _, item := range val {
				switch sub := item.(type) {
				case map[string]any:
					stripMap(sub, prefix)
				case domain.Result:
					stripMap(sub, prefix)
				}
			}
		}
	}
}

// CleanResults returns a copy of result with noise removed for action.
// Only debug results are affected: a msg is shown alone, a var lookup drops
// the status flags.
func (s *Sanitizer) CleanResults(result domain.Result, action string) domain.Result {
	clean := result.Clone()
	if action != domain.ActionDebug {
		return clean
	}

	if clean.Has(domain.KeyMsg) {
		for k := range clean {
			if !debugAllowedKeys[k] && !strings.HasPrefix(k, "_") {
				delete(clean, k)
			}
		}
		return clean
	}

	for _, k := range hiddenInDebug {
		delete(clean, k)
	}
	return clean
}

// HandleWarnings reports warnings and deprecations and returns a copy without them.
func (s *Sanitizer) HandleWarnings(result domain.Result) domain.Result {
	clean := result.Clone()

	for _, w := range listOf(clean[domain.KeyWarnings]) {
		if text := domain.Text(w); text != "" {
			s.display.Display(fmt.Sprintf("[WARNING]: %s", text), 0, domain.ColorWarn)
		}
	}
	delete(clean, domain.KeyWarnings)

	for _, d := range listOf(clean[domain.KeyDeprecations]) {
		s.display.Display(deprecationMessage(d), 0, domain.ColorDeprecate)
	}
	delete(clean, domain.KeyDeprecations)

	return clean
}

// HandleException reports an embedded exception. Below verbosity 3 only the
// last traceback line is shown and the key is kept so the dump can drop it.
func (s *Sanitizer) HandleException(result domain.Result) domain.Result {
	clean := result.Clone()
	if !clean.Has(domain.KeyException) {
		return clean
	}

	exception := clean.String(domain.KeyException)
	var msg string
	if s.display.Verbosity() < 3 {
		lines := strings.Split(strings.TrimSpace(exception), "\n")
		msg = "An exception occurred during task execution. To see the full traceback, use -vvv. The error was: " +
			lines[len(lines)-1]
	} else {
		msg = "The full traceback is:\n" + exception
		delete(clean, domain.KeyException)
	}
	s.display.Display(msg, 0, domain.ColorError)
	return clean
}

func deprecationMessage(d any) string {
	m, ok := d.(map[string]any)
	if !ok {
		return fmt.Sprintf("[DEPRECATION WARNING]: %s.", domain.Text(d))
	}
	msg := fmt.Sprintf("[DEPRECATION WARNING]: %s.", domain.Text(m[domain.KeyMsg]))
	if version := domain.Text(m["version"]); version != "" {
		msg += fmt.Sprintf(" This feature will be removed in version %s.", version)
	}
	return msg
}

func listOf(v any) []any {
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		return val
	case []string:
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = s
		}
		return out
	default:
		return []any{val}
	}
}
