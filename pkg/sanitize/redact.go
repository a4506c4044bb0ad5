package sanitize

import (
	"fmt"
	"regexp"

	"github.com/aretw0/live/pkg/domain"
)

// Masked replaces the value of a redacted key.
const Masked = "***"

// CompilePatterns compiles key patterns for WithRedactedKeys.
func CompilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid redact pattern %q: %w", p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// WithRedactedKeys masks the values of keys matching any pattern, at any
// depth, in the results StripInternalKeys returns.
func WithRedactedKeys(patterns ...*regexp.Regexp) Option {
	return func(s *Sanitizer) {
		s.redact = append(s.redact, patterns...)
	}
}

// Redact returns a copy of result with matching keys masked.
func Redact(result domain.Result, patterns []*regexp.Regexp) domain.Result {
	clean := result.Clone()
	if len(patterns) > 0 {
		maskMap(clean, patterns)
	}
	return clean
}

func maskMap(m map[string]any, patterns []*regexp.Regexp) {
	for k, v := range m {
		if matchesAny(k, patterns) {
			m[k] = Masked
			continue
		}
		switch val := v.(type) {
		case map[string]any:
			maskMap(val, patterns)
		case domain.Result:
			maskMap(val, patterns)
		case []any:
			for _, item := range val {
				if sub, ok := item.(map[string]any); ok {
					maskMap(sub, patterns)
				}
			}
		}
	}
}

func matchesAny(key string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(key) {
			return true
		}
	}
	return false
}
