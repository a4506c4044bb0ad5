package callback

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/aretw0/live/pkg/domain"
	"github.com/aretw0/live/pkg/sanitize"
)

// DumpOptions tune DumpResult.
type DumpOptions struct {
	// Indent forces an indentation width. Zero picks 4 for verbose results
	// (verbosity > 2 or the always-verbose flag) and compact output otherwise.
	Indent int

	// SortKeys is kept for callers that mirror the engine's dump signature.
	// Go encodes map keys in sorted order, so output is always sorted.
	SortKeys bool

	// KeepInvocation keeps the invocation key below verbosity 3.
	KeepInvocation bool

	// Strip removes engine-internal keys. Nil strips the default prefix.
	Strip func(domain.Result) domain.Result
}

// alwaysDropped are surfaced elsewhere or redundant with the banner.
var alwaysDropped = []string{domain.KeyException, domain.KeyMsg, domain.KeyFailed, domain.KeyChanged}

// DumpResult serializes what is left of result after stripping internal
// keys, invocation (below verbosity 3 unless kept), diff (below verbosity 3)
// and the always-dropped keys. It returns "" when nothing is left.
func DumpResult(result domain.Result, verbosity int, opts DumpOptions) string {
	indent := opts.Indent
	if indent == 0 && (result.Bool(domain.KeyVerboseAlways) || verbosity > 2) {
		indent = 4
	}

	strip := opts.Strip
	if strip == nil {
		strip = func(r domain.Result) domain.Result {
			return sanitize.StripInternalKeys(r, domain.InternalPrefix)
		}
	}
	abridged := strip(result)

	if !opts.KeepInvocation && verbosity < 3 {
		delete(abridged, domain.KeyInvocation)
	}
	if verbosity < 3 {
		delete(abridged, domain.KeyDiff)
	}
	for _, k := range alwaysDropped {
		delete(abridged, k)
	}

	if len(abridged) == 0 {
		return ""
	}
	return encodeJSON(map[string]any(abridged), indent)
}

// encodeJSON writes v without HTML escaping; non-ASCII text stays readable.
func encodeJSON(v any, indent int) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(v); err != nil {
		return domain.Text(v)
	}
	return strings.TrimRight(buf.String(), "\n")
}
