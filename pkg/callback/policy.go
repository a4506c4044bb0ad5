package callback

import (
	"fmt"
	"strings"

	"github.com/aretw0/live/pkg/domain"
)

// FailurePolicy selects how structured-result failures are rendered.
type FailurePolicy string

const (
	// FailureUnset is the zero value; New rejects it.
	FailureUnset FailurePolicy = ""

	// FailureDetailed prints the task header, the result msg, the remaining
	// dump and, when a DiagnosticDumper is configured, the diagnostic block.
	FailureDetailed FailurePolicy = "detailed"

	// FailureBrief prints a single "<host> | FAILED! => <dump>" line and never
	// runs the diagnostic dump.
	FailureBrief FailurePolicy = "brief"
)

// ParseFailurePolicy accepts "detailed" or "brief".
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch p := FailurePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case FailureDetailed, FailureBrief:
		return p, nil
	default:
		return FailureUnset, fmt.Errorf("%w: %q (want detailed or brief)", domain.ErrInvalidPolicy, s)
	}
}
