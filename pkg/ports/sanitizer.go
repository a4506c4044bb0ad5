package ports

import "github.com/aretw0/live/pkg/domain"

// Sanitizer prepares results for display. Every method returns a copy and
// leaves its argument untouched.
type Sanitizer interface {
	// StripInternalKeys removes engine bookkeeping keys.
	StripInternalKeys(result domain.Result) domain.Result

	// CleanResults removes noise keys for the given action.
	CleanResults(result domain.Result, action string) domain.Result

	// HandleWarnings reports embedded warnings and deprecations and drops them.
	HandleWarnings(result domain.Result) domain.Result

	// HandleException reports an embedded exception.
	HandleException(result domain.Result) domain.Result
}
