package domain

import "errors"

// ErrNoDisplay is returned when a renderer is built without an output sink.
var ErrNoDisplay = errors.New("display sink is required")

// ErrFailurePolicyUnset is returned when no failure rendering policy was chosen.
var ErrFailurePolicyUnset = errors.New("failure policy must be configured explicitly")

// ErrUnknownEvent is returned when an event envelope names an unsupported event type.
var ErrUnknownEvent = errors.New("unknown event type")

// ErrInvalidPolicy is returned when a failure policy name cannot be parsed.
var ErrInvalidPolicy = errors.New("invalid failure policy")
