package domain

import "errors"

// Error taxonomy shared by all layers. Callers match with errors.Is; layers
// add context with fmt.Errorf("...: %w", err).
var (
	// ErrNotFound: a referenced entity (region id, ticker id, username) does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict: a uniqueness violation (duplicate ticker name, duplicate subscription).
	ErrConflict = errors.New("already exists")
	// ErrValidation: malformed input shape or enum value.
	ErrValidation = errors.New("invalid input")
	// ErrClassification: the classifier returned output that does not match the schema.
	ErrClassification = errors.New("unusable classifier output")
	// ErrUpstreamUnavailable: the classifier or relay is unreachable or timed out.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
