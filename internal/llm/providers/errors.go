package providers

import "errors"

// Sentinel errors shared by all generation providers so callers can classify
// failures with errors.Is.
var (
	// ErrProviderUnavailable indicates a network or transport level failure
	// reaching the generation backend.
	ErrProviderUnavailable = errors.New("generation provider unavailable")

	// ErrMalformedResponse indicates the provider answered with an
	// unexpected payload shape.
	ErrMalformedResponse = errors.New("unexpected generation response shape")
)
