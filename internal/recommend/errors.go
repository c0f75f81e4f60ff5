package recommend

import "errors"

var (
	// ErrNoMatch is a valid empty outcome, not a failure: nothing in
	// the catalog or the history resembled the request.
	ErrNoMatch = errors.New("no close matches found for the input")
)
