package classifier

import "errors"

var (
	// ErrBaseURLRequired - the classifier base URL is missing from config.
	ErrBaseURLRequired = errors.New("classifier: base URL is required")

	// ErrUnhealthy - the service reported itself unhealthy or unreachable.
	ErrUnhealthy = errors.New("classifier: service unhealthy")
)
