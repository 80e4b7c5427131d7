package errs

import "errors"

// Error taxonomy shared by the usecase and handler layers
var (
	// Network round trips that may succeed when repeated (timeouts, 5xx, breaker open)
	ErrTransient = errors.New("transient commerce api failure")

	// Authoritative 4xx rejections from the commerce backend
	ErrRejected = errors.New("rejected by commerce api")

	// Payment provider reported a failure
	ErrPaymentFailed = errors.New("payment failed")

	// Session errors
	ErrUnauthenticated = errors.New("unauthenticated")
)
