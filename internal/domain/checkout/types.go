package checkout

import (
	"errors"
	"fmt"
)

type State string

const (
	StateLoading         State = "loading"
	StateReady           State = "ready"
	StateValidating      State = "validating"
	StateSubmitting      State = "submitting"
	StateAwaitingGateway State = "awaiting_gateway_completion"
	StateTerminal        State = "terminal"
	StateEmptyCart       State = "empty_cart"
)

var transitions = map[State][]State{
	StateLoading:         {StateReady, StateEmptyCart, StateValidating},
	StateReady:           {StateValidating, StateSubmitting, StateEmptyCart},
	StateValidating:      {StateReady, StateValidating, StateEmptyCart},
	StateSubmitting:      {StateReady, StateAwaitingGateway, StateTerminal, StateEmptyCart},
	StateAwaitingGateway: {StateTerminal},
	StateTerminal:        {StateLoading},
	StateEmptyCart:       {StateLoading},
}

func (s State) String() string {
	return string(s)
}

func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// InFlight is true while an order is being placed or paid; submit stays disabled
func (s State) InFlight() bool {
	return s == StateSubmitting || s == StateAwaitingGateway
}

// ServiceabilityStatus is unknown until a check for the current shipping address succeeds
type ServiceabilityStatus string

const (
	ServiceabilityUnknown       ServiceabilityStatus = "unknown"
	ServiceabilityChecking      ServiceabilityStatus = "checking"
	ServiceabilityServiceable   ServiceabilityStatus = "serviceable"
	ServiceabilityUnserviceable ServiceabilityStatus = "unserviceable"
)

// RecoveryBrowseCatalog is the action offered from the empty cart state
const RecoveryBrowseCatalog = "browse_catalog"

// ErrValidation marks every locally detected precondition failure
var ErrValidation = errors.New("checkout validation failed")

type ValidationError struct {
	Field   string
	message string
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, message: message}
}

func (e *ValidationError) Error() string {
	return e.message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

var (
	ErrMissingShippingAddress = newValidationError("shipping_address", "select a shipping address")
	ErrMissingGateway         = newValidationError("gateway", "select a payment method")
	ErrUnserviceable          = newValidationError("shipping_address", "we do not deliver to this address")
	ErrServiceabilityUnknown  = newValidationError("shipping_address", "delivery to this address could not be verified")
	ErrUnknownAddress         = newValidationError("address", "address not found")
)

var (
	ErrPaymentMethodUnavailable = errors.New("payment method unavailable")
	ErrSubmissionInProgress     = errors.New("an order is already being placed")
	ErrEmptyCart                = errors.New("cart is empty")
	ErrOrderMismatch            = errors.New("order does not belong to this checkout")
	ErrNotRetryable             = errors.New("checkout can only be retried after a failed order")
)

type InvalidTransitionError struct {
	From State
	To   State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid checkout transition %s -> %s", e.From, e.To)
}
