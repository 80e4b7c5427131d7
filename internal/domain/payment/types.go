package payment

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownGateway     = errors.New("unknown payment gateway")
	ErrInvalidStatus      = errors.New("invalid payment status")
	ErrTerminalStatus     = errors.New("payment status is already terminal")
	ErrMissingOrderID     = errors.New("order id is required")
	ErrMissingCredentials = errors.New("payment credentials are required for this gateway")
)

type Gateway string

const (
	GatewayCash   Gateway = "cash"
	GatewayCard   Gateway = "card"
	GatewayWallet Gateway = "wallet"
)

func ParseGateway(s string) (Gateway, error) {
	g := Gateway(s)
	if !g.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownGateway, s)
	}
	return g, nil
}

func (g Gateway) String() string {
	return string(g)
}

func (g Gateway) IsValid() bool {
	switch g {
	case GatewayCash, GatewayCard, GatewayWallet:
		return true
	default:
		return false
	}
}

// Descriptor is one entry of the gateway list offered at checkout
type Descriptor struct {
	ID      Gateway
	Label   string
	Enabled bool
}

type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusSuccess, StatusFailure:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailure
}

// CanTransitionTo allows pending -> success|failure only
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && next.IsTerminal()
}

// Code is the payment_status value sent to store-payment-response
func (s Status) Code() int {
	switch s {
	case StatusSuccess:
		return 1
	case StatusPending:
		return 2
	default:
		return 0
	}
}
