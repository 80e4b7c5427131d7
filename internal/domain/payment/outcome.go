package payment

import (
	"github.com/shopspring/decimal"
)

// Outcome is what initiating a gateway yields: Immediate, ClientContinuation or Redirect
type Outcome interface {
	OrderID() string
	isOutcome()
}

// Immediate is a synchronously finalized order (cash)
type Immediate struct {
	Order   string
	Success bool
	Message string
}

func (o Immediate) OrderID() string { return o.Order }
func (Immediate) isOutcome()        {}

// ClientContinuation needs a provider handshake before the order counts as paid
type ClientContinuation struct {
	Order          string
	Amount         decimal.Decimal
	Secret         string
	ProviderHandle string
	AccountID      *string
}

func (o ClientContinuation) OrderID() string { return o.Order }
func (ClientContinuation) isOutcome()        {}

// Redirect resolves out of band and is discovered by polling
type Redirect struct {
	Order  string
	Amount decimal.Decimal
	URL    string
}

func (o Redirect) OrderID() string { return o.Order }
func (Redirect) isOutcome()        {}

// Record is one store-payment-response submission
type Record struct {
	OrderID       string
	Gateway       Gateway
	Status        Status
	TransactionID *string
	Notes         *string
}

func NewRecord(orderID string, gateway Gateway, status Status, transactionID, notes *string) (Record, error) {
	if orderID == "" {
		return Record{}, ErrMissingOrderID
	}
	if !gateway.IsValid() {
		return Record{}, ErrUnknownGateway
	}
	if _, err := ParseStatus(status.String()); err != nil {
		return Record{}, err
	}
	return Record{
		OrderID:       orderID,
		Gateway:       gateway,
		Status:        status,
		TransactionID: transactionID,
		Notes:         notes,
	}, nil
}

// Provisional marks a still-pending record written while polling continues
func (r Record) Provisional() bool {
	return r.Status == StatusPending
}
