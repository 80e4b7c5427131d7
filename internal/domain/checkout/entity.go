package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront-bff/internal/domain/address"
	"storefront-bff/internal/domain/cart"
	"storefront-bff/internal/domain/coupon"
	"storefront-bff/internal/domain/payment"
)

// Order is the server-side order held while its payment completes
type Order struct {
	ID      string
	Gateway payment.Gateway
	Amount  decimal.Decimal
}

// Result is the terminal outcome of one checkout
type Result struct {
	Success bool
	OrderID string
	Message string
}

// Totals keeps full precision; use Display for rounded values
type Totals struct {
	Subtotal        decimal.Decimal
	ShippingCost    decimal.Decimal
	DiscountPercent decimal.Decimal
	Total           decimal.Decimal
}

// Display rounds to currency precision
func (t Totals) Display() (subtotal, shipping, total string) {
	return t.Subtotal.StringFixed(2), t.ShippingCost.StringFixed(2), t.Total.StringFixed(2)
}

// SubmitRequest is the frozen input of order creation
type SubmitRequest struct {
	ShippingAddressID string
	BillingAddressID  string
	Gateway           payment.Gateway
	CouponCode        *string
	ShippingCost      decimal.Decimal
	ShippingRule      string
	Total             decimal.Decimal
}

// Refresh is re-fetched server state applied right before an order is created
type Refresh struct {
	Cart           cart.Snapshot
	Book           address.Book
	Gateways       []payment.Descriptor
	Serviceability address.Serviceability
}

// Session is one user's checkout. It owns the active coupon and in-progress order.
type Session struct {
	id        uuid.UUID
	userID    string
	state     State
	cart      cart.Snapshot
	book      address.Book
	gateways  []payment.Descriptor
	shipping  string
	billing   string
	svc       *address.Serviceability
	svcStatus ServiceabilityStatus
	svcGen    uint64
	gateway   *payment.Gateway
	coupon    *coupon.Coupon
	order     *Order
	result    *Result
	notice    string
	updatedAt time.Time
}

func NewSession(id uuid.UUID, userID string, now time.Time) *Session {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Session{
		id:        id,
		userID:    userID,
		state:     StateLoading,
		svcStatus: ServiceabilityUnknown,
		updatedAt: now,
	}
}

func (s *Session) transition(next State, now time.Time) error {
	if !s.state.CanTransitionTo(next) {
		return &InvalidTransitionError{From: s.state, To: next}
	}
	s.state = next
	s.updatedAt = now
	return nil
}

// Load moves Loading to Ready, or to EmptyCart when there is nothing to buy.
// Existing selections survive a reload when still valid; otherwise defaults are preselected.
// It returns true when the shipping address must be validated.
func (s *Session) Load(snapshot cart.Snapshot, book address.Book, gateways []payment.Descriptor, now time.Time) (bool, error) {
	if s.state != StateLoading {
		return false, &InvalidTransitionError{From: s.state, To: StateReady}
	}

	s.cart = snapshot
	s.book = book
	s.gateways = append([]payment.Descriptor(nil), gateways...)

	if snapshot.IsEmpty() {
		return false, s.transition(StateEmptyCart, now)
	}

	if s.shipping != "" && !book.Contains(s.shipping) {
		s.shipping = ""
	}
	if s.billing != "" && !book.Contains(s.billing) {
		s.billing = ""
	}
	if s.gateway != nil && !s.gatewayEnabled(*s.gateway) {
		s.gateway = nil
	}
	if s.shipping == "" {
		if def, ok := book.DefaultShipping(); ok {
			s.shipping = def.ID
		}
	}
	if s.billing == "" {
		if def, ok := book.DefaultBilling(); ok {
			s.billing = def.ID
		}
	}

	s.svc = nil
	s.svcStatus = ServiceabilityUnknown
	if s.shipping == "" {
		return false, s.transition(StateReady, now)
	}

	s.svcGen++
	s.svcStatus = ServiceabilityChecking
	return true, s.transition(StateValidating, now)
}

// SelectShipping starts validation of a new shipping address. The returned generation
// must accompany the check result; results for older generations are discarded.
func (s *Session) SelectShipping(addressID string, now time.Time) (uint64, error) {
	if s.state.InFlight() {
		return 0, ErrSubmissionInProgress
	}
	if s.state != StateReady && s.state != StateValidating {
		return 0, &InvalidTransitionError{From: s.state, To: StateValidating}
	}
	if !s.book.Contains(addressID) {
		return 0, ErrUnknownAddress
	}

	s.shipping = addressID
	s.svc = nil
	s.svcStatus = ServiceabilityChecking
	s.svcGen++
	s.notice = ""
	if err := s.transition(StateValidating, now); err != nil {
		return 0, err
	}
	return s.svcGen, nil
}

// ValidationTarget returns the address and generation currently awaiting a check
func (s *Session) ValidationTarget() (string, uint64, bool) {
	if s.state != StateValidating || s.shipping == "" {
		return "", 0, false
	}
	return s.shipping, s.svcGen, true
}

// ApplyServiceability stores a check result. Stale results return false and change nothing.
func (s *Session) ApplyServiceability(gen uint64, result address.Serviceability, now time.Time) bool {
	if gen != s.svcGen || !result.AppliesTo(s.shipping) {
		return false
	}
	s.svc = &result
	if result.Serviceable() {
		s.svcStatus = ServiceabilityServiceable
	} else {
		s.svcStatus = ServiceabilityUnserviceable
		s.gateway = nil
		s.notice = ErrUnserviceable.Error()
	}
	if s.state == StateValidating {
		s.state = StateReady
	}
	s.updatedAt = now
	return true
}

// FailServiceability leaves serviceability unknown, which blocks gateway selection and submission
func (s *Session) FailServiceability(gen uint64, now time.Time) bool {
	if gen != s.svcGen {
		return false
	}
	s.svc = nil
	s.svcStatus = ServiceabilityUnknown
	s.gateway = nil
	s.notice = ErrServiceabilityUnknown.Error()
	if s.state == StateValidating {
		s.state = StateReady
	}
	s.updatedAt = now
	return true
}

func (s *Session) SelectBilling(addressID string, now time.Time) error {
	if s.state.InFlight() {
		return ErrSubmissionInProgress
	}
	if !s.book.Contains(addressID) {
		return ErrUnknownAddress
	}
	s.billing = addressID
	s.updatedAt = now
	return nil
}

// GatewaySelectable is false until the current shipping address is known to be serviceable
func (s *Session) GatewaySelectable() bool {
	return s.state == StateReady && s.svcStatus == ServiceabilityServiceable
}

func (s *Session) SelectGateway(g payment.Gateway, now time.Time) error {
	if s.state.InFlight() {
		return ErrSubmissionInProgress
	}
	if err := s.serviceabilityError(); err != nil {
		return err
	}
	if !s.gatewayEnabled(g) {
		return ErrPaymentMethodUnavailable
	}
	s.gateway = &g
	s.updatedAt = now
	return nil
}

func (s *Session) ApplyCoupon(c *coupon.Coupon, now time.Time) error {
	if s.state.InFlight() {
		return ErrSubmissionInProgress
	}
	s.coupon = c
	s.updatedAt = now
	return nil
}

func (s *Session) RemoveCoupon(now time.Time) error {
	if s.state.InFlight() {
		return ErrSubmissionInProgress
	}
	s.coupon = nil
	s.updatedAt = now
	return nil
}

// RefreshCart replaces the snapshot after a server-side change
func (s *Session) RefreshCart(snapshot cart.Snapshot, now time.Time) error {
	s.cart = snapshot
	s.updatedAt = now
	if snapshot.IsEmpty() && !s.state.InFlight() && s.state != StateTerminal {
		s.state = StateEmptyCart
		return ErrEmptyCart
	}
	return nil
}

// Totals computes (subtotal + shipping) * (1 - discount/100) without intermediate rounding
func (s *Session) Totals() Totals {
	subtotal := s.cart.Subtotal()
	shipping := decimal.Zero
	if s.svc != nil && s.svc.Serviceable() {
		shipping = s.svc.ShippingCost()
	}

	gross := subtotal.Add(shipping)
	t := Totals{
		Subtotal:        subtotal,
		ShippingCost:    shipping,
		DiscountPercent: decimal.Zero,
		Total:           gross,
	}
	if s.coupon != nil {
		t.DiscountPercent = s.coupon.Discount().Value()
		t.Total = s.coupon.ApplyDiscount(gross)
	}
	return t
}

// Validate checks every local submit precondition
func (s *Session) Validate() error {
	switch {
	case s.state.InFlight():
		return ErrSubmissionInProgress
	case s.state == StateEmptyCart:
		return ErrEmptyCart
	case s.state == StateTerminal || s.state == StateLoading:
		return &InvalidTransitionError{From: s.state, To: StateSubmitting}
	case s.shipping == "":
		return ErrMissingShippingAddress
	case s.gateway == nil:
		return ErrMissingGateway
	}
	return s.serviceabilityError()
}

func (s *Session) serviceabilityError() error {
	switch s.svcStatus {
	case ServiceabilityServiceable:
		return nil
	case ServiceabilityUnserviceable:
		return ErrUnserviceable
	default:
		return ErrServiceabilityUnknown
	}
}

// BeginSubmit enters Submitting. It fails without side effects when a precondition is missing.
func (s *Session) BeginSubmit(now time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.notice = ""
	return s.transition(StateSubmitting, now)
}

// ConfirmSubmit applies the pre-commit refresh and returns the order creation input.
// When the refreshed state no longer allows an order the session goes back to Ready (or EmptyCart).
func (s *Session) ConfirmSubmit(r Refresh, now time.Time) (SubmitRequest, error) {
	if s.state != StateSubmitting {
		return SubmitRequest{}, &InvalidTransitionError{From: s.state, To: StateSubmitting}
	}

	s.cart = r.Cart
	s.book = r.Book
	s.gateways = append([]payment.Descriptor(nil), r.Gateways...)

	if r.Cart.IsEmpty() {
		return SubmitRequest{}, s.fallBack(StateEmptyCart, ErrEmptyCart, now)
	}
	if !r.Book.Contains(s.shipping) {
		s.shipping = ""
		s.svc = nil
		s.svcStatus = ServiceabilityUnknown
		return SubmitRequest{}, s.fallBack(StateReady, ErrMissingShippingAddress, now)
	}
	if s.billing != "" && !r.Book.Contains(s.billing) {
		s.billing = ""
	}
	if !s.gatewayEnabled(*s.gateway) {
		s.gateway = nil
		return SubmitRequest{}, s.fallBack(StateReady, ErrPaymentMethodUnavailable, now)
	}

	s.svcGen++
	if !r.Serviceability.AppliesTo(s.shipping) {
		s.svc = nil
		s.svcStatus = ServiceabilityUnknown
		s.gateway = nil
		return SubmitRequest{}, s.fallBack(StateReady, ErrServiceabilityUnknown, now)
	}
	svc := r.Serviceability
	s.svc = &svc
	if !svc.Serviceable() {
		s.svcStatus = ServiceabilityUnserviceable
		s.gateway = nil
		return SubmitRequest{}, s.fallBack(StateReady, ErrUnserviceable, now)
	}
	s.svcStatus = ServiceabilityServiceable

	req := SubmitRequest{
		ShippingAddressID: s.shipping,
		BillingAddressID:  s.BillingAddressID(),
		Gateway:           *s.gateway,
		ShippingCost:      svc.ShippingCost(),
		ShippingRule:      svc.ShippingRule(),
		Total:             s.Totals().Total,
	}
	if s.coupon != nil {
		code := s.coupon.Code().String()
		req.CouponCode = &code
	}
	return req, nil
}

func (s *Session) fallBack(state State, cause error, now time.Time) error {
	s.notice = cause.Error()
	if err := s.transition(state, now); err != nil {
		return err
	}
	return cause
}

// AbortSubmit returns to Ready after a retryable failure before the order exists
func (s *Session) AbortSubmit(message string, now time.Time) error {
	if s.state != StateSubmitting {
		return &InvalidTransitionError{From: s.state, To: StateReady}
	}
	s.notice = message
	return s.transition(StateReady, now)
}

// FailOrder halts the machine after order creation failed. Nothing is retried automatically.
func (s *Session) FailOrder(message string, now time.Time) error {
	if err := s.transition(StateTerminal, now); err != nil {
		return err
	}
	s.result = &Result{Success: false, Message: message}
	return nil
}

// CompleteImmediate finishes a synchronously settled order
func (s *Session) CompleteImmediate(orderID string, success bool, message string, now time.Time) error {
	if err := s.transition(StateTerminal, now); err != nil {
		return err
	}
	s.result = &Result{Success: success, OrderID: orderID, Message: message}
	return nil
}

func (s *Session) AwaitGateway(order Order, now time.Time) error {
	if err := s.transition(StateAwaitingGateway, now); err != nil {
		return err
	}
	s.order = &order
	return nil
}

// Resolve settles the awaited order. A second resolution is ignored and reports false.
func (s *Session) Resolve(orderID string, success bool, message string, now time.Time) (bool, error) {
	if s.state == StateTerminal && s.result != nil && s.result.OrderID == orderID {
		return false, nil
	}
	if s.order == nil || s.order.ID != orderID {
		return false, ErrOrderMismatch
	}
	if err := s.transition(StateTerminal, now); err != nil {
		return false, err
	}
	s.result = &Result{Success: success, OrderID: orderID, Message: message}
	return true, nil
}

// Retry re-enters Loading after a failed order or an emptied cart
func (s *Session) Retry(now time.Time) error {
	switch {
	case s.state == StateEmptyCart:
	case s.state == StateTerminal && s.result != nil && !s.result.Success:
	default:
		return ErrNotRetryable
	}
	s.order = nil
	s.result = nil
	s.notice = ""
	return s.transition(StateLoading, now)
}

func (s *Session) gatewayEnabled(g payment.Gateway) bool {
	for _, d := range s.gateways {
		if d.ID == g {
			return d.Enabled
		}
	}
	return false
}

// BillingAddressID falls back to the shipping address
func (s *Session) BillingAddressID() string {
	if s.billing != "" {
		return s.billing
	}
	return s.shipping
}

func (s *Session) ID() uuid.UUID                              { return s.id }
func (s *Session) UserID() string                             { return s.userID }
func (s *Session) State() State                               { return s.state }
func (s *Session) Cart() cart.Snapshot                        { return s.cart }
func (s *Session) Book() address.Book                         { return s.book }
func (s *Session) ShippingAddressID() string                  { return s.shipping }
func (s *Session) ServiceabilityStatus() ServiceabilityStatus { return s.svcStatus }
func (s *Session) Serviceability() *address.Serviceability    { return s.svc }
func (s *Session) Gateway() *payment.Gateway                  { return s.gateway }
func (s *Session) Coupon() *coupon.Coupon                     { return s.coupon }
func (s *Session) Order() *Order                              { return s.order }
func (s *Session) Result() *Result                            { return s.result }
func (s *Session) Notice() string                             { return s.notice }
func (s *Session) UpdatedAt() time.Time                       { return s.updatedAt }

// Gateways lists descriptors; disabled ones are never offered
func (s *Session) Gateways() []payment.Descriptor {
	out := make([]payment.Descriptor, 0, len(s.gateways))
	for _, d := range s.gateways {
		if d.Enabled {
			out = append(out, d)
		}
	}
	return out
}
