package usecase

import (
	"context"
	"errors"
	"log/slog"

	"storefront-bff/internal/domain/address"
	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/domain/payment"
	"storefront-bff/internal/pkg/clock"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/usecase/gateway"
	"storefront-bff/internal/usecase/ports"
	"storefront-bff/internal/usecase/readmodel"
	"storefront-bff/internal/usecase/state"

	"golang.org/x/sync/errgroup"
)

var ErrCheckoutNotStarted = errors.New("checkout has not been started")

var (
	_ CheckoutUseCase = (*CheckoutCoordinator)(nil)
	_ PaymentResolver = (*CheckoutCoordinator)(nil)
)

const orderFailedMessage = "We could not place your order"

type HandshakeInput struct {
	OrderID       string
	Success       bool
	TransactionID *string
	ErrorMessage  *string
}

type CheckoutUseCase interface {
	Open(ctx context.Context, p ports.Principal) (*readmodel.CheckoutRM, error)
	SelectShippingAddress(ctx context.Context, p ports.Principal, addressID string) (*readmodel.CheckoutRM, error)
	SelectBillingAddress(ctx context.Context, p ports.Principal, addressID string) (*readmodel.CheckoutRM, error)
	SelectGateway(ctx context.Context, p ports.Principal, gatewayID string) (*readmodel.CheckoutRM, error)
	ApplyCoupon(ctx context.Context, p ports.Principal, code string) (*readmodel.CheckoutRM, error)
	RemoveCoupon(ctx context.Context, p ports.Principal) (*readmodel.CheckoutRM, error)
	Submit(ctx context.Context, p ports.Principal) (*readmodel.SubmitRM, error)
	CompleteHandshake(ctx context.Context, p ports.Principal, in HandshakeInput) (*readmodel.CheckoutRM, error)
	Retry(ctx context.Context, p ports.Principal) (*readmodel.CheckoutRM, error)
	Leave(ctx context.Context, p ports.Principal) error
}

// PaymentResolver owns the orders a checkout placed and receives their terminal outcomes
type PaymentResolver interface {
	// AwaitedOrder reports the order the user's checkout placed with a deferred payment method
	AwaitedOrder(userID string) (orderID string, gw payment.Gateway, ok bool)
	ResolvePayment(userID, orderID string, status payment.Status)
}

// CheckoutCoordinator drives one checkout per user through the checkout state machine
type CheckoutCoordinator struct {
	sessions *CheckoutSessions
	source   ports.CheckoutDataSource
	checker  *ServiceabilityChecker
	coupons  *CouponEngine
	gateways *gateway.Registry
	store    *state.Container
	clock    clock.Clock
	logger   *slog.Logger
}

func NewCheckoutCoordinator(
	sessions *CheckoutSessions,
	source ports.CheckoutDataSource,
	checker *ServiceabilityChecker,
	coupons *CouponEngine,
	gateways *gateway.Registry,
	store *state.Container,
	clk clock.Clock,
	logger *slog.Logger,
) *CheckoutCoordinator {
	return &CheckoutCoordinator{
		sessions: sessions,
		source:   source,
		checker:  checker,
		coupons:  coupons,
		gateways: gateways,
		store:    store,
		clock:    clk,
		logger:   logger,
	}
}

// Open loads the session when it is in Loading and returns the current view
func (c *CheckoutCoordinator) Open(ctx context.Context, p ports.Principal) (*readmodel.CheckoutRM, error) {
	slot := c.sessions.Acquire(p.UserID)

	slot.mu.Lock()
	loading := slot.session.State() == checkout.StateLoading
	slot.mu.Unlock()
	if !loading {
		return c.view(slot), nil
	}

	data, err := c.source.FetchCheckoutData(ctx, p.APIToken)
	if err != nil {
		return nil, errs.Wrap(err, "fetch checkout data")
	}
	c.syncStore(ctx, p.UserID, data)

	slot.mu.Lock()
	var (
		needsCheck bool
		loadErr    error
	)
	if slot.session.State() == checkout.StateLoading {
		needsCheck, loadErr = slot.session.Load(data.Cart, data.Book, data.Gateways, c.clock.Now())
	}
	addressID, gen, _ := slot.session.ValidationTarget()
	st := slot.session.State()
	slot.mu.Unlock()

	if loadErr != nil {
		return nil, loadErr
	}
	c.logger.InfoContext(ctx, "checkout loaded",
		slog.String("user_id", p.UserID),
		slog.String("state", st.String()),
	)
	if needsCheck {
		c.validate(ctx, p, slot, addressID, gen)
	}
	return c.view(slot), nil
}

func (c *CheckoutCoordinator) SelectShippingAddress(ctx context.Context, p ports.Principal, addressID string) (*readmodel.CheckoutRM, error) {
	slot, err := c.lookup(p)
	if err != nil {
		return nil, err
	}

	slot.mu.Lock()
	gen, err := slot.session.SelectShipping(addressID, c.clock.Now())
	slot.mu.Unlock()
	if err != nil {
		return nil, err
	}

	c.validate(ctx, p, slot, addressID, gen)
	return c.view(slot), nil
}

// validate runs the serviceability check outside the lock; stale results are dropped by generation
func (c *CheckoutCoordinator) validate(ctx context.Context, p ports.Principal, slot *sessionSlot, addressID string, gen uint64) {
	result, err := c.checker.Check(ctx, p.APIToken, addressID)

	slot.mu.Lock()
	defer slot.mu.Unlock()

	now := c.clock.Now()
	var applied bool
	if err != nil {
		applied = slot.session.FailServiceability(gen, now)
	} else {
		applied = slot.session.ApplyServiceability(gen, result, now)
	}
	if !applied {
		c.logger.DebugContext(ctx, "discarded stale serviceability result", slog.String("address_id", addressID))
	}
}

func (c *CheckoutCoordinator) SelectBillingAddress(ctx context.Context, p ports.Principal, addressID string) (*readmodel.CheckoutRM, error) {
	return c.mutate(p, func(s *checkout.Session) error {
		return s.SelectBilling(addressID, c.clock.Now())
	})
}

func (c *CheckoutCoordinator) SelectGateway(ctx context.Context, p ports.Principal, gatewayID string) (*readmodel.CheckoutRM, error) {
	g, err := payment.ParseGateway(gatewayID)
	if err != nil {
		return nil, errs.Mark(err, checkout.ErrPaymentMethodUnavailable)
	}
	return c.mutate(p, func(s *checkout.Session) error {
		return s.SelectGateway(g, c.clock.Now())
	})
}

func (c *CheckoutCoordinator) ApplyCoupon(ctx context.Context, p ports.Principal, code string) (*readmodel.CheckoutRM, error) {
	slot, err := c.lookup(p)
	if err != nil {
		return nil, err
	}

	slot.mu.Lock()
	snapshot := slot.session.Cart()
	inFlight := slot.session.State().InFlight()
	slot.mu.Unlock()
	if inFlight {
		return nil, checkout.ErrSubmissionInProgress
	}

	applied, err := c.coupons.Apply(ctx, p.APIToken, code, snapshot)
	if err != nil {
		return nil, err
	}

	// line prices may change server side once a coupon is attached
	data, fetchErr := c.source.FetchCheckoutData(ctx, p.APIToken)
	if fetchErr != nil {
		c.logger.WarnContext(ctx, "cart refresh after coupon failed", slog.Any("error", fetchErr))
	} else {
		c.syncStore(ctx, p.UserID, data)
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()
	now := c.clock.Now()
	if err := slot.session.ApplyCoupon(applied, now); err != nil {
		return nil, err
	}
	if data != nil {
		if err := slot.session.RefreshCart(data.Cart, now); err != nil {
			return nil, err
		}
	}
	return c.viewLocked(slot.session), nil
}

func (c *CheckoutCoordinator) RemoveCoupon(ctx context.Context, p ports.Principal) (*readmodel.CheckoutRM, error) {
	return c.mutate(p, func(s *checkout.Session) error {
		return c.coupons.Remove(s, c.clock.Now())
	})
}

// Submit places the order. Local preconditions are checked first without any network call;
// checkout data and serviceability are then refreshed before the order is created.
func (c *CheckoutCoordinator) Submit(ctx context.Context, p ports.Principal) (*readmodel.SubmitRM, error) {
	slot, err := c.lookup(p)
	if err != nil {
		return nil, err
	}

	slot.mu.Lock()
	err = slot.session.BeginSubmit(c.clock.Now())
	shippingID := slot.session.ShippingAddressID()
	slot.mu.Unlock()
	if err != nil {
		return nil, err
	}

	refresh, err := c.refresh(ctx, p, shippingID)
	if err != nil {
		slot.mu.Lock()
		_ = slot.session.AbortSubmit(transientMessage(err), c.clock.Now())
		slot.mu.Unlock()
		return nil, err
	}

	slot.mu.Lock()
	req, err := slot.session.ConfirmSubmit(refresh, c.clock.Now())
	slot.mu.Unlock()
	if err != nil {
		return nil, err
	}

	adapter, err := c.gateways.Get(req.Gateway)
	if err != nil {
		slot.mu.Lock()
		_ = slot.session.AbortSubmit(err.Error(), c.clock.Now())
		slot.mu.Unlock()
		return nil, err
	}

	log := c.logger.With(slog.String("user_id", p.UserID), slog.String("gateway", req.Gateway.String()))
	outcome, err := adapter.Initiate(ctx, p.APIToken, req)
	if err != nil {
		log.ErrorContext(ctx, "order creation failed", slog.Any("error", err))
		msg := errs.Hint(err)
		if msg == "" {
			msg = orderFailedMessage
		}
		slot.mu.Lock()
		_ = slot.session.FailOrder(msg, c.clock.Now())
		slot.mu.Unlock()
		return &readmodel.SubmitRM{Checkout: *c.view(slot)}, nil
	}

	rm := &readmodel.SubmitRM{}
	slot.mu.Lock()
	now := c.clock.Now()
	switch o := outcome.(type) {
	case payment.Immediate:
		err = slot.session.CompleteImmediate(o.Order, o.Success, o.Message, now)
	case payment.ClientContinuation:
		err = slot.session.AwaitGateway(checkout.Order{ID: o.Order, Gateway: req.Gateway, Amount: o.Amount}, now)
		rm.Continuation = &readmodel.ContinuationRM{
			OrderID:        o.Order,
			Amount:         o.Amount.StringFixed(2),
			ClientSecret:   o.Secret,
			PublishableKey: o.ProviderHandle,
			AccountID:      o.AccountID,
		}
	case payment.Redirect:
		err = slot.session.AwaitGateway(checkout.Order{ID: o.Order, Gateway: req.Gateway, Amount: o.Amount}, now)
		rm.Redirect = &readmodel.RedirectRM{OrderID: o.Order, Amount: o.Amount.StringFixed(2), URL: o.URL}
	default:
		err = errs.Newf("unsupported gateway outcome %T", outcome)
	}
	slot.mu.Unlock()
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "order created", slog.String("order_id", outcome.OrderID()))

	c.refetchCart(ctx, p, slot)
	rm.Checkout = *c.view(slot)
	return rm, nil
}

func (c *CheckoutCoordinator) refresh(ctx context.Context, p ports.Principal, shippingID string) (checkout.Refresh, error) {
	var (
		data *ports.CheckoutData
		svc  address.Serviceability
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := c.source.FetchCheckoutData(gctx, p.APIToken)
		if err != nil {
			return errs.Wrap(err, "refresh checkout data")
		}
		data = d
		return nil
	})
	g.Go(func() error {
		s, err := c.checker.Check(gctx, p.APIToken, shippingID)
		if err != nil {
			return err
		}
		svc = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return checkout.Refresh{}, err
	}

	c.syncStore(ctx, p.UserID, data)
	return checkout.Refresh{Cart: data.Cart, Book: data.Book, Gateways: data.Gateways, Serviceability: svc}, nil
}

// refetchCart replaces the cart after an order was created; the local copy is never edited
func (c *CheckoutCoordinator) refetchCart(ctx context.Context, p ports.Principal, slot *sessionSlot) {
	data, err := c.source.FetchCheckoutData(ctx, p.APIToken)
	if err != nil {
		c.logger.WarnContext(ctx, "cart refresh after order failed", slog.Any("error", err))
		return
	}
	c.syncStore(ctx, p.UserID, data)

	slot.mu.Lock()
	defer slot.mu.Unlock()
	_ = slot.session.RefreshCart(data.Cart, c.clock.Now())
}

func (c *CheckoutCoordinator) CompleteHandshake(ctx context.Context, p ports.Principal, in HandshakeInput) (*readmodel.CheckoutRM, error) {
	slot, err := c.lookup(p)
	if err != nil {
		return nil, err
	}

	slot.mu.Lock()
	order := slot.session.Order()
	st := slot.session.State()
	result := slot.session.Result()
	slot.mu.Unlock()

	if st == checkout.StateTerminal && result != nil && result.OrderID == in.OrderID {
		return c.view(slot), nil
	}
	if st != checkout.StateAwaitingGateway || order == nil || order.ID != in.OrderID || order.Gateway != payment.GatewayCard {
		return nil, checkout.ErrOrderMismatch
	}

	card, err := c.gateways.Card()
	if err != nil {
		return nil, err
	}
	status, err := card.Complete(ctx, p.APIToken, in.OrderID, in.Success, in.TransactionID, in.ErrorMessage)
	if err != nil {
		return nil, err
	}

	msg := ""
	if in.ErrorMessage != nil {
		msg = *in.ErrorMessage
	}
	c.resolve(p.UserID, in.OrderID, status, msg)
	return c.view(slot), nil
}

func (c *CheckoutCoordinator) AwaitedOrder(userID string) (string, payment.Gateway, bool) {
	slot, ok := c.sessions.Lookup(userID)
	if !ok {
		return "", "", false
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()
	o := slot.session.Order()
	if o == nil {
		return "", "", false
	}
	return o.ID, o.Gateway, true
}

// ResolvePayment settles an awaited order once its outcome has been recorded
func (c *CheckoutCoordinator) ResolvePayment(userID, orderID string, status payment.Status) {
	c.resolve(userID, orderID, status, "")
}

func (c *CheckoutCoordinator) resolve(userID, orderID string, status payment.Status, msg string) {
	slot, ok := c.sessions.Lookup(userID)
	if !ok {
		return
	}
	if msg == "" && status == payment.StatusFailure {
		msg = "Payment failed"
	}

	slot.mu.Lock()
	applied, err := slot.session.Resolve(orderID, status == payment.StatusSuccess, msg, c.clock.Now())
	slot.mu.Unlock()

	log := c.logger.With(
		slog.String("user_id", userID),
		slog.String("order_id", orderID),
		slog.String("status", status.String()),
	)
	switch {
	case err != nil:
		log.Debug("payment outcome does not match the active checkout", slog.Any("error", err))
	case applied:
		log.Info("checkout resolved")
	}
}

func (c *CheckoutCoordinator) Retry(ctx context.Context, p ports.Principal) (*readmodel.CheckoutRM, error) {
	slot, err := c.lookup(p)
	if err != nil {
		return nil, err
	}

	slot.mu.Lock()
	err = slot.session.Retry(c.clock.Now())
	slot.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return c.Open(ctx, p)
}

func (c *CheckoutCoordinator) Leave(ctx context.Context, p ports.Principal) error {
	if c.sessions.Drop(p.UserID) {
		c.logger.InfoContext(ctx, "checkout left", slog.String("user_id", p.UserID))
	}
	return nil
}

func (c *CheckoutCoordinator) mutate(p ports.Principal, fn func(s *checkout.Session) error) (*readmodel.CheckoutRM, error) {
	slot, err := c.lookup(p)
	if err != nil {
		return nil, err
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()
	if err := fn(slot.session); err != nil {
		return nil, err
	}
	return c.viewLocked(slot.session), nil
}

func (c *CheckoutCoordinator) lookup(p ports.Principal) (*sessionSlot, error) {
	slot, ok := c.sessions.Lookup(p.UserID)
	if !ok {
		return nil, ErrCheckoutNotStarted
	}
	return slot, nil
}

func (c *CheckoutCoordinator) syncStore(ctx context.Context, userID string, data *ports.CheckoutData) {
	if c.store == nil || data == nil {
		return
	}
	if _, err := c.store.Update(ctx, userID, func(s *state.Store) { s.ReplaceCart(data.Cart) }); err != nil {
		c.logger.WarnContext(ctx, "failed to persist cart state", slog.Any("error", err))
	}
}

func (c *CheckoutCoordinator) view(slot *sessionSlot) *readmodel.CheckoutRM {
	slot.mu.Lock()
	defer slot.mu.Unlock()
	return c.viewLocked(slot.session)
}

func (c *CheckoutCoordinator) viewLocked(s *checkout.Session) *readmodel.CheckoutRM {
	rm := toCheckoutRM(s)
	return &rm
}

func transientMessage(err error) string {
	if hint := errs.Hint(err); hint != "" {
		return hint
	}
	if errs.Is(err, errs.ErrTransient) {
		return "Something went wrong, please try again"
	}
	return err.Error()
}
