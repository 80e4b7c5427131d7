package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"storefront-bff/internal/domain/payment"
	"storefront-bff/internal/pkg/clock"
	"storefront-bff/internal/pkg/config"
	"storefront-bff/internal/usecase/gateway"
	"storefront-bff/internal/usecase/ports"
)

var ErrPollNotFound = errors.New("no payment status watch for this order")

type pollEntry struct {
	poller *PaymentStatusPoller
	cancel context.CancelFunc
	done   chan struct{}
}

func (e *pollEntry) running() bool {
	select {
	case <-e.done:
		return false
	default:
		return true
	}
}

func pollKey(userID, orderID string) string {
	return userID + "/" + orderID
}

// PollerManager owns every running poller. Cancel and StopAll return only after the poller goroutine exits.
type PollerManager struct {
	payments ports.PaymentAPI
	recorder *gateway.Recorder
	clock    clock.Clock
	logger   *slog.Logger
	cfg      config.PollerConfig

	mu      sync.Mutex
	entries map[string]*pollEntry
}

func NewPollerManager(
	payments ports.PaymentAPI,
	recorder *gateway.Recorder,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) *PollerManager {
	return &PollerManager{
		payments: payments,
		recorder: recorder,
		clock:    clk,
		logger:   logger,
		cfg:      cfg.Poller,
		entries:  make(map[string]*pollEntry),
	}
}

// Watch starts polling unless a poller for the order is already running
func (m *PollerManager) Watch(principal ports.Principal, orderID string, gw payment.Gateway, onResult ResultFunc) PollSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := pollKey(principal.UserID, orderID)
	if e, ok := m.entries[key]; ok && e.running() {
		return e.poller.Snapshot()
	}

	poller := NewPaymentStatusPoller(principal, orderID, gw, m.payments, m.recorder, m.clock, m.logger, m.cfg, onResult)
	ctx, cancel := context.WithCancel(context.Background())
	e := &pollEntry{
		poller: poller,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	m.entries[key] = e

	go func() {
		defer close(e.done)
		defer cancel()
		poller.Run(ctx)
	}()

	m.logger.Info("payment status watch started",
		slog.String("order_id", orderID),
		slog.String("gateway", gw.String()),
	)
	return poller.Snapshot()
}

func (m *PollerManager) Snapshot(userID, orderID string) (PollSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[pollKey(userID, orderID)]
	if !ok {
		return PollSnapshot{}, ErrPollNotFound
	}
	return e.poller.Snapshot(), nil
}

// Cancel stops the order's poller deterministically
func (m *PollerManager) Cancel(userID, orderID string) error {
	key := pollKey(userID, orderID)
	m.mu.Lock()
	e, ok := m.entries[key]
	if !ok {
		m.mu.Unlock()
		return ErrPollNotFound
	}
	delete(m.entries, key)
	m.mu.Unlock()

	e.cancel()
	<-e.done
	m.logger.Info("payment status watch cancelled", slog.String("order_id", orderID))
	return nil
}

// StopAll is called on shutdown
func (m *PollerManager) StopAll() {
	m.mu.Lock()
	entries := m.entries
	m.entries = make(map[string]*pollEntry)
	m.mu.Unlock()

	for _, e := range entries {
		e.cancel()
	}
	for _, e := range entries {
		<-e.done
	}
}
