package usecase

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"storefront-bff/internal/domain/payment"
	"storefront-bff/internal/pkg/clock"
	"storefront-bff/internal/pkg/config"
	"storefront-bff/internal/pkg/patch"
	"storefront-bff/internal/usecase/gateway"
	"storefront-bff/internal/usecase/ports"
)

// RecoveryRetryWatch tells the status page to start a new watch for the order
const RecoveryRetryWatch = "retry_watch"

// PollSnapshot is what the order status page shows while polling runs.
// NextCheckAt is set for as long as the status is pending; while Checking it is the time the running query started.
type PollSnapshot struct {
	OrderID        string
	Gateway        payment.Gateway
	Status         payment.Status
	Attempt        int
	NextCheckAt    *time.Time
	Checking       bool
	Done           bool
	Recorded       bool
	Provisional    bool
	Err            string
	RecoveryAction string
}

// ResultFunc receives the terminal status once it has been recorded
type ResultFunc func(orderID string, status payment.Status)

// PaymentStatusPoller queries an order's payment status on the backoff schedule until it is terminal
type PaymentStatusPoller struct {
	principal ports.Principal
	orderID   string
	gateway   payment.Gateway

	payments ports.PaymentAPI
	recorder *gateway.Recorder
	clock    clock.Clock
	logger   *slog.Logger
	cfg      config.PollerConfig
	onResult ResultFunc

	finalRecorded       atomic.Bool
	provisionalRecorded atomic.Bool

	mu       sync.Mutex
	snapshot PollSnapshot
}

func NewPaymentStatusPoller(
	principal ports.Principal,
	orderID string,
	gw payment.Gateway,
	payments ports.PaymentAPI,
	recorder *gateway.Recorder,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.PollerConfig,
	onResult ResultFunc,
) *PaymentStatusPoller {
	return &PaymentStatusPoller{
		principal: principal,
		orderID:   orderID,
		gateway:   gw,
		payments:  payments,
		recorder:  recorder,
		clock:     clk,
		logger: logger.With(
			slog.String("order_id", orderID),
			slog.String("gateway", gw.String()),
		),
		cfg:      cfg,
		onResult: onResult,
		snapshot: PollSnapshot{OrderID: orderID, Gateway: gw, Status: payment.StatusPending, NextCheckAt: patch.Ptr(clk.Now())},
	}
}

// Run blocks until a terminal status is recorded, a query fails, or ctx is cancelled.
// After cancellation nothing is queried or recorded and no timer is left behind.
func (p *PaymentStatusPoller) Run(ctx context.Context) {
	failures := 0
	for attempt := 0; ; attempt++ {
		started := p.clock.Now()
		p.update(func(s *PollSnapshot) {
			s.Attempt = attempt
			s.NextCheckAt = &started
			s.Checking = true
		})

		status, err := p.payments.QueryPaymentStatus(ctx, p.principal.APIToken, p.orderID, p.gateway)
		p.update(func(s *PollSnapshot) { s.Checking = false })
		if ctx.Err() != nil {
			p.logger.DebugContext(ctx, "payment polling cancelled", slog.Int("attempt", attempt))
			p.update(func(s *PollSnapshot) {
				s.Done = true
				s.NextCheckAt = nil
			})
			return
		}

		switch {
		case err != nil:
			failures++
			p.logger.WarnContext(ctx, "payment status query failed",
				slog.Int("attempt", attempt),
				slog.Int("consecutive_failures", failures),
				slog.Any("error", err),
			)
			if failures > p.cfg.QueryFailureTolerance {
				p.recordFinal(ctx, payment.StatusFailure, patch.Ptr("payment status query failed"))
				return
			}
		case status.IsTerminal():
			p.recordFinal(ctx, status, nil)
			return
		default:
			failures = 0
			if attempt >= p.cfg.ProvisionalAfterAttempt {
				p.recordProvisional(ctx)
			}
		}

		wait := payment.PollInterval(attempt)
		next := p.clock.Now().Add(wait)
		p.update(func(s *PollSnapshot) { s.NextCheckAt = &next })

		timer := p.clock.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			p.logger.DebugContext(ctx, "payment polling cancelled", slog.Int("attempt", attempt))
			p.update(func(s *PollSnapshot) {
				s.Done = true
				s.NextCheckAt = nil
			})
			return
		case <-timer.C():
		}
	}
}

func (p *PaymentStatusPoller) Snapshot() PollSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.snapshot
	if s.NextCheckAt != nil {
		t := *s.NextCheckAt
		s.NextCheckAt = &t
	}
	return s
}

func (p *PaymentStatusPoller) update(fn func(*PollSnapshot)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&p.snapshot)
}

func (p *PaymentStatusPoller) recordFinal(ctx context.Context, status payment.Status, notes *string) {
	if !p.finalRecorded.CompareAndSwap(false, true) {
		return
	}

	// the decision is made; finish recording even if the watcher goes away now
	ctx = context.WithoutCancel(ctx)
	p.update(func(s *PollSnapshot) {
		s.Status = status
		s.Done = true
		s.NextCheckAt = nil
	})

	rec, err := payment.NewRecord(p.orderID, p.gateway, status, nil, notes)
	if err == nil {
		_, err = p.recorder.Record(ctx, p.principal.APIToken, rec)
	}
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to record payment outcome",
			slog.String("status", status.String()),
			slog.Any("error", err),
		)
		p.update(func(s *PollSnapshot) {
			s.Err = "payment outcome could not be recorded"
			s.RecoveryAction = RecoveryRetryWatch
		})
		return
	}

	p.update(func(s *PollSnapshot) { s.Recorded = true })
	p.logger.InfoContext(ctx, "payment resolved", slog.String("status", status.String()))
	if p.onResult != nil {
		p.onResult(p.orderID, status)
	}
}

func (p *PaymentStatusPoller) recordProvisional(ctx context.Context) {
	if !p.provisionalRecorded.CompareAndSwap(false, true) {
		return
	}

	rec, err := payment.NewRecord(p.orderID, p.gateway, payment.StatusPending, nil, patch.Ptr("payment still pending"))
	if err == nil {
		_, err = p.recorder.Record(context.WithoutCancel(ctx), p.principal.APIToken, rec)
	}
	if err != nil {
		p.logger.WarnContext(ctx, "failed to record provisional outcome", slog.Any("error", err))
		return
	}
	p.update(func(s *PollSnapshot) { s.Provisional = true })
}
