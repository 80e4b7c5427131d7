//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront-bff/internal/domain/payment"
	"storefront-bff/internal/pkg/clock"
	"storefront-bff/internal/pkg/config"
	"storefront-bff/internal/usecase"
	"storefront-bff/internal/usecase/gateway"
	"storefront-bff/internal/usecase/ports"
	portsmock "storefront-bff/tests/mock/ports"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

const (
	testOrderID = "ord-1001"
	testToken   = "api-token"
)

var testPrincipal = ports.Principal{UserID: "user-1", APIToken: testToken}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type pollerDeps struct {
	payments *portsmock.MockPaymentAPI
	ledger   *portsmock.MockOutcomeLedger
	clock    *clock.MockClock
	cfg      config.PollerConfig

	mu      sync.Mutex
	results []payment.Status
	stored  []payment.Record
}

func newPollerDeps(t *testing.T) *pollerDeps {
	ctrl := gomock.NewController(t)
	return &pollerDeps{
		payments: portsmock.NewMockPaymentAPI(ctrl),
		ledger:   portsmock.NewMockOutcomeLedger(ctrl),
		clock:    clock.NewMockClock(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)),
		cfg:      config.NewTestConfig().Poller,
	}
}

func (d *pollerDeps) poller() *usecase.PaymentStatusPoller {
	logger := discardLogger()
	recorder := gateway.NewRecorder(d.payments, d.ledger, logger)
	return usecase.NewPaymentStatusPoller(testPrincipal, testOrderID, payment.GatewayWallet,
		d.payments, recorder, d.clock, logger, d.cfg, d.onResult)
}

func (d *pollerDeps) onResult(orderID string, status payment.Status) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.results = append(d.results, status)
}

func (d *pollerDeps) expectQueries(statuses ...payment.Status) {
	calls := make([]any, 0, len(statuses))
	for _, st := range statuses {
		calls = append(calls, d.payments.EXPECT().
			QueryPaymentStatus(gomock.Any(), testToken, testOrderID, payment.GatewayWallet).
			Return(st, nil))
	}
	gomock.InOrder(calls...)
}

func (d *pollerDeps) expectStore(kind ports.RecordKind, status payment.Status) {
	d.ledger.EXPECT().Claim(gomock.Any(), testOrderID, kind, status).Return(true, nil)
	d.payments.EXPECT().StorePaymentResponse(gomock.Any(), testToken, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, rec payment.Record) error {
			d.mu.Lock()
			defer d.mu.Unlock()
			d.stored = append(d.stored, rec)
			return nil
		})
}

func pending(n int) []payment.Status {
	out := make([]payment.Status, n)
	for i := range out {
		out[i] = payment.StatusPending
	}
	return out
}

func TestPaymentStatusPoller_Run(t *testing.T) {
	t.Run("nine pending polls then success record exactly one success", func(t *testing.T) {
		d := newPollerDeps(t)
		d.expectQueries(append(pending(9), payment.StatusSuccess)...)
		d.expectStore(ports.RecordFinal, payment.StatusSuccess)

		p := d.poller()
		p.Run(context.Background())

		require.Len(t, d.stored, 1)
		assert.Equal(t, 1, d.stored[0].Status.Code())
		assert.Equal(t, payment.GatewayWallet, d.stored[0].Gateway)
		assert.Equal(t, []payment.Status{payment.StatusSuccess}, d.results)

		wantWaits := make([]time.Duration, 9)
		for i := range wantWaits {
			wantWaits[i] = 3 * time.Second
		}
		if diff := cmp.Diff(wantWaits, d.clock.Waits()); diff != "" {
			t.Errorf("waits mismatch (-want +got):\n%s", diff)
		}

		snap := p.Snapshot()
		assert.True(t, snap.Done)
		assert.True(t, snap.Recorded)
		assert.False(t, snap.Provisional)
		assert.Equal(t, 9, snap.Attempt)
		assert.Nil(t, snap.NextCheckAt)
	})

	t.Run("failure status records failure code", func(t *testing.T) {
		d := newPollerDeps(t)
		d.expectQueries(payment.StatusPending, payment.StatusFailure)
		d.expectStore(ports.RecordFinal, payment.StatusFailure)

		d.poller().Run(context.Background())

		require.Len(t, d.stored, 1)
		assert.Equal(t, 0, d.stored[0].Status.Code())
		assert.Equal(t, []payment.Status{payment.StatusFailure}, d.results)
	})

	t.Run("long pending records one provisional outcome", func(t *testing.T) {
		d := newPollerDeps(t)
		d.expectQueries(append(pending(13), payment.StatusSuccess)...)
		d.expectStore(ports.RecordProvisional, payment.StatusPending)
		d.expectStore(ports.RecordFinal, payment.StatusSuccess)

		p := d.poller()
		p.Run(context.Background())

		require.Len(t, d.stored, 2)
		assert.Equal(t, 2, d.stored[0].Status.Code())
		assert.True(t, d.stored[0].Provisional())
		assert.Equal(t, 1, d.stored[1].Status.Code())
		assert.True(t, p.Snapshot().Provisional)

		waits := d.clock.Waits()
		require.Len(t, waits, 13)
		assert.Equal(t, 3*time.Second, waits[9])
		assert.Equal(t, 6*time.Second, waits[10])
		assert.Equal(t, 6*time.Second, waits[12])
	})

	t.Run("query failure records failure once and stops", func(t *testing.T) {
		d := newPollerDeps(t)
		d.payments.EXPECT().QueryPaymentStatus(gomock.Any(), testToken, testOrderID, payment.GatewayWallet).
			Return(payment.StatusPending, assert.AnError).Times(1)
		d.expectStore(ports.RecordFinal, payment.StatusFailure)

		p := d.poller()
		p.Run(context.Background())

		require.Len(t, d.stored, 1)
		assert.Equal(t, payment.StatusFailure, d.stored[0].Status)
		require.NotNil(t, d.stored[0].Notes)
		assert.Equal(t, "payment status query failed", *d.stored[0].Notes)
		assert.Empty(t, d.clock.Waits())
		assert.True(t, p.Snapshot().Done)
	})

	t.Run("tolerated query failures keep polling", func(t *testing.T) {
		d := newPollerDeps(t)
		d.cfg.QueryFailureTolerance = 2
		gomock.InOrder(
			d.payments.EXPECT().QueryPaymentStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(payment.StatusPending, assert.AnError),
			d.payments.EXPECT().QueryPaymentStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(payment.StatusPending, assert.AnError),
			d.payments.EXPECT().QueryPaymentStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(payment.StatusSuccess, nil),
		)
		d.expectStore(ports.RecordFinal, payment.StatusSuccess)

		d.poller().Run(context.Background())

		assert.Equal(t, []payment.Status{payment.StatusSuccess}, d.results)
		assert.Len(t, d.clock.Waits(), 2)
	})

	t.Run("already recorded outcome is not stored again", func(t *testing.T) {
		d := newPollerDeps(t)
		d.expectQueries(payment.StatusSuccess)
		d.ledger.EXPECT().Claim(gomock.Any(), testOrderID, ports.RecordFinal, payment.StatusSuccess).Return(false, nil)

		p := d.poller()
		p.Run(context.Background())

		assert.Empty(t, d.stored)
		assert.True(t, p.Snapshot().Recorded)
		assert.Equal(t, []payment.Status{payment.StatusSuccess}, d.results)
	})

	t.Run("failed store leaves outcome unrecorded", func(t *testing.T) {
		d := newPollerDeps(t)
		d.expectQueries(payment.StatusSuccess)
		d.ledger.EXPECT().Claim(gomock.Any(), testOrderID, ports.RecordFinal, payment.StatusSuccess).Return(true, nil)
		d.payments.EXPECT().StorePaymentResponse(gomock.Any(), testToken, gomock.Any()).Return(assert.AnError)
		d.ledger.EXPECT().Release(gomock.Any(), testOrderID, ports.RecordFinal).Return(nil)

		p := d.poller()
		p.Run(context.Background())

		snap := p.Snapshot()
		assert.True(t, snap.Done)
		assert.False(t, snap.Recorded)
		assert.NotEmpty(t, snap.Err)
		assert.Equal(t, usecase.RecoveryRetryWatch, snap.RecoveryAction)
		assert.Empty(t, d.results)
	})

	t.Run("pending status always carries the next check time", func(t *testing.T) {
		d := newPollerDeps(t)
		start := d.clock.Now()
		var (
			p        *usecase.PaymentStatusPoller
			inFlight []usecase.PollSnapshot
		)
		d.payments.EXPECT().QueryPaymentStatus(gomock.Any(), testToken, testOrderID, payment.GatewayWallet).
			DoAndReturn(func(context.Context, string, string, payment.Gateway) (payment.Status, error) {
				inFlight = append(inFlight, p.Snapshot())
				if len(inFlight) == 1 {
					return payment.StatusPending, nil
				}
				return payment.StatusSuccess, nil
			}).
			Times(2)
		d.expectStore(ports.RecordFinal, payment.StatusSuccess)

		p = d.poller()
		initial := p.Snapshot()
		require.NotNil(t, initial.NextCheckAt)
		assert.True(t, initial.NextCheckAt.Equal(start))

		p.Run(context.Background())

		require.Len(t, inFlight, 2)
		for _, snap := range inFlight {
			assert.True(t, snap.Checking)
			require.NotNil(t, snap.NextCheckAt)
		}
		assert.True(t, inFlight[0].NextCheckAt.Equal(start))
		assert.True(t, inFlight[1].NextCheckAt.Equal(start.Add(3*time.Second)))

		final := p.Snapshot()
		assert.False(t, final.Checking)
		assert.Nil(t, final.NextCheckAt)
	})

	t.Run("cancellation during a query records nothing", func(t *testing.T) {
		d := newPollerDeps(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		d.payments.EXPECT().QueryPaymentStatus(gomock.Any(), testToken, testOrderID, payment.GatewayWallet).
			DoAndReturn(func(context.Context, string, string, payment.Gateway) (payment.Status, error) {
				cancel()
				return payment.StatusSuccess, nil
			})

		p := d.poller()
		p.Run(ctx)

		assert.Empty(t, d.stored)
		assert.Empty(t, d.results)
		assert.False(t, p.Snapshot().Recorded)
	})
}

func TestPollerManager(t *testing.T) {
	t.Run("cancel stops a waiting poller without recording", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		d := newPollerDeps(t)
		d.clock.Freeze()
		queried := make(chan struct{})
		d.payments.EXPECT().QueryPaymentStatus(gomock.Any(), testToken, testOrderID, payment.GatewayWallet).
			DoAndReturn(func(context.Context, string, string, payment.Gateway) (payment.Status, error) {
				close(queried)
				return payment.StatusPending, nil
			})

		logger := discardLogger()
		cfg := config.NewTestConfig()
		m := usecase.NewPollerManager(d.payments, gateway.NewRecorder(d.payments, d.ledger, logger), d.clock, logger, cfg)

		first := m.Watch(testPrincipal, testOrderID, payment.GatewayWallet, d.onResult)
		require.NotNil(t, first.NextCheckAt)
		<-queried
		next := d.clock.Now().Add(3 * time.Second)
		require.Eventually(t, func() bool {
			snap, err := m.Snapshot(testPrincipal.UserID, testOrderID)
			return err == nil && !snap.Checking && snap.NextCheckAt != nil && snap.NextCheckAt.Equal(next)
		}, time.Second, time.Millisecond)

		require.NoError(t, m.Cancel(testPrincipal.UserID, testOrderID))

		assert.Empty(t, d.stored)
		assert.Empty(t, d.results)
		_, err := m.Snapshot(testPrincipal.UserID, testOrderID)
		assert.ErrorIs(t, err, usecase.ErrPollNotFound)
	})

	t.Run("watch is idempotent while running", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		d := newPollerDeps(t)
		d.clock.Freeze()
		d.payments.EXPECT().QueryPaymentStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(payment.StatusPending, nil).Times(1)

		logger := discardLogger()
		m := usecase.NewPollerManager(d.payments, gateway.NewRecorder(d.payments, d.ledger, logger), d.clock, logger, config.NewTestConfig())

		m.Watch(testPrincipal, testOrderID, payment.GatewayWallet, d.onResult)
		m.Watch(testPrincipal, testOrderID, payment.GatewayWallet, d.onResult)
		next := d.clock.Now().Add(3 * time.Second)
		require.Eventually(t, func() bool {
			snap, err := m.Snapshot(testPrincipal.UserID, testOrderID)
			return err == nil && !snap.Checking && snap.NextCheckAt != nil && snap.NextCheckAt.Equal(next)
		}, time.Second, time.Millisecond)

		m.StopAll()
	})

	t.Run("a new watch records after a failed store", func(t *testing.T) {
		defer goleak.VerifyNone(t)

		d := newPollerDeps(t)
		d.payments.EXPECT().QueryPaymentStatus(gomock.Any(), testToken, testOrderID, payment.GatewayWallet).
			Return(payment.StatusSuccess, nil).Times(2)
		d.ledger.EXPECT().Claim(gomock.Any(), testOrderID, ports.RecordFinal, payment.StatusSuccess).Return(true, nil).Times(2)
		d.ledger.EXPECT().Release(gomock.Any(), testOrderID, ports.RecordFinal).Return(nil)
		gomock.InOrder(
			d.payments.EXPECT().StorePaymentResponse(gomock.Any(), testToken, gomock.Any()).Return(assert.AnError),
			d.payments.EXPECT().StorePaymentResponse(gomock.Any(), testToken, gomock.Any()).Return(nil),
		)

		logger := discardLogger()
		m := usecase.NewPollerManager(d.payments, gateway.NewRecorder(d.payments, d.ledger, logger), d.clock, logger, config.NewTestConfig())
		defer m.StopAll()

		m.Watch(testPrincipal, testOrderID, payment.GatewayWallet, d.onResult)
		require.Eventually(t, func() bool {
			snap, err := m.Snapshot(testPrincipal.UserID, testOrderID)
			return err == nil && snap.RecoveryAction == usecase.RecoveryRetryWatch
		}, time.Second, time.Millisecond)

		// a finished poller is replaced by the next watch
		require.Eventually(t, func() bool {
			return m.Watch(testPrincipal, testOrderID, payment.GatewayWallet, d.onResult).RecoveryAction == ""
		}, time.Second, time.Millisecond)
		require.Eventually(t, func() bool {
			snap, err := m.Snapshot(testPrincipal.UserID, testOrderID)
			return err == nil && snap.Recorded
		}, time.Second, time.Millisecond)

		require.Eventually(t, func() bool {
			d.mu.Lock()
			defer d.mu.Unlock()
			return len(d.results) == 1
		}, time.Second, time.Millisecond)
	})

	t.Run("watches are scoped per user", func(t *testing.T) {
		d := newPollerDeps(t)
		logger := discardLogger()
		m := usecase.NewPollerManager(d.payments, gateway.NewRecorder(d.payments, d.ledger, logger), d.clock, logger, config.NewTestConfig())

		_, err := m.Snapshot("someone-else", testOrderID)
		assert.ErrorIs(t, err, usecase.ErrPollNotFound)
		assert.ErrorIs(t, m.Cancel("someone-else", testOrderID), usecase.ErrPollNotFound)
	})
}
