package usecase

import (
	"sync"

	"storefront-bff/internal/domain/checkout"
	"storefront-bff/internal/pkg/clock"

	"github.com/google/uuid"
)

// sessionSlot serializes access to one session. It is never held across a network call.
type sessionSlot struct {
	mu      sync.Mutex
	session *checkout.Session
}

// CheckoutSessions keeps one active checkout per user
type CheckoutSessions struct {
	clock clock.Clock

	mu    sync.Mutex
	slots map[string]*sessionSlot
}

func NewCheckoutSessions(clk clock.Clock) *CheckoutSessions {
	return &CheckoutSessions{clock: clk, slots: make(map[string]*sessionSlot)}
}

// Acquire returns the user's session, starting a new one in Loading when none exists
func (r *CheckoutSessions) Acquire(userID string) *sessionSlot {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slot, ok := r.slots[userID]; ok {
		return slot
	}
	slot := &sessionSlot{session: checkout.NewSession(uuid.New(), userID, r.clock.Now())}
	r.slots[userID] = slot
	return slot
}

func (r *CheckoutSessions) Lookup(userID string) (*sessionSlot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[userID]
	return slot, ok
}

// Drop discards the session together with its coupon
func (r *CheckoutSessions) Drop(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.slots[userID]
	delete(r.slots, userID)
	return ok
}
