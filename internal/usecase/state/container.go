// Package state holds per-user client state. Only allow-listed entities are persisted
// and rehydrated; everything else starts empty after a restart.
package state

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	"storefront-bff/internal/domain/cart"
	"storefront-bff/internal/pkg/errs"
	"storefront-bff/internal/usecase/ports"
)

type Entity string

const (
	EntityCart     Entity = "cart"
	EntityWishlist Entity = "wishlist"
	EntityNotices  Entity = "notices"
)

// Persisted is the persistence allow-list
var Persisted = []Entity{EntityCart, EntityWishlist}

// MaxNotices bounds the notices kept per user; older ones are dropped first
const MaxNotices = 5

type CartSummary struct {
	Items map[string]int `json:"items"`
}

func (c CartSummary) Count() int {
	n := 0
	for _, q := range c.Items {
		n += q
	}
	return n
}

type Store struct {
	Cart     CartSummary
	Wishlist []string
	Notices  []string
}

func emptyStore() *Store {
	return &Store{Cart: CartSummary{Items: map[string]int{}}, Wishlist: []string{}}
}

func (s *Store) AddToCart(productID string, quantity int) {
	s.Cart.Items[productID] += quantity
}

// ReplaceCart mirrors a freshly fetched cart snapshot
func (s *Store) ReplaceCart(snapshot cart.Snapshot) {
	items := make(map[string]int)
	for _, l := range snapshot.Lines() {
		items[l.ProductID()] += l.Quantity()
	}
	s.Cart.Items = items
}

func (s *Store) SetWishlisted(productID string, on bool) {
	idx := slices.Index(s.Wishlist, productID)
	switch {
	case on && idx < 0:
		s.Wishlist = append(s.Wishlist, productID)
		slices.Sort(s.Wishlist)
	case !on && idx >= 0:
		s.Wishlist = slices.Delete(s.Wishlist, idx, idx+1)
	}
}

func (s *Store) Notify(msg string) {
	s.Notices = append(s.Notices, msg)
	if n := len(s.Notices); n > MaxNotices {
		s.Notices = slices.Clone(s.Notices[n-MaxNotices:])
	}
}

func (s *Store) clone() Store {
	items := make(map[string]int, len(s.Cart.Items))
	for k, v := range s.Cart.Items {
		items[k] = v
	}
	return Store{
		Cart:     CartSummary{Items: items},
		Wishlist: slices.Clone(s.Wishlist),
		Notices:  slices.Clone(s.Notices),
	}
}

func (s *Store) field(e Entity) any {
	switch e {
	case EntityCart:
		return &s.Cart
	case EntityWishlist:
		return &s.Wishlist
	case EntityNotices:
		return &s.Notices
	default:
		return nil
	}
}

func (s *Store) reset(e Entity) {
	fresh := emptyStore()
	switch e {
	case EntityCart:
		s.Cart = fresh.Cart
	case EntityWishlist:
		s.Wishlist = fresh.Wishlist
	case EntityNotices:
		s.Notices = nil
	}
}

type Container struct {
	persister ports.StatePersister
	allow     []Entity
	logger    *slog.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

func NewContainer(persister ports.StatePersister, logger *slog.Logger) *Container {
	return &Container{
		persister: persister,
		allow:     slices.Clone(Persisted),
		logger:    logger,
		stores:    make(map[string]*Store),
	}
}

func (c *Container) Get(ctx context.Context, userID string) (Store, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.load(ctx, userID)
	if err != nil {
		return Store{}, err
	}
	return s.clone(), nil
}

// Update applies fn and saves the allow-listed entities
func (c *Container) Update(ctx context.Context, userID string, fn func(*Store)) (Store, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.load(ctx, userID)
	if err != nil {
		return Store{}, err
	}
	fn(s)

	for _, e := range c.allow {
		data, err := json.Marshal(s.field(e))
		if err != nil {
			return Store{}, errs.Wrapf(err, "marshal %s", e)
		}
		if err := c.persister.Save(ctx, userID, string(e), data); err != nil {
			return Store{}, errs.Wrapf(err, "save %s", e)
		}
	}
	return s.clone(), nil
}

// Clear removes everything for the user, persisted entities included
func (c *Container) Clear(ctx context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.stores, userID)
	for _, e := range c.allow {
		if err := c.persister.Delete(ctx, userID, string(e)); err != nil {
			return errs.Wrapf(err, "delete %s", e)
		}
	}
	return nil
}

func (c *Container) load(ctx context.Context, userID string) (*Store, error) {
	if s, ok := c.stores[userID]; ok {
		return s, nil
	}

	s := emptyStore()
	for _, e := range c.allow {
		data, ok, err := c.persister.Load(ctx, userID, string(e))
		if err != nil {
			return nil, errs.Wrapf(err, "load %s", e)
		}
		if !ok {
			continue
		}
		if err := json.Unmarshal(data, s.field(e)); err != nil {
			s.reset(e)
			c.logger.WarnContext(ctx, "discarding unreadable persisted state",
				slog.String("user_id", userID),
				slog.String("entity", string(e)),
				slog.Any("error", err),
			)
		}
	}
	if s.Cart.Items == nil {
		s.Cart.Items = map[string]int{}
	}
	c.stores[userID] = s
	return s, nil
}
