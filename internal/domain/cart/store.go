// internal/domain/cart/store.go
package cart

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-web/internal/domain/session"
	"github.com/your-org/storefront-web/internal/infrastructure/commerce"
)

// API is the slice of the commerce API the cart store depends on
type API interface {
	Cart(ctx context.Context, token string) ([]commerce.CartItem, error)
	AddCartItem(ctx context.Context, token string, productID, quantity int) error
	UpdateCartItem(ctx context.Context, token string, itemID, quantity int) error
	RemoveCartItem(ctx context.Context, token string, itemID int) error
	ClearCart(ctx context.Context, token string) error
}

// Store keeps one user's cart synchronized with the remote commerce API.
// It never applies an optimistic update: every mutation is sent remotely
// first and, on success, followed by a full refetch, so the server stays the
// single source of truth and local state cannot drift. The one exception is
// ClearCart, whose post-state is known to be empty.
type Store struct {
	session *session.Store
	api     API
	logger  *logrus.Logger
	items   []commerce.CartItem
}

// NewStore creates a cart store bound to the given session. The store
// resynchronizes itself whenever the session's user identity transitions:
// login fetches the cart, logout clears it locally without a remote call.
func NewStore(sess *session.Store, api API, logger *logrus.Logger) *Store {
	s := &Store{
		session: sess,
		api:     api,
		logger:  logger,
	}
	sess.OnUserChange(s.handleUserChange)
	return s
}

// Items returns a copy of the current line items, empty whenever no user is
// logged in. Mutating the returned slice does not affect the store.
func (s *Store) Items() []commerce.CartItem {
	items := make([]commerce.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// AddToCart adds a product remotely, then refetches the cart. Errors from
// the remote call (such as insufficient stock) propagate to the caller.
func (s *Store) AddToCart(ctx context.Context, productID, quantity int) error {
	if err := s.api.AddCartItem(ctx, s.session.Token(), productID, quantity); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

// RemoveFromCart removes a line item remotely, then refetches the cart
func (s *Store) RemoveFromCart(ctx context.Context, itemID int) error {
	if err := s.api.RemoveCartItem(ctx, s.session.Token(), itemID); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

// UpdateQuantity sets a line item's quantity remotely, then refetches the
// cart. Callers are expected to reroute a target quantity of zero or less to
// RemoveFromCart; the store passes the value through unmodified.
func (s *Store) UpdateQuantity(ctx context.Context, itemID, quantity int) error {
	if err := s.api.UpdateCartItem(ctx, s.session.Token(), itemID, quantity); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

// ClearCart clears the cart remotely and empties the local items directly,
// since the expected post-state is known.
func (s *Store) ClearCart(ctx context.Context) error {
	if err := s.api.ClearCart(ctx, s.session.Token()); err != nil {
		return err
	}
	s.items = []commerce.CartItem{}
	return nil
}

// TotalItems returns the sum of quantities across all line items
func (s *Store) TotalItems() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of price x quantity across all line items,
// computed on demand from the last successful sync.
func (s *Store) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		line := decimal.NewFromFloat(item.Product.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

// Totals returns the aggregate view used by page templates
func (s *Store) Totals() Totals {
	return calculateTotals(s.items)
}

// handleUserChange implements the reactive resync rule. A logout needs no
// remote call; no further cart access is possible for that user anyway.
func (s *Store) handleUserChange(ctx context.Context, user *commerce.User) {
	if user == nil {
		s.items = nil
		return
	}
	s.refresh(ctx)
}

// refresh replaces local items with the authoritative remote cart. Failures
// leave the previous items in place and are logged only; mutations have
// already succeeded by the time refresh runs.
func (s *Store) refresh(ctx context.Context) {
	items, err := s.api.Cart(ctx, s.session.Token())
	if err != nil {
		s.logger.WithError(err).WithField("session_id", s.session.ID()).Warn("Failed to fetch cart")
		return
	}
	if items == nil {
		items = []commerce.CartItem{}
	}
	s.items = items
}
