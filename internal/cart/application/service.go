package application

import (
	"context"

	"github.com/tokobajusablon/storefront/internal/cart/domain"
	"github.com/tokobajusablon/storefront/pkg/logger"
)

// CartService owns all cart mutations. Every mutation funnels through
// mutate so the resulting state is persisted before the call returns.
type CartService struct {
	repo domain.CartRepository
}

func NewCartService(repo domain.CartRepository) *CartService {
	return &CartService{repo: repo}
}

// mutate loads the cart, applies fn and persists the result. When the
// save fails the mutated cart is still returned: persistence is
// best-effort and the in-memory state stays authoritative for the
// current request.
func (s *CartService) mutate(ctx context.Context, cartID string, fn func(*domain.Cart)) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	fn(cart)
	if err := s.repo.Save(ctx, cartID, cart); err != nil {
		logger.Warn(ctx, "cart persistence failed", "cart_id", cartID, "error", err)
	}
	return cart, nil
}

// Get returns the current cart, empty if nothing was stored.
func (s *CartService) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	return s.repo.Get(ctx, cartID)
}

// AddItem adds item to the cart, merging into an existing line with
// the same (product, size, color) triple. item.Quantity must be >= 1;
// the HTTP boundary enforces this.
func (s *CartService) AddItem(ctx context.Context, cartID string, item domain.LineItem) (*domain.Cart, error) {
	return s.mutate(ctx, cartID, func(c *domain.Cart) {
		c.AddItem(item)
	})
}

// UpdateQuantity sets the matching line's quantity, clamped to a
// minimum of one.
func (s *CartService) UpdateQuantity(ctx context.Context, cartID, productID, size, color string, qty int) (*domain.Cart, error) {
	return s.mutate(ctx, cartID, func(c *domain.Cart) {
		c.UpdateQuantity(productID, size, color, qty)
	})
}

// RemoveItem deletes the matching line from the cart.
func (s *CartService) RemoveItem(ctx context.Context, cartID, productID, size, color string) (*domain.Cart, error) {
	return s.mutate(ctx, cartID, func(c *domain.Cart) {
		c.RemoveItem(productID, size, color)
	})
}

// Clear empties the cart unconditionally and drops the stored record.
func (s *CartService) Clear(ctx context.Context, cartID string) error {
	return s.repo.Delete(ctx, cartID)
}
