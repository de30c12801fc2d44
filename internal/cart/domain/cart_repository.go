package domain

import "context"

// CartRepository persists carts keyed by cart token. Get returns an
// empty cart when nothing is stored yet; the stored representation
// must round-trip lines exactly, including order.
type CartRepository interface {
	Get(ctx context.Context, cartID string) (*Cart, error)
	Save(ctx context.Context, cartID string, cart *Cart) error
	Delete(ctx context.Context, cartID string) error
}
