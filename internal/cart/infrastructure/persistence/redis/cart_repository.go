package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tokobajusablon/storefront/internal/cart/domain"
)

// keyPrefix is the fixed namespace carts are stored under. The value
// is a JSON record with a single items array and round-trips lines
// exactly, including order.
const keyPrefix = "cart-storage:"

type cartRedisRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewCartRepository creates a Redis-backed cart store. Carts expire
// after ttl of inactivity; every save renews the clock.
func NewCartRepository(client redis.UniversalClient, ttl time.Duration) domain.CartRepository {
	return &cartRedisRepository{client: client, ttl: ttl}
}

func (r *cartRedisRepository) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, keyPrefix+cartID).Bytes()
	if err == redis.Nil {
		return &domain.Cart{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRedisRepository) Save(ctx context.Context, cartID string, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, keyPrefix+cartID, data, r.ttl).Err()
}

func (r *cartRedisRepository) Delete(ctx context.Context, cartID string) error {
	return r.client.Del(ctx, keyPrefix+cartID).Err()
}
