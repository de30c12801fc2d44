package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokobajusablon/storefront/internal/cart/domain"
)

type mockCartRepository struct {
	carts   map[string]*domain.Cart
	saveErr error
	getErr  error
	deleted []string
}

func newMockCartRepository() *mockCartRepository {
	return &mockCartRepository{carts: make(map[string]*domain.Cart)}
}

func (m *mockCartRepository) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if cart, ok := m.carts[cartID]; ok {
		copied := *cart
		copied.Items = append([]domain.LineItem(nil), cart.Items...)
		return &copied, nil
	}
	return &domain.Cart{}, nil
}

func (m *mockCartRepository) Save(ctx context.Context, cartID string, cart *domain.Cart) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.carts[cartID] = cart
	return nil
}

func (m *mockCartRepository) Delete(ctx context.Context, cartID string) error {
	delete(m.carts, cartID)
	m.deleted = append(m.deleted, cartID)
	return nil
}

func TestAddItemPersistsMutatedCart(t *testing.T) {
	repo := newMockCartRepository()
	svc := NewCartService(repo)
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, "c1", domain.LineItem{ProductID: "p1", Size: "M", Color: "Black", UnitPrice: 50000, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, cart.TotalItems())

	stored, ok := repo.carts["c1"]
	require.True(t, ok, "mutation must be saved before returning")
	assert.Equal(t, cart.Items, stored.Items)
}

func TestMutationsSurviveReload(t *testing.T) {
	repo := newMockCartRepository()
	svc := NewCartService(repo)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", domain.LineItem{ProductID: "p1", Size: "M", Color: "Black", UnitPrice: 50000, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.UpdateQuantity(ctx, "c1", "p1", "M", "Black", 4)
	require.NoError(t, err)

	cart, err := svc.Get(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)
}

func TestSaveFailureStillReturnsMutatedCart(t *testing.T) {
	repo := newMockCartRepository()
	repo.saveErr = errors.New("redis down")
	svc := NewCartService(repo)

	cart, err := svc.AddItem(context.Background(), "c1", domain.LineItem{ProductID: "p1", Quantity: 1})
	require.NoError(t, err, "persistence is best-effort")
	assert.Equal(t, 1, cart.TotalItems())
}

func TestGetFailurePropagates(t *testing.T) {
	repo := newMockCartRepository()
	repo.getErr = errors.New("redis down")
	svc := NewCartService(repo)

	_, err := svc.AddItem(context.Background(), "c1", domain.LineItem{ProductID: "p1", Quantity: 1})
	assert.Error(t, err)
}

func TestRemoveItemPersists(t *testing.T) {
	repo := newMockCartRepository()
	svc := NewCartService(repo)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", domain.LineItem{ProductID: "p1", Size: "M", Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "c1", domain.LineItem{ProductID: "p2", Size: "L", Quantity: 1})
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "c1", "p1", "M", "")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
}

func TestClearDeletesStoredCart(t *testing.T) {
	repo := newMockCartRepository()
	svc := NewCartService(repo)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "c1", domain.LineItem{ProductID: "p1", Quantity: 3})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "c1"))
	assert.Equal(t, []string{"c1"}, repo.deleted)

	cart, err := svc.Get(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}
