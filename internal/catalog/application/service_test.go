package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokobajusablon/storefront/internal/catalog/domain"
)

type mockProductRepository struct {
	products map[uint]*domain.Product
	nextID   uint
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[uint]*domain.Product), nextID: 1}
}

func (m *mockProductRepository) Save(ctx context.Context, p *domain.Product) error {
	if p.ID == 0 {
		p.ID = m.nextID
		m.nextID++
	}
	m.products[p.ID] = p
	return nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (m *mockProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	for _, p := range m.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range m.products {
		if filter.ActiveOnly && !p.Active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProductRepository) ListFeatured(ctx context.Context, limit int) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range m.products {
		if p.Active && p.Featured {
			out = append(out, p)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id uint) error {
	if _, ok := m.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *mockProductRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.products)), nil
}

func (m *mockProductRepository) CountFeatured(ctx context.Context) (int64, error) {
	var n int64
	for _, p := range m.products {
		if p.Featured {
			n++
		}
	}
	return n, nil
}

type mockCategoryRepository struct {
	categories map[uint]*domain.Category
	nextID     uint
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{categories: make(map[uint]*domain.Category), nextID: 1}
}

func (m *mockCategoryRepository) Save(ctx context.Context, c *domain.Category) error {
	if c.ID == 0 {
		c.ID = m.nextID
		m.nextID++
	}
	m.categories[c.ID] = c
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*domain.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (m *mockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	for _, c := range m.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCategoryRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
	var out []*domain.Category
	for _, c := range m.categories {
		if activeOnly && !c.Active {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uint) error {
	delete(m.categories, id)
	return nil
}

func (m *mockCategoryRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.categories)), nil
}

func newTestService() (*CatalogService, *mockProductRepository, *mockCategoryRepository) {
	products := newMockProductRepository()
	categories := newMockCategoryRepository()
	return NewCatalogService(products, categories), products, categories
}

func kaosCommand() CreateProductCommand {
	return CreateProductCommand{
		Name:          "Kaos Sablon Custom",
		Price:         50000,
		Description:   "Kaos katun 30s",
		CategoryID:    1,
		Images:        []string{"https://cdn.example.com/kaos.jpg"},
		SizeVariants:  []string{"S", "M", "L", "XL"},
		ColorVariants: []string{"Hitam", "Putih"},
		Stock:         100,
		Active:        true,
	}
}

func TestCreateProductDerivesSlug(t *testing.T) {
	svc, products, _ := newTestService()

	id, err := svc.CreateProduct(context.Background(), kaosCommand())
	require.NoError(t, err)

	p, err := products.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "kaos-sablon-custom", p.Slug)
}

func TestCreateProductKeepsExplicitSlug(t *testing.T) {
	svc, products, _ := newTestService()

	cmd := kaosCommand()
	cmd.Slug = "kaos-promo"
	id, err := svc.CreateProduct(context.Background(), cmd)
	require.NoError(t, err)

	p, _ := products.GetByID(context.Background(), id)
	assert.Equal(t, "kaos-promo", p.Slug)
}

func TestCreateProductRequiresImages(t *testing.T) {
	svc, _, _ := newTestService()

	cmd := kaosCommand()
	cmd.Images = nil
	_, err := svc.CreateProduct(context.Background(), cmd)

	assert.ErrorIs(t, err, ErrNoImages)
}

func TestUpdateProductReplacesFields(t *testing.T) {
	svc, products, _ := newTestService()
	ctx := context.Background()

	id, err := svc.CreateProduct(ctx, kaosCommand())
	require.NoError(t, err)

	cmd := kaosCommand()
	cmd.Name = "Kaos Sablon Premium"
	cmd.Price = 75000
	cmd.Featured = true
	require.NoError(t, svc.UpdateProduct(ctx, id, cmd))

	p, _ := products.GetByID(ctx, id)
	assert.Equal(t, "Kaos Sablon Premium", p.Name)
	assert.Equal(t, int64(75000), p.Price)
	assert.True(t, p.Featured)
	// Slug untouched when the form leaves it blank.
	assert.Equal(t, "kaos-sablon-custom", p.Slug)
}

func TestUpdateProductMissing(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.UpdateProduct(context.Background(), 99, kaosCommand())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetProductBySlugHidesInactive(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	cmd := kaosCommand()
	cmd.Active = false
	_, err := svc.CreateProduct(ctx, cmd)
	require.NoError(t, err)

	_, err = svc.GetProductBySlug(ctx, "kaos-sablon-custom")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetProductBySlugActive(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, kaosCommand())
	require.NoError(t, err)

	p, err := svc.GetProductBySlug(ctx, "kaos-sablon-custom")
	require.NoError(t, err)
	assert.Equal(t, "Kaos Sablon Custom", p.Name)
}

func TestCreateCategoryDerivesSlug(t *testing.T) {
	svc, _, categories := newTestService()

	id, err := svc.CreateCategory(context.Background(), CategoryCommand{Name: "Kaos Polos", Active: true})
	require.NoError(t, err)

	c, err := categories.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "kaos-polos", c.Slug)
}

func TestStats(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, kaosCommand())
	require.NoError(t, err)

	featured := kaosCommand()
	featured.Slug = "kaos-unggulan"
	featured.Featured = true
	_, err = svc.CreateProduct(ctx, featured)
	require.NoError(t, err)

	_, err = svc.CreateCategory(ctx, CategoryCommand{Name: "Kaos", Active: true})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Products)
	assert.Equal(t, int64(1), stats.Categories)
	assert.Equal(t, int64(1), stats.Featured)
}
