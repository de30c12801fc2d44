package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a product or category does not exist.
var ErrNotFound = errors.New("not found")

// ProductFilter narrows product listings. Nil price bounds mean
// unbounded; an empty CategorySlug or Search skips that filter.
type ProductFilter struct {
	CategorySlug string
	Search       string
	MinPrice     *int64
	MaxPrice     *int64
	ActiveOnly   bool
}

// ProductRepository is the catalog's product store. List returns
// products newest first.
type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*Product, error)
	ListFeatured(ctx context.Context, limit int) ([]*Product, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountFeatured(ctx context.Context) (int64, error)
}

// CategoryRepository is the catalog's category store. List returns
// categories by sort order.
type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	List(ctx context.Context, activeOnly bool) ([]*Category, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
