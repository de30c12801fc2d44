package application

import (
	"context"
	"errors"

	"github.com/tokobajusablon/storefront/internal/catalog/domain"
)

// CreateProductCommand carries the admin form for a new product.
type CreateProductCommand struct {
	Name          string
	Slug          string
	Price         int64
	Description   string
	CategoryID    uint
	Images        []string
	SizeVariants  []string
	ColorVariants []string
	Stock         int
	Active        bool
	Featured      bool
}

// UpdateProductCommand carries the admin form for an edit. All fields
// replace the stored ones.
type UpdateProductCommand = CreateProductCommand

// CategoryCommand carries the admin form for a category.
type CategoryCommand struct {
	Name        string
	Slug        string
	Description string
	SortOrder   int
	Active      bool
}

// DashboardStats feeds the admin dashboard counters.
type DashboardStats struct {
	Products   int64 `json:"products"`
	Categories int64 `json:"categories"`
	Featured   int64 `json:"featured"`
}

// ErrNoImages rejects products without at least one image.
var ErrNoImages = errors.New("product needs at least one image")

// CatalogService handles product and category commands and queries.
type CatalogService struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
}

func NewCatalogService(products domain.ProductRepository, categories domain.CategoryRepository) *CatalogService {
	return &CatalogService{products: products, categories: categories}
}

// CreateProduct validates the form and stores a new product. The slug
// is derived from the name when the form leaves it blank.
func (s *CatalogService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (uint, error) {
	if len(cmd.Images) == 0 {
		return 0, ErrNoImages
	}
	slug := cmd.Slug
	if slug == "" {
		slug = domain.Slugify(cmd.Name)
	}

	p := &domain.Product{
		Name:          cmd.Name,
		Slug:          slug,
		Price:         cmd.Price,
		Description:   cmd.Description,
		CategoryID:    cmd.CategoryID,
		Images:        cmd.Images,
		SizeVariants:  cmd.SizeVariants,
		ColorVariants: cmd.ColorVariants,
		Stock:         cmd.Stock,
		Active:        cmd.Active,
		Featured:      cmd.Featured,
	}
	if err := s.products.Save(ctx, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

// UpdateProduct replaces the stored fields of an existing product.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, cmd UpdateProductCommand) error {
	if len(cmd.Images) == 0 {
		return ErrNoImages
	}

	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return err
	}

	p.Name = cmd.Name
	if cmd.Slug != "" {
		p.Slug = cmd.Slug
	}
	p.Price = cmd.Price
	p.Description = cmd.Description
	p.CategoryID = cmd.CategoryID
	p.Images = cmd.Images
	p.SizeVariants = cmd.SizeVariants
	p.ColorVariants = cmd.ColorVariants
	p.Stock = cmd.Stock
	p.Active = cmd.Active
	p.Featured = cmd.Featured

	return s.products.Save(ctx, p)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	return s.products.Delete(ctx, id)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// GetProductBySlug returns the product for a public detail page. Only
// active products are visible there; inactive ones read as missing.
func (s *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	p, err := s.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// ListProducts lists products matching filter, newest first.
func (s *CatalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	return s.products.List(ctx, filter)
}

// FeaturedProducts lists active featured products for the home page.
func (s *CatalogService) FeaturedProducts(ctx context.Context, limit int) ([]*domain.Product, error) {
	return s.products.ListFeatured(ctx, limit)
}

// CreateCategory stores a new category, deriving the slug from the
// name when blank.
func (s *CatalogService) CreateCategory(ctx context.Context, cmd CategoryCommand) (uint, error) {
	slug := cmd.Slug
	if slug == "" {
		slug = domain.Slugify(cmd.Name)
	}

	cat := &domain.Category{
		Name:        cmd.Name,
		Slug:        slug,
		Description: cmd.Description,
		SortOrder:   cmd.SortOrder,
		Active:      cmd.Active,
	}
	if err := s.categories.Save(ctx, cat); err != nil {
		return 0, err
	}
	return cat.ID, nil
}

// UpdateCategory replaces the stored fields of an existing category.
func (s *CatalogService) UpdateCategory(ctx context.Context, id uint, cmd CategoryCommand) error {
	cat, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}

	cat.Name = cmd.Name
	if cmd.Slug != "" {
		cat.Slug = cmd.Slug
	}
	cat.Description = cmd.Description
	cat.SortOrder = cmd.SortOrder
	cat.Active = cmd.Active

	return s.categories.Save(ctx, cat)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	return s.categories.Delete(ctx, id)
}

// ListCategories lists categories by sort order; activeOnly hides
// disabled ones for the public catalog.
func (s *CatalogService) ListCategories(ctx context.Context, activeOnly bool) ([]*domain.Category, error) {
	return s.categories.List(ctx, activeOnly)
}

// Stats returns the dashboard counters.
func (s *CatalogService) Stats(ctx context.Context) (*DashboardStats, error) {
	products, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.Count(ctx)
	if err != nil {
		return nil, err
	}
	featured, err := s.products.CountFeatured(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{Products: products, Categories: categories, Featured: featured}, nil
}
