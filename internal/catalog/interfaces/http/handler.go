package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tokobajusablon/storefront/internal/catalog/application"
	"github.com/tokobajusablon/storefront/internal/catalog/domain"
	"github.com/tokobajusablon/storefront/pkg/money"
)

type Handler struct {
	app *application.CatalogService
}

func NewHandler(app *application.CatalogService) *Handler {
	return &Handler{app: app}
}

// RegisterPublicRoutes mounts the storefront catalog.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	g := r.Group("/v1/catalog")
	g.GET("/products", h.ListProducts)
	g.GET("/products/featured", h.FeaturedProducts)
	g.GET("/products/:slug", h.GetProductBySlug)
	g.GET("/categories", h.ListCategories)
}

// RegisterAdminRoutes mounts the back-office catalog management under
// an already-authenticated group.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.Stats)

	p := r.Group("/products")
	p.GET("", h.AdminListProducts)
	p.POST("", h.CreateProduct)
	p.GET("/:id", h.AdminGetProduct)
	p.PUT("/:id", h.UpdateProduct)
	p.DELETE("/:id", h.DeleteProduct)

	c := r.Group("/categories")
	c.GET("", h.AdminListCategories)
	c.POST("", h.CreateCategory)
	c.PUT("/:id", h.UpdateCategory)
	c.DELETE("/:id", h.DeleteCategory)
}

// ListProducts serves the public catalog with the kategori / search /
// min / max filters.
func (h *Handler) ListProducts(c *gin.Context) {
	filter := domain.ProductFilter{
		CategorySlug: c.Query("kategori"),
		Search:       c.Query("search"),
		ActiveOnly:   true,
	}
	if v := c.Query("min"); v != "" {
		if min, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.MinPrice = &min
		}
	}
	if v := c.Query("max"); v != "" {
		if max, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.MaxPrice = &max
		}
	}

	products, err := h.app.ListProducts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": toProductResponses(products)})
}

func (h *Handler) FeaturedProducts(c *gin.Context) {
	limit := 8
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	products, err := h.app.FeaturedProducts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": toProductResponses(products)})
}

func (h *Handler) GetProductBySlug(c *gin.Context) {
	p, err := h.app.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toProductResponse(p))
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.app.ListCategories(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.app.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) AdminListProducts(c *gin.Context) {
	products, err := h.app.ListProducts(c.Request.Context(), domain.ProductFilter{
		CategorySlug: c.Query("kategori"),
		Search:       c.Query("search"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": toProductResponses(products)})
}

func (h *Handler) AdminGetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.app.GetProduct(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toProductResponse(p))
}

type productRequest struct {
	Nama         string   `json:"nama" binding:"required"`
	Slug         string   `json:"slug"`
	Harga        int64    `json:"harga" binding:"required"`
	Deskripsi    string   `json:"deskripsi"`
	KategoriID   uint     `json:"kategori_id"`
	Gambar       []string `json:"gambar"`
	VarianUkuran []string `json:"varian_ukuran"`
	VarianWarna  []string `json:"varian_warna"`
	Stok         int      `json:"stok"`
	Aktif        *bool    `json:"aktif"`
	Featured     bool     `json:"featured"`
}

func (r productRequest) toCommand() application.CreateProductCommand {
	active := true
	if r.Aktif != nil {
		active = *r.Aktif
	}
	return application.CreateProductCommand{
		Name:          r.Nama,
		Slug:          r.Slug,
		Price:         r.Harga,
		Description:   r.Deskripsi,
		CategoryID:    r.KategoriID,
		Images:        r.Gambar,
		SizeVariants:  r.VarianUkuran,
		ColorVariants: r.VarianWarna,
		Stock:         r.Stok,
		Active:        active,
		Featured:      r.Featured,
	}
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.app.CreateProduct(c.Request.Context(), req.toCommand())
	if errors.Is(err, application.ErrNoImages) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.app.UpdateProduct(c.Request.Context(), id, req.toCommand())
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case errors.Is(err, application.ErrNoImages):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusNoContent)
	}
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.app.DeleteProduct(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type categoryRequest struct {
	Nama      string `json:"nama" binding:"required"`
	Slug      string `json:"slug"`
	Deskripsi string `json:"deskripsi"`
	Urutan    int    `json:"urutan"`
	Aktif     *bool  `json:"aktif"`
}

func (r categoryRequest) toCommand() application.CategoryCommand {
	active := true
	if r.Aktif != nil {
		active = *r.Aktif
	}
	return application.CategoryCommand{
		Name:        r.Nama,
		Slug:        r.Slug,
		Description: r.Deskripsi,
		SortOrder:   r.Urutan,
		Active:      active,
	}
}

func (h *Handler) AdminListCategories(c *gin.Context) {
	categories, err := h.app.ListCategories(c.Request.Context(), false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.app.CreateCategory(c.Request.Context(), req.toCommand())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.app.UpdateCategory(c.Request.Context(), id, req.toCommand())
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusNoContent)
	}
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.app.DeleteCategory(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

type productResponse struct {
	ID             uint     `json:"id"`
	Nama           string   `json:"nama"`
	Slug           string   `json:"slug"`
	Harga          int64    `json:"harga"`
	HargaFormatted string   `json:"harga_formatted"`
	Deskripsi      string   `json:"deskripsi"`
	KategoriID     uint     `json:"kategori_id"`
	Gambar         []string `json:"gambar"`
	VarianUkuran   []string `json:"varian_ukuran"`
	VarianWarna    []string `json:"varian_warna"`
	Stok           int      `json:"stok"`
	Aktif          bool     `json:"aktif"`
	Featured       bool     `json:"featured"`
	CreatedAt      string   `json:"created_at"`
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:             p.ID,
		Nama:           p.Name,
		Slug:           p.Slug,
		Harga:          p.Price,
		HargaFormatted: money.FormatIDR(p.Price),
		Deskripsi:      p.Description,
		KategoriID:     p.CategoryID,
		Gambar:         p.Images,
		VarianUkuran:   p.SizeVariants,
		VarianWarna:    p.ColorVariants,
		Stok:           p.Stock,
		Aktif:          p.Active,
		Featured:       p.Featured,
		CreatedAt:      p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toProductResponses(products []*domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}
