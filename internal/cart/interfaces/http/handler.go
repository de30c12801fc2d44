package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tokobajusablon/storefront/internal/cart/application"
	"github.com/tokobajusablon/storefront/internal/cart/domain"
	"github.com/tokobajusablon/storefront/pkg/metrics"
	"github.com/tokobajusablon/storefront/pkg/money"
)

// cartCookie identifies the visitor's cart across sessions. The token
// is opaque; the cart itself lives server-side.
const cartCookie = "cart_token"

// cartCookieMaxAge keeps the token roughly as long as the stored cart.
const cartCookieMaxAge = 30 * 24 * 60 * 60

type Handler struct {
	carts   *application.CartService
	metrics *metrics.Metrics
}

func NewHandler(carts *application.CartService, m *metrics.Metrics) *Handler {
	return &Handler{carts: carts, metrics: m}
}

func (h *Handler) countMutation(operation string) {
	if h.metrics != nil {
		h.metrics.CartMutationsTotal.WithLabelValues(operation).Inc()
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/v1/cart")
	g.GET("", h.GetCart)
	g.POST("/items", h.AddItem)
	g.PATCH("/items", h.UpdateQuantity)
	g.DELETE("/items", h.RemoveItem)
	g.DELETE("", h.ClearCart)
}

// cartID returns the visitor's cart token, minting one when absent.
func (h *Handler) cartID(c *gin.Context) string {
	if token := c.GetHeader("X-Cart-Token"); token != "" {
		return token
	}
	if token, err := c.Cookie(cartCookie); err == nil && token != "" {
		return token
	}
	token := uuid.New().String()
	c.SetCookie(cartCookie, token, cartCookieMaxAge, "/", "", false, true)
	return token
}

func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.carts.Get(c.Request.Context(), h.cartID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toCartResponse(cart))
}

func (h *Handler) AddItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
		Name      string `json:"name" binding:"required"`
		UnitPrice int64  `json:"unit_price" binding:"required"`
		ImageURL  string `json:"image_url"`
		Size      string `json:"size"`
		Color     string `json:"color"`
		Qty       int    `json:"qty" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Qty < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "qty must be at least 1"})
		return
	}
	if req.UnitPrice < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unit_price must not be negative"})
		return
	}

	cart, err := h.carts.AddItem(c.Request.Context(), h.cartID(c), domain.LineItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		ImageURL:  req.ImageURL,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Qty,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.countMutation("add")
	c.JSON(http.StatusOK, toCartResponse(cart))
}

func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
		Size      string `json:"size"`
		Color     string `json:"color"`
		Qty       int    `json:"qty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.carts.UpdateQuantity(c.Request.Context(), h.cartID(c), req.ProductID, req.Size, req.Color, req.Qty)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.countMutation("update")
	c.JSON(http.StatusOK, toCartResponse(cart))
}

func (h *Handler) RemoveItem(c *gin.Context) {
	productID := c.Query("product_id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}

	cart, err := h.carts.RemoveItem(c.Request.Context(), h.cartID(c), productID, c.Query("size"), c.Query("color"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.countMutation("remove")
	c.JSON(http.StatusOK, toCartResponse(cart))
}

func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), h.cartID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.countMutation("clear")
	c.JSON(http.StatusOK, toCartResponse(&domain.Cart{}))
}

type lineItemResponse struct {
	ProductID          string `json:"product_id"`
	Name               string `json:"name"`
	UnitPrice          int64  `json:"unit_price"`
	ImageURL           string `json:"image_url"`
	Size               string `json:"size"`
	Color              string `json:"color"`
	Qty                int    `json:"qty"`
	LineTotal          int64  `json:"line_total"`
	LineTotalFormatted string `json:"line_total_formatted"`
}

type cartResponse struct {
	Items               []lineItemResponse `json:"items"`
	TotalItems          int                `json:"total_items"`
	TotalPrice          int64              `json:"total_price"`
	TotalPriceFormatted string             `json:"total_price_formatted"`
}

func toCartResponse(cart *domain.Cart) cartResponse {
	items := make([]lineItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, lineItemResponse{
			ProductID:          item.ProductID,
			Name:               item.Name,
			UnitPrice:          item.UnitPrice,
			ImageURL:           item.ImageURL,
			Size:               item.Size,
			Color:              item.Color,
			Qty:                item.Quantity,
			LineTotal:          item.LineTotal(),
			LineTotalFormatted: money.FormatIDR(item.LineTotal()),
		})
	}
	return cartResponse{
		Items:               items,
		TotalItems:          cart.TotalItems(),
		TotalPrice:          cart.TotalPrice(),
		TotalPriceFormatted: money.FormatIDR(cart.TotalPrice()),
	}
}
