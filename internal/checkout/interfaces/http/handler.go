package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tokobajusablon/storefront/internal/checkout/application"
	"github.com/tokobajusablon/storefront/internal/checkout/domain"
	"github.com/tokobajusablon/storefront/pkg/metrics"
)

const cartCookie = "cart_token"

type Handler struct {
	checkout *application.Service
	metrics  *metrics.Metrics
}

func NewHandler(checkout *application.Service, m *metrics.Metrics) *Handler {
	return &Handler{checkout: checkout, metrics: m}
}

// RegisterRoutes mounts the checkout endpoint; mw typically carries the
// rate limiter.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, mw ...gin.HandlerFunc) {
	r.POST("/v1/checkout", append(mw, h.Checkout)...)
}

func (h *Handler) Checkout(c *gin.Context) {
	var req struct {
		Nama    string `json:"nama" binding:"required"`
		HP      string `json:"hp" binding:"required"`
		Alamat  string `json:"alamat" binding:"required"`
		Catatan string `json:"catatan"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cartID := h.cartID(c)
	if cartID == "" {
		c.JSON(http.StatusConflict, gin.H{"error": domain.ErrEmptyCart.Error()})
		return
	}

	result, err := h.checkout.Checkout(c.Request.Context(), cartID, domain.ShippingInfo{
		Name:    req.Nama,
		Phone:   req.HP,
		Address: req.Alamat,
		Note:    req.Catatan,
	})
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrShippingIncomplete):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		if h.metrics != nil {
			h.metrics.OrdersHandedOff.Inc()
		}
		c.JSON(http.StatusOK, result)
	}
}

// cartID reads the visitor's cart token. Checkout never mints one: a
// visitor without a token cannot have a non-empty cart.
func (h *Handler) cartID(c *gin.Context) string {
	if token := c.GetHeader("X-Cart-Token"); token != "" {
		return token
	}
	token, _ := c.Cookie(cartCookie)
	return token
}
