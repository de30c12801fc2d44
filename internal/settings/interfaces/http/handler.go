package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tokobajusablon/storefront/internal/settings/application"
	"github.com/tokobajusablon/storefront/internal/settings/domain"
)

type Handler struct {
	app *application.SettingsService
}

func NewHandler(app *application.SettingsService) *Handler {
	return &Handler{app: app}
}

// RegisterPublicRoutes exposes the store profile for the footer and
// contact blocks.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/v1/store", h.StoreProfile)
}

// RegisterAdminRoutes mounts settings management under an
// already-authenticated group.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	g := r.Group("/settings")
	g.GET("", h.List)
	g.PUT("/:key", h.Upsert)
}

// StoreProfile returns store info, social media and the displayable
// WhatsApp label. Missing documents simply come back as null.
func (h *Handler) StoreProfile(c *gin.Context) {
	ctx := c.Request.Context()

	info, err := h.app.StoreInfo(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	social, err := h.app.SocialMedia(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	contact, err := h.app.WhatsAppContact(ctx)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var whatsappDisplay string
	if contact != nil {
		whatsappDisplay = contact.Display
	}
	c.JSON(http.StatusOK, gin.H{
		"store_info":       info,
		"social_media":     social,
		"whatsapp_display": whatsappDisplay,
	})
}

func (h *Handler) List(c *gin.Context) {
	settings, err := h.app.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *Handler) Upsert(c *gin.Context) {
	var value json.RawMessage
	if err := c.ShouldBindJSON(&value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.app.Upsert(c.Request.Context(), c.Param("key"), value)
	switch {
	case errors.Is(err, domain.ErrUnknownKey):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusNoContent)
	}
}
