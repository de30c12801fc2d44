package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tokobajusablon/storefront/internal/auth/application"
	"github.com/tokobajusablon/storefront/internal/auth/domain"
)

// SessionKey is the gin context key the middleware stores the
// authenticated session under.
const SessionKey = "admin_session"

type Handler struct {
	auth *application.AuthService
}

func NewHandler(auth *application.AuthService) *Handler {
	return &Handler{auth: auth}
}

// RegisterRoutes mounts login on the open group and logout on the
// authenticated one.
func (h *Handler) RegisterRoutes(open, authed *gin.RouterGroup) {
	open.POST("/login", h.Login)
	authed.POST("/logout", h.Logout)
	authed.GET("/me", h.Me)
}

func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      session.Token,
		"type":       "Bearer",
		"expires_at": session.ExpiresAt.Unix(),
	})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), bearerToken(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Me(c *gin.Context) {
	session, ok := c.Get(SessionKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrInvalidSession.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// RequireAdmin rejects requests without a live admin session.
func RequireAdmin(auth *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := auth.Authenticate(c.Request.Context(), bearerToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrInvalidSession.Error()})
			return
		}
		c.Set(SessionKey, session)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return token
	}
	return ""
}
