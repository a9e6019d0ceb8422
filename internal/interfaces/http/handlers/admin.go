// internal/interfaces/http/handlers/admin.go
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
	"github.com/your-org/storefront-engine/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-engine/internal/pkg/auth"
)

// CatalogAdmin is the write side of the catalog
type CatalogAdmin interface {
	UpsertItem(ctx context.Context, id string, req *catalog.UpsertItemRequest) (*catalog.Item, error)
	SetAvailability(ctx context.Context, id string, available bool) error
}

// AdminHandler handles admin login and catalog maintenance
type AdminHandler struct {
	catalog   CatalogAdmin
	jwt       *auth.JWTManager
	passwords *auth.PasswordManager
	log       *logrus.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(catalogAdmin CatalogAdmin, jwtManager *auth.JWTManager, passwords *auth.PasswordManager, log *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		catalog:   catalogAdmin,
		jwt:       jwtManager,
		passwords: passwords,
		log:       log,
	}
}

// LoginRequest represents admin login data
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents an issued admin token
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AvailabilityRequest toggles an item's availability
type AvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.passwords.VerifyAdmin(req.Username, req.Password); err != nil {
		h.log.WithFields(logrus.Fields{
			"username":  req.Username,
			"client_ip": c.ClientIP(),
		}).Warn("Admin login failed")
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid username or password",
		})
		return
	}

	token, expiresAt, err := h.jwt.GenerateAccessToken(req.Username)
	if err != nil {
		h.log.WithError(err).Error("Failed to issue admin token")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to log in",
		})
		return
	}

	h.log.WithField("username", req.Username).Info("Admin logged in")

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": LoginResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresAt:   expiresAt,
		},
	})
}

// UpsertItem handles PUT /admin/catalog/items/:id
func (h *AdminHandler) UpsertItem(c *gin.Context) {
	var req catalog.UpsertItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	item, err := h.catalog.UpsertItem(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidItem) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save catalog item",
		})
		return
	}

	admin, _ := middleware.GetAdminUsername(c)
	h.log.WithFields(logrus.Fields{
		"admin":   admin,
		"item_id": item.ID,
	}).Info("Catalog item upserted by admin")

	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog item saved successfully",
		"data":    item,
	})
}

// SetAvailability handles PATCH /admin/catalog/items/:id/availability
func (h *AdminHandler) SetAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	id := c.Param("id")
	if err := h.catalog.SetAvailability(c.Request.Context(), id, *req.Available); err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Catalog item not found",
			})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update availability",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Availability updated successfully",
		"data": gin.H{
			"id":        id,
			"available": *req.Available,
		},
	})
}
