// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-engine/internal/domain/cart"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
	"github.com/your-org/storefront-engine/internal/domain/session"
	"github.com/your-org/storefront-engine/internal/interfaces/http/middleware"
)

// CatalogHandler handles the browsing surface
type CatalogHandler struct {
	catalog  catalog.Reader
	sessions *session.Manager
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(reader catalog.Reader, sessions *session.Manager) *CatalogHandler {
	return &CatalogHandler{
		catalog:  reader,
		sessions: sessions,
	}
}

// ItemView is a catalog item as the browsing surface renders it
type ItemView struct {
	catalog.Item
	Price        int64                `json:"price"` // Effective unit price before customization, in cents
	Customizable bool                 `json:"customizable"`
	CartQuantity int                  `json:"cart_quantity"` // Quantity of the plain configuration already in the cart
	AddOnGroups  []catalog.AddOnGroup `json:"add_on_groups"`
}

func newItemView(item *catalog.Item, lines []cart.Line) ItemView {
	return ItemView{
		Item:         *item,
		Price:        cart.EffectivePrice(item),
		Customizable: item.IsCustomizable(),
		CartQuantity: cart.QuantityInCartForDefault(item.ID, lines),
		AddOnGroups:  catalog.GroupAddOns(item),
	}
}

// ListItems handles GET /catalog/items
func (h *CatalogHandler) ListItems(c *gin.Context) {
	var filter catalog.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	items, err := h.catalog.ListItems(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve catalog items",
		})
		return
	}

	lines, _ := h.sessions.Snapshot(middleware.GetSessionID(c))
	views := make([]ItemView, len(items))
	for i := range items {
		views[i] = newItemView(&items[i], lines)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog items retrieved successfully",
		"data":    views,
	})
}

// GetItem handles GET /catalog/items/:id
func (h *CatalogHandler) GetItem(c *gin.Context) {
	item, err := h.catalog.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Catalog item not found",
			})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve catalog item",
		})
		return
	}

	lines, _ := h.sessions.Snapshot(middleware.GetSessionID(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog item retrieved successfully",
		"data":    newItemView(item, lines),
	})
}

// ListCategories handles GET /catalog/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve categories",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// GetSiteSettings handles GET /catalog/settings
func (h *CatalogHandler) GetSiteSettings(c *gin.Context) {
	settings, err := h.catalog.GetSiteSettings(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve site settings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Site settings retrieved successfully",
		"data":    settings,
	})
}
