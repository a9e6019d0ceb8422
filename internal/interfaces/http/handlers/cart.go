// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-engine/internal/domain/cart"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
	"github.com/your-org/storefront-engine/internal/domain/session"
	"github.com/your-org/storefront-engine/internal/interfaces/http/middleware"
)

var errUnknownOption = errors.New("unknown item option")

// CartHandler handles cart endpoints
type CartHandler struct {
	catalog  catalog.Reader
	sessions *session.Manager
}

// NewCartHandler creates a new cart handler
func NewCartHandler(reader catalog.Reader, sessions *session.Manager) *CartHandler {
	return &CartHandler{
		catalog:  reader,
		sessions: sessions,
	}
}

// AddItemRequest represents an add-to-cart request. Quantity defaults to 1.
type AddItemRequest struct {
	ItemID      string         `json:"item_id" binding:"required"`
	Quantity    *int           `json:"quantity"`
	VariationID string         `json:"variation_id"`
	AddOns      []AddOnRequest `json:"add_ons"`
	Tag         string         `json:"selection_tag"`
}

// AddOnRequest selects count units of an add-on
type AddOnRequest struct {
	ID    string `json:"id" binding:"required"`
	Count int    `json:"count"`
}

// QuantityRequest sets a quantity exactly
type QuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// LineView is a cart line with its derived prices
type LineView struct {
	cart.Line
	UnitPrice int64 `json:"unit_price"` // In cents
	Subtotal  int64 `json:"subtotal"`   // In cents
}

// CartView represents the full cart response
type CartView struct {
	Lines  []LineView  `json:"lines"`
	Totals cart.Totals `json:"totals"`
}

func newCartView(lines []cart.Line, totals cart.Totals) CartView {
	views := make([]LineView, len(lines))
	for i, line := range lines {
		views[i] = LineView{
			Line:      line,
			UnitPrice: cart.LineUnitPrice(line),
			Subtotal:  cart.LineSubtotal(line),
		}
	}
	return CartView{Lines: views, Totals: totals}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	lines, totals := h.sessions.Snapshot(middleware.GetSessionID(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    newCartView(lines, totals),
	})
}

// GetCount handles GET /cart/count
func (h *CartHandler) GetCount(c *gin.Context) {
	_, totals := h.sessions.Snapshot(middleware.GetSessionID(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"total_items": totals.TotalQuantity,
			"total_price": totals.TotalPrice,
		},
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	item, err := h.catalog.GetItem(c.Request.Context(), req.ItemID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	sel, err := buildSelection(item, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	var line cart.Line
	var view CartView
	err = h.sessions.WithCart(middleware.GetSessionID(c), func(s *cart.Store) error {
		var addErr error
		line, addErr = s.AddSelection(item, quantity, sel)
		if addErr != nil {
			return addErr
		}
		view = newCartView(s.Lines(), s.Totals())
		return nil
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data": gin.H{
			"line_id": line.ID,
			"cart":    view,
		},
	})
}

// UpdateLine handles PUT /cart/items/:line_id
func (h *CartHandler) UpdateLine(c *gin.Context) {
	var req QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if *req.Quantity > cart.MaxQuantity {
		h.respondError(c, cart.ErrQuantityTooLarge)
		return
	}

	lineID := c.Param("line_id")
	view, err := h.mutate(c, func(s *cart.Store) error {
		s.UpdateQuantity(lineID, *req.Quantity)
		return nil
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    view,
	})
}

// RemoveLine handles DELETE /cart/items/:line_id
func (h *CartHandler) RemoveLine(c *gin.Context) {
	lineID := c.Param("line_id")
	view, err := h.mutate(c, func(s *cart.Store) error {
		s.RemoveItem(lineID)
		return nil
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    view,
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	view, err := h.mutate(c, func(s *cart.Store) error {
		s.Clear()
		return nil
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    view,
	})
}

// SetDefaultQuantity handles PUT /cart/default/:item_id, the +/- control on
// the browsing surface
func (h *CartHandler) SetDefaultQuantity(c *gin.Context) {
	var req QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	item, err := h.catalog.GetItem(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	var quantity int
	view, err := h.mutate(c, func(s *cart.Store) error {
		if err := cart.SetDefaultQuantity(s, item, *req.Quantity); err != nil {
			return err
		}
		quantity = cart.QuantityInCartForDefault(item.ID, s.Lines())
		return nil
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart quantity updated successfully",
		"data": gin.H{
			"item_id":       item.ID,
			"cart_quantity": quantity,
			"cart":          view,
		},
	})
}

// EndSession handles DELETE /session, dropping the cart with it
func (h *CartHandler) EndSession(c *gin.Context) {
	h.sessions.End(middleware.GetSessionID(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Session ended successfully",
	})
}

func (h *CartHandler) mutate(c *gin.Context, fn func(*cart.Store) error) (CartView, error) {
	var view CartView
	err := h.sessions.WithCart(middleware.GetSessionID(c), func(s *cart.Store) error {
		if err := fn(s); err != nil {
			return err
		}
		view = newCartView(s.Lines(), s.Totals())
		return nil
	})
	return view, err
}

func (h *CartHandler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, catalog.ErrItemNotFound):
		status = http.StatusNotFound
	case errors.Is(err, cart.ErrItemUnavailable):
		status = http.StatusConflict
	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrQuantityTooLarge),
		errors.Is(err, cart.ErrInvalidAddOnCount),
		errors.Is(err, cart.ErrMissingItem),
		errors.Is(err, errUnknownOption),
		errors.Is(err, session.ErrInvalidSessionID):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, gin.H{
			"error": "Failed to update cart",
		})
		return
	}

	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}

// buildSelection resolves the requested variation and add-on ids against the item
func buildSelection(item *catalog.Item, req *AddItemRequest) (cart.Selection, error) {
	sel := cart.Selection{Tag: strings.TrimSpace(req.Tag)}

	if req.VariationID != "" {
		variation, ok := item.FindVariation(req.VariationID)
		if !ok {
			return sel, fmt.Errorf("%w: variation %q", errUnknownOption, req.VariationID)
		}
		sel.Variation = variation
	}

	for _, a := range req.AddOns {
		addOn, ok := item.FindAddOn(a.ID)
		if !ok {
			return sel, fmt.Errorf("%w: add-on %q", errUnknownOption, a.ID)
		}
		sel.AddOns = append(sel.AddOns, cart.AddOnSelection{AddOn: *addOn, Count: a.Count})
	}

	return sel, nil
}
