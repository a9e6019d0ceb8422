// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-engine/internal/domain/checkout"
	"github.com/your-org/storefront-engine/internal/domain/session"
	"github.com/your-org/storefront-engine/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-engine/internal/pkg/pdf"
)

// CheckoutHandler handles checkout inquiry endpoints
type CheckoutHandler struct {
	checkout *checkout.Service
	sessions *session.Manager
	pdf      *pdf.Service
	log      *logrus.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, sessions *session.Manager, pdfService *pdf.Service, log *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkoutService,
		sessions: sessions,
		pdf:      pdfService,
		log:      log,
	}
}

// GetPaymentMethods handles GET /checkout/payment-methods
func (h *CheckoutHandler) GetPaymentMethods(c *gin.Context) {
	methods, err := h.checkout.GetPaymentMethods(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve payment methods",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment methods retrieved successfully",
		"data":    methods,
	})
}

// CreateInquiry handles POST /checkout/inquiry
func (h *CheckoutHandler) CreateInquiry(c *gin.Context) {
	inquiry, ok := h.prepare(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inquiry prepared successfully",
		"data":    inquiry,
	})
}

// CreateInquiryPDF handles POST /checkout/inquiry/pdf
func (h *CheckoutHandler) CreateInquiryPDF(c *gin.Context) {
	inquiry, ok := h.prepare(c)
	if !ok {
		return
	}

	buf, err := h.pdf.GenerateInquirySummary(inquiry)
	if err != nil {
		if errors.Is(err, pdf.ErrDisabled) {
			c.JSON(http.StatusNotImplemented, gin.H{
				"error": "PDF summaries are disabled",
			})
			return
		}
		h.log.WithError(err).WithField("reference", inquiry.Reference).Error("Failed to render inquiry summary")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate inquiry summary",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", inquiry.Reference))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// GeneralInquiry handles POST /inquiries/general
func (h *CheckoutHandler) GeneralInquiry(c *gin.Context) {
	var req checkout.GeneralInquiry
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.checkout.PrepareGeneralInquiry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to prepare inquiry",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inquiry prepared successfully",
		"data":    result,
	})
}

// prepare binds the checkout details and builds an inquiry from the session
// cart, writing the error response itself when it fails
func (h *CheckoutHandler) prepare(c *gin.Context) (*checkout.Inquiry, bool) {
	var details checkout.Details
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return nil, false
	}

	lines, _ := h.sessions.Snapshot(middleware.GetSessionID(c))

	inquiry, err := h.checkout.PrepareInquiry(c.Request.Context(), details, lines)
	if err != nil {
		var validationErr *checkout.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "Inquiry validation failed",
				"details": validationErr.Validation,
			})
			return nil, false
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to prepare inquiry",
		})
		return nil, false
	}

	return inquiry, true
}
