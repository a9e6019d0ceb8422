// internal/domain/checkout/entity.go
package checkout

import (
	"errors"
	"strings"
	"time"

	"github.com/your-org/storefront-engine/internal/domain/cart"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
)

// ServiceType is how the shopper wants to receive the order
type ServiceType string

const (
	ServicePickup   ServiceType = "pickup"
	ServiceDelivery ServiceType = "delivery"
)

var (
	ErrEmptyMessage   = errors.New("message is required")
	ErrInvalidInquiry = errors.New("invalid inquiry")
)

// Details represents the customer data collected on checkout
type Details struct {
	CustomerName    string      `json:"customer_name"`
	ContactNumber   string      `json:"contact_number"`
	ServiceType     ServiceType `json:"service_type"`
	Address         string      `json:"address"`
	Landmark        string      `json:"landmark"`
	PaymentMethodID string      `json:"payment_method_id"`
	Notes           string      `json:"notes"`
}

// Normalize trims every field and defaults the service type to pickup
func (d *Details) Normalize() {
	d.CustomerName = strings.TrimSpace(d.CustomerName)
	d.ContactNumber = strings.TrimSpace(d.ContactNumber)
	d.Address = strings.TrimSpace(d.Address)
	d.Landmark = strings.TrimSpace(d.Landmark)
	d.PaymentMethodID = strings.TrimSpace(d.PaymentMethodID)
	d.Notes = strings.TrimSpace(d.Notes)
	d.ServiceType = ServiceType(strings.ToLower(strings.TrimSpace(string(d.ServiceType))))
	if d.ServiceType == "" {
		d.ServiceType = ServicePickup
	}
}

// Validation represents checkout validation result
type Validation struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors,omitempty"`
}

func (v *Validation) fail(msg string) {
	v.IsValid = false
	v.Errors = append(v.Errors, msg)
}

// ValidationError carries every problem found with an inquiry
type ValidationError struct {
	Validation *Validation
}

func (e *ValidationError) Error() string {
	return ErrInvalidInquiry.Error() + ": " + strings.Join(e.Validation.Errors, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInquiry
}

// Inquiry is a validated order inquiry ready to be handed to the shopper
type Inquiry struct {
	Reference     string                `json:"reference"`
	StoreName     string                `json:"store_name"`
	Details       Details               `json:"details"`
	PaymentMethod catalog.PaymentMethod `json:"payment_method"`
	Lines         []cart.Line           `json:"lines"`
	Total         int64                 `json:"total"` // In cents
	Message       string                `json:"message"`
	MessengerURL  string                `json:"messenger_url"`
	CreatedAt     time.Time             `json:"created_at"`
}

// GeneralInquiry is a free-form question not tied to the cart
type GeneralInquiry struct {
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// GeneralInquiryResult is the composed message and its deep link
type GeneralInquiryResult struct {
	Message      string `json:"message"`
	MessengerURL string `json:"messenger_url"`
}
