// internal/domain/checkout/message.go
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/your-org/storefront-engine/internal/domain/cart"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
	"github.com/your-org/storefront-engine/internal/pkg/money"
)

// Validate checks the details against the storefront settings, the payment
// methods on offer and the cart contents. Every problem is reported.
func Validate(d *Details, settings catalog.SiteSettings, methods []catalog.PaymentMethod, lines []cart.Line) *Validation {
	v := &Validation{IsValid: true}

	if d.CustomerName == "" {
		v.fail("customer name is required")
	}
	if d.ContactNumber == "" {
		v.fail("contact number is required")
	}

	switch d.ServiceType {
	case ServicePickup:
	case ServiceDelivery:
		if !settings.DeliveryEnabled {
			v.fail("delivery is not available")
		}
		if d.Address == "" {
			v.fail("address is required for delivery")
		}
	default:
		v.fail(fmt.Sprintf("unknown service type %q", d.ServiceType))
	}

	if d.PaymentMethodID == "" {
		v.fail("payment method is required")
	} else if _, ok := FindPaymentMethod(methods, d.PaymentMethodID); !ok {
		v.fail(fmt.Sprintf("unknown payment method %q", d.PaymentMethodID))
	}

	if len(lines) == 0 {
		v.fail("cart is empty")
	}

	return v
}

// BuildMessage composes the inquiry text the shopper sends to the store
func BuildMessage(storeName string, d Details, paymentName string, lines []cart.Line, total int64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 %s INQUIRY\n\n", storeName)
	fmt.Fprintf(&b, "👤 Customer: %s\n", d.CustomerName)
	fmt.Fprintf(&b, "📞 Contact: %s\n", d.ContactNumber)
	fmt.Fprintf(&b, "📍 Service: %s\n", serviceLabel(d.ServiceType))
	if d.ServiceType == ServiceDelivery {
		fmt.Fprintf(&b, "🏠 Address: %s\n", d.Address)
		if d.Landmark != "" {
			fmt.Fprintf(&b, "🗺️ Landmark: %s\n", d.Landmark)
		}
	}

	b.WriteString("\n📋 INQUIRY DETAILS:\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "• %s\n", describeLine(line))
		fmt.Fprintf(&b, "  %d x %s = %s\n",
			line.Quantity,
			money.Display(cart.LineUnitPrice(line)),
			money.Display(cart.LineSubtotal(line)),
		)
	}
	fmt.Fprintf(&b, "\n💰 Total: %s\n", money.Display(total))
	if d.ServiceType == ServiceDelivery {
		b.WriteString("🛵 DELIVERY\n")
	}

	fmt.Fprintf(&b, "\n💳 Payment: %s\n", paymentName)
	if d.Notes != "" {
		fmt.Fprintf(&b, "\n📝 Notes: %s\n", d.Notes)
	}

	fmt.Fprintf(&b, "\nPlease confirm this inquiry to proceed. Thank you for choosing %s! 💊", storeName)
	return b.String()
}

// BuildMessage composes the text of a general inquiry
func (g GeneralInquiry) BuildMessage(storeName string) (string, error) {
	message := strings.TrimSpace(g.Message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📧 GENERAL INQUIRY - %s\n", storeName)
	if subject := strings.TrimSpace(g.Subject); subject != "" {
		fmt.Fprintf(&b, "\n📌 Subject: %s\n", subject)
	}
	fmt.Fprintf(&b, "\n💬 Message:\n%s\n", message)
	fmt.Fprintf(&b, "\nThank you for contacting %s! We'll get back to you soon. 💊", storeName)
	return b.String(), nil
}

// MessengerURL returns base with text attached as the prefilled message
func MessengerURL(base, text string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid messenger base url: %w", err)
	}
	q := u.Query()
	q.Set("text", text)
	// Spaces go out as %20. A literal '+' is already %2B here.
	u.RawQuery = strings.ReplaceAll(q.Encode(), "+", "%20")
	return u.String(), nil
}

// describeLine renders "Name (Variation) + AddOn, Other x2"
func describeLine(line cart.Line) string {
	desc := line.Name
	if line.SelectedVariation != nil {
		desc += " (" + line.SelectedVariation.Name + ")"
	}
	if len(line.SelectedAddOns) > 0 {
		names := make([]string, len(line.SelectedAddOns))
		for i, sel := range line.SelectedAddOns {
			names[i] = sel.AddOn.Name
			if sel.Count > 1 {
				names[i] += fmt.Sprintf(" x%d", sel.Count)
			}
		}
		desc += " + " + strings.Join(names, ", ")
	}
	if line.SelectionTag != "" {
		desc += " [" + line.SelectionTag + "]"
	}
	return desc
}

func serviceLabel(t ServiceType) string {
	s := string(t)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
