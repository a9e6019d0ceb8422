package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-engine/internal/config"
	"github.com/your-org/storefront-engine/internal/domain/cart"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
	"github.com/your-org/storefront-engine/internal/domain/checkout"
)

func sampleInquiry(t *testing.T) *checkout.Inquiry {
	t.Helper()
	s := cart.NewStore()
	item := &catalog.Item{ID: "p1", Name: "Cough Syrup", BasePrice: 12000, Available: true}
	_, err := s.AddItem(item, 2, &catalog.Variation{ID: "120ml", Name: "120 ml", PriceDelta: 3000}, []cart.AddOnSelection{
		{AddOn: catalog.AddOn{ID: "spoon", Name: "Dosing Spoon", Price: 500}, Count: 3},
	})
	require.NoError(t, err)

	return &checkout.Inquiry{
		Reference: "INQ-ABCDEF12",
		StoreName: "Botika <RBT>",
		Details: checkout.Details{
			CustomerName:  "Ana",
			ContactNumber: "0917",
			ServiceType:   checkout.ServiceDelivery,
			Address:       "1 Rizal St",
		},
		PaymentMethod: catalog.PaymentMethod{ID: "cash", Name: "Cash (Onsite)"},
		Lines:         s.Lines(),
		Total:         s.TotalPrice(),
		CreatedAt:     time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestNewSummaryData(t *testing.T) {
	data := NewSummaryData(sampleInquiry(t))

	assert.Equal(t, "Delivery", data.Service)
	assert.True(t, data.Delivery)
	assert.Equal(t, "March 1, 2024 9:30 AM", data.Date)
	require.Len(t, data.Rows, 1)
	assert.Equal(t, "120 ml, Dosing Spoon x3", data.Rows[0].Options)
	assert.Equal(t, "₱165.00", data.Rows[0].UnitPrice)
	assert.Equal(t, "₱330.00", data.Rows[0].Subtotal)
	assert.Equal(t, "₱330.00", data.Total)
}

func TestGenerateHTML(t *testing.T) {
	svc := NewService(&config.Config{PDF: config.PDFConfig{Enabled: true, DPI: 150}})

	html, err := svc.generateHTML(NewSummaryData(sampleInquiry(t)))
	require.NoError(t, err)

	assert.Contains(t, html, "INQ-ABCDEF12")
	assert.Contains(t, html, "Botika &lt;RBT&gt; Inquiry")
	assert.Contains(t, html, "1 Rizal St")
	assert.Contains(t, html, "Dosing Spoon x3")
	assert.NotContains(t, html, "Landmark:")
}

func TestGenerateInquirySummary_Disabled(t *testing.T) {
	svc := NewService(&config.Config{PDF: config.PDFConfig{Enabled: false}})

	_, err := svc.GenerateInquirySummary(sampleInquiry(t))
	assert.ErrorIs(t, err, ErrDisabled)
}
