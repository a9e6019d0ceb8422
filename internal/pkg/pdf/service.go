// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/storefront-engine/internal/config"
	"github.com/your-org/storefront-engine/internal/domain/cart"
	"github.com/your-org/storefront-engine/internal/domain/checkout"
	"github.com/your-org/storefront-engine/internal/pkg/money"
)

// ErrDisabled is returned when PDF rendering is switched off
var ErrDisabled = errors.New("pdf rendering is disabled")

var summaryTmpl = template.Must(template.New("inquiry").Parse(summaryTemplate))

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateInquirySummary renders a printable summary of a checkout inquiry
func (s *Service) GenerateInquirySummary(inquiry *checkout.Inquiry) (*bytes.Buffer, error) {
	if !s.config.PDF.Enabled {
		return nil, ErrDisabled
	}

	htmlContent, err := s.generateHTML(NewSummaryData(inquiry))
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(s.config.PDF.DPI)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA5)

	page := wkhtmltopdf.NewPageReader(strings.NewReader(htmlContent))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(8)
	page.Encoding.Set("utf-8")

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

func (s *Service) generateHTML(data SummaryData) (string, error) {
	var buf bytes.Buffer
	if err := summaryTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// SummaryData represents the data passed to the summary template.
// Amounts are pre-formatted for display.
type SummaryData struct {
	Reference     string
	Date          string
	StoreName     string
	CustomerName  string
	ContactNumber string
	Service       string
	Delivery      bool
	Address       string
	Landmark      string
	PaymentMethod string
	Notes         string
	Rows          []SummaryRow
	Total         string
}

// SummaryRow is one cart line in the summary table
type SummaryRow struct {
	Name      string
	Options   string
	Quantity  int
	UnitPrice string
	Subtotal  string
}

// NewSummaryData flattens an inquiry for the template
func NewSummaryData(inquiry *checkout.Inquiry) SummaryData {
	d := inquiry.Details
	data := SummaryData{
		Reference:     inquiry.Reference,
		Date:          inquiry.CreatedAt.Format("January 2, 2006 3:04 PM"),
		StoreName:     inquiry.StoreName,
		CustomerName:  d.CustomerName,
		ContactNumber: d.ContactNumber,
		Service:       serviceLabel(d.ServiceType),
		Delivery:      d.ServiceType == checkout.ServiceDelivery,
		Address:       d.Address,
		Landmark:      d.Landmark,
		PaymentMethod: inquiry.PaymentMethod.Name,
		Notes:         d.Notes,
		Total:         money.Display(inquiry.Total),
	}

	for _, line := range inquiry.Lines {
		data.Rows = append(data.Rows, SummaryRow{
			Name:      line.Name,
			Options:   lineOptions(line),
			Quantity:  line.Quantity,
			UnitPrice: money.Display(cart.LineUnitPrice(line)),
			Subtotal:  money.Display(cart.LineSubtotal(line)),
		})
	}
	return data
}

func serviceLabel(t checkout.ServiceType) string {
	s := string(t)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func lineOptions(line cart.Line) string {
	var parts []string
	if line.SelectedVariation != nil {
		parts = append(parts, line.SelectedVariation.Name)
	}
	for _, sel := range line.SelectedAddOns {
		if sel.Count > 1 {
			parts = append(parts, fmt.Sprintf("%s x%d", sel.AddOn.Name, sel.Count))
		} else {
			parts = append(parts, sel.AddOn.Name)
		}
	}
	if line.SelectionTag != "" {
		parts = append(parts, line.SelectionTag)
	}
	return strings.Join(parts, ", ")
}

const summaryTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Inquiry {{.Reference}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 16px;
            color: #333;
        }
        .header {
            border-bottom: 2px solid #eee;
            padding-bottom: 12px;
            margin-bottom: 16px;
        }
        .title {
            font-size: 22px;
            font-weight: bold;
            color: #1a7f5a;
        }
        .details td {
            padding: 3px 0;
            vertical-align: top;
        }
        .details .label {
            font-weight: bold;
            width: 120px;
        }
        .items-table {
            width: 100%;
            border-collapse: collapse;
            margin: 16px 0;
        }
        .items-table th,
        .items-table td {
            border: 1px solid #ddd;
            padding: 8px 6px;
            text-align: left;
        }
        .items-table th {
            background-color: #f8f9fa;
        }
        .items-table .num {
            text-align: right;
            width: 70px;
        }
        .total-row td {
            font-size: 16px;
            font-weight: bold;
            border-top: 2px solid #333;
        }
        .footer {
            margin-top: 24px;
            text-align: center;
            color: #666;
            font-size: 11px;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="title">{{.StoreName}} Inquiry</div>
        <p><strong>Reference:</strong> {{.Reference}} &middot; {{.Date}}</p>
    </div>

    <table class="details">
        <tr><td class="label">Customer:</td><td>{{.CustomerName}}</td></tr>
        <tr><td class="label">Contact:</td><td>{{.ContactNumber}}</td></tr>
        <tr><td class="label">Service:</td><td>{{.Service}}</td></tr>
        {{if .Delivery}}
        <tr><td class="label">Address:</td><td>{{.Address}}</td></tr>
        {{if .Landmark}}<tr><td class="label">Landmark:</td><td>{{.Landmark}}</td></tr>{{end}}
        {{end}}
        <tr><td class="label">Payment:</td><td>{{.PaymentMethod}}</td></tr>
        {{if .Notes}}<tr><td class="label">Notes:</td><td>{{.Notes}}</td></tr>{{end}}
    </table>

    <table class="items-table">
        <thead>
            <tr>
                <th>Item</th>
                <th class="num">Qty</th>
                <th class="num">Price</th>
                <th class="num">Subtotal</th>
            </tr>
        </thead>
        <tbody>
            {{range .Rows}}
            <tr>
                <td>
                    <strong>{{.Name}}</strong>
                    {{if .Options}}<br><small>{{.Options}}</small>{{end}}
                </td>
                <td class="num">{{.Quantity}}</td>
                <td class="num">{{.UnitPrice}}</td>
                <td class="num">{{.Subtotal}}</td>
            </tr>
            {{end}}
            <tr class="total-row">
                <td colspan="3">Total</td>
                <td class="num">{{.Total}}</td>
            </tr>
        </tbody>
    </table>

    <div class="footer">
        <p>This is an inquiry, not a receipt. Please confirm with {{.StoreName}} to proceed.</p>
    </div>
</body>
</html>
`
