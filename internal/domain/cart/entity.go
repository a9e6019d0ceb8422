// internal/domain/cart/entity.go
package cart

import "github.com/your-org/storefront-engine/internal/domain/catalog"

// Line is one uniquely identified selection in a shopper's cart. Everything
// needed to price it is snapshotted when it is first added, so later catalog
// price changes never move an existing line.
type Line struct {
	ID                string             `json:"id"` // Composite identity key, see ResolveKey
	CatalogItemID     string             `json:"catalog_item_id"`
	Name              string             `json:"name"`
	Quantity          int                `json:"quantity"`
	BasePrice         int64              `json:"base_price"` // Effective item price at add time, in cents
	SelectedVariation *catalog.Variation `json:"selected_variation,omitempty"`
	SelectedAddOns    []AddOnSelection   `json:"selected_add_ons,omitempty"`
	SelectionTag      string             `json:"selection_tag,omitempty"`
}

// AddOnSelection is an add-on together with how many units of it were chosen
type AddOnSelection struct {
	AddOn catalog.AddOn `json:"add_on"`
	Count int           `json:"count"`
}

// Totals represents calculated cart totals
type Totals struct {
	LineCount     int   `json:"line_count"`     // Number of distinct lines
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	TotalPrice    int64 `json:"total_price"`    // In cents
}

// IsDefault reports whether the line is the plain configuration of its item:
// no variation, no add-ons, no separate-selection tag.
func (l Line) IsDefault() bool {
	return l.SelectedVariation == nil && len(l.SelectedAddOns) == 0 && l.SelectionTag == ""
}

func (l Line) clone() Line {
	out := l
	if l.SelectedVariation != nil {
		v := *l.SelectedVariation
		out.SelectedVariation = &v
	}
	if l.SelectedAddOns != nil {
		out.SelectedAddOns = append([]AddOnSelection(nil), l.SelectedAddOns...)
	}
	return out
}
