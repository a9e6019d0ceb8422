package cart

import "github.com/your-org/storefront-engine/internal/domain/catalog"

// Selection is the configuration a shopper builds before adding an item:
// an optional variation, add-ons with per-selection counts, and an optional
// tag that keeps an otherwise identical selection on its own line.
type Selection struct {
	Variation *catalog.Variation
	AddOns    []AddOnSelection
	Tag       string
}

// SetAddOnCount sets how many units of addOn are selected. A count of zero
// or less drops the add-on from the selection.
func (s *Selection) SetAddOnCount(addOn catalog.AddOn, count int) {
	for i := range s.AddOns {
		if s.AddOns[i].AddOn.ID != addOn.ID {
			continue
		}
		if count <= 0 {
			s.AddOns = append(s.AddOns[:i], s.AddOns[i+1:]...)
		} else {
			s.AddOns[i].Count = count
		}
		return
	}
	if count > 0 {
		s.AddOns = append(s.AddOns, AddOnSelection{AddOn: addOn, Count: count})
	}
}

// AddOnCount returns the selected count for an add-on id, zero when absent
func (s *Selection) AddOnCount(addOnID string) int {
	for _, sel := range s.AddOns {
		if sel.AddOn.ID == addOnID {
			return sel.Count
		}
	}
	return 0
}

// IsDefault reports whether nothing has been customized
func (s Selection) IsDefault() bool {
	return s.Variation == nil && len(s.AddOns) == 0 && s.Tag == ""
}
