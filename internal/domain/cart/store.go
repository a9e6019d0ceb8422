// internal/domain/cart/store.go
package cart

import (
	"fmt"

	"github.com/your-org/storefront-engine/internal/domain/catalog"
)

// Store owns the ordered lines of one shopper's cart. It is the single source
// of truth for that cart and is not safe for concurrent use; callers share one
// Store per session through the session manager.
type Store struct {
	lines []*Line
	index map[string]*Line
}

// NewStore creates an empty cart
func NewStore() *Store {
	return &Store{
		index: make(map[string]*Line),
	}
}

// AddItem adds quantity units of an item configured with an optional
// variation and add-ons. An identical configuration already in the cart has
// its quantity increased instead of getting a second line.
func (s *Store) AddItem(item *catalog.Item, quantity int, variation *catalog.Variation, addOns []AddOnSelection) (Line, error) {
	return s.AddSelection(item, quantity, Selection{Variation: variation, AddOns: addOns})
}

// AddSelection is AddItem taking a full Selection, including its tag
func (s *Store) AddSelection(item *catalog.Item, quantity int, sel Selection) (Line, error) {
	if item == nil {
		return Line{}, ErrMissingItem
	}
	if !item.Available {
		return Line{}, fmt.Errorf("%w: %s", ErrItemUnavailable, item.Name)
	}
	if quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}
	if quantity > MaxQuantity {
		return Line{}, ErrQuantityTooLarge
	}
	for _, a := range sel.AddOns {
		if a.Count < 1 {
			return Line{}, fmt.Errorf("%w: %s", ErrInvalidAddOnCount, a.AddOn.Name)
		}
	}

	addOns := foldAddOns(sel.AddOns)
	for _, a := range addOns {
		if a.Count > MaxAddOnCount {
			return Line{}, fmt.Errorf("%w: %s", ErrInvalidAddOnCount, a.AddOn.Name)
		}
	}
	key := ResolveKey(item.ID, sel.Variation, addOns, sel.Tag)

	if existing, ok := s.index[key]; ok {
		if existing.Quantity+quantity > MaxQuantity {
			return Line{}, ErrQuantityTooLarge
		}
		existing.Quantity += quantity
		return existing.clone(), nil
	}

	line := &Line{
		ID:             key,
		CatalogItemID:  item.ID,
		Name:           item.Name,
		Quantity:       quantity,
		BasePrice:      EffectivePrice(item),
		SelectedAddOns: addOns,
		SelectionTag:   sel.Tag,
	}
	if sel.Variation != nil {
		v := *sel.Variation
		line.SelectedVariation = &v
	}

	s.lines = append(s.lines, line)
	s.index[key] = line
	return line.clone(), nil
}

// UpdateQuantity sets a line's quantity exactly. Zero or less removes the
// line, anything above MaxQuantity is clamped to it. Unknown line ids are
// ignored.
func (s *Store) UpdateQuantity(lineID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(lineID)
		return
	}
	if quantity > MaxQuantity {
		quantity = MaxQuantity
	}
	if line, ok := s.index[lineID]; ok {
		line.Quantity = quantity
	}
}

// RemoveItem drops a line if present
func (s *Store) RemoveItem(lineID string) {
	if _, ok := s.index[lineID]; !ok {
		return
	}
	delete(s.index, lineID)
	for i, line := range s.lines {
		if line.ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
}

// Clear empties the cart
func (s *Store) Clear() {
	s.lines = nil
	s.index = make(map[string]*Line)
}

// Lines returns a copy of the current lines in insertion order
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	for i, line := range s.lines {
		out[i] = line.clone()
	}
	return out
}

// Line returns a copy of a single line
func (s *Store) Line(lineID string) (Line, bool) {
	line, ok := s.index[lineID]
	if !ok {
		return Line{}, false
	}
	return line.clone(), true
}

// TotalItems is the sum of quantities across all lines
func (s *Store) TotalItems() int {
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of every line's unit price times its quantity, in cents
func (s *Store) TotalPrice() int64 {
	var total int64
	for _, line := range s.lines {
		total += LineSubtotal(*line)
	}
	return total
}

// Totals summarizes the cart
func (s *Store) Totals() Totals {
	return Totals{
		LineCount:     len(s.lines),
		TotalQuantity: s.TotalItems(),
		TotalPrice:    s.TotalPrice(),
	}
}

// validate checks the structural invariants. A failure means the merge or
// update logic is broken.
func (s *Store) validate() error {
	if len(s.lines) != len(s.index) {
		return fmt.Errorf("line list has %d entries but index has %d", len(s.lines), len(s.index))
	}
	for _, line := range s.lines {
		if line.Quantity < 1 || line.Quantity > MaxQuantity {
			return fmt.Errorf("line %s has quantity %d", line.ID, line.Quantity)
		}
		if s.index[line.ID] != line {
			return fmt.Errorf("line %s is not indexed", line.ID)
		}
		want := ResolveKey(line.CatalogItemID, line.SelectedVariation, line.SelectedAddOns, line.SelectionTag)
		if line.ID != want {
			return fmt.Errorf("line %s should be keyed %s", line.ID, want)
		}
		for _, a := range line.SelectedAddOns {
			if a.Count < 1 || a.Count > MaxAddOnCount {
				return fmt.Errorf("line %s add-on %s has count %d", line.ID, a.AddOn.ID, a.Count)
			}
		}
	}
	return nil
}
