package cart

import "github.com/your-org/storefront-engine/internal/domain/catalog"

// QuantityInCartForDefault sums the quantity of the plain configuration of an
// item. Customized lines of the same item are deliberately not counted: the
// browsing surface can only step the plain configuration up and down.
func QuantityInCartForDefault(catalogItemID string, lines []Line) int {
	total := 0
	for _, line := range lines {
		if line.CatalogItemID == catalogItemID && line.IsDefault() {
			total += line.Quantity
		}
	}
	return total
}

// SetDefaultQuantity sets the quantity of an item's plain configuration,
// adding the line when it is absent and removing it at zero. An unavailable
// item can only be stepped down.
func SetDefaultQuantity(s *Store, item *catalog.Item, quantity int) error {
	if item == nil {
		return ErrMissingItem
	}
	if quantity > MaxQuantity {
		return ErrQuantityTooLarge
	}

	key := ResolveKey(item.ID, nil, nil, "")
	if line, ok := s.index[key]; ok {
		if !item.Available && quantity > line.Quantity {
			return ErrItemUnavailable
		}
		s.UpdateQuantity(key, quantity)
		return nil
	}
	if quantity <= 0 {
		return nil
	}

	_, err := s.AddItem(item, quantity, nil, nil)
	return err
}
