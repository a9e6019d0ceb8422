package cart

import "github.com/your-org/storefront-engine/internal/domain/catalog"

// EffectivePrice is the discounted price when one is set, otherwise the base price
func EffectivePrice(item *catalog.Item) int64 {
	if item.EffectivePrice != nil {
		return *item.EffectivePrice
	}
	return item.BasePrice
}

// UnitPrice prices one unit of a selection against the current catalog item
func UnitPrice(item *catalog.Item, variation *catalog.Variation, addOns []AddOnSelection) int64 {
	return composePrice(EffectivePrice(item), variation, addOns)
}

// LineUnitPrice prices one unit of a line from its snapshot
func LineUnitPrice(line Line) int64 {
	return composePrice(line.BasePrice, line.SelectedVariation, line.SelectedAddOns)
}

// LineSubtotal is the unit price times the line quantity
func LineSubtotal(line Line) int64 {
	return LineUnitPrice(line) * int64(line.Quantity)
}

// composePrice adds the variation delta and every add-on unit to base.
func composePrice(base int64, variation *catalog.Variation, addOns []AddOnSelection) int64 {
	price := base
	if variation != nil {
		price += variation.PriceDelta
	}
	for _, sel := range addOns {
		price += sel.AddOn.Price * int64(sel.Count)
	}
	return price
}
