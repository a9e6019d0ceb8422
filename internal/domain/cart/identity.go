package cart

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/your-org/storefront-engine/internal/domain/catalog"
)

// noVariation stands in for an absent variation. QueryEscape always encodes
// '!' so no escaped variation id can produce it.
const noVariation = "v!"

// ResolveKey computes the line identity for a selection. It depends only on
// the item id, the variation id, the multiset of (add-on id, count) and the
// optional tag, so the same selection always lands on the same line no matter
// the order its add-ons were picked in.
func ResolveKey(catalogItemID string, variation *catalog.Variation, addOns []AddOnSelection, tag string) string {
	var b strings.Builder
	b.WriteString(url.QueryEscape(catalogItemID))

	b.WriteByte('|')
	if variation == nil {
		b.WriteString(noVariation)
	} else {
		b.WriteString("v=")
		b.WriteString(url.QueryEscape(variation.ID))
	}

	b.WriteString("|a=")
	for i, sel := range foldAddOns(addOns) {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(url.QueryEscape(sel.AddOn.ID))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(sel.Count))
	}

	if tag != "" {
		b.WriteString("|t=")
		b.WriteString(url.QueryEscape(tag))
	}

	return b.String()
}

// foldAddOns returns a copy sorted by add-on id with repeated ids merged
// into one entry whose count is the sum.
func foldAddOns(addOns []AddOnSelection) []AddOnSelection {
	if len(addOns) == 0 {
		return nil
	}

	folded := make([]AddOnSelection, 0, len(addOns))
	index := make(map[string]int, len(addOns))
	for _, sel := range addOns {
		if i, ok := index[sel.AddOn.ID]; ok {
			folded[i].Count += sel.Count
			continue
		}
		index[sel.AddOn.ID] = len(folded)
		folded = append(folded, sel)
	}

	sort.Slice(folded, func(i, j int) bool {
		return folded[i].AddOn.ID < folded[j].AddOn.ID
	})
	return folded
}
