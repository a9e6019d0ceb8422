package catalog

import "strings"

// AllCategories is the category id that disables category filtering
const AllCategories = "all"

// ListFilter narrows the items shown on the browsing surface
type ListFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}

// AddOnGroup is a run of add-ons sharing a category label
type AddOnGroup struct {
	Category string  `json:"category"`
	AddOns   []AddOn `json:"add_ons"`
}

// FilterItems applies the category and search filters. A search matches the
// name or description case-insensitively, and results are de-duplicated by
// name keeping the first occurrence.
func FilterItems(items []Item, filter ListFilter) []Item {
	category := strings.TrimSpace(filter.Category)
	query := strings.ToLower(strings.TrimSpace(filter.Search))

	result := make([]Item, 0, len(items))
	seen := make(map[string]struct{})

	for _, item := range items {
		if category != "" && category != AllCategories && item.Category != category {
			continue
		}
		if query == "" {
			result = append(result, item)
			continue
		}

		if !strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}

		nameKey := strings.ToLower(item.Name)
		if _, dup := seen[nameKey]; dup {
			continue
		}
		seen[nameKey] = struct{}{}
		result = append(result, item)
	}

	return result
}

// GroupAddOns groups an item's add-ons by category, keeping first-seen order
func GroupAddOns(item *Item) []AddOnGroup {
	var groups []AddOnGroup
	index := make(map[string]int)

	for _, addOn := range item.AddOns {
		i, ok := index[addOn.Category]
		if !ok {
			i = len(groups)
			index[addOn.Category] = i
			groups = append(groups, AddOnGroup{Category: addOn.Category})
		}
		groups[i].AddOns = append(groups[i].AddOns, addOn)
	}

	return groups
}
