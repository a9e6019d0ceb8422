package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
)

func TestSelection_SetAddOnCount(t *testing.T) {
	var sel Selection
	assert.True(t, sel.IsDefault())

	a1, a2 := addOn("a1", 5), addOn("a2", 7)
	sel.SetAddOnCount(a1, 1)
	sel.SetAddOnCount(a2, 3)
	sel.SetAddOnCount(a1, 2)

	assert.Equal(t, 2, sel.AddOnCount("a1"))
	assert.Equal(t, 3, sel.AddOnCount("a2"))
	assert.Zero(t, sel.AddOnCount("a3"))
	assert.Len(t, sel.AddOns, 2)
	assert.False(t, sel.IsDefault())

	sel.SetAddOnCount(a1, 0)
	assert.Zero(t, sel.AddOnCount("a1"))
	assert.Len(t, sel.AddOns, 1)

	sel.SetAddOnCount(addOn("a9", 1), -1)
	assert.Len(t, sel.AddOns, 1)
}

func TestSelection_IsDefault(t *testing.T) {
	assert.False(t, Selection{Variation: &catalog.Variation{ID: "v"}}.IsDefault())
	assert.False(t, Selection{Tag: "gift"}.IsDefault())
	assert.True(t, Selection{}.IsDefault())
}
