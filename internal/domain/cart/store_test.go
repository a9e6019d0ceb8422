package cart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
)

func TestAddItem_MergesIdenticalSelections(t *testing.T) {
	s := NewStore()
	p1 := plainItem("p1", 100)

	_, err := s.AddItem(p1, 1, nil, nil)
	require.NoError(t, err)
	line, err := s.AddItem(p1, 1, nil, nil)
	require.NoError(t, err)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, int64(100), LineUnitPrice(lines[0]))
	assert.Equal(t, int64(200), s.TotalPrice())
	requireValid(t, s)
}

func TestAddItem_VariationIsDistinct(t *testing.T) {
	s := NewStore()
	p2 := plainItem("p2", 50)
	v1 := &catalog.Variation{ID: "v1", Name: "Large", PriceDelta: 20}
	p2.Variations = []catalog.Variation{*v1}

	_, err := s.AddItem(p2, 1, v1, nil)
	require.NoError(t, err)
	_, err = s.AddItem(p2, 1, nil, nil)
	require.NoError(t, err)

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, int64(70), LineUnitPrice(lines[0]))
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, int64(50), LineUnitPrice(lines[1]))
	requireValid(t, s)
}

func TestAddItem_AddOnPricing(t *testing.T) {
	s := NewStore()

	line, err := s.AddItem(plainItem("p3", 30), 1, nil, []AddOnSelection{{AddOn: addOn("a1", 5), Count: 2}})
	require.NoError(t, err)

	assert.Equal(t, int64(40), LineUnitPrice(line))
	assert.Equal(t, int64(40), s.TotalPrice())
}

func TestAddItem_AddOnOrderMerges(t *testing.T) {
	s := NewStore()
	p3 := plainItem("p3", 30)
	a1, a2 := addOn("a1", 5), addOn("a2", 7)

	_, err := s.AddItem(p3, 1, nil, []AddOnSelection{{AddOn: a1, Count: 1}, {AddOn: a2, Count: 1}})
	require.NoError(t, err)
	_, err = s.AddItem(p3, 1, nil, []AddOnSelection{{AddOn: a2, Count: 1}, {AddOn: a1, Count: 1}})
	require.NoError(t, err)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "a1", lines[0].SelectedAddOns[0].AddOn.ID)
	requireValid(t, s)
}

func TestAddItem_TagKeepsSelectionsApart(t *testing.T) {
	s := NewStore()
	p1 := plainItem("p1", 100)

	_, err := s.AddSelection(p1, 1, Selection{Tag: "for mom"})
	require.NoError(t, err)
	_, err = s.AddSelection(p1, 1, Selection{})
	require.NoError(t, err)
	_, err = s.AddSelection(p1, 1, Selection{Tag: "for mom"})
	require.NoError(t, err)

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "for mom", lines[0].SelectionTag)
	assert.Equal(t, 1, lines[1].Quantity)
	requireValid(t, s)
}

func TestAddItem_Preconditions(t *testing.T) {
	unavailable := plainItem("p9", 100)
	unavailable.Available = false

	tests := []struct {
		name     string
		item     *catalog.Item
		quantity int
		addOns   []AddOnSelection
		wantErr  error
	}{
		{"nil item", nil, 1, nil, ErrMissingItem},
		{"unavailable", unavailable, 1, nil, ErrItemUnavailable},
		{"zero quantity", plainItem("p1", 1), 0, nil, ErrInvalidQuantity},
		{"negative quantity", plainItem("p1", 1), -3, nil, ErrInvalidQuantity},
		{"zero add-on count", plainItem("p1", 1), 1, []AddOnSelection{{AddOn: addOn("a1", 5), Count: 0}}, ErrInvalidAddOnCount},
		{"quantity above limit", plainItem("p1", 1), MaxQuantity + 1, nil, ErrQuantityTooLarge},
		{"max int quantity", plainItem("p1", 1), math.MaxInt, nil, ErrQuantityTooLarge},
		{"add-on count above limit", plainItem("p1", 1), 1, []AddOnSelection{{AddOn: addOn("a1", 5), Count: MaxAddOnCount + 1}}, ErrInvalidAddOnCount},
		{"huge add-on count", plainItem("p1", 1), 1, []AddOnSelection{{AddOn: addOn("a1", 5), Count: math.MaxInt / 2}}, ErrInvalidAddOnCount},
		{"folded add-on count above limit", plainItem("p1", 1), 1, []AddOnSelection{
			{AddOn: addOn("a1", 5), Count: MaxAddOnCount},
			{AddOn: addOn("a1", 5), Count: 1},
		}, ErrInvalidAddOnCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			_, err := s.AddItem(tt.item, tt.quantity, nil, tt.addOns)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, s.Lines())
			assert.Zero(t, s.TotalItems())
		})
	}
}

func TestAddItem_RejectionLeavesExistingLinesAlone(t *testing.T) {
	s := NewStore()
	p1 := plainItem("p1", 100)
	_, err := s.AddItem(p1, 2, nil, nil)
	require.NoError(t, err)

	_, err = s.AddItem(p1, 0, nil, nil)
	require.Error(t, err)

	line, ok := s.Line(ResolveKey("p1", nil, nil, ""))
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
}

func TestAddItem_MergeStopsAtQuantityLimit(t *testing.T) {
	s := NewStore()
	p := plainItem("p1", 100)

	_, err := s.AddItem(p, MaxQuantity-1, nil, nil)
	require.NoError(t, err)
	line, err := s.AddItem(p, 1, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, MaxQuantity, line.Quantity)

	_, err = s.AddItem(p, 1, nil, nil)
	assert.ErrorIs(t, err, ErrQuantityTooLarge)

	got, ok := s.Line(line.ID)
	require.True(t, ok)
	assert.Equal(t, MaxQuantity, got.Quantity)
	assert.Equal(t, MaxQuantity, s.TotalItems())
	assert.Equal(t, int64(MaxQuantity)*100, s.TotalPrice())
	requireValid(t, s)
}

func TestUpdateQuantity_ClampsToLimit(t *testing.T) {
	s := NewStore()
	line, err := s.AddItem(plainItem("p1", 100), 2, nil, nil)
	require.NoError(t, err)

	s.UpdateQuantity(line.ID, math.MaxInt)
	got, ok := s.Line(line.ID)
	require.True(t, ok)
	assert.Equal(t, MaxQuantity, got.Quantity)
	requireValid(t, s)
}

func TestUpdateQuantity(t *testing.T) {
	s := NewStore()
	line, err := s.AddItem(plainItem("p1", 100), 2, nil, nil)
	require.NoError(t, err)

	s.UpdateQuantity(line.ID, 5)
	got, ok := s.Line(line.ID)
	require.True(t, ok)
	assert.Equal(t, 5, got.Quantity, "quantity is replaced, not incremented")

	s.UpdateQuantity("missing", 3)
	assert.Len(t, s.Lines(), 1)
	requireValid(t, s)
}

func TestUpdateQuantity_ZeroMatchesRemove(t *testing.T) {
	build := func() (*Store, string) {
		s := NewStore()
		_, err := s.AddItem(plainItem("p1", 100), 1, nil, nil)
		require.NoError(t, err)
		line, err := s.AddItem(plainItem("p2", 50), 4, nil, nil)
		require.NoError(t, err)
		_, err = s.AddItem(plainItem("p3", 30), 1, nil, nil)
		require.NoError(t, err)
		return s, line.ID
	}

	zeroed, id := build()
	zeroed.UpdateQuantity(id, 0)

	removed, id2 := build()
	removed.RemoveItem(id2)

	assert.Equal(t, removed.Lines(), zeroed.Lines())
	assert.Equal(t, removed.Totals(), zeroed.Totals())
	_, ok := zeroed.Line(id)
	assert.False(t, ok)
	assert.Equal(t, []string{"p1", "p3"}, []string{zeroed.Lines()[0].CatalogItemID, zeroed.Lines()[1].CatalogItemID})

	negative, id3 := build()
	negative.UpdateQuantity(id3, -1)
	assert.Equal(t, removed.Lines(), negative.Lines())
	requireValid(t, zeroed)
}

func TestRemoveItem_UnknownIsNoop(t *testing.T) {
	s := NewStore()
	_, err := s.AddItem(plainItem("p1", 100), 1, nil, nil)
	require.NoError(t, err)

	s.RemoveItem("nope")

	assert.Len(t, s.Lines(), 1)
	requireValid(t, s)
}

func TestClear(t *testing.T) {
	s := NewStore()
	_, err := s.AddItem(plainItem("p1", 100), 3, nil, nil)
	require.NoError(t, err)
	_, err = s.AddItem(plainItem("p2", 50), 1, &catalog.Variation{ID: "v1", PriceDelta: 20}, nil)
	require.NoError(t, err)

	s.Clear()

	assert.Empty(t, s.Lines())
	assert.Zero(t, s.TotalItems())
	assert.Zero(t, s.TotalPrice())
	assert.Equal(t, Totals{}, s.Totals())
	requireValid(t, s)

	// The cart is usable after clearing.
	_, err = s.AddItem(plainItem("p1", 100), 1, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, s.TotalItems())
}

func TestLines_ReturnsCopies(t *testing.T) {
	s := NewStore()
	_, err := s.AddItem(plainItem("p1", 100), 1, &catalog.Variation{ID: "v1", PriceDelta: 20}, []AddOnSelection{{AddOn: addOn("a1", 5), Count: 1}})
	require.NoError(t, err)

	lines := s.Lines()
	lines[0].Quantity = 99
	lines[0].SelectedVariation.PriceDelta = 1000
	lines[0].SelectedAddOns[0].Count = 50

	fresh := s.Lines()
	assert.Equal(t, 1, fresh[0].Quantity)
	assert.Equal(t, int64(20), fresh[0].SelectedVariation.PriceDelta)
	assert.Equal(t, 1, fresh[0].SelectedAddOns[0].Count)
}

func TestTotals_InsertionOrderAndSums(t *testing.T) {
	s := NewStore()
	for _, id := range []string{"c", "a", "b"} {
		_, err := s.AddItem(plainItem(id, 10), 2, nil, nil)
		require.NoError(t, err)
	}

	lines := s.Lines()
	assert.Equal(t, []string{"c", "a", "b"}, []string{lines[0].CatalogItemID, lines[1].CatalogItemID, lines[2].CatalogItemID})
	assert.Equal(t, Totals{LineCount: 3, TotalQuantity: 6, TotalPrice: 60}, s.Totals())
}

func TestStore_InvariantsHoldAcrossMixedOperations(t *testing.T) {
	s := NewStore()
	p := plainItem("p", 100)
	v := &catalog.Variation{ID: "v", PriceDelta: 10}
	a := addOn("a", 1)

	ops := []func(){
		func() { _, _ = s.AddItem(p, 1, nil, nil) },
		func() { _, _ = s.AddItem(p, 2, v, nil) },
		func() { _, _ = s.AddItem(p, 1, v, []AddOnSelection{{AddOn: a, Count: 2}}) },
		func() { s.UpdateQuantity(ResolveKey("p", v, nil, ""), 0) },
		func() { _, _ = s.AddItem(p, 0, nil, nil) },
		func() { s.UpdateQuantity(ResolveKey("p", nil, nil, ""), 7) },
		func() { s.RemoveItem("unknown") },
		func() { _, _ = s.AddItem(p, 1, v, []AddOnSelection{{AddOn: a, Count: 1}, {AddOn: a, Count: 1}}) },
	}

	for i, op := range ops {
		op()
		require.NoError(t, s.validate(), "after op %d", i)
	}

	assert.Equal(t, 2, len(s.Lines()))
	assert.Equal(t, 9, s.TotalItems())
}
