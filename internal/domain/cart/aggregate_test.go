package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
)

func TestQuantityInCartForDefault(t *testing.T) {
	s := NewStore()
	p := plainItem("p", 100)
	other := plainItem("q", 100)

	_, err := s.AddItem(p, 3, nil, nil)
	require.NoError(t, err)
	_, err = s.AddItem(p, 2, &catalog.Variation{ID: "v", PriceDelta: 10}, nil)
	require.NoError(t, err)
	_, err = s.AddItem(p, 4, nil, []AddOnSelection{{AddOn: addOn("a", 5), Count: 1}})
	require.NoError(t, err)
	_, err = s.AddSelection(p, 5, Selection{Tag: "separate"})
	require.NoError(t, err)
	_, err = s.AddItem(other, 6, nil, nil)
	require.NoError(t, err)

	lines := s.Lines()
	assert.Equal(t, 3, QuantityInCartForDefault("p", lines))
	assert.Equal(t, 6, QuantityInCartForDefault("q", lines))
	assert.Zero(t, QuantityInCartForDefault("missing", lines))
	assert.Zero(t, QuantityInCartForDefault("p", nil))
}

func TestSetDefaultQuantity(t *testing.T) {
	s := NewStore()
	p := plainItem("p", 100)

	require.NoError(t, SetDefaultQuantity(s, p, 0))
	assert.Empty(t, s.Lines(), "zero on an absent line adds nothing")

	require.NoError(t, SetDefaultQuantity(s, p, 2))
	assert.Equal(t, 2, QuantityInCartForDefault("p", s.Lines()))

	require.NoError(t, SetDefaultQuantity(s, p, 5))
	assert.Equal(t, 5, QuantityInCartForDefault("p", s.Lines()))
	assert.Len(t, s.Lines(), 1)

	require.NoError(t, SetDefaultQuantity(s, p, 0))
	assert.Empty(t, s.Lines())
	requireValid(t, s)
}

func TestSetDefaultQuantity_LeavesCustomizedLinesAlone(t *testing.T) {
	s := NewStore()
	p := plainItem("p", 100)
	custom, err := s.AddItem(p, 2, &catalog.Variation{ID: "v", PriceDelta: 10}, nil)
	require.NoError(t, err)

	require.NoError(t, SetDefaultQuantity(s, p, 1))
	require.NoError(t, SetDefaultQuantity(s, p, 0))

	line, ok := s.Line(custom.ID)
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
	assert.Len(t, s.Lines(), 1)
}

func TestSetDefaultQuantity_Errors(t *testing.T) {
	s := NewStore()
	assert.ErrorIs(t, SetDefaultQuantity(s, nil, 1), ErrMissingItem)

	soldOut := plainItem("p", 100)
	soldOut.Available = false
	assert.ErrorIs(t, SetDefaultQuantity(s, soldOut, 1), ErrItemUnavailable)
	assert.Empty(t, s.Lines())
}

func TestSetDefaultQuantity_UnavailableOnlySteppedDown(t *testing.T) {
	s := NewStore()
	p := plainItem("p", 100)
	require.NoError(t, SetDefaultQuantity(s, p, 3))

	p.Available = false
	assert.ErrorIs(t, SetDefaultQuantity(s, p, 4), ErrItemUnavailable)
	assert.Equal(t, 3, QuantityInCartForDefault("p", s.Lines()))

	require.NoError(t, SetDefaultQuantity(s, p, 3))
	require.NoError(t, SetDefaultQuantity(s, p, 1))
	assert.Equal(t, 1, QuantityInCartForDefault("p", s.Lines()))

	require.NoError(t, SetDefaultQuantity(s, p, 0))
	assert.Empty(t, s.Lines())
}

func TestSetDefaultQuantity_RejectsAboveLimit(t *testing.T) {
	s := NewStore()
	p := plainItem("p", 100)
	require.NoError(t, SetDefaultQuantity(s, p, 2))

	assert.ErrorIs(t, SetDefaultQuantity(s, p, MaxQuantity+1), ErrQuantityTooLarge)
	assert.Equal(t, 2, QuantityInCartForDefault("p", s.Lines()))

	require.NoError(t, SetDefaultQuantity(s, p, MaxQuantity))
	assert.Equal(t, MaxQuantity, QuantityInCartForDefault("p", s.Lines()))
}
