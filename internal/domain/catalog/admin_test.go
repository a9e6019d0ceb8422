package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildItem(t *testing.T) {
	effective := "89.50"
	req := &UpsertItemRequest{
		Name:           " Iced Latte ",
		BasePrice:      "99",
		EffectivePrice: &effective,
		Available:      true,
		Category:       "coffee",
		Variations: []UpsertVariationRequest{
			{ID: "reg", Name: "Regular"},
			{ID: "lrg", Name: "Large", PriceDelta: "20.00"},
		},
		AddOns: []UpsertAddOnRequest{
			{ID: "shot", Name: "Extra shot", Price: "5", Category: "extras"},
		},
	}

	item, err := BuildItem("latte", req)
	require.NoError(t, err)

	assert.Equal(t, "latte", item.ID)
	assert.Equal(t, "Iced Latte", item.Name)
	assert.Equal(t, int64(9900), item.BasePrice)
	require.NotNil(t, item.EffectivePrice)
	assert.Equal(t, int64(8950), *item.EffectivePrice)

	require.Len(t, item.Variations, 2)
	assert.Equal(t, int64(0), item.Variations[0].PriceDelta)
	assert.Equal(t, int64(2000), item.Variations[1].PriceDelta)
	assert.Equal(t, 1, item.Variations[1].SortOrder)
	assert.Equal(t, "latte", item.Variations[1].ItemID)

	require.Len(t, item.AddOns, 1)
	assert.Equal(t, int64(500), item.AddOns[0].Price)
}

func TestBuildItem_Rejects(t *testing.T) {
	tests := []struct {
		name string
		id   string
		req  UpsertItemRequest
	}{
		{"missing id", "", UpsertItemRequest{Name: "x", BasePrice: "1"}},
		{"blank name", "x", UpsertItemRequest{Name: "  ", BasePrice: "1"}},
		{"negative price", "x", UpsertItemRequest{Name: "x", BasePrice: "-1"}},
		{"fractional cents", "x", UpsertItemRequest{Name: "x", BasePrice: "1.001"}},
		{"duplicate variation", "x", UpsertItemRequest{Name: "x", BasePrice: "1", Variations: []UpsertVariationRequest{{ID: "v"}, {ID: "v"}}}},
		{"duplicate add-on", "x", UpsertItemRequest{Name: "x", BasePrice: "1", AddOns: []UpsertAddOnRequest{{ID: "a", Price: "1"}, {ID: "a", Price: "1"}}}},
		{"bad add-on price", "x", UpsertItemRequest{Name: "x", BasePrice: "1", AddOns: []UpsertAddOnRequest{{ID: "a", Price: "free"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildItem(tt.id, &tt.req)
			assert.ErrorIs(t, err, ErrInvalidItem)
		})
	}
}

func TestSettingsFromRows(t *testing.T) {
	settings := settingsFromRows([]SiteSetting{
		{Key: SettingDeliveryEnabled, Value: "true"},
		{Key: SettingStoreName, Value: ""},
		{Key: "unused", Value: "x"},
	}, "Default Store")

	assert.Equal(t, "Default Store", settings.StoreName)
	assert.True(t, settings.DeliveryEnabled)
	assert.Equal(t, "PHP", settings.Currency)

	settings = settingsFromRows([]SiteSetting{{Key: SettingDeliveryEnabled, Value: "nope"}}, "S")
	assert.False(t, settings.DeliveryEnabled)
}
