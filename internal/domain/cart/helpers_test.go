package cart

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
)

func plainItem(id string, price int64) *catalog.Item {
	return &catalog.Item{ID: id, Name: "Item " + id, BasePrice: price, Available: true}
}

func addOn(id string, price int64) catalog.AddOn {
	return catalog.AddOn{ID: id, Name: "Add-on " + id, Price: price, Category: "extras"}
}

func requireValid(t *testing.T, s *Store) {
	t.Helper()
	require.NoError(t, s.validate())
}
