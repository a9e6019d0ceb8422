package checkout

import "github.com/your-org/storefront-engine/internal/domain/catalog"

// Payment methods the storefront always offers on top of the stored ones
var builtinPaymentMethods = []catalog.PaymentMethod{
	{ID: "gcash-maya", Name: "Gcash/Maya", Active: true, SortOrder: 1},
	{ID: "bank-transfer", Name: "Bank Transfer", Active: true, SortOrder: 2},
	{ID: "cash", Name: "Cash (Onsite)", Active: true, SortOrder: 999},
}

// EffectivePaymentMethods appends the built-in methods to the stored ones.
// A stored method with a built-in id replaces the built-in.
func EffectivePaymentMethods(stored []catalog.PaymentMethod) []catalog.PaymentMethod {
	methods := make([]catalog.PaymentMethod, 0, len(stored)+len(builtinPaymentMethods))
	seen := make(map[string]struct{}, len(stored))
	for _, m := range stored {
		if !m.Active {
			continue
		}
		methods = append(methods, m)
		seen[m.ID] = struct{}{}
	}
	for _, m := range builtinPaymentMethods {
		if _, ok := seen[m.ID]; !ok {
			methods = append(methods, m)
		}
	}
	return methods
}

// FindPaymentMethod looks a method up by id
func FindPaymentMethod(methods []catalog.PaymentMethod, id string) (catalog.PaymentMethod, bool) {
	for _, m := range methods {
		if m.ID == id {
			return m, true
		}
	}
	return catalog.PaymentMethod{}, false
}
