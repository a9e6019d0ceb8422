package cart

import "errors"

// Upper bounds keep every quantity and price product far inside int64.
const (
	MaxQuantity   = 999
	MaxAddOnCount = 99
)

// Precondition violations. AddItem returns one of these and leaves the cart untouched.
var (
	ErrMissingItem       = errors.New("catalog item is required")
	ErrItemUnavailable   = errors.New("catalog item is currently unavailable")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrQuantityTooLarge  = errors.New("quantity exceeds the per-line limit")
	ErrInvalidAddOnCount = errors.New("add-on count must be between 1 and 99")
)
