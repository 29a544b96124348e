package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Inventory errors
	ErrMsgCapacityExceeded     = "material capacity exceeded"
	ErrMsgMaterialNotFound     = "material not found"
	ErrMsgItemNotFound         = "item not found"
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgInvalidQuantity      = "quantity must be positive"

	// Quest errors
	ErrMsgDeliveryUnmet    = "納品に必要なアイテムが不足しています"
	ErrMsgInvalidCondition = "invalid quest condition"

	// Master data errors
	ErrMsgInvalidQuality   = "invalid quality"
	ErrMsgInvalidItem      = "invalid item"
	ErrMsgInvalidCategory  = "invalid item category"
	ErrMsgInvalidEffect    = "invalid effect type"
	ErrMsgInvalidAttribute = "invalid attribute"

	// Economy errors
	ErrMsgNotSellable = "item is not sellable"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrCapacityExceeded     = errors.New(ErrMsgCapacityExceeded)
	ErrMaterialNotFound     = errors.New(ErrMsgMaterialNotFound)
	ErrItemNotFound         = errors.New(ErrMsgItemNotFound)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInvalidQuantity      = errors.New(ErrMsgInvalidQuantity)

	ErrDeliveryUnmet    = errors.New(ErrMsgDeliveryUnmet)
	ErrInvalidCondition = errors.New(ErrMsgInvalidCondition)

	ErrInvalidQuality   = errors.New(ErrMsgInvalidQuality)
	ErrInvalidItem      = errors.New(ErrMsgInvalidItem)
	ErrInvalidCategory  = errors.New(ErrMsgInvalidCategory)
	ErrInvalidEffect    = errors.New(ErrMsgInvalidEffect)
	ErrInvalidAttribute = errors.New(ErrMsgInvalidAttribute)

	ErrNotSellable = errors.New(ErrMsgNotSellable)
)

// DeliveryError reports a failed delivery together with the per-condition shortfall
type DeliveryError struct {
	MissingItems []MissingItem
}

func (e *DeliveryError) Error() string {
	return ErrMsgDeliveryUnmet
}

// Unwrap lets errors.Is(err, ErrDeliveryUnmet) succeed
func (e *DeliveryError) Unwrap() error {
	return ErrDeliveryUnmet
}
