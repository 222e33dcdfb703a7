package dto

import "errors"

const (
	DefaultLowStockThreshold = 10
	DefaultHistoryDays       = 30
)

type UpdateInventoryInput struct {
	// Pointer so a missing field can be told apart from an explicit zero.
	// Negative values are allowed at this layer.
	NewQuantity *int `json:"new_quantity"`
}

func (in *UpdateInventoryInput) Validate() error {
	if in.NewQuantity == nil {
		return errors.New("new_quantity is required")
	}
	return nil
}
