package model

import "time"

// Inventory holds the stock level for exactly one product (unique FK).
// current_quantity may go negative; no floor is enforced at this layer.
type Inventory struct {
	BaseModel
	ProductID       int64     `db:"product_id" json:"product_id"`
	CurrentQuantity int       `db:"current_quantity" json:"current_quantity"`
	LastUpdated     time.Time `db:"last_updated" json:"last_updated"`
}

// InventoryHistory is a before/after snapshot of one stock mutation.
// change_date is set at creation and never modified.
type InventoryHistory struct {
	BaseModel
	ProductID   int64     `db:"product_id" json:"product_id"`
	OldQuantity int       `db:"old_quantity" json:"old_quantity"`
	NewQuantity int       `db:"new_quantity" json:"new_quantity"`
	ChangeDate  time.Time `db:"change_date" json:"change_date"`
}
