package dto

import (
	"time"

	"github.com/fekuna/ecommerce-inventory-service/internal/model"
)

// InventoryItem is the inventory listing projection: one row per inventory
// record joined with its product. LowStock is derived against the
// caller-supplied threshold, never stored.
type InventoryItem struct {
	ProductID       int64     `db:"product_id" json:"product_id"`
	ProductName     string    `db:"product_name" json:"product_name"`
	Category        string    `db:"category" json:"category"`
	CurrentQuantity int       `db:"current_quantity" json:"current_quantity"`
	LastUpdated     time.Time `db:"last_updated" json:"last_updated"`
	LowStock        bool      `db:"-" json:"low_stock"`
}

type HistoryEntry struct {
	OldQuantity int       `json:"old_quantity"`
	NewQuantity int       `json:"new_quantity"`
	ChangeDate  time.Time `json:"change_date"`
}

func NewHistoryEntryList(rows []model.InventoryHistory) []HistoryEntry {
	out := make([]HistoryEntry, len(rows))
	for i, row := range rows {
		out[i] = HistoryEntry{
			OldQuantity: row.OldQuantity,
			NewQuantity: row.NewQuantity,
			ChangeDate:  row.ChangeDate,
		}
	}
	return out
}

type InventoryResponse struct {
	ProductID       int64     `json:"product_id"`
	CurrentQuantity int       `json:"current_quantity"`
	LastUpdated     time.Time `json:"last_updated"`
}

func NewInventoryResponse(inv *model.Inventory) InventoryResponse {
	return InventoryResponse{
		ProductID:       inv.ProductID,
		CurrentQuantity: inv.CurrentQuantity,
		LastUpdated:     inv.LastUpdated,
	}
}
