package inventory

import (
	"context"
	"time"

	"github.com/fekuna/ecommerce-inventory-service/internal/inventory/dto"
	"github.com/fekuna/ecommerce-inventory-service/internal/model"
)

type Repository interface {
	// FindAllWithProduct returns every inventory row joined with its product.
	// The low-stock flag is left for the caller to derive.
	FindAllWithProduct(ctx context.Context) ([]dto.InventoryItem, error)

	// SetQuantityWithHistory sets current_quantity for the product's
	// inventory row and appends the before/after history snapshot, both in
	// one transaction. Returns sql.ErrNoRows when the product has no
	// inventory row.
	SetQuantityWithHistory(ctx context.Context, productID int64, newQuantity int) (*model.Inventory, error)

	// HistoryByProduct returns history rows with change_date >= since,
	// newest first.
	HistoryByProduct(ctx context.Context, productID int64, since time.Time) ([]model.InventoryHistory, error)
}
