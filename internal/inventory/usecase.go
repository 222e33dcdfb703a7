package inventory

import (
	"context"

	"github.com/fekuna/ecommerce-inventory-service/internal/inventory/dto"
	"github.com/fekuna/ecommerce-inventory-service/internal/model"
)

type UseCase interface {
	ListInventory(ctx context.Context, lowStockThreshold int) ([]dto.InventoryItem, error)
	UpdateQuantity(ctx context.Context, productID int64, newQuantity int) (*model.Inventory, error)
	History(ctx context.Context, productID int64, days int) ([]model.InventoryHistory, error)
}
