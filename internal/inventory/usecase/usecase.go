package usecase

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fekuna/ecommerce-inventory-service/internal/apperror"
	"github.com/fekuna/ecommerce-inventory-service/internal/inventory"
	"github.com/fekuna/ecommerce-inventory-service/internal/inventory/dto"
	"github.com/fekuna/ecommerce-inventory-service/internal/model"
	"github.com/fekuna/ecommerce-inventory-service/pkg/logger"
	"go.uber.org/zap"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *inventoryUseCase) ListInventory(ctx context.Context, lowStockThreshold int) ([]dto.InventoryItem, error) {
	items, err := uc.repo.FindAllWithProduct(ctx)
	if err != nil {
		return nil, apperror.FromDB(err)
	}

	for i := range items {
		items[i].LowStock = items[i].CurrentQuantity < lowStockThreshold
	}
	return items, nil
}

func (uc *inventoryUseCase) UpdateQuantity(ctx context.Context, productID int64, newQuantity int) (*model.Inventory, error) {
	inv, err := uc.repo.SetQuantityWithHistory(ctx, productID, newQuantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("Product not found in inventory.")
		}
		return nil, apperror.FromDB(err)
	}

	uc.logger.Info("inventory updated",
		zap.Int64("product_id", productID),
		zap.Int("new_quantity", newQuantity),
	)
	return inv, nil
}

func (uc *inventoryUseCase) History(ctx context.Context, productID int64, days int) ([]model.InventoryHistory, error) {
	if days <= 0 {
		days = dto.DefaultHistoryDays
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	rows, err := uc.repo.HistoryByProduct(ctx, productID, since)
	if err != nil {
		return nil, apperror.FromDB(err)
	}
	return rows, nil
}
