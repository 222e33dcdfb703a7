package usecase

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/ecommerce-inventory-service/internal/apperror"
	"github.com/fekuna/ecommerce-inventory-service/internal/inventory/dto"
	"github.com/fekuna/ecommerce-inventory-service/internal/model"
	"github.com/fekuna/ecommerce-inventory-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInventoryRepo struct {
	items       []dto.InventoryItem
	findErr     error
	updated     *model.Inventory
	updateErr   error
	history     []model.InventoryHistory
	historyErr  error
	lastSince   time.Time
	lastProduct int64
	lastQty     int
}

func (f *fakeInventoryRepo) FindAllWithProduct(_ context.Context) ([]dto.InventoryItem, error) {
	return f.items, f.findErr
}

func (f *fakeInventoryRepo) SetQuantityWithHistory(_ context.Context, productID int64, newQuantity int) (*model.Inventory, error) {
	f.lastProduct = productID
	f.lastQty = newQuantity
	return f.updated, f.updateErr
}

func (f *fakeInventoryRepo) HistoryByProduct(_ context.Context, productID int64, since time.Time) ([]model.InventoryHistory, error) {
	f.lastProduct = productID
	f.lastSince = since
	return f.history, f.historyErr
}

func TestListInventoryLowStockFlag(t *testing.T) {
	repo := &fakeInventoryRepo{
		items: []dto.InventoryItem{
			{ProductID: 1, ProductName: "Widget", Category: "A", CurrentQuantity: 9},
			{ProductID: 2, ProductName: "Gadget", Category: "B", CurrentQuantity: 10},
			{ProductID: 3, ProductName: "Gizmo", Category: "A", CurrentQuantity: -2},
		},
	}
	uc := NewInventoryUseCase(repo, logger.NewNop())

	items, err := uc.ListInventory(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Strictly-less-than comparison: 9 is low, 10 is not.
	assert.True(t, items[0].LowStock)
	assert.False(t, items[1].LowStock)
	assert.True(t, items[2].LowStock)
}

func TestUpdateQuantity(t *testing.T) {
	now := time.Now().UTC()
	repo := &fakeInventoryRepo{
		updated: &model.Inventory{
			BaseModel:       model.BaseModel{ID: 10},
			ProductID:       1,
			CurrentQuantity: 7,
			LastUpdated:     now,
		},
	}
	uc := NewInventoryUseCase(repo, logger.NewNop())

	inv, err := uc.UpdateQuantity(context.Background(), 1, 7)
	require.NoError(t, err)

	assert.Equal(t, 7, inv.CurrentQuantity)
	assert.Equal(t, int64(1), repo.lastProduct)
	assert.Equal(t, 7, repo.lastQty)
}

func TestUpdateQuantityNotFound(t *testing.T) {
	repo := &fakeInventoryRepo{updateErr: sql.ErrNoRows}
	uc := NewInventoryUseCase(repo, logger.NewNop())

	_, err := uc.UpdateQuantity(context.Background(), 99, 7)
	require.Error(t, err)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
	assert.Equal(t, "Product not found in inventory.", appErr.Message)
}

func TestUpdateQuantityUnexpectedError(t *testing.T) {
	repo := &fakeInventoryRepo{updateErr: errors.New("connection reset")}
	uc := NewInventoryUseCase(repo, logger.NewNop())

	_, err := uc.UpdateQuantity(context.Background(), 1, 7)
	require.Error(t, err)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeInternal, appErr.Code)
}

func TestHistoryWindow(t *testing.T) {
	repo := &fakeInventoryRepo{
		history: []model.InventoryHistory{
			{OldQuantity: 15, NewQuantity: 7},
		},
	}
	uc := NewInventoryUseCase(repo, logger.NewNop())

	before := time.Now().UTC().AddDate(0, 0, -7)
	rows, err := uc.History(context.Background(), 1, 7)
	after := time.Now().UTC().AddDate(0, 0, -7)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), repo.lastProduct)
	assert.False(t, repo.lastSince.Before(before))
	assert.False(t, repo.lastSince.After(after))
}

func TestHistoryDefaultDays(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := NewInventoryUseCase(repo, logger.NewNop())

	_, err := uc.History(context.Background(), 1, 0)
	require.NoError(t, err)

	expected := time.Now().UTC().AddDate(0, 0, -dto.DefaultHistoryDays)
	assert.WithinDuration(t, expected, repo.lastSince, time.Minute)
}
