package repository

import (
	"context"
	"time"

	"github.com/fekuna/ecommerce-inventory-service/internal/inventory/dto"
	"github.com/fekuna/ecommerce-inventory-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAllWithProduct(ctx context.Context) ([]dto.InventoryItem, error) {
	var items []dto.InventoryItem
	err := r.DB.SelectContext(ctx, &items, `
        SELECT i.product_id,
               p.name AS product_name,
               p.category,
               i.current_quantity,
               i.last_updated
        FROM inventory i
        JOIN products p ON p.id = i.product_id AND p.is_deleted = FALSE
        WHERE i.is_deleted = FALSE
        ORDER BY i.product_id
    `)
	return items, err
}

func (r *PGRepository) SetQuantityWithHistory(ctx context.Context, productID int64, newQuantity int) (*model.Inventory, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var inv model.Inventory
	err = tx.GetContext(ctx, &inv, `
        SELECT * FROM inventory WHERE product_id = $1 AND is_deleted = FALSE
    `, productID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	_, err = tx.ExecContext(ctx, `
        INSERT INTO inventory_history (product_id, old_quantity, new_quantity, change_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $4, $4)
    `, productID, inv.CurrentQuantity, newQuantity, now)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
        UPDATE inventory
        SET current_quantity = $1, last_updated = $2, updated_at = $2
        WHERE product_id = $3
    `, newQuantity, now, productID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	inv.CurrentQuantity = newQuantity
	inv.LastUpdated = now
	inv.UpdatedAt = now
	return &inv, nil
}

func (r *PGRepository) HistoryByProduct(ctx context.Context, productID int64, since time.Time) ([]model.InventoryHistory, error) {
	var rows []model.InventoryHistory
	err := r.DB.SelectContext(ctx, &rows, `
        SELECT * FROM inventory_history
        WHERE product_id = $1
          AND change_date >= $2
          AND is_deleted = FALSE
        ORDER BY change_date DESC
    `, productID, since)
	return rows, err
}
