package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/ecommerce-inventory-service/internal/model"
	"github.com/fekuna/ecommerce-inventory-service/internal/sales/dto"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CreateSaleWithStock(ctx context.Context, sale *model.Sale) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	sale.CreatedAt = now
	sale.UpdatedAt = now

	err = tx.QueryRowxContext(ctx, `
        INSERT INTO sales (product_id, quantity, sale_date, total_price, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $5)
        RETURNING id
    `, sale.ProductID, sale.Quantity, sale.SaleDate, sale.TotalPrice, now).Scan(&sale.ID)
	if err != nil {
		return err
	}

	// A product without an inventory row is legal: the sale is still
	// recorded and stock is left untouched.
	var inv model.Inventory
	err = tx.GetContext(ctx, &inv, `
        SELECT * FROM inventory WHERE product_id = $1 AND is_deleted = FALSE
    `, sale.ProductID)
	if errors.Is(err, sql.ErrNoRows) {
		return tx.Commit()
	}
	if err != nil {
		return err
	}

	newQuantity := inv.CurrentQuantity - sale.Quantity

	_, err = tx.ExecContext(ctx, `
        INSERT INTO inventory_history (product_id, old_quantity, new_quantity, change_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $4, $4)
    `, sale.ProductID, inv.CurrentQuantity, newQuantity, now)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
        UPDATE inventory
        SET current_quantity = $1, last_updated = $2, updated_at = $2
        WHERE product_id = $3
    `, newQuantity, now, sale.ProductID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.SalesFilter) ([]model.Sale, error) {
	conditions := []string{"s.is_deleted = FALSE"}
	args := map[string]interface{}{}
	join := ""

	if f.StartDate != nil {
		conditions = append(conditions, "s.sale_date >= :start_date")
		args["start_date"] = *f.StartDate
	}
	if f.EndDate != nil {
		conditions = append(conditions, "s.sale_date <= :end_date")
		args["end_date"] = *f.EndDate
	}
	if f.ProductID != nil {
		conditions = append(conditions, "s.product_id = :product_id")
		args["product_id"] = *f.ProductID
	}
	if f.Category != nil {
		join = " JOIN products p ON p.id = s.product_id AND p.is_deleted = FALSE"
		conditions = append(conditions, "p.category = :category")
		args["category"] = *f.Category
	}

	query := fmt.Sprintf(
		"SELECT s.* FROM sales s%s WHERE %s ORDER BY s.id",
		join, strings.Join(conditions, " AND "),
	)

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	var sales []model.Sale
	err = nstmt.SelectContext(ctx, &sales, args)
	return sales, err
}

func (r *PGRepository) RevenueByPeriod(ctx context.Context, period dto.Period, category *string) ([]dto.RevenueBucket, error) {
	pattern := period.ToCharPattern()
	var buckets []dto.RevenueBucket

	if category != nil {
		err := r.DB.SelectContext(ctx, &buckets, `
            SELECT to_char(s.sale_date, $1) AS period,
                   SUM(s.total_price) AS total_revenue,
                   p.category AS category
            FROM sales s
            JOIN products p ON p.id = s.product_id AND p.is_deleted = FALSE
            WHERE s.is_deleted = FALSE AND p.category = $2
            GROUP BY period, p.category
            ORDER BY period
        `, pattern, *category)
		return buckets, err
	}

	err := r.DB.SelectContext(ctx, &buckets, `
        SELECT to_char(s.sale_date, $1) AS period,
               SUM(s.total_price) AS total_revenue
        FROM sales s
        JOIN products p ON p.id = s.product_id AND p.is_deleted = FALSE
        WHERE s.is_deleted = FALSE
        GROUP BY period
        ORDER BY period
    `, pattern)
	return buckets, err
}

func (r *PGRepository) SumRevenue(ctx context.Context, start, end time.Time, category *string) (decimal.Decimal, error) {
	var total decimal.Decimal

	if category != nil {
		err := r.DB.GetContext(ctx, &total, `
            SELECT COALESCE(SUM(s.total_price), 0)
            FROM sales s
            JOIN products p ON p.id = s.product_id AND p.is_deleted = FALSE
            WHERE s.is_deleted = FALSE
              AND s.sale_date BETWEEN $1 AND $2
              AND p.category = $3
        `, start, end, *category)
		return total, err
	}

	err := r.DB.GetContext(ctx, &total, `
        SELECT COALESCE(SUM(s.total_price), 0)
        FROM sales s
        WHERE s.is_deleted = FALSE
          AND s.sale_date BETWEEN $1 AND $2
    `, start, end)
	return total, err
}
