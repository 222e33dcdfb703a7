package sales

import (
	"context"
	"time"

	"github.com/fekuna/ecommerce-inventory-service/internal/model"
	"github.com/fekuna/ecommerce-inventory-service/internal/sales/dto"
	"github.com/shopspring/decimal"
)

type Repository interface {
	// CreateSaleWithStock inserts the sale and, when an inventory row exists
	// for the product, decrements it and appends a history snapshot. All of
	// it runs in one transaction; generated fields are written back to sale.
	CreateSaleWithStock(ctx context.Context, sale *model.Sale) error

	FindAll(ctx context.Context, filter *dto.SalesFilter) ([]model.Sale, error)

	RevenueByPeriod(ctx context.Context, period dto.Period, category *string) ([]dto.RevenueBucket, error)

	// SumRevenue totals sales with sale_date in [start, end], zero when no
	// rows match.
	SumRevenue(ctx context.Context, start, end time.Time, category *string) (decimal.Decimal, error)
}
