package sales

import (
	"context"

	"github.com/fekuna/ecommerce-inventory-service/internal/model"
	"github.com/fekuna/ecommerce-inventory-service/internal/sales/dto"
)

type UseCase interface {
	RecordSale(ctx context.Context, input *dto.CreateSaleInput) (*model.Sale, error)
	ListSales(ctx context.Context, filter *dto.SalesFilter) ([]model.Sale, error)
	AnalyzeRevenue(ctx context.Context, period dto.Period, category *string) ([]dto.RevenueBucket, error)
	CompareRevenue(ctx context.Context, input *dto.CompareRevenueInput) (*dto.RevenueComparison, error)
}
