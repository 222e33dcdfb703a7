package usecase

import (
	"context"

	"github.com/fekuna/ecommerce-inventory-service/internal/apperror"
	"github.com/fekuna/ecommerce-inventory-service/internal/model"
	"github.com/fekuna/ecommerce-inventory-service/internal/sales"
	"github.com/fekuna/ecommerce-inventory-service/internal/sales/dto"
	"github.com/fekuna/ecommerce-inventory-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type salesUseCase struct {
	repo   sales.Repository
	logger logger.ZapLogger
}

func NewSalesUseCase(repo sales.Repository, log logger.ZapLogger) sales.UseCase {
	return &salesUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *salesUseCase) RecordSale(ctx context.Context, input *dto.CreateSaleInput) (*model.Sale, error) {
	if err := input.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	sale := &model.Sale{
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
		SaleDate:   input.SaleDate.Time,
		TotalPrice: input.TotalPrice,
	}

	if err := uc.repo.CreateSaleWithStock(ctx, sale); err != nil {
		return nil, apperror.FromDB(err)
	}

	uc.logger.Info("sale recorded",
		zap.Int64("sale_id", sale.ID),
		zap.Int64("product_id", sale.ProductID),
		zap.Int("quantity", sale.Quantity),
	)
	return sale, nil
}

func (uc *salesUseCase) ListSales(ctx context.Context, filter *dto.SalesFilter) ([]model.Sale, error) {
	result, err := uc.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, apperror.FromDB(err)
	}
	return result, nil
}

func (uc *salesUseCase) AnalyzeRevenue(ctx context.Context, period dto.Period, category *string) ([]dto.RevenueBucket, error) {
	// Period is validated at the API boundary; there is no fallback here.
	buckets, err := uc.repo.RevenueByPeriod(ctx, period, category)
	if err != nil {
		return nil, apperror.FromDB(err)
	}
	return buckets, nil
}

func (uc *salesUseCase) CompareRevenue(ctx context.Context, input *dto.CompareRevenueInput) (*dto.RevenueComparison, error) {
	if err := input.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	p1Total, err := uc.repo.SumRevenue(ctx, input.Period1Start.Time, input.Period1End.Time, input.Category)
	if err != nil {
		return nil, apperror.FromDB(err)
	}

	p2Total, err := uc.repo.SumRevenue(ctx, input.Period2Start.Time, input.Period2End.Time, input.Category)
	if err != nil {
		return nil, apperror.FromDB(err)
	}

	return &dto.RevenueComparison{
		Period1Total:     p1Total,
		Period2Total:     p2Total,
		Difference:       p2Total.Sub(p1Total),
		PercentageChange: percentageChange(p1Total, p2Total),
	}, nil
}

// percentageChange is relative to the first total; a zero base yields 0
// rather than a division error.
func percentageChange(p1, p2 decimal.Decimal) decimal.Decimal {
	if p1.IsZero() {
		return decimal.Zero
	}
	return p2.Sub(p1).Div(p1).Mul(decimal.NewFromInt(100))
}
