package dto

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type CreateSaleInput struct {
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	SaleDate   Date            `json:"sale_date"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func (in *CreateSaleInput) Validate() error {
	if in.ProductID <= 0 {
		return errors.New("product_id must be a positive integer")
	}
	if in.Quantity <= 0 {
		return errors.New("quantity must be a positive integer")
	}
	if in.SaleDate.IsZero() {
		return errors.New("sale_date is required")
	}
	if !in.TotalPrice.IsPositive() {
		return errors.New("total_price must be greater than 0")
	}
	return nil
}

// SalesFilter holds the optional conjunctive predicates of the sales query.
type SalesFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	ProductID *int64
	Category  *string
}

type CompareRevenueInput struct {
	Period1Start Date    `json:"period1_start"`
	Period1End   Date    `json:"period1_end"`
	Period2Start Date    `json:"period2_start"`
	Period2End   Date    `json:"period2_end"`
	Category     *string `json:"category"`
}

func (in *CompareRevenueInput) Validate() error {
	if in.Period1Start.IsZero() || in.Period1End.IsZero() {
		return errors.New("period1_start and period1_end are required")
	}
	if in.Period2Start.IsZero() || in.Period2End.IsZero() {
		return errors.New("period2_start and period2_end are required")
	}
	return nil
}
