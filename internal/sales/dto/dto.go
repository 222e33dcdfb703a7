package dto

import (
	"github.com/fekuna/ecommerce-inventory-service/internal/model"
	"github.com/shopspring/decimal"
)

// Period is the time-bucket size used for revenue aggregation.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodAnnual  Period = "annual"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodAnnual:
		return true
	}
	return false
}

// ToCharPattern maps the period to its Postgres to_char bucketing key.
// Weekly uses ISO week numbering (Monday start), so IYYY-IW rather than
// YYYY-WW.
func (p Period) ToCharPattern() string {
	switch p {
	case PeriodDaily:
		return "YYYY-MM-DD"
	case PeriodWeekly:
		return "IYYY-IW"
	case PeriodMonthly:
		return "YYYY-MM"
	case PeriodAnnual:
		return "YYYY"
	}
	return ""
}

type SaleResponse struct {
	ID         int64           `json:"id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int             `json:"quantity"`
	SaleDate   Date            `json:"sale_date"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func NewSaleResponse(s *model.Sale) SaleResponse {
	return SaleResponse{
		ID:         s.ID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		SaleDate:   NewDate(s.SaleDate),
		TotalPrice: s.TotalPrice,
	}
}

func NewSaleResponseList(sales []model.Sale) []SaleResponse {
	out := make([]SaleResponse, len(sales))
	for i := range sales {
		out[i] = NewSaleResponse(&sales[i])
	}
	return out
}

// RevenueBucket is one (period label, total revenue, category-or-absent)
// aggregation row.
type RevenueBucket struct {
	Period       string          `db:"period" json:"period"`
	TotalRevenue decimal.Decimal `db:"total_revenue" json:"total_revenue"`
	Category     *string         `db:"category" json:"category,omitempty"`
}

type RevenueComparison struct {
	Period1Total     decimal.Decimal `json:"period1_total"`
	Period2Total     decimal.Decimal `json:"period2_total"`
	Difference       decimal.Decimal `json:"difference"`
	PercentageChange decimal.Decimal `json:"percentage_change"`
}
