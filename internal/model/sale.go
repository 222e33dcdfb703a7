package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is immutable once created; there is no update path.
type Sale struct {
	BaseModel
	ProductID  int64           `db:"product_id" json:"product_id"`
	Quantity   int             `db:"quantity" json:"quantity"`
	SaleDate   time.Time       `db:"sale_date" json:"sale_date"`
	TotalPrice decimal.Decimal `db:"total_price" json:"total_price"`
}
