package model

import "github.com/shopspring/decimal"

// Product rows are created by external provisioning; this service only reads
// them for joins and integrity checks.
type Product struct {
	BaseModel
	Name     string          `db:"name" json:"name"`
	Category string          `db:"category" json:"category"`
	Price    decimal.Decimal `db:"price" json:"price"`
}
