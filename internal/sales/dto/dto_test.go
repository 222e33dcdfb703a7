package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodValid(t *testing.T) {
	for _, p := range []Period{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodAnnual} {
		assert.True(t, p.Valid(), string(p))
	}
	assert.False(t, Period("hourly").Valid())
	assert.False(t, Period("").Valid())
}

func TestPeriodToCharPattern(t *testing.T) {
	assert.Equal(t, "YYYY-MM-DD", PeriodDaily.ToCharPattern())
	assert.Equal(t, "IYYY-IW", PeriodWeekly.ToCharPattern())
	assert.Equal(t, "YYYY-MM", PeriodMonthly.ToCharPattern())
	assert.Equal(t, "YYYY", PeriodAnnual.ToCharPattern())
}

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("2024-01-10")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-10"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(d.Time))
}

func TestDateRejectsOtherLayouts(t *testing.T) {
	_, err := ParseDate("10-01-2024")
	assert.Error(t, err)

	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"2024/01/10"`), &d))
}

func TestCreateSaleInputValidate(t *testing.T) {
	valid := func() CreateSaleInput {
		d, err := ParseDate("2024-01-10")
		require.NoError(t, err)
		return CreateSaleInput{
			ProductID:  1,
			Quantity:   5,
			SaleDate:   d,
			TotalPrice: decimal.NewFromFloat(50.0),
		}
	}

	in := valid()
	assert.NoError(t, in.Validate())

	in = valid()
	in.ProductID = 0
	assert.EqualError(t, in.Validate(), "product_id must be a positive integer")

	in = valid()
	in.Quantity = -1
	assert.EqualError(t, in.Validate(), "quantity must be a positive integer")

	in = valid()
	in.SaleDate = Date{}
	assert.EqualError(t, in.Validate(), "sale_date is required")

	in = valid()
	in.TotalPrice = decimal.Zero
	assert.EqualError(t, in.Validate(), "total_price must be greater than 0")
}

func TestCompareRevenueInputValidate(t *testing.T) {
	d := func(s string) Date {
		parsed, err := ParseDate(s)
		require.NoError(t, err)
		return parsed
	}

	in := CompareRevenueInput{
		Period1Start: d("2024-01-01"),
		Period1End:   d("2024-01-31"),
		Period2Start: d("2024-02-01"),
		Period2End:   d("2024-02-29"),
	}
	assert.NoError(t, in.Validate())

	in.Period2End = Date{}
	assert.EqualError(t, in.Validate(), "period2_start and period2_end are required")
}
