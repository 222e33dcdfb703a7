package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fekuna/ecommerce-inventory-service/internal/apperror"
	"github.com/fekuna/ecommerce-inventory-service/internal/model"
	"github.com/fekuna/ecommerce-inventory-service/internal/sales"
	"github.com/fekuna/ecommerce-inventory-service/internal/sales/dto"
	"github.com/fekuna/ecommerce-inventory-service/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSalesUseCase struct {
	sale       *model.Sale
	recordErr  error
	sales      []model.Sale
	listErr    error
	buckets    []dto.RevenueBucket
	analyzeErr error
	comparison *dto.RevenueComparison
	compareErr error

	lastPeriod   dto.Period
	lastCategory *string
	lastFilter   *dto.SalesFilter
}

func (f *fakeSalesUseCase) RecordSale(_ context.Context, input *dto.CreateSaleInput) (*model.Sale, error) {
	if err := input.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	return f.sale, f.recordErr
}

func (f *fakeSalesUseCase) ListSales(_ context.Context, filter *dto.SalesFilter) ([]model.Sale, error) {
	f.lastFilter = filter
	return f.sales, f.listErr
}

func (f *fakeSalesUseCase) AnalyzeRevenue(_ context.Context, period dto.Period, category *string) ([]dto.RevenueBucket, error) {
	f.lastPeriod = period
	f.lastCategory = category
	return f.buckets, f.analyzeErr
}

func (f *fakeSalesUseCase) CompareRevenue(_ context.Context, _ *dto.CompareRevenueInput) (*dto.RevenueComparison, error) {
	return f.comparison, f.compareErr
}

type envelope struct {
	Status  bool            `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func newTestRouter(uc sales.UseCase) *chi.Mux {
	h := NewSalesHandler(uc, logger.NewNop())
	r := chi.NewRouter()
	r.Post("/inventory/sales", h.CreateSale)
	r.Get("/inventory/sales", h.ListSales)
	r.Get("/inventory/revenue/{period}", h.AnalyzeRevenue)
	r.Post("/inventory/revenue/comparison", h.CompareRevenue)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestCreateSale(t *testing.T) {
	uc := &fakeSalesUseCase{
		sale: &model.Sale{
			BaseModel:  model.BaseModel{ID: 1},
			ProductID:  1,
			Quantity:   5,
			SaleDate:   mustTime(t, "2024-01-10"),
			TotalPrice: decimal.NewFromFloat(50.0),
		},
	}
	router := newTestRouter(uc)

	rec, env := doRequest(t, router, http.MethodPost, "/inventory/sales",
		`{"product_id":1,"quantity":5,"sale_date":"2024-01-10","total_price":50.0}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Status)

	var resp dto.SaleResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2024-01-10", resp.SaleDate.String())
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dto.ParseDate(s)
	require.NoError(t, err)
	return d.Time
}

func TestCreateSaleMalformedBody(t *testing.T) {
	router := newTestRouter(&fakeSalesUseCase{})

	rec, env := doRequest(t, router, http.MethodPost, "/inventory/sales", `{"product_id":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Status)
}

func TestCreateSaleValidationMessage(t *testing.T) {
	router := newTestRouter(&fakeSalesUseCase{})

	rec, env := doRequest(t, router, http.MethodPost, "/inventory/sales",
		`{"product_id":1,"quantity":5,"sale_date":"2024-01-10","total_price":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Status)
	assert.Equal(t, "total_price must be greater than 0", env.Message)
}

func TestCreateSaleIntegrityError(t *testing.T) {
	uc := &fakeSalesUseCase{recordErr: apperror.Integrity(nil)}
	router := newTestRouter(uc)

	rec, env := doRequest(t, router, http.MethodPost, "/inventory/sales",
		`{"product_id":999,"quantity":5,"sale_date":"2024-01-10","total_price":50.0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Database integrity error occurred.", env.Message)
}

func TestListSalesParsesFilters(t *testing.T) {
	uc := &fakeSalesUseCase{}
	router := newTestRouter(uc)

	rec, env := doRequest(t, router, http.MethodGet,
		"/inventory/sales?start_date=2024-01-01&end_date=2024-01-31&product_id=7&category=A", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Status)

	require.NotNil(t, uc.lastFilter)
	require.NotNil(t, uc.lastFilter.StartDate)
	assert.Equal(t, "2024-01-01", uc.lastFilter.StartDate.Format(dto.DateLayout))
	require.NotNil(t, uc.lastFilter.EndDate)
	assert.Equal(t, "2024-01-31", uc.lastFilter.EndDate.Format(dto.DateLayout))
	require.NotNil(t, uc.lastFilter.ProductID)
	assert.Equal(t, int64(7), *uc.lastFilter.ProductID)
	require.NotNil(t, uc.lastFilter.Category)
	assert.Equal(t, "A", *uc.lastFilter.Category)
}

func TestListSalesBadDate(t *testing.T) {
	router := newTestRouter(&fakeSalesUseCase{})

	rec, env := doRequest(t, router, http.MethodGet, "/inventory/sales?start_date=01-01-2024", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Status)
}

func TestAnalyzeRevenue(t *testing.T) {
	uc := &fakeSalesUseCase{
		buckets: []dto.RevenueBucket{
			{Period: "2024-01", TotalRevenue: decimal.NewFromInt(150)},
		},
	}
	router := newTestRouter(uc)

	rec, env := doRequest(t, router, http.MethodGet, "/inventory/revenue/monthly?category=A", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Status)
	assert.Equal(t, dto.PeriodMonthly, uc.lastPeriod)
	require.NotNil(t, uc.lastCategory)
	assert.Equal(t, "A", *uc.lastCategory)
}

func TestAnalyzeRevenueInvalidPeriod(t *testing.T) {
	router := newTestRouter(&fakeSalesUseCase{})

	rec, env := doRequest(t, router, http.MethodGet, "/inventory/revenue/hourly", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Status)
	assert.Equal(t, "Invalid period specified.", env.Message)
}

func TestCompareRevenue(t *testing.T) {
	uc := &fakeSalesUseCase{
		comparison: &dto.RevenueComparison{
			Period1Total:     decimal.NewFromInt(100),
			Period2Total:     decimal.NewFromInt(150),
			Difference:       decimal.NewFromInt(50),
			PercentageChange: decimal.NewFromInt(50),
		},
	}
	router := newTestRouter(uc)

	rec, env := doRequest(t, router, http.MethodPost, "/inventory/revenue/comparison",
		`{"period1_start":"2024-01-01","period1_end":"2024-01-31","period2_start":"2024-02-01","period2_end":"2024-02-29"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Status)

	var result dto.RevenueComparison
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, result.Difference.Equal(decimal.NewFromInt(50)))
}
