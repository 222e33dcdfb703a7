package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fekuna/ecommerce-inventory-service/internal/apperror"
	"github.com/fekuna/ecommerce-inventory-service/internal/sales"
	"github.com/fekuna/ecommerce-inventory-service/internal/sales/dto"
	"github.com/fekuna/ecommerce-inventory-service/pkg/logger"
	"github.com/fekuna/ecommerce-inventory-service/pkg/response"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SalesHandler struct {
	uc     sales.UseCase
	logger logger.ZapLogger
}

func NewSalesHandler(uc sales.UseCase, log logger.ZapLogger) *SalesHandler {
	return &SalesHandler{
		uc:     uc,
		logger: log,
	}
}

// CreateSale handles POST /inventory/sales.
func (h *SalesHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateSaleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	sale, err := h.uc.RecordSale(r.Context(), &input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Created(w, dto.NewSaleResponse(sale), "Sale recorded.")
}

// ListSales handles GET /inventory/sales with optional start_date, end_date,
// product_id and category filters.
func (h *SalesHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	filter, err := parseSalesFilter(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result, err := h.uc.ListSales(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Success(w, dto.NewSaleResponseList(result), "Sales retrieved.")
}

// AnalyzeRevenue handles GET /inventory/revenue/{period}. The period segment
// is validated here; the usecase has no fallback for unknown values.
func (h *SalesHandler) AnalyzeRevenue(w http.ResponseWriter, r *http.Request) {
	period := dto.Period(chi.URLParam(r, "period"))
	if !period.Valid() {
		response.BadRequest(w, "Invalid period specified.")
		return
	}

	var category *string
	if c := r.URL.Query().Get("category"); c != "" {
		category = &c
	}

	buckets, err := h.uc.AnalyzeRevenue(r.Context(), period, category)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if buckets == nil {
		buckets = []dto.RevenueBucket{}
	}

	response.Success(w, buckets, "Revenue analysis retrieved.")
}

// CompareRevenue handles POST /inventory/revenue/comparison.
func (h *SalesHandler) CompareRevenue(w http.ResponseWriter, r *http.Request) {
	var input dto.CompareRevenueInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result, err := h.uc.CompareRevenue(r.Context(), &input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Success(w, result, "Revenue comparison retrieved.")
}

func parseSalesFilter(r *http.Request) (*dto.SalesFilter, error) {
	q := r.URL.Query()
	filter := &dto.SalesFilter{}

	if v := q.Get("start_date"); v != "" {
		d, err := dto.ParseDate(v)
		if err != nil {
			return nil, err
		}
		t := d.Time
		filter.StartDate = &t
	}
	if v := q.Get("end_date"); v != "" {
		d, err := dto.ParseDate(v)
		if err != nil {
			return nil, err
		}
		t := d.Time
		filter.EndDate = &t
	}
	if v := q.Get("product_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		filter.ProductID = &id
	}
	if v := q.Get("category"); v != "" {
		filter.Category = &v
	}

	return filter, nil
}

func (h *SalesHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := apperror.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("unexpected error",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	} else {
		h.logger.Warn("request rejected",
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	response.Error(w, status, msg)
}
