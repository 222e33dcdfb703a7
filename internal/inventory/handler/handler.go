package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fekuna/ecommerce-inventory-service/internal/apperror"
	"github.com/fekuna/ecommerce-inventory-service/internal/inventory"
	"github.com/fekuna/ecommerce-inventory-service/internal/inventory/dto"
	"github.com/fekuna/ecommerce-inventory-service/pkg/logger"
	"github.com/fekuna/ecommerce-inventory-service/pkg/response"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

// List handles GET /inventory/inventory with an optional low_stock_threshold
// query parameter (default 10).
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	threshold := dto.DefaultLowStockThreshold
	if v := r.URL.Query().Get("low_stock_threshold"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "low_stock_threshold must be an integer")
			return
		}
		threshold = parsed
	}

	items, err := h.uc.ListInventory(r.Context(), threshold)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if items == nil {
		items = []dto.InventoryItem{}
	}

	response.Success(w, items, "Inventory retrieved.")
}

// UpdateQuantity handles PUT /inventory/inventory/{product_id}.
func (h *InventoryHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "product_id must be an integer")
		return
	}

	var input dto.UpdateInventoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if err := input.Validate(); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	inv, err := h.uc.UpdateQuantity(r.Context(), productID, *input.NewQuantity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Success(w, dto.NewInventoryResponse(inv), "Inventory updated.")
}

// History handles GET /inventory/inventory/history/{product_id} with an
// optional days lookback parameter (default 30).
func (h *InventoryHandler) History(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "product_id must be an integer")
		return
	}

	days := dto.DefaultHistoryDays
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "days must be an integer")
			return
		}
		days = parsed
	}

	rows, err := h.uc.History(r.Context(), productID, days)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Success(w, dto.NewHistoryEntryList(rows), "Inventory history retrieved.")
}

func (h *InventoryHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
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
