package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/stock-ledger/internal/inventory/domain"
	"github.com/tair/stock-ledger/internal/inventory/usecase/command"
	"github.com/tair/stock-ledger/internal/inventory/usecase/query"
	"github.com/tair/stock-ledger/kafka"
	"github.com/tair/stock-ledger/pkg/logger"
)

// LedgerHandler exposes the inventory accounting engine over HTTP using the
// CQRS handlers
type LedgerHandler struct {
	// Command handlers
	stockInHandler  *command.StockInHandler
	stockOutHandler *command.StockOutHandler
	reverseHandler  *command.ReverseStockOutHandler
	adjustHandler   *command.AdjustInventoryHandler

	// Query handlers
	listHandler    *query.ListInventoryHandler
	searchHandler  *query.SearchInventoryHandler
	getLotHandler  *query.GetLotHandler
	listInHandler  *query.ListStockInEventsHandler
	listOutHandler *query.ListStockOutEventsHandler
	totalHandler   *query.TotalValueHandler
	summaryHandler *query.PeriodSummaryHandler

	publisher *kafka.Publisher
}

// NewLedgerHandler creates a new ledger handler. The Kafka publisher is
// optional; a nil publisher disables movement events.
func NewLedgerHandler(repo domain.LedgerRepository, publisher *kafka.Publisher) *LedgerHandler {
	return &LedgerHandler{
		stockInHandler:  command.NewStockInHandler(repo),
		stockOutHandler: command.NewStockOutHandler(repo),
		reverseHandler:  command.NewReverseStockOutHandler(repo),
		adjustHandler:   command.NewAdjustInventoryHandler(repo),
		listHandler:     query.NewListInventoryHandler(repo),
		searchHandler:   query.NewSearchInventoryHandler(repo),
		getLotHandler:   query.NewGetLotHandler(repo),
		listInHandler:   query.NewListStockInEventsHandler(repo),
		listOutHandler:  query.NewListStockOutEventsHandler(repo),
		totalHandler:    query.NewTotalValueHandler(repo),
		summaryHandler:  query.NewPeriodSummaryHandler(repo),
		publisher:       publisher,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// StockIn handles POST /api/stock-in
func (h *LedgerHandler) StockIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category      string  `json:"category"`
		ProductCode   string  `json:"product_code"`
		Size          string  `json:"size"`
		PurchasePrice float64 `json:"purchase_price"`
		Quantity      int     `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	event, err := h.stockInHandler.Handle(command.StockInCommand{
		Category:      req.Category,
		ProductCode:   req.ProductCode,
		Size:          req.Size,
		PurchasePrice: req.PurchasePrice,
		Quantity:      req.Quantity,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Str("product_code", req.ProductCode).Msg("Failed to record stock-in")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.publishMovement(r, kafka.StockMovementEvent{
		EventType:     kafka.EventTypeStockInRecorded,
		RecordID:      event.ID,
		Category:      event.Category,
		ProductCode:   event.ProductCode,
		Size:          event.Size,
		PurchasePrice: event.PurchasePrice,
		Quantity:      event.Quantity,
		Timestamp:     event.CreatedAt,
	})

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Stock-in recorded",
		Data:    event,
	})
}

// StockOut handles POST /api/stock-out
func (h *LedgerHandler) StockOut(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LotID     uint    `json:"lot_id"`
		SellPrice float64 `json:"sell_price"`
		Quantity  int     `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.stockOutHandler.Handle(command.StockOutCommand{
		LotID:     req.LotID,
		SellPrice: req.SellPrice,
		Quantity:  req.Quantity,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Uint("lot_id", req.LotID).Msg("Failed to record stock-out")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	if !result.Success {
		respondJSON(w, http.StatusConflict, Response{
			Success: false,
			Error:   result.Message,
		})
		return
	}

	h.publishMovement(r, kafka.StockMovementEvent{
		EventType:     kafka.EventTypeStockOutRecorded,
		RecordID:      result.Event.ID,
		Category:      result.Event.Category,
		ProductCode:   result.Event.ProductCode,
		Size:          result.Event.Size,
		PurchasePrice: result.Event.PurchasePrice,
		SellPrice:     result.Event.SellPrice,
		Quantity:      result.Event.Quantity,
		Profit:        result.Event.Profit,
		Timestamp:     result.Event.CreatedAt,
	})

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: result.Message,
		Data:    result.Event,
	})
}

// ReverseStockOut handles DELETE /api/stock-out/{id}
func (h *LedgerHandler) ReverseStockOut(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid event ID",
		})
		return
	}

	result, err := h.reverseHandler.Handle(command.ReverseStockOutCommand{EventID: uint(id)})
	if err != nil {
		logger.Logger.Error().Err(err).Uint64("event_id", id).Msg("Failed to reverse stock-out")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	if !result.Success {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   result.Message,
		})
		return
	}

	h.publishMovement(r, kafka.StockMovementEvent{
		EventType:     kafka.EventTypeStockOutReversed,
		RecordID:      result.Event.ID,
		Category:      result.Event.Category,
		ProductCode:   result.Event.ProductCode,
		Size:          result.Event.Size,
		PurchasePrice: result.Event.PurchasePrice,
		SellPrice:     result.Event.SellPrice,
		Quantity:      result.Event.Quantity,
		Profit:        result.Event.Profit,
	})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: result.Message,
		Data:    result.Event,
	})
}

// AdjustInventory handles PATCH /api/lots/{id}/adjust
func (h *LedgerHandler) AdjustInventory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid lot ID",
		})
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := h.adjustHandler.Handle(command.AdjustInventoryCommand{
		LotID:    uint(id),
		Quantity: req.Quantity,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Uint64("lot_id", id).Msg("Failed to adjust inventory")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	if !result.Success {
		respondJSON(w, http.StatusConflict, Response{
			Success: false,
			Error:   result.Message,
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: result.Message,
	})
}

// ListInventory handles GET /api/inventory
func (h *LedgerHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "all" {
		category = ""
	}

	lots, err := h.listHandler.Handle(query.ListInventoryQuery{Category: category})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list inventory")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list inventory",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    lots,
	})
}

// SearchInventory handles GET /api/inventory/search
func (h *LedgerHandler) SearchInventory(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")

	lots, err := h.searchHandler.Handle(query.SearchInventoryQuery{Code: code})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    lots,
	})
}

// TotalValue handles GET /api/inventory/value
func (h *LedgerHandler) TotalValue(w http.ResponseWriter, r *http.Request) {
	total, err := h.totalHandler.Handle()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to compute total value")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to compute total value",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]float64{"total_value": total},
	})
}

// GetLot handles GET /api/lots/{id}
func (h *LedgerHandler) GetLot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid lot ID",
		})
		return
	}

	lot, err := h.getLotHandler.Handle(query.GetLotQuery{ID: uint(id)})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrLotNotFound) {
			status = http.StatusNotFound
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   "Lot not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    lot,
	})
}

// ListStockInEvents handles GET /api/records/stock-in
func (h *LedgerHandler) ListStockInEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.listInHandler.Handle()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list stock-in events")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list stock-in events",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    events,
	})
}

// ListStockOutEvents handles GET /api/records/stock-out
func (h *LedgerHandler) ListStockOutEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.listOutHandler.Handle()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list stock-out events")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list stock-out events",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    events,
	})
}

// periodSummaryItem adds the derived profit rate to a bucket for rendering.
type periodSummaryItem struct {
	domain.PeriodBucket
	ProfitRate float64 `json:"profit_rate"`
}

// PeriodSummary handles GET /api/summary
func (h *LedgerHandler) PeriodSummary(w http.ResponseWriter, r *http.Request) {
	granularity := domain.Granularity(r.URL.Query().Get("granularity"))

	buckets, err := h.summaryHandler.Handle(query.PeriodSummaryQuery{Granularity: granularity})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	items := make([]periodSummaryItem, 0, len(buckets))
	for _, b := range buckets {
		items = append(items, periodSummaryItem{
			PeriodBucket: b,
			ProfitRate:   b.ProfitRate(),
		})
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    items,
	})
}

// RegisterRoutes registers all ledger routes
func (h *LedgerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/inventory", h.ListInventory).Methods("GET")
	router.HandleFunc("/api/inventory/search", h.SearchInventory).Methods("GET")
	router.HandleFunc("/api/inventory/value", h.TotalValue).Methods("GET")
	router.HandleFunc("/api/lots/{id}", h.GetLot).Methods("GET")
	router.HandleFunc("/api/lots/{id}/adjust", h.AdjustInventory).Methods("PATCH")
	router.HandleFunc("/api/stock-in", h.StockIn).Methods("POST")
	router.HandleFunc("/api/stock-out", h.StockOut).Methods("POST")
	router.HandleFunc("/api/stock-out/{id}", h.ReverseStockOut).Methods("DELETE")
	router.HandleFunc("/api/records/stock-in", h.ListStockInEvents).Methods("GET")
	router.HandleFunc("/api/records/stock-out", h.ListStockOutEvents).Methods("GET")
	router.HandleFunc("/api/summary", h.PeriodSummary).Methods("GET")
}

// RegisterHealthCheck registers health check endpoint
func (h *LedgerHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.Ping(); err != nil {
				respondJSON(w, http.StatusServiceUnavailable, Response{
					Success: false,
					Error:   "Database unavailable",
				})
				return
			}
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Ledger service is healthy",
		})
	}).Methods("GET")
}

func (h *LedgerHandler) publishMovement(r *http.Request, event kafka.StockMovementEvent) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishStockMovement(r.Context(), event); err != nil {
		// The mutation is already committed; the event stream lags behind.
		logger.Logger.Error().Err(err).Str("event_type", event.EventType).Msg("Failed to publish movement event")
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
