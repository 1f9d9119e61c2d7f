package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// StockIn godoc
// @Summary Record a stock-in
// @Description Append a stock-in event and upsert the matching lot
// @Tags Ledger
// @Accept json
// @Produce json
// @Param request body object{category=string,product_code=string,size=string,purchase_price=number,quantity=int} true "Stock-in data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/stock-in [post]
func (h *LedgerHandler) StockInDoc() {}

// StockOut godoc
// @Summary Record a stock-out
// @Description Decrement a lot and append a stock-out event with derived profit
// @Tags Ledger
// @Accept json
// @Produce json
// @Param request body object{lot_id=int,sell_price=number,quantity=int} true "Stock-out data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/stock-out [post]
func (h *LedgerHandler) StockOutDoc() {}

// ReverseStockOut godoc
// @Summary Reverse a stock-out
// @Description Delete a stock-out event and restore its quantity to the lot
// @Tags Ledger
// @Produce json
// @Param id path int true "Stock-out event ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/stock-out/{id} [delete]
func (h *LedgerHandler) ReverseStockOutDoc() {}

// AdjustInventory godoc
// @Summary Write off lot quantity
// @Description Decrement a lot without recording a movement event
// @Tags Ledger
// @Accept json
// @Produce json
// @Param id path int true "Lot ID"
// @Param request body object{quantity=int} true "Quantity to write off"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/lots/{id}/adjust [patch]
func (h *LedgerHandler) AdjustInventoryDoc() {}

// ListInventory godoc
// @Summary List stock on hand
// @Description List lots with quantity > 0, optionally filtered by category
// @Tags Inventory
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/inventory [get]
func (h *LedgerHandler) ListInventoryDoc() {}

// SearchInventory godoc
// @Summary Search stock by product code
// @Tags Inventory
// @Produce json
// @Param code query string true "Product code substring"
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/inventory/search [get]
func (h *LedgerHandler) SearchInventoryDoc() {}

// TotalValue godoc
// @Summary Total on-hand purchase value
// @Tags Inventory
// @Produce json
// @Success 200 {object} object{success=bool,data=object{total_value=number}}
// @Router /api/inventory/value [get]
func (h *LedgerHandler) TotalValueDoc() {}

// GetLot godoc
// @Summary Get one lot by ID
// @Description Returns the lot even when its quantity is zero
// @Tags Inventory
// @Produce json
// @Param id path int true "Lot ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/lots/{id} [get]
func (h *LedgerHandler) GetLotDoc() {}

// PeriodSummary godoc
// @Summary Period financial summary
// @Description Stock-out aggregates bucketed by calendar month or year, newest first
// @Tags Reports
// @Produce json
// @Param granularity query string false "month or year (default month)"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/summary [get]
func (h *LedgerHandler) PeriodSummaryDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *LedgerHandler) HealthCheckDoc() {}
