package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/restotrack/api/internal/database"
	"github.com/restotrack/api/internal/enum"
	"github.com/restotrack/api/internal/service"
	"github.com/shopspring/decimal"
)

// BillGenerator defines the service method needed to raise bills.
// Satisfied by *service.BillingService; narrow interface for testability.
type BillGenerator interface {
	GenerateBill(ctx context.Context, req service.GenerateBillRequest) (*service.GenerateBillResult, error)
}

// BillingStore defines the database methods needed by billing read handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type BillingStore interface {
	ListBills(ctx context.Context) ([]database.Bill, error)
	ListBillableOrders(ctx context.Context) ([]database.ListBillableOrdersRow, error)
}

// BillingHandler handles billing endpoints.
type BillingHandler struct {
	svc   BillGenerator
	store BillingStore
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(svc BillGenerator, store BillingStore) *BillingHandler {
	return &BillingHandler{svc: svc, store: store}
}

// RegisterRoutes registers billing endpoints. Mounted at /billing.
func (h *BillingHandler) RegisterRoutes(r chi.Router) {
	r.Get("/orders", h.BillableOrders)
	r.Get("/", h.List)
	r.Post("/", h.Generate)
}

// --- Request / Response types ---

type generateBillRequest struct {
	OrderID       int64            `json:"order_id" validate:"required,min=1"`
	TaxRate       *int32           `json:"tax_rate"`
	Discount      *decimal.Decimal `json:"discount"`
	PaymentMethod string           `json:"payment_method" validate:"required"`
	PaymentStatus string           `json:"payment_status" validate:"required"`
}

type billResponse struct {
	ID            int64     `json:"id"`
	OrderID       int64     `json:"order_id"`
	FoodTotal     string    `json:"food_total"`
	Tax           string    `json:"tax"`
	Discount      string    `json:"discount"`
	FinalAmount   string    `json:"final_amount"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

type billableOrderResponse struct {
	ID         int64     `json:"id"`
	TableNo    int32     `json:"table_no"`
	WaiterName string    `json:"waiter_name"`
	FoodItem   string    `json:"food_item"`
	Quantity   int32     `json:"quantity"`
	OrderTime  time.Time `json:"order_time"`
	UnitPrice  string    `json:"unit_price"`
}

func toBillResponse(b database.Bill) billResponse {
	return billResponse{
		ID:            b.ID,
		OrderID:       b.OrderID,
		FoodTotal:     numericToString(b.FoodTotal),
		Tax:           numericToString(b.Tax),
		Discount:      numericToString(b.Discount),
		FinalAmount:   numericToString(b.FinalAmount),
		PaymentMethod: b.PaymentMethod,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
	}
}

// --- Handlers ---

// BillableOrders lists Ready orders with their current unit price.
func (h *BillingHandler) BillableOrders(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ListBillableOrders(r.Context())
	if err != nil {
		writeInternalError(w, "list billable orders", err)
		return
	}

	resp := make([]billableOrderResponse, len(rows))
	for i, row := range rows {
		resp[i] = billableOrderResponse{
			ID:         row.ID,
			TableNo:    row.TableNo,
			WaiterName: row.WaiterName,
			FoodItem:   row.FoodItem,
			Quantity:   row.Quantity,
			OrderTime:  row.OrderTime,
			UnitPrice:  numericToString(row.Price),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// List returns every bill.
func (h *BillingHandler) List(w http.ResponseWriter, r *http.Request) {
	bills, err := h.store.ListBills(r.Context())
	if err != nil {
		writeInternalError(w, "list bills", err)
		return
	}

	resp := make([]billResponse, len(bills))
	for i, b := range bills {
		resp[i] = toBillResponse(b)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Generate bills a Ready order. tax_rate defaults to 10 and discount to 0.
func (h *BillingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateBillRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	taxRate := enum.TaxRateStandard
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	discount := decimal.Zero
	if req.Discount != nil {
		discount = *req.Discount
	}

	result, err := h.svc.GenerateBill(r.Context(), service.GenerateBillRequest{
		OrderID:        req.OrderID,
		TaxRatePercent: taxRate,
		Discount:       discount,
		PaymentMethod:  req.PaymentMethod,
		PaymentStatus:  req.PaymentStatus,
	})
	if err != nil {
		writeServiceError(w, "generate bill", err)
		return
	}
	writeJSON(w, http.StatusCreated, toBillResponse(result.Bill))
}
