package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/restotrack/api/internal/database"
	"github.com/restotrack/api/internal/enum"
	"github.com/restotrack/api/internal/service"
)

// OrderServicer defines the service methods needed by order handlers.
// Satisfied by *service.OrderService; narrow interface for testability.
type OrderServicer interface {
	CreateOrder(ctx context.Context, req service.CreateOrderRequest) (database.Order, error)
	AdvanceStatus(ctx context.Context, orderID int64, target string) (database.Order, error)
	ListActiveOrders(ctx context.Context) ([]database.Order, error)
}

// OrderStore defines the database methods needed by order read handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type OrderStore interface {
	GetOrder(ctx context.Context, id int64) (database.Order, error)
	ListOrders(ctx context.Context) ([]database.Order, error)
	ListBillsByOrder(ctx context.Context, orderID int64) ([]database.Bill, error)
	ListAvailableMenuItems(ctx context.Context) ([]database.MenuItem, error)
	ListStaffByRole(ctx context.Context, role string) ([]database.Staff, error)
}

// OrderHandler handles order endpoints.
type OrderHandler struct {
	svc   OrderServicer
	store OrderStore
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(svc OrderServicer, store OrderStore) *OrderHandler {
	return &OrderHandler{svc: svc, store: store}
}

// RegisterRoutes registers order endpoints. Mounted at /orders.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/options", h.Options)
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}/status", h.UpdateStatus)
}

// RegisterKitchenRoutes registers the kitchen display endpoints. Mounted at /kitchen.
func (h *OrderHandler) RegisterKitchenRoutes(r chi.Router) {
	r.Get("/orders", h.Kitchen)
}

// --- Request / Response types ---

type createOrderRequest struct {
	TableNo    int32  `json:"table_no"`
	WaiterName string `json:"waiter_name"`
	FoodItem   string `json:"food_item"`
	Quantity   int32  `json:"quantity"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type orderResponse struct {
	ID         int64     `json:"id"`
	TableNo    int32     `json:"table_no"`
	WaiterName string    `json:"waiter_name"`
	FoodItem   string    `json:"food_item"`
	Quantity   int32     `json:"quantity"`
	OrderTime  time.Time `json:"order_time"`
	Status     string    `json:"status"`
}

type orderDetailResponse struct {
	orderResponse
	Bills []billResponse `json:"bills"`
}

type orderOptionsResponse struct {
	FoodItems []string `json:"food_items"`
	Waiters   []string `json:"waiters"`
}

func toOrderResponse(o database.Order) orderResponse {
	return orderResponse{
		ID:         o.ID,
		TableNo:    o.TableNo,
		WaiterName: o.WaiterName,
		FoodItem:   o.FoodItem,
		Quantity:   o.Quantity,
		OrderTime:  o.OrderTime,
		Status:     string(o.Status),
	}
}

func toOrderResponses(orders []database.Order) []orderResponse {
	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toOrderResponse(o)
	}
	return resp
}

// --- Handlers ---

// Options returns what the order form can offer: available food names and
// waiter names, each replaced by a single placeholder when empty.
func (h *OrderHandler) Options(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListAvailableMenuItems(r.Context())
	if err != nil {
		writeInternalError(w, "list available menu items", err)
		return
	}
	waiters, err := h.store.ListStaffByRole(r.Context(), enum.StaffRoleWaiter)
	if err != nil {
		writeInternalError(w, "list waiters", err)
		return
	}

	resp := orderOptionsResponse{
		FoodItems: []string{enum.PlaceholderNoItems},
		Waiters:   []string{enum.PlaceholderNoWaiters},
	}
	if len(items) > 0 {
		resp.FoodItems = make([]string, len(items))
		for i, m := range items {
			resp.FoodItems[i] = m.FoodName
		}
	}
	if len(waiters) > 0 {
		resp.Waiters = make([]string, len(waiters))
		for i, s := range waiters {
			resp.Waiters[i] = s.Name
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create places a new Pending order.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.svc.CreateOrder(r.Context(), service.CreateOrderRequest{
		TableNo:    req.TableNo,
		WaiterName: req.WaiterName,
		FoodItem:   req.FoodItem,
		Quantity:   req.Quantity,
	})
	if err != nil {
		writeServiceError(w, "create order", err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

// List returns every order in the order it was placed.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.ListOrders(r.Context())
	if err != nil {
		writeInternalError(w, "list orders", err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponses(orders))
}

// Get returns one order with the bills raised against it.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseOrderID(w, r)
	if !ok {
		return
	}

	order, err := h.store.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeErrorMessage(w, http.StatusNotFound, "order not found")
			return
		}
		writeInternalError(w, "get order", err)
		return
	}

	bills, err := h.store.ListBillsByOrder(r.Context(), id)
	if err != nil {
		writeInternalError(w, "list bills by order", err)
		return
	}

	resp := orderDetailResponse{
		orderResponse: toOrderResponse(order),
		Bills:         make([]billResponse, len(bills)),
	}
	for i, b := range bills {
		resp.Bills[i] = toBillResponse(b)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Kitchen returns the orders still in progress, oldest first.
func (h *OrderHandler) Kitchen(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListActiveOrders(r.Context())
	if err != nil {
		writeInternalError(w, "list active orders", err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponses(orders))
}

// UpdateStatus moves an order to Cooking, Ready or Served.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseOrderID(w, r)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.svc.AdvanceStatus(r.Context(), id, req.Status)
	if err != nil {
		writeServiceError(w, "update order status", err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

// --- Helpers ---

func parseOrderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeErrorMessage(w, http.StatusBadRequest, "invalid order ID")
		return 0, false
	}
	return id, true
}
