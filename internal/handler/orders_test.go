package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/restotrack/api/internal/database"
	"github.com/restotrack/api/internal/handler"
	"github.com/restotrack/api/internal/service"
)

// --- Mock Service ---

type mockOrderService struct {
	createFn  func(ctx context.Context, req service.CreateOrderRequest) (database.Order, error)
	advanceFn func(ctx context.Context, orderID int64, target string) (database.Order, error)
	activeFn  func(ctx context.Context) ([]database.Order, error)
}

func (m *mockOrderService) CreateOrder(ctx context.Context, req service.CreateOrderRequest) (database.Order, error) {
	return m.createFn(ctx, req)
}

func (m *mockOrderService) AdvanceStatus(ctx context.Context, orderID int64, target string) (database.Order, error) {
	return m.advanceFn(ctx, orderID, target)
}

func (m *mockOrderService) ListActiveOrders(ctx context.Context) ([]database.Order, error) {
	return m.activeFn(ctx)
}

// --- Mock Store ---

type mockOrderStore struct {
	orders  map[int64]database.Order
	bills   map[int64][]database.Bill
	menu    []database.MenuItem
	waiters []database.Staff
}

func (m *mockOrderStore) GetOrder(ctx context.Context, id int64) (database.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return database.Order{}, pgx.ErrNoRows
	}
	return o, nil
}

func (m *mockOrderStore) ListOrders(ctx context.Context) ([]database.Order, error) {
	out := make([]database.Order, 0, len(m.orders))
	for id := int64(1); id <= int64(len(m.orders)); id++ {
		out = append(out, m.orders[id])
	}
	return out, nil
}

func (m *mockOrderStore) ListBillsByOrder(ctx context.Context, orderID int64) ([]database.Bill, error) {
	return m.bills[orderID], nil
}

func (m *mockOrderStore) ListAvailableMenuItems(ctx context.Context) ([]database.MenuItem, error) {
	return m.menu, nil
}

func (m *mockOrderStore) ListStaffByRole(ctx context.Context, role string) ([]database.Staff, error) {
	if role != "Waiter" {
		return nil, fmt.Errorf("unexpected role %q", role)
	}
	return m.waiters, nil
}

// --- Test helpers ---

var testOrderTime = time.Date(2024, 3, 9, 19, 0, 0, 0, time.UTC)

func sampleOrder(id int64, status database.OrderStatus) database.Order {
	return database.Order{
		ID:         id,
		TableNo:    4,
		WaiterName: "Ali",
		FoodItem:   "Burger",
		Quantity:   2,
		OrderTime:  testOrderTime,
		Status:     status,
	}
}

func setupOrderRouter(svc *mockOrderService, store *mockOrderStore) *chi.Mux {
	h := handler.NewOrderHandler(svc, store)
	r := chi.NewRouter()
	r.Route("/orders", h.RegisterRoutes)
	r.Route("/kitchen", h.RegisterKitchenRoutes)
	return r
}

// --- Tests: options ---

func TestOrderOptions_Placeholders(t *testing.T) {
	rr := doRequest(t, setupOrderRouter(&mockOrderService{}, &mockOrderStore{}), "GET", "/orders/options", nil)
	assertStatus(t, rr, http.StatusOK)

	resp := decodeObject(t, rr)
	items := resp["food_items"].([]interface{})
	waiters := resp["waiters"].([]interface{})
	if len(items) != 1 || items[0] != "No items available" {
		t.Errorf("food_items: got %v", items)
	}
	if len(waiters) != 1 || waiters[0] != "No waiters" {
		t.Errorf("waiters: got %v", waiters)
	}
}

func TestOrderOptions_Values(t *testing.T) {
	store := &mockOrderStore{
		menu:    []database.MenuItem{{FoodName: "Burger"}, {FoodName: "Fries"}},
		waiters: []database.Staff{{Name: "Ali", Role: "Waiter"}},
	}
	rr := doRequest(t, setupOrderRouter(&mockOrderService{}, store), "GET", "/orders/options", nil)
	assertStatus(t, rr, http.StatusOK)

	resp := decodeObject(t, rr)
	items := resp["food_items"].([]interface{})
	if len(items) != 2 || items[1] != "Fries" {
		t.Errorf("food_items: got %v", items)
	}
	if w := resp["waiters"].([]interface{}); len(w) != 1 || w[0] != "Ali" {
		t.Errorf("waiters: got %v", w)
	}
}

// --- Tests: create ---

func TestOrderCreate_Success(t *testing.T) {
	var got service.CreateOrderRequest
	svc := &mockOrderService{
		createFn: func(ctx context.Context, req service.CreateOrderRequest) (database.Order, error) {
			got = req
			return sampleOrder(1, database.OrderStatusPending), nil
		},
	}
	rr := doRequest(t, setupOrderRouter(svc, &mockOrderStore{}), "POST", "/orders", map[string]interface{}{
		"table_no":    4,
		"waiter_name": "Ali",
		"food_item":   "Burger",
		"quantity":    2,
	})
	assertStatus(t, rr, http.StatusCreated)

	if got.TableNo != 4 || got.Quantity != 2 || got.FoodItem != "Burger" {
		t.Errorf("service request: got %+v", got)
	}
	resp := decodeObject(t, rr)
	if resp["status"] != "Pending" {
		t.Errorf("status: got %v", resp["status"])
	}
	if resp["id"] != float64(1) {
		t.Errorf("id: got %v", resp["id"])
	}
}

func TestOrderCreate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", service.ErrInvalidQuantity, http.StatusBadRequest},
		{"unavailable item", fmt.Errorf("%w: %q", service.ErrMenuItemUnavailable, "Soup"), http.StatusBadRequest},
		{"store failure", errors.New("create order: connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockOrderService{
				createFn: func(ctx context.Context, req service.CreateOrderRequest) (database.Order, error) {
					return database.Order{}, tt.err
				},
			}
			rr := doRequest(t, setupOrderRouter(svc, &mockOrderStore{}), "POST", "/orders", map[string]interface{}{
				"table_no": 1, "waiter_name": "Ali", "food_item": "Soup", "quantity": 0,
			})
			assertStatus(t, rr, tt.want)
			if tt.want == http.StatusInternalServerError {
				if msg := decodeObject(t, rr)["error"]; msg != "internal server error" {
					t.Errorf("store error leaked: %v", msg)
				}
			}
		})
	}
}

func TestOrderCreate_InvalidBody(t *testing.T) {
	rr := doRequest(t, setupOrderRouter(&mockOrderService{}, &mockOrderStore{}), "POST", "/orders", `{"table_no":"four"}`)
	assertStatus(t, rr, http.StatusBadRequest)
}

// --- Tests: read ---

func TestOrderGet_WithBills(t *testing.T) {
	store := &mockOrderStore{
		orders: map[int64]database.Order{1: sampleOrder(1, database.OrderStatusReady)},
		bills: map[int64][]database.Bill{1: {
			{ID: 9, OrderID: 1, FoodTotal: toNumeric("16"), Tax: toNumeric("1.6"), Discount: toNumeric("1"), FinalAmount: toNumeric("16.6"), PaymentMethod: "Cash", PaymentStatus: "Paid"},
		}},
	}
	rr := doRequest(t, setupOrderRouter(&mockOrderService{}, store), "GET", "/orders/1", nil)
	assertStatus(t, rr, http.StatusOK)

	resp := decodeObject(t, rr)
	if resp["food_item"] != "Burger" {
		t.Errorf("food_item: got %v", resp["food_item"])
	}
	bills := resp["bills"].([]interface{})
	if len(bills) != 1 {
		t.Fatalf("bills: got %d, want 1", len(bills))
	}
	if b := bills[0].(map[string]interface{}); b["final_amount"] != "16.60" {
		t.Errorf("final_amount: got %v", b["final_amount"])
	}
}

func TestOrderGet_NotFoundAndBadID(t *testing.T) {
	r := setupOrderRouter(&mockOrderService{}, &mockOrderStore{})

	assertStatus(t, doRequest(t, r, "GET", "/orders/42", nil), http.StatusNotFound)
	assertStatus(t, doRequest(t, r, "GET", "/orders/abc", nil), http.StatusBadRequest)
	assertStatus(t, doRequest(t, r, "GET", "/orders/0", nil), http.StatusBadRequest)
}

func TestOrderList(t *testing.T) {
	store := &mockOrderStore{orders: map[int64]database.Order{
		1: sampleOrder(1, database.OrderStatusServed),
		2: sampleOrder(2, database.OrderStatusPending),
	}}
	rr := doRequest(t, setupOrderRouter(&mockOrderService{}, store), "GET", "/orders", nil)
	assertStatus(t, rr, http.StatusOK)
	list := decodeList(t, rr)
	if len(list) != 2 || list[0]["status"] != "Served" {
		t.Fatalf("orders: got %v", list)
	}
}

func TestKitchenOrders(t *testing.T) {
	svc := &mockOrderService{
		activeFn: func(ctx context.Context) ([]database.Order, error) {
			return []database.Order{
				sampleOrder(3, database.OrderStatusCooking),
				sampleOrder(5, database.OrderStatusPending),
			}, nil
		},
	}
	rr := doRequest(t, setupOrderRouter(svc, &mockOrderStore{}), "GET", "/kitchen/orders", nil)
	assertStatus(t, rr, http.StatusOK)
	list := decodeList(t, rr)
	if len(list) != 2 || list[0]["id"] != float64(3) {
		t.Fatalf("kitchen orders: got %v", list)
	}
}

// --- Tests: status ---

func TestOrderUpdateStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, http.StatusOK},
		{"served is terminal", service.ErrOrderServed, http.StatusConflict},
		{"raced", service.ErrStatusConflict, http.StatusConflict},
		{"missing order", service.ErrOrderNotFound, http.StatusNotFound},
		{"bad target", service.ErrInvalidTargetStatus, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			var gotTarget string
			svc := &mockOrderService{
				advanceFn: func(ctx context.Context, orderID int64, target string) (database.Order, error) {
					gotID, gotTarget = orderID, target
					if tt.err != nil {
						return database.Order{}, tt.err
					}
					return sampleOrder(orderID, database.OrderStatus(target)), nil
				},
			}
			rr := doRequest(t, setupOrderRouter(svc, &mockOrderStore{}), "PATCH", "/orders/7/status", map[string]string{"status": "Ready"})
			assertStatus(t, rr, tt.want)
			if gotID != 7 || gotTarget != "Ready" {
				t.Errorf("service called with (%d, %q)", gotID, gotTarget)
			}
			if tt.err == nil {
				if s := decodeObject(t, rr)["status"]; s != "Ready" {
					t.Errorf("status: got %v", s)
				}
			}
		})
	}
}

func TestOrderUpdateStatus_MissingStatus(t *testing.T) {
	rr := doRequest(t, setupOrderRouter(&mockOrderService{}, &mockOrderStore{}), "PATCH", "/orders/7/status", map[string]string{})
	assertStatus(t, rr, http.StatusBadRequest)
	if msg := decodeObject(t, rr)["error"]; msg != "status is required" {
		t.Errorf("error: got %v", msg)
	}
}
