package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/restotrack/api/internal/database"
	"github.com/restotrack/api/internal/handler"
)

// --- Mock Store ---

type mockMenuStore struct {
	items     []database.MenuItem
	created   *database.CreateMenuItemParams
	listErr   error
	availOnly bool
}

func (m *mockMenuStore) CreateMenuItem(ctx context.Context, arg database.CreateMenuItemParams) (database.MenuItem, error) {
	m.created = &arg
	item := database.MenuItem{
		ID:        int64(len(m.items) + 1),
		FoodName:  arg.FoodName,
		Category:  arg.Category,
		Price:     arg.Price,
		Available: arg.Available,
		PrepTime:  arg.PrepTime,
	}
	m.items = append(m.items, item)
	return item, nil
}

func (m *mockMenuStore) ListMenuItems(ctx context.Context) ([]database.MenuItem, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockMenuStore) ListAvailableMenuItems(ctx context.Context) ([]database.MenuItem, error) {
	m.availOnly = true
	var out []database.MenuItem
	for _, it := range m.items {
		if it.Available {
			out = append(out, it)
		}
	}
	return out, nil
}

func setupMenuRouter(store *mockMenuStore) *chi.Mux {
	h := handler.NewMenuHandler(store)
	r := chi.NewRouter()
	r.Route("/menu", h.RegisterRoutes)
	return r
}

// --- Tests ---

func TestMenuCreate_DefaultsAvailable(t *testing.T) {
	store := &mockMenuStore{}
	rr := doRequest(t, setupMenuRouter(store), "POST", "/menu", map[string]interface{}{
		"food_name": "Zinger Burger",
		"category":  "Fast Food",
		"price":     "8",
		"prep_time": 12,
	})
	assertStatus(t, rr, http.StatusCreated)

	resp := decodeObject(t, rr)
	if resp["price"] != "8.00" {
		t.Errorf("price: got %v, want 8.00", resp["price"])
	}
	if resp["available"] != true {
		t.Errorf("available: got %v, want true", resp["available"])
	}
}

func TestMenuCreate_ZeroPriceUnavailable(t *testing.T) {
	store := &mockMenuStore{}
	rr := doRequest(t, setupMenuRouter(store), "POST", "/menu", map[string]interface{}{
		"food_name": "Water",
		"category":  "Drinks",
		"price":     0,
		"available": false,
		"prep_time": 1,
	})
	assertStatus(t, rr, http.StatusCreated)
	if store.created.Available {
		t.Error("available should be false")
	}
}

func TestMenuCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"category": "BBQ", "price": "5", "prep_time": 5}},
		{"unknown category", map[string]interface{}{"food_name": "Pho", "category": "Soup", "price": "5", "prep_time": 5}},
		{"zero prep time", map[string]interface{}{"food_name": "Tikka", "category": "BBQ", "price": "5", "prep_time": 0}},
		{"negative price", map[string]interface{}{"food_name": "Tikka", "category": "BBQ", "price": "-5", "prep_time": 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockMenuStore{}
			rr := doRequest(t, setupMenuRouter(store), "POST", "/menu", tt.body)
			assertStatus(t, rr, http.StatusBadRequest)
			if store.created != nil {
				t.Error("store should not be called")
			}
		})
	}
}

func TestMenuList_AvailableOnly(t *testing.T) {
	store := &mockMenuStore{items: []database.MenuItem{
		{ID: 1, FoodName: "Burger", Category: "Fast Food", Price: toNumeric("8"), Available: true, PrepTime: 10},
		{ID: 2, FoodName: "Kheer", Category: "Dessert", Price: toNumeric("3.5"), Available: false, PrepTime: 5},
	}}
	r := setupMenuRouter(store)

	rr := doRequest(t, r, "GET", "/menu?available=true", nil)
	assertStatus(t, rr, http.StatusOK)
	list := decodeList(t, rr)
	if len(list) != 1 || list[0]["food_name"] != "Burger" {
		t.Fatalf("available items: got %v", list)
	}
	if !store.availOnly {
		t.Error("expected ListAvailableMenuItems")
	}

	rr = doRequest(t, r, "GET", "/menu", nil)
	assertStatus(t, rr, http.StatusOK)
	list = decodeList(t, rr)
	if len(list) != 2 || list[1]["price"] != "3.50" {
		t.Fatalf("all items: got %v", list)
	}

	rr = doRequest(t, r, "GET", "/menu?available=maybe", nil)
	assertStatus(t, rr, http.StatusBadRequest)
}

func TestMenuList_StoreError(t *testing.T) {
	store := &mockMenuStore{listErr: errors.New("timeout")}
	rr := doRequest(t, setupMenuRouter(store), "GET", "/menu", nil)
	assertStatus(t, rr, http.StatusInternalServerError)
}
