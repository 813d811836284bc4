package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/restotrack/api/internal/database"
	"github.com/shopspring/decimal"
)

// MenuStore defines the database methods needed by menu handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type MenuStore interface {
	CreateMenuItem(ctx context.Context, arg database.CreateMenuItemParams) (database.MenuItem, error)
	ListMenuItems(ctx context.Context) ([]database.MenuItem, error)
	ListAvailableMenuItems(ctx context.Context) ([]database.MenuItem, error)
}

// MenuHandler handles menu endpoints.
type MenuHandler struct {
	store MenuStore
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(store MenuStore) *MenuHandler {
	return &MenuHandler{store: store}
}

// RegisterRoutes registers menu endpoints. Mounted at /menu.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
}

// --- Request / Response types ---

type createMenuItemRequest struct {
	FoodName  string          `json:"food_name" validate:"required"`
	Category  string          `json:"category" validate:"required,oneof='Fast Food' 'BBQ' 'Drinks' 'Dessert'"`
	Price     decimal.Decimal `json:"price"`
	Available *bool           `json:"available"`
	PrepTime  int32           `json:"prep_time" validate:"min=1"`
}

type menuItemResponse struct {
	ID        int64  `json:"id"`
	FoodName  string `json:"food_name"`
	Category  string `json:"category"`
	Price     string `json:"price"`
	Available bool   `json:"available"`
	PrepTime  int32  `json:"prep_time"`
}

func toMenuItemResponse(m database.MenuItem) menuItemResponse {
	return menuItemResponse{
		ID:        m.ID,
		FoodName:  m.FoodName,
		Category:  m.Category,
		Price:     numericToString(m.Price),
		Available: m.Available,
		PrepTime:  m.PrepTime,
	}
}

// --- Handlers ---

// List returns the menu. ?available=true restricts it to orderable items.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := false
	if s := r.URL.Query().Get("available"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, "invalid available parameter")
			return
		}
		onlyAvailable = v
	}

	var (
		items []database.MenuItem
		err   error
	)
	if onlyAvailable {
		items, err = h.store.ListAvailableMenuItems(r.Context())
	} else {
		items, err = h.store.ListMenuItems(r.Context())
	}
	if err != nil {
		writeInternalError(w, "list menu items", err)
		return
	}

	resp := make([]menuItemResponse, len(items))
	for i, m := range items {
		resp[i] = toMenuItemResponse(m)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create adds a menu item. Items are available unless stated otherwise.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMenuItemRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Price.IsNegative() {
		writeErrorMessage(w, http.StatusBadRequest, "price must be >= 0")
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item, err := h.store.CreateMenuItem(r.Context(), database.CreateMenuItemParams{
		FoodName:  req.FoodName,
		Category:  req.Category,
		Price:     database.NumericFromDecimal(req.Price),
		Available: available,
		PrepTime:  req.PrepTime,
	})
	if err != nil {
		writeInternalError(w, "create menu item", err)
		return
	}
	writeJSON(w, http.StatusCreated, toMenuItemResponse(item))
}
