package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/restotrack/api/internal/database"
)

// TableStore defines the database methods needed by the raw table viewer.
// Satisfied by *database.Queries; narrow interface for testability.
type TableStore interface {
	GetRestaurantInfo(ctx context.Context) (database.RestaurantInfo, error)
	ListStaff(ctx context.Context) ([]database.Staff, error)
	ListMenuItems(ctx context.Context) ([]database.MenuItem, error)
	ListOrders(ctx context.Context) ([]database.Order, error)
	ListBills(ctx context.Context) ([]database.Bill, error)
	ListFeedback(ctx context.Context) ([]database.Feedback, error)
}

// TableHandler dumps whole tables for inspection.
type TableHandler struct {
	store TableStore
}

// NewTableHandler creates a new TableHandler.
func NewTableHandler(store TableStore) *TableHandler {
	return &TableHandler{store: store}
}

// RegisterRoutes registers the table viewer. Mounted at /tables.
func (h *TableHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Names)
	r.Get("/{name}", h.Show)
}

// TableNames lists the tables the viewer can show.
var TableNames = []string{"restaurant_info", "staff", "menu", "orders", "billing", "feedback"}

type tableResponse struct {
	Table string `json:"table"`
	Count int    `json:"count"`
	Rows  any    `json:"rows"`
}

// Names returns the viewable table names.
func (h *TableHandler) Names(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, TableNames)
}

// Show returns every row of the named table.
func (h *TableHandler) Show(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ctx := r.Context()

	var (
		rows  any
		count int
		err   error
	)
	switch name {
	case "restaurant_info":
		var info database.RestaurantInfo
		info, err = h.store.GetRestaurantInfo(ctx)
		if errors.Is(err, pgx.ErrNoRows) {
			rows, err = []profileResponse{}, nil
		} else if err == nil {
			rows, count = []profileResponse{toProfileResponse(info)}, 1
		}
	case "staff":
		var staff []database.Staff
		if staff, err = h.store.ListStaff(ctx); err == nil {
			resp := make([]staffResponse, len(staff))
			for i, s := range staff {
				resp[i] = toStaffResponse(s)
			}
			rows, count = resp, len(resp)
		}
	case "menu":
		var items []database.MenuItem
		if items, err = h.store.ListMenuItems(ctx); err == nil {
			resp := make([]menuItemResponse, len(items))
			for i, m := range items {
				resp[i] = toMenuItemResponse(m)
			}
			rows, count = resp, len(resp)
		}
	case "orders":
		var orders []database.Order
		if orders, err = h.store.ListOrders(ctx); err == nil {
			resp := toOrderResponses(orders)
			rows, count = resp, len(resp)
		}
	case "billing":
		var bills []database.Bill
		if bills, err = h.store.ListBills(ctx); err == nil {
			resp := make([]billResponse, len(bills))
			for i, b := range bills {
				resp[i] = toBillResponse(b)
			}
			rows, count = resp, len(resp)
		}
	case "feedback":
		var fb []database.Feedback
		if fb, err = h.store.ListFeedback(ctx); err == nil {
			resp := make([]feedbackResponse, len(fb))
			for i, f := range fb {
				resp[i] = toFeedbackResponse(f)
			}
			rows, count = resp, len(resp)
		}
	default:
		writeErrorMessage(w, http.StatusNotFound, "unknown table")
		return
	}
	if err != nil {
		writeInternalError(w, "read table "+name, err)
		return
	}

	writeJSON(w, http.StatusOK, tableResponse{Table: name, Count: count, Rows: rows})
}
