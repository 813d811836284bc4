package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/restotrack/api/internal/database"
	"github.com/restotrack/api/internal/enum"
	"github.com/shopspring/decimal"
)

// StaffStore defines the database methods needed by staff handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type StaffStore interface {
	CreateStaff(ctx context.Context, arg database.CreateStaffParams) (database.Staff, error)
	ListStaff(ctx context.Context) ([]database.Staff, error)
	ListStaffByRole(ctx context.Context, role string) ([]database.Staff, error)
}

// StaffHandler handles the staff roster.
type StaffHandler struct {
	store StaffStore
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(store StaffStore) *StaffHandler {
	return &StaffHandler{store: store}
}

// RegisterRoutes registers staff endpoints. Mounted at /staff.
func (h *StaffHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
}

// --- Request / Response types ---

type createStaffRequest struct {
	Name        string          `json:"name" validate:"required"`
	Role        string          `json:"role" validate:"required,oneof='Waiter' 'Chef' 'Kitchen Staff' 'Cashier'"`
	Cnic        string          `json:"cnic"`
	Phone       string          `json:"phone" validate:"required"`
	Salary      decimal.Decimal `json:"salary"`
	Shift       string          `json:"shift" validate:"required,oneof=Morning Evening"`
	JoiningDate string          `json:"joining_date" validate:"omitempty,datetime=2006-01-02"`
}

type staffResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Cnic        *string `json:"cnic"`
	Phone       string  `json:"phone"`
	Salary      string  `json:"salary"`
	Shift       string  `json:"shift"`
	JoiningDate string  `json:"joining_date"`
}

func toStaffResponse(s database.Staff) staffResponse {
	return staffResponse{
		ID:          s.ID,
		Name:        s.Name,
		Role:        s.Role,
		Cnic:        textToPtr(s.Cnic),
		Phone:       s.Phone,
		Salary:      numericToString(s.Salary),
		Shift:       s.Shift,
		JoiningDate: dateToString(s.JoiningDate),
	}
}

// --- Handlers ---

// List returns the roster, optionally filtered by ?role=.
func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		staff []database.Staff
		err   error
	)
	if role := r.URL.Query().Get("role"); role != "" {
		if !isStaffRole(role) {
			writeErrorMessage(w, http.StatusBadRequest, "invalid role")
			return
		}
		staff, err = h.store.ListStaffByRole(r.Context(), role)
	} else {
		staff, err = h.store.ListStaff(r.Context())
	}
	if err != nil {
		writeInternalError(w, "list staff", err)
		return
	}

	resp := make([]staffResponse, len(staff))
	for i, s := range staff {
		resp[i] = toStaffResponse(s)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create registers a staff member. joining_date defaults to today.
func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createStaffRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Salary.IsNegative() {
		writeErrorMessage(w, http.StatusBadRequest, "salary must be >= 0")
		return
	}

	joined := time.Now()
	if req.JoiningDate != "" {
		// format already checked by the validator
		joined, _ = time.Parse("2006-01-02", req.JoiningDate)
	}

	cnic := pgtype.Text{}
	if c := strings.TrimSpace(req.Cnic); c != "" {
		cnic = pgtype.Text{String: c, Valid: true}
	}

	s, err := h.store.CreateStaff(r.Context(), database.CreateStaffParams{
		Name:        req.Name,
		Role:        req.Role,
		Cnic:        cnic,
		Phone:       req.Phone,
		Salary:      database.NumericFromDecimal(req.Salary),
		Shift:       req.Shift,
		JoiningDate: pgtype.Date{Time: joined, Valid: true},
	})
	if err != nil {
		writeInternalError(w, "create staff", err)
		return
	}
	writeJSON(w, http.StatusCreated, toStaffResponse(s))
}

func isStaffRole(role string) bool {
	switch role {
	case enum.StaffRoleWaiter, enum.StaffRoleChef, enum.StaffRoleKitchenStaff, enum.StaffRoleCashier:
		return true
	}
	return false
}
