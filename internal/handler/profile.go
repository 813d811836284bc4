package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/restotrack/api/internal/database"
)

// ProfileStore defines the database methods needed by profile handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type ProfileStore interface {
	GetRestaurantInfo(ctx context.Context) (database.RestaurantInfo, error)
	UpsertRestaurantInfo(ctx context.Context, arg database.UpsertRestaurantInfoParams) (database.RestaurantInfo, error)
}

// ProfileHandler reads and saves the single restaurant profile.
type ProfileHandler struct {
	store ProfileStore
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(store ProfileStore) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// RegisterRoutes registers profile endpoints. Mounted at /profile.
func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Get)
	r.Put("/", h.Save)
}

// --- Request / Response types ---

type saveProfileRequest struct {
	Name         string `json:"name" validate:"required"`
	Owner        string `json:"owner" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Address      string `json:"address" validate:"required"`
	OpeningTime  string `json:"opening_time" validate:"omitempty,datetime=15:04"`
	ClosingTime  string `json:"closing_time" validate:"omitempty,datetime=15:04"`
	TypeDinein   bool   `json:"type_dinein"`
	TypeTakeaway bool   `json:"type_takeaway"`
	TypeDelivery bool   `json:"type_delivery"`
}

type profileResponse struct {
	Name         string    `json:"name"`
	Owner        string    `json:"owner"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	OpeningTime  string    `json:"opening_time"`
	ClosingTime  string    `json:"closing_time"`
	TypeDinein   bool      `json:"type_dinein"`
	TypeTakeaway bool      `json:"type_takeaway"`
	TypeDelivery bool      `json:"type_delivery"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toProfileResponse(p database.RestaurantInfo) profileResponse {
	return profileResponse{
		Name:         p.Name,
		Owner:        p.Owner,
		Phone:        p.Phone,
		Email:        p.Email,
		Address:      p.Address,
		OpeningTime:  p.OpeningTime,
		ClosingTime:  p.ClosingTime,
		TypeDinein:   p.TypeDinein,
		TypeTakeaway: p.TypeTakeaway,
		TypeDelivery: p.TypeDelivery,
		UpdatedAt:    p.UpdatedAt,
	}
}

// --- Handlers ---

// Get returns the saved profile, or 404 before the first save.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.store.GetRestaurantInfo(r.Context())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeErrorMessage(w, http.StatusNotFound, "restaurant profile not set")
			return
		}
		writeInternalError(w, "get restaurant info", err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(info))
}

// Save creates or replaces the profile.
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveProfileRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	info, err := h.store.UpsertRestaurantInfo(r.Context(), database.UpsertRestaurantInfoParams{
		Name:         req.Name,
		Owner:        req.Owner,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		OpeningTime:  req.OpeningTime,
		ClosingTime:  req.ClosingTime,
		TypeDinein:   req.TypeDinein,
		TypeTakeaway: req.TypeTakeaway,
		TypeDelivery: req.TypeDelivery,
	})
	if err != nil {
		writeInternalError(w, "save restaurant info", err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(info))
}
