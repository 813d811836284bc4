package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/restotrack/api/internal/database"
)

const defaultRating = 3

// FeedbackStore defines the database methods needed by feedback handlers.
// Satisfied by *database.Queries; narrow interface for testability.
type FeedbackStore interface {
	CreateFeedback(ctx context.Context, arg database.CreateFeedbackParams) (database.Feedback, error)
	ListFeedback(ctx context.Context) ([]database.Feedback, error)
}

// FeedbackHandler handles customer feedback.
type FeedbackHandler struct {
	store FeedbackStore
	now   func() time.Time
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(store FeedbackStore) *FeedbackHandler {
	return &FeedbackHandler{store: store, now: time.Now}
}

// RegisterRoutes registers feedback endpoints. Mounted at /feedback.
func (h *FeedbackHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
}

// --- Request / Response types ---

type createFeedbackRequest struct {
	CustomerName string `json:"customer_name"`
	Rating       *int32 `json:"rating" validate:"omitempty,min=1,max=5"`
	Comments     string `json:"comments"`
}

type feedbackResponse struct {
	ID           int64   `json:"id"`
	CustomerName *string `json:"customer_name"`
	Rating       int32   `json:"rating"`
	Comments     string  `json:"comments"`
	Date         string  `json:"date"`
}

func toFeedbackResponse(f database.Feedback) feedbackResponse {
	return feedbackResponse{
		ID:           f.ID,
		CustomerName: textToPtr(f.CustomerName),
		Rating:       f.Rating,
		Comments:     f.Comments,
		Date:         dateToString(f.Date),
	}
}

// --- Handlers ---

// List returns all feedback.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.store.ListFeedback(r.Context())
	if err != nil {
		writeInternalError(w, "list feedback", err)
		return
	}

	resp := make([]feedbackResponse, len(rows))
	for i, f := range rows {
		resp[i] = toFeedbackResponse(f)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create stores feedback dated today. Name is optional; rating defaults to 3.
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFeedbackRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	rating := int32(defaultRating)
	if req.Rating != nil {
		rating = *req.Rating
	}

	name := pgtype.Text{}
	if n := strings.TrimSpace(req.CustomerName); n != "" {
		name = pgtype.Text{String: n, Valid: true}
	}

	f, err := h.store.CreateFeedback(r.Context(), database.CreateFeedbackParams{
		CustomerName: name,
		Rating:       rating,
		Comments:     req.Comments,
		Date:         pgtype.Date{Time: h.now(), Valid: true},
	})
	if err != nil {
		writeInternalError(w, "create feedback", err)
		return
	}
	writeJSON(w, http.StatusCreated, toFeedbackResponse(f))
}
