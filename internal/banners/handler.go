package banners

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/bannerhub/bannerhub/internal/platform/httpx"
)

// Handler manages banner endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service, validator: httpx.NewValidator()}
}

// MountRoutes registers banner routes relative to the mount point.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.getBanner)
	r.Post("/", h.upsertBanner)
}

type upsertRequest struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Timer       *float64 `json:"timer" validate:"required"`
	URL         string   `json:"url" validate:"required"`
}

type upsertResponse struct {
	Message string       `json:"message"`
	ID      string       `json:"id"`
	Status  UpsertStatus `json:"status"`
}

func (h *Handler) upsertBanner(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.RespondError(w, err, "Error creating banner")
		return
	}
	if err := httpx.Validate(h.validator, req); err != nil {
		httpx.RespondError(w, err, "Error creating banner")
		return
	}

	result, err := h.service.Upsert(r.Context(), Banner{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Timer:       *req.Timer,
		URL:         req.URL,
	})
	if err != nil {
		h.fail(w, r, err, "Error creating banner")
		return
	}

	message := "Banner updated successfully"
	if result.Status == StatusCreated {
		message = "Banner created successfully"
	}
	httpx.JSON(w, http.StatusOK, upsertResponse{Message: message, ID: result.ID, Status: result.Status})
}

func (h *Handler) getBanner(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		h.fail(w, r, err, "Error retrieving banner")
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if httpx.StatusOf(err) == http.StatusInternalServerError {
		h.logger.Error(fallback, slog.Any("error", err), slog.String("request_id", middleware.GetReqID(r.Context())))
	}
	httpx.RespondError(w, err, fallback)
}
