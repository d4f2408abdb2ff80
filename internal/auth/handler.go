package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/bannerhub/bannerhub/internal/platform/httpx"
)

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:    logger,
		service:   service,
		validator: httpx.NewValidator(),
	}
}

// MountRoutes registers auth routes on provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/signup", h.handleSignup)
	r.Post("/login", h.handleLogin)
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (credentialsRequest, error) {
	var req credentialsRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		return req, err
	}
	return req, httpx.Validate(h.validator, req)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(w, r)
	if err != nil {
		httpx.RespondError(w, err, "Error creating user")
		return
	}
	id, err := h.service.Signup(r.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(w, r, err, "Error creating user")
		return
	}
	h.logger.Info("user created", slog.Int64("user_id", id), slog.String("request_id", middleware.GetReqID(r.Context())))
	httpx.JSON(w, http.StatusCreated, messageResponse{Message: "User created successfully"})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(w, r)
	if err != nil {
		httpx.RespondError(w, err, "Error logging in")
		return
	}
	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(w, r, err, "Error logging in")
		return
	}
	httpx.JSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if httpx.StatusOf(err) == http.StatusInternalServerError {
		h.logger.Error(fallback, slog.Any("error", err), slog.String("request_id", middleware.GetReqID(r.Context())))
	}
	httpx.RespondError(w, err, fallback)
}
