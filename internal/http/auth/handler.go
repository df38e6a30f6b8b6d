package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/leasedesk/internal/api"
	"github.com/MrJamesThe3rd/leasedesk/internal/auth"
	"github.com/MrJamesThe3rd/leasedesk/internal/http/respond"
	"github.com/MrJamesThe3rd/leasedesk/internal/session"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

func toUser(u *auth.User) *session.User {
	return &session.User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	sess, err := h.svc.Register(r.Context(), auth.RegisterParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			respond.Error(w, http.StatusBadRequest, strings.TrimPrefix(err.Error(), auth.ErrInvalidInput.Error()+": "))
		case errors.Is(err, auth.ErrEmailTaken):
			respond.Error(w, http.StatusConflict, "Email already registered")
		default:
			slog.Error("failed to register user", "error", err)
			respond.Error(w, http.StatusInternalServerError, "Internal error")
		}

		return
	}

	respond.JSON(w, http.StatusCreated, api.AuthResult{Token: sess.Token, User: toUser(sess.User)})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	sess, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respond.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		slog.Error("failed to log in", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Internal error")

		return
	}

	respond.JSON(w, http.StatusOK, api.AuthResult{Token: sess.Token, User: toUser(sess.User)})
}

// Me returns the profile of the authenticated user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.UserID(r.Context())

	u, err := h.svc.User(r.Context(), id)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "Unknown user")
			return
		}

		slog.Error("failed to load user", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Internal error")

		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{"user": toUser(u)})
}

// Authenticate rejects requests without a valid bearer token and stores the
// token's user ID in the request context.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			respond.Error(w, http.StatusUnauthorized, "Missing token")
			return
		}

		id, err := h.svc.Verify(token)
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), id)))
	})
}
