package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardapio-pos/web/internal/backend"
	"github.com/cardapio-pos/web/internal/enum"
	"github.com/cardapio-pos/web/internal/middleware"
	"github.com/cardapio-pos/web/internal/session"
)

// UsersBackend is the slice of the remote client the user-management
// view needs. Satisfied by *backend.UserService.
type UsersBackend interface {
	List(ctx context.Context, token string) ([]backend.User, error)
	Create(ctx context.Context, token string, req backend.CreateUserRequest) (*backend.User, error)
	Update(ctx context.Context, token, id string, req backend.UpdateUserRequest) (*backend.User, error)
	Delete(ctx context.Context, token, id string) error
	ToggleStatus(ctx context.Context, token, id string) error
}

// UsersHandler proxies the admin user-management operations.
type UsersHandler struct {
	users    UsersBackend
	sessions *session.Manager
}

func NewUsersHandler(users UsersBackend, sessions *session.Manager) *UsersHandler {
	return &UsersHandler{users: users, sessions: sessions}
}

// RegisterRoutes registers the user endpoints (admin subtree).
func (h *UsersHandler) RegisterRoutes(r chi.Router) {
	r.Get("/views/usuarios", h.List)
	r.Post("/usuarios", h.Create)
	r.Put("/usuarios/{id}", h.Update)
	r.Delete("/usuarios/{id}", h.Delete)
	r.Patch("/usuarios/{id}/toggle-status", h.ToggleStatus)
}

// List returns every account.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	users, err := h.users.List(r.Context(), sess.Token)
	if err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// Create validates and forwards a new account.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req backend.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "requisição inválida"})
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "nome, email e senha são obrigatórios"})
		return
	}
	if !enum.IsValidRole(req.Role) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "tipo de usuário inválido"})
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	user, err := h.users.Create(r.Context(), sess.Token, req)
	if err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// Update validates and forwards an account edit.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req backend.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "requisição inválida"})
		return
	}
	if req.Role != "" && !enum.IsValidRole(req.Role) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "tipo de usuário inválido"})
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	user, err := h.users.Update(r.Context(), sess.Token, chi.URLParam(r, "id"), req)
	if err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Delete removes an account.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if err := h.users.Delete(r.Context(), sess.Token, chi.URLParam(r, "id")); err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleStatus flips an account's active flag.
func (h *UsersHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if err := h.users.ToggleStatus(r.Context(), sess.Token, chi.URLParam(r, "id")); err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
