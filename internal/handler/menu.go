package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardapio-pos/web/internal/backend"
	"github.com/cardapio-pos/web/internal/format"
	"github.com/cardapio-pos/web/internal/middleware"
	"github.com/cardapio-pos/web/internal/session"
)

// MenuBackend is the slice of the remote client the menu handler needs.
// Satisfied by *backend.MenuService.
type MenuBackend interface {
	List(ctx context.Context, token string) ([]backend.MenuItem, error)
	ByCategory(ctx context.Context, token, category string) ([]backend.MenuItem, error)
	Create(ctx context.Context, token string, item backend.MenuItem) (*backend.MenuItem, error)
	Update(ctx context.Context, token, id string, item backend.MenuItem) (*backend.MenuItem, error)
	Delete(ctx context.Context, token, id string) error
}

// MenuHandler serves the cardápio browse view and the admin CRUD actions.
type MenuHandler struct {
	menu     MenuBackend
	sessions *session.Manager
}

func NewMenuHandler(menu MenuBackend, sessions *session.Manager) *MenuHandler {
	return &MenuHandler{menu: menu, sessions: sessions}
}

// RegisterViewRoutes registers the read-only routes open to all roles.
func (h *MenuHandler) RegisterViewRoutes(r chi.Router) {
	r.Get("/views/cardapio", h.List)
	r.Get("/views/cardapio/categoria/{categoria}", h.ByCategory)
}

// RegisterAdminRoutes registers the mutation routes (admin subtree).
func (h *MenuHandler) RegisterAdminRoutes(r chi.Router) {
	r.Post("/cardapio", h.Create)
	r.Put("/cardapio/{id}", h.Update)
	r.Delete("/cardapio/{id}", h.Delete)
}

// --- Response types ---

type menuItemResponse struct {
	backend.MenuItem
	PriceDisplay string `json:"precoFormatado"`
}

func toMenuResponse(items []backend.MenuItem) []menuItemResponse {
	resp := make([]menuItemResponse, len(items))
	for i, item := range items {
		resp[i] = menuItemResponse{MenuItem: item, PriceDisplay: format.Currency(item.Price)}
	}
	return resp
}

// --- Handlers ---

// List returns the whole cardápio as a read-through of the backend; the
// client never caches items beyond this response.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	items, err := h.menu.List(r.Context(), sess.Token)
	if err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}
	writeJSON(w, http.StatusOK, toMenuResponse(items))
}

// ByCategory returns one category's items.
func (h *MenuHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	items, err := h.menu.ByCategory(r.Context(), sess.Token, chi.URLParam(r, "categoria"))
	if err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}
	writeJSON(w, http.StatusOK, toMenuResponse(items))
}

// Create validates and forwards a new menu item.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	item, ok := decodeMenuItem(w, r)
	if !ok {
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	created, err := h.menu.Create(r.Context(), sess.Token, item)
	if err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update validates and forwards an edited menu item.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	item, ok := decodeMenuItem(w, r)
	if !ok {
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	updated, err := h.menu.Update(r.Context(), sess.Token, chi.URLParam(r, "id"), item)
	if err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete removes a menu item.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if err := h.menu.Delete(r.Context(), sess.Token, chi.URLParam(r, "id")); err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeMenuItem(w http.ResponseWriter, r *http.Request) (backend.MenuItem, bool) {
	var item backend.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "requisição inválida"})
		return item, false
	}
	if item.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "nome é obrigatório"})
		return item, false
	}
	if item.Price.IsNegative() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "preço não pode ser negativo"})
		return item, false
	}
	if item.PrepMinutes < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "tempo de preparo inválido"})
		return item, false
	}
	return item, true
}
