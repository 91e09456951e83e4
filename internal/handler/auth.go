package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cardapio-pos/web/internal/backend"
	"github.com/cardapio-pos/web/internal/nav"
	"github.com/cardapio-pos/web/internal/session"
)

// AuthBackend is the slice of the remote client the auth handler needs.
// Satisfied by *backend.AuthService; narrow interface for testability.
type AuthBackend interface {
	Login(ctx context.Context, req backend.LoginRequest) (*backend.LoginResponse, error)
	Register(ctx context.Context, req backend.RegisterRequest) (*backend.User, error)
}

// AuthHandler owns the login/logout lifecycle.
type AuthHandler struct {
	api      AuthBackend
	sessions *session.Manager
}

func NewAuthHandler(api AuthBackend, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{api: api, sessions: sessions}
}

// RegisterRoutes registers the public auth endpoints.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.Login)
	r.Post("/auth/register", h.Register)
	r.Post("/auth/logout", h.Logout)
	r.Get("/auth/session", h.Session)
}

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type sessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	Name          string     `json:"nome,omitempty"`
	Role          string     `json:"role,omitempty"`
	Navigation    []nav.Item `json:"navigation,omitempty"`
	Theme         *nav.Theme `json:"theme,omitempty"`
}

// --- Handlers ---

// Login exchanges credentials with the backend, creates a local session
// and sets the session cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "requisição inválida"})
		return
	}
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email e senha são obrigatórios"})
		return
	}

	resp, err := h.api.Login(r.Context(), backend.LoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		// A rejection here is bad credentials, not a stale session.
		if errors.Is(err, backend.ErrUnauthorized) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "credenciais inválidas"})
			return
		}
		writeBackendError(w, r, h.sessions, err)
		return
	}

	userID := strconv.FormatInt(resp.User.ID, 10)
	sess, err := h.sessions.Create(r.Context(), resp.Token, resp.User.Role, resp.User.Name, userID)
	if err != nil {
		log.Printf("ERROR: create session: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "erro interno"})
		return
	}
	setSessionCookie(w, sess.ID)

	theme := nav.ThemeFor(sess.Role)
	writeJSON(w, http.StatusOK, sessionResponse{
		Authenticated: true,
		Name:          sess.Name,
		Role:          sess.Role,
		Navigation:    nav.ItemsFor(sess.Role),
		Theme:         &theme,
	})
}

// Register passes a new customer account through to the backend.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req backend.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "requisição inválida"})
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "nome, email e senha são obrigatórios"})
		return
	}

	user, err := h.api.Register(r.Context(), req)
	if err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// Logout destroys the local session. The backend token is discarded, not
// revoked; the contract has no revocation call.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if derr := h.sessions.Destroy(r.Context(), cookie.Value); derr != nil {
			log.Printf("ERROR: destroy session: %v", derr)
		}
	}
	clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Session reports whether the browser holds a live session; the shell
// calls it on startup to rehydrate.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		writeJSON(w, http.StatusOK, sessionResponse{Authenticated: false})
		return
	}

	sess, err := h.sessions.Get(r.Context(), cookie.Value)
	if err != nil {
		clearSessionCookie(w)
		writeJSON(w, http.StatusOK, sessionResponse{Authenticated: false})
		return
	}

	theme := nav.ThemeFor(sess.Role)
	writeJSON(w, http.StatusOK, sessionResponse{
		Authenticated: true,
		Name:          sess.Name,
		Role:          sess.Role,
		Navigation:    nav.ItemsFor(sess.Role),
		Theme:         &theme,
	})
}
