// Package handler exposes the web client's view and action endpoints.
// Views are JSON view-models computed purely from (role, loaded data);
// actions call the backend and/or mutate local cart/session state.
package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/cardapio-pos/web/internal/backend"
	"github.com/cardapio-pos/web/internal/middleware"
	"github.com/cardapio-pos/web/internal/session"
)

// cartCookieName identifies the browser's cart. Deliberately separate
// from the session cookie so the cart survives logout and re-login.
const cartCookieName = "cardapio_cart"

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: encode JSON response: %v", err)
	}
}

// writeBackendError maps a remote failure onto the response per the
// client's error taxonomy: an authorization rejection destroys the local
// session and tells the shell to navigate to login; a business failure
// carries the backend's own message; anything else is logged and reported
// generically. No failure is retried and none touches view state.
func writeBackendError(w http.ResponseWriter, r *http.Request, sessions *session.Manager, err error) {
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, backend.ErrUnauthorized):
		if sess := middleware.SessionFromContext(r.Context()); sess != nil {
			if derr := sessions.Destroy(r.Context(), sess.ID); derr != nil {
				log.Printf("ERROR: destroy session after rejection: %v", derr)
			}
		}
		clearSessionCookie(w)
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":    "sessão expirada",
			"redirect": "/login",
		})
	case errors.As(err, &apiErr):
		writeJSON(w, apiErr.Status, map[string]string{"error": apiErr.Message})
	default:
		log.Printf("ERROR: backend call: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "erro na requisição"})
	}
}

func setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
