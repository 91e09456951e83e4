package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cardapio-pos/web/internal/enum"
	"github.com/cardapio-pos/web/internal/middleware"
	"github.com/cardapio-pos/web/internal/session"
	"github.com/cardapio-pos/web/internal/store"
)

func newSessions(t *testing.T) *session.Manager {
	t.Helper()
	st, err := store.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	return session.NewManager(st)
}

func okHandler(t *testing.T, wantRole string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := middleware.SessionFromContext(r.Context())
		if sess == nil {
			t.Error("session missing from context")
		} else if wantRole != "" && sess.Role != wantRole {
			t.Errorf("role: got %s, want %s", sess.Role, wantRole)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateWithValidCookie(t *testing.T) {
	sessions := newSessions(t)
	sess, err := sessions.Create(context.Background(), "tok", enum.RoleKitchen, "Chef", "5")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	handler := middleware.Authenticate(sessions)(okHandler(t, enum.RoleKitchen))

	req := httptest.NewRequest("GET", "/views/cozinha", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.ID})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
}

func TestAuthenticateWithoutCookie(t *testing.T) {
	sessions := newSessions(t)
	handler := middleware.Authenticate(sessions)(okHandler(t, ""))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/views/nav", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestAuthenticateWithStaleCookie(t *testing.T) {
	sessions := newSessions(t)
	handler := middleware.Authenticate(sessions)(okHandler(t, ""))

	req := httptest.NewRequest("GET", "/views/nav", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "gone"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestRequireRole(t *testing.T) {
	handler := middleware.RequireRole(enum.RoleAdmin, enum.RoleKitchen)(okHandler(t, ""))

	cases := map[string]int{
		enum.RoleAdmin:    http.StatusOK,
		enum.RoleKitchen:  http.StatusOK,
		enum.RoleCustomer: http.StatusForbidden,
		enum.RoleWaiter:   http.StatusForbidden,
	}
	for role, want := range cases {
		req := httptest.NewRequest("GET", "/", nil)
		req = req.WithContext(middleware.WithSession(req.Context(), &session.Session{ID: "s", Role: role}))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != want {
			t.Errorf("role %s: got %d, want %d", role, rr.Code, want)
		}
	}
}

func TestRequireRoleWithoutSession(t *testing.T) {
	handler := middleware.RequireRole(enum.RoleAdmin)(okHandler(t, ""))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}
