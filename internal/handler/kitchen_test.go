package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/cardapio-pos/web/internal/backend"
	"github.com/cardapio-pos/web/internal/handler"
	"github.com/cardapio-pos/web/internal/session"
	"github.com/cardapio-pos/web/internal/store"
)

type mockKitchenBackend struct {
	orders    []backend.Order
	fetchErr  error
	updateErr error
	gotID     string
	gotStatus string
	updates   int
}

func (m *mockKitchenBackend) ForKitchen(_ context.Context, token string) ([]backend.Order, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.orders, nil
}

func (m *mockKitchenBackend) UpdateStatus(_ context.Context, token, id, status string) error {
	m.updates++
	m.gotID = id
	m.gotStatus = status
	return m.updateErr
}

func setupKitchenRouter(t *testing.T, api *mockKitchenBackend) (http.Handler, *session.Manager, *session.Session) {
	t.Helper()
	st, err := store.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	sessions := session.NewManager(st)
	sess, err := sessions.Create(context.Background(), "tok-kitchen", "COZINHA", "Chef", "3")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	h := handler.NewKitchenHandler(api, sessions)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return withSession(r, sess), sessions, sess
}

func kitchenOrder(id, status, createdAt string) backend.Order {
	return backend.Order{
		ID:        id,
		Status:    status,
		CreatedAt: createdAt,
		Total:     decimal.RequireFromString("30.00"),
	}
}

func TestKitchenBoardPartition(t *testing.T) {
	api := &mockKitchenBackend{orders: []backend.Order{
		kitchenOrder("o-newer", "CONFIRMADO", "2026-08-29T12:30:00"),
		kitchenOrder("o-ready", "PRONTO", "2026-08-29T11:00:00"),
		kitchenOrder("o-older", "EM_PREPARO", "2026-08-29T10:15:00"),
		kitchenOrder("o-done", "ENTREGUE", "2026-08-29T09:00:00"),
	}}
	router, _, _ := setupKitchenRouter(t, api)

	rr := doRequest(t, router, "GET", "/views/cozinha", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d; body: %s", rr.Code, rr.Body.String())
	}
	resp := decodeResponse(t, rr)

	active := resp["ativos"].([]interface{})
	if len(active) != 2 {
		t.Fatalf("active: got %d, want 2", len(active))
	}
	first := active[0].(map[string]interface{})
	if first["id"] != "o-older" {
		t.Errorf("active ordering: oldest first, got %v", first["id"])
	}
	actions := first["acoes"].([]interface{})
	if len(actions) != 1 {
		t.Fatalf("actions for EM_PREPARO: got %d, want 1", len(actions))
	}
	if a := actions[0].(map[string]interface{}); a["status"] != "PRONTO" {
		t.Errorf("action target: got %v, want PRONTO", a["status"])
	}

	ready := resp["prontos"].([]interface{})
	if len(ready) != 1 {
		t.Fatalf("ready: got %d, want 1", len(ready))
	}
	if r0 := ready[0].(map[string]interface{}); r0["id"] != "o-ready" {
		t.Errorf("ready bucket: got %v", r0["id"])
	}
}

func TestKitchenUpdateStatusForwards(t *testing.T) {
	api := &mockKitchenBackend{}
	router, _, _ := setupKitchenRouter(t, api)

	rr := doRequest(t, router, "PATCH", "/cozinha/pedidos/o1/status", map[string]string{"status": "EM_PREPARO"})

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d; body: %s", rr.Code, rr.Body.String())
	}
	if api.gotID != "o1" || api.gotStatus != "EM_PREPARO" {
		t.Errorf("forwarded update: got (%q, %q)", api.gotID, api.gotStatus)
	}
}

func TestKitchenUpdateStatusValidation(t *testing.T) {
	cases := []struct {
		name   string
		status string
	}{
		{"missing", ""},
		{"unknown value", "QUEIMADO"},
		{"not a kitchen transition", "ENTREGUE"},
		{"cancel is not a kitchen move", "CANCELADO"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &mockKitchenBackend{}
			router, _, _ := setupKitchenRouter(t, api)

			rr := doRequest(t, router, "PATCH", "/cozinha/pedidos/o1/status", map[string]string{"status": tc.status})

			if rr.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
			}
			if api.updates != 0 {
				t.Error("rejected status must not reach the backend")
			}
		})
	}
}

func TestKitchenBoardExpiredTokenDestroysSession(t *testing.T) {
	api := &mockKitchenBackend{fetchErr: backend.ErrUnauthorized}
	router, sessions, sess := setupKitchenRouter(t, api)

	rr := doRequest(t, router, "GET", "/views/cozinha", nil)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
	if _, err := sessions.Get(context.Background(), sess.ID); err == nil {
		t.Error("session should be destroyed after authorization rejection")
	}
}
