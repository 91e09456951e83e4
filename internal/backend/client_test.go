package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cardapio-pos/web/internal/backend"
)

func TestLoginSendsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("login must not carry a token, got %q", got)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["email"] != "ana@example.com" || req["senha"] != "s3cret" {
			t.Errorf("credentials: got %v", req)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "tok-123",
			"tipo":  "Bearer",
			"usuario": map[string]interface{}{
				"id": 7, "nome": "Ana", "email": "ana@example.com", "role": "CLIENTE",
			},
		})
	}))
	defer srv.Close()

	client := backend.New(srv.URL)
	resp, err := client.Auth.Login(context.Background(), backend.LoginRequest{
		Email:    "ana@example.com",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token != "tok-123" {
		t.Errorf("token: got %q, want %q", resp.Token, "tok-123")
	}
	if resp.User.Role != "CLIENTE" || resp.User.Name != "Ana" {
		t.Errorf("user: got %+v", resp.User)
	}
}

func TestBearerTokenAttached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-abc" {
			t.Errorf("authorization header: got %q", got)
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := backend.New(srv.URL)
	if _, err := client.Menu.List(context.Background(), "tok-abc"); err != nil {
		t.Fatalf("list menu: %v", err)
	}
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := backend.New(srv.URL)
	_, err := client.Orders.ForKitchen(context.Background(), "stale")
	if !errors.Is(err, backend.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}

func TestForbiddenIsNotASessionLoss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "Acesso negado"})
	}))
	defer srv.Close()

	client := backend.New(srv.URL)
	_, err := client.Orders.ForKitchen(context.Background(), "tok-live")
	if errors.Is(err, backend.ErrUnauthorized) {
		t.Fatal("a role denial must not invalidate the session")
	}
	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusForbidden || apiErr.Message != "Acesso negado" {
		t.Errorf("got %d %q", apiErr.Status, apiErr.Message)
	}
}

func TestBusinessErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "Pedido deve ter pelo menos um item"})
	}))
	defer srv.Close()

	client := backend.New(srv.URL)
	_, err := client.Orders.Create(context.Background(), "tok", backend.CreateOrderRequest{})

	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got %v, want *APIError", err)
	}
	if apiErr.Message != "Pedido deve ter pelo menos um item" {
		t.Errorf("message: got %q", apiErr.Message)
	}
	if apiErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("status: got %d", apiErr.Status)
	}
}

func TestListAllUnwrapsRawList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"10","status":"PENDENTE","dataHora":"2025-03-01T12:00:00","valorTotal":42.5,"itens":[]}]`))
	}))
	defer srv.Close()

	client := backend.New(srv.URL)
	orders, err := client.Orders.ListAll(context.Background(), "tok")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "10" {
		t.Fatalf("orders: got %+v", orders)
	}
	if orders[0].Total.StringFixed(2) != "42.50" {
		t.Errorf("total: got %s", orders[0].Total)
	}
}

func TestListAllUnwrapsPagedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[{"id":"11","status":"ENTREGUE","dataHora":"2025-03-01T13:00:00","valorTotal":10,"itens":[]},{"id":"12","status":"PRONTO","dataHora":"2025-03-01T14:00:00","valorTotal":20,"itens":[]}],"totalPages":1,"totalElements":2}`))
	}))
	defer srv.Close()

	client := backend.New(srv.URL)
	orders, err := client.Orders.ListAll(context.Background(), "tok")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("orders: got %d, want 2", len(orders))
	}
	if orders[0].ID != "11" || orders[1].ID != "12" {
		t.Errorf("orders: got %+v", orders)
	}
}

func TestUpdateStatusBody(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := backend.New(srv.URL)
	if err := client.Orders.UpdateStatus(context.Background(), "tok", "55", "EM_PREPARO"); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if gotPath != "PATCH /api/cozinha/pedidos/55/status" {
		t.Errorf("request: got %q", gotPath)
	}
	if gotBody["status"] != "EM_PREPARO" {
		t.Errorf("body: got %v", gotBody)
	}
}
