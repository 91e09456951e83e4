package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// OrderService wraps the order endpoints of the four role controllers.
type OrderService struct {
	c *Client
}

// CreateOrderItem is one line of an order being placed. Unit price is the
// cart line's own price at checkout time, not re-fetched.
type CreateOrderItem struct {
	MenuItemID string          `json:"itemCardapioId"`
	Quantity   int             `json:"quantidade"`
	UnitPrice  decimal.Decimal `json:"precoUnitario"`
	Notes      string          `json:"observacoes,omitempty"`
}

type CreateOrderRequest struct {
	Items []CreateOrderItem `json:"itens"`
	Total decimal.Decimal   `json:"valorTotal"`
	Notes string            `json:"observacoes,omitempty"`
	Table string            `json:"mesa,omitempty"`
}

// Create places a new order for the authenticated customer.
func (s *OrderService) Create(ctx context.Context, token string, req CreateOrderRequest) (*Order, error) {
	var order Order
	if err := s.c.do(ctx, token, http.MethodPost, "/api/cliente/pedidos", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListAll returns every order. The endpoint answers with either a raw
// list or a Spring Data page; both shapes are normalized here so callers
// always see a plain slice.
func (s *OrderService) ListAll(ctx context.Context, token string) ([]Order, error) {
	var raw json.RawMessage
	if err := s.c.do(ctx, token, http.MethodGet, "/api/admin/pedidos", nil, &raw); err != nil {
		return nil, err
	}
	return unwrapOrders(raw)
}

// ByCustomer returns one customer's orders.
func (s *OrderService) ByCustomer(ctx context.Context, token, customerID string) ([]Order, error) {
	var orders []Order
	path := "/api/cliente/pedidos/" + url.PathEscape(customerID)
	if err := s.c.do(ctx, token, http.MethodGet, path, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ForKitchen returns the orders the kitchen should see.
func (s *OrderService) ForKitchen(ctx context.Context, token string) ([]Order, error) {
	var orders []Order
	if err := s.c.do(ctx, token, http.MethodGet, "/api/cozinha/pedidos", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ForWaiter returns the orders the waitstaff should see.
func (s *OrderService) ForWaiter(ctx context.Context, token string) ([]Order, error) {
	var orders []Order
	if err := s.c.do(ctx, token, http.MethodGet, "/api/garcom/pedidos", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus advances an order to status.
func (s *OrderService) UpdateStatus(ctx context.Context, token, id, status string) error {
	body := map[string]string{"status": status}
	path := "/api/cozinha/pedidos/" + url.PathEscape(id) + "/status"
	return s.c.do(ctx, token, http.MethodPatch, path, body, nil)
}

// AssignWaiter assigns waitstaff to an order.
func (s *OrderService) AssignWaiter(ctx context.Context, token, orderID, waiterID string) error {
	body := map[string]string{"garcomId": waiterID}
	path := "/api/garcom/pedidos/" + url.PathEscape(orderID) + "/atribuir"
	return s.c.do(ctx, token, http.MethodPatch, path, body, nil)
}

// FinalizeDelivery marks an order as delivered.
func (s *OrderService) FinalizeDelivery(ctx context.Context, token, orderID string) error {
	path := "/api/garcom/pedidos/" + url.PathEscape(orderID) + "/finalizar"
	return s.c.do(ctx, token, http.MethodPatch, path, nil, nil)
}

func unwrapOrders(raw json.RawMessage) ([]Order, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var page struct {
			Content []Order `json:"content"`
		}
		if err := json.Unmarshal(trimmed, &page); err != nil {
			return nil, fmt.Errorf("backend: decode paged orders: %w", err)
		}
		return page.Content, nil
	}
	var orders []Order
	if err := json.Unmarshal(trimmed, &orders); err != nil {
		return nil, fmt.Errorf("backend: decode orders: %w", err)
	}
	return orders, nil
}
