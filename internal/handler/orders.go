package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardapio-pos/web/internal/backend"
	"github.com/cardapio-pos/web/internal/enum"
	"github.com/cardapio-pos/web/internal/format"
	"github.com/cardapio-pos/web/internal/middleware"
	"github.com/cardapio-pos/web/internal/session"
)

// OrderBackend is the slice of the remote client shared by the order
// views. Satisfied by *backend.OrderService.
type OrderBackend interface {
	ListAll(ctx context.Context, token string) ([]backend.Order, error)
	ByCustomer(ctx context.Context, token, customerID string) ([]backend.Order, error)
	ForKitchen(ctx context.Context, token string) ([]backend.Order, error)
	ForWaiter(ctx context.Context, token string) ([]backend.Order, error)
}

// OrdersHandler serves the "pedidos" tab every role has; the listing
// source depends on the role.
type OrdersHandler struct {
	orders   OrderBackend
	sessions *session.Manager
}

func NewOrdersHandler(orders OrderBackend, sessions *session.Manager) *OrdersHandler {
	return &OrdersHandler{orders: orders, sessions: sessions}
}

// RegisterRoutes registers the shared orders view.
func (h *OrdersHandler) RegisterRoutes(r chi.Router) {
	r.Get("/views/pedidos", h.List)
}

// --- Response types ---

type orderItemResponse struct {
	backend.OrderItem
	UnitPriceDisplay string `json:"precoUnitarioFormatado"`
}

type orderResponse struct {
	ID           string              `json:"id"`
	ShortID      string              `json:"idCurto"`
	CustomerName string              `json:"clienteNome,omitempty"`
	Status       string              `json:"status"`
	StatusLabel  string              `json:"statusLabel"`
	CreatedAt    string              `json:"dataHora"`
	CreatedAtFmt string              `json:"dataHoraFormatada"`
	Total        string              `json:"valorTotal"`
	TotalDisplay string              `json:"valorTotalFormatado"`
	Notes        string              `json:"observacoes,omitempty"`
	Table        string              `json:"mesa,omitempty"`
	WaiterName   string              `json:"garcomNome,omitempty"`
	Items        []orderItemResponse `json:"itens"`
}

func toOrderResponse(o backend.Order) orderResponse {
	resp := orderResponse{
		ID:           o.ID,
		ShortID:      shortID(o.ID),
		CustomerName: o.CustomerName,
		Status:       o.Status,
		StatusLabel:  enum.StatusLabel(o.Status),
		CreatedAt:    o.CreatedAt,
		CreatedAtFmt: format.DateTime(o.CreatedAt),
		Total:        o.Total.StringFixed(2),
		TotalDisplay: format.Currency(o.Total),
		Notes:        o.Notes,
		Table:        o.Table,
		WaiterName:   o.WaiterName,
		Items:        make([]orderItemResponse, len(o.Items)),
	}
	for i, item := range o.Items {
		resp.Items[i] = orderItemResponse{
			OrderItem:        item,
			UnitPriceDisplay: format.Currency(item.UnitPrice),
		}
	}
	return resp
}

func toOrderResponses(orders []backend.Order) []orderResponse {
	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toOrderResponse(o)
	}
	return resp
}

// shortID is the last six characters, the way order cards are titled.
func shortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}

// --- Handlers ---

// List returns the orders for the session's role: admins see everything,
// customers their own, kitchen and waitstaff their queues.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	var (
		orders []backend.Order
		err    error
	)
	switch sess.Role {
	case enum.RoleAdmin:
		orders, err = h.orders.ListAll(r.Context(), sess.Token)
	case enum.RoleCustomer:
		orders, err = h.orders.ByCustomer(r.Context(), sess.Token, sess.UserID)
	case enum.RoleKitchen:
		orders, err = h.orders.ForKitchen(r.Context(), sess.Token)
	case enum.RoleWaiter:
		orders, err = h.orders.ForWaiter(r.Context(), sess.Token)
	default:
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "acesso negado"})
		return
	}
	if err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponses(orders))
}
