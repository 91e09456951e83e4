package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cardapio-pos/web/internal/backend"
	"github.com/cardapio-pos/web/internal/cart"
	"github.com/cardapio-pos/web/internal/format"
	"github.com/cardapio-pos/web/internal/middleware"
	"github.com/cardapio-pos/web/internal/session"
)

// CheckoutBackend is the slice of the remote client needed at checkout.
// Satisfied by *backend.OrderService.
type CheckoutBackend interface {
	Create(ctx context.Context, token string, req backend.CreateOrderRequest) (*backend.Order, error)
}

// CartHandler owns the customer's cart view and its mutations. Every
// mutation is load, change, save against the local store.
type CartHandler struct {
	carts    *cart.Manager
	orders   CheckoutBackend
	sessions *session.Manager
}

func NewCartHandler(carts *cart.Manager, orders CheckoutBackend, sessions *session.Manager) *CartHandler {
	return &CartHandler{carts: carts, orders: orders, sessions: sessions}
}

// RegisterRoutes registers the cart endpoints (customer subtree).
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Get("/views/carrinho", h.View)
	r.Post("/carrinho/itens", h.AddItem)
	r.Patch("/carrinho/itens/{id}", h.UpdateQuantity)
	r.Delete("/carrinho/itens/{id}", h.RemoveItem)
	r.Delete("/carrinho", h.Clear)
	r.Post("/carrinho/checkout", h.Checkout)
}

// --- Request / Response types ---

type addItemRequest struct {
	Item     backend.MenuItem `json:"item"`
	Quantity int              `json:"quantidade"`
	Notes    string           `json:"observacoes"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantidade"`
}

type checkoutRequest struct {
	Table string `json:"mesa"`
	Notes string `json:"observacoes"`
}

type cartLineResponse struct {
	cart.Line
	Subtotal string `json:"subtotal"`
}

type cartResponse struct {
	Items        []cartLineResponse `json:"items"`
	TotalItems   int                `json:"totalItens"`
	Total        string             `json:"valorTotal"`
	TotalDisplay string             `json:"valorTotalFormatado"`
}

func toCartResponse(c *cart.Cart) cartResponse {
	resp := cartResponse{
		Items:        make([]cartLineResponse, len(c.Lines)),
		TotalItems:   c.TotalItems(),
		Total:        c.TotalPrice().StringFixed(2),
		TotalDisplay: format.Currency(c.TotalPrice()),
	}
	for i, line := range c.Lines {
		subtotal := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		resp.Items[i] = cartLineResponse{
			Line:     line,
			Subtotal: format.Currency(subtotal),
		}
	}
	return resp
}

// --- Handlers ---

// View renders the current cart.
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	c, _, ok := h.loadCart(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(c))
}

// AddItem merges an item into the cart. The item payload is the caller's
// loaded menu entry; its fields are snapshotted into the line.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "requisição inválida"})
		return
	}
	if req.Item.ID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "item é obrigatório"})
		return
	}

	h.mutate(w, r, func(c *cart.Cart) {
		c.Add(req.Item, req.Quantity, req.Notes)
	})
}

// UpdateQuantity sets a line's quantity; zero or less removes the item.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "requisição inválida"})
		return
	}

	h.mutate(w, r, func(c *cart.Cart) {
		c.UpdateQuantity(chi.URLParam(r, "id"), req.Quantity)
	})
}

// RemoveItem drops every line for the item id, all notes-variants.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(c *cart.Cart) {
		c.Remove(chi.URLParam(r, "id"))
	})
}

// Clear empties the cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(c *cart.Cart) {
		c.Clear()
	})
}

// Checkout turns the cart into a backend order and clears it on success.
// A failed checkout leaves the cart untouched.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "requisição inválida"})
		return
	}

	c, cartID, ok := h.loadCart(w, r)
	if !ok {
		return
	}
	if len(c.Lines) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "carrinho vazio"})
		return
	}

	order := backend.CreateOrderRequest{
		Items: make([]backend.CreateOrderItem, len(c.Lines)),
		Total: c.TotalPrice(),
		Notes: req.Notes,
		Table: req.Table,
	}
	if order.Notes == "" {
		order.Notes = "Pedido feito pelo sistema web"
	}
	for i, line := range c.Lines {
		order.Items[i] = backend.CreateOrderItem{
			MenuItemID: line.ItemID,
			Quantity:   line.Quantity,
			UnitPrice:  line.Price,
			Notes:      line.Notes,
		}
	}

	sess := middleware.SessionFromContext(r.Context())
	created, err := h.orders.Create(r.Context(), sess.Token, order)
	if err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}

	if err := h.carts.Clear(r.Context(), cartID); err != nil {
		// The order is already placed; a stale cart is an annoyance,
		// not a failure.
		log.Printf("ERROR: clear cart after checkout: %v", err)
	}
	writeJSON(w, http.StatusCreated, created)
}

// --- Helpers ---

// mutate runs fn over the loaded cart and persists the result.
func (h *CartHandler) mutate(w http.ResponseWriter, r *http.Request, fn func(*cart.Cart)) {
	c, cartID, ok := h.loadCart(w, r)
	if !ok {
		return
	}

	fn(c)

	if err := h.carts.Save(r.Context(), cartID, c); err != nil {
		log.Printf("ERROR: save cart: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "erro interno"})
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(c))
}

// loadCart resolves the browser's cart cookie (minting one if absent)
// and hydrates the cart from the store.
func (h *CartHandler) loadCart(w http.ResponseWriter, r *http.Request) (*cart.Cart, string, bool) {
	cartID := ""
	if cookie, err := r.Cookie(cartCookieName); err == nil && cookie.Value != "" {
		cartID = cookie.Value
	} else {
		cartID = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     cartCookieName,
			Value:    cartID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   60 * 60 * 24 * 365,
		})
	}

	c, err := h.carts.Load(r.Context(), cartID)
	if err != nil {
		log.Printf("ERROR: load cart: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "erro interno"})
		return nil, "", false
	}
	return c, cartID, true
}
