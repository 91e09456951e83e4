package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/cardapio-pos/web/internal/backend"
	"github.com/cardapio-pos/web/internal/enum"
	"github.com/cardapio-pos/web/internal/middleware"
	"github.com/cardapio-pos/web/internal/session"
)

// WaiterBackend is the slice of the remote client the waitstaff board
// needs. Satisfied by *backend.OrderService.
type WaiterBackend interface {
	ForWaiter(ctx context.Context, token string) ([]backend.Order, error)
	AssignWaiter(ctx context.Context, token, orderID, waiterID string) error
	FinalizeDelivery(ctx context.Context, token, orderID string) error
}

// WaiterHandler serves the waitstaff board, the assign/finalize actions
// and the per-table menu QR code.
type WaiterHandler struct {
	orders    WaiterBackend
	sessions  *session.Manager
	publicURL string
}

func NewWaiterHandler(orders WaiterBackend, sessions *session.Manager, publicURL string) *WaiterHandler {
	return &WaiterHandler{orders: orders, sessions: sessions, publicURL: publicURL}
}

// RegisterRoutes registers the waitstaff endpoints (waiter/admin subtree).
func (h *WaiterHandler) RegisterRoutes(r chi.Router) {
	r.Get("/views/garcom", h.Board)
	r.Patch("/garcom/pedidos/{id}/atribuir", h.Assign)
	r.Patch("/garcom/pedidos/{id}/finalizar", h.Finalize)
	r.Get("/garcom/mesas/{mesa}/qrcode", h.TableQR)
}

type waiterBoardResponse struct {
	// Ready for delivery, any waiter may pick them up.
	Ready []orderResponse `json:"prontos"`
	// Already assigned to the requesting waiter.
	Mine []orderResponse `json:"meus"`
}

// Board splits the waitstaff queue into orders ready for pickup and the
// ones already assigned to the requesting waiter.
func (h *WaiterHandler) Board(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	orders, err := h.orders.ForWaiter(r.Context(), sess.Token)
	if err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}

	var resp waiterBoardResponse
	for _, o := range orders {
		switch {
		case o.WaiterID == sess.UserID && o.WaiterID != "":
			resp.Mine = append(resp.Mine, toOrderResponse(o))
		case o.Status == enum.OrderStatusReady:
			resp.Ready = append(resp.Ready, toOrderResponse(o))
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Assign claims an order for the requesting waiter.
func (h *WaiterHandler) Assign(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if err := h.orders.AssignWaiter(r.Context(), sess.Token, chi.URLParam(r, "id"), sess.UserID); err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Finalize marks an order as delivered.
func (h *WaiterHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if err := h.orders.FinalizeDelivery(r.Context(), sess.Token, chi.URLParam(r, "id")); err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// TableQR renders a QR code PNG pointing at the customer menu with the
// table number pre-filled, for printing on the table.
func (h *WaiterHandler) TableQR(w http.ResponseWriter, r *http.Request) {
	mesa := chi.URLParam(r, "mesa")
	if mesa == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "mesa é obrigatória"})
		return
	}

	png, err := qrcode.Encode(h.publicURL+"/cardapio?mesa="+mesa, qrcode.Medium, 256)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "erro interno"})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
