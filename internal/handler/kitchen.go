package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardapio-pos/web/internal/backend"
	"github.com/cardapio-pos/web/internal/enum"
	"github.com/cardapio-pos/web/internal/middleware"
	"github.com/cardapio-pos/web/internal/nav"
	"github.com/cardapio-pos/web/internal/session"
)

// KitchenBackend is the slice of the remote client the kitchen board
// needs. Satisfied by *backend.OrderService.
type KitchenBackend interface {
	ForKitchen(ctx context.Context, token string) ([]backend.Order, error)
	UpdateStatus(ctx context.Context, token, id, status string) error
}

// KitchenHandler serves the kitchen order board and the two forward
// status advances it exposes.
type KitchenHandler struct {
	orders   KitchenBackend
	sessions *session.Manager
}

func NewKitchenHandler(orders KitchenBackend, sessions *session.Manager) *KitchenHandler {
	return &KitchenHandler{orders: orders, sessions: sessions}
}

// RegisterRoutes registers the kitchen endpoints (kitchen/admin subtree).
func (h *KitchenHandler) RegisterRoutes(r chi.Router) {
	r.Get("/views/cozinha", h.Board)
	r.Patch("/cozinha/pedidos/{id}/status", h.UpdateStatus)
}

// --- Response types ---

type boardOrderResponse struct {
	orderResponse
	Actions []nav.Action `json:"acoes"`
}

type boardResponse struct {
	Active []boardOrderResponse `json:"ativos"`
	Ready  []boardOrderResponse `json:"prontos"`
}

func toBoardResponse(board nav.Board) boardResponse {
	return boardResponse{
		Active: toBoardOrders(board.Active),
		Ready:  toBoardOrders(board.Ready),
	}
}

func toBoardOrders(orders []backend.Order) []boardOrderResponse {
	resp := make([]boardOrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = boardOrderResponse{
			orderResponse: toOrderResponse(o),
			Actions:       nav.ActionsFor(o.Status),
		}
	}
	return resp
}

// --- Handlers ---

// Board partitions the kitchen's loaded orders into active (oldest first)
// and ready buckets; every other status stays off this board.
func (h *KitchenHandler) Board(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	orders, err := h.orders.ForKitchen(r.Context(), sess.Token)
	if err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}
	writeJSON(w, http.StatusOK, toBoardResponse(nav.BuildBoard(orders)))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus forwards a kitchen advance. Only transitions this board
// actually offers are accepted; everything else the server may allow is
// its own business.
func (h *KitchenHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "requisição inválida"})
		return
	}
	if req.Status == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "status é obrigatório"})
		return
	}
	if !enum.IsValidOrderStatus(req.Status) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "status inválido"})
		return
	}
	if req.Status != enum.OrderStatusInPreparation && req.Status != enum.OrderStatusReady {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "transição não permitida pela cozinha"})
		return
	}

	sess := middleware.SessionFromContext(r.Context())
	if err := h.orders.UpdateStatus(r.Context(), sess.Token, chi.URLParam(r, "id"), req.Status); err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
