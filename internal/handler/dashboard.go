package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cardapio-pos/web/internal/backend"
	"github.com/cardapio-pos/web/internal/enum"
	"github.com/cardapio-pos/web/internal/format"
	"github.com/cardapio-pos/web/internal/middleware"
	"github.com/cardapio-pos/web/internal/nav"
	"github.com/cardapio-pos/web/internal/session"
)

// DashboardHandler serves the aggregated counters view. Figures are
// derived client-side from the loaded lists, never persisted.
type DashboardHandler struct {
	orders   OrderBackend
	menu     MenuBackend
	sessions *session.Manager
	now      func() time.Time
}

func NewDashboardHandler(orders OrderBackend, menu MenuBackend, sessions *session.Manager) *DashboardHandler {
	return &DashboardHandler{orders: orders, menu: menu, sessions: sessions, now: time.Now}
}

// RegisterRoutes registers the dashboard view.
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/views/dashboard", h.View)
}

type dashboardResponse struct {
	Stats          nav.Stats       `json:"stats"`
	RevenueDisplay string          `json:"receitaHojeFormatada"`
	Recent         []orderResponse `json:"ultimosPedidos"`
	UpdatedAt      string          `json:"atualizadoEm"`
}

// View loads orders and menu, computes the figures and the five most
// recent orders. Each role aggregates over the listing it is allowed to
// fetch; the remote controllers are role-gated, so reaching across (a
// waiter polling the kitchen queue, say) would only earn a denial.
func (h *DashboardHandler) View(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	var (
		orders []backend.Order
		err    error
	)
	switch sess.Role {
	case enum.RoleAdmin:
		orders, err = h.orders.ListAll(r.Context(), sess.Token)
	case enum.RoleKitchen:
		orders, err = h.orders.ForKitchen(r.Context(), sess.Token)
	case enum.RoleWaiter:
		orders, err = h.orders.ForWaiter(r.Context(), sess.Token)
	case enum.RoleCustomer:
		orders, err = h.orders.ByCustomer(r.Context(), sess.Token, sess.UserID)
	default:
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "acesso negado"})
		return
	}
	if err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}

	items, err := h.menu.List(r.Context(), sess.Token)
	if err != nil {
		writeBackendError(w, r, h.sessions, err)
		return
	}

	now := h.now()
	stats := nav.BuildStats(orders, items, now)

	recent := orders
	if len(recent) > 5 {
		recent = recent[:5]
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		Stats:          stats,
		RevenueDisplay: format.Currency(stats.RevenueToday),
		Recent:         toOrderResponses(recent),
		UpdatedAt:      now.Format("15:04:05"),
	})
}
