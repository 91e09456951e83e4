package nav

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cardapio-pos/web/internal/backend"
	"github.com/cardapio-pos/web/internal/enum"
)

// Stats are the dashboard figures derived from whatever orders and menu
// items are currently loaded. Nothing here is persisted; every load
// recomputes from scratch.
type Stats struct {
	OrdersToday    int             `json:"pedidosHoje"`
	Pending        int             `json:"pedidosPendentes"`
	InProgress     int             `json:"pedidosEmAndamento"`
	DeliveredToday int             `json:"pedidosEntregues"`
	RevenueToday   decimal.Decimal `json:"receitaHoje"`
	ItemsAvailable int             `json:"itensDisponiveis"`
	ItemsTotal     int             `json:"totalItens"`
}

// BuildStats computes the dashboard figures. "Today" is a string-prefix
// match of the order's ISO timestamp against now's local date. Pending
// and in-progress count over all loaded orders; delivered count and
// revenue only over today's, and revenue only over delivered ones.
func BuildStats(orders []backend.Order, items []backend.MenuItem, now time.Time) Stats {
	stats := Stats{RevenueToday: decimal.Zero}
	today := now.Format("2006-01-02")

	for _, o := range orders {
		isToday := strings.HasPrefix(o.CreatedAt, today)
		if isToday {
			stats.OrdersToday++
		}
		switch o.Status {
		case enum.OrderStatusPending:
			stats.Pending++
		case enum.OrderStatusConfirmed, enum.OrderStatusInPreparation:
			stats.InProgress++
		case enum.OrderStatusDelivered:
			if isToday {
				stats.DeliveredToday++
				stats.RevenueToday = stats.RevenueToday.Add(o.Total)
			}
		}
	}

	stats.ItemsTotal = len(items)
	for _, item := range items {
		if item.Available {
			stats.ItemsAvailable++
		}
	}
	return stats
}
