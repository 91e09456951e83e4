package nav_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardapio-pos/web/internal/backend"
	"github.com/cardapio-pos/web/internal/enum"
	"github.com/cardapio-pos/web/internal/nav"
)

func TestItemsPerRole(t *testing.T) {
	cases := map[string]int{
		enum.RoleAdmin:    6,
		enum.RoleCustomer: 3,
		enum.RoleKitchen:  3,
		enum.RoleWaiter:   4,
	}
	for role, want := range cases {
		assert.Len(t, nav.ItemsFor(role), want, "role %s", role)
	}
}

func TestItemsForUnknownRole(t *testing.T) {
	assert.Empty(t, nav.ItemsFor("SUPORTE"))
	assert.Empty(t, nav.ItemsFor(""))
}

func TestItemsForReturnsCopy(t *testing.T) {
	items := nav.ItemsFor(enum.RoleAdmin)
	items[0].Label = "mutated"
	assert.Equal(t, "Dashboard", nav.ItemsFor(enum.RoleAdmin)[0].Label)
}

func TestAllowed(t *testing.T) {
	assert.True(t, nav.Allowed(enum.RoleCustomer, "carrinho"))
	assert.False(t, nav.Allowed(enum.RoleKitchen, "carrinho"))
	assert.False(t, nav.Allowed(enum.RoleCustomer, "usuarios"))
	assert.False(t, nav.Allowed("", "dashboard"))
}

func TestThemeFor(t *testing.T) {
	assert.Equal(t, "purple-50", nav.ThemeFor(enum.RoleAdmin).Background)
	assert.Equal(t, "green-50", nav.ThemeFor(enum.RoleCustomer).Background)
	assert.Equal(t, "green-50", nav.ThemeFor("???").Background)
}

func TestActionsFor(t *testing.T) {
	confirmed := nav.ActionsFor(enum.OrderStatusConfirmed)
	require.Len(t, confirmed, 1)
	assert.Equal(t, enum.OrderStatusInPreparation, confirmed[0].Target)

	preparing := nav.ActionsFor(enum.OrderStatusInPreparation)
	require.Len(t, preparing, 1)
	assert.Equal(t, enum.OrderStatusReady, preparing[0].Target)

	for _, status := range []string{
		enum.OrderStatusPending,
		enum.OrderStatusReady,
		enum.OrderStatusDelivered,
		enum.OrderStatusCancelled,
	} {
		assert.Empty(t, nav.ActionsFor(status), "status %s", status)
	}
}

func order(id, status, createdAt string, total string) backend.Order {
	return backend.Order{
		ID:        id,
		Status:    status,
		CreatedAt: createdAt,
		Total:     decimal.RequireFromString(total),
	}
}

func TestBuildBoardPartition(t *testing.T) {
	orders := []backend.Order{
		order("1", enum.OrderStatusPending, "2025-03-01T10:00:00", "10"),
		order("2", enum.OrderStatusConfirmed, "2025-03-01T11:30:00", "20"),
		order("3", enum.OrderStatusInPreparation, "2025-03-01T10:15:00", "30"),
		order("4", enum.OrderStatusReady, "2025-03-01T09:00:00", "40"),
		order("5", enum.OrderStatusDelivered, "2025-03-01T08:00:00", "50"),
		order("6", enum.OrderStatusCancelled, "2025-03-01T07:00:00", "60"),
	}

	board := nav.BuildBoard(orders)

	require.Len(t, board.Active, 2)
	// Oldest first.
	assert.Equal(t, "3", board.Active[0].ID)
	assert.Equal(t, "2", board.Active[1].ID)

	require.Len(t, board.Ready, 1)
	assert.Equal(t, "4", board.Ready[0].ID)
}

func TestBuildStats(t *testing.T) {
	now := time.Date(2025, 3, 1, 18, 0, 0, 0, time.Local)

	orders := []backend.Order{
		order("1", enum.OrderStatusDelivered, "2025-03-01T12:00:00", "50"),
		order("2", enum.OrderStatusDelivered, "2025-03-01T13:00:00", "30"),
		order("3", enum.OrderStatusPending, "2025-03-01T14:00:00", "20"),
		order("4", enum.OrderStatusConfirmed, "2025-03-01T15:00:00", "15"),
		order("5", enum.OrderStatusInPreparation, "2025-02-28T15:00:00", "12"),
		// Delivered yesterday: neither counted nor summed.
		order("6", enum.OrderStatusDelivered, "2025-02-28T20:00:00", "99"),
	}
	items := []backend.MenuItem{
		{ID: "a", Available: true},
		{ID: "b", Available: false},
		{ID: "c", Available: true},
	}

	stats := nav.BuildStats(orders, items, now)

	assert.Equal(t, 4, stats.OrdersToday)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 2, stats.InProgress)
	assert.Equal(t, 2, stats.DeliveredToday)
	assert.Equal(t, "80.00", stats.RevenueToday.StringFixed(2), "revenue counts delivered-today only")
	assert.Equal(t, 2, stats.ItemsAvailable)
	assert.Equal(t, 3, stats.ItemsTotal)
}

func TestBuildStatsEmpty(t *testing.T) {
	stats := nav.BuildStats(nil, nil, time.Now())
	assert.Zero(t, stats.OrdersToday)
	assert.True(t, stats.RevenueToday.IsZero())
}
