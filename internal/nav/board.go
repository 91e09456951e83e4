package nav

import (
	"sort"

	"github.com/cardapio-pos/web/internal/backend"
	"github.com/cardapio-pos/web/internal/enum"
)

// Board is the kitchen's partition of the loaded orders: the ones being
// worked on, oldest first, and the ones waiting for pickup. Orders in any
// other status are not shown on this board.
type Board struct {
	Active []backend.Order `json:"ativos"`
	Ready  []backend.Order `json:"prontos"`
}

// BuildBoard partitions orders for the kitchen view.
func BuildBoard(orders []backend.Order) Board {
	var board Board
	for _, o := range orders {
		switch o.Status {
		case enum.OrderStatusConfirmed, enum.OrderStatusInPreparation:
			board.Active = append(board.Active, o)
		case enum.OrderStatusReady:
			board.Ready = append(board.Ready, o)
		}
	}

	// Oldest first: the kitchen works the queue in arrival order.
	// ISO-8601 timestamps compare correctly as strings.
	sort.SliceStable(board.Active, func(i, j int) bool {
		return board.Active[i].CreatedAt < board.Active[j].CreatedAt
	})
	return board
}
