package nav

import "github.com/cardapio-pos/web/internal/enum"

// Action is one forward status transition offered to kitchen staff.
type Action struct {
	Label  string `json:"label"`
	Target string `json:"status"`
	Color  string `json:"color"`
}

// ActionsFor returns the legal forward actions for an order status as
// seen from the kitchen board. Only the two mid-lifecycle advances are
// ever offered; every other status is terminal from this view.
func ActionsFor(status string) []Action {
	switch status {
	case enum.OrderStatusConfirmed:
		return []Action{{Label: "Iniciar Preparo", Target: enum.OrderStatusInPreparation, Color: "orange-600"}}
	case enum.OrderStatusInPreparation:
		return []Action{{Label: "Marcar como Pronto", Target: enum.OrderStatusReady, Color: "purple-600"}}
	}
	return nil
}
