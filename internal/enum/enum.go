package enum

// Order lifecycle, wire values owned by the cardapio backend.
//
// PENDENTE -> CONFIRMADO -> EM_PREPARO -> PRONTO -> ENTREGUE, with
// CANCELADO reachable from the early states. Transition rules live
// server-side; this client only issues the two kitchen advances it is
// shown.

const (
	OrderStatusPending       = "PENDENTE"
	OrderStatusConfirmed     = "CONFIRMADO"
	OrderStatusInPreparation = "EM_PREPARO"
	OrderStatusReady         = "PRONTO"
	OrderStatusDelivered     = "ENTREGUE"
	OrderStatusCancelled     = "CANCELADO"
)

// User roles.

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CLIENTE"
	RoleKitchen  = "COZINHA"
	RoleWaiter   = "GARCOM"
)

// IsValidOrderStatus reports whether s is one of the six order statuses.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusInPreparation,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// IsValidRole reports whether s is one of the four user roles.
func IsValidRole(s string) bool {
	switch s {
	case RoleAdmin, RoleCustomer, RoleKitchen, RoleWaiter:
		return true
	}
	return false
}

var statusLabels = map[string]string{
	OrderStatusPending:       "Pendente",
	OrderStatusConfirmed:     "Confirmado",
	OrderStatusInPreparation: "Em Preparo",
	OrderStatusReady:         "Pronto",
	OrderStatusDelivered:     "Entregue",
	OrderStatusCancelled:     "Cancelado",
}

// StatusLabel returns the badge text for an order status. Unknown values
// are echoed back unchanged.
func StatusLabel(s string) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return s
}
