// Package nav centralizes every role-conditioned decision: which sidebar
// items a role sees, which views it may open, its theme, the forward
// actions the kitchen gets per order status, the kitchen board partition
// and the dashboard figures. Views stay pure functions of (role, data).
package nav

import "github.com/cardapio-pos/web/internal/enum"

// Item is one sidebar entry. IDs double as view names for the
// allowed-view check.
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Theme carries the per-role accent colors the frontend shell applies.
type Theme struct {
	Background string `json:"bg"`
	Active     string `json:"activeItem"`
	Inactive   string `json:"inactiveItem"`
}

var itemsByRole = map[string][]Item{
	enum.RoleAdmin: {
		{ID: "dashboard", Label: "Dashboard", Icon: "home"},
		{ID: "cardapio", Label: "Cardápio", Icon: "menu"},
		{ID: "pedidos", Label: "Pedidos", Icon: "shopping-cart"},
		{ID: "usuarios", Label: "Usuários", Icon: "users"},
		{ID: "relatorios", Label: "Relatórios", Icon: "bar-chart"},
		{ID: "configuracoes", Label: "Configurações", Icon: "settings"},
	},
	enum.RoleCustomer: {
		{ID: "cardapio", Label: "Cardápio", Icon: "menu"},
		{ID: "carrinho", Label: "Carrinho", Icon: "shopping-cart"},
		{ID: "pedidos", Label: "Meus Pedidos", Icon: "shopping-cart"},
	},
	enum.RoleKitchen: {
		{ID: "dashboard", Label: "Dashboard", Icon: "home"},
		{ID: "pedidos", Label: "Pedidos", Icon: "chef-hat"},
		{ID: "cardapio", Label: "Cardápio", Icon: "menu"},
	},
	enum.RoleWaiter: {
		{ID: "dashboard", Label: "Dashboard", Icon: "home"},
		{ID: "pedidos", Label: "Pedidos", Icon: "coffee"},
		{ID: "mesas", Label: "Mesas", Icon: "users"},
		{ID: "cardapio", Label: "Cardápio", Icon: "menu"},
	},
}

var themesByRole = map[string]Theme{
	enum.RoleAdmin:   {Background: "purple-50", Active: "purple-600", Inactive: "purple-700"},
	enum.RoleKitchen: {Background: "orange-50", Active: "orange-600", Inactive: "orange-700"},
	enum.RoleWaiter:  {Background: "blue-50", Active: "blue-600", Inactive: "blue-700"},
}

// defaultTheme is the customer palette, also used for unknown roles.
var defaultTheme = Theme{Background: "green-50", Active: "green-600", Inactive: "green-700"}

// ItemsFor returns the ordered navigation items for a role. Unknown or
// empty roles get an empty list.
func ItemsFor(role string) []Item {
	items, ok := itemsByRole[role]
	if !ok {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Allowed reports whether a role may open the named view.
func Allowed(role, view string) bool {
	for _, item := range itemsByRole[role] {
		if item.ID == view {
			return true
		}
	}
	return false
}

// ThemeFor returns the role's theme colors.
func ThemeFor(role string) Theme {
	if theme, ok := themesByRole[role]; ok {
		return theme
	}
	return defaultTheme
}
