package backend

import "github.com/shopspring/decimal"

func init() {
	// The backend reads prices and totals as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// MenuItem is one cardápio entry. Server-owned; this client re-fetches
// per view load and never caches across views.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	Category    string          `json:"categoria"`
	Available   bool            `json:"disponivel"`
	ImageURL    string          `json:"imagemUrl,omitempty"`
	PrepMinutes int             `json:"tempoPreparoMinutos,omitempty"`
}

// Order is a placed order as the backend reports it. CreatedAt stays a
// raw ISO-8601 string; views format it and the dashboard date-matches it
// by prefix.
type Order struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"clienteId"`
	CustomerName string          `json:"clienteNome,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"dataHora"`
	Total        decimal.Decimal `json:"valorTotal"`
	Notes        string          `json:"observacoes,omitempty"`
	Items        []OrderItem     `json:"itens"`
	Table        string          `json:"mesa,omitempty"`
	WaiterID     string          `json:"garcomId,omitempty"`
	WaiterName   string          `json:"garcomNome,omitempty"`
}

// OrderItem snapshots name and unit price at order time; the backend
// keeps them immutable even if the menu item changes later.
type OrderItem struct {
	ID         string          `json:"id"`
	MenuItemID string          `json:"itemCardapioId"`
	ItemName   string          `json:"itemNome"`
	Quantity   int             `json:"quantidade"`
	UnitPrice  decimal.Decimal `json:"precoUnitario"`
	Notes      string          `json:"observacoes,omitempty"`
}

// User is a backend account, managed by admins.
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"nome"`
	Phone  string `json:"telefone,omitempty"`
	Role   string `json:"tipo"`
	Active bool   `json:"ativo"`
}
