// Package cart implements the shopping-cart aggregation model. Line
// identity is the (item id, notes) pair: adding the same item with the
// same notes merges quantities, different notes stay separate lines.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/cardapio-pos/web/internal/backend"
)

// Line is one (menu item, notes) pairing with its quantity. Item fields
// are snapshotted from the menu at add time.
type Line struct {
	ItemID      string          `json:"id"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	Category    string          `json:"categoria"`
	ImageURL    string          `json:"imagemUrl,omitempty"`
	Quantity    int             `json:"quantidade"`
	Notes       string          `json:"observacoes"`
}

// Cart is the in-memory model; persistence lives in Manager.
type Cart struct {
	Lines []Line `json:"items"`
}

// Add merges quantity into an existing (item id, notes) line or appends a
// new one. Quantity is additive; a non-positive quantity counts as 1.
func (c *Cart) Add(item backend.MenuItem, quantity int, notes string) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Lines {
		if c.Lines[i].ItemID == item.ID && c.Lines[i].Notes == notes {
			c.Lines[i].Quantity += quantity
			return
		}
	}
	c.Lines = append(c.Lines, Line{
		ItemID:      item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		ImageURL:    item.ImageURL,
		Quantity:    quantity,
		Notes:       notes,
	})
}

// Remove deletes every line for the item id, all notes-variants included.
// Broad on purpose: callers that want to drop a single variant must
// rebuild the cart.
func (c *Cart) Remove(itemID string) {
	kept := c.Lines[:0]
	for _, line := range c.Lines {
		if line.ItemID != itemID {
			kept = append(kept, line)
		}
	}
	c.Lines = kept
}

// UpdateQuantity sets the quantity on lines matching the item id. A
// quantity of zero or less removes the lines instead.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.Remove(itemID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines[i].Quantity = quantity
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums price times quantity over each line's own snapshotted
// price. Display rounding happens at render time, never here.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}
