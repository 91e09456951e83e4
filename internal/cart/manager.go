package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cardapio-pos/web/internal/store"
)

const keyPrefix = "cart:"

// Manager persists carts in the local store, one per browser. The cart
// key is deliberately independent of the auth session so the cart
// survives logout and re-login. Every mutation path is load, mutate,
// save; a missing key hydrates as an empty cart.
type Manager struct {
	store store.Store
}

func NewManager(st store.Store) *Manager {
	return &Manager{store: st}
}

// Load rehydrates the browser's cart, or returns an empty one.
func (m *Manager) Load(ctx context.Context, cartID string) (*Cart, error) {
	data, err := m.store.Get(ctx, keyPrefix+cartID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &Cart{}, nil
		}
		return nil, err
	}
	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("cart: decode: %w", err)
	}
	return &c, nil
}

// Save serializes the cart immediately, overwriting the previous state.
func (m *Manager) Save(ctx context.Context, cartID string, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("cart: encode: %w", err)
	}
	return m.store.Set(ctx, keyPrefix+cartID, data)
}

// Clear drops the browser's persisted cart.
func (m *Manager) Clear(ctx context.Context, cartID string) error {
	return m.store.Delete(ctx, keyPrefix+cartID)
}
