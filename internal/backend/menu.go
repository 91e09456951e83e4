package backend

import (
	"context"
	"net/http"
	"net/url"
)

// MenuService wraps the cardápio endpoints. Listing is open to every
// authenticated role; mutations are admin-only server-side.
type MenuService struct {
	c *Client
}

// List returns every menu item.
func (s *MenuService) List(ctx context.Context, token string) ([]MenuItem, error) {
	var items []MenuItem
	if err := s.c.do(ctx, token, http.MethodGet, "/api/admin/cardapio", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ByCategory returns the items of one category.
func (s *MenuService) ByCategory(ctx context.Context, token, category string) ([]MenuItem, error) {
	var items []MenuItem
	path := "/api/menu/categoria/" + url.PathEscape(category)
	if err := s.c.do(ctx, token, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create adds a menu item.
func (s *MenuService) Create(ctx context.Context, token string, item MenuItem) (*MenuItem, error) {
	var created MenuItem
	if err := s.c.do(ctx, token, http.MethodPost, "/api/admin/cardapio", item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a menu item.
func (s *MenuService) Update(ctx context.Context, token, id string, item MenuItem) (*MenuItem, error) {
	var updated MenuItem
	path := "/api/admin/cardapio/" + url.PathEscape(id)
	if err := s.c.do(ctx, token, http.MethodPut, path, item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a menu item.
func (s *MenuService) Delete(ctx context.Context, token, id string) error {
	return s.c.do(ctx, token, http.MethodDelete, "/api/admin/cardapio/"+url.PathEscape(id), nil, nil)
}
