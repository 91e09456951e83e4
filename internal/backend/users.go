package backend

import (
	"context"
	"net/http"
	"net/url"
)

// UserService wraps the admin user-management endpoints.
type UserService struct {
	c *Client
}

type CreateUserRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Phone    string `json:"telefone,omitempty"`
	Role     string `json:"tipo"`
}

type UpdateUserRequest struct {
	Name  string `json:"nome,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"telefone,omitempty"`
	Role  string `json:"tipo,omitempty"`
}

// List returns every user account.
func (s *UserService) List(ctx context.Context, token string) ([]User, error) {
	var users []User
	if err := s.c.do(ctx, token, http.MethodGet, "/api/admin/usuarios", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create adds a user account.
func (s *UserService) Create(ctx context.Context, token string, req CreateUserRequest) (*User, error) {
	var user User
	if err := s.c.do(ctx, token, http.MethodPost, "/api/admin/usuarios", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update edits a user account.
func (s *UserService) Update(ctx context.Context, token, id string, req UpdateUserRequest) (*User, error) {
	var user User
	path := "/api/admin/usuarios/" + url.PathEscape(id)
	if err := s.c.do(ctx, token, http.MethodPut, path, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user account.
func (s *UserService) Delete(ctx context.Context, token, id string) error {
	return s.c.do(ctx, token, http.MethodDelete, "/api/admin/usuarios/"+url.PathEscape(id), nil, nil)
}

// ToggleStatus flips a user's active flag.
func (s *UserService) ToggleStatus(ctx context.Context, token, id string) error {
	path := "/api/admin/usuarios/" + url.PathEscape(id) + "/toggle-status"
	return s.c.do(ctx, token, http.MethodPatch, path, nil, nil)
}
