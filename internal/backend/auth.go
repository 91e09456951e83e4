package backend

import (
	"context"
	"net/http"
)

// AuthService wraps the public authentication endpoints. These are the
// only calls issued without a bearer token.
type AuthService struct {
	c *Client
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// LoginUser is the identity block inside a login response. Its id is
// numeric on the wire, unlike every other resource.
type LoginUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tipo"`
	User      LoginUser `json:"usuario"`
}

// RegisterRequest is the partial user object accepted by registration.
type RegisterRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Phone    string `json:"telefone,omitempty"`
}

// Login exchanges credentials for a bearer token.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := s.c.do(ctx, "", http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new customer account.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	if err := s.c.do(ctx, "", http.MethodPost, "/api/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
