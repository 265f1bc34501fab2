package upstream

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/comandero/dashboard-gateway/internal/core/domain"
	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// AuthClient wraps the upstream authentication endpoints.
type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

type loginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// loginResponse mirrors the upstream payload. The display name arrives as
// nombre on some deployments and username on others; roles come in either of
// the shapes domain.RoleClaim tolerates.
type loginResponse struct {
	AccessToken string             `json:"accessToken"`
	TokenType   string             `json:"tokenType,omitempty"`
	ID          int64              `json:"id"`
	Username    string             `json:"username,omitempty"`
	Nombre      string             `json:"nombre,omitempty"`
	Roles       []domain.RoleClaim `json:"roles,omitempty"`
}

func (a *AuthClient) Login(ctx context.Context, usernameOrEmail, password string) (*ports.LoginResult, error) {
	var resp loginResponse
	err := a.c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/api/auth/login",
		body:     loginRequest{UsernameOrEmail: usernameOrEmail, Password: password},
		resource: "auth",
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("login response missing access token: %w", domain.ErrUpstream)
	}

	return &ports.LoginResult{
		AccessToken: resp.AccessToken,
		ID:          resp.ID,
		Username:    resp.Username,
		Nombre:      resp.Nombre,
		Roles:       resp.Roles,
	}, nil
}

func (a *AuthClient) Logout(ctx context.Context, token string) error {
	return a.c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/api/auth/logout",
		token:    token,
		resource: "auth",
	}, nil)
}

type meResponse struct {
	ID     int64              `json:"id"`
	Nombre string             `json:"nombre,omitempty"`
	Email  string             `json:"email,omitempty"`
	Roles  []domain.RoleClaim `json:"roles,omitempty"`
}

func (a *AuthClient) Me(ctx context.Context, token string) (*domain.User, error) {
	var resp meResponse
	err := a.c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/auth/me",
		token:    token,
		resource: "auth",
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		ID:    strconv.FormatInt(resp.ID, 10),
		Name:  resp.Nombre,
		Email: resp.Email,
		Role:  domain.ResolveRole(resp.Roles),
	}, nil
}
