package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/comandero/dashboard-gateway/internal/core/domain"
	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// ClientsClient wraps the upstream /api/clientes endpoints. These endpoints
// wrap their payloads in the {success, data} envelope.
type ClientsClient struct {
	c *Client
}

func NewClientsClient(c *Client) *ClientsClient {
	return &ClientsClient{c: c}
}

type clientPayload struct {
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Email     string `json:"email,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

func toClientPayload(input ports.ClientFormInput) clientPayload {
	return clientPayload{
		Nombre:    input.FirstName,
		Apellidos: input.LastName,
		Email:     input.Email,
		Telefono:  input.Phone,
		Direccion: input.Address,
	}
}

func (cc *ClientsClient) List(ctx context.Context, token string) ([]domain.Client, error) {
	var clients []domain.Client
	err := cc.c.do(ctx, request{
		method:    http.MethodGet,
		path:      "/api/clientes",
		token:     token,
		resource:  "clients",
		enveloped: true,
	}, &clients)
	return clients, err
}

func (cc *ClientsClient) GetByID(ctx context.Context, token string, id int64) (*domain.Client, error) {
	var client domain.Client
	err := cc.c.do(ctx, request{
		method:    http.MethodGet,
		path:      fmt.Sprintf("/api/clientes/%d", id),
		token:     token,
		resource:  "clients",
		enveloped: true,
	}, &client)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (cc *ClientsClient) Create(ctx context.Context, token string, input ports.ClientFormInput) (*domain.Client, error) {
	var client domain.Client
	err := cc.c.do(ctx, request{
		method:    http.MethodPost,
		path:      "/api/clientes",
		token:     token,
		body:      toClientPayload(input),
		resource:  "clients",
		enveloped: true,
	}, &client)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (cc *ClientsClient) Update(ctx context.Context, token string, id int64, input ports.ClientFormInput) (*domain.Client, error) {
	var client domain.Client
	err := cc.c.do(ctx, request{
		method:    http.MethodPut,
		path:      fmt.Sprintf("/api/clientes/%d", id),
		token:     token,
		body:      toClientPayload(input),
		resource:  "clients",
		enveloped: true,
	}, &client)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (cc *ClientsClient) Delete(ctx context.Context, token string, id int64) error {
	return cc.c.do(ctx, request{
		method:    http.MethodDelete,
		path:      fmt.Sprintf("/api/clientes/%d", id),
		token:     token,
		resource:  "clients",
		enveloped: true,
	}, nil)
}

func (cc *ClientsClient) Search(ctx context.Context, token, query string) ([]domain.Client, error) {
	var clients []domain.Client
	err := cc.c.do(ctx, request{
		method:    http.MethodGet,
		path:      "/api/clientes/search",
		query:     url.Values{"query": []string{query}},
		token:     token,
		resource:  "clients",
		enveloped: true,
	}, &clients)
	return clients, err
}
