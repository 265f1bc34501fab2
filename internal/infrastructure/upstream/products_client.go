package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/comandero/dashboard-gateway/internal/core/domain"
	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// ProductsClient wraps the upstream /api/productos endpoints. Unlike the
// clients endpoints these return their payload directly, without the envelope.
type ProductsClient struct {
	c *Client
}

func NewProductsClient(c *Client) *ProductsClient {
	return &ProductsClient{c: c}
}

type productPayload struct {
	Nombre          string  `json:"nombre"`
	Descripcion     string  `json:"descripcion,omitempty"`
	Precio          float64 `json:"precio"`
	ImagenURL       string  `json:"imagenUrl,omitempty"`
	Categoria       string  `json:"categoria"`
	StockDisponible int     `json:"stockDisponible"`
	EstaActivo      bool    `json:"estaActivo"`
}

func toProductPayload(input ports.ProductFormInput) productPayload {
	return productPayload{
		Nombre:          input.Name,
		Descripcion:     input.Description,
		Precio:          input.Price,
		ImagenURL:       input.ImageURL,
		Categoria:       input.Category,
		StockDisponible: input.Stock,
		EstaActivo:      input.Active,
	}
}

func (pc *ProductsClient) List(ctx context.Context, token string) ([]domain.Product, error) {
	var products []domain.Product
	err := pc.c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/productos",
		token:    token,
		resource: "products",
	}, &products)
	return products, err
}

func (pc *ProductsClient) ListAll(ctx context.Context, token string) ([]domain.Product, error) {
	var products []domain.Product
	err := pc.c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/productos/admin/all",
		token:    token,
		resource: "products",
	}, &products)
	return products, err
}

func (pc *ProductsClient) GetByID(ctx context.Context, token string, id int64) (*domain.Product, error) {
	var product domain.Product
	err := pc.c.do(ctx, request{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/api/productos/%d", id),
		token:    token,
		resource: "products",
	}, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (pc *ProductsClient) Create(ctx context.Context, token string, input ports.ProductFormInput) (*domain.Product, error) {
	var product domain.Product
	err := pc.c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/api/productos",
		token:    token,
		body:     toProductPayload(input),
		resource: "products",
	}, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (pc *ProductsClient) Update(ctx context.Context, token string, id int64, input ports.ProductFormInput) (*domain.Product, error) {
	var product domain.Product
	err := pc.c.do(ctx, request{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/api/productos/%d", id),
		token:    token,
		body:     toProductPayload(input),
		resource: "products",
	}, &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (pc *ProductsClient) Delete(ctx context.Context, token string, id int64) error {
	return pc.c.do(ctx, request{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/api/productos/%d", id),
		token:    token,
		resource: "products",
	}, nil)
}

func (pc *ProductsClient) Search(ctx context.Context, token, query string) ([]domain.Product, error) {
	var products []domain.Product
	err := pc.c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/productos/search",
		query:    url.Values{"query": []string{query}},
		token:    token,
		resource: "products",
	}, &products)
	return products, err
}

func (pc *ProductsClient) ByCategory(ctx context.Context, token, category string) ([]domain.Product, error) {
	var products []domain.Product
	err := pc.c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/productos/categoria/" + url.PathEscape(category),
		token:    token,
		resource: "products",
	}, &products)
	return products, err
}

func (pc *ProductsClient) Categories(ctx context.Context, token string) ([]string, error) {
	var categories []string
	err := pc.c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/productos/categorias",
		token:    token,
		resource: "products",
	}, &categories)
	return categories, err
}
