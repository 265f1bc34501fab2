package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/comandero/dashboard-gateway/internal/core/domain"
	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// OrdersClient wraps the upstream /api/pedidos endpoints.
type OrdersClient struct {
	c *Client
}

func NewOrdersClient(c *Client) *OrdersClient {
	return &OrdersClient{c: c}
}

type orderLinePayload struct {
	ProductoID int64 `json:"productoId"`
	Cantidad   int   `json:"cantidad"`
}

type orderPayload struct {
	ClienteID  int64              `json:"clienteId"`
	EmpleadoID *int64             `json:"empleadoId,omitempty"`
	Estado     domain.OrderStatus `json:"estado,omitempty"`
	Total      float64            `json:"total"`
	Detalles   []orderLinePayload `json:"detalles"`
}

func toOrderPayload(input ports.OrderFormInput) orderPayload {
	lines := make([]orderLinePayload, 0, len(input.Lines))
	for _, l := range input.Lines {
		lines = append(lines, orderLinePayload{ProductoID: l.ProductID, Cantidad: l.Quantity})
	}
	return orderPayload{
		ClienteID:  input.ClientID,
		EmpleadoID: input.EmployeeID,
		Estado:     input.Status,
		Total:      input.Total,
		Detalles:   lines,
	}
}

func (oc *OrdersClient) List(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	err := oc.c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/pedidos",
		token:    token,
		resource: "orders",
	}, &orders)
	return orders, err
}

func (oc *OrdersClient) Create(ctx context.Context, token string, input ports.OrderFormInput) (*domain.Order, error) {
	var order domain.Order
	err := oc.c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/api/pedidos",
		token:    token,
		body:     toOrderPayload(input),
		resource: "orders",
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (oc *OrdersClient) Update(ctx context.Context, token string, id int64, input ports.OrderFormInput) (*domain.Order, error) {
	var order domain.Order
	err := oc.c.do(ctx, request{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/api/pedidos/%d", id),
		token:    token,
		body:     toOrderPayload(input),
		resource: "orders",
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (oc *OrdersClient) Delete(ctx context.Context, token string, id int64) error {
	return oc.c.do(ctx, request{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/api/pedidos/%d", id),
		token:    token,
		resource: "orders",
	}, nil)
}

// ChangeStatus issues PUT /api/pedidos/{id}/estado?estado=<status>. The new
// status travels as a query parameter, not a body.
func (oc *OrdersClient) ChangeStatus(ctx context.Context, token string, id int64, status domain.OrderStatus) (*domain.Order, error) {
	var order domain.Order
	err := oc.c.do(ctx, request{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/api/pedidos/%d/estado", id),
		query:    url.Values{"estado": []string{string(status)}},
		token:    token,
		resource: "orders",
	}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
