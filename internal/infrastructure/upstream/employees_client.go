package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/comandero/dashboard-gateway/internal/core/domain"
	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// EmployeesClient wraps the upstream /api/empleados endpoints.
type EmployeesClient struct {
	c *Client
}

func NewEmployeesClient(c *Client) *EmployeesClient {
	return &EmployeesClient{c: c}
}

type employeePayload struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email,omitempty"`
	Puesto string `json:"puesto,omitempty"`
}

func toEmployeePayload(input ports.EmployeeFormInput) employeePayload {
	return employeePayload{Nombre: input.Name, Email: input.Email, Puesto: input.Position}
}

func (ec *EmployeesClient) List(ctx context.Context, token string) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := ec.c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/api/empleados",
		token:    token,
		resource: "employees",
	}, &employees)
	return employees, err
}

func (ec *EmployeesClient) Create(ctx context.Context, token string, input ports.EmployeeFormInput) (*domain.Employee, error) {
	var employee domain.Employee
	err := ec.c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/api/empleados",
		token:    token,
		body:     toEmployeePayload(input),
		resource: "employees",
	}, &employee)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (ec *EmployeesClient) Update(ctx context.Context, token string, id int64, input ports.EmployeeFormInput) (*domain.Employee, error) {
	var employee domain.Employee
	err := ec.c.do(ctx, request{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/api/empleados/%d", id),
		token:    token,
		body:     toEmployeePayload(input),
		resource: "employees",
	}, &employee)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (ec *EmployeesClient) Delete(ctx context.Context, token string, id int64) error {
	return ec.c.do(ctx, request{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/api/empleados/%d", id),
		token:    token,
		resource: "employees",
	}, nil)
}
