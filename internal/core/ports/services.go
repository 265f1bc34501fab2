package ports

import (
	"context"

	"github.com/comandero/dashboard-gateway/internal/core/domain"
)

// Caller identifies the session on whose behalf a service operation runs.
// Sid routes notifications; Session carries the bearer token and role.
type Caller struct {
	Sid     string
	Session *domain.Session
}

// OrderService encodes the order lifecycle workflow: role-gated mutations,
// forward-only status advancement, and total recomputation.
type OrderService interface {
	List(ctx context.Context, caller Caller) ([]domain.Order, error)
	Create(ctx context.Context, caller Caller, input OrderFormInput) (*domain.Order, error)
	Update(ctx context.Context, caller Caller, id int64, input OrderFormInput) (*domain.Order, error)
	Delete(ctx context.Context, caller Caller, id int64) error
	// Advance moves the order one step along the forward path. The caller
	// supplies the order's cached status; terminal statuses are rejected
	// before any upstream request is issued.
	Advance(ctx context.Context, caller Caller, id int64, current domain.OrderStatus) (domain.OrderStatus, error)
	// Cancel moves an open order to CANCELADO.
	Cancel(ctx context.Context, caller Caller, id int64, current domain.OrderStatus) (domain.OrderStatus, error)
}

// ClientService exposes the clients screen operations with client-side role
// gating on mutations.
type ClientService interface {
	List(ctx context.Context, caller Caller) ([]domain.Client, error)
	GetByID(ctx context.Context, caller Caller, id int64) (*domain.Client, error)
	Create(ctx context.Context, caller Caller, input ClientFormInput) (*domain.Client, error)
	Update(ctx context.Context, caller Caller, id int64, input ClientFormInput) (*domain.Client, error)
	Delete(ctx context.Context, caller Caller, id int64) error
	Search(ctx context.Context, caller Caller, query string) ([]domain.Client, error)
}

// ProductService exposes the products screen operations with client-side role
// gating on mutations.
type ProductService interface {
	List(ctx context.Context, caller Caller) ([]domain.Product, error)
	ListAll(ctx context.Context, caller Caller) ([]domain.Product, error)
	GetByID(ctx context.Context, caller Caller, id int64) (*domain.Product, error)
	Create(ctx context.Context, caller Caller, input ProductFormInput) (*domain.Product, error)
	Update(ctx context.Context, caller Caller, id int64, input ProductFormInput) (*domain.Product, error)
	Delete(ctx context.Context, caller Caller, id int64) error
	Search(ctx context.Context, caller Caller, query string) ([]domain.Product, error)
	ByCategory(ctx context.Context, caller Caller, category string) ([]domain.Product, error)
	Categories(ctx context.Context, caller Caller) ([]domain.CategoryOption, error)
}

// EmployeeService exposes the employees screen operations with client-side
// role gating on mutations.
type EmployeeService interface {
	List(ctx context.Context, caller Caller) ([]domain.Employee, error)
	Create(ctx context.Context, caller Caller, input EmployeeFormInput) (*domain.Employee, error)
	Update(ctx context.Context, caller Caller, id int64, input EmployeeFormInput) (*domain.Employee, error)
	Delete(ctx context.Context, caller Caller, id int64) error
}
