package ports

import (
	"context"

	"github.com/comandero/dashboard-gateway/internal/core/domain"
)

// LoginResult carries the fields the upstream login endpoint returns. Name
// arrives as nombre on some deployments and username on others; roles come in
// the shapes domain.RoleClaim tolerates.
type LoginResult struct {
	AccessToken string
	ID          int64
	Username    string
	Nombre      string
	Roles       []domain.RoleClaim
}

// AuthAPI wraps the upstream authentication endpoints.
type AuthAPI interface {
	Login(ctx context.Context, usernameOrEmail, password string) (*LoginResult, error)
	// Logout invalidates the bearer token upstream. Best effort: callers
	// must clear local state regardless of the result.
	Logout(ctx context.Context, token string) error
	// Me returns the profile bound to the token.
	Me(ctx context.Context, token string) (*domain.User, error)
}

// ClientFormInput carries the mutable fields of a client record.
type ClientFormInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}

// ClientsAPI wraps the upstream /api/clientes endpoints.
type ClientsAPI interface {
	List(ctx context.Context, token string) ([]domain.Client, error)
	GetByID(ctx context.Context, token string, id int64) (*domain.Client, error)
	Create(ctx context.Context, token string, input ClientFormInput) (*domain.Client, error)
	Update(ctx context.Context, token string, id int64, input ClientFormInput) (*domain.Client, error)
	Delete(ctx context.Context, token string, id int64) error
	Search(ctx context.Context, token, query string) ([]domain.Client, error)
}

// ProductFormInput carries the mutable fields of a product record.
type ProductFormInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Category    string
	Stock       int
	Active      bool
}

// ProductsAPI wraps the upstream /api/productos endpoints.
type ProductsAPI interface {
	List(ctx context.Context, token string) ([]domain.Product, error)
	// ListAll returns active and inactive products (admin view).
	ListAll(ctx context.Context, token string) ([]domain.Product, error)
	GetByID(ctx context.Context, token string, id int64) (*domain.Product, error)
	Create(ctx context.Context, token string, input ProductFormInput) (*domain.Product, error)
	Update(ctx context.Context, token string, id int64, input ProductFormInput) (*domain.Product, error)
	Delete(ctx context.Context, token string, id int64) error
	Search(ctx context.Context, token, query string) ([]domain.Product, error)
	ByCategory(ctx context.Context, token, category string) ([]domain.Product, error)
	Categories(ctx context.Context, token string) ([]string, error)
}

// OrderLineInput is one product+quantity entry of an order mutation.
type OrderLineInput struct {
	ProductID int64
	Quantity  int
}

// OrderFormInput carries the fields of an order create/update.
type OrderFormInput struct {
	ClientID   int64
	EmployeeID *int64
	Status     domain.OrderStatus
	Total      float64
	Lines      []OrderLineInput
}

// OrdersAPI wraps the upstream /api/pedidos endpoints.
type OrdersAPI interface {
	List(ctx context.Context, token string) ([]domain.Order, error)
	Create(ctx context.Context, token string, input OrderFormInput) (*domain.Order, error)
	Update(ctx context.Context, token string, id int64, input OrderFormInput) (*domain.Order, error)
	Delete(ctx context.Context, token string, id int64) error
	// ChangeStatus issues PUT /api/pedidos/{id}/estado?estado=<status>.
	ChangeStatus(ctx context.Context, token string, id int64, status domain.OrderStatus) (*domain.Order, error)
}

// EmployeeFormInput carries the mutable fields of an employee record.
type EmployeeFormInput struct {
	Name     string
	Email    string
	Position string
}

// EmployeesAPI wraps the upstream /api/empleados endpoints.
type EmployeesAPI interface {
	List(ctx context.Context, token string) ([]domain.Employee, error)
	Create(ctx context.Context, token string, input EmployeeFormInput) (*domain.Employee, error)
	Update(ctx context.Context, token string, id int64, input EmployeeFormInput) (*domain.Employee, error)
	Delete(ctx context.Context, token string, id int64) error
}
