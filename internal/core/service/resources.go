package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/comandero/dashboard-gateway/internal/api/metrics"
	"github.com/comandero/dashboard-gateway/internal/core/domain"
	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// requireAdmin blocks a mutation before any upstream call when the caller
// does not hold the admin role, raising a permission-denied notification.
func requireAdmin(ctx context.Context, notifier ports.Notifier, caller ports.Caller, resource string) error {
	if caller.Session == nil || !caller.Session.User.IsAdmin() {
		metrics.ForbiddenBlocksTotal.WithLabelValues(resource).Inc()
		notifier.Notify(ctx, caller.Sid, domain.NoticeError, "No tienes permisos para realizar esta acción")
		return domain.ErrForbidden
	}
	return nil
}

// ClientService proxies the clients screen operations. Reads pass through;
// writes are admin-gated client-side before any network call.
type ClientService struct {
	api      ports.ClientsAPI
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewClientService(api ports.ClientsAPI, notifier ports.Notifier, log zerolog.Logger) *ClientService {
	return &ClientService{api: api, notifier: notifier, log: log}
}

func (s *ClientService) List(ctx context.Context, caller ports.Caller) ([]domain.Client, error) {
	return s.api.List(ctx, caller.Session.Token)
}

func (s *ClientService) GetByID(ctx context.Context, caller ports.Caller, id int64) (*domain.Client, error) {
	return s.api.GetByID(ctx, caller.Session.Token, id)
}

func (s *ClientService) Search(ctx context.Context, caller ports.Caller, query string) ([]domain.Client, error) {
	return s.api.Search(ctx, caller.Session.Token, query)
}

func (s *ClientService) Create(ctx context.Context, caller ports.Caller, input ports.ClientFormInput) (*domain.Client, error) {
	if err := requireAdmin(ctx, s.notifier, caller, "clients"); err != nil {
		return nil, err
	}

	client, err := s.api.Create(ctx, caller.Session.Token, input)
	if err != nil {
		s.notifier.Notify(ctx, caller.Sid, domain.NoticeError, "Error al crear el cliente")
		return nil, fmt.Errorf("create client: %w", err)
	}

	s.notifier.Notify(ctx, caller.Sid, domain.NoticeSuccess, "Cliente creado correctamente")
	return client, nil
}

func (s *ClientService) Update(ctx context.Context, caller ports.Caller, id int64, input ports.ClientFormInput) (*domain.Client, error) {
	if err := requireAdmin(ctx, s.notifier, caller, "clients"); err != nil {
		return nil, err
	}

	client, err := s.api.Update(ctx, caller.Session.Token, id, input)
	if err != nil {
		s.notifier.Notify(ctx, caller.Sid, domain.NoticeError, "Error al actualizar el cliente")
		return nil, fmt.Errorf("update client %d: %w", id, err)
	}

	s.notifier.Notify(ctx, caller.Sid, domain.NoticeSuccess, "Cliente actualizado correctamente")
	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, caller ports.Caller, id int64) error {
	if err := requireAdmin(ctx, s.notifier, caller, "clients"); err != nil {
		return err
	}

	if err := s.api.Delete(ctx, caller.Session.Token, id); err != nil {
		s.notifier.Notify(ctx, caller.Sid, domain.NoticeError, "Error al eliminar el cliente")
		return fmt.Errorf("delete client %d: %w", id, err)
	}

	s.notifier.Notify(ctx, caller.Sid, domain.NoticeSuccess, "Cliente eliminado correctamente")
	return nil
}

// ProductService proxies the products screen operations.
type ProductService struct {
	api      ports.ProductsAPI
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewProductService(api ports.ProductsAPI, notifier ports.Notifier, log zerolog.Logger) *ProductService {
	return &ProductService{api: api, notifier: notifier, log: log}
}

func (s *ProductService) List(ctx context.Context, caller ports.Caller) ([]domain.Product, error) {
	return s.api.List(ctx, caller.Session.Token)
}

func (s *ProductService) ListAll(ctx context.Context, caller ports.Caller) ([]domain.Product, error) {
	return s.api.ListAll(ctx, caller.Session.Token)
}

func (s *ProductService) GetByID(ctx context.Context, caller ports.Caller, id int64) (*domain.Product, error) {
	return s.api.GetByID(ctx, caller.Session.Token, id)
}

func (s *ProductService) Search(ctx context.Context, caller ports.Caller, query string) ([]domain.Product, error) {
	return s.api.Search(ctx, caller.Session.Token, query)
}

func (s *ProductService) ByCategory(ctx context.Context, caller ports.Caller, category string) ([]domain.Product, error) {
	return s.api.ByCategory(ctx, caller.Session.Token, category)
}

// Categories returns the upstream category codes paired with their display
// labels.
func (s *ProductService) Categories(ctx context.Context, caller ports.Caller) ([]domain.CategoryOption, error) {
	categories, err := s.api.Categories(ctx, caller.Session.Token)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return domain.CategoryOptions(categories), nil
}

func (s *ProductService) Create(ctx context.Context, caller ports.Caller, input ports.ProductFormInput) (*domain.Product, error) {
	if err := requireAdmin(ctx, s.notifier, caller, "products"); err != nil {
		return nil, err
	}

	product, err := s.api.Create(ctx, caller.Session.Token, input)
	if err != nil {
		s.notifier.Notify(ctx, caller.Sid, domain.NoticeError, "Error al crear el producto")
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.notifier.Notify(ctx, caller.Sid, domain.NoticeSuccess, "Producto creado correctamente")
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, caller ports.Caller, id int64, input ports.ProductFormInput) (*domain.Product, error) {
	if err := requireAdmin(ctx, s.notifier, caller, "products"); err != nil {
		return nil, err
	}

	product, err := s.api.Update(ctx, caller.Session.Token, id, input)
	if err != nil {
		s.notifier.Notify(ctx, caller.Sid, domain.NoticeError, "Error al actualizar el producto")
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}

	s.notifier.Notify(ctx, caller.Sid, domain.NoticeSuccess, "Producto actualizado correctamente")
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, caller ports.Caller, id int64) error {
	if err := requireAdmin(ctx, s.notifier, caller, "products"); err != nil {
		return err
	}

	if err := s.api.Delete(ctx, caller.Session.Token, id); err != nil {
		s.notifier.Notify(ctx, caller.Sid, domain.NoticeError, "Error al eliminar el producto")
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	s.notifier.Notify(ctx, caller.Sid, domain.NoticeSuccess, "Producto eliminado correctamente")
	return nil
}

// EmployeeService proxies the employees screen operations.
type EmployeeService struct {
	api      ports.EmployeesAPI
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewEmployeeService(api ports.EmployeesAPI, notifier ports.Notifier, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{api: api, notifier: notifier, log: log}
}

func (s *EmployeeService) List(ctx context.Context, caller ports.Caller) ([]domain.Employee, error) {
	return s.api.List(ctx, caller.Session.Token)
}

func (s *EmployeeService) Create(ctx context.Context, caller ports.Caller, input ports.EmployeeFormInput) (*domain.Employee, error) {
	if err := requireAdmin(ctx, s.notifier, caller, "employees"); err != nil {
		return nil, err
	}

	employee, err := s.api.Create(ctx, caller.Session.Token, input)
	if err != nil {
		s.notifier.Notify(ctx, caller.Sid, domain.NoticeError, "Error al crear el empleado")
		return nil, fmt.Errorf("create employee: %w", err)
	}

	s.notifier.Notify(ctx, caller.Sid, domain.NoticeSuccess, "Empleado creado correctamente")
	return employee, nil
}

func (s *EmployeeService) Update(ctx context.Context, caller ports.Caller, id int64, input ports.EmployeeFormInput) (*domain.Employee, error) {
	if err := requireAdmin(ctx, s.notifier, caller, "employees"); err != nil {
		return nil, err
	}

	employee, err := s.api.Update(ctx, caller.Session.Token, id, input)
	if err != nil {
		s.notifier.Notify(ctx, caller.Sid, domain.NoticeError, "Error al actualizar el empleado")
		return nil, fmt.Errorf("update employee %d: %w", id, err)
	}

	s.notifier.Notify(ctx, caller.Sid, domain.NoticeSuccess, "Empleado actualizado correctamente")
	return employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, caller ports.Caller, id int64) error {
	if err := requireAdmin(ctx, s.notifier, caller, "employees"); err != nil {
		return err
	}

	if err := s.api.Delete(ctx, caller.Session.Token, id); err != nil {
		s.notifier.Notify(ctx, caller.Sid, domain.NoticeError, "Error al eliminar el empleado")
		return fmt.Errorf("delete employee %d: %w", id, err)
	}

	s.notifier.Notify(ctx, caller.Sid, domain.NoticeSuccess, "Empleado eliminado correctamente")
	return nil
}
