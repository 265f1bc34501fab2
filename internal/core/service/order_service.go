package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/comandero/dashboard-gateway/internal/api/metrics"
	"github.com/comandero/dashboard-gateway/internal/core/domain"
	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// OrderService implements the order lifecycle workflow. Mutations are gated
// on the admin role before any upstream call; the upstream remains the
// authoritative enforcer, the client-side check is a UX convenience.
type OrderService struct {
	orders   ports.OrdersAPI
	products ports.ProductsAPI
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewOrderService(orders ports.OrdersAPI, products ports.ProductsAPI, notifier ports.Notifier, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, products: products, notifier: notifier, log: log}
}

func (s *OrderService) List(ctx context.Context, caller ports.Caller) ([]domain.Order, error) {
	return s.orders.List(ctx, caller.Session.Token)
}

// Create recomputes the total from the line items and the current product
// catalog snapshot before submitting; the caller-supplied total is ignored.
func (s *OrderService) Create(ctx context.Context, caller ports.Caller, input ports.OrderFormInput) (*domain.Order, error) {
	if err := requireAdmin(ctx, s.notifier, caller, "orders"); err != nil {
		return nil, err
	}

	total, err := s.recomputeTotal(ctx, caller.Session.Token, input.Lines)
	if err != nil {
		s.notifier.Notify(ctx, caller.Sid, domain.NoticeError, "Error al crear la orden")
		return nil, fmt.Errorf("create order: %w", err)
	}
	input.Total = total

	order, err := s.orders.Create(ctx, caller.Session.Token, input)
	if err != nil {
		s.notifier.Notify(ctx, caller.Sid, domain.NoticeError, "Error al crear la orden")
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.notifier.Notify(ctx, caller.Sid, domain.NoticeSuccess, "Orden creada correctamente")
	s.log.Info().Int64("order_id", order.ID).Float64("total", order.Total).Msg("order created")
	return order, nil
}

func (s *OrderService) Update(ctx context.Context, caller ports.Caller, id int64, input ports.OrderFormInput) (*domain.Order, error) {
	if err := requireAdmin(ctx, s.notifier, caller, "orders"); err != nil {
		return nil, err
	}

	total, err := s.recomputeTotal(ctx, caller.Session.Token, input.Lines)
	if err != nil {
		s.notifier.Notify(ctx, caller.Sid, domain.NoticeError, "Error al actualizar la orden")
		return nil, fmt.Errorf("update order %d: %w", id, err)
	}
	input.Total = total

	order, err := s.orders.Update(ctx, caller.Session.Token, id, input)
	if err != nil {
		s.notifier.Notify(ctx, caller.Sid, domain.NoticeError, "Error al actualizar la orden")
		return nil, fmt.Errorf("update order %d: %w", id, err)
	}

	s.notifier.Notify(ctx, caller.Sid, domain.NoticeSuccess, "Orden actualizada correctamente")
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, caller ports.Caller, id int64) error {
	if err := requireAdmin(ctx, s.notifier, caller, "orders"); err != nil {
		return err
	}

	if err := s.orders.Delete(ctx, caller.Session.Token, id); err != nil {
		s.notifier.Notify(ctx, caller.Sid, domain.NoticeError, "Error al eliminar el pedido")
		return fmt.Errorf("delete order %d: %w", id, err)
	}

	s.notifier.Notify(ctx, caller.Sid, domain.NoticeSuccess, "Pedido eliminado correctamente")
	return nil
}

// Advance moves an order one step along the forward path: PENDIENTE →
// PREPARANDO → LISTO → ENTREGADO. Terminal statuses are rejected before any
// upstream request; on upstream failure the prior status is retained.
func (s *OrderService) Advance(ctx context.Context, caller ports.Caller, id int64, current domain.OrderStatus) (domain.OrderStatus, error) {
	if err := requireAdmin(ctx, s.notifier, caller, "orders"); err != nil {
		return current, err
	}

	next, ok := current.Next()
	if !ok {
		return current, fmt.Errorf("advance order %d: %w (status %s)", id, domain.ErrInvalidTransition, current)
	}

	return s.changeStatus(ctx, caller, id, current, next)
}

// Cancel moves an open order to CANCELADO. Delivered orders cannot be
// cancelled.
func (s *OrderService) Cancel(ctx context.Context, caller ports.Caller, id int64, current domain.OrderStatus) (domain.OrderStatus, error) {
	if err := requireAdmin(ctx, s.notifier, caller, "orders"); err != nil {
		return current, err
	}

	if !current.CanTransitionTo(domain.StatusCancelled) {
		return current, fmt.Errorf("cancel order %d: %w (status %s)", id, domain.ErrInvalidTransition, current)
	}

	return s.changeStatus(ctx, caller, id, current, domain.StatusCancelled)
}

func (s *OrderService) changeStatus(ctx context.Context, caller ports.Caller, id int64, current, next domain.OrderStatus) (domain.OrderStatus, error) {
	updated, err := s.orders.ChangeStatus(ctx, caller.Session.Token, id, next)
	if err != nil {
		s.notifier.Notify(ctx, caller.Sid, domain.NoticeError, "Error al actualizar estado")
		return current, fmt.Errorf("change order %d status to %s: %w", id, next, err)
	}

	status := next
	if updated != nil && updated.Status != "" {
		status = updated.Status
	}

	metrics.OrderTransitionsTotal.WithLabelValues(string(current), string(status)).Inc()
	s.notifier.Notify(ctx, caller.Sid, domain.NoticeSuccess, "Estado actualizado correctamente")
	s.log.Info().Int64("order_id", id).Str("from", string(current)).Str("to", string(status)).Msg("order status changed")
	return status, nil
}

func (s *OrderService) recomputeTotal(ctx context.Context, token string, lines []ports.OrderLineInput) (float64, error) {
	products, err := s.products.List(ctx, token)
	if err != nil {
		return 0, fmt.Errorf("load catalog: %w", err)
	}

	orderLines := make([]domain.OrderLine, 0, len(lines))
	for _, l := range lines {
		orderLines = append(orderLines, domain.OrderLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return domain.ComputeTotal(orderLines, domain.Catalog(products)), nil
}
