package domain

import "time"

// OrderStatus represents the lifecycle state of an order. The values are the
// upstream API's wire representation.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDIENTE"
	StatusPreparing OrderStatus = "PREPARANDO"
	StatusReady     OrderStatus = "LISTO"
	StatusDelivered OrderStatus = "ENTREGADO"
	StatusCancelled OrderStatus = "CANCELADO"
)

// validTransitions defines the allowed state machine transitions. The forward
// path is linear; cancellation is reachable from any open state. Delivered
// and cancelled are terminal.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusDelivered, StatusCancelled},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is permitted.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Next returns the single forward step along the delivery path. It returns
// false for terminal or unknown statuses; callers must not issue an update
// request in that case.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusPending:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusReady, true
	case StatusReady:
		return StatusDelivered, true
	default:
		return s, false
	}
}

// OrderLine is one product+quantity entry within an order. UnitPrice and
// Subtotal are optional caches supplied by the upstream; when absent they are
// resolved against the product catalog snapshot.
type OrderLine struct {
	ProductID   int64    `json:"productoId"`
	ProductName string   `json:"nombreProducto,omitempty"`
	Quantity    int      `json:"cantidad"`
	UnitPrice   *float64 `json:"precioUnitario,omitempty"`
	Subtotal    *float64 `json:"subtotal,omitempty"`
}

// Order is the dashboard's transient copy of an upstream order. The upstream
// API is the backend of record; this copy is never authoritative.
type Order struct {
	ID          int64       `json:"id"`
	ClientID    int64       `json:"clienteId"`
	EmployeeID  *int64      `json:"empleadoId,omitempty"`
	CreatedAt   time.Time   `json:"fechaPedido"`
	DeliveredAt *time.Time  `json:"fechaEntrega,omitempty"`
	Status      OrderStatus `json:"estado"`
	Total       float64     `json:"total"`
	Lines       []OrderLine `json:"detalles"`
}

// ComputeTotal recalculates an order total from its line items: the cached
// subtotal when present, otherwise unit price times quantity, with the unit
// price resolved from the catalog snapshot when the line does not carry one.
// A line whose price cannot be resolved contributes nothing. Pure function,
// safe to call repeatedly.
func ComputeTotal(lines []OrderLine, catalog map[int64]Product) float64 {
	var total float64
	for _, line := range lines {
		if line.Subtotal != nil {
			total += *line.Subtotal
			continue
		}
		price, ok := resolveUnitPrice(line, catalog)
		if !ok {
			continue
		}
		total += price * float64(line.Quantity)
	}
	return total
}

func resolveUnitPrice(line OrderLine, catalog map[int64]Product) (float64, bool) {
	if line.UnitPrice != nil {
		return *line.UnitPrice, true
	}
	if p, ok := catalog[line.ProductID]; ok {
		return p.Price, true
	}
	return 0, false
}
