package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comandero/dashboard-gateway/internal/core/domain"
	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// OrdersHandler serves the orders screen and the status workflow actions.
type OrdersHandler struct {
	service ports.OrderService
}

func NewOrdersHandler(service ports.OrderService) *OrdersHandler {
	return &OrdersHandler{service: service}
}

type orderLineRequest struct {
	ProductID int64 `json:"productoId" validate:"required,gt=0"`
	Quantity  int   `json:"cantidad" validate:"required,gt=0"`
}

type orderRequest struct {
	ClientID   int64              `json:"clienteId" validate:"required,gt=0"`
	EmployeeID *int64             `json:"empleadoId"`
	Status     string             `json:"estado"`
	Total      float64            `json:"total"`
	Lines      []orderLineRequest `json:"detalles" validate:"required,min=1,dive"`
}

func (r orderRequest) toInput() ports.OrderFormInput {
	lines := make([]ports.OrderLineInput, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, ports.OrderLineInput{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return ports.OrderFormInput{
		ClientID:   r.ClientID,
		EmployeeID: r.EmployeeID,
		Status:     domain.OrderStatus(r.Status),
		Total:      r.Total,
		Lines:      lines,
	}
}

// statusChangeRequest carries the order's status as the caller last saw it.
// The workflow is computed from this cached value, not refetched.
type statusChangeRequest struct {
	Current string `json:"estado" validate:"required"`
}

type statusChangeResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"estado"`
}

// List returns every order with its lines.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}  domain.Order
// @Router       /dashboard/orders [get]
func (h *OrdersHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	orders, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Create registers a new order. The total is recomputed server-side. Admin only.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      orderRequest  true  "Order fields"
// @Success      201   {object}  domain.Order
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /dashboard/orders [post]
func (h *OrdersHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	order, err := h.service.Create(c.Request().Context(), caller, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// Update modifies an existing order. The total is recomputed server-side.
// Admin only.
//
// @Summary      Update an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Order ID"
// @Param        body  body      orderRequest  true  "Order fields"
// @Success      200   {object}  domain.Order
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /dashboard/orders/{id} [put]
func (h *OrdersHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	order, err := h.service.Update(c.Request().Context(), caller, id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Advance moves an order one step along PENDIENTE → PREPARANDO → LISTO →
// ENTREGADO. Admin only.
//
// @Summary      Advance an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Order ID"
// @Param        body  body      statusChangeRequest  true  "Status the caller last saw"
// @Success      200   {object}  statusChangeResponse
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /dashboard/orders/{id}/advance [post]
func (h *OrdersHandler) Advance(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req statusChangeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	next, err := h.service.Advance(c.Request().Context(), caller, id, domain.OrderStatus(req.Current))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusChangeResponse{ID: id, Status: string(next)})
}

// Cancel moves an open order to CANCELADO. Admin only.
//
// @Summary      Cancel an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Order ID"
// @Param        body  body      statusChangeRequest  true  "Status the caller last saw"
// @Success      200   {object}  statusChangeResponse
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /dashboard/orders/{id}/cancel [post]
func (h *OrdersHandler) Cancel(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req statusChangeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	next, err := h.service.Cancel(c.Request().Context(), caller, id, domain.OrderStatus(req.Current))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusChangeResponse{ID: id, Status: string(next)})
}

// Delete removes an order. Admin only.
//
// @Summary      Delete an order
// @Tags         orders
// @Param        id  path  int  true  "Order ID"
// @Success      204  "deleted"
// @Failure      403  {object}  map[string]string
// @Router       /dashboard/orders/{id} [delete]
func (h *OrdersHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
