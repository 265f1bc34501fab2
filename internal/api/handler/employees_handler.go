package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// EmployeesHandler serves the employees screen.
type EmployeesHandler struct {
	service ports.EmployeeService
}

func NewEmployeesHandler(service ports.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{service: service}
}

type employeeRequest struct {
	Name     string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Position string `json:"puesto"`
}

func (r employeeRequest) toInput() ports.EmployeeFormInput {
	return ports.EmployeeFormInput{Name: r.Name, Email: r.Email, Position: r.Position}
}

// List returns every employee.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Success      200  {array}  domain.Employee
// @Router       /dashboard/employees [get]
func (h *EmployeesHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	employees, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

// Create registers a new employee. Admin only.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      employeeRequest  true  "Employee fields"
// @Success      201   {object}  domain.Employee
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /dashboard/employees [post]
func (h *EmployeesHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	employee, err := h.service.Create(c.Request().Context(), caller, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employee)
}

// Update modifies an existing employee. Admin only.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Employee ID"
// @Param        body  body      employeeRequest  true  "Employee fields"
// @Success      200   {object}  domain.Employee
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /dashboard/employees/{id} [put]
func (h *EmployeesHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	employee, err := h.service.Update(c.Request().Context(), caller, id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Delete removes an employee. Admin only.
//
// @Summary      Delete an employee
// @Tags         employees
// @Param        id  path  int  true  "Employee ID"
// @Success      204  "deleted"
// @Failure      403  {object}  map[string]string
// @Router       /dashboard/employees/{id} [delete]
func (h *EmployeesHandler) Delete(c echo.Context) error {
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
