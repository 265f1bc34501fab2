package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// ClientsHandler serves the clients screen.
type ClientsHandler struct {
	service ports.ClientService
}

func NewClientsHandler(service ports.ClientService) *ClientsHandler {
	return &ClientsHandler{service: service}
}

type clientRequest struct {
	FirstName string `json:"nombre" validate:"required"`
	LastName  string `json:"apellidos" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"telefono"`
	Address   string `json:"direccion"`
}

func (r clientRequest) toInput() ports.ClientFormInput {
	return ports.ClientFormInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

// List returns every client.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Success      200  {array}   domain.Client
// @Failure      401  {object}  map[string]string
// @Router       /dashboard/clients [get]
func (h *ClientsHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	clients, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Get returns one client by ID.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  map[string]string
// @Router       /dashboard/clients/{id} [get]
func (h *ClientsHandler) Get(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	client, err := h.service.GetByID(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Search returns the clients matching the query string.
//
// @Summary      Search clients
// @Tags         clients
// @Produce      json
// @Param        query  query     string  true  "Free-text search term"
// @Success      200    {array}   domain.Client
// @Router       /dashboard/clients/search [get]
func (h *ClientsHandler) Search(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	clients, err := h.service.Search(c.Request().Context(), caller, c.QueryParam("query"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Create registers a new client. Admin only.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      clientRequest  true  "Client fields"
// @Success      201   {object}  domain.Client
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /dashboard/clients [post]
func (h *ClientsHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	client, err := h.service.Create(c.Request().Context(), caller, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// Update modifies an existing client. Admin only.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Client ID"
// @Param        body  body      clientRequest  true  "Client fields"
// @Success      200   {object}  domain.Client
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /dashboard/clients/{id} [put]
func (h *ClientsHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	client, err := h.service.Update(c.Request().Context(), caller, id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Delete removes a client. Admin only.
//
// @Summary      Delete a client
// @Tags         clients
// @Param        id  path  int  true  "Client ID"
// @Success      204  "deleted"
// @Failure      403  {object}  map[string]string
// @Router       /dashboard/clients/{id} [delete]
func (h *ClientsHandler) Delete(c echo.Context) error {
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

// pathID parses the numeric :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
