package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// ProductsHandler serves the products screen, including the category picker.
type ProductsHandler struct {
	service ports.ProductService
}

func NewProductsHandler(service ports.ProductService) *ProductsHandler {
	return &ProductsHandler{service: service}
}

type productRequest struct {
	Name        string  `json:"nombre" validate:"required"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio" validate:"gt=0"`
	ImageURL    string  `json:"imagenUrl"`
	Category    string  `json:"categoria" validate:"required"`
	Stock       int     `json:"stockDisponible" validate:"gte=0"`
	Active      bool    `json:"estaActivo"`
}

func (r productRequest) toInput() ports.ProductFormInput {
	return ports.ProductFormInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		Stock:       r.Stock,
		Active:      r.Active,
	}
}

// List returns the active products.
//
// @Summary      List active products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /dashboard/products [get]
func (h *ProductsHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	products, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ListAll returns active and inactive products. Admin view.
//
// @Summary      List all products including inactive
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      403  {object}  map[string]string
// @Router       /dashboard/products/all [get]
func (h *ProductsHandler) ListAll(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	products, err := h.service.ListAll(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns one product by ID.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /dashboard/products/{id} [get]
func (h *ProductsHandler) Get(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	product, err := h.service.GetByID(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Search returns the products matching the query string.
//
// @Summary      Search products
// @Tags         products
// @Produce      json
// @Param        query  query    string  true  "Free-text search term"
// @Success      200    {array}  domain.Product
// @Router       /dashboard/products/search [get]
func (h *ProductsHandler) Search(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	products, err := h.service.Search(c.Request().Context(), caller, c.QueryParam("query"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ByCategory returns the products of one category.
//
// @Summary      List products by category
// @Tags         products
// @Produce      json
// @Param        category  path     string  true  "Category name"
// @Success      200       {array}  domain.Product
// @Router       /dashboard/products/category/{category} [get]
func (h *ProductsHandler) ByCategory(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	products, err := h.service.ByCategory(c.Request().Context(), caller, c.Param("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Categories returns the category options with display labels.
//
// @Summary      List product categories
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.CategoryOption
// @Router       /dashboard/products/categories [get]
func (h *ProductsHandler) Categories(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	categories, err := h.service.Categories(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Create registers a new product. Admin only.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product fields"
// @Success      201   {object}  domain.Product
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /dashboard/products [post]
func (h *ProductsHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), caller, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update modifies an existing product. Admin only.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Product ID"
// @Param        body  body      productRequest  true  "Product fields"
// @Success      200   {object}  domain.Product
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /dashboard/products/{id} [put]
func (h *ProductsHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), caller, id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete removes a product. Admin only.
//
// @Summary      Delete a product
// @Tags         products
// @Param        id  path  int  true  "Product ID"
// @Success      204  "deleted"
// @Failure      403  {object}  map[string]string
// @Router       /dashboard/products/{id} [delete]
func (h *ProductsHandler) Delete(c echo.Context) error {
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
