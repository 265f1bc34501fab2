package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Product is a menu item from the upstream catalog.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion,omitempty"`
	Price       float64 `json:"precio"`
	ImageURL    string  `json:"imagenUrl,omitempty"`
	Category    string  `json:"categoria"`
	Stock       int     `json:"stockDisponible"`
	Active      bool    `json:"estaActivo"`
}

// Catalog indexes products by ID for price resolution.
func Catalog(products []Product) map[int64]Product {
	m := make(map[int64]Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return m
}

// specialCategoryFormats maps upstream category codes whose display form is
// not derivable by simple capitalization.
var specialCategoryFormats = map[string]string{
	"BEBIDAS_ALCOHOLICAS": "Bebidas Alcohólicas",
	"ACOMPAÑAMIENTOS":     "Acompañamientos",
}

// FormatCategory converts an upstream category code to its display form:
// special cases from the table above, otherwise first letter upper, rest
// lower (PIZZAS → Pizzas).
func FormatCategory(category string) string {
	if category == "" {
		return ""
	}
	if display, ok := specialCategoryFormats[category]; ok {
		return display
	}
	first, size := utf8.DecodeRuneInString(category)
	return string(unicode.ToUpper(first)) + strings.ToLower(category[size:])
}

// CategoryOption pairs an upstream category code with its display label for
// select inputs.
type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CategoryOptions converts upstream category codes into select options.
func CategoryOptions(categories []string) []CategoryOption {
	opts := make([]CategoryOption, 0, len(categories))
	for _, c := range categories {
		opts = append(opts, CategoryOption{Value: c, Label: FormatCategory(c)})
	}
	return opts
}
