package domain

import "testing"

func TestFormatCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BEBIDAS_ALCOHOLICAS", "Bebidas Alcohólicas"},
		{"ACOMPAÑAMIENTOS", "Acompañamientos"},
		{"PIZZAS", "Pizzas"},
		{"postres", "Postres"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatCategory(tt.in); got != tt.want {
			t.Fatalf("FormatCategory(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestCategoryOptions(t *testing.T) {
	opts := CategoryOptions([]string{"PIZZAS", "BEBIDAS_ALCOHOLICAS"})
	if len(opts) != 2 {
		t.Fatalf("expected 2 options, got %d", len(opts))
	}
	if opts[0].Value != "PIZZAS" || opts[0].Label != "Pizzas" {
		t.Fatalf("unexpected first option: %+v", opts[0])
	}
	if opts[1].Label != "Bebidas Alcohólicas" {
		t.Fatalf("unexpected second option: %+v", opts[1])
	}
}
