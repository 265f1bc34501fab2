package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/comandero/dashboard-gateway/internal/core/domain"
	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, 0, zerolog.Nop())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c, srv
}

func TestClient_RejectsRelativeBaseURL(t *testing.T) {
	if _, err := New("/not-absolute", 0, zerolog.Nop()); err == nil {
		t.Fatalf("expected error for relative base url")
	}
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	orders := NewOrdersClient(c)
	if _, err := orders.List(context.Background(), "tok-123"); err != nil {
		t.Fatalf("list error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_MapsUnauthorized(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	orders := NewOrdersClient(c)
	_, err := orders.List(context.Background(), "stale-token")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClient_MapsNotFoundAndServerError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/clientes/7":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	clients := NewClientsClient(c)
	if _, err := clients.GetByID(context.Background(), "tok", 7); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := clients.List(context.Background(), "tok"); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestClientsClient_UnwrapsEnvelope(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1,"nombre":"Eva","apellidos":"Luna"}]}`))
	})

	clients, err := NewClientsClient(c).List(context.Background(), "tok")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(clients) != 1 || clients[0].FirstName != "Eva" || clients[0].LastName != "Luna" {
		t.Fatalf("unexpected clients: %+v", clients)
	}
}

func TestClientsClient_EnvelopeFailureSurfaces(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"message":"cliente duplicado"}`))
	})

	_, err := NewClientsClient(c).Create(context.Background(), "tok", ports.ClientFormInput{FirstName: "Eva"})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestProductsClient_BareListPayload(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/productos" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":5,"nombre":"Margarita","precio":8.5,"categoria":"PIZZAS","estaActivo":true}]`))
	})

	products, err := NewProductsClient(c).List(context.Background(), "tok")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(products) != 1 || products[0].Price != 8.5 || products[0].Category != "PIZZAS" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestOrdersClient_ChangeStatusQueryParam(t *testing.T) {
	var gotMethod, gotPath, gotEstado string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotEstado = r.URL.Query().Get("estado")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":10,"estado":"PREPARANDO"}`))
	})

	order, err := NewOrdersClient(c).ChangeStatus(context.Background(), "tok", 10, domain.StatusPreparing)
	if err != nil {
		t.Fatalf("change status error: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/pedidos/10/estado" {
		t.Fatalf("unexpected request: %s %s", gotMethod, gotPath)
	}
	if gotEstado != "PREPARANDO" {
		t.Fatalf("expected estado query PREPARANDO, got %q", gotEstado)
	}
	if order.Status != domain.StatusPreparing {
		t.Fatalf("unexpected order status: %s", order.Status)
	}
}

func TestAuthClient_LoginShapes(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accessToken":"jwt-1","id":7,"nombre":"Ana","roles":[{"nombre":"ROLE_ADMIN"}]}`))
	})

	result, err := NewAuthClient(c).Login(context.Background(), "ana@example.com", "pw")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if result.AccessToken != "jwt-1" || result.ID != 7 || result.Nombre != "Ana" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if domain.ResolveRole(result.Roles) != domain.RoleAdmin {
		t.Fatalf("expected admin role from object-shaped claim")
	}
}

func TestAuthClient_LoginMissingToken(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7}`))
	})

	if _, err := NewAuthClient(c).Login(context.Background(), "ana@example.com", "pw"); !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream for missing token, got %v", err)
	}
}
