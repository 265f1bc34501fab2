package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/comandero/dashboard-gateway/internal/core/domain"
	"github.com/comandero/dashboard-gateway/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubOrdersAPI struct {
	statusCalls []domain.OrderStatus
	statusErr   error
	createInput *ports.OrderFormInput
	createErr   error
	deleteCalls int
}

func (o *stubOrdersAPI) List(context.Context, string) ([]domain.Order, error) { return nil, nil }

func (o *stubOrdersAPI) Create(_ context.Context, _ string, input ports.OrderFormInput) (*domain.Order, error) {
	if o.createErr != nil {
		return nil, o.createErr
	}
	o.createInput = &input
	return &domain.Order{ID: 1, Status: domain.StatusPending, Total: input.Total}, nil
}

func (o *stubOrdersAPI) Update(_ context.Context, _ string, id int64, input ports.OrderFormInput) (*domain.Order, error) {
	o.createInput = &input
	return &domain.Order{ID: id, Status: input.Status, Total: input.Total}, nil
}

func (o *stubOrdersAPI) Delete(context.Context, string, int64) error {
	o.deleteCalls++
	return nil
}

func (o *stubOrdersAPI) ChangeStatus(_ context.Context, _ string, id int64, status domain.OrderStatus) (*domain.Order, error) {
	if o.statusErr != nil {
		return nil, o.statusErr
	}
	o.statusCalls = append(o.statusCalls, status)
	return &domain.Order{ID: id, Status: status}, nil
}

type stubProductsAPI struct {
	products []domain.Product
	listErr  error
}

func (p *stubProductsAPI) List(context.Context, string) ([]domain.Product, error) {
	return p.products, p.listErr
}
func (p *stubProductsAPI) ListAll(context.Context, string) ([]domain.Product, error) {
	return p.products, nil
}
func (p *stubProductsAPI) GetByID(context.Context, string, int64) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}
func (p *stubProductsAPI) Create(context.Context, string, ports.ProductFormInput) (*domain.Product, error) {
	return nil, nil
}
func (p *stubProductsAPI) Update(context.Context, string, int64, ports.ProductFormInput) (*domain.Product, error) {
	return nil, nil
}
func (p *stubProductsAPI) Delete(context.Context, string, int64) error { return nil }
func (p *stubProductsAPI) Search(context.Context, string, string) ([]domain.Product, error) {
	return nil, nil
}
func (p *stubProductsAPI) ByCategory(context.Context, string, string) ([]domain.Product, error) {
	return nil, nil
}
func (p *stubProductsAPI) Categories(context.Context, string) ([]string, error) { return nil, nil }

type recordedNotice struct {
	sid     string
	level   string
	message string
}

type stubNotifier struct {
	notices []recordedNotice
}

func (n *stubNotifier) Notify(_ context.Context, sid, level, message string) {
	n.notices = append(n.notices, recordedNotice{sid: sid, level: level, message: message})
}

func (n *stubNotifier) Notifications(context.Context, string) ([]domain.Notification, error) {
	return nil, nil
}

func (n *stubNotifier) lastLevel() string {
	if len(n.notices) == 0 {
		return ""
	}
	return n.notices[len(n.notices)-1].level
}

func adminCaller() ports.Caller {
	return ports.Caller{
		Sid:     "sid-1",
		Session: &domain.Session{Token: "tok", User: domain.User{ID: "1", Role: domain.RoleAdmin}},
	}
}

func userCaller() ports.Caller {
	return ports.Caller{
		Sid:     "sid-2",
		Session: &domain.Session{Token: "tok", User: domain.User{ID: "2", Role: domain.RoleUser}},
	}
}

func newTestOrderService(orders *stubOrdersAPI, products *stubProductsAPI, notifier *stubNotifier) *OrderService {
	return NewOrderService(orders, products, notifier, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestOrderService_AdvanceFullChain(t *testing.T) {
	orders := &stubOrdersAPI{}
	svc := newTestOrderService(orders, &stubProductsAPI{}, &stubNotifier{})

	status := domain.StatusPending
	for _, want := range []domain.OrderStatus{domain.StatusPreparing, domain.StatusReady, domain.StatusDelivered} {
		next, err := svc.Advance(context.Background(), adminCaller(), 10, status)
		if err != nil {
			t.Fatalf("advance from %s: %v", status, err)
		}
		if next != want {
			t.Fatalf("advance from %s: expected %s, got %s", status, want, next)
		}
		status = next
	}

	if len(orders.statusCalls) != 3 {
		t.Fatalf("expected 3 upstream status calls, got %d", len(orders.statusCalls))
	}
}

func TestOrderService_AdvanceTerminalIsRejectedWithoutRequest(t *testing.T) {
	for _, terminal := range []domain.OrderStatus{domain.StatusDelivered, domain.StatusCancelled} {
		orders := &stubOrdersAPI{}
		svc := newTestOrderService(orders, &stubProductsAPI{}, &stubNotifier{})

		got, err := svc.Advance(context.Background(), adminCaller(), 10, terminal)
		if !errors.Is(err, domain.ErrInvalidTransition) {
			t.Fatalf("advance from %s: expected ErrInvalidTransition, got %v", terminal, err)
		}
		if got != terminal {
			t.Fatalf("status must be retained, got %s", got)
		}
		if len(orders.statusCalls) != 0 {
			t.Fatalf("no upstream request expected from %s", terminal)
		}
	}
}

func TestOrderService_CancelFromOpenStates(t *testing.T) {
	for _, open := range []domain.OrderStatus{domain.StatusPending, domain.StatusPreparing, domain.StatusReady} {
		orders := &stubOrdersAPI{}
		svc := newTestOrderService(orders, &stubProductsAPI{}, &stubNotifier{})

		got, err := svc.Cancel(context.Background(), adminCaller(), 10, open)
		if err != nil {
			t.Fatalf("cancel from %s: %v", open, err)
		}
		if got != domain.StatusCancelled {
			t.Fatalf("cancel from %s: expected CANCELADO, got %s", open, got)
		}
	}
}

func TestOrderService_CancelDeliveredRejected(t *testing.T) {
	orders := &stubOrdersAPI{}
	svc := newTestOrderService(orders, &stubProductsAPI{}, &stubNotifier{})

	_, err := svc.Cancel(context.Background(), adminCaller(), 10, domain.StatusDelivered)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if len(orders.statusCalls) != 0 {
		t.Fatalf("no upstream request expected")
	}
}

func TestOrderService_AdvanceKeepsStatusOnUpstreamFailure(t *testing.T) {
	orders := &stubOrdersAPI{statusErr: errors.New("upstream down")}
	notifier := &stubNotifier{}
	svc := newTestOrderService(orders, &stubProductsAPI{}, notifier)

	got, err := svc.Advance(context.Background(), adminCaller(), 10, domain.StatusPending)
	if err == nil {
		t.Fatalf("expected error")
	}
	if got != domain.StatusPending {
		t.Fatalf("prior status must be retained, got %s", got)
	}
	if notifier.lastLevel() != domain.NoticeError {
		t.Fatalf("expected error notification, got %+v", notifier.notices)
	}
}

func TestOrderService_NonAdminBlockedBeforeNetwork(t *testing.T) {
	orders := &stubOrdersAPI{}
	notifier := &stubNotifier{}
	svc := newTestOrderService(orders, &stubProductsAPI{}, notifier)

	if _, err := svc.Advance(context.Background(), userCaller(), 10, domain.StatusPending); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Create(context.Background(), userCaller(), ports.OrderFormInput{}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), userCaller(), 10); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if len(orders.statusCalls) != 0 || orders.createInput != nil || orders.deleteCalls != 0 {
		t.Fatalf("no upstream call may be issued for non-admin callers")
	}
	if len(notifier.notices) != 3 {
		t.Fatalf("expected a permission-denied notification per attempt, got %d", len(notifier.notices))
	}
	for _, n := range notifier.notices {
		if n.level != domain.NoticeError {
			t.Fatalf("expected error channel, got %+v", n)
		}
	}
}

func TestOrderService_CreateRecomputesTotalFromCatalog(t *testing.T) {
	orders := &stubOrdersAPI{}
	products := &stubProductsAPI{products: []domain.Product{
		{ID: 1, Name: "Pizza", Price: 10},
		{ID: 2, Name: "Flan", Price: 7},
	}}
	svc := newTestOrderService(orders, products, &stubNotifier{})

	order, err := svc.Create(context.Background(), adminCaller(), ports.OrderFormInput{
		ClientID: 3,
		Total:    999, // caller-supplied total is ignored
		Lines: []ports.OrderLineInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if order.Total != 27 {
		t.Fatalf("expected recomputed total 27, got %v", order.Total)
	}
	if orders.createInput == nil || orders.createInput.Total != 27 {
		t.Fatalf("upstream must receive the recomputed total, got %+v", orders.createInput)
	}
}

func TestOrderService_CreateFailsWhenCatalogUnavailable(t *testing.T) {
	products := &stubProductsAPI{listErr: errors.New("upstream down")}
	notifier := &stubNotifier{}
	svc := newTestOrderService(&stubOrdersAPI{}, products, notifier)

	_, err := svc.Create(context.Background(), adminCaller(), ports.OrderFormInput{
		Lines: []ports.OrderLineInput{{ProductID: 1, Quantity: 1}},
	})
	if err == nil {
		t.Fatalf("expected error when catalog load fails")
	}
	if notifier.lastLevel() != domain.NoticeError {
		t.Fatalf("expected error notification")
	}
}
