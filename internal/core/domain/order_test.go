package domain

import "testing"

func TestOrderStatus_ForwardPath(t *testing.T) {
	status := StatusPending
	want := []OrderStatus{StatusPreparing, StatusReady, StatusDelivered}

	for _, expected := range want {
		next, ok := status.Next()
		if !ok {
			t.Fatalf("no next status from %s", status)
		}
		if next != expected {
			t.Fatalf("from %s: expected %s, got %s", status, expected, next)
		}
		if !status.CanTransitionTo(next) {
			t.Fatalf("transition %s -> %s should be valid", status, next)
		}
		status = next
	}

	if !status.Terminal() {
		t.Fatalf("expected %s to be terminal", status)
	}
}

func TestOrderStatus_NoAdvanceOutOfTerminal(t *testing.T) {
	for _, status := range []OrderStatus{StatusDelivered, StatusCancelled} {
		if _, ok := status.Next(); ok {
			t.Fatalf("expected no next status from %s", status)
		}
		for _, target := range []OrderStatus{StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled} {
			if status.CanTransitionTo(target) {
				t.Fatalf("transition %s -> %s should be invalid", status, target)
			}
		}
	}
}

func TestOrderStatus_CancelReachability(t *testing.T) {
	cancellable := []OrderStatus{StatusPending, StatusPreparing, StatusReady}
	for _, status := range cancellable {
		if !status.CanTransitionTo(StatusCancelled) {
			t.Fatalf("expected %s to be cancellable", status)
		}
	}
	if StatusDelivered.CanTransitionTo(StatusCancelled) {
		t.Fatalf("delivered order must not be cancellable")
	}
}

func floatPtr(f float64) *float64 { return &f }

func TestComputeTotal_MixedCachedAndResolved(t *testing.T) {
	lines := []OrderLine{
		{ProductID: 1, Quantity: 2, UnitPrice: floatPtr(10)},
		{ProductID: 2, Quantity: 1, Subtotal: floatPtr(7)},
	}

	got := ComputeTotal(lines, nil)
	if got != 27 {
		t.Fatalf("expected total 27, got %v", got)
	}
}

func TestComputeTotal_ResolvesPriceFromCatalog(t *testing.T) {
	catalog := map[int64]Product{
		5: {ID: 5, Name: "Margarita", Price: 8.5},
	}
	lines := []OrderLine{
		{ProductID: 5, Quantity: 3},
		{ProductID: 99, Quantity: 2}, // unknown product, no cached price
	}

	got := ComputeTotal(lines, catalog)
	if got != 25.5 {
		t.Fatalf("expected total 25.5, got %v", got)
	}
}

func TestComputeTotal_Idempotent(t *testing.T) {
	lines := []OrderLine{{ProductID: 1, Quantity: 4, UnitPrice: floatPtr(2.25)}}
	first := ComputeTotal(lines, nil)
	second := ComputeTotal(lines, nil)
	if first != second || first != 9 {
		t.Fatalf("expected stable total 9, got %v then %v", first, second)
	}
}
