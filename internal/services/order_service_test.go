package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/storelink/go-store-backend/internal/domain"
	"github.com/storelink/go-store-backend/internal/store"
)

func newOrderFixture(t *testing.T) (*OrderService, *store.Store, *domain.User) {
	t.Helper()
	st := store.New()
	u := st.Seed()
	return NewOrderService(st), st, u
}

func TestOrderCreate_SnapshotsPricesAndTotals(t *testing.T) {
	svc, st, u := newOrderFixture(t)
	ctx := context.Background()

	mug := st.CreateProduct(domain.Product{Name: "Mug", Price: 10, UserID: u.ID})
	cap := st.CreateProduct(domain.Product{Name: "Cap", Price: 25.5, UserID: u.ID})

	o, items, err := svc.Create(ctx, u.ID, domain.Order{CustomerName: "Ada"}, []OrderLine{
		{ProductID: mug.ID, Quantity: 2},
		{ProductID: cap.ID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.TotalAmount != 45.5 {
		t.Fatalf("expected total 45.5, got %v", o.TotalAmount)
	}
	if items[0].Price != 10 || items[1].Price != 25.5 {
		t.Fatalf("unit prices not snapshotted: %+v", items)
	}

	// A later price change must not touch the stored snapshot.
	newPrice := 99.0
	st.UpdateProduct(mug.ID, domain.ProductPatch{Price: &newPrice})
	_, stored, err := svc.Get(ctx, o.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored[0].Price != 10 {
		t.Fatalf("snapshot drifted with product price: %v", stored[0].Price)
	}
}

func TestOrderCreate_OrderNumberShape(t *testing.T) {
	svc, st, u := newOrderFixture(t)
	p := st.CreateProduct(domain.Product{Name: "Mug", Price: 1, UserID: u.ID})

	re := regexp.MustCompile(`^ORD-\d{4}$`)
	for i := 0; i < 20; i++ {
		o, _, err := svc.Create(context.Background(), u.ID, domain.Order{}, []OrderLine{{ProductID: p.ID, Quantity: 1}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !re.MatchString(o.OrderNumber) {
			t.Fatalf("bad order number %q", o.OrderNumber)
		}
	}
}

func TestOrderCreate_EmptyOrder(t *testing.T) {
	svc, _, u := newOrderFixture(t)
	_, _, err := svc.Create(context.Background(), u.ID, domain.Order{}, nil)
	if !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestOrderCreate_UnknownProduct(t *testing.T) {
	svc, _, u := newOrderFixture(t)
	_, _, err := svc.Create(context.Background(), u.ID, domain.Order{}, []OrderLine{{ProductID: 404, Quantity: 1}})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestOrderGet_NotFound(t *testing.T) {
	svc, _, _ := newOrderFixture(t)
	_, _, err := svc.Get(context.Background(), 123)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderUpdateStatus(t *testing.T) {
	svc, st, u := newOrderFixture(t)
	ctx := context.Background()
	p := st.CreateProduct(domain.Product{Name: "Mug", Price: 1, UserID: u.ID})
	o, _, err := svc.Create(ctx, u.ID, domain.Order{}, []OrderLine{{ProductID: p.ID, Quantity: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.UpdateStatus(ctx, o.ID, "teleported"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, 999, domain.StatusShipped); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	got, err := svc.UpdateStatus(ctx, o.ID, domain.StatusCancelled)
	if err != nil || got.Status != domain.StatusCancelled {
		t.Fatalf("cancel failed: %+v err=%v", got, err)
	}
	// Reopening a cancelled order is legal.
	got, err = svc.UpdateStatus(ctx, o.ID, domain.StatusPending)
	if err != nil || got.Status != domain.StatusPending {
		t.Fatalf("reopen failed: %+v err=%v", got, err)
	}
}
