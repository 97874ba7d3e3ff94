package services

import (
	"context"
	"errors"
	"testing"

	"github.com/storelink/go-store-backend/internal/domain"
	"github.com/storelink/go-store-backend/internal/store"
)

func newStoreFixture(t *testing.T) (*StoreService, *store.Store, *domain.User) {
	t.Helper()
	st := store.New()
	u := st.Seed()
	return NewStoreService(st), st, u
}

func TestSettingsRoundTrip(t *testing.T) {
	svc, _, u := newStoreFixture(t)
	ctx := context.Background()

	got, err := svc.Settings(ctx, u.ID)
	if err != nil || got.StoreSlug != "my-store" {
		t.Fatalf("settings read failed: %+v err=%v", got, err)
	}

	name := "New Name"
	updated, err := svc.UpdateSettings(ctx, u.ID, domain.StoreSettingsPatch{StoreName: &name})
	if err != nil || updated.StoreName != "New Name" {
		t.Fatalf("settings update failed: %+v err=%v", updated, err)
	}
	if updated.WhatsAppNumber != u.WhatsAppNumber {
		t.Fatalf("unpatched field clobbered: %+v", updated)
	}
}

func TestUpdateSettings_MissingMerchant(t *testing.T) {
	svc, _, _ := newStoreFixture(t)
	name := "x"
	_, err := svc.UpdateSettings(context.Background(), 99, domain.StoreSettingsPatch{StoreName: &name})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestStats_LazyMaterialization(t *testing.T) {
	st := store.New()
	u := st.CreateUser(domain.User{Username: "m"})
	svc := NewStoreService(st)

	// No mutation has touched stats yet; the service materializes zeroes.
	got, err := svc.Stats(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalOrders != 0 || got.TotalRevenue != 0 || got.UserID != u.ID {
		t.Fatalf("expected zeroed record, got %+v", got)
	}
}

func TestGetDashboard(t *testing.T) {
	svc, st, u := newStoreFixture(t)

	for i := 0; i < 7; i++ {
		st.CreateOrder(domain.Order{UserID: u.ID, TotalAmount: 10}, nil)
	}
	for i := 0; i < 4; i++ {
		st.CreateCatalogue(domain.Catalogue{Name: "c", UserID: u.ID})
	}

	d, err := svc.GetDashboard(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Stats.TotalOrders != 7 || d.Stats.TotalRevenue != 70 {
		t.Fatalf("dashboard stats wrong: %+v", d.Stats)
	}
	if len(d.RecentOrders) != 5 {
		t.Fatalf("expected 5 recent orders, got %d", len(d.RecentOrders))
	}
	if len(d.PopularCatalogues) != 3 {
		t.Fatalf("expected 3 popular catalogues, got %d", len(d.PopularCatalogues))
	}
}

func TestGetStorefront_FiltersPrivateCatalogues(t *testing.T) {
	svc, st, u := newStoreFixture(t)
	st.CreateCatalogue(domain.Catalogue{Name: "public", IsPublic: true, UserID: u.ID})
	st.CreateCatalogue(domain.Catalogue{Name: "private", IsPublic: false, UserID: u.ID})

	sf, err := svc.GetStorefront(context.Background(), "my-store")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sf.Store.ID != u.ID {
		t.Fatalf("wrong store resolved: %+v", sf.Store)
	}
	if len(sf.Catalogues) != 1 || sf.Catalogues[0].Name != "public" {
		t.Fatalf("private catalogue leaked: %v", sf.Catalogues)
	}
}

func TestGetStorefront_UnknownSlug(t *testing.T) {
	svc, _, _ := newStoreFixture(t)
	if _, err := svc.GetStorefront(context.Background(), "ghost"); !errors.Is(err, ErrStoreNotFound) {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}
