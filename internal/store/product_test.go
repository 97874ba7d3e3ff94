package store

import (
	"testing"

	"github.com/storelink/go-store-backend/internal/domain"
)

func TestCreateProduct_AssignsIDAndBumpsStats(t *testing.T) {
	s := New()
	u := s.Seed()

	p1 := s.CreateProduct(domain.Product{Name: "Mug", Price: 9.5, UserID: u.ID})
	p2 := s.CreateProduct(domain.Product{Name: "Cap", Price: 15, UserID: u.ID})

	if p1.ID != 1 || p2.ID != 2 {
		t.Fatalf("expected sequential ids 1,2; got %d,%d", p1.ID, p2.ID)
	}
	if p1.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be stamped")
	}

	st := s.GetStoreStats(u.ID)
	if st.TotalProducts != 2 || st.ProductsChange != 2 {
		t.Fatalf("product counters wrong: total=%d change=%d", st.TotalProducts, st.ProductsChange)
	}
}

func TestListProductsByCategory(t *testing.T) {
	s := New()
	u := s.Seed()

	s.CreateProduct(domain.Product{Name: "Phone", CategoryID: 1, UserID: u.ID})
	s.CreateProduct(domain.Product{Name: "Shirt", CategoryID: 2, UserID: u.ID})
	s.CreateProduct(domain.Product{Name: "Laptop", CategoryID: 1, UserID: u.ID})

	got := s.ListProductsByCategory(1)
	if len(got) != 2 || got[0].Name != "Phone" || got[1].Name != "Laptop" {
		t.Fatalf("unexpected category listing: %v", got)
	}
	if empty := s.ListProductsByCategory(99); len(empty) != 0 {
		t.Fatalf("expected empty slice for unknown category, got %v", empty)
	}
}

func TestUpdateProduct_PartialMerge(t *testing.T) {
	s := New()
	u := s.Seed()
	p := s.CreateProduct(domain.Product{
		Name: "Mug", Description: "ceramic", SKU: "MUG-1",
		Price: 9.5, Stock: 20, StockStatus: domain.StockInStock, UserID: u.ID,
	})

	newPrice := 12.0
	low := domain.StockLowStock
	got := s.UpdateProduct(p.ID, domain.ProductPatch{Price: &newPrice, StockStatus: &low})
	if got == nil {
		t.Fatalf("expected updated product")
	}
	if got.Price != 12.0 || got.StockStatus != domain.StockLowStock {
		t.Fatalf("patched fields not applied: %+v", got)
	}
	if got.Name != "Mug" || got.SKU != "MUG-1" || got.Stock != 20 {
		t.Fatalf("unpatched fields clobbered: %+v", got)
	}
}

func TestUpdateProduct_AbsentIsNil(t *testing.T) {
	s := New()
	if got := s.UpdateProduct(7, domain.ProductPatch{}); got != nil {
		t.Fatalf("expected nil for absent product, got %+v", got)
	}
}

func TestDeleteProduct_NoStatsDecrementNoJoinCascade(t *testing.T) {
	s := New()
	u := s.Seed()
	p := s.CreateProduct(domain.Product{Name: "Mug", UserID: u.ID})
	c := s.CreateCatalogue(domain.Catalogue{Name: "Sale", UserID: u.ID})
	s.AddProductToCatalogue(c.ID, p.ID)

	if !s.DeleteProduct(p.ID) {
		t.Fatalf("expected delete to report true")
	}
	if s.DeleteProduct(p.ID) {
		t.Fatalf("second delete should report false")
	}

	// TotalProducts keeps counting the deleted product.
	if st := s.GetStoreStats(u.ID); st.TotalProducts != 1 {
		t.Fatalf("TotalProducts should not decrement on delete, got %d", st.TotalProducts)
	}

	// The join row stays behind but the listing skips the dangling id.
	if got := s.ListProductsInCatalogue(c.ID); len(got) != 0 {
		t.Fatalf("expected dangling product to be skipped, got %v", got)
	}

	// Re-adding the pair is still a no-op association-wise.
	s.AddProductToCatalogue(c.ID, p.ID)
	if got := s.ListProductsInCatalogue(c.ID); len(got) != 0 {
		t.Fatalf("deleted product must never resolve, got %v", got)
	}
}

func TestProductIDsNotReusedAfterDelete(t *testing.T) {
	s := New()
	u := s.Seed()

	p1 := s.CreateProduct(domain.Product{Name: "a", UserID: u.ID})
	s.DeleteProduct(p1.ID)
	p2 := s.CreateProduct(domain.Product{Name: "b", UserID: u.ID})
	if p2.ID != p1.ID+1 {
		t.Fatalf("ids must not be reused: first=%d second=%d", p1.ID, p2.ID)
	}
}
