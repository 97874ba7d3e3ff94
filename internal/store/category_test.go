package store

import (
	"testing"

	"github.com/storelink/go-store-backend/internal/domain"
)

func TestCategoryCRUD(t *testing.T) {
	s := New()
	u := s.CreateUser(domain.User{Username: "m"})

	c := s.CreateCategory(domain.Category{Name: "Books", Description: "paper", UserID: u.ID})
	if c.ID != 1 {
		t.Fatalf("expected id 1, got %d", c.ID)
	}

	name := "Novels"
	got := s.UpdateCategory(c.ID, domain.CategoryPatch{Name: &name})
	if got.Name != "Novels" || got.Description != "paper" {
		t.Fatalf("partial merge failed: %+v", got)
	}

	if !s.DeleteCategory(c.ID) {
		t.Fatalf("expected delete to report true")
	}
	if s.GetCategory(c.ID) != nil {
		t.Fatalf("category should be gone")
	}
	if s.DeleteCategory(c.ID) {
		t.Fatalf("second delete should report false")
	}
}

func TestCreateCategory_NoStatsSideEffect(t *testing.T) {
	s := New()
	u := s.CreateUser(domain.User{Username: "m"})
	s.CreateCategory(domain.Category{Name: "Books", UserID: u.ID})

	if st := s.GetStoreStats(u.ID); st != nil {
		t.Fatalf("category creation must not materialize stats, got %+v", st)
	}
}

func TestDeleteCategory_ProductsKeepDanglingReference(t *testing.T) {
	s := New()
	u := s.CreateUser(domain.User{Username: "m"})
	c := s.CreateCategory(domain.Category{Name: "Books", UserID: u.ID})
	p := s.CreateProduct(domain.Product{Name: "Dune", CategoryID: c.ID, UserID: u.ID})

	s.DeleteCategory(c.ID)

	got := s.GetProduct(p.ID)
	if got.CategoryID != c.ID {
		t.Fatalf("product's category reference should dangle, got %d", got.CategoryID)
	}
	if list := s.ListProductsByCategory(c.ID); len(list) != 1 {
		t.Fatalf("listing by the dangling category still resolves the product: %v", list)
	}
}
