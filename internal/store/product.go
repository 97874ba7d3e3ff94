package store

import (
	"time"

	"github.com/storelink/go-store-backend/internal/domain"
)

// CreateProduct assigns the next product id, stamps CreatedAt, stores the
// record, and bumps the merchant's product counters in the same critical
// section. The store performs no field validation; inputs are validated by
// the HTTP layer before they reach this point.
func (s *Store) CreateProduct(p domain.Product) *domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextProductID
	s.nextProductID++
	p.CreatedAt = time.Now().UTC()
	s.products[p.ID] = &p

	cur := s.statsForLocked(p.UserID)
	total := cur.TotalProducts + 1
	change := cur.ProductsChange + 1
	s.applyStatsLocked(p.UserID, domain.StatsPatch{
		TotalProducts:  &total,
		ProductsChange: &change,
	})

	c := p
	return &c
}

// GetProduct returns the product with the given id, or nil when absent.
func (s *Store) GetProduct(id int) *domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyProduct(s.products[id])
}

// ListProducts returns all products owned by userID in insertion order.
func (s *Store) ListProducts(userID int) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, 0)
	for _, id := range sortedKeys(s.products) {
		if p := s.products[id]; p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out
}

// ListProductsByCategory returns all products in the given category, across
// owners, in insertion order.
func (s *Store) ListProductsByCategory(categoryID int) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, 0)
	for _, id := range sortedKeys(s.products) {
		if p := s.products[id]; p.CategoryID == categoryID {
			out = append(out, *p)
		}
	}
	return out
}

// UpdateProduct shallow-merges the patch over the existing record: nil
// fields are kept as they were. Returns the updated product, or nil when the
// id is absent.
func (s *Store) UpdateProduct(id int, patch domain.ProductPatch) *domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.StockStatus != nil {
		p.StockStatus = *patch.StockStatus
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	return copyProduct(p)
}

// DeleteProduct removes the product and reports whether it existed.
//
// Known limitations, preserved on purpose: the merchant's TotalProducts
// counter is NOT decremented (the cached stats drift from the true entity
// count), and catalogue association rows referencing the product are left
// in place. ListProductsInCatalogue tolerates the resulting dangling ids.
func (s *Store) DeleteProduct(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false
	}
	delete(s.products, id)
	return true
}

func copyProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
