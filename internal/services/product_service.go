// Package services – ProductService
//
// Product operations are thin passthroughs to the store: field validation
// happens at the HTTP boundary (gin binding tags) before a request reaches
// this layer, and the store itself trusts its inputs. The service's job is
// to pin ownership to the merchant and to turn store absences into sentinel
// errors the handlers can map.
package services

import (
	"context"

	"github.com/storelink/go-store-backend/internal/domain"
)

// ProductStore defines the store contract required by ProductService.
type ProductStore interface {
	CreateProduct(p domain.Product) *domain.Product
	GetProduct(id int) *domain.Product
	ListProducts(userID int) []domain.Product
	ListProductsByCategory(categoryID int) []domain.Product
	UpdateProduct(id int, patch domain.ProductPatch) *domain.Product
	DeleteProduct(id int) bool
}

// ProductService manages the merchant's product inventory.
type ProductService struct {
	Store ProductStore
}

// NewProductService constructs a ProductService over the given store.
func NewProductService(st ProductStore) *ProductService {
	return &ProductService{Store: st}
}

// Create stores a new product for userID. Creating a product also bumps the
// merchant's product counters (the store does both in one step).
func (s *ProductService) Create(ctx context.Context, userID int, p domain.Product) (*domain.Product, error) {
	p.UserID = userID
	return s.Store.CreateProduct(p), nil
}

// Get fetches a product by id.
func (s *ProductService) Get(ctx context.Context, id int) (*domain.Product, error) {
	p := s.Store.GetProduct(id)
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// List returns all of the merchant's products in insertion order.
func (s *ProductService) List(ctx context.Context, userID int) ([]domain.Product, error) {
	return s.Store.ListProducts(userID), nil
}

// ListByCategory returns the products filed under a category.
func (s *ProductService) ListByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	return s.Store.ListProductsByCategory(categoryID), nil
}

// Update applies a partial update; untouched fields keep their values.
func (s *ProductService) Update(ctx context.Context, id int, patch domain.ProductPatch) (*domain.Product, error) {
	p := s.Store.UpdateProduct(id, patch)
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// Delete hard-deletes a product. Catalogue associations referencing it are
// intentionally left behind and the product stats are not decremented;
// both are documented limitations of the push-update design.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	if !s.Store.DeleteProduct(id) {
		return ErrProductNotFound
	}
	return nil
}
