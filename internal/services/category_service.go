package services

import (
	"context"

	"github.com/storelink/go-store-backend/internal/domain"
)

// CategoryStore defines the store contract required by CategoryService.
type CategoryStore interface {
	CreateCategory(c domain.Category) *domain.Category
	GetCategory(id int) *domain.Category
	ListCategories(userID int) []domain.Category
	UpdateCategory(id int, patch domain.CategoryPatch) *domain.Category
	DeleteCategory(id int) bool
}

// CategoryService manages the merchant's flat category list.
type CategoryService struct {
	Store CategoryStore
}

// NewCategoryService constructs a CategoryService over the given store.
func NewCategoryService(st CategoryStore) *CategoryService {
	return &CategoryService{Store: st}
}

// Create stores a new category for userID.
func (s *CategoryService) Create(ctx context.Context, userID int, c domain.Category) (*domain.Category, error) {
	c.UserID = userID
	return s.Store.CreateCategory(c), nil
}

// Get fetches a category by id.
func (s *CategoryService) Get(ctx context.Context, id int) (*domain.Category, error) {
	c := s.Store.GetCategory(id)
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

// List returns the merchant's categories in insertion order.
func (s *CategoryService) List(ctx context.Context, userID int) ([]domain.Category, error) {
	return s.Store.ListCategories(userID), nil
}

// Update applies a partial update; untouched fields keep their values.
func (s *CategoryService) Update(ctx context.Context, id int, patch domain.CategoryPatch) (*domain.Category, error) {
	c := s.Store.UpdateCategory(id, patch)
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

// Delete removes a category. Products keep their (now dangling) CategoryID.
func (s *CategoryService) Delete(ctx context.Context, id int) error {
	if !s.Store.DeleteCategory(id) {
		return ErrCategoryNotFound
	}
	return nil
}
