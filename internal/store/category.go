package store

import "github.com/storelink/go-store-backend/internal/domain"

// CreateCategory assigns the next category id and stores the record.
// Category creation does not touch the stats record.
func (s *Store) CreateCategory(c domain.Category) *domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextCategoryID
	s.nextCategoryID++
	s.categories[c.ID] = &c

	out := c
	return &out
}

// GetCategory returns the category with the given id, or nil when absent.
func (s *Store) GetCategory(id int) *domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.categories[id]; ok {
		out := *c
		return &out
	}
	return nil
}

// ListCategories returns all categories owned by userID in insertion order.
func (s *Store) ListCategories(userID int) []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Category, 0)
	for _, id := range sortedKeys(s.categories) {
		if c := s.categories[id]; c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out
}

// UpdateCategory shallow-merges the patch over the existing record.
// Returns nil when the id is absent.
func (s *Store) UpdateCategory(id int, patch domain.CategoryPatch) *domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return nil
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	out := *c
	return &out
}

// DeleteCategory removes the category and reports whether it existed.
// Products referencing the category keep their CategoryID; the reference
// simply dangles (caller's responsibility, as with all userId references).
func (s *Store) DeleteCategory(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return false
	}
	delete(s.categories, id)
	return true
}
