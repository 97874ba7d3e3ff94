package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/storelink/go-store-backend/internal/domain"
)

// joinKey builds the composite key for a catalogue↔product association row.
// The formatted string is the deduplication key: a second insert of the same
// pair lands on the same map entry and is a no-op.
func joinKey(catalogueID, productID int) string {
	return fmt.Sprintf("%d:%d", catalogueID, productID)
}

// CreateCatalogue assigns the next catalogue id, zeroes both counters,
// stamps CreatedAt, and stores the record.
func (s *Store) CreateCatalogue(c domain.Catalogue) *domain.Catalogue {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextCatalogueID
	s.nextCatalogueID++
	c.ViewCount = 0
	c.ShareCount = 0
	c.CreatedAt = time.Now().UTC()
	s.catalogues[c.ID] = &c

	out := c
	return &out
}

// GetCatalogue returns the catalogue with the given id, or nil when absent.
func (s *Store) GetCatalogue(id int) *domain.Catalogue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCatalogue(s.catalogues[id])
}

// ListCatalogues returns all catalogues owned by userID in insertion order.
func (s *Store) ListCatalogues(userID int) []domain.Catalogue {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Catalogue, 0)
	for _, id := range sortedKeys(s.catalogues) {
		if c := s.catalogues[id]; c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out
}

// UpdateCatalogue shallow-merges the patch over the existing record. The
// view and share counters survive the update untouched. Returns nil when
// the id is absent.
func (s *Store) UpdateCatalogue(id int, patch domain.CataloguePatch) *domain.Catalogue {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.catalogues[id]
	if !ok {
		return nil
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		c.ImageURL = *patch.ImageURL
	}
	if patch.IsPublic != nil {
		c.IsPublic = *patch.IsPublic
	}
	return copyCatalogue(c)
}

// DeleteCatalogue removes the catalogue together with every association row
// that references it. The cascade is part of the delete: a dangling join
// row pointing at a removed catalogue would be a correctness bug.
func (s *Store) DeleteCatalogue(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.catalogues[id]; !ok {
		return false
	}
	delete(s.catalogues, id)
	for key, row := range s.catalogueProducts {
		if row.CatalogueID == id {
			delete(s.catalogueProducts, key)
		}
	}
	return true
}

// IncrementCatalogueViewCount bumps the catalogue's own view counter by one.
// Views do not touch the merchant's stats record. Returns the updated
// catalogue, or nil when the id is absent.
func (s *Store) IncrementCatalogueViewCount(id int) *domain.Catalogue {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.catalogues[id]
	if !ok {
		return nil
	}
	c.ViewCount++
	return copyCatalogue(c)
}

// IncrementCatalogueShareCount bumps the catalogue's share counter and, in
// the same critical section, the merchant's CataloguesShared and
// SharesChange stats. Returns nil when the id is absent.
func (s *Store) IncrementCatalogueShareCount(id int) *domain.Catalogue {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.catalogues[id]
	if !ok {
		return nil
	}
	c.ShareCount++

	cur := s.statsForLocked(c.UserID)
	shared := cur.CataloguesShared + 1
	change := cur.SharesChange + 1
	s.applyStatsLocked(c.UserID, domain.StatsPatch{
		CataloguesShared: &shared,
		SharesChange:     &change,
	})

	return copyCatalogue(c)
}

// ListPopularCatalogues returns up to limit catalogues owned by userID,
// sorted by descending view count. Ties keep insertion order (stable sort
// over the id-ascending slice).
func (s *Store) ListPopularCatalogues(userID, limit int) []domain.Catalogue {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Catalogue, 0)
	for _, id := range sortedKeys(s.catalogues) {
		if c := s.catalogues[id]; c.UserID == userID {
			out = append(out, *c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ViewCount > out[j].ViewCount
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// AddProductToCatalogue inserts an association row for the pair. The insert
// is idempotent: adding an existing pair is a no-op, never a duplicate row
// and never an error.
func (s *Store) AddProductToCatalogue(catalogueID, productID int) domain.CatalogueProduct {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := joinKey(catalogueID, productID)
	row, ok := s.catalogueProducts[key]
	if !ok {
		row = domain.CatalogueProduct{CatalogueID: catalogueID, ProductID: productID}
		s.catalogueProducts[key] = row
	}
	return row
}

// RemoveProductFromCatalogue deletes the association row for the pair.
// Removing a pair that does not exist is a no-op.
func (s *Store) RemoveProductFromCatalogue(catalogueID, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.catalogueProducts, joinKey(catalogueID, productID))
}

// ListProductsInCatalogue resolves the catalogue's association rows to
// products, in product insertion order. Rows whose product has since been
// deleted are skipped: product deletion does not cascade to the join table,
// so dangling ids are expected here and must not fail the join.
func (s *Store) ListProductsInCatalogue(catalogueID int) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0)
	for _, row := range s.catalogueProducts {
		if row.CatalogueID == catalogueID {
			ids = append(ids, row.ProductID)
		}
	}
	sort.Ints(ids)

	out := make([]domain.Product, 0, len(ids))
	for _, pid := range ids {
		if p, ok := s.products[pid]; ok {
			out = append(out, *p)
		}
	}
	return out
}

func copyCatalogue(c *domain.Catalogue) *domain.Catalogue {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}
