package store

import (
	"time"

	"github.com/storelink/go-store-backend/internal/domain"
)

// GetStoreStats returns a snapshot of the merchant's cached statistics, or
// nil when no mutation has ever touched stats for that user.
func (s *Store) GetStoreStats(userID int) *domain.StoreStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stats[userID]
	if !ok {
		return nil
	}
	out := *st
	return &out
}

// ApplyStatsDelta lazily creates a zeroed stats record for the user if
// absent, shallow-merges the non-nil patch fields (the caller computes the
// new absolute values), and refreshes UpdatedAt.
func (s *Store) ApplyStatsDelta(userID int, patch domain.StatsPatch) *domain.StoreStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.applyStatsLocked(userID, patch)
	out := *st
	return &out
}

// statsForLocked returns the user's current stats record, materializing a
// zeroed one when absent. Callers must hold s.mu. The returned pointer is
// the live record; mutate it only through applyStatsLocked.
func (s *Store) statsForLocked(userID int) *domain.StoreStats {
	st, ok := s.stats[userID]
	if !ok {
		st = &domain.StoreStats{
			ID:        s.nextStatsID,
			UserID:    userID,
			UpdatedAt: time.Now().UTC(),
		}
		s.nextStatsID++
		s.stats[userID] = st
	}
	return st
}

// applyStatsLocked is the single write path for the stats record: every
// mutating operation in this package funnels its stats half through here so
// the merge-and-timestamp behavior cannot diverge between call sites.
// Callers must hold s.mu.
func (s *Store) applyStatsLocked(userID int, patch domain.StatsPatch) *domain.StoreStats {
	st := s.statsForLocked(userID)

	if patch.TotalRevenue != nil {
		st.TotalRevenue = *patch.TotalRevenue
	}
	if patch.TotalOrders != nil {
		st.TotalOrders = *patch.TotalOrders
	}
	if patch.CataloguesShared != nil {
		st.CataloguesShared = *patch.CataloguesShared
	}
	if patch.TotalProducts != nil {
		st.TotalProducts = *patch.TotalProducts
	}
	if patch.RevenueChange != nil {
		st.RevenueChange = *patch.RevenueChange
	}
	if patch.OrdersChange != nil {
		st.OrdersChange = *patch.OrdersChange
	}
	if patch.SharesChange != nil {
		st.SharesChange = *patch.SharesChange
	}
	if patch.ProductsChange != nil {
		st.ProductsChange = *patch.ProductsChange
	}
	if patch.PendingOrders != nil {
		st.PendingOrders = *patch.PendingOrders
	}
	if patch.ProcessingOrders != nil {
		st.ProcessingOrders = *patch.ProcessingOrders
	}
	if patch.CompletedOrders != nil {
		st.CompletedOrders = *patch.CompletedOrders
	}
	if patch.CancelledOrders != nil {
		st.CancelledOrders = *patch.CancelledOrders
	}
	st.UpdatedAt = time.Now().UTC()
	return st
}
