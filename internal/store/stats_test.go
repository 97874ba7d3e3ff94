package store

import (
	"testing"
	"time"

	"github.com/storelink/go-store-backend/internal/domain"
)

func TestGetStoreStats_AbsentIsNil(t *testing.T) {
	s := New()
	if got := s.GetStoreStats(1); got != nil {
		t.Fatalf("expected nil before any mutation, got %+v", got)
	}
}

func TestApplyStatsDelta_LazyMaterialization(t *testing.T) {
	s := New()

	st := s.ApplyStatsDelta(1, domain.StatsPatch{})
	if st == nil || st.UserID != 1 || st.ID != 1 {
		t.Fatalf("expected materialized zeroed record, got %+v", st)
	}
	if st.TotalOrders != 0 || st.TotalRevenue != 0 {
		t.Fatalf("expected zeroed counters, got %+v", st)
	}
}

func TestApplyStatsDelta_MergesOnlyNonNil(t *testing.T) {
	s := New()
	orders := 3
	s.ApplyStatsDelta(1, domain.StatsPatch{TotalOrders: &orders})

	revenue := 99.5
	st := s.ApplyStatsDelta(1, domain.StatsPatch{TotalRevenue: &revenue})
	if st.TotalOrders != 3 {
		t.Fatalf("nil field clobbered TotalOrders: %+v", st)
	}
	if st.TotalRevenue != 99.5 {
		t.Fatalf("patched field not applied: %+v", st)
	}
}

func TestApplyStatsDelta_RefreshesUpdatedAt(t *testing.T) {
	s := New()
	s.ApplyStatsDelta(1, domain.StatsPatch{})

	s.mu.Lock()
	s.stats[1].UpdatedAt = time.Now().UTC().Add(-time.Hour)
	s.mu.Unlock()

	st := s.ApplyStatsDelta(1, domain.StatsPatch{})
	if time.Since(st.UpdatedAt) > time.Minute {
		t.Fatalf("UpdatedAt not refreshed: %v", st.UpdatedAt)
	}
}

func TestStatsRecordsPerUser(t *testing.T) {
	s := New()
	s.ApplyStatsDelta(1, domain.StatsPatch{})
	s.ApplyStatsDelta(2, domain.StatsPatch{})

	a, b := s.GetStoreStats(1), s.GetStoreStats(2)
	if a.ID == b.ID {
		t.Fatalf("each merchant gets its own stats record: %d vs %d", a.ID, b.ID)
	}
}
