// Package services – StoreService
//
// StoreService covers the merchant-level surface: store settings, the
// dashboard snapshot (stats + recent orders + popular catalogues), and the
// public storefront lookup by slug.
package services

import (
	"context"
	"errors"

	"github.com/storelink/go-store-backend/internal/domain"
	"github.com/storelink/go-store-backend/internal/store"
)

// SettingsStore defines the store contract required by StoreService.
type SettingsStore interface {
	GetUser(id int) *domain.User
	GetUserBySlug(slug string) *domain.User
	UpdateStoreSettings(userID int, patch domain.StoreSettingsPatch) (*domain.User, error)
	GetStoreStats(userID int) *domain.StoreStats
	ApplyStatsDelta(userID int, patch domain.StatsPatch) *domain.StoreStats
	ListRecentOrders(userID, limit int) []domain.Order
	ListPopularCatalogues(userID, limit int) []domain.Catalogue
	ListCatalogues(userID int) []domain.Catalogue
}

// Dashboard is the aggregate payload behind the admin dashboard: the cached
// stats record plus the most recent orders and most viewed catalogues.
type Dashboard struct {
	Stats             *domain.StoreStats `json:"stats"`
	RecentOrders      []domain.Order     `json:"recent_orders"`
	PopularCatalogues []domain.Catalogue `json:"popular_catalogues"`
}

// Storefront is the public view of a merchant's shop: settings that are
// safe to expose plus the public catalogues.
type Storefront struct {
	Store      *domain.User       `json:"store"`
	Catalogues []domain.Catalogue `json:"catalogues"`
}

// StoreService manages merchant settings, dashboard reads, and storefront
// resolution.
type StoreService struct {
	Store SettingsStore
}

// NewStoreService constructs a StoreService over the given store.
func NewStoreService(st SettingsStore) *StoreService {
	return &StoreService{Store: st}
}

// Settings returns the merchant's user/settings record.
func (s *StoreService) Settings(ctx context.Context, userID int) (*domain.User, error) {
	u := s.Store.GetUser(userID)
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UpdateSettings applies a partial settings update. A missing merchant is a
// hard failure (ErrUserNotFound), not an absence: the record is seeded at
// startup and every other entity hangs off it.
func (s *StoreService) UpdateSettings(ctx context.Context, userID int, patch domain.StoreSettingsPatch) (*domain.User, error) {
	u, err := s.Store.UpdateStoreSettings(userID, patch)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Stats returns the merchant's cached stats record, materializing a zeroed
// one when no mutation has ever touched it. The dashboard always has
// something to render.
func (s *StoreService) Stats(ctx context.Context, userID int) (*domain.StoreStats, error) {
	if st := s.Store.GetStoreStats(userID); st != nil {
		return st, nil
	}
	return s.Store.ApplyStatsDelta(userID, domain.StatsPatch{}), nil
}

// GetDashboard assembles the admin dashboard snapshot.
func (s *StoreService) GetDashboard(ctx context.Context, userID int) (*Dashboard, error) {
	stats, err := s.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Stats:             stats,
		RecentOrders:      s.Store.ListRecentOrders(userID, 5),
		PopularCatalogues: s.Store.ListPopularCatalogues(userID, 3),
	}, nil
}

// GetStorefront resolves a public store by slug and returns its public
// catalogues. Private catalogues never leave this method.
func (s *StoreService) GetStorefront(ctx context.Context, slug string) (*Storefront, error) {
	u := s.Store.GetUserBySlug(slug)
	if u == nil {
		return nil, ErrStoreNotFound
	}

	public := make([]domain.Catalogue, 0)
	for _, c := range s.Store.ListCatalogues(u.ID) {
		if c.IsPublic {
			public = append(public, c)
		}
	}
	return &Storefront{Store: u, Catalogues: public}, nil
}
