// Package store implements the in-memory data layer of the application: one
// Store object owning a map per entity type, a per-type auto-increment id
// sequence, the catalogue↔product join table, and the cached per-merchant
// statistics record.
//
// The store is deliberately not a storage engine. State is process-wide,
// non-persistent, seeded from scratch on startup and discarded on exit.
// Lookups are linear scans; there are no secondary indexes.
//
// Concurrency: Go's HTTP server handles requests on separate goroutines, so
// every operation, including every read-modify-write sequence such as a
// counter increment or a stats merge, runs under the Store's single mutex.
// Entity mutation and the matching stats update happen inside the SAME
// method under one lock acquisition, so a call site cannot perform one half
// without the other.
//
// Error semantics:
//   - Absence is not an error. Getters return a nil pointer, updates of a
//     missing record return nil, deletes return false.
//   - The one exception is UpdateStoreSettings, which returns ErrUserNotFound
//     when the target user does not exist. Callers treat it as a hard
//     precondition failure rather than a 404-equivalent.
//
// Construct a fresh Store per test with New(); nothing in this package is a
// package-level singleton.
package store

import (
	"errors"
	"sort"
	"sync"

	"github.com/storelink/go-store-backend/internal/domain"
)

// ErrUserNotFound is returned by UpdateStoreSettings when the target user
// does not exist. It is the only hard failure the store raises; every other
// missing record is reported as absence.
var ErrUserNotFound = errors.New("user not found")

// Store holds all entity maps, id sequences, and derived statistics for a
// single process. All methods are safe for concurrent use.
type Store struct {
	mu sync.Mutex

	users             map[int]*domain.User
	categories        map[int]*domain.Category
	products          map[int]*domain.Product
	catalogues        map[int]*domain.Catalogue
	catalogueProducts map[string]domain.CatalogueProduct
	orders            map[int]*domain.Order
	orderItems        map[int]*domain.OrderItem
	stats             map[int]*domain.StoreStats
	idempotency       map[string]*domain.Idempotency

	// Per-type sequences. Separate on purpose: a product id and a category
	// id may coincide numerically. Ids start at 1 and are never reused.
	nextUserID      int
	nextCategoryID  int
	nextProductID   int
	nextCatalogueID int
	nextOrderID     int
	nextOrderItemID int
	nextStatsID     int
}

// New returns an empty Store with all sequences positioned at 1.
func New() *Store {
	return &Store{
		users:             make(map[int]*domain.User),
		categories:        make(map[int]*domain.Category),
		products:          make(map[int]*domain.Product),
		catalogues:        make(map[int]*domain.Catalogue),
		catalogueProducts: make(map[string]domain.CatalogueProduct),
		orders:            make(map[int]*domain.Order),
		orderItems:        make(map[int]*domain.OrderItem),
		stats:             make(map[int]*domain.StoreStats),
		idempotency:       make(map[string]*domain.Idempotency),
		nextUserID:        1,
		nextCategoryID:    1,
		nextProductID:     1,
		nextCatalogueID:   1,
		nextOrderID:       1,
		nextOrderItemID:   1,
		nextStatsID:       1,
	}
}

// Seed populates a fresh store with the demo merchant (user id 1), a small
// set of starter categories, and a zeroed stats record. It mirrors what the
// process does on every start; there is no persistence to restore from.
func (s *Store) Seed() *domain.User {
	u := s.CreateUser(domain.User{
		Username:         "demo",
		Password:         "demo123",
		StoreName:        "My WhatsApp Store",
		StoreDescription: "Quality products delivered to your door",
		StoreSlug:        "my-store",
		WhatsAppNumber:   "15551234567",
		ThemeColor:       "#25D366",
	})

	for _, name := range []string{"Electronics", "Clothing", "Home & Kitchen", "Beauty"} {
		s.CreateCategory(domain.Category{Name: name, UserID: u.ID})
	}

	s.ApplyStatsDelta(u.ID, domain.StatsPatch{})
	return u
}

// GetUser returns the user with the given id, or nil when absent.
func (s *Store) GetUser(id int) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyUser(s.users[id])
}

// GetUserByUsername returns the first user with the given username, or nil.
func (s *Store) GetUserByUsername(username string) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range sortedKeys(s.users) {
		if s.users[id].Username == username {
			return copyUser(s.users[id])
		}
	}
	return nil
}

// GetUserBySlug returns the first user whose public store slug matches, or
// nil. The storefront resolves its URL namespace through this lookup.
func (s *Store) GetUserBySlug(slug string) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range sortedKeys(s.users) {
		if s.users[id].StoreSlug == slug {
			return copyUser(s.users[id])
		}
	}
	return nil
}

// CreateUser assigns the next user id and stores the record.
func (s *Store) CreateUser(u domain.User) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.nextUserID
	s.nextUserID++
	s.users[u.ID] = &u
	return copyUser(&u)
}

// UpdateStoreSettings shallow-merges the patch over the user's store
// settings. Unlike every other update in this package it returns an error
// (ErrUserNotFound) when the target is missing: the merchant record is
// seeded at startup, so its absence is a broken precondition, not a 404.
func (s *Store) UpdateStoreSettings(userID int, patch domain.StoreSettingsPatch) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	if patch.StoreName != nil {
		u.StoreName = *patch.StoreName
	}
	if patch.StoreDescription != nil {
		u.StoreDescription = *patch.StoreDescription
	}
	if patch.StoreSlug != nil {
		u.StoreSlug = *patch.StoreSlug
	}
	if patch.WhatsAppNumber != nil {
		u.WhatsAppNumber = *patch.WhatsAppNumber
	}
	if patch.ThemeColor != nil {
		u.ThemeColor = *patch.ThemeColor
	}
	return copyUser(u), nil
}

func copyUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// sortedKeys returns the map keys in ascending order. Ids are assigned
// sequentially and never reused, so ascending id order IS insertion order;
// list operations rely on that for deterministic results.
func sortedKeys[V any](m map[int]V) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
