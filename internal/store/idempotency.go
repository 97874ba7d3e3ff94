package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/storelink/go-store-backend/internal/domain"
)

// ErrDuplicate indicates an idempotency record already exists for the
// (userID, key) tuple.
var ErrDuplicate = errors.New("duplicate")

// GetIdempotency returns the non-expired record for (userID, key), or nil
// when the key has never been seen or has expired.
func (s *Store) GetIdempotency(userID int, key string, now time.Time) *domain.Idempotency {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.idempotency[idemKey(userID, key)]
	if !ok || !rec.ExpiresAt.After(now) {
		return nil
	}
	out := *rec
	return &out
}

// CreateIdempotency records that the order placement identified by key
// completed with the given order id and HTTP status, valid for ttl.
// Returns ErrDuplicate when a live record already exists for the tuple.
func (s *Store) CreateIdempotency(userID int, key string, orderID, status int, ttl time.Duration) (*domain.Idempotency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	mk := idemKey(userID, key)
	if rec, ok := s.idempotency[mk]; ok && rec.ExpiresAt.After(now) {
		return nil, ErrDuplicate
	}
	rec := &domain.Idempotency{
		ID:        uuid.NewString(),
		UserID:    userID,
		Key:       key,
		OrderID:   orderID,
		Status:    status,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	s.idempotency[mk] = rec
	out := *rec
	return &out, nil
}

func idemKey(userID int, key string) string {
	return fmt.Sprintf("%d:%s", userID, key)
}
