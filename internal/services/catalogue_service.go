// Package services – CatalogueService
//
// Catalogues are the shareable unit of the storefront. Beyond CRUD, this
// service owns the two counter operations (View bumps only the catalogue's
// own view count; Share additionally feeds the merchant's share stats) and
// builds the WhatsApp deep link returned to sharing clients.
package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/storelink/go-store-backend/internal/domain"
)

// CatalogueStore defines the store contract required by CatalogueService.
type CatalogueStore interface {
	CreateCatalogue(c domain.Catalogue) *domain.Catalogue
	GetCatalogue(id int) *domain.Catalogue
	ListCatalogues(userID int) []domain.Catalogue
	UpdateCatalogue(id int, patch domain.CataloguePatch) *domain.Catalogue
	DeleteCatalogue(id int) bool
	IncrementCatalogueViewCount(id int) *domain.Catalogue
	IncrementCatalogueShareCount(id int) *domain.Catalogue
	ListPopularCatalogues(userID, limit int) []domain.Catalogue
	AddProductToCatalogue(catalogueID, productID int) domain.CatalogueProduct
	RemoveProductFromCatalogue(catalogueID, productID int)
	ListProductsInCatalogue(catalogueID int) []domain.Product
	GetProduct(id int) *domain.Product
	GetUser(id int) *domain.User
}

// CatalogueService manages catalogues, their product associations, and the
// view/share counters.
type CatalogueService struct {
	Store CatalogueStore

	// PublicBaseURL is the externally reachable origin of the storefront,
	// used when composing share links (e.g. "https://shop.example.com").
	PublicBaseURL string
}

// NewCatalogueService constructs a CatalogueService over the given store.
func NewCatalogueService(st CatalogueStore, publicBaseURL string) *CatalogueService {
	return &CatalogueService{Store: st, PublicBaseURL: publicBaseURL}
}

// Create stores a new catalogue for userID with both counters at zero.
func (s *CatalogueService) Create(ctx context.Context, userID int, c domain.Catalogue) (*domain.Catalogue, error) {
	c.UserID = userID
	return s.Store.CreateCatalogue(c), nil
}

// Get fetches a catalogue by id.
func (s *CatalogueService) Get(ctx context.Context, id int) (*domain.Catalogue, error) {
	c := s.Store.GetCatalogue(id)
	if c == nil {
		return nil, ErrCatalogueNotFound
	}
	return c, nil
}

// List returns the merchant's catalogues in insertion order.
func (s *CatalogueService) List(ctx context.Context, userID int) ([]domain.Catalogue, error) {
	return s.Store.ListCatalogues(userID), nil
}

// Update applies a partial update. View and share counts are not resettable
// through this path.
func (s *CatalogueService) Update(ctx context.Context, id int, patch domain.CataloguePatch) (*domain.Catalogue, error) {
	c := s.Store.UpdateCatalogue(id, patch)
	if c == nil {
		return nil, ErrCatalogueNotFound
	}
	return c, nil
}

// Delete removes a catalogue and cascades to its association rows.
func (s *CatalogueService) Delete(ctx context.Context, id int) error {
	if !s.Store.DeleteCatalogue(id) {
		return ErrCatalogueNotFound
	}
	return nil
}

// Popular returns up to limit catalogues by descending view count; a
// limit <= 0 falls back to 3.
func (s *CatalogueService) Popular(ctx context.Context, userID, limit int) ([]domain.Catalogue, error) {
	if limit <= 0 {
		limit = 3
	}
	return s.Store.ListPopularCatalogues(userID, limit), nil
}

// AddProduct associates a product with a catalogue. The association is
// idempotent: re-adding an existing pair is a no-op. Both sides must exist
// at association time.
func (s *CatalogueService) AddProduct(ctx context.Context, catalogueID, productID int) error {
	if s.Store.GetCatalogue(catalogueID) == nil {
		return ErrCatalogueNotFound
	}
	if s.Store.GetProduct(productID) == nil {
		return ErrProductNotFound
	}
	s.Store.AddProductToCatalogue(catalogueID, productID)
	return nil
}

// RemoveProduct drops the association; removing a missing pair is a no-op.
func (s *CatalogueService) RemoveProduct(ctx context.Context, catalogueID, productID int) error {
	if s.Store.GetCatalogue(catalogueID) == nil {
		return ErrCatalogueNotFound
	}
	s.Store.RemoveProductFromCatalogue(catalogueID, productID)
	return nil
}

// Products resolves a catalogue's associated products. Products deleted
// after association are silently skipped.
func (s *CatalogueService) Products(ctx context.Context, catalogueID int) ([]domain.Product, error) {
	if s.Store.GetCatalogue(catalogueID) == nil {
		return nil, ErrCatalogueNotFound
	}
	return s.Store.ListProductsInCatalogue(catalogueID), nil
}

// View records one catalogue view. Only the catalogue's own ViewCount
// moves; the merchant's stats record is untouched by views.
func (s *CatalogueService) View(ctx context.Context, id int) (*domain.Catalogue, error) {
	c := s.Store.IncrementCatalogueViewCount(id)
	if c == nil {
		return nil, ErrCatalogueNotFound
	}
	return c, nil
}

// Share records one share (catalogue ShareCount plus the merchant's share
// stats) and returns the WhatsApp deep link for the catalogue:
//
//	https://wa.me/<number>?text=<urlencoded message + catalogue URL>
func (s *CatalogueService) Share(ctx context.Context, id int) (*domain.Catalogue, string, error) {
	c := s.Store.IncrementCatalogueShareCount(id)
	if c == nil {
		return nil, "", ErrCatalogueNotFound
	}
	owner := s.Store.GetUser(c.UserID)
	if owner == nil {
		return nil, "", ErrUserNotFound
	}

	link := fmt.Sprintf("%s/store/%s/catalogues/%d", s.PublicBaseURL, owner.StoreSlug, c.ID)
	msg := fmt.Sprintf("Check out %s from %s! %s", c.Name, owner.StoreName, link)
	shareURL := fmt.Sprintf("https://wa.me/%s?text=%s", owner.WhatsAppNumber, url.QueryEscape(msg))
	return c, shareURL, nil
}
