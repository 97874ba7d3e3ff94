// Handler wiring and shared helpers.
//
// Handlers are transport-thin: they bind and validate input (gin binding
// tags are the field validation layer; the store below trusts its inputs),
// call the application services, and translate service sentinel errors into
// HTTP responses. No business logic lives here.
package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/storelink/go-store-backend/internal/domain"
	"github.com/storelink/go-store-backend/internal/services"
)

// merchantID is the hardcoded single-tenant merchant. There is no
// authentication layer; every admin endpoint operates on this user, which
// is seeded at startup.
const merchantID = 1

//
// Service contracts (context-aware)
//

// ProductService defines the product operations consumed by HTTP handlers.
type ProductService interface {
	Create(ctx context.Context, userID int, p domain.Product) (*domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	List(ctx context.Context, userID int) ([]domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int) ([]domain.Product, error)
	Update(ctx context.Context, id int, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id int) error
}

// CategoryService defines the category operations consumed by HTTP handlers.
type CategoryService interface {
	Create(ctx context.Context, userID int, c domain.Category) (*domain.Category, error)
	Get(ctx context.Context, id int) (*domain.Category, error)
	List(ctx context.Context, userID int) ([]domain.Category, error)
	Update(ctx context.Context, id int, patch domain.CategoryPatch) (*domain.Category, error)
	Delete(ctx context.Context, id int) error
}

// CatalogueService defines the catalogue operations consumed by HTTP
// handlers, including the counter endpoints and product association.
type CatalogueService interface {
	Create(ctx context.Context, userID int, c domain.Catalogue) (*domain.Catalogue, error)
	Get(ctx context.Context, id int) (*domain.Catalogue, error)
	List(ctx context.Context, userID int) ([]domain.Catalogue, error)
	Update(ctx context.Context, id int, patch domain.CataloguePatch) (*domain.Catalogue, error)
	Delete(ctx context.Context, id int) error
	Popular(ctx context.Context, userID, limit int) ([]domain.Catalogue, error)
	AddProduct(ctx context.Context, catalogueID, productID int) error
	RemoveProduct(ctx context.Context, catalogueID, productID int) error
	Products(ctx context.Context, catalogueID int) ([]domain.Product, error)
	View(ctx context.Context, id int) (*domain.Catalogue, error)
	Share(ctx context.Context, id int) (*domain.Catalogue, string, error)
}

// OrderService defines the order operations consumed by HTTP handlers.
type OrderService interface {
	Create(ctx context.Context, userID int, o domain.Order, lines []services.OrderLine) (*domain.Order, []domain.OrderItem, error)
	Get(ctx context.Context, id int) (*domain.Order, []domain.OrderItem, error)
	List(ctx context.Context, userID, limit int) ([]domain.Order, error)
	Recent(ctx context.Context, userID, limit int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) (*domain.Order, error)
}

// StoreService defines the merchant-level operations consumed by HTTP
// handlers: settings, dashboard, and public storefront resolution.
type StoreService interface {
	Settings(ctx context.Context, userID int) (*domain.User, error)
	UpdateSettings(ctx context.Context, userID int, patch domain.StoreSettingsPatch) (*domain.User, error)
	Stats(ctx context.Context, userID int) (*domain.StoreStats, error)
	GetDashboard(ctx context.Context, userID int) (*services.Dashboard, error)
	GetStorefront(ctx context.Context, slug string) (*services.Storefront, error)
}

// Handlers groups the HTTP endpoints of the admin API and the storefront.
type Handlers struct {
	productSvc   ProductService
	categorySvc  CategoryService
	catalogueSvc CatalogueService
	orderSvc     OrderService
	storeSvc     StoreService

	// Set via WithIdempotency; nil disables replay detection.
	idemStore IdempotencyStore
	idemTTL   time.Duration
}

// New constructs a Handlers instance bound to the given services.
func New(p ProductService, cat CategoryService, cl CatalogueService, o OrderService, st StoreService) *Handlers {
	return &Handlers{
		productSvc:   p,
		categorySvc:  cat,
		catalogueSvc: cl,
		orderSvc:     o,
		storeSvc:     st,
	}
}

// idParam parses the named path parameter as a positive integer id. On
// failure it writes a 400 and reports false; callers return immediately.
func idParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}
