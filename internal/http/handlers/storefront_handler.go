// Public storefront HTTP handlers.
//
// These endpoints are reachable by customers without authentication:
//   - GET  /store/{slug}                          (store + public catalogues)
//   - GET  /store/{slug}/catalogues/{id}          (catalogue + products, counts a view)
//   - POST /store/{slug}/catalogues/{id}/share    (counts a share, returns wa.me link)
//   - POST /store/{slug}/orders                   (place an order, Idempotency-Key aware)
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/storelink/go-store-backend/internal/domain"
	"github.com/storelink/go-store-backend/internal/http/middleware"
	"github.com/storelink/go-store-backend/internal/services"
)

// IdempotencyStore persists order-placement idempotency records so client
// retries replay the original response instead of creating a second order.
type IdempotencyStore interface {
	GetIdempotency(userID int, key string, now time.Time) *domain.Idempotency
	CreateIdempotency(userID int, key string, orderID, status int, ttl time.Duration) (*domain.Idempotency, error)
}

// WithIdempotency wires the idempotency record store and TTL into the
// storefront order endpoint. Without it, Idempotency-Key headers are
// accepted but replays are not detected.
func (h *Handlers) WithIdempotency(st IdempotencyStore, ttl time.Duration) *Handlers {
	h.idemStore = st
	h.idemTTL = ttl
	return h
}

// ShareResponse is returned by the share endpoint: the updated catalogue
// and the WhatsApp deep link to hand to the sharing client.
type ShareResponse struct {
	Catalogue *domain.Catalogue `json:"catalogue"`
	ShareURL  string            `json:"share_url"`
}

// StorefrontCatalogueResponse is a public catalogue with its products.
type StorefrontCatalogueResponse struct {
	Catalogue *domain.Catalogue `json:"catalogue"`
	Products  []domain.Product  `json:"products"`
}

// storefrontCatalogue resolves the slug and catalogue id and enforces that
// the catalogue belongs to that store and is public. Writes the error
// response itself; the returned catalogue is nil when it did.
func (h *Handlers) storefrontCatalogue(c *gin.Context) (*services.Storefront, *domain.Catalogue) {
	sf, err := h.storeSvc.GetStorefront(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeStoreNotFound, "store not found")
		return nil, nil
	}
	id, okID := idParam(c, "id")
	if !okID {
		return nil, nil
	}
	cl, err := h.catalogueSvc.Get(c.Request.Context(), id)
	if err != nil || cl.UserID != sf.Store.ID {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "catalogue not found")
		return nil, nil
	}
	if !cl.IsPublic {
		fail(c, http.StatusNotFound, ErrCodePrivateCatalogue, "catalogue not found")
		return nil, nil
	}
	return sf, cl
}

// GetStorefront godoc
// @ID          getStorefront
// @Summary     Get a public store with its public catalogues
// @Tags        Storefront
// @Produce     json
// @Param       slug  path      string  true  "Store slug"
// @Success     200  {object}  services.Storefront
// @Failure     404  {object}  handlers.ErrorResponse  "Store not found"
// @Router      /store/{slug} [get]
func (h *Handlers) GetStorefront(c *gin.Context) {
	sf, err := h.storeSvc.GetStorefront(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeStoreNotFound, "store not found")
		return
	}
	ok(c, http.StatusOK, sf)
}

// GetStorefrontCatalogue godoc
// @ID          getStorefrontCatalogue
// @Summary     Get a public catalogue with its products
// @Description Each request counts one view on the catalogue. Views do not touch the merchant's stats record.
// @Tags        Storefront
// @Produce     json
// @Param       slug  path  string  true  "Store slug"
// @Param       id    path  int     true  "Catalogue ID"
// @Success     200  {object}  handlers.StorefrontCatalogueResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Store or catalogue not found"
// @Router      /store/{slug}/catalogues/{id} [get]
func (h *Handlers) GetStorefrontCatalogue(c *gin.Context) {
	_, cl := h.storefrontCatalogue(c)
	if cl == nil {
		return
	}
	viewed, err := h.catalogueSvc.View(c.Request.Context(), cl.ID)
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "catalogue not found")
		return
	}
	products, err := h.catalogueSvc.Products(c.Request.Context(), cl.ID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, StorefrontCatalogueResponse{Catalogue: viewed, Products: products})
}

// ShareStorefrontCatalogue godoc
// @ID          shareStorefrontCatalogue
// @Summary     Share a public catalogue via WhatsApp
// @Description Counts one share (catalogue counter + merchant stats) and returns the wa.me deep link.
// @Tags        Storefront
// @Produce     json
// @Param       slug  path  string  true  "Store slug"
// @Param       id    path  int     true  "Catalogue ID"
// @Success     200  {object}  handlers.ShareResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Store or catalogue not found"
// @Router      /store/{slug}/catalogues/{id}/share [post]
func (h *Handlers) ShareStorefrontCatalogue(c *gin.Context) {
	_, cl := h.storefrontCatalogue(c)
	if cl == nil {
		return
	}
	shared, shareURL, err := h.catalogueSvc.Share(c.Request.Context(), cl.ID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, ShareResponse{Catalogue: shared, ShareURL: shareURL})
}

// CreateStorefrontOrder godoc
// @ID          createStorefrontOrder
// @Summary     Place an order against a public store
// @Description Supports the Idempotency-Key header: a retry with the same key within the TTL replays the original order instead of creating a new one.
// @Tags        Storefront
// @Accept      json
// @Produce     json
// @Param       slug             path    string  true   "Store slug"
// @Param       Idempotency-Key  header  string  false  "Safe-retry key"
// @Param       body             body    handlers.CreateOrderRequest  true  "Order payload"
// @Success     200  {object}  handlers.OrderResponse  "Replayed previous order"
// @Success     201  {object}  handlers.OrderResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Store not found"
// @Router      /store/{slug}/orders [post]
func (h *Handlers) CreateStorefrontOrder(c *gin.Context) {
	sf, err := h.storeSvc.GetStorefront(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeStoreNotFound, "store not found")
		return
	}
	userID := sf.Store.ID

	// Replay: return the originally created order without re-executing.
	if key, hasKey := middleware.GetIdempotencyKey(c); hasKey && h.idemStore != nil {
		if rec := h.idemStore.GetIdempotency(userID, key, time.Now().UTC()); rec != nil {
			o, items, err := h.orderSvc.Get(c.Request.Context(), rec.OrderID)
			if err != nil {
				fail(c, http.StatusInternalServerError, ErrCodeInternal, "replay target missing")
				return
			}
			ok(c, http.StatusOK, OrderResponse{Order: o, Items: items})
			return
		}
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}

	lines := make([]services.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, services.OrderLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	o, items, err := h.orderSvc.Create(c.Request.Context(), userID, domain.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
	}, lines)
	if err != nil {
		failOrderCreate(c, err)
		return
	}

	if key, hasKey := middleware.GetIdempotencyKey(c); hasKey && h.idemStore != nil {
		// Best effort: losing the record only costs replay detection.
		_, _ = h.idemStore.CreateIdempotency(userID, key, o.ID, http.StatusCreated, h.idemTTL)
	}

	ok(c, http.StatusCreated, OrderResponse{Order: o, Items: items})
}
