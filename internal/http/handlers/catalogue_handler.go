// Catalogue HTTP handlers (admin side).
//
// REST endpoints for catalogue resources and their product associations:
//   - POST   /catalogues
//   - GET    /catalogues
//   - GET    /catalogues/popular
//   - GET    /catalogues/{id}
//   - PUT    /catalogues/{id}
//   - DELETE /catalogues/{id}           (cascades to association rows)
//   - GET    /catalogues/{id}/products
//   - POST   /catalogues/{id}/products
//   - DELETE /catalogues/{id}/products/{productId}
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storelink/go-store-backend/internal/domain"
	"github.com/storelink/go-store-backend/internal/services"
	"github.com/storelink/go-store-backend/internal/utils"
)

// CreateCatalogueRequest is the JSON payload for creating a catalogue.
type CreateCatalogueRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255" example:"Summer Sale"`
	Description string `json:"description" example:"Seasonal picks"`
	ImageURL    string `json:"image_url" binding:"omitempty,url"`
	IsPublic    bool   `json:"is_public" example:"true"`
}

// UpdateCatalogueRequest is the JSON payload for a partial catalogue
// update. View/share counters are not updatable.
type UpdateCatalogueRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url" binding:"omitempty,url"`
	IsPublic    *bool   `json:"is_public"`
}

// AddCatalogueProductRequest names the product to associate.
type AddCatalogueProductRequest struct {
	ProductID int `json:"product_id" binding:"required,gt=0" example:"3"`
}

// CreateCatalogue godoc
// @ID          createCatalogue
// @Summary     Create a catalogue
// @Tags        Catalogues
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateCatalogueRequest  true  "Create catalogue payload"
// @Success     201  {object}  domain.Catalogue
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Router      /catalogues [post]
func (h *Handlers) CreateCatalogue(c *gin.Context) {
	var req CreateCatalogueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	cl, err := h.catalogueSvc.Create(c.Request.Context(), merchantID, domain.Catalogue{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, cl)
}

// ListCatalogues godoc
// @ID          listCatalogues
// @Summary     List the merchant's catalogues
// @Tags        Catalogues
// @Produce     json
// @Success     200  {array}  domain.Catalogue
// @Router      /catalogues [get]
func (h *Handlers) ListCatalogues(c *gin.Context) {
	items, err := h.catalogueSvc.List(c.Request.Context(), merchantID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// ListPopularCatalogues godoc
// @ID          listPopularCatalogues
// @Summary     List the most viewed catalogues
// @Description Sorted by descending view count; ties keep insertion order.
// @Tags        Catalogues
// @Produce     json
// @Param       limit  query  int  false  "Max results"  default(3)
// @Success     200  {array}  domain.Catalogue
// @Router      /catalogues/popular [get]
func (h *Handlers) ListPopularCatalogues(c *gin.Context) {
	limit := utils.AtoiDefault(c.Query("limit"), 3)
	items, err := h.catalogueSvc.Popular(c.Request.Context(), merchantID, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// GetCatalogue godoc
// @ID          getCatalogue
// @Summary     Get a catalogue
// @Tags        Catalogues
// @Produce     json
// @Param       id   path      int  true  "Catalogue ID"
// @Success     200  {object}  domain.Catalogue
// @Failure     404  {object}  handlers.ErrorResponse  "Catalogue not found"
// @Router      /catalogues/{id} [get]
func (h *Handlers) GetCatalogue(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		return
	}
	cl, err := h.catalogueSvc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "catalogue not found")
		return
	}
	ok(c, http.StatusOK, cl)
}

// UpdateCatalogue godoc
// @ID          updateCatalogue
// @Summary     Update a catalogue (partial)
// @Description Merges the supplied fields; view/share counters are never reset by updates.
// @Tags        Catalogues
// @Accept      json
// @Produce     json
// @Param       id    path  int                               true  "Catalogue ID"
// @Param       body  body  handlers.UpdateCatalogueRequest   true  "Fields to update"
// @Success     200  {object}  domain.Catalogue
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Catalogue not found"
// @Router      /catalogues/{id} [put]
func (h *Handlers) UpdateCatalogue(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		return
	}
	var req UpdateCatalogueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	cl, err := h.catalogueSvc.Update(c.Request.Context(), id, domain.CataloguePatch{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "catalogue not found")
		return
	}
	ok(c, http.StatusOK, cl)
}

// DeleteCatalogue godoc
// @ID          deleteCatalogue
// @Summary     Delete a catalogue
// @Description Deletes the catalogue and all of its product association rows.
// @Tags        Catalogues
// @Param       id   path  int  true  "Catalogue ID"
// @Success     204  {string}  string  "No Content"
// @Failure     404  {object}  handlers.ErrorResponse  "Catalogue not found"
// @Router      /catalogues/{id} [delete]
func (h *Handlers) DeleteCatalogue(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		return
	}
	if err := h.catalogueSvc.Delete(c.Request.Context(), id); err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "catalogue not found")
		return
	}
	noContent(c)
}

// ListCatalogueProducts godoc
// @ID          listCatalogueProducts
// @Summary     List the products in a catalogue
// @Description Products deleted after association are skipped, not errors.
// @Tags        Catalogues
// @Produce     json
// @Param       id   path      int  true  "Catalogue ID"
// @Success     200  {array}   domain.Product
// @Failure     404  {object}  handlers.ErrorResponse  "Catalogue not found"
// @Router      /catalogues/{id}/products [get]
func (h *Handlers) ListCatalogueProducts(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		return
	}
	items, err := h.catalogueSvc.Products(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "catalogue not found")
		return
	}
	ok(c, http.StatusOK, items)
}

// AddCatalogueProduct godoc
// @ID          addCatalogueProduct
// @Summary     Add a product to a catalogue
// @Description Idempotent: adding the same pair twice leaves exactly one association.
// @Tags        Catalogues
// @Accept      json
// @Param       id    path  int                                   true  "Catalogue ID"
// @Param       body  body  handlers.AddCatalogueProductRequest   true  "Product to add"
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Catalogue or product not found"
// @Router      /catalogues/{id}/products [post]
func (h *Handlers) AddCatalogueProduct(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		return
	}
	var req AddCatalogueProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	if err := h.catalogueSvc.AddProduct(c.Request.Context(), id, req.ProductID); err != nil {
		switch {
		case errors.Is(err, services.ErrCatalogueNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "catalogue not found")
		case errors.Is(err, services.ErrProductNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "product not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}

// RemoveCatalogueProduct godoc
// @ID          removeCatalogueProduct
// @Summary     Remove a product from a catalogue
// @Description Removing an association that does not exist is a no-op.
// @Tags        Catalogues
// @Param       id         path  int  true  "Catalogue ID"
// @Param       productId  path  int  true  "Product ID"
// @Success     204  {string}  string  "No Content"
// @Failure     404  {object}  handlers.ErrorResponse  "Catalogue not found"
// @Router      /catalogues/{id}/products/{productId} [delete]
func (h *Handlers) RemoveCatalogueProduct(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		return
	}
	pid, okPID := idParam(c, "productId")
	if !okPID {
		return
	}
	if err := h.catalogueSvc.RemoveProduct(c.Request.Context(), id, pid); err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "catalogue not found")
		return
	}
	noContent(c)
}
