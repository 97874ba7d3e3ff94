// Product HTTP handlers.
//
// REST endpoints for product resources:
//   - POST   /products
//   - GET    /products
//   - GET    /products/{id}
//   - PUT    /products/{id}
//   - DELETE /products/{id}
//   - GET    /categories/{id}/products
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storelink/go-store-backend/internal/domain"
	"github.com/storelink/go-store-backend/internal/services"
)

// CreateProductRequest is the JSON payload for creating a product.
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255" example:"Wireless Earbuds"`
	Description string  `json:"description" example:"Bluetooth 5.3, 24h battery"`
	SKU         string  `json:"sku" example:"WE-001"`
	Price       float64 `json:"price" binding:"gte=0" example:"49.99"`
	Stock       int     `json:"stock" binding:"gte=0" example:"120"`
	StockStatus string  `json:"stock_status" binding:"omitempty,oneof=in_stock low_stock out_of_stock" example:"in_stock"`
	ImageURL    string  `json:"image_url" binding:"omitempty,url"`
	CategoryID  int     `json:"category_id" binding:"omitempty,gt=0" example:"1"`
}

// UpdateProductRequest is the JSON payload for a partial product update.
// Absent fields keep their stored values.
type UpdateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string  `json:"description"`
	SKU         *string  `json:"sku"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	StockStatus *string  `json:"stock_status" binding:"omitempty,oneof=in_stock low_stock out_of_stock"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,url"`
	CategoryID  *int     `json:"category_id" binding:"omitempty,gt=0"`
}

func (r UpdateProductRequest) patch() domain.ProductPatch {
	p := domain.ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		SKU:         r.SKU,
		Price:       r.Price,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
		CategoryID:  r.CategoryID,
	}
	if r.StockStatus != nil {
		ss := domain.StockStatus(*r.StockStatus)
		p.StockStatus = &ss
	}
	return p
}

// CreateProduct godoc
// @ID          createProduct
// @Summary     Create a product
// @Description Creates a product for the merchant and bumps the product stats.
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateProductRequest  true  "Create product payload"
// @Success     201  {object}  domain.Product
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /products [post]
func (h *Handlers) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}

	status := domain.StockStatus(req.StockStatus)
	if req.StockStatus == "" {
		status = domain.StockInStock
	}
	p, err := h.productSvc.Create(c.Request.Context(), merchantID, domain.Product{
		Name:        req.Name,
		Description: req.Description,
		SKU:         req.SKU,
		Price:       req.Price,
		Stock:       req.Stock,
		StockStatus: status,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, p)
}

// ListProducts godoc
// @ID          listProducts
// @Summary     List the merchant's products
// @Tags        Products
// @Produce     json
// @Success     200  {array}   domain.Product
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /products [get]
func (h *Handlers) ListProducts(c *gin.Context) {
	items, err := h.productSvc.List(c.Request.Context(), merchantID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// GetProduct godoc
// @ID          getProduct
// @Summary     Get a product
// @Tags        Products
// @Produce     json
// @Param       id   path      int  true  "Product ID"
// @Success     200  {object}  domain.Product
// @Failure     404  {object}  handlers.ErrorResponse  "Product not found"
// @Router      /products/{id} [get]
func (h *Handlers) GetProduct(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		return
	}
	p, err := h.productSvc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "product not found")
		return
	}
	ok(c, http.StatusOK, p)
}

// UpdateProduct godoc
// @ID          updateProduct
// @Summary     Update a product (partial)
// @Description Merges the supplied fields over the stored product; omitted fields are unchanged.
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       id    path  int                             true  "Product ID"
// @Param       body  body  handlers.UpdateProductRequest   true  "Fields to update"
// @Success     200  {object}  domain.Product
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Product not found"
// @Router      /products/{id} [put]
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		return
	}
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	p, err := h.productSvc.Update(c.Request.Context(), id, req.patch())
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "product not found")
		return
	}
	ok(c, http.StatusOK, p)
}

// DeleteProduct godoc
// @ID          deleteProduct
// @Summary     Delete a product
// @Description Hard delete. Catalogue associations referencing the product remain (known limitation).
// @Tags        Products
// @Param       id   path  int  true  "Product ID"
// @Success     204  {string}  string  "No Content"
// @Failure     404  {object}  handlers.ErrorResponse  "Product not found"
// @Router      /products/{id} [delete]
func (h *Handlers) DeleteProduct(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		return
	}
	if err := h.productSvc.Delete(c.Request.Context(), id); err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "product not found")
		return
	}
	noContent(c)
}

// ListProductsByCategory godoc
// @ID          listProductsByCategory
// @Summary     List products in a category
// @Tags        Categories
// @Produce     json
// @Param       id   path      int  true  "Category ID"
// @Success     200  {array}   domain.Product
// @Failure     404  {object}  handlers.ErrorResponse  "Category not found"
// @Router      /categories/{id}/products [get]
func (h *Handlers) ListProductsByCategory(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		return
	}
	if _, err := h.categorySvc.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "category not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	items, err := h.productSvc.ListByCategory(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}
