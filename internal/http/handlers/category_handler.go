// Category HTTP handlers.
//
// REST endpoints for category resources:
//   - POST   /categories
//   - GET    /categories
//   - GET    /categories/{id}
//   - PUT    /categories/{id}
//   - DELETE /categories/{id}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storelink/go-store-backend/internal/domain"
)

// CreateCategoryRequest is the JSON payload for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255" example:"Electronics"`
	Description string `json:"description" example:"Phones, audio, accessories"`
}

// UpdateCategoryRequest is the JSON payload for a partial category update.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
}

// CreateCategory godoc
// @ID          createCategory
// @Summary     Create a category
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateCategoryRequest  true  "Create category payload"
// @Success     201  {object}  domain.Category
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Router      /categories [post]
func (h *Handlers) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	cat, err := h.categorySvc.Create(c.Request.Context(), merchantID, domain.Category{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, cat)
}

// ListCategories godoc
// @ID          listCategories
// @Summary     List the merchant's categories
// @Tags        Categories
// @Produce     json
// @Success     200  {array}  domain.Category
// @Router      /categories [get]
func (h *Handlers) ListCategories(c *gin.Context) {
	items, err := h.categorySvc.List(c.Request.Context(), merchantID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// GetCategory godoc
// @ID          getCategory
// @Summary     Get a category
// @Tags        Categories
// @Produce     json
// @Param       id   path      int  true  "Category ID"
// @Success     200  {object}  domain.Category
// @Failure     404  {object}  handlers.ErrorResponse  "Category not found"
// @Router      /categories/{id} [get]
func (h *Handlers) GetCategory(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		return
	}
	cat, err := h.categorySvc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "category not found")
		return
	}
	ok(c, http.StatusOK, cat)
}

// UpdateCategory godoc
// @ID          updateCategory
// @Summary     Update a category (partial)
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Param       id    path  int                              true  "Category ID"
// @Param       body  body  handlers.UpdateCategoryRequest   true  "Fields to update"
// @Success     200  {object}  domain.Category
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Category not found"
// @Router      /categories/{id} [put]
func (h *Handlers) UpdateCategory(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		return
	}
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	cat, err := h.categorySvc.Update(c.Request.Context(), id, domain.CategoryPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "category not found")
		return
	}
	ok(c, http.StatusOK, cat)
}

// DeleteCategory godoc
// @ID          deleteCategory
// @Summary     Delete a category
// @Tags        Categories
// @Param       id   path  int  true  "Category ID"
// @Success     204  {string}  string  "No Content"
// @Failure     404  {object}  handlers.ErrorResponse  "Category not found"
// @Router      /categories/{id} [delete]
func (h *Handlers) DeleteCategory(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		return
	}
	if err := h.categorySvc.Delete(c.Request.Context(), id); err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "category not found")
		return
	}
	noContent(c)
}
