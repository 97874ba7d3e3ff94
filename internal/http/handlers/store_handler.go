// Merchant-level HTTP handlers: store settings, stats, dashboard.
//
//   - GET /settings
//   - PUT /settings
//   - GET /stats
//   - GET /dashboard
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storelink/go-store-backend/internal/domain"
	"github.com/storelink/go-store-backend/internal/services"
)

// UpdateSettingsRequest is the JSON payload for a partial settings update.
type UpdateSettingsRequest struct {
	StoreName        *string `json:"store_name" binding:"omitempty,min=1,max=255"`
	StoreDescription *string `json:"store_description"`
	StoreSlug        *string `json:"store_slug" binding:"omitempty,min=1,max=64"`
	WhatsAppNumber   *string `json:"whatsapp_number" binding:"omitempty,max=20"`
	ThemeColor       *string `json:"theme_color" binding:"omitempty,hexcolor"`
}

// GetSettings godoc
// @ID          getSettings
// @Summary     Get the merchant's store settings
// @Tags        Store
// @Produce     json
// @Success     200  {object}  domain.User
// @Failure     500  {object}  handlers.ErrorResponse  "Merchant record missing"
// @Router      /settings [get]
func (h *Handlers) GetSettings(c *gin.Context) {
	u, err := h.storeSvc.Settings(c.Request.Context(), merchantID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "merchant record missing")
		return
	}
	ok(c, http.StatusOK, u)
}

// UpdateSettings godoc
// @ID          updateSettings
// @Summary     Update the merchant's store settings (partial)
// @Description A missing merchant record is a hard failure (500), not a 404: the record is seeded at startup.
// @Tags        Store
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.UpdateSettingsRequest  true  "Fields to update"
// @Success     200  {object}  domain.User
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Merchant record missing"
// @Router      /settings [put]
func (h *Handlers) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	u, err := h.storeSvc.UpdateSettings(c.Request.Context(), merchantID, domain.StoreSettingsPatch{
		StoreName:        req.StoreName,
		StoreDescription: req.StoreDescription,
		StoreSlug:        req.StoreSlug,
		WhatsAppNumber:   req.WhatsAppNumber,
		ThemeColor:       req.ThemeColor,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "merchant record missing")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, u)
}

// GetStats godoc
// @ID          getStats
// @Summary     Get the merchant's cached store statistics
// @Tags        Store
// @Produce     json
// @Success     200  {object}  domain.StoreStats
// @Router      /stats [get]
func (h *Handlers) GetStats(c *gin.Context) {
	st, err := h.storeSvc.Stats(c.Request.Context(), merchantID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, st)
}

// GetDashboard godoc
// @ID          getDashboard
// @Summary     Get the admin dashboard snapshot
// @Description Stats plus the five most recent orders and three most viewed catalogues.
// @Tags        Store
// @Produce     json
// @Success     200  {object}  services.Dashboard
// @Router      /dashboard [get]
func (h *Handlers) GetDashboard(c *gin.Context) {
	d, err := h.storeSvc.GetDashboard(c.Request.Context(), merchantID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, d)
}
