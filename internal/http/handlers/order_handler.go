// Order HTTP handlers (admin side).
//
// REST endpoints for order resources:
//   - POST /orders
//   - GET  /orders
//   - GET  /orders/recent
//   - GET  /orders/{id}
//   - PUT  /orders/{id}/status
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storelink/go-store-backend/internal/domain"
	"github.com/storelink/go-store-backend/internal/services"
	"github.com/storelink/go-store-backend/internal/utils"
)

// OrderLineRequest is one line of a new order.
type OrderLineRequest struct {
	ProductID int `json:"product_id" binding:"required,gt=0" example:"2"`
	Quantity  int `json:"quantity" binding:"required,gt=0" example:"3"`
}

// CreateOrderRequest is the JSON payload for placing an order. A status
// field, if a client sends one, is ignored: orders always start "pending".
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name" binding:"required,min=1,max=255" example:"Ada Okafor"`
	CustomerEmail string             `json:"customer_email" binding:"omitempty,email" example:"ada@example.com"`
	CustomerPhone string             `json:"customer_phone" binding:"omitempty,max=32" example:"+2348012345678"`
	Items         []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest names the status to move the order to.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"shipped"`
}

// OrderResponse is an order together with its line items.
type OrderResponse struct {
	Order *domain.Order      `json:"order"`
	Items []domain.OrderItem `json:"items"`
}

func (h *Handlers) createOrder(c *gin.Context, req CreateOrderRequest) (*OrderResponse, error) {
	lines := make([]services.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, services.OrderLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	o, items, err := h.orderSvc.Create(c.Request.Context(), merchantID, domain.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
	}, lines)
	if err != nil {
		return nil, err
	}
	return &OrderResponse{Order: o, Items: items}, nil
}

// failOrderCreate maps order placement errors onto HTTP responses.
func failOrderCreate(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "order references an unknown product")
	case errors.Is(err, services.ErrEmptyOrder):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "order has no items")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
	}
}

// CreateOrder godoc
// @ID          createOrder
// @Summary     Create an order
// @Description Places an order for the merchant. Unit prices are snapshotted from current product prices; the order starts in "pending" regardless of input.
// @Tags        Orders
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateOrderRequest  true  "Order payload"
// @Success     201  {object}  handlers.OrderResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /orders [post]
func (h *Handlers) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	resp, err := h.createOrder(c, req)
	if err != nil {
		failOrderCreate(c, err)
		return
	}
	ok(c, http.StatusCreated, resp)
}

// ListOrders godoc
// @ID          listOrders
// @Summary     List the merchant's orders
// @Description Newest first (descending creation time).
// @Tags        Orders
// @Produce     json
// @Param       limit  query  int  false  "Max results (0 = all)"
// @Success     200  {array}  domain.Order
// @Router      /orders [get]
func (h *Handlers) ListOrders(c *gin.Context) {
	limit := utils.AtoiDefault(c.Query("limit"), 0)
	items, err := h.orderSvc.List(c.Request.Context(), merchantID, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// ListRecentOrders godoc
// @ID          listRecentOrders
// @Summary     List the merchant's most recent orders
// @Tags        Orders
// @Produce     json
// @Param       limit  query  int  false  "Max results"  default(5)
// @Success     200  {array}  domain.Order
// @Router      /orders/recent [get]
func (h *Handlers) ListRecentOrders(c *gin.Context) {
	limit := utils.AtoiDefault(c.Query("limit"), 5)
	items, err := h.orderSvc.Recent(c.Request.Context(), merchantID, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// GetOrder godoc
// @ID          getOrder
// @Summary     Get an order with its items
// @Tags        Orders
// @Produce     json
// @Param       id   path      int  true  "Order ID"
// @Success     200  {object}  handlers.OrderResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Order not found"
// @Router      /orders/{id} [get]
func (h *Handlers) GetOrder(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		return
	}
	o, items, err := h.orderSvc.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "order not found")
		return
	}
	ok(c, http.StatusOK, OrderResponse{Order: o, Items: items})
}

// UpdateOrderStatus godoc
// @ID          updateOrderStatus
// @Summary     Update an order's status
// @Description Any of the five statuses may follow any other; there is no terminal state. The per-status stats buckets are rebalanced accordingly.
// @Tags        Orders
// @Accept      json
// @Produce     json
// @Param       id    path  int                                 true  "Order ID"
// @Param       body  body  handlers.UpdateOrderStatusRequest   true  "New status"
// @Success     200  {object}  domain.Order
// @Failure     400  {object}  handlers.ErrorResponse  "Unknown status"
// @Failure     404  {object}  handlers.ErrorResponse  "Order not found"
// @Router      /orders/{id}/status [put]
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	id, okID := idParam(c, "id")
	if !okID {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	o, err := h.orderSvc.UpdateStatus(c.Request.Context(), id, domain.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			fail(c, http.StatusBadRequest, ErrCodeInvalidStatus, "status must be one of pending, processing, shipped, delivered, cancelled")
		case errors.Is(err, services.ErrOrderNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "order not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, o)
}
