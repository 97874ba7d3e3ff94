// Package services – OrderService
//
// Order placement is the hot path of the storefront. The service snapshots
// unit prices at order time, totals the lines, generates the human-facing
// order number, and hands the assembled order plus items to the store, which
// persists both and feeds the merchant's order statistics in one step.
package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/storelink/go-store-backend/internal/domain"
)

// OrderStore defines the store contract required by OrderService.
type OrderStore interface {
	CreateOrder(o domain.Order, items []domain.OrderItem) (*domain.Order, []domain.OrderItem)
	GetOrder(id int) *domain.Order
	ListOrderItems(orderID int) []domain.OrderItem
	ListOrders(userID, limit int) []domain.Order
	ListRecentOrders(userID, limit int) []domain.Order
	UpdateOrderStatus(id int, status domain.OrderStatus) *domain.Order
	GetProduct(id int) *domain.Product
}

// OrderLine is one requested line of a new order: which product, how many.
type OrderLine struct {
	ProductID int
	Quantity  int
}

// OrderService manages order placement, listing, and status transitions.
type OrderService struct {
	Store OrderStore
}

// NewOrderService constructs an OrderService over the given store.
func NewOrderService(st OrderStore) *OrderService {
	return &OrderService{Store: st}
}

// newOrderNumber generates the human-facing order code: "ORD-" plus a
// random four-digit number. Not unique; collisions are possible and go
// undetected, which matches the storefront's existing behavior.
func newOrderNumber() string {
	return fmt.Sprintf("ORD-%d", 1000+rand.Intn(9000))
}

// Create places an order for userID. Each line's unit price is snapshotted
// from the product's current price; later price changes do not affect the
// stored items. The order total is the sum over lines of price×quantity.
// Whatever status the caller may have set is discarded: orders always
// start as "pending".
func (s *OrderService) Create(ctx context.Context, userID int, o domain.Order, lines []OrderLine) (*domain.Order, []domain.OrderItem, error) {
	if len(lines) == 0 {
		return nil, nil, ErrEmptyOrder
	}

	items := make([]domain.OrderItem, 0, len(lines))
	var total float64
	for _, ln := range lines {
		p := s.Store.GetProduct(ln.ProductID)
		if p == nil {
			return nil, nil, ErrProductNotFound
		}
		items = append(items, domain.OrderItem{
			ProductID: ln.ProductID,
			Quantity:  ln.Quantity,
			Price:     p.Price,
		})
		total += p.Price * float64(ln.Quantity)
	}

	o.UserID = userID
	o.OrderNumber = newOrderNumber()
	o.TotalAmount = total

	created, storedItems := s.Store.CreateOrder(o, items)
	return created, storedItems, nil
}

// Get fetches an order and its items.
func (s *OrderService) Get(ctx context.Context, id int) (*domain.Order, []domain.OrderItem, error) {
	o := s.Store.GetOrder(id)
	if o == nil {
		return nil, nil, ErrOrderNotFound
	}
	return o, s.Store.ListOrderItems(id), nil
}

// List returns the merchant's orders, newest first. A limit <= 0 returns
// all of them.
func (s *OrderService) List(ctx context.Context, userID, limit int) ([]domain.Order, error) {
	return s.Store.ListOrders(userID, limit), nil
}

// Recent returns the merchant's most recent orders (default 5).
func (s *OrderService) Recent(ctx context.Context, userID, limit int) ([]domain.Order, error) {
	return s.Store.ListRecentOrders(userID, limit), nil
}

// UpdateStatus moves an order to the given status. Membership in the five
// known statuses is checked here; beyond that any transition is legal,
// including reopening a cancelled order.
func (s *OrderService) UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	o := s.Store.UpdateOrderStatus(id, status)
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}
