package store

import (
	"sort"
	"time"

	"github.com/storelink/go-store-backend/internal/domain"
)

// CreateOrder stores the order together with its items and bumps the
// merchant's order statistics, all under one lock acquisition so the
// operation is atomic from the caller's point of view.
//
// The supplied status is ignored: every order starts life as
// domain.StatusPending, whatever the caller put in o.Status. Items receive
// their own ids and the parent order id; their Price fields are stored
// as given; the caller snapshots unit prices at order time.
func (s *Store) CreateOrder(o domain.Order, items []domain.OrderItem) (*domain.Order, []domain.OrderItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	o.ID = s.nextOrderID
	s.nextOrderID++
	o.Status = domain.StatusPending
	o.CreatedAt = now
	o.UpdatedAt = now
	s.orders[o.ID] = &o

	stored := make([]domain.OrderItem, 0, len(items))
	for _, it := range items {
		it.ID = s.nextOrderItemID
		s.nextOrderItemID++
		it.OrderID = o.ID
		s.orderItems[it.ID] = &it
		stored = append(stored, it)
	}

	cur := s.statsForLocked(o.UserID)
	revenue := cur.TotalRevenue + o.TotalAmount
	revenueChange := cur.RevenueChange + o.TotalAmount
	orders := cur.TotalOrders + 1
	ordersChange := cur.OrdersChange + 1
	pending := cur.PendingOrders + 1
	s.applyStatsLocked(o.UserID, domain.StatsPatch{
		TotalRevenue:  &revenue,
		RevenueChange: &revenueChange,
		TotalOrders:   &orders,
		OrdersChange:  &ordersChange,
		PendingOrders: &pending,
	})

	out := o
	return &out, stored
}

// GetOrder returns the order with the given id, or nil when absent.
func (s *Store) GetOrder(id int) *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyOrder(s.orders[id])
}

// ListOrderItems returns the items of an order in insertion order.
func (s *Store) ListOrderItems(orderID int) []domain.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.OrderItem, 0)
	for _, id := range sortedKeys(s.orderItems) {
		if it := s.orderItems[id]; it.OrderID == orderID {
			out = append(out, *it)
		}
	}
	return out
}

// ListOrders returns the merchant's orders, most recent first (descending
// CreatedAt; orders created in the same instant keep insertion order). A
// limit <= 0 means no limit.
func (s *Store) ListOrders(userID, limit int) []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, 0)
	for _, id := range sortedKeys(s.orders) {
		if o := s.orders[id]; o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ListRecentOrders returns the merchant's most recent orders, newest first.
// A limit <= 0 falls back to 5.
func (s *Store) ListRecentOrders(userID, limit int) []domain.Order {
	if limit <= 0 {
		limit = 5
	}
	return s.ListOrders(userID, limit)
}

// UpdateOrderStatus moves the order to the given status and rebalances the
// merchant's per-status counters: the bucket for the old status is
// decremented and the bucket for the new one incremented. When both
// statuses map to the same bucket (shipped → delivered) the two moves
// cancel out. No transition guard is applied; any status may follow any
// other, including leaving "cancelled". UpdatedAt is refreshed on every
// call. Returns nil when the id is absent.
func (s *Store) UpdateOrderStatus(id int, status domain.OrderStatus) *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil
	}

	old := o.Status
	o.Status = status
	o.UpdatedAt = time.Now().UTC()

	cur := s.statsForLocked(o.UserID)
	counts := map[domain.StatusBucket]int{
		domain.BucketPending:    cur.PendingOrders,
		domain.BucketProcessing: cur.ProcessingOrders,
		domain.BucketCompleted:  cur.CompletedOrders,
		domain.BucketCancelled:  cur.CancelledOrders,
	}
	counts[old.Bucket()]--
	counts[status.Bucket()]++

	pending := counts[domain.BucketPending]
	processing := counts[domain.BucketProcessing]
	completed := counts[domain.BucketCompleted]
	cancelled := counts[domain.BucketCancelled]
	s.applyStatsLocked(o.UserID, domain.StatsPatch{
		PendingOrders:    &pending,
		ProcessingOrders: &processing,
		CompletedOrders:  &completed,
		CancelledOrders:  &cancelled,
	})

	return copyOrder(o)
}

func copyOrder(o *domain.Order) *domain.Order {
	if o == nil {
		return nil
	}
	out := *o
	return &out
}
