// Package domain defines the core entities of the store backend: the
// merchant (user + store settings), categories, products, catalogues,
// orders, and the cached per-merchant statistics record. These types are
// shared across the store, service, and HTTP layers.
//
// All entity identifiers are positive integers assigned sequentially per
// entity type (separate sequences; a product id and a category id may
// coincide numerically). Ids are never reused within a process lifetime.
package domain

import "time"

// OrderStatus enumerates the lifecycle states of an order. Every order is
// created as StatusPending regardless of caller input; after that, any
// status may transition to any other status, including away from
// "cancelled". There is deliberately no state-machine guard.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the five known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// StatusBucket names one of the four per-merchant order counters kept in
// StoreStats. Both "shipped" and "delivered" fall into BucketCompleted.
type StatusBucket string

const (
	BucketPending    StatusBucket = "pending"
	BucketProcessing StatusBucket = "processing"
	BucketCompleted  StatusBucket = "completed"
	BucketCancelled  StatusBucket = "cancelled"
)

// Bucket maps an order status to its stats counter. A transition between
// two statuses that share a bucket (shipped → delivered) nets out to zero
// in the counters.
func (s OrderStatus) Bucket() StatusBucket {
	switch s {
	case StatusProcessing:
		return BucketProcessing
	case StatusShipped, StatusDelivered:
		return BucketCompleted
	case StatusCancelled:
		return BucketCancelled
	default:
		return BucketPending
	}
}

// StockStatus is the merchant-facing availability label of a product. It is
// set independently of the numeric stock count and is not derived from it.
type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockLowStock   StockStatus = "low_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

// User models both the login identity and the per-merchant store settings.
// The system is single tenant: one meaningful user is seeded at startup and
// every other entity references it by UserID.
type User struct {
	ID               int    `json:"id"`
	Username         string `json:"username"`
	Password         string `json:"-"`
	StoreName        string `json:"store_name"`
	StoreDescription string `json:"store_description"`
	StoreSlug        string `json:"store_slug"`
	WhatsAppNumber   string `json:"whatsapp_number"`
	ThemeColor       string `json:"theme_color"`
}

// StoreSettingsPatch carries a partial update of the merchant's store
// settings. Nil fields are left untouched by the merge.
type StoreSettingsPatch struct {
	StoreName        *string `json:"store_name,omitempty"`
	StoreDescription *string `json:"store_description,omitempty"`
	StoreSlug        *string `json:"store_slug,omitempty"`
	WhatsAppNumber   *string `json:"whatsapp_number,omitempty"`
	ThemeColor       *string `json:"theme_color,omitempty"`
}

// Category groups products for one merchant. Flat: no hierarchy, no cycles.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UserID      int    `json:"user_id"`
}

// CategoryPatch carries a partial category update (nil = keep).
type CategoryPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Product is a sellable item belonging to one merchant.
type Product struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	SKU         string      `json:"sku"`
	Price       float64     `json:"price"`
	Stock       int         `json:"stock"`
	StockStatus StockStatus `json:"stock_status"`
	ImageURL    string      `json:"image_url"`
	CategoryID  int         `json:"category_id"`
	UserID      int         `json:"user_id"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ProductPatch carries a partial product update (nil = keep).
type ProductPatch struct {
	Name        *string      `json:"name,omitempty"`
	Description *string      `json:"description,omitempty"`
	SKU         *string      `json:"sku,omitempty"`
	Price       *float64     `json:"price,omitempty"`
	Stock       *int         `json:"stock,omitempty"`
	StockStatus *StockStatus `json:"stock_status,omitempty"`
	ImageURL    *string      `json:"image_url,omitempty"`
	CategoryID  *int         `json:"category_id,omitempty"`
}

// Catalogue is a named, shareable curated subset of products. ViewCount and
// ShareCount start at zero and only ever grow; updates to the catalogue
// never reset them.
type Catalogue struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	UserID      int       `json:"user_id"`
	IsPublic    bool      `json:"is_public"`
	ViewCount   int       `json:"view_count"`
	ShareCount  int       `json:"share_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// CataloguePatch carries a partial catalogue update (nil = keep). The view
// and share counters are intentionally not patchable.
type CataloguePatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	IsPublic    *bool   `json:"is_public,omitempty"`
}

// CatalogueProduct is one row of the catalogue↔product association. The
// (CatalogueID, ProductID) pair is the deduplication key: inserting the same
// pair twice yields exactly one row.
type CatalogueProduct struct {
	CatalogueID int `json:"catalogue_id"`
	ProductID   int `json:"product_id"`
}

// Order is a customer purchase against one merchant. OrderNumber is a
// human-facing "ORD-"-prefixed code generated at creation; it is NOT
// guaranteed unique and collisions go undetected.
type Order struct {
	ID            int         `json:"id"`
	OrderNumber   string      `json:"order_number"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email,omitempty"`
	CustomerPhone string      `json:"customer_phone,omitempty"`
	TotalAmount   float64     `json:"total_amount"`
	Status        OrderStatus `json:"status"`
	UserID        int         `json:"user_id"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OrderItem is a line of an order. Price is the unit price snapshot taken
// at order time, not a live reference to the product's current price.
// Items are created atomically with their parent order and never mutated
// or deleted on their own.
type OrderItem struct {
	ID        int     `json:"id"`
	OrderID   int     `json:"order_id"`
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// StoreStats is the cached aggregate record for one merchant, updated
// synchronously as a side effect of entity mutations (push-update, never
// recomputed by scanning). The *Change counters accumulate monotonically;
// no periodic reset exists, despite what the naming suggests. The four
// order counters are not cross-checked against TotalOrders.
type StoreStats struct {
	ID               int       `json:"id"`
	UserID           int       `json:"user_id"`
	TotalRevenue     float64   `json:"total_revenue"`
	TotalOrders      int       `json:"total_orders"`
	CataloguesShared int       `json:"catalogues_shared"`
	TotalProducts    int       `json:"total_products"`
	RevenueChange    float64   `json:"revenue_change"`
	OrdersChange     int       `json:"orders_change"`
	SharesChange     int       `json:"shares_change"`
	ProductsChange   int       `json:"products_change"`
	PendingOrders    int       `json:"pending_orders"`
	ProcessingOrders int       `json:"processing_orders"`
	CompletedOrders  int       `json:"completed_orders"`
	CancelledOrders  int       `json:"cancelled_orders"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// StatsPatch carries a partial StoreStats update. Callers compute the new
// absolute values themselves; the store only shallow-merges non-nil fields
// and refreshes UpdatedAt. This is a read-then-write pattern, not an atomic
// increment primitive, so it must run under the store's lock.
type StatsPatch struct {
	TotalRevenue     *float64 `json:"total_revenue,omitempty"`
	TotalOrders      *int     `json:"total_orders,omitempty"`
	CataloguesShared *int     `json:"catalogues_shared,omitempty"`
	TotalProducts    *int     `json:"total_products,omitempty"`
	RevenueChange    *float64 `json:"revenue_change,omitempty"`
	OrdersChange     *int     `json:"orders_change,omitempty"`
	SharesChange     *int     `json:"shares_change,omitempty"`
	ProductsChange   *int     `json:"products_change,omitempty"`
	PendingOrders    *int     `json:"pending_orders,omitempty"`
	ProcessingOrders *int     `json:"processing_orders,omitempty"`
	CancelledOrders  *int     `json:"cancelled_orders,omitempty"`
	CompletedOrders  *int     `json:"completed_orders,omitempty"`
}
