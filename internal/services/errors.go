// Package services implements the business layer between the HTTP handlers
// and the in-memory store. This file centralizes the service-level sentinel
// errors; handlers translate them into HTTP statuses, services never shape
// HTTP responses themselves.
package services

import "errors"

var (
	// ErrUserNotFound indicates the merchant record is missing. Because the
	// merchant is seeded at startup this signals a broken precondition, and
	// handlers map it to a 500 rather than a 404.
	ErrUserNotFound = errors.New("user not found")

	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrCategoryNotFound indicates the requested category does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCatalogueNotFound indicates the requested catalogue does not exist.
	ErrCatalogueNotFound = errors.New("catalogue not found")

	// ErrCataloguePrivate is returned by storefront operations when the
	// catalogue exists but is not publicly visible.
	ErrCataloguePrivate = errors.New("catalogue is not public")

	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidStatus is returned when an order status update names a value
	// outside the five known statuses.
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrEmptyOrder is returned when an order is placed without items.
	ErrEmptyOrder = errors.New("order has no items")

	// ErrStoreNotFound indicates no merchant owns the requested store slug.
	ErrStoreNotFound = errors.New("store not found")
)
