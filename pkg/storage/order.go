package storage

import (
	"context"
	"studiohub/pkg/domain"
	"time"
)

// OrderFilter narrows TenantOrders.
type OrderFilter struct {
	Status domain.OrderStatus
	Cursor time.Time
	Limit  uint
}

// TenantOrders is one page of a tenant's orders, newest first. Items are not
// loaded for listed orders.
type TenantOrders struct {
	Orders     []domain.Order
	NextCursor *time.Time
}

// OrderStorage persists orders together with their items.
type OrderStorage interface {
	// StoreOrder inserts the order and its items. A taken order number or
	// access token yields ErrUniqueViolation.
	StoreOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
	OrderByID(ctx context.Context, tenantID domain.TenantID, id domain.OrderID) (*domain.Order, error)
	OrderByAccessToken(ctx context.Context, token string) (*domain.Order, error)
	// UpdateOrderStatus writes the status and status timestamps of order only if
	// the stored status still equals expected. It returns nil when the order is
	// missing or the precondition failed.
	UpdateOrderStatus(ctx context.Context, order domain.Order, expected domain.OrderStatus) (*domain.Order, error)
	TenantOrders(ctx context.Context, tenantID domain.TenantID, filter OrderFilter) (TenantOrders, error)
}
