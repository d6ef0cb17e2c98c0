package orders

import (
	"context"
	"studiohub/pkg/domain"
	"studiohub/pkg/storage"
)

//go:generate mockgen -package mockorders -source=interface.go -destination=mock/mockorders.go *
type Service interface {
	// Place creates a pending order from a gallery client's cart.
	Place(ctx context.Context, input PlaceInput) (*PlaceResult, error)
	// ConfirmPayment applies a payment provider notification. Replaying a
	// notification, or receiving one for an order that is no longer pending,
	// changes nothing and is not an error.
	ConfirmPayment(ctx context.Context, notification domain.PaymentNotification) (*domain.Order, error)
	UpdateStatus(ctx context.Context,
		tenantID domain.TenantID,
		id domain.OrderID,
		status string) (*domain.Order, error)
	Get(ctx context.Context, tenantID domain.TenantID, id domain.OrderID) (*domain.Order, error)
	List(ctx context.Context, tenantID domain.TenantID, filter storage.OrderFilter) (storage.TenantOrders, error)
	// LookupByToken lets a client follow an order with the token returned by Place.
	LookupByToken(ctx context.Context, token string) (*domain.Order, error)
}
