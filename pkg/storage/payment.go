package storage

import (
	"context"
	"studiohub/pkg/domain"
)

// PaymentStorage persists received payments. Provider payment ids are unique.
type PaymentStorage interface {
	PaymentByProviderID(ctx context.Context, providerPaymentID string) (*domain.Payment, error)
	StorePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)
}
