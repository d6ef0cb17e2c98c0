package domain

import (
	"time"

	"github.com/google/uuid"
)

type PaymentID uuid.UUID

// Payment records money received for an order. ProviderPaymentID is unique.
type Payment struct {
	ID                PaymentID `json:"id"`
	TenantID          TenantID  `json:"tenantId"`
	OrderID           OrderID   `json:"orderId"`
	ProviderPaymentID string    `json:"providerPaymentId"`
	Amount            int64     `json:"amount"`
	Currency          string    `json:"currency"`
	CreatedAt         time.Time `json:"createdAt"`
}

// PaymentNotification is what the payment provider reports through its webhook.
type PaymentNotification struct {
	ProviderPaymentID string
	SessionID         string
	TenantID          TenantID
	OrderID           OrderID
	Amount            int64
	Currency          string
}

// Matches reports whether n pays exactly for o: same checkout session (when
// the order has one), same amount and same currency.
func (n PaymentNotification) Matches(o Order) bool {
	if o.PaymentSessionID != "" && o.PaymentSessionID != n.SessionID {
		return false
	}

	return n.Amount == o.Total && n.Currency == o.Currency
}

// NewPayment builds the payment row for a confirmed notification.
func NewPayment(n PaymentNotification, now time.Time) Payment {
	return Payment{
		ID:                PaymentID(uuid.New()),
		TenantID:          n.TenantID,
		OrderID:           n.OrderID,
		ProviderPaymentID: n.ProviderPaymentID,
		Amount:            n.Amount,
		Currency:          n.Currency,
		CreatedAt:         now,
	}
}
