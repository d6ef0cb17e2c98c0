package orders

import (
	"studiohub/pkg/domain"
	"time"
)

// LineInput is one cart line as sent by the client.
type LineInput struct {
	ProductID domain.ProductID
	PhotoID   *domain.PhotoID
	Quantity  int
}

// PlaceInput is a client order for a gallery.
type PlaceInput struct {
	GalleryCode string
	// ClientIP identifies the caller for rate limiting.
	ClientIP string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	Items []LineInput
}

// PlaceResult is returned once to the client that placed the order.
type PlaceResult struct {
	OrderID     domain.OrderID     `json:"orderId"`
	OrderNumber string             `json:"orderNumber"`
	AccessToken string             `json:"accessToken"`
	Total       int64              `json:"total"`
	Currency    string             `json:"currency"`
	Status      domain.OrderStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}
