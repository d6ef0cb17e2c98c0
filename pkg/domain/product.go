package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"studiohub/pkg/serrors"
)

// ProductID uniquely identifies a print product.
type ProductID uuid.UUID

func (id ProductID) String() string { return uuid.UUID(id).String() }

// Product is something a gallery client can order, such as an 8x10 print.
type Product struct {
	ID       ProductID `json:"id"`
	TenantID TenantID  `json:"tenantId"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Price is in minor currency units of the tenant's currency.
	Price  int64 `json:"price"`
	Active bool  `json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewProduct validates and builds an active product.
func NewProduct(tenantID TenantID, name, description string, price int64, now time.Time) (Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, serrors.With(serrors.ErrBadRequest, "product name is required")
	}
	if price < 0 {
		return Product{}, ErrNegativePrice
	}

	return Product{
		ID:          ProductID(uuid.New()),
		TenantID:    tenantID,
		Name:        name,
		Description: strings.TrimSpace(description),
		Price:       price,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
