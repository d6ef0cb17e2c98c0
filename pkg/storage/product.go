package storage

import (
	"context"
	"studiohub/pkg/domain"
)

// ProductStorage persists the print products a tenant sells.
type ProductStorage interface {
	StoreProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	// ProductsByIDs returns the tenant's products among ids, active or not.
	ProductsByIDs(ctx context.Context, tenantID domain.TenantID, ids []domain.ProductID) ([]domain.Product, error)
	TenantProducts(ctx context.Context, tenantID domain.TenantID, activeOnly bool) ([]domain.Product, error)
}
