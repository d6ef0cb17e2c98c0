package features

import (
	"context"
	"studiohub/pkg/domain"
)

//go:generate mockgen -package mockfeatures -source=interface.go -destination=mock/mockfeatures.go *
type Resolver interface {
	// HasFeature reports whether tenantID may use feature. An override is
	// authoritative; otherwise the tenant's tier decides. Unknown tenants and
	// unknown features resolve to false.
	HasFeature(ctx context.Context, cache *Cache, tenantID domain.TenantID, feature domain.Feature) (bool, error)
	// All resolves every known feature for tenantID.
	All(ctx context.Context, cache *Cache, tenantID domain.TenantID) (map[domain.Feature]bool, error)
	// Require is HasFeature returning ErrFeatureUnavailable when the feature
	// is off.
	Require(ctx context.Context, cache *Cache, tenantID domain.TenantID, feature domain.Feature) error
}
