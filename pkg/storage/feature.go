package storage

import (
	"context"
	"studiohub/pkg/domain"
)

// FeatureStorage persists explicit per-tenant feature overrides.
type FeatureStorage interface {
	FeatureOverrides(ctx context.Context, tenantID domain.TenantID) ([]domain.FeatureOverride, error)
	// SetFeatureOverride creates or replaces the override for its tenant and feature.
	SetFeatureOverride(ctx context.Context, override domain.FeatureOverride) error
	// DeleteFeatureOverride removes an override; removing a missing one is not an error.
	DeleteFeatureOverride(ctx context.Context, tenantID domain.TenantID, feature domain.Feature) error
}
