package storage

import (
	"context"
	"studiohub/pkg/domain"
)

// TenantUpdates lists the tenant fields to change. Nil fields are left alone.
type TenantUpdates struct {
	Name   *string
	Tier   *domain.Tier
	Status *domain.TenantStatus
	// CustomDomain set to an empty string clears the domain.
	CustomDomain *string
	APIKeyHash   *string
}

// TenantStorage persists studio accounts.
type TenantStorage interface {
	// StoreTenant inserts a tenant. A taken slug yields ErrUniqueViolation.
	StoreTenant(ctx context.Context, tenant domain.Tenant) (*domain.Tenant, error)
	TenantByID(ctx context.Context, id domain.TenantID) (*domain.Tenant, error)
	TenantBySlug(ctx context.Context, slug domain.TenantSlug) (*domain.Tenant, error)
	// TenantByDomain matches the custom domain case-insensitively.
	TenantByDomain(ctx context.Context, host string) (*domain.Tenant, error)
	// UpdateTenant applies updates and returns the updated row, or nil when the
	// tenant does not exist.
	UpdateTenant(ctx context.Context, id domain.TenantID, updates TenantUpdates) (*domain.Tenant, error)
}
