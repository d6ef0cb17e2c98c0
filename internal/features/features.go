// Package features resolves which capabilities a tenant may use from its
// subscription tier and explicit overrides.
package features

import (
	"context"
	"fmt"
	"studiohub/pkg/domain"
	"studiohub/pkg/serrors"
	"studiohub/pkg/storage"
)

// ErrFeatureUnavailable is returned by Require for features the tenant's plan
// does not include.
var ErrFeatureUnavailable = serrors.With(serrors.ErrForbidden, "feature is not available on your plan")

// Store is the storage the resolver reads from. storage.AllStorage and
// transaction handles satisfy it.
type Store interface {
	TenantByID(ctx context.Context, id domain.TenantID) (*domain.Tenant, error)
	FeatureOverrides(ctx context.Context, tenantID domain.TenantID) ([]domain.FeatureOverride, error)
}

var _ Store = (storage.AllStorage)(nil)

type entry struct {
	tenant    *domain.Tenant
	overrides map[domain.Feature]bool
}

// Cache memoizes tenant and override lookups for the lifetime of one request.
// A nil *Cache disables memoization. It is not safe for concurrent use.
type Cache struct {
	entries map[domain.TenantID]entry
}

func NewCache() *Cache {
	return &Cache{entries: map[domain.TenantID]entry{}}
}

type cacheKey struct{}

// WithCache returns a context carrying a fresh Cache. Services resolve
// features through CacheFrom, so every lookup of one request shares it.
func WithCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, cacheKey{}, NewCache())
}

// CacheFrom returns the Cache of ctx, or nil when there is none.
func CacheFrom(ctx context.Context) *Cache {
	cache, _ := ctx.Value(cacheKey{}).(*Cache)

	return cache
}

// Invalidate drops the memo for tenantID, e.g. after its overrides changed.
func (c *Cache) Invalidate(tenantID domain.TenantID) {
	if c != nil {
		delete(c.entries, tenantID)
	}
}

type resolver struct {
	store Store
}

func NewResolver(store Store) Resolver {
	return &resolver{store: store}
}

func (r *resolver) load(ctx context.Context, cache *Cache, tenantID domain.TenantID) (entry, error) {
	if cache != nil {
		if e, ok := cache.entries[tenantID]; ok {
			return e, nil
		}
	}

	tenant, err := r.store.TenantByID(ctx, tenantID)
	if err != nil {
		return entry{}, fmt.Errorf("could not fetch tenant: %w", err)
	}

	e := entry{tenant: tenant, overrides: map[domain.Feature]bool{}}
	if tenant != nil {
		overrides, err := r.store.FeatureOverrides(ctx, tenantID)
		if err != nil {
			return entry{}, fmt.Errorf("could not fetch feature overrides: %w", err)
		}
		for _, o := range overrides {
			e.overrides[o.Feature] = o.Enabled
		}
	}

	if cache != nil {
		cache.entries[tenantID] = e
	}

	return e, nil
}

func (e entry) has(feature domain.Feature) bool {
	if e.tenant == nil || !feature.Known() {
		return false
	}
	if enabled, ok := e.overrides[feature]; ok {
		return enabled
	}

	return feature.IncludedIn(e.tenant.Tier)
}

func (r *resolver) HasFeature(ctx context.Context,
	cache *Cache,
	tenantID domain.TenantID,
	feature domain.Feature,
) (bool, error) {
	if !feature.Known() {
		return false, nil
	}

	e, err := r.load(ctx, cache, tenantID)
	if err != nil {
		return false, err
	}

	return e.has(feature), nil
}

func (r *resolver) All(ctx context.Context, cache *Cache, tenantID domain.TenantID) (map[domain.Feature]bool, error) {
	e, err := r.load(ctx, cache, tenantID)
	if err != nil {
		return nil, err
	}

	all := make(map[domain.Feature]bool, len(domain.Features()))
	for _, f := range domain.Features() {
		all[f] = e.has(f)
	}

	return all, nil
}

func (r *resolver) Require(ctx context.Context, cache *Cache, tenantID domain.TenantID, feature domain.Feature) error {
	ok, err := r.HasFeature(ctx, cache, tenantID, feature)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrFeatureUnavailable, feature)
	}

	return nil
}
