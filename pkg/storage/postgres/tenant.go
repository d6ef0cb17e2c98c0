package postgres

import (
	"context"
	"fmt"
	"strings"
	"studiohub/pkg/domain"
	"studiohub/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	tenantsTable      = "tenants"
	usersTable        = "users"
	featureFlagsTable = "feature_flags"
)

func (p *PgSQL) StoreTenant(ctx context.Context, tenant domain.Tenant) (*domain.Tenant, error) {
	var row PgTenant
	row.FromDomain(tenant)

	var stored PgTenant
	if _, err := p.Builder.Insert(tenantsTable).
		Rows(row).
		Returning(&PgTenant{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapError(err, "could not store tenant into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) TenantByID(ctx context.Context, id domain.TenantID) (*domain.Tenant, error) {
	return p.tenantWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) TenantBySlug(ctx context.Context, slug domain.TenantSlug) (*domain.Tenant, error) {
	return p.tenantWhere(ctx, goqu.I("slug").Eq(string(slug)))
}

func (p *PgSQL) TenantByDomain(ctx context.Context, host string) (*domain.Tenant, error) {
	return p.tenantWhere(ctx, goqu.Func("lower", goqu.I("custom_domain")).Eq(strings.ToLower(host)))
}

func (p *PgSQL) tenantWhere(ctx context.Context, where exp.Expression) (*domain.Tenant, error) {
	var row PgTenant
	found, err := p.Builder.From(tenantsTable).
		Where(where).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch tenant from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateTenant sets only the non-nil fields of updates. updated_at is always bumped.
func (p *PgSQL) UpdateTenant(ctx context.Context,
	id domain.TenantID,
	updates storage.TenantUpdates) (*domain.Tenant, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Tier != nil {
		rec["tier"] = string(*updates.Tier)
	}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.CustomDomain != nil {
		rec["custom_domain"] = nullString(*updates.CustomDomain)
	}
	if updates.APIKeyHash != nil {
		rec["api_key_hash"] = nullString(*updates.APIKeyHash)
	}

	var row PgTenant
	found, err := p.Builder.Update(tenantsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgTenant{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapError(err, "could not update tenant in pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
