package postgres

import (
	"context"
	"fmt"
	"studiohub/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (p *PgSQL) FeatureOverrides(ctx context.Context, tenantID domain.TenantID) ([]domain.FeatureOverride, error) {
	var rows []PgFeatureFlag
	if err := p.Builder.From(featureFlagsTable).
		Where(goqu.I("tenant_id").Eq(uuid.UUID(tenantID))).
		Order(goqu.I("feature").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch feature overrides from pg: %w", err)
	}

	out := make([]domain.FeatureOverride, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

// SetFeatureOverride upserts on (tenant_id, feature).
func (p *PgSQL) SetFeatureOverride(ctx context.Context, override domain.FeatureOverride) error {
	_, err := p.Builder.Insert(featureFlagsTable).
		Rows(PgFeatureFlag{
			TenantID: uuid.UUID(override.TenantID),
			Feature:  string(override.Feature),
			Enabled:  override.Enabled,
		}).
		OnConflict(goqu.DoUpdate("tenant_id, feature", goqu.Record{
			"enabled": goqu.L("EXCLUDED.enabled"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not set feature override in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) DeleteFeatureOverride(ctx context.Context, tenantID domain.TenantID, feature domain.Feature) error {
	_, err := p.Builder.Delete(featureFlagsTable).
		Where(
			goqu.I("tenant_id").Eq(uuid.UUID(tenantID)),
			goqu.I("feature").Eq(string(feature)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete feature override in pg: %w", err)
	}

	return nil
}
