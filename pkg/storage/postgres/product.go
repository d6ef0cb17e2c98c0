package postgres

import (
	"context"
	"fmt"
	"studiohub/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const productsTable = "products"

func (p *PgSQL) StoreProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	var row PgProduct
	row.FromDomain(product)

	var stored PgProduct
	if _, err := p.Builder.Insert(productsTable).
		Rows(row).
		Returning(&PgProduct{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapError(err, "could not store product into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) ProductsByIDs(ctx context.Context,
	tenantID domain.TenantID,
	ids []domain.ProductID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []PgProduct
	if err := p.Builder.From(productsTable).
		Where(
			goqu.I("tenant_id").Eq(uuid.UUID(tenantID)),
			goqu.I("id").In(uuidStrings(ids)),
		).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch products by ids from pg: %w", err)
	}

	return toDomainSlice(rows, (*PgProduct).ToDomain), nil
}

func (p *PgSQL) TenantProducts(ctx context.Context, tenantID domain.TenantID, activeOnly bool) ([]domain.Product, error) {
	w := []goqu.Expression{goqu.I("tenant_id").Eq(uuid.UUID(tenantID))}
	if activeOnly {
		w = append(w, goqu.I("active").IsTrue())
	}

	var rows []PgProduct
	if err := p.Builder.From(productsTable).
		Where(w...).
		Order(goqu.I("name").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tenant products from pg: %w", err)
	}

	return toDomainSlice(rows, (*PgProduct).ToDomain), nil
}
