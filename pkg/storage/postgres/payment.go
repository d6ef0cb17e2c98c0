package postgres

import (
	"context"
	"fmt"
	"studiohub/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

func (p *PgSQL) PaymentByProviderID(ctx context.Context, providerPaymentID string) (*domain.Payment, error) {
	var row PgPayment
	found, err := p.Builder.From(paymentsTable).
		Where(goqu.I("provider_payment_id").Eq(providerPaymentID)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch payment from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StorePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	var row PgPayment
	row.FromDomain(payment)

	var stored PgPayment
	if _, err := p.Builder.Insert(paymentsTable).
		Rows(row).
		Returning(&PgPayment{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapError(err, "could not store payment into pg")
	}

	return stored.ToDomain(), nil
}
