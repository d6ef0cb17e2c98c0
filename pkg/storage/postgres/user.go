package postgres

import (
	"context"
	"fmt"
	"studiohub/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var stored PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapError(err, "could not store user into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) UserByEmail(ctx context.Context, tenantID domain.TenantID, email domain.Email) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(
			goqu.I("tenant_id").Eq(uuid.UUID(tenantID)),
			goqu.I("email").Eq(string(email)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) TenantUsers(ctx context.Context, tenantID domain.TenantID) ([]domain.User, error) {
	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Where(goqu.I("tenant_id").Eq(uuid.UUID(tenantID))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tenant users from pg: %w", err)
	}

	return toDomainSlice(rows, (*PgUser).ToDomain), nil
}

func (p *PgSQL) SetPasswordResetToken(ctx context.Context,
	userID domain.UserID,
	tokenHash string,
	expiresAt time.Time) error {
	_, err := p.Builder.Update(usersTable).
		Set(goqu.Record{
			"reset_token_hash": tokenHash,
			"reset_expires_at": expiresAt,
		}).
		Where(goqu.I("id").Eq(uuid.UUID(userID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not set password reset token in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) UserByResetToken(ctx context.Context, tenantID domain.TenantID, tokenHash string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(
			goqu.I("tenant_id").Eq(uuid.UUID(tenantID)),
			goqu.I("reset_token_hash").Eq(tokenHash),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by reset token: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ConsumePasswordReset(ctx context.Context,
	userID domain.UserID,
	tokenHash, passwordHash string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(goqu.Record{
			"password_hash":    passwordHash,
			"reset_token_hash": nil,
			"reset_expires_at": nil,
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(userID)),
			goqu.I("reset_token_hash").Eq(tokenHash),
		).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not consume password reset in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
