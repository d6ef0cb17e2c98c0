package storage

import (
	"context"
	"studiohub/pkg/domain"
	"time"
)

// UserStorage persists team members. E-mails are unique per tenant.
type UserStorage interface {
	// StoreUser inserts a user. A duplicate e-mail within the tenant yields
	// ErrUniqueViolation.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	UserByEmail(ctx context.Context, tenantID domain.TenantID, email domain.Email) (*domain.User, error)
	TenantUsers(ctx context.Context, tenantID domain.TenantID) ([]domain.User, error)
	// SetPasswordResetToken stores the hash of an outstanding reset token.
	SetPasswordResetToken(ctx context.Context, userID domain.UserID, tokenHash string, expiresAt time.Time) error
	UserByResetToken(ctx context.Context, tenantID domain.TenantID, tokenHash string) (*domain.User, error)
	// ConsumePasswordReset sets the password hash and clears the reset token
	// only if the stored token hash still equals tokenHash. It returns nil when
	// the user is missing or the token was already used.
	ConsumePasswordReset(ctx context.Context, userID domain.UserID, tokenHash, passwordHash string) (*domain.User, error)
}
