package tenancy

import (
	"context"
	"studiohub/pkg/domain"
)

//go:generate mockgen -package mocktenancy -source=interface.go -destination=mock/mocktenancy.go *
type Service interface {
	// Signup creates a studio on the starter tier together with its owner.
	Signup(ctx context.Context, input SignupInput) (*SignupResult, error)
	// Login checks a member's password and issues a session token.
	Login(ctx context.Context, input LoginInput) (string, error)
	Get(ctx context.Context, tenantID domain.TenantID) (*domain.Tenant, error)
	// ResolveHost maps a request host to an active studio: a subdomain of the
	// platform root domain, or a studio's own custom domain.
	ResolveHost(ctx context.Context, host string) (*domain.Tenant, error)
	// ChangePlan applies a billing event.
	ChangePlan(ctx context.Context, tenantID domain.TenantID, change PlanChange) (*domain.Tenant, error)

	Features(ctx context.Context, tenantID domain.TenantID) (map[domain.Feature]bool, error)
	SetFeatureOverride(ctx context.Context, tenantID domain.TenantID, feature domain.Feature, enabled bool) error
	ClearFeatureOverride(ctx context.Context, tenantID domain.TenantID, feature domain.Feature) error

	// RotateAPIKey replaces the studio API key. The plaintext key is only
	// ever returned here.
	RotateAPIKey(ctx context.Context, tenantID domain.TenantID) (string, error)
	// SetCustomDomain sets or, with an empty host, clears the custom domain.
	SetCustomDomain(ctx context.Context, tenantID domain.TenantID, host string) (*domain.Tenant, error)

	Members(ctx context.Context, tenantID domain.TenantID) ([]domain.User, error)
	InviteMember(ctx context.Context, tenantID domain.TenantID, input InviteInput) (*domain.User, error)
	// RequestPasswordReset succeeds whether or not the address belongs to a
	// member, so callers cannot discover accounts.
	RequestPasswordReset(ctx context.Context, tenantID domain.TenantID, email, clientIP string) error
	// ResetPassword sets the password of the member holding a valid reset or
	// invitation token. Tokens are single use.
	ResetPassword(ctx context.Context, input ResetPasswordInput) error

	CreateProduct(ctx context.Context, tenantID domain.TenantID, input ProductInput) (*domain.Product, error)
	ListProducts(ctx context.Context, tenantID domain.TenantID, activeOnly bool) ([]domain.Product, error)
}
