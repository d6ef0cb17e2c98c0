package tenancy

import (
	"studiohub/pkg/domain"
)

type SignupInput struct {
	Slug       string
	StudioName string
	OwnerName  string
	Email      string
	Password   string
	// ClientIP identifies the caller for rate limiting.
	ClientIP string
}

type SignupResult struct {
	Tenant domain.Tenant `json:"tenant"`
	Owner  domain.User   `json:"owner"`
}

type LoginInput struct {
	TenantID domain.TenantID
	Email    string
	Password string
	ClientIP string
}

// PlanChange is a billing event. Nil fields are left alone.
type PlanChange struct {
	Tier   *string
	Status *string
}

type InviteInput struct {
	Email string
	Name  string
	Role  string
}

// ResetPasswordInput redeems the token of a password reset or invitation
// e-mail.
type ResetPasswordInput struct {
	TenantID domain.TenantID
	Token    string
	Password string
	ClientIP string
}

type ProductInput struct {
	Name        string
	Description string
	Price       int64
}
