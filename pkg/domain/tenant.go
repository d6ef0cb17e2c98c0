package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TenantID uniquely identifies a studio account.
type TenantID uuid.UUID

func (id TenantID) String() string { return uuid.UUID(id).String() }

// Tier is a subscription level. Tiers are totally ordered by Rank.
type Tier string

const (
	TierStarter Tier = "starter"
	TierPro     Tier = "pro"
	TierStudio  Tier = "studio"
)

// Rank orders tiers starter < pro < studio. Unknown tiers rank 0 and never
// satisfy a feature requirement.
func (t Tier) Rank() int {
	switch t {
	case TierStarter:
		return 1
	case TierPro:
		return 2
	case TierStudio:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether t is ranked at or above other.
func (t Tier) AtLeast(other Tier) bool {
	return t.Rank() > 0 && t.Rank() >= other.Rank()
}

// ParseTier validates a tier name.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if t.Rank() == 0 {
		return "", ErrTierInvalid
	}

	return t, nil
}

// TenantStatus is the billing state of a tenant.
type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "active"
	TenantStatusSuspended TenantStatus = "suspended"
	TenantStatusCancelled TenantStatus = "cancelled"
)

func (s TenantStatus) Valid() bool {
	switch s {
	case TenantStatusActive, TenantStatusSuspended, TenantStatusCancelled:
		return true
	default:
		return false
	}
}

// DefaultCurrency is used for tenants that never picked one.
const DefaultCurrency = "usd"

// Tenant is a photography studio account, the unit of isolation.
type Tenant struct {
	ID   TenantID   `json:"id"`
	Slug TenantSlug `json:"slug"`
	Name string     `json:"name"`

	Tier   Tier         `json:"tier"`
	Status TenantStatus `json:"status"`

	// CustomDomain is empty unless the studio serves galleries on its own host.
	CustomDomain string `json:"customDomain,omitempty"`
	Currency     string `json:"currency"`
	APIKeyHash   string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Active reports whether the tenant may serve galleries and take orders.
func (t Tenant) Active() bool { return t.Status == TenantStatusActive }

// TenantSlug is the validated subdomain label of a tenant.
type TenantSlug string

var slugPattern = regexp.MustCompile(`^[a-z0-9](-?[a-z0-9])*$`)

// reservedSlugs cannot be claimed because they collide with platform hosts
// and routes.
var reservedSlugs = map[string]struct{}{ //nolint: gochecknoglobals
	"admin": {}, "api": {}, "app": {}, "assets": {}, "auth": {}, "billing": {},
	"blog": {}, "cdn": {}, "dashboard": {}, "dev": {}, "docs": {}, "help": {},
	"login": {}, "logout": {}, "mail": {}, "media": {}, "static": {}, "staging": {},
	"status": {}, "signup": {}, "support": {}, "test": {}, "www": {},
}

// NewTenantSlug trims and lowercases raw and validates the result.
func NewTenantSlug(raw string) (TenantSlug, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if len(s) < 3 || len(s) > 63 || !slugPattern.MatchString(s) {
		return "", ErrSlugInvalid
	}
	if _, ok := reservedSlugs[s]; ok {
		return "", ErrSlugReserved
	}

	return TenantSlug(s), nil
}

func (s TenantSlug) String() string { return string(s) }
