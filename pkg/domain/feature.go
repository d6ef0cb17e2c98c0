package domain

// Feature is a capability gated by subscription tier.
type Feature string

const (
	FeatureOnlineOrders      Feature = "online_orders"
	FeatureClientFavorites   Feature = "client_favorites"
	FeatureCustomBranding    Feature = "custom_branding"
	FeatureCustomDomain      Feature = "custom_domain"
	FeaturePrivateGalleries  Feature = "private_galleries"
	FeatureTeamMembers       Feature = "team_members"
	FeatureAPIAccess         Feature = "api_access"
	FeatureAdvancedAnalytics Feature = "advanced_analytics"
)

var featureMinTier = map[Feature]Tier{ //nolint: gochecknoglobals
	FeatureOnlineOrders:      TierStarter,
	FeatureClientFavorites:   TierStarter,
	FeatureCustomBranding:    TierPro,
	FeatureCustomDomain:      TierPro,
	FeaturePrivateGalleries:  TierPro,
	FeatureTeamMembers:       TierPro,
	FeatureAPIAccess:         TierStudio,
	FeatureAdvancedAnalytics: TierStudio,
}

// MinTier returns the lowest tier that includes f.
func (f Feature) MinTier() (Tier, bool) {
	t, ok := featureMinTier[f]

	return t, ok
}

// Known reports whether f is a recognised feature.
func (f Feature) Known() bool {
	_, ok := featureMinTier[f]

	return ok
}

// IncludedIn reports whether tier t grants f without an override.
func (f Feature) IncludedIn(t Tier) bool {
	min, ok := featureMinTier[f]

	return ok && t.AtLeast(min)
}

// Features lists every known feature.
func Features() []Feature {
	return []Feature{
		FeatureOnlineOrders,
		FeatureClientFavorites,
		FeatureCustomBranding,
		FeatureCustomDomain,
		FeaturePrivateGalleries,
		FeatureTeamMembers,
		FeatureAPIAccess,
		FeatureAdvancedAnalytics,
	}
}

// FeatureOverride is an explicit per-tenant flag that replaces the tier default.
type FeatureOverride struct {
	TenantID TenantID `json:"tenantId"`
	Feature  Feature  `json:"feature"`
	Enabled  bool     `json:"enabled"`
}
