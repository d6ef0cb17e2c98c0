package domain_test

import (
	"strings"
	"studiohub/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTenantSlug(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  domain.TenantSlug
		err  error
	}{
		{name: "simple", in: "mystudio", out: "mystudio"},
		{name: "normalized", in: "  My-Studio ", out: "my-studio"},
		{name: "digits", in: "studio42", out: "studio42"},
		{name: "max length", in: strings.Repeat("a", 63), out: domain.TenantSlug(strings.Repeat("a", 63))},
		{name: "too short", in: "ab", err: domain.ErrSlugInvalid},
		{name: "too long", in: strings.Repeat("a", 64), err: domain.ErrSlugInvalid},
		{name: "leading hyphen", in: "-studio", err: domain.ErrSlugInvalid},
		{name: "trailing hyphen", in: "studio-", err: domain.ErrSlugInvalid},
		{name: "double hyphen", in: "my--studio", err: domain.ErrSlugInvalid},
		{name: "underscore", in: "my_studio", err: domain.ErrSlugInvalid},
		{name: "reserved", in: "admin", err: domain.ErrSlugReserved},
		{name: "reserved after normalization", in: " WWW ", err: domain.ErrSlugReserved},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := domain.NewTenantSlug(tc.in)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, got)
		})
	}
}

func TestTierOrdering(t *testing.T) {
	require.True(t, domain.TierStudio.AtLeast(domain.TierPro))
	require.True(t, domain.TierPro.AtLeast(domain.TierStarter))
	require.True(t, domain.TierPro.AtLeast(domain.TierPro))
	require.False(t, domain.TierStarter.AtLeast(domain.TierPro))
	require.False(t, domain.Tier("gold").AtLeast(domain.TierStarter))

	tier, err := domain.ParseTier(" Studio ")
	require.NoError(t, err)
	require.Equal(t, domain.TierStudio, tier)

	_, err = domain.ParseTier("enterprise")
	require.ErrorIs(t, err, domain.ErrTierInvalid)
}

func TestNewEmail(t *testing.T) {
	e, err := domain.NewEmail("  Jane@Example.COM ")
	require.NoError(t, err)
	require.Equal(t, domain.Email("jane@example.com"), e)

	for _, bad := range []string{"", "jane", "jane@", "@example.com", strings.Repeat("a", 250) + "@x.io"} {
		_, err := domain.NewEmail(bad)
		require.ErrorIs(t, err, domain.ErrEmailInvalid, bad)
	}
}
