package domain_test

import (
	"studiohub/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

var roles = []domain.Role{domain.RoleViewer, domain.RoleEditor, domain.RoleAdmin, domain.RoleOwner}

func TestRoleAuthorize(t *testing.T) {
	require.True(t, domain.RoleOwner.Authorize(domain.RoleAdmin))
	require.True(t, domain.RoleEditor.Authorize(domain.RoleEditor))
	require.False(t, domain.RoleViewer.Authorize(domain.RoleEditor))
	require.False(t, domain.Role("intern").Authorize(domain.RoleViewer))
}

func TestRoleAuthorizeIsMonotonic(t *testing.T) {
	for _, required := range roles {
		for i, r := range roles {
			if !r.Authorize(required) {
				continue
			}
			for _, higher := range roles[i:] {
				require.Truef(t, higher.Authorize(required), "%s allowed %s but %s is not", r, required, higher)
			}
		}
	}
}

func TestParseRole(t *testing.T) {
	r, err := domain.ParseRole("Admin")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, r)

	_, err = domain.ParseRole("root")
	require.ErrorIs(t, err, domain.ErrRoleInvalid)
}
