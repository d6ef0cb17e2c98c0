package domain_test

import (
	"encoding/json"
	"studiohub/pkg/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestIDsAreJSONStrings(t *testing.T) {
	raw := uuid.MustParse("8f5b7c1e-3a2d-4f60-9b1e-2c7d5a9e0f11")

	out, err := json.Marshal(struct {
		Tenant domain.TenantID `json:"tenant"`
		Photo  domain.PhotoID  `json:"photo"`
	}{domain.TenantID(raw), domain.PhotoID(raw)})
	require.NoError(t, err)
	require.JSONEq(t, `{"tenant":"8f5b7c1e-3a2d-4f60-9b1e-2c7d5a9e0f11","photo":"8f5b7c1e-3a2d-4f60-9b1e-2c7d5a9e0f11"}`, string(out))

	var in struct {
		Product domain.ProductID `json:"product"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"product":"8f5b7c1e-3a2d-4f60-9b1e-2c7d5a9e0f11"}`), &in))
	require.Equal(t, domain.ProductID(raw), in.Product)

	err = json.Unmarshal([]byte(`{"product":"not-a-uuid"}`), &in)
	require.ErrorIs(t, err, domain.ErrIDInvalid)
}

func TestParseID(t *testing.T) {
	id, err := domain.ParseID[domain.GalleryID]("gallery id", "8f5b7c1e-3a2d-4f60-9b1e-2c7d5a9e0f11")
	require.NoError(t, err)
	require.Equal(t, "8f5b7c1e-3a2d-4f60-9b1e-2c7d5a9e0f11", id.String())

	_, err = domain.ParseID[domain.GalleryID]("gallery id", "42")
	require.ErrorIs(t, err, domain.ErrIDInvalid)
}
