package domain_test

import (
	"studiohub/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextSortOrder(t *testing.T) {
	require.Equal(t, 0, domain.NextSortOrder(nil))

	var max *int
	for want := range 5 {
		next := domain.NextSortOrder(max)
		require.Equal(t, want, next)
		max = &next
	}

	gap := 7
	require.Equal(t, 8, domain.NextSortOrder(&gap))
}

func TestPhotoOrientation(t *testing.T) {
	require.Equal(t, domain.OrientationLandscape, domain.Photo{Width: 3000, Height: 2000}.Orientation())
	require.True(t, domain.Photo{Width: 2000, Height: 3000}.IsPortrait())
	require.Equal(t, domain.OrientationSquare, domain.Photo{Width: 10, Height: 10}.Orientation())
	require.InDelta(t, 1.5, domain.Photo{Width: 3000, Height: 2000}.AspectRatio(), 1e-9)
	require.Zero(t, domain.Photo{}.AspectRatio())
}
