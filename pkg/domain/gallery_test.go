package domain_test

import (
	"studiohub/pkg/domain"
	"studiohub/pkg/serrors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newDraft(t *testing.T, now time.Time) domain.Gallery {
	t.Helper()

	code := domain.GenerateGalleryCode(domain.GalleryCodePrefix("mystudio"))
	g, ev, err := domain.NewGallery(domain.TenantID(uuid.New()), code, "Summer Wedding 2024", now)
	require.NoError(t, err)
	require.Equal(t, domain.GalleryCreated, ev.Type)

	return g
}

func TestNewGallery(t *testing.T) {
	now := time.Now()
	g := newDraft(t, now)

	require.Regexp(t, `^MYST[A-Z0-9]{4}$`, g.Code.String())
	require.Equal(t, domain.GalleryStatusDraft, g.Status)
	require.Equal(t, domain.GalleryVisibilityCodeProtected, g.Visibility)
	require.False(t, g.Accessible(now))

	_, _, err := domain.NewGallery(g.TenantID, g.Code, "   ", now)
	require.ErrorIs(t, err, domain.ErrTitleRequired)
}

func TestGalleryTransitions(t *testing.T) {
	now := time.Now()
	draft := newDraft(t, now)

	published, ev, err := draft.Publish(now.Add(time.Minute))
	require.NoError(t, err)
	require.NotNil(t, ev)
	require.Equal(t, domain.GalleryPublished, ev.Type)
	require.Equal(t, domain.GalleryStatusPublished, published.Status)
	require.Equal(t, domain.GalleryStatusDraft, draft.Status, "transitions must not mutate the receiver")

	again, ev, err := published.Publish(now.Add(time.Hour))
	require.NoError(t, err)
	require.Nil(t, ev)
	require.Equal(t, published.PublishedAt, again.PublishedAt)

	archived, ev, err := published.Archive(now.Add(2 * time.Minute))
	require.NoError(t, err)
	require.Equal(t, domain.GalleryArchived, ev.Type)

	_, ev, err = archived.Archive(now.Add(time.Hour))
	require.NoError(t, err)
	require.Nil(t, ev)

	_, _, err = archived.Publish(now.Add(time.Hour))
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	require.ErrorIs(t, err, serrors.ErrConflict)

	archivedDraft, ev, err := draft.Archive(now)
	require.NoError(t, err)
	require.NotNil(t, ev)
	require.Equal(t, domain.GalleryStatusArchived, archivedDraft.Status)
}

func TestGalleryAccessible(t *testing.T) {
	now := time.Now()
	g, _, err := newDraft(t, now).Publish(now)
	require.NoError(t, err)

	require.True(t, g.Accessible(now))

	g.ExpiresAt = now.Add(time.Hour)
	require.True(t, g.Accessible(now))

	g.ExpiresAt = now.Add(-time.Second)
	require.False(t, g.Accessible(now))

	g.ExpiresAt = now
	require.False(t, g.Accessible(now), "expiry at exactly now closes access")
}

func TestParseGalleryVisibility(t *testing.T) {
	v, err := domain.ParseGalleryVisibility("")
	require.NoError(t, err)
	require.Equal(t, domain.GalleryVisibilityCodeProtected, v)

	v, err = domain.ParseGalleryVisibility("private")
	require.NoError(t, err)
	require.Equal(t, domain.GalleryVisibilityPrivate, v)

	_, err = domain.ParseGalleryVisibility("secret")
	require.ErrorIs(t, err, domain.ErrVisibilityInvalid)
}
