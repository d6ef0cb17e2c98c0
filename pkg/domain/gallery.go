package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GalleryID uniquely identifies a gallery.
type GalleryID uuid.UUID

func (id GalleryID) String() string { return uuid.UUID(id).String() }

// GalleryStatus is the publication state of a gallery.
type GalleryStatus string

const (
	GalleryStatusDraft     GalleryStatus = "draft"
	GalleryStatusPublished GalleryStatus = "published"
	GalleryStatusArchived  GalleryStatus = "archived"
)

// GalleryVisibility decides who may open a published gallery.
type GalleryVisibility string

const (
	// GalleryVisibilityPublic galleries may be listed on the studio site.
	GalleryVisibilityPublic GalleryVisibility = "public"
	// GalleryVisibilityPrivate galleries are only visible to the studio team.
	GalleryVisibilityPrivate GalleryVisibility = "private"
	// GalleryVisibilityCodeProtected galleries open for anyone holding the code.
	GalleryVisibilityCodeProtected GalleryVisibility = "code_protected"
)

// ParseGalleryVisibility validates a visibility; empty means code_protected.
func ParseGalleryVisibility(s string) (GalleryVisibility, error) {
	v := GalleryVisibility(strings.TrimSpace(s))
	switch v {
	case "":
		return GalleryVisibilityCodeProtected, nil
	case GalleryVisibilityPublic, GalleryVisibilityPrivate, GalleryVisibilityCodeProtected:
		return v, nil
	default:
		return "", ErrVisibilityInvalid
	}
}

// Gallery is a tenant-owned collection of photos opened with a code.
type Gallery struct {
	ID       GalleryID `json:"id"`
	TenantID TenantID  `json:"tenantId"`

	Code        GalleryCode       `json:"code"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Status      GalleryStatus     `json:"status"`
	Visibility  GalleryVisibility `json:"visibility"`
	PhotoCount  int               `json:"photoCount"`

	// SessionPrice is the photo session fee in minor units, nil when not priced.
	SessionPrice *int64 `json:"sessionPrice,omitempty"`
	// ExpiresAt ends client access; zero means the gallery never expires.
	ExpiresAt time.Time `json:"expiresAt,omitempty"`

	PublishedAt time.Time `json:"publishedAt,omitempty"`
	ArchivedAt  time.Time `json:"archivedAt,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Accessible reports whether clients may open the gallery at now.
func (g Gallery) Accessible(now time.Time) bool {
	return g.Status == GalleryStatusPublished && (g.ExpiresAt.IsZero() || g.ExpiresAt.After(now))
}

// GalleryEventType names a gallery lifecycle event.
type GalleryEventType string

const (
	GalleryCreated   GalleryEventType = "gallery.created"
	GalleryPublished GalleryEventType = "gallery.published"
	GalleryArchived  GalleryEventType = "gallery.archived"
)

// GalleryEvent is returned by gallery transitions; callers decide whether to
// dispatch it.
type GalleryEvent struct {
	Type      GalleryEventType
	GalleryID GalleryID
	TenantID  TenantID
	Code      GalleryCode
	At        time.Time
}

// NewGallery builds a draft gallery. The caller supplies the unique code.
func NewGallery(tenantID TenantID, code GalleryCode, title string, now time.Time) (Gallery, GalleryEvent, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Gallery{}, GalleryEvent{}, ErrTitleRequired
	}

	g := Gallery{
		ID:         GalleryID(uuid.New()),
		TenantID:   tenantID,
		Code:       code,
		Title:      title,
		Status:     GalleryStatusDraft,
		Visibility: GalleryVisibilityCodeProtected,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return g, g.event(GalleryCreated, now), nil
}

// Publish moves a draft gallery to published. Publishing a published gallery
// returns it unchanged with a nil event; archived galleries cannot be
// published again.
func (g Gallery) Publish(now time.Time) (Gallery, *GalleryEvent, error) {
	switch g.Status {
	case GalleryStatusPublished:
		return g, nil, nil
	case GalleryStatusDraft:
		g.Status = GalleryStatusPublished
		g.PublishedAt = now
		g.UpdatedAt = now
		ev := g.event(GalleryPublished, now)

		return g, &ev, nil
	default:
		return g, nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, g.Status, GalleryStatusPublished)
	}
}

// Archive moves a draft or published gallery to archived. Archived is
// terminal; archiving again is a no-op.
func (g Gallery) Archive(now time.Time) (Gallery, *GalleryEvent, error) {
	switch g.Status {
	case GalleryStatusArchived:
		return g, nil, nil
	case GalleryStatusDraft, GalleryStatusPublished:
		g.Status = GalleryStatusArchived
		g.ArchivedAt = now
		g.UpdatedAt = now
		ev := g.event(GalleryArchived, now)

		return g, &ev, nil
	default:
		return g, nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, g.Status, GalleryStatusArchived)
	}
}

func (g Gallery) event(t GalleryEventType, now time.Time) GalleryEvent {
	return GalleryEvent{Type: t, GalleryID: g.ID, TenantID: g.TenantID, Code: g.Code, At: now}
}
