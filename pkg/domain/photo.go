package domain

import (
	"time"

	"github.com/google/uuid"
)

// PhotoID uniquely identifies a photo.
type PhotoID uuid.UUID

func (id PhotoID) String() string { return uuid.UUID(id).String() }

// Orientation of a photo derived from its pixel dimensions.
type Orientation string

const (
	OrientationLandscape Orientation = "landscape"
	OrientationPortrait  Orientation = "portrait"
	OrientationSquare    Orientation = "square"
)

// Photo is an uploaded image and the object keys of its derived variants.
type Photo struct {
	ID        PhotoID   `json:"id"`
	GalleryID GalleryID `json:"galleryId"`

	Filename     string `json:"filename"`
	OriginalKey  string `json:"originalKey"`
	WebKey       string `json:"webKey"`
	ThumbnailKey string `json:"thumbnailKey"`

	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`

	// SortOrder is the display position; lower comes first.
	SortOrder int `json:"sortOrder"`
	// Favorite is filled per client session on read and never stored on the row.
	Favorite bool `json:"favorite"`

	CreatedAt time.Time `json:"createdAt"`
}

// AspectRatio is width divided by height, 0 for photos without dimensions.
func (p Photo) AspectRatio() float64 {
	if p.Height == 0 {
		return 0
	}

	return float64(p.Width) / float64(p.Height)
}

func (p Photo) Orientation() Orientation {
	switch {
	case p.Height > p.Width:
		return OrientationPortrait
	case p.Width > p.Height:
		return OrientationLandscape
	default:
		return OrientationSquare
	}
}

// IsPortrait reports whether the photo is taller than wide.
func (p Photo) IsPortrait() bool { return p.Orientation() == OrientationPortrait }

// NextSortOrder returns the sort order of a photo appended to a gallery whose
// current maximum is max (nil for an empty gallery). Gaps left by deletions
// are kept.
func NextSortOrder(max *int) int {
	if max == nil {
		return 0
	}

	return *max + 1
}

// ClientSessionID identifies an anonymous gallery visitor for favorites.
type ClientSessionID string
