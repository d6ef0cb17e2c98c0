package galleries

import (
	"strings"
	"studiohub/pkg/domain"
	"time"
)

// CreateInput describes a new gallery.
type CreateInput struct {
	Title       string
	Description string
	// Visibility defaults to code_protected.
	Visibility   string
	SessionPrice *int64
	ExpiresAt    time.Time
}

// UpdateInput lists gallery fields to change. Nil fields are left alone.
type UpdateInput struct {
	Title        *string
	Description  *string
	Visibility   *string
	SessionPrice *int64
	ExpiresAt    *time.Time
}

// PhotoUpload is one uploaded image file.
type PhotoUpload struct {
	Filename string
	Data     []byte
}

// PublicPhoto is a photo as shown to gallery clients.
type PublicPhoto struct {
	ID        domain.PhotoID `json:"id"`
	Filename  string         `json:"filename"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Thumbnail string         `json:"thumbnail"`
	Fullsize  string         `json:"fullsize"`
	Favorite  bool           `json:"favorite,omitempty"`
}

// PublicGallery is the gallery a client opens with its code.
type PublicGallery struct {
	GalleryID    domain.GalleryID     `json:"galleryId"`
	GalleryCode  domain.GalleryCode   `json:"galleryCode"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Status       domain.GalleryStatus `json:"status"`
	PhotoCount   int                  `json:"photoCount"`
	SessionPrice *int64               `json:"sessionPrice"`
	Photos       []PublicPhoto        `json:"photos"`
}

// publicURL joins the media base URL and an object key.
func publicURL(base, key string) string {
	if key == "" {
		return ""
	}

	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}

func toPublic(g domain.Gallery, photos []domain.Photo, baseURL string) *PublicGallery {
	out := &PublicGallery{
		GalleryID:    g.ID,
		GalleryCode:  g.Code,
		Title:        g.Title,
		Description:  g.Description,
		Status:       g.Status,
		PhotoCount:   g.PhotoCount,
		SessionPrice: g.SessionPrice,
		Photos:       make([]PublicPhoto, 0, len(photos)),
	}
	for _, p := range photos {
		out.Photos = append(out.Photos, PublicPhoto{
			ID:        p.ID,
			Filename:  p.Filename,
			Width:     p.Width,
			Height:    p.Height,
			Thumbnail: publicURL(baseURL, p.ThumbnailKey),
			Fullsize:  publicURL(baseURL, p.WebKey),
			Favorite:  p.Favorite,
		})
	}

	return out
}
