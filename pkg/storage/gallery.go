package storage

import (
	"context"
	"studiohub/pkg/domain"
	"time"
)

// GalleryFilter narrows TenantGalleries. A zero Cursor starts at the newest
// gallery and an empty Status matches every status.
type GalleryFilter struct {
	Status domain.GalleryStatus
	Cursor time.Time
	Limit  uint
}

// TenantGalleries is one page of a tenant's galleries, newest first.
type TenantGalleries struct {
	Galleries []domain.Gallery
	// NextCursor is nil on the last page.
	NextCursor *time.Time
}

// GalleryStorage persists galleries.
type GalleryStorage interface {
	// StoreGallery inserts a gallery. A taken code yields ErrUniqueViolation.
	StoreGallery(ctx context.Context, gallery domain.Gallery) (*domain.Gallery, error)
	GalleryCodeExists(ctx context.Context, code domain.GalleryCode) (bool, error)
	GalleryByID(ctx context.Context, tenantID domain.TenantID, id domain.GalleryID) (*domain.Gallery, error)
	GalleryByCode(ctx context.Context, code domain.GalleryCode) (*domain.Gallery, error)
	// UpdateGallery writes the mutable fields of gallery (everything except id,
	// tenant, code, photo count and creation time) and returns the stored row,
	// or nil when the gallery does not belong to its tenant.
	UpdateGallery(ctx context.Context, gallery domain.Gallery) (*domain.Gallery, error)
	TenantGalleries(ctx context.Context, tenantID domain.TenantID, filter GalleryFilter) (TenantGalleries, error)
	// AdjustPhotoCount adds delta to the photo count without going below zero.
	// It locks the gallery row for the rest of the transaction, which
	// serializes concurrent uploads into the same gallery.
	AdjustPhotoCount(ctx context.Context, id domain.GalleryID, delta int) error
}
