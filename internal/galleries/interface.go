package galleries

import (
	"context"
	"studiohub/pkg/domain"
	"studiohub/pkg/storage"
)

//go:generate mockgen -package mockgalleries -source=interface.go -destination=mock/mockgalleries.go *
type Service interface {
	// Create allocates a unique code derived from the tenant slug and stores
	// a draft gallery.
	Create(ctx context.Context, tenantID domain.TenantID, input CreateInput) (*domain.Gallery, error)
	Update(ctx context.Context, tenantID domain.TenantID, id domain.GalleryID, input UpdateInput) (*domain.Gallery, error)
	Publish(ctx context.Context, tenantID domain.TenantID, id domain.GalleryID) (*domain.Gallery, error)
	Archive(ctx context.Context, tenantID domain.TenantID, id domain.GalleryID) (*domain.Gallery, error)
	Get(ctx context.Context, tenantID domain.TenantID, id domain.GalleryID) (*domain.Gallery, error)
	List(ctx context.Context, tenantID domain.TenantID, filter storage.GalleryFilter) (storage.TenantGalleries, error)
	Photos(ctx context.Context, tenantID domain.TenantID, id domain.GalleryID) ([]domain.Photo, error)

	AddPhoto(ctx context.Context, tenantID domain.TenantID, id domain.GalleryID, upload PhotoUpload) (*domain.Photo, error)
	DeletePhoto(ctx context.Context, tenantID domain.TenantID, id domain.GalleryID, photoID domain.PhotoID) error

	// LookupByCode opens a gallery for a client. Unknown, unpublished,
	// expired and private galleries and galleries of inactive studios are all
	// reported as not found.
	LookupByCode(ctx context.Context, code string, sessionID domain.ClientSessionID) (*PublicGallery, error)
	SetFavorite(ctx context.Context,
		code string,
		photoID domain.PhotoID,
		sessionID domain.ClientSessionID,
		favorite bool) error
	Favorites(ctx context.Context, code string, sessionID domain.ClientSessionID) ([]domain.PhotoID, error)
}
