package storage

import (
	"context"
	"studiohub/pkg/domain"
)

// PhotoStorage persists photos and client favorites.
type PhotoStorage interface {
	// MaxPhotoSortOrder returns the highest sort order in the gallery, or nil
	// when it has no photos.
	MaxPhotoSortOrder(ctx context.Context, galleryID domain.GalleryID) (*int, error)
	StorePhoto(ctx context.Context, photo domain.Photo) (*domain.Photo, error)
	// GalleryPhotos returns the gallery's photos by ascending sort order.
	GalleryPhotos(ctx context.Context, galleryID domain.GalleryID) ([]domain.Photo, error)
	// PhotosByIDs returns those of ids that belong to the gallery.
	PhotosByIDs(ctx context.Context, galleryID domain.GalleryID, ids []domain.PhotoID) ([]domain.Photo, error)
	// DeletePhoto removes the photo and returns it, or nil when it was not in
	// the gallery.
	DeletePhoto(ctx context.Context, galleryID domain.GalleryID, id domain.PhotoID) (*domain.Photo, error)

	// AddFavorite marks the photo for the client session; repeating it is a no-op.
	AddFavorite(ctx context.Context, photoID domain.PhotoID, sessionID domain.ClientSessionID) error
	// RemoveFavorite unmarks the photo; removing a missing favorite is a no-op.
	RemoveFavorite(ctx context.Context, photoID domain.PhotoID, sessionID domain.ClientSessionID) error
	SessionFavorites(ctx context.Context,
		galleryID domain.GalleryID,
		sessionID domain.ClientSessionID) ([]domain.PhotoID, error)
}
