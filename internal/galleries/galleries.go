// Package galleries manages studio galleries, their photos and the client
// facing gallery lookup.
package galleries

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"studiohub/internal/config"
	"studiohub/internal/features"
	"studiohub/pkg/domain"
	"studiohub/pkg/logger"
	"studiohub/pkg/media"
	"studiohub/pkg/metrics"
	"studiohub/pkg/serrors"
	"studiohub/pkg/storage"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultMaxCodeAttempts bounds gallery code generation.
	DefaultMaxCodeAttempts = 10

	defaultPageSize = 20
	maxPageSize     = 100
)

var (
	ErrGalleryArchived       = serrors.With(serrors.ErrConflict, "gallery is archived")
	ErrClientSessionRequired = serrors.With(serrors.ErrBadRequest, "client session id is required")
	ErrSessionPriceNegative  = serrors.With(serrors.ErrBadRequest, "session price must not be negative")
	ErrDescriptionTooLong    = serrors.With(serrors.ErrBadRequest, "description is too long")
	errPhotoNotStored        = errors.New("photo insert returned no row")
)

const maxDescriptionLength = 5000

// Options configure the gallery service.
type Options struct {
	// MaxCodeAttempts is how many codes Create tries before giving up.
	MaxCodeAttempts int
	// MediaBaseURL prefixes object keys in client facing photo URLs.
	MediaBaseURL string
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxCodeAttempts: cfg.Galleries.MaxCodeAttempts,
		MediaBaseURL:    cfg.Media.PublicBaseURL,
	}
}

type service struct {
	options  Options
	storage  storage.Storage
	features features.Resolver
	media    media.Processor
	metrics  *metrics.Domain
	now      func() time.Time
}

// New builds the gallery service. A nil metrics records nothing.
func New(st storage.Storage,
	resolver features.Resolver,
	processor media.Processor,
	m *metrics.Domain,
	options Options,
) Service {
	if options.MaxCodeAttempts <= 0 {
		options.MaxCodeAttempts = DefaultMaxCodeAttempts
	}
	if m == nil {
		m = metrics.NoopDomain()
	}

	return &service{
		options:  options,
		storage:  st,
		features: resolver,
		media:    processor,
		metrics:  m,
		now:      time.Now,
	}
}

func (s *service) Create(ctx context.Context, tenantID domain.TenantID, input CreateInput) (*domain.Gallery, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.ErrTitleRequired
	}
	if err := validateFields(input.Description, input.SessionPrice); err != nil {
		return nil, err
	}
	visibility, err := s.visibility(ctx, tenantID, input.Visibility)
	if err != nil {
		return nil, err
	}

	tenant, err := s.storage.TenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch tenant: %w", err)
	}
	if tenant == nil {
		return nil, domain.ErrTenantNotFound
	}
	prefix := domain.GalleryCodePrefix(tenant.Slug)

	for attempt := 1; attempt <= s.options.MaxCodeAttempts; attempt++ {
		code := domain.GenerateGalleryCode(prefix)

		exists, err := s.storage.GalleryCodeExists(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("could not check gallery code: %w", err)
		}
		if exists {
			s.metrics.CodeCollision(ctx)

			continue
		}

		gallery, event, err := domain.NewGallery(tenantID, code, input.Title, s.now())
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		gallery.Description = strings.TrimSpace(input.Description)
		gallery.Visibility = visibility
		gallery.SessionPrice = input.SessionPrice
		gallery.ExpiresAt = input.ExpiresAt

		stored, err := s.storage.StoreGallery(ctx, gallery)
		if errors.Is(err, storage.ErrUniqueViolation) {
			// lost the race for this code against a concurrent create
			s.metrics.CodeCollision(ctx)

			continue
		}
		if err != nil {
			return nil, fmt.Errorf("could not store gallery: %w", err)
		}

		s.metrics.GalleryCreated(ctx)
		logger.Info(ctx, "gallery created",
			zap.String("galleryID", stored.ID.String()),
			zap.String("code", stored.Code.String()),
			zap.String("event", string(event.Type)),
			zap.Int("attempt", attempt))

		return stored, nil
	}

	logger.Warn(ctx, "gallery code generation exhausted",
		zap.String("tenantID", tenantID.String()), zap.String("prefix", prefix))

	return nil, domain.ErrCodeGenerationExhausted
}

func validateFields(description string, sessionPrice *int64) error {
	if len(description) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if sessionPrice != nil && *sessionPrice < 0 {
		return ErrSessionPriceNegative
	}

	return nil
}

// visibility parses raw. Private galleries need the private_galleries feature.
func (s *service) visibility(ctx context.Context,
	tenantID domain.TenantID,
	raw string,
) (domain.GalleryVisibility, error) {
	visibility, err := domain.ParseGalleryVisibility(raw)
	if err != nil {
		return "", err //nolint: wrapcheck
	}
	if visibility == domain.GalleryVisibilityPrivate {
		if err := s.features.Require(ctx, features.CacheFrom(ctx), tenantID, domain.FeaturePrivateGalleries); err != nil {
			return "", err //nolint: wrapcheck
		}
	}

	return visibility, nil
}

func (s *service) Update(ctx context.Context,
	tenantID domain.TenantID,
	id domain.GalleryID,
	input UpdateInput,
) (*domain.Gallery, error) {
	gallery, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if gallery.Status == domain.GalleryStatusArchived {
		return nil, ErrGalleryArchived
	}

	next := *gallery
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, domain.ErrTitleRequired
		}
		next.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		next.Description = strings.TrimSpace(*input.Description)
	}
	if input.SessionPrice != nil {
		next.SessionPrice = input.SessionPrice
	}
	if input.ExpiresAt != nil {
		next.ExpiresAt = *input.ExpiresAt
	}
	if err := validateFields(next.Description, next.SessionPrice); err != nil {
		return nil, err
	}
	if input.Visibility != nil {
		if next.Visibility, err = s.visibility(ctx, tenantID, *input.Visibility); err != nil {
			return nil, err
		}
	}
	next.UpdatedAt = s.now()

	return s.update(ctx, next)
}

func (s *service) update(ctx context.Context, gallery domain.Gallery) (*domain.Gallery, error) {
	updated, err := s.storage.UpdateGallery(ctx, gallery)
	if err != nil {
		return nil, fmt.Errorf("could not update gallery: %w", err)
	}
	if updated == nil {
		return nil, domain.ErrGalleryNotFound
	}

	return updated, nil
}

type transitionFunc func(domain.Gallery, time.Time) (domain.Gallery, *domain.GalleryEvent, error)

func (s *service) transition(ctx context.Context,
	tenantID domain.TenantID,
	id domain.GalleryID,
	fn transitionFunc,
) (*domain.Gallery, error) {
	gallery, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	next, event, err := fn(*gallery, s.now())
	if err != nil {
		return nil, err
	}
	if event == nil {
		return gallery, nil
	}

	updated, err := s.update(ctx, next)
	if err != nil {
		return nil, err
	}

	s.metrics.GalleryEvent(ctx, string(event.Type))
	logger.Info(ctx, "gallery status changed",
		zap.String("galleryID", id.String()),
		zap.String("event", string(event.Type)))

	return updated, nil
}

func (s *service) Publish(ctx context.Context, tenantID domain.TenantID, id domain.GalleryID) (*domain.Gallery, error) {
	return s.transition(ctx, tenantID, id, domain.Gallery.Publish)
}

func (s *service) Archive(ctx context.Context, tenantID domain.TenantID, id domain.GalleryID) (*domain.Gallery, error) {
	return s.transition(ctx, tenantID, id, domain.Gallery.Archive)
}

func (s *service) Get(ctx context.Context, tenantID domain.TenantID, id domain.GalleryID) (*domain.Gallery, error) {
	gallery, err := s.storage.GalleryByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch gallery: %w", err)
	}
	if gallery == nil {
		return nil, domain.ErrGalleryNotFound
	}

	return gallery, nil
}

func (s *service) List(ctx context.Context,
	tenantID domain.TenantID,
	filter storage.GalleryFilter,
) (storage.TenantGalleries, error) {
	switch {
	case filter.Limit == 0:
		filter.Limit = defaultPageSize
	case filter.Limit > maxPageSize:
		filter.Limit = maxPageSize
	}

	page, err := s.storage.TenantGalleries(ctx, tenantID, filter)
	if err != nil {
		return storage.TenantGalleries{}, fmt.Errorf("could not list galleries: %w", err)
	}

	return page, nil
}

func (s *service) Photos(ctx context.Context, tenantID domain.TenantID, id domain.GalleryID) ([]domain.Photo, error) {
	gallery, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	photos, err := s.storage.GalleryPhotos(ctx, gallery.ID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch photos: %w", err)
	}

	return photos, nil
}

func (s *service) AddPhoto(ctx context.Context,
	tenantID domain.TenantID,
	id domain.GalleryID,
	upload PhotoUpload,
) (*domain.Photo, error) {
	gallery, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if gallery.Status == domain.GalleryStatusArchived {
		return nil, ErrGalleryArchived
	}

	photoID := domain.PhotoID(uuid.New())
	variants, err := s.media.Process(ctx, upload.Data, media.Target{
		TenantID:  tenantID,
		GalleryID: gallery.ID,
		PhotoID:   photoID,
		Filename:  upload.Filename,
	})
	if err != nil {
		return nil, fmt.Errorf("could not process photo: %w", err)
	}

	var stored *domain.Photo
	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		// locks the gallery row, so concurrent uploads get distinct sort orders
		if err := tx.AdjustPhotoCount(ctx, gallery.ID, 1); err != nil {
			return fmt.Errorf("could not increment photo count: %w", err)
		}

		maxSortOrder, err := tx.MaxPhotoSortOrder(ctx, gallery.ID)
		if err != nil {
			return fmt.Errorf("could not fetch sort order: %w", err)
		}

		stored, err = tx.StorePhoto(ctx, domain.Photo{
			ID:           photoID,
			GalleryID:    gallery.ID,
			Filename:     upload.Filename,
			OriginalKey:  variants.Original.Key,
			WebKey:       variants.Web.Key,
			ThumbnailKey: variants.Thumbnail.Key,
			Width:        variants.Original.Width,
			Height:       variants.Original.Height,
			Size:         variants.Original.Size,
			MimeType:     variants.Original.ContentType,
			SortOrder:    domain.NextSortOrder(maxSortOrder),
		})
		if err != nil {
			return fmt.Errorf("could not store photo: %w", err)
		}
		if stored == nil {
			return errPhotoNotStored
		}

		return nil
	})
	if err != nil {
		if rmErr := s.media.Remove(ctx, variants); rmErr != nil {
			logger.Warn(ctx, "could not remove orphaned photo objects",
				zap.String("photoID", photoID.String()), zap.Error(rmErr))
		}

		return nil, err //nolint: wrapcheck
	}

	s.metrics.PhotoUploaded(ctx)

	return stored, nil
}

func (s *service) DeletePhoto(ctx context.Context,
	tenantID domain.TenantID,
	id domain.GalleryID,
	photoID domain.PhotoID,
) error {
	gallery, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return err
	}

	var deleted *domain.Photo
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err = tx.DeletePhoto(ctx, gallery.ID, photoID)
		if err != nil {
			return fmt.Errorf("could not delete photo: %w", err)
		}
		if deleted == nil {
			return domain.ErrPhotoNotFound
		}

		if err := tx.AdjustPhotoCount(ctx, gallery.ID, -1); err != nil {
			return fmt.Errorf("could not decrement photo count: %w", err)
		}

		return nil
	}); err != nil {
		return err //nolint: wrapcheck
	}

	// the row is gone; leftover objects are only wasted space
	if err := s.media.Remove(ctx, media.Variants{
		Original:  media.Variant{Key: deleted.OriginalKey},
		Web:       media.Variant{Key: deleted.WebKey},
		Thumbnail: media.Variant{Key: deleted.ThumbnailKey},
	}); err != nil {
		logger.Warn(ctx, "could not remove photo objects",
			zap.String("photoID", photoID.String()), zap.Error(err))
	}

	return nil
}

// openGallery resolves a client supplied code to a gallery the client may see.
func (s *service) openGallery(ctx context.Context, rawCode string) (*domain.Gallery, error) {
	code, err := domain.NewGalleryCode(rawCode)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	gallery, err := s.storage.GalleryByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("could not fetch gallery: %w", err)
	}
	if gallery == nil || !gallery.Accessible(s.now()) || gallery.Visibility == domain.GalleryVisibilityPrivate {
		return nil, domain.ErrGalleryNotFound
	}

	tenant, err := s.storage.TenantByID(ctx, gallery.TenantID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch tenant: %w", err)
	}
	if tenant == nil || !tenant.Active() {
		return nil, domain.ErrGalleryNotFound
	}

	return gallery, nil
}

func (s *service) LookupByCode(ctx context.Context,
	code string,
	sessionID domain.ClientSessionID,
) (*PublicGallery, error) {
	gallery, err := s.openGallery(ctx, code)
	if err != nil {
		return nil, err
	}

	photos, err := s.storage.GalleryPhotos(ctx, gallery.ID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch photos: %w", err)
	}

	if sessionID != "" {
		enabled, err := s.features.HasFeature(ctx, features.CacheFrom(ctx), gallery.TenantID, domain.FeatureClientFavorites)
		if err != nil {
			return nil, fmt.Errorf("could not resolve favorites feature: %w", err)
		}
		if enabled {
			favs, err := s.storage.SessionFavorites(ctx, gallery.ID, sessionID)
			if err != nil {
				return nil, fmt.Errorf("could not fetch favorites: %w", err)
			}
			marked := make(map[domain.PhotoID]struct{}, len(favs))
			for _, id := range favs {
				marked[id] = struct{}{}
			}
			for i := range photos {
				_, photos[i].Favorite = marked[photos[i].ID]
			}
		}
	}

	return toPublic(*gallery, photos, s.options.MediaBaseURL), nil
}

func (s *service) SetFavorite(ctx context.Context,
	code string,
	photoID domain.PhotoID,
	sessionID domain.ClientSessionID,
	favorite bool,
) error {
	gallery, err := s.openFavorites(ctx, code, sessionID)
	if err != nil {
		return err
	}

	photos, err := s.storage.PhotosByIDs(ctx, gallery.ID, []domain.PhotoID{photoID})
	if err != nil {
		return fmt.Errorf("could not fetch photo: %w", err)
	}
	if len(photos) == 0 {
		return domain.ErrPhotoNotFound
	}

	if favorite {
		err = s.storage.AddFavorite(ctx, photoID, sessionID)
	} else {
		err = s.storage.RemoveFavorite(ctx, photoID, sessionID)
	}
	if err != nil {
		return fmt.Errorf("could not update favorite: %w", err)
	}

	return nil
}

func (s *service) Favorites(ctx context.Context,
	code string,
	sessionID domain.ClientSessionID,
) ([]domain.PhotoID, error) {
	gallery, err := s.openFavorites(ctx, code, sessionID)
	if err != nil {
		return nil, err
	}

	ids, err := s.storage.SessionFavorites(ctx, gallery.ID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch favorites: %w", err)
	}

	return ids, nil
}

func (s *service) openFavorites(ctx context.Context,
	code string,
	sessionID domain.ClientSessionID,
) (*domain.Gallery, error) {
	if strings.TrimSpace(string(sessionID)) == "" {
		return nil, ErrClientSessionRequired
	}

	gallery, err := s.openGallery(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := s.features.Require(ctx, features.CacheFrom(ctx), gallery.TenantID, domain.FeatureClientFavorites); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return gallery, nil
}
