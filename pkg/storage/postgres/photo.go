package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"studiohub/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (p *PgSQL) MaxPhotoSortOrder(ctx context.Context, galleryID domain.GalleryID) (*int, error) {
	var max sql.NullInt64
	if _, err := p.Builder.From(photosTable).
		Select(goqu.MAX("sort_order")).
		Where(goqu.I("gallery_id").Eq(uuid.UUID(galleryID))).
		Executor().ScanValContext(ctx, &max); err != nil {
		return nil, fmt.Errorf("could not fetch max sort order from pg: %w", err)
	}
	if !max.Valid {
		return nil, nil
	}

	v := int(max.Int64)

	return &v, nil
}

func (p *PgSQL) StorePhoto(ctx context.Context, photo domain.Photo) (*domain.Photo, error) {
	var row PgPhoto
	row.FromDomain(photo)

	var stored PgPhoto
	if _, err := p.Builder.Insert(photosTable).
		Rows(row).
		Returning(&PgPhoto{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapError(err, "could not store photo into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) GalleryPhotos(ctx context.Context, galleryID domain.GalleryID) ([]domain.Photo, error) {
	var rows []PgPhoto
	if err := p.Builder.From(photosTable).
		Where(goqu.I("gallery_id").Eq(uuid.UUID(galleryID))).
		Order(goqu.I("sort_order").Asc(), goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch gallery photos from pg: %w", err)
	}

	return toDomainSlice(rows, (*PgPhoto).ToDomain), nil
}

func (p *PgSQL) PhotosByIDs(ctx context.Context,
	galleryID domain.GalleryID,
	ids []domain.PhotoID) ([]domain.Photo, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []PgPhoto
	if err := p.Builder.From(photosTable).
		Where(
			goqu.I("gallery_id").Eq(uuid.UUID(galleryID)),
			goqu.I("id").In(uuidStrings(ids)),
		).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch photos by ids from pg: %w", err)
	}

	return toDomainSlice(rows, (*PgPhoto).ToDomain), nil
}

func (p *PgSQL) DeletePhoto(ctx context.Context, galleryID domain.GalleryID, id domain.PhotoID) (*domain.Photo, error) {
	var row PgPhoto
	found, err := p.Builder.Delete(photosTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("gallery_id").Eq(uuid.UUID(galleryID)),
		).
		Returning(&PgPhoto{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete photo in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) AddFavorite(ctx context.Context, photoID domain.PhotoID, sessionID domain.ClientSessionID) error {
	_, err := p.Builder.Insert(favoritesTable).
		Rows(goqu.Record{
			"photo_id":   uuid.UUID(photoID),
			"session_id": string(sessionID),
		}).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not add favorite in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) RemoveFavorite(ctx context.Context, photoID domain.PhotoID, sessionID domain.ClientSessionID) error {
	_, err := p.Builder.Delete(favoritesTable).
		Where(
			goqu.I("photo_id").Eq(uuid.UUID(photoID)),
			goqu.I("session_id").Eq(string(sessionID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not remove favorite in pg: %w", err)
	}

	return nil
}

// SessionFavorites returns favorite photo ids in display order.
func (p *PgSQL) SessionFavorites(ctx context.Context,
	galleryID domain.GalleryID,
	sessionID domain.ClientSessionID) ([]domain.PhotoID, error) {
	var ids []uuid.UUID
	if err := p.Builder.From(goqu.T(favoritesTable).As("f")).
		Join(goqu.T(photosTable).As("p"), goqu.On(goqu.I("p.id").Eq(goqu.I("f.photo_id")))).
		Select(goqu.I("f.photo_id")).
		Where(
			goqu.I("p.gallery_id").Eq(uuid.UUID(galleryID)),
			goqu.I("f.session_id").Eq(string(sessionID)),
		).
		Order(goqu.I("p.sort_order").Asc()).
		Executor().ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch session favorites from pg: %w", err)
	}

	out := make([]domain.PhotoID, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.PhotoID(id))
	}

	return out, nil
}
