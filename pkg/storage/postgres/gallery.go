package postgres

import (
	"context"
	"fmt"
	"studiohub/pkg/domain"
	"studiohub/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	galleriesTable = "galleries"
	photosTable    = "photos"
	favoritesTable = "photo_favorites"
)

func (p *PgSQL) StoreGallery(ctx context.Context, gallery domain.Gallery) (*domain.Gallery, error) {
	var row PgGallery
	row.FromDomain(gallery)

	var stored PgGallery
	if _, err := p.Builder.Insert(galleriesTable).
		Rows(row).
		Returning(&PgGallery{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapError(err, "could not store gallery into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) GalleryCodeExists(ctx context.Context, code domain.GalleryCode) (bool, error) {
	var one int
	found, err := p.Builder.From(galleriesTable).
		Select(goqu.L("1")).
		Where(goqu.I("code").Eq(string(code))).
		Limit(1).
		Executor().ScanValContext(ctx, &one)
	if err != nil {
		return false, fmt.Errorf("could not check gallery code in pg: %w", err)
	}

	return found, nil
}

func (p *PgSQL) GalleryByID(ctx context.Context, tenantID domain.TenantID, id domain.GalleryID) (*domain.Gallery, error) {
	return p.galleryWhere(ctx,
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("tenant_id").Eq(uuid.UUID(tenantID)),
	)
}

func (p *PgSQL) GalleryByCode(ctx context.Context, code domain.GalleryCode) (*domain.Gallery, error) {
	return p.galleryWhere(ctx, goqu.I("code").Eq(string(code)))
}

func (p *PgSQL) galleryWhere(ctx context.Context, where ...goqu.Expression) (*domain.Gallery, error) {
	var row PgGallery
	found, err := p.Builder.From(galleriesTable).
		Where(where...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch gallery from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateGallery(ctx context.Context, gallery domain.Gallery) (*domain.Gallery, error) {
	var row PgGallery
	row.FromDomain(gallery)

	var stored PgGallery
	found, err := p.Builder.Update(galleriesTable).
		Set(goqu.Record{
			"title":         row.Title,
			"description":   row.Description,
			"status":        row.Status,
			"visibility":    row.Visibility,
			"session_price": row.SessionPrice,
			"expires_at":    row.ExpiresAt,
			"published_at":  row.PublishedAt,
			"archived_at":   row.ArchivedAt,
			"updated_at":    goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(row.ID),
			goqu.I("tenant_id").Eq(row.TenantID),
		).
		Returning(&PgGallery{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not update gallery in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return stored.ToDomain(), nil
}

// TenantGalleries pages through a tenant's galleries ordered by created_at
// DESC, id DESC, fetching one extra row to detect the next page.
func (p *PgSQL) TenantGalleries(ctx context.Context,
	tenantID domain.TenantID,
	filter storage.GalleryFilter) (storage.TenantGalleries, error) {
	w := []goqu.Expression{
		goqu.I("tenant_id").Eq(uuid.UUID(tenantID)),
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}
	if !filter.Cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(filter.Cursor))
	}

	var rows []PgGallery
	if err := p.Builder.From(galleriesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(filter.Limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.TenantGalleries{}, fmt.Errorf("could not fetch tenant galleries from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > filter.Limit {
		rows = rows[:filter.Limit]
		nextCursor = &rows[len(rows)-1].CreatedAt
	}

	return storage.TenantGalleries{
		Galleries:  toDomainSlice(rows, (*PgGallery).ToDomain),
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) AdjustPhotoCount(ctx context.Context, id domain.GalleryID, delta int) error {
	_, err := p.Builder.Update(galleriesTable).
		Set(goqu.Record{
			"photo_count": goqu.L("GREATEST(photo_count + ?, 0)", delta),
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not adjust photo count in pg: %w", err)
	}

	return nil
}
