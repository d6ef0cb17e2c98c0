package v1handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"studiohub/internal/galleries"
	"studiohub/pkg/domain"
	"studiohub/pkg/serrors"
	"studiohub/pkg/storage"
	"time"

	"github.com/gin-gonic/gin"
)

// ClientSessionHeader identifies an anonymous gallery visitor.
const ClientSessionHeader = "X-Session-Id"

var (
	errFileRequired = serrors.With(serrors.ErrBadRequest, "multipart field \"file\" is required")
	errFileTooLarge = serrors.With(serrors.ErrBadRequest, "photo exceeds the upload size limit")
)

type CreateGalleryRequest struct {
	Title        string     `binding:"required,max=200"  json:"title"`
	Description  string     `json:"description"`
	Visibility   string     `binding:"omitempty,oneof=public private code_protected" json:"visibility"`
	SessionPrice *int64     `json:"sessionPrice"`
	ExpiresAt    *time.Time `json:"expiresAt"`
}

type UpdateGalleryRequest struct {
	Title        *string    `binding:"omitempty,max=200" json:"title"`
	Description  *string    `json:"description"`
	Visibility   *string    `binding:"omitempty,oneof=public private code_protected" json:"visibility"`
	SessionPrice *int64     `json:"sessionPrice"`
	ExpiresAt    *time.Time `json:"expiresAt"`
}

func (h Handler) CreateGallery(c *gin.Context) {
	var req CreateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, badRequest(err))

		return
	}

	input := galleries.CreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Visibility:   req.Visibility,
		SessionPrice: req.SessionPrice,
	}
	if req.ExpiresAt != nil {
		input.ExpiresAt = *req.ExpiresAt
	}

	g, err := h.deps.Galleries.Create(c.Request.Context(), sessionTenant(c), input)
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusCreated, g)
}

func (h Handler) UpdateGallery(c *gin.Context) {
	id, err := pathID[domain.GalleryID](c, "id", "gallery id")
	if err != nil {
		h.abort(c, err)

		return
	}

	var req UpdateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, badRequest(err))

		return
	}

	g, err := h.deps.Galleries.Update(c.Request.Context(), sessionTenant(c), id, galleries.UpdateInput{
		Title:        req.Title,
		Description:  req.Description,
		Visibility:   req.Visibility,
		SessionPrice: req.SessionPrice,
		ExpiresAt:    req.ExpiresAt,
	})
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, g)
}

func (h Handler) PublishGallery(c *gin.Context) {
	h.galleryByID(c, h.deps.Galleries.Publish)
}

func (h Handler) ArchiveGallery(c *gin.Context) {
	h.galleryByID(c, h.deps.Galleries.Archive)
}

func (h Handler) GetGallery(c *gin.Context) {
	h.galleryByID(c, h.deps.Galleries.Get)
}

// galleryByID serves the endpoints that take nothing but the gallery id.
func (h Handler) galleryByID(c *gin.Context,
	fn func(ctx context.Context, tenantID domain.TenantID, id domain.GalleryID) (*domain.Gallery, error),
) {
	id, err := pathID[domain.GalleryID](c, "id", "gallery id")
	if err != nil {
		h.abort(c, err)

		return
	}

	g, err := fn(c.Request.Context(), sessionTenant(c), id)
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, g)
}

func (h Handler) ListGalleries(c *gin.Context) {
	cursor, limit, err := pagination(c)
	if err != nil {
		h.abort(c, err)

		return
	}

	page, err := h.deps.Galleries.List(c.Request.Context(), sessionTenant(c), storage.GalleryFilter{
		Status: domain.GalleryStatus(c.Query("status")),
		Cursor: cursor,
		Limit:  limit,
	})
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, Page[domain.Gallery]{Items: page.Galleries, NextCursor: page.NextCursor})
}

func (h Handler) ListPhotos(c *gin.Context) {
	id, err := pathID[domain.GalleryID](c, "id", "gallery id")
	if err != nil {
		h.abort(c, err)

		return
	}

	photos, err := h.deps.Galleries.Photos(c.Request.Context(), sessionTenant(c), id)
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, Page[domain.Photo]{Items: photos})
}

// UploadPhoto accepts one image in the multipart field "file".
func (h Handler) UploadPhoto(c *gin.Context) {
	id, err := pathID[domain.GalleryID](c, "id", "gallery id")
	if err != nil {
		h.abort(c, err)

		return
	}

	// multipart overhead on top of the file itself
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.options.MaxUploadBytes+1<<20)
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.abort(c, errFileTooLarge)

			return
		}
		h.abort(c, errFileRequired)

		return
	}
	if fh.Size > h.options.MaxUploadBytes {
		h.abort(c, errFileTooLarge)

		return
	}

	f, err := fh.Open()
	if err != nil {
		h.abort(c, serrors.Wrap(serrors.ErrBadRequest, err, "could not read upload"))

		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.abort(c, serrors.Wrap(serrors.ErrBadRequest, err, "could not read upload"))

		return
	}

	photo, err := h.deps.Galleries.AddPhoto(c.Request.Context(), sessionTenant(c), id, galleries.PhotoUpload{
		Filename: fh.Filename,
		Data:     data,
	})
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusCreated, photo)
}

func (h Handler) DeletePhoto(c *gin.Context) {
	id, err := pathID[domain.GalleryID](c, "id", "gallery id")
	if err != nil {
		h.abort(c, err)

		return
	}
	photoID, err := pathID[domain.PhotoID](c, "photoId", "photo id")
	if err != nil {
		h.abort(c, err)

		return
	}

	if err := h.deps.Galleries.DeletePhoto(c.Request.Context(), sessionTenant(c), id, photoID); err != nil {
		h.abort(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func clientSession(c *gin.Context) domain.ClientSessionID {
	return domain.ClientSessionID(c.GetHeader(ClientSessionHeader))
}

// LookupGallery opens a gallery by its code for a client.
func (h Handler) LookupGallery(c *gin.Context) {
	g, err := h.deps.Galleries.LookupByCode(c.Request.Context(), c.Param("code"), clientSession(c))
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, g)
}

func (h Handler) Favorites(c *gin.Context) {
	ids, err := h.deps.Galleries.Favorites(c.Request.Context(), c.Param("code"), clientSession(c))
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, Page[domain.PhotoID]{Items: ids})
}

func (h Handler) AddFavorite(c *gin.Context) {
	h.setFavorite(c, true)
}

func (h Handler) RemoveFavorite(c *gin.Context) {
	h.setFavorite(c, false)
}

func (h Handler) setFavorite(c *gin.Context, favorite bool) {
	photoID, err := pathID[domain.PhotoID](c, "photoId", "photo id")
	if err != nil {
		h.abort(c, err)

		return
	}

	err = h.deps.Galleries.SetFavorite(c.Request.Context(), c.Param("code"), photoID, clientSession(c), favorite)
	if err != nil {
		h.abort(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
