package v1handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"studiohub/internal/api/handler/v1handler"
	"studiohub/internal/galleries"
	"studiohub/pkg/domain"
	"studiohub/pkg/serrors"
	"studiohub/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateGallery(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		price := int64(15000)
		th.galleries.EXPECT().
			Create(gomock.Any(), testTenantID, galleries.CreateInput{
				Title:        "Smith Wedding",
				Visibility:   "code_protected",
				SessionPrice: &price,
			}).
			Return(&domain.Gallery{Code: "ACME1234", Title: "Smith Wedding", Status: domain.GalleryStatusDraft}, nil)

		w := th.do(t, request{method: http.MethodPost, path: "/v1/galleries", token: "editor", body: map[string]any{
			"title":        "Smith Wedding",
			"visibility":   "code_protected",
			"sessionPrice": price,
		}})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		g := decode[domain.Gallery](t, w)
		require.Equal(t, domain.GalleryCode("ACME1234"), g.Code)
		require.Equal(t, domain.GalleryStatusDraft, g.Status)
	})

	t.Run("viewer cannot create", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		w := th.do(t, request{method: http.MethodPost, path: "/v1/galleries", token: "viewer", body: map[string]any{"title": "x"}})
		requireError(t, w, http.StatusForbidden, serrors.ErrForbidden)
	})

	t.Run("request validation", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		for _, body := range []map[string]any{
			{},
			{"title": "x", "visibility": "everyone"},
		} {
			w := th.do(t, request{method: http.MethodPost, path: "/v1/galleries", token: "editor", body: body})
			requireError(t, w, http.StatusBadRequest, serrors.ErrBadRequest)
		}
	})

	t.Run("service conflict", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		th.galleries.EXPECT().Create(gomock.Any(), testTenantID, gomock.Any()).Return(nil, domain.ErrCodeGenerationExhausted)

		w := th.do(t, request{method: http.MethodPost, path: "/v1/galleries", token: "editor", body: map[string]any{"title": "x"}})
		requireError(t, w, http.StatusConflict, serrors.ErrConflict)
	})
}

func TestGalleryTransitions(t *testing.T) {
	id := domain.GalleryID(uuid.New())

	t.Run("publish", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		th.galleries.EXPECT().Publish(gomock.Any(), testTenantID, id).
			Return(&domain.Gallery{ID: id, Status: domain.GalleryStatusPublished}, nil)

		w := th.do(t, request{method: http.MethodPost, path: "/v1/galleries/" + id.String() + "/publish", token: "editor"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, domain.GalleryStatusPublished, decode[domain.Gallery](t, w).Status)
	})

	t.Run("archive needs admin", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		w := th.do(t, request{method: http.MethodPost, path: "/v1/galleries/" + id.String() + "/archive", token: "editor"})
		requireError(t, w, http.StatusForbidden, serrors.ErrForbidden)
	})

	t.Run("invalid transition", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		th.galleries.EXPECT().Archive(gomock.Any(), testTenantID, id).Return(nil, domain.ErrInvalidTransition)

		w := th.do(t, request{method: http.MethodPost, path: "/v1/galleries/" + id.String() + "/archive", token: "admin"})
		requireError(t, w, http.StatusConflict, serrors.ErrConflict)
	})

	t.Run("malformed id", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		w := th.do(t, request{method: http.MethodGet, path: "/v1/galleries/123", token: "viewer"})
		res := requireError(t, w, http.StatusBadRequest, serrors.ErrBadRequest)
		require.Equal(t, "malformed identifier: gallery id", res.Message)
	})
}

func TestListGalleries(t *testing.T) {
	cursor := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	next := cursor.Add(-time.Hour)

	t.Run("paginates", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		th.galleries.EXPECT().
			List(gomock.Any(), testTenantID, storage.GalleryFilter{
				Status: domain.GalleryStatusPublished,
				Cursor: cursor,
				Limit:  v1handler.MaxLimit,
			}).
			Return(storage.TenantGalleries{Galleries: []domain.Gallery{{Title: "a"}}, NextCursor: &next}, nil)

		w := th.do(t, request{
			method: http.MethodGet,
			path:   "/v1/galleries?status=published&limit=500&cursor=" + cursor.Format(time.RFC3339Nano),
			token:  "viewer",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		page := decode[v1handler.Page[domain.Gallery]](t, w)
		require.Len(t, page.Items, 1)
		require.NotNil(t, page.NextCursor)
		require.True(t, next.Equal(*page.NextCursor))
	})

	t.Run("default limit", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		th.galleries.EXPECT().
			List(gomock.Any(), testTenantID, storage.GalleryFilter{Limit: v1handler.DefaultLimit}).
			Return(storage.TenantGalleries{}, nil)

		w := th.do(t, request{method: http.MethodGet, path: "/v1/galleries", token: "viewer"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	for _, query := range []string{"cursor=yesterday", "limit=0", "limit=ten"} {
		t.Run(query, func(t *testing.T) {
			th := newTestHandler(t, v1handler.Options{})
			w := th.do(t, request{method: http.MethodGet, path: "/v1/galleries?" + query, token: "viewer"})
			requireError(t, w, http.StatusBadRequest, serrors.ErrBadRequest)
		})
	}
}

func multipartUpload(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestUploadPhoto(t *testing.T) {
	id := domain.GalleryID(uuid.New())
	path := "/v1/galleries/" + id.String() + "/photos"

	upload := func(th *testHandler, field string, data []byte) *httptest.ResponseRecorder {
		body, contentType := multipartUpload(t, field, "IMG_0001.jpg", data)
		r := httptest.NewRequest(http.MethodPost, path, body)
		r.Header.Set("Content-Type", contentType)
		r.Header.Set("Authorization", "Bearer editor")
		w := httptest.NewRecorder()
		th.router.ServeHTTP(w, r)

		return w
	}

	t.Run("stored", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{MaxUploadBytes: 1024})
		data := bytes.Repeat([]byte{0xff}, 512)
		th.galleries.EXPECT().
			AddPhoto(gomock.Any(), testTenantID, id, galleries.PhotoUpload{Filename: "IMG_0001.jpg", Data: data}).
			Return(&domain.Photo{GalleryID: id, Filename: "IMG_0001.jpg"}, nil)

		w := upload(th, "file", data)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		require.Equal(t, "IMG_0001.jpg", decode[domain.Photo](t, w).Filename)
	})

	t.Run("too large", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{MaxUploadBytes: 1024})
		w := upload(th, "file", bytes.Repeat([]byte{0xff}, 2048))
		res := requireError(t, w, http.StatusBadRequest, serrors.ErrBadRequest)
		require.Equal(t, "photo exceeds the upload size limit", res.Message)
	})

	t.Run("missing file field", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{MaxUploadBytes: 1024})
		w := upload(th, "image", []byte("x"))
		requireError(t, w, http.StatusBadRequest, serrors.ErrBadRequest)
	})

	t.Run("rejected by the service", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{MaxUploadBytes: 1024})
		th.galleries.EXPECT().AddPhoto(gomock.Any(), testTenantID, id, gomock.Any()).Return(nil, serrors.With(serrors.ErrBadRequest, "unsupported image format"))

		w := upload(th, "file", []byte("%PDF-1.7"))
		requireError(t, w, http.StatusBadRequest, serrors.ErrBadRequest)
	})
}

func TestDeletePhoto(t *testing.T) {
	th := newTestHandler(t, v1handler.Options{})
	id := domain.GalleryID(uuid.New())
	photoID := domain.PhotoID(uuid.New())
	th.galleries.EXPECT().DeletePhoto(gomock.Any(), testTenantID, id, photoID).Return(nil)

	w := th.do(t, request{
		method: http.MethodDelete,
		path:   "/v1/galleries/" + id.String() + "/photos/" + photoID.String(),
		token:  "editor",
	})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}

func TestPublicGallery(t *testing.T) {
	photoID := domain.PhotoID(uuid.New())
	visitor := map[string]string{v1handler.ClientSessionHeader: "visitor-1"}

	t.Run("lookup", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		th.galleries.EXPECT().
			LookupByCode(gomock.Any(), "ACME1234", domain.ClientSessionID("visitor-1")).
			Return(&galleries.PublicGallery{
				GalleryCode: "ACME1234",
				Title:       "Smith Wedding",
				PhotoCount:  1,
				Photos:      []galleries.PublicPhoto{{ID: photoID, Favorite: true}},
			}, nil)

		w := th.do(t, request{method: http.MethodGet, path: "/v1/public/galleries/ACME1234", headers: visitor})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		g := decode[galleries.PublicGallery](t, w)
		require.Len(t, g.Photos, 1)
		require.True(t, g.Photos[0].Favorite)
	})

	t.Run("not found", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		th.galleries.EXPECT().LookupByCode(gomock.Any(), "NOPE0000", gomock.Any()).Return(nil, domain.ErrGalleryNotFound)

		w := th.do(t, request{method: http.MethodGet, path: "/v1/public/galleries/NOPE0000"})
		requireError(t, w, http.StatusNotFound, serrors.ErrNotFound)
	})

	t.Run("favorite", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		th.galleries.EXPECT().
			SetFavorite(gomock.Any(), "ACME1234", photoID, domain.ClientSessionID("visitor-1"), true).
			Return(nil)
		th.galleries.EXPECT().
			SetFavorite(gomock.Any(), "ACME1234", photoID, domain.ClientSessionID("visitor-1"), false).
			Return(nil)

		path := "/v1/public/galleries/ACME1234/favorites/" + photoID.String()
		w := th.do(t, request{method: http.MethodPut, path: path, headers: visitor})
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		w = th.do(t, request{method: http.MethodDelete, path: path, headers: visitor})
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	})

	t.Run("favorites", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		th.galleries.EXPECT().
			Favorites(gomock.Any(), "ACME1234", domain.ClientSessionID("visitor-1")).
			Return([]domain.PhotoID{photoID}, nil)

		w := th.do(t, request{method: http.MethodGet, path: "/v1/public/galleries/ACME1234/favorites", headers: visitor})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, []domain.PhotoID{photoID}, decode[v1handler.Page[domain.PhotoID]](t, w).Items)
	})
}
