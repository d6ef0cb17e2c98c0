package v1handler_test

import (
	"net/http"
	"studiohub/internal/api/handler/v1handler"
	"studiohub/internal/orders"
	"studiohub/pkg/domain"
	"studiohub/pkg/serrors"
	"studiohub/pkg/storage"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPlaceOrder(t *testing.T) {
	productID := domain.ProductID(uuid.New())
	photoID := domain.PhotoID(uuid.New())
	body := map[string]any{
		"galleryCode": "ACME1234",
		"customer":    map[string]any{"name": "Jane", "email": "jane@example.test"},
		"items": []map[string]any{
			{"productId": productID.String(), "photoId": photoID.String(), "quantity": 2},
		},
	}

	t.Run("placed", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		th.orders.EXPECT().
			Place(gomock.Any(), orders.PlaceInput{
				GalleryCode:   "ACME1234",
				ClientIP:      "192.0.2.1",
				CustomerName:  "Jane",
				CustomerEmail: "jane@example.test",
				Items:         []orders.LineInput{{ProductID: productID, PhotoID: &photoID, Quantity: 2}},
			}).
			Return(&orders.PlaceResult{
				OrderNumber: "ORD-20260301-AB12CD",
				AccessToken: "tok",
				Total:       3200,
				Currency:    "usd",
				Status:      domain.OrderStatusPending,
			}, nil)

		w := th.do(t, request{method: http.MethodPost, path: "/v1/public/orders", body: body})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		res := decode[orders.PlaceResult](t, w)
		require.Equal(t, "tok", res.AccessToken)
		require.EqualValues(t, 3200, res.Total)
	})

	t.Run("empty cart", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		w := th.do(t, request{method: http.MethodPost, path: "/v1/public/orders", body: map[string]any{
			"galleryCode": "ACME1234",
			"customer":    map[string]any{"name": "Jane", "email": "jane@example.test"},
			"items":       []any{},
		}})
		requireError(t, w, http.StatusBadRequest, serrors.ErrBadRequest)
	})

	t.Run("malformed product id", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		w := th.do(t, request{method: http.MethodPost, path: "/v1/public/orders", body: map[string]any{
			"galleryCode": "ACME1234",
			"customer":    map[string]any{"name": "Jane", "email": "jane@example.test"},
			"items":       []map[string]any{{"productId": "print", "quantity": 1}},
		}})
		requireError(t, w, http.StatusBadRequest, serrors.ErrBadRequest)
	})

	t.Run("quantity above cap", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		w := th.do(t, request{method: http.MethodPost, path: "/v1/public/orders", body: map[string]any{
			"galleryCode": "ACME1234",
			"customer":    map[string]any{"name": "Jane", "email": "jane@example.test"},
			"items":       []map[string]any{{"productId": productID.String(), "quantity": int64(1) << 54}},
		}})
		requireError(t, w, http.StatusBadRequest, serrors.ErrBadRequest)
	})

	t.Run("ordering not in plan", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		th.orders.EXPECT().Place(gomock.Any(), gomock.Any()).
			Return(nil, serrors.With(serrors.ErrForbidden, "feature online_orders is not included in your plan"))

		w := th.do(t, request{method: http.MethodPost, path: "/v1/public/orders", body: body})
		requireError(t, w, http.StatusForbidden, serrors.ErrForbidden)
	})
}

func TestLookupOrder(t *testing.T) {
	th := newTestHandler(t, v1handler.Options{})
	th.orders.EXPECT().LookupByToken(gomock.Any(), "tok").
		Return(&domain.Order{Number: "ORD-1", Status: domain.OrderStatusConfirmed, AccessToken: "tok"}, nil)
	th.orders.EXPECT().LookupByToken(gomock.Any(), "other").Return(nil, domain.ErrOrderNotFound)

	w := th.do(t, request{method: http.MethodGet, path: "/v1/public/orders/tok"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotContains(t, w.Body.String(), "tok", "access token never leaves in order bodies")

	w = th.do(t, request{method: http.MethodGet, path: "/v1/public/orders/other"})
	requireError(t, w, http.StatusNotFound, serrors.ErrNotFound)
}

func TestStudioOrders(t *testing.T) {
	id := domain.OrderID(uuid.New())

	t.Run("list", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		th.orders.EXPECT().
			List(gomock.Any(), testTenantID, storage.OrderFilter{Status: domain.OrderStatusConfirmed, Limit: 5}).
			Return(storage.TenantOrders{Orders: []domain.Order{{ID: id}}}, nil)

		w := th.do(t, request{method: http.MethodGet, path: "/v1/orders?status=confirmed&limit=5", token: "viewer"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		page := decode[v1handler.Page[domain.Order]](t, w)
		require.Len(t, page.Items, 1)
		require.Nil(t, page.NextCursor)
	})

	t.Run("get", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		th.orders.EXPECT().Get(gomock.Any(), testTenantID, id).Return(&domain.Order{ID: id}, nil)

		w := th.do(t, request{method: http.MethodGet, path: "/v1/orders/" + id.String(), token: "viewer"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, id, decode[domain.Order](t, w).ID)
	})

	t.Run("advance status", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		th.orders.EXPECT().UpdateStatus(gomock.Any(), testTenantID, id, "shipped").
			Return(&domain.Order{ID: id, Status: domain.OrderStatusShipped}, nil)

		w := th.do(t, request{
			method: http.MethodPatch,
			path:   "/v1/orders/" + id.String() + "/status",
			token:  "editor",
			body:   map[string]any{"status": "shipped"},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, domain.OrderStatusShipped, decode[domain.Order](t, w).Status)
	})

	t.Run("invalid transition", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		th.orders.EXPECT().UpdateStatus(gomock.Any(), testTenantID, id, "pending").Return(nil, domain.ErrInvalidTransition)

		w := th.do(t, request{
			method: http.MethodPatch,
			path:   "/v1/orders/" + id.String() + "/status",
			token:  "editor",
			body:   map[string]any{"status": "pending"},
		})
		requireError(t, w, http.StatusConflict, serrors.ErrConflict)
	})

	t.Run("viewer cannot change status", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		w := th.do(t, request{
			method: http.MethodPatch,
			path:   "/v1/orders/" + id.String() + "/status",
			token:  "viewer",
			body:   map[string]any{"status": "shipped"},
		})
		requireError(t, w, http.StatusForbidden, serrors.ErrForbidden)
	})
}
