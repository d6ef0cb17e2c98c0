package v1handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"studiohub/internal/api/handler/v1handler"
	"studiohub/internal/orders"
	"studiohub/pkg/domain"
	"studiohub/pkg/serrors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const webhookSecret = "whsec_test"

func TestPaymentWebhook(t *testing.T) {
	orderID := domain.OrderID(uuid.New())
	payload, err := json.Marshal(map[string]any{
		"providerPaymentId": "pi_123",
		"sessionId":         "cs_123",
		"tenantId":          testTenantID.String(),
		"orderId":           orderID.String(),
		"amount":            3200,
		"currency":          "USD",
	})
	require.NoError(t, err)

	send := func(th *testHandler, signature string, body []byte) *httptest.ResponseRecorder {
		return th.do(t, request{
			method:  http.MethodPost,
			path:    "/v1/webhooks/payments",
			body:    body,
			headers: map[string]string{v1handler.SignatureHeader: signature},
		})
	}

	t.Run("applied", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{WebhookSecret: webhookSecret})
		th.orders.EXPECT().
			ConfirmPayment(gomock.Any(), domain.PaymentNotification{
				ProviderPaymentID: "pi_123",
				SessionID:         "cs_123",
				TenantID:          testTenantID,
				OrderID:           orderID,
				Amount:            3200,
				Currency:          "usd",
			}).
			Return(&domain.Order{ID: orderID, Status: domain.OrderStatusConfirmed}, nil)

		w := send(th, "sha256="+v1handler.Sign(webhookSecret, payload), payload)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		res := decode[v1handler.PaymentWebhookResponse](t, w)
		require.Equal(t, orderID, res.OrderID)
		require.Equal(t, domain.OrderStatusConfirmed, res.Status)
	})

	t.Run("signature without prefix", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{WebhookSecret: webhookSecret})
		th.orders.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).
			Return(&domain.Order{ID: orderID, Status: domain.OrderStatusConfirmed}, nil)

		w := send(th, v1handler.Sign(webhookSecret, payload), payload)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("forged signature", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{WebhookSecret: webhookSecret})
		w := send(th, v1handler.Sign("guess", payload), payload)
		requireError(t, w, http.StatusUnauthorized, serrors.ErrUnauthorized)
	})

	t.Run("garbage signature", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{WebhookSecret: webhookSecret})
		w := send(th, "not-hex", payload)
		requireError(t, w, http.StatusUnauthorized, serrors.ErrUnauthorized)
	})

	t.Run("webhooks disabled without a secret", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{})
		w := send(th, v1handler.Sign("", payload), payload)
		requireError(t, w, http.StatusUnauthorized, serrors.ErrUnauthorized)
	})

	t.Run("incomplete payload", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{WebhookSecret: webhookSecret})
		body := []byte(`{"orderId":"` + orderID.String() + `","amount":3200,"currency":"usd"}`)
		w := send(th, v1handler.Sign(webhookSecret, body), body)
		requireError(t, w, http.StatusBadRequest, serrors.ErrBadRequest)
	})

	t.Run("amount mismatch", func(t *testing.T) {
		th := newTestHandler(t, v1handler.Options{WebhookSecret: webhookSecret})
		th.orders.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).Return(nil, orders.ErrPaymentMismatch)

		w := send(th, v1handler.Sign(webhookSecret, payload), payload)
		requireError(t, w, http.StatusConflict, serrors.ErrConflict)
	})
}
