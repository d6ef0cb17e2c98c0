package v1handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"studiohub/pkg/domain"
	"studiohub/pkg/serrors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// SignatureHeader carries the hex HMAC-SHA256 of the webhook body, optionally
// prefixed with "sha256=".
const SignatureHeader = "X-Signature"

const maxWebhookBytes = 1 << 20

var (
	errBadSignature = serrors.With(serrors.ErrUnauthorized, "webhook signature mismatch")
	validate        = validator.New() //nolint: gochecknoglobals
)

type PaymentWebhookRequest struct {
	ProviderPaymentID string          `json:"providerPaymentId" validate:"required"`
	SessionID         string          `json:"sessionId"`
	TenantID          domain.TenantID `json:"tenantId"          validate:"required"`
	OrderID           domain.OrderID  `json:"orderId"           validate:"required"`
	Amount            int64           `json:"amount"            validate:"gte=0"`
	Currency          string          `json:"currency"          validate:"required,len=3"`
}

type PaymentWebhookResponse struct {
	OrderID domain.OrderID     `json:"orderId"`
	Status  domain.OrderStatus `json:"status"`
}

// Sign computes the signature the provider sends for body.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}

func (h Handler) verifySignature(header string, body []byte) bool {
	if h.options.WebhookSecret == "" {
		return false
	}
	got, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(header), "sha256="))
	if err != nil {
		return false
	}
	want, _ := hex.DecodeString(Sign(h.options.WebhookSecret, body))

	return hmac.Equal(got, want)
}

// PaymentWebhook applies a payment provider notification. Replays answer 200
// with the current order state so the provider stops retrying.
func (h Handler) PaymentWebhook(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBytes))
	if err != nil {
		h.abort(c, serrors.Wrap(serrors.ErrBadRequest, err, "could not read webhook body"))

		return
	}
	if !h.verifySignature(c.GetHeader(SignatureHeader), body) {
		h.abort(c, errBadSignature)

		return
	}

	var req PaymentWebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.abort(c, badRequest(err))

		return
	}
	if err := validate.Struct(req); err != nil {
		h.abort(c, badRequest(err))

		return
	}

	order, err := h.deps.Orders.ConfirmPayment(c.Request.Context(), domain.PaymentNotification{
		ProviderPaymentID: req.ProviderPaymentID,
		SessionID:         req.SessionID,
		TenantID:          req.TenantID,
		OrderID:           req.OrderID,
		Amount:            req.Amount,
		Currency:          strings.ToLower(req.Currency),
	})
	if err != nil {
		h.abort(c, err)

		return
	}

	c.JSON(http.StatusOK, PaymentWebhookResponse{OrderID: order.ID, Status: order.Status})
}
