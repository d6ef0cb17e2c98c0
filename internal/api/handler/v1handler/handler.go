// Package v1handler serves the version 1 HTTP API: the studio dashboard
// endpoints, the public gallery client endpoints and the payment webhook.
package v1handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"studiohub/internal/config"
	"studiohub/internal/galleries"
	"studiohub/internal/orders"
	"studiohub/internal/tenancy"
	"studiohub/pkg/logger"
	"studiohub/pkg/ratelimit"
	"studiohub/pkg/serrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Deps are the services behind the endpoints.
type Deps struct {
	Galleries galleries.Service
	Orders    orders.Service
	Tenancy   tenancy.Service
	// Verifier checks bearer tokens. Without one every authenticated
	// endpoint answers 401.
	Verifier TokenVerifier
}

// Options configure request handling.
type Options struct {
	// WebhookSecret is the HMAC-SHA256 key of payment webhooks. Webhooks are
	// rejected while it is empty.
	WebhookSecret string
	// MaxUploadBytes limits one photo upload.
	MaxUploadBytes int64
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		WebhookSecret:  cfg.Payments.WebhookSecret,
		MaxUploadBytes: cfg.Media.MaxUploadBytes,
	}
}

type Handler struct {
	deps    Deps
	options Options
}

func New(deps Deps, options Options) *Handler {
	if options.MaxUploadBytes <= 0 {
		options.MaxUploadBytes = 50 << 20
	}

	return &Handler{deps: deps, options: options}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:       "resource not found",
	serrors.ErrUnauthorized:   "authentication required",
	serrors.ErrTenantRequired: "session is not bound to a studio",
	serrors.ErrForbidden:      "forbidden",
	serrors.ErrBadRequest:     "bad request",
	serrors.ErrConflict:       "conflict",
	serrors.ErrTimeout:        "request timed out",
	serrors.ErrUnavailable:    "service unavailable",
	serrors.ErrRateLimited:    "too many requests",
}

// NewError maps err to its status code and response body. Internal errors are
// logged and never leak their text to the client.
func (h Handler) NewError(ctx context.Context, err error) (int, ErrorResponse) {
	kind := serrors.KindOf(err)
	status := serrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError && kind != serrors.ErrUnavailable && kind != serrors.ErrTimeout {
		logger.Error(ctx, "request failed", zap.Error(err))

		return http.StatusInternalServerError, ErrorResponse{
			Code:    serrors.ErrInternal.Error(),
			Message: "internal error",
		}
	}

	msg := defaultMessages[kind]
	var (
		se *serrors.Error
		rl *ratelimit.Error
	)
	switch {
	case errors.As(err, &rl):
		msg = rl.Error()
	case errors.As(err, &se) && se.Message() != "":
		msg = se.Message()
		if err != error(se) {
			// outer layers only add detail to the semantic error
			msg = err.Error()
		}
	}

	return status, ErrorResponse{Code: kind.Error(), Message: msg}
}

// abort renders err and stops the handler chain.
func (h Handler) abort(c *gin.Context, err error) {
	var rl *ratelimit.Error
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(rl.RetryAfter.Seconds()))))
	}

	status, body := h.NewError(c.Request.Context(), err)
	c.AbortWithStatusJSON(status, body)
}

func badRequest(err error) error {
	return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request: %s", err.Error())
}
