// Package session turns bearer tokens into the authenticated actor and decides
// whether that actor may perform an operation. Credentials are checked by the
// identity provider that issues the tokens; this package only verifies them.
package session

import (
	"context"
	"studiohub/pkg/domain"
	"studiohub/pkg/serrors"
)

// Session is the authenticated actor of a request.
type Session struct {
	UserID domain.UserID
	// TenantID is nil for sessions that are not bound to a studio yet.
	TenantID *domain.TenantID
	Role     domain.Role
}

// Authorization failures. Each maps to its own HTTP status.
var (
	ErrUnauthorized   = serrors.With(serrors.ErrUnauthorized, "authentication required")
	ErrTenantRequired = serrors.With(serrors.ErrTenantRequired, "session is not bound to a studio")
	ErrForbidden      = serrors.With(serrors.ErrForbidden, "your role does not allow this action")
)

// Require fails closed: no session, then no tenant, then insufficient role.
func Require(sess *Session, required domain.Role) error {
	switch {
	case sess == nil:
		return ErrUnauthorized
	case sess.TenantID == nil:
		return ErrTenantRequired
	case !sess.Role.Authorize(required):
		return ErrForbidden
	default:
		return nil
	}
}

// Tenant returns the bound tenant. Call it after Require succeeded.
func (s *Session) Tenant() domain.TenantID {
	if s == nil || s.TenantID == nil {
		return domain.TenantID{}
	}

	return *s.TenantID
}

type key struct{}

// WithSession stores sess in ctx.
func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, key{}, sess)
}

// FromContext returns the session stored in ctx, or nil.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(key{}).(*Session)

	return sess
}
