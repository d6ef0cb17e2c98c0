package v1handler

import (
	"strings"
	"studiohub/internal/features"
	"studiohub/pkg/controller"
	"studiohub/pkg/domain"
	"studiohub/pkg/logger"
	"studiohub/pkg/serrors"
	"studiohub/pkg/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenVerifier turns a bearer token into a session.
type TokenVerifier interface {
	Verify(token string) (*session.Session, error)
}

const tenantKey = "tenant"

var errStaffOnly = serrors.With(serrors.ErrForbidden, "platform staff session required")

// FeatureCache gives each request its own features.Cache so repeated plan
// checks of one request hit storage once.
func FeatureCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(features.WithCache(c.Request.Context()))
		c.Next()
	}
}

// Authenticate attaches the session of a valid bearer token to the request
// context. Requests without a token continue anonymously; the role checks
// downstream reject them.
func (h Handler) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()

			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || h.deps.Verifier == nil {
			h.abort(c, session.ErrUnauthorized)

			return
		}

		sess, err := h.deps.Verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			h.abort(c, err)

			return
		}

		ctx := session.WithSession(c.Request.Context(), sess)
		fields := []zap.Field{zap.String("userID", sess.UserID.String())}
		if sess.TenantID != nil {
			fields = append(fields, zap.String("tenantID", sess.TenantID.String()))
		}
		c.Request = c.Request.WithContext(logger.WithFields(ctx, fields...))

		c.Next()
	}
}

// RequireRole lets the request through when its session is bound to a
// studio and carries at least the required role.
func (h Handler) RequireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := session.Require(session.FromContext(c.Request.Context()), required); err != nil {
			h.abort(c, err)

			return
		}

		c.Next()
	}
}

// RequireStaff admits platform staff: owner sessions that are not bound to
// any studio, as issued by the jwt command.
func (h Handler) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.FromContext(c.Request.Context())
		switch {
		case sess == nil:
			h.abort(c, session.ErrUnauthorized)

			return
		case sess.TenantID != nil || sess.Role != domain.RoleOwner:
			h.abort(c, errStaffOnly)

			return
		}

		c.Next()
	}
}

// ResolveTenant finds the studio addressed by the request host, either its
// platform subdomain or its custom domain.
func (h Handler) ResolveTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Request.Host
		if forwarded := c.GetHeader("X-Forwarded-Host"); forwarded != "" {
			host = strings.TrimSpace(strings.Split(forwarded, ",")[0])
		}

		tenant, err := h.deps.Tenancy.ResolveHost(c.Request.Context(), host)
		if err != nil {
			h.abort(c, err)

			return
		}

		c.Set(tenantKey, tenant)
		c.Request = c.Request.WithContext(
			logger.WithFields(c.Request.Context(), zap.String("tenantID", tenant.ID.String())))

		c.Next()
	}
}

func hostTenant(c *gin.Context) *domain.Tenant {
	tenant, _ := c.MustGet(tenantKey).(*domain.Tenant)

	return tenant
}

// sessionTenant is the studio of the authenticated session. Routes using it
// sit behind RequireRole.
func sessionTenant(c *gin.Context) domain.TenantID {
	return session.FromContext(c.Request.Context()).Tenant()
}

func clientIP(c *gin.Context) string {
	return controller.GetClientIP(c.Request)
}
