// Package tenancy manages studio accounts: signup, plans and feature
// overrides, team members, custom domains and the product catalog.
package tenancy

import (
	"context"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"
	"studiohub/internal/config"
	"studiohub/internal/features"
	"studiohub/pkg/domain"
	"studiohub/pkg/logger"
	"studiohub/pkg/notify"
	"studiohub/pkg/ratelimit"
	"studiohub/pkg/serrors"
	"studiohub/pkg/session"
	"studiohub/pkg/storage"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSlugTaken          = serrors.With(serrors.ErrConflict, "slug is already taken")
	ErrMemberExists       = serrors.With(serrors.ErrConflict, "a member with this email already exists")
	ErrDomainTaken        = serrors.With(serrors.ErrConflict, "domain is already used by another studio")
	ErrDomainInvalid      = serrors.With(serrors.ErrBadRequest, "domain is not a valid host name")
	ErrPasswordTooShort   = serrors.With(serrors.ErrBadRequest, "password must be at least 8 characters")
	ErrPasswordTooLong    = serrors.With(serrors.ErrBadRequest, "password must be at most 72 bytes")
	ErrNameRequired       = serrors.With(serrors.ErrBadRequest, "name is required")
	ErrOwnerNotInvitable  = serrors.With(serrors.ErrBadRequest, "the owner role cannot be invited")
	ErrFeatureUnknown     = serrors.With(serrors.ErrBadRequest, "unknown feature")
	ErrStatusInvalid      = serrors.With(serrors.ErrBadRequest, "unknown tenant status")
	ErrInvalidCredentials = serrors.With(serrors.ErrUnauthorized, "invalid email or password")
	ErrLoginDisabled      = serrors.With(serrors.ErrUnavailable, "login is not configured")
	ErrResetTokenInvalid  = serrors.With(serrors.ErrBadRequest, "reset link is invalid or has expired")
)

var hostPattern = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,63}$`)

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(sess session.Session, ttl time.Duration, now time.Time) (string, error)
}

// Options configure the tenancy service.
type Options struct {
	// RootDomain hosts studios on <slug>.<RootDomain>.
	RootDomain string

	SignupPolicy ratelimit.Policy
	LoginPolicy  ratelimit.Policy
	ResetPolicy  ratelimit.Policy

	SessionTTL     time.Duration
	ResetTokenTTL  time.Duration
	InviteTokenTTL time.Duration
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	policy := func(name string, l config.RateLimit) ratelimit.Policy {
		return ratelimit.Policy{Name: name, Limit: l.Limit, Window: l.Window}
	}

	return Options{
		RootDomain:     cfg.Tenancy.RootDomain,
		SignupPolicy:   policy("signup", cfg.RateLimit.Signup),
		LoginPolicy:    policy("login", cfg.RateLimit.Login),
		ResetPolicy:    policy("password_reset", cfg.RateLimit.PasswordReset),
		SessionTTL:     cfg.Session.TTL,
		ResetTokenTTL:  cfg.Tenancy.ResetTokenTTL,
		InviteTokenTTL: cfg.Tenancy.InviteTokenTTL,
	}
}

type service struct {
	options  Options
	storage  storage.Storage
	features features.Resolver
	limiter  ratelimit.Limiter
	issuer   TokenIssuer
	now      func() time.Time
}

func (o Options) withDefaults() Options {
	if o.SessionTTL <= 0 {
		o.SessionTTL = 12 * time.Hour
	}
	if o.ResetTokenTTL <= 0 {
		o.ResetTokenTTL = time.Hour
	}
	if o.InviteTokenTTL <= 0 {
		o.InviteTokenTTL = 7 * 24 * time.Hour
	}
	o.RootDomain = strings.ToLower(strings.Trim(o.RootDomain, "."))

	return o
}

// New builds the tenancy service. A nil limiter disables rate limiting and a
// nil issuer disables Login.
func New(st storage.Storage,
	resolver features.Resolver,
	limiter ratelimit.Limiter,
	issuer TokenIssuer,
	options Options,
) Service {
	return &service{
		options:  options.withDefaults(),
		storage:  st,
		features: resolver,
		limiter:  limiter,
		issuer:   issuer,
		now:      time.Now,
	}
}

func validatePassword(password string) error {
	switch {
	case len(password) < minPasswordLength:
		return ErrPasswordTooShort
	case len(password) > maxPasswordLength:
		return ErrPasswordTooLong
	default:
		return nil
	}
}

func (s *service) Signup(ctx context.Context, input SignupInput) (*SignupResult, error) {
	if err := ratelimit.Enforce(ctx, s.limiter, input.ClientIP, s.options.SignupPolicy); err != nil {
		return nil, err //nolint: wrapcheck
	}

	slug, err := domain.NewTenantSlug(input.Slug)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	email, err := domain.NewEmail(input.Email)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	studioName, ownerName := strings.TrimSpace(input.StudioName), strings.TrimSpace(input.OwnerName)
	if studioName == "" || ownerName == "" {
		return nil, ErrNameRequired
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}
	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	tenantID := domain.TenantID(uuid.New())
	var result SignupResult
	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		tenant, err := tx.StoreTenant(ctx, domain.Tenant{
			ID:        tenantID,
			Slug:      slug,
			Name:      studioName,
			Tier:      domain.TierStarter,
			Status:    domain.TenantStatusActive,
			Currency:  domain.DefaultCurrency,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("could not store tenant: %w", err)
		}

		owner, err := tx.StoreUser(ctx, domain.User{
			ID:           domain.UserID(uuid.New()),
			TenantID:     tenantID,
			Email:        email,
			Name:         ownerName,
			Role:         domain.RoleOwner,
			PasswordHash: hash,
			CreatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("could not store owner: %w", err)
		}

		result = SignupResult{Tenant: *tenant, Owner: *owner}

		return nil
	})
	if errors.Is(err, storage.ErrUniqueViolation) {
		return nil, ErrSlugTaken
	}
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	logger.Info(ctx, "studio signed up",
		zap.String("tenantID", tenantID.String()),
		zap.String("slug", slug.String()))

	return &result, nil
}

func (s *service) Login(ctx context.Context, input LoginInput) (string, error) {
	if s.issuer == nil {
		return "", ErrLoginDisabled
	}
	if err := ratelimit.Enforce(ctx, s.limiter, input.ClientIP, s.options.LoginPolicy); err != nil {
		return "", err //nolint: wrapcheck
	}

	email, err := domain.NewEmail(input.Email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	user, err := s.storage.UserByEmail(ctx, input.TenantID, email)
	if err != nil {
		return "", fmt.Errorf("could not fetch user: %w", err)
	}
	hash := ""
	if user != nil {
		hash = user.PasswordHash
	}
	if !checkPassword(hash, input.Password) {
		return "", ErrInvalidCredentials
	}

	tenantID := user.TenantID
	token, err := s.issuer.Issue(session.Session{
		UserID:   user.ID,
		TenantID: &tenantID,
		Role:     user.Role,
	}, s.options.SessionTTL, s.now())
	if err != nil {
		return "", fmt.Errorf("could not issue session: %w", err)
	}

	return token, nil
}

func (s *service) Get(ctx context.Context, tenantID domain.TenantID) (*domain.Tenant, error) {
	tenant, err := s.storage.TenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch tenant: %w", err)
	}
	if tenant == nil {
		return nil, domain.ErrTenantNotFound
	}

	return tenant, nil
}

func (s *service) ResolveHost(ctx context.Context, host string) (*domain.Tenant, error) {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(host, ".")

	var (
		tenant *domain.Tenant
		err    error
	)
	root := s.options.RootDomain
	switch {
	case host == "" || host == root:
		return nil, domain.ErrTenantNotFound
	case root != "" && strings.HasSuffix(host, "."+root):
		label := strings.TrimSuffix(host, "."+root)
		if strings.Contains(label, ".") {
			return nil, domain.ErrTenantNotFound
		}
		slug, slugErr := domain.NewTenantSlug(label)
		if slugErr != nil {
			return nil, domain.ErrTenantNotFound
		}
		tenant, err = s.storage.TenantBySlug(ctx, slug)
	default:
		tenant, err = s.storage.TenantByDomain(ctx, host)
	}
	if err != nil {
		return nil, fmt.Errorf("could not resolve host: %w", err)
	}
	if tenant == nil || !tenant.Active() {
		return nil, domain.ErrTenantNotFound
	}

	return tenant, nil
}

func (s *service) ChangePlan(ctx context.Context, tenantID domain.TenantID, change PlanChange) (*domain.Tenant, error) {
	var updates storage.TenantUpdates
	if change.Tier != nil {
		tier, err := domain.ParseTier(*change.Tier)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		updates.Tier = &tier
	}
	if change.Status != nil {
		status := domain.TenantStatus(strings.ToLower(strings.TrimSpace(*change.Status)))
		if !status.Valid() {
			return nil, ErrStatusInvalid
		}
		updates.Status = &status
	}

	tenant, err := s.update(ctx, tenantID, updates)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "plan changed",
		zap.String("tenantID", tenantID.String()),
		zap.String("tier", string(tenant.Tier)),
		zap.String("status", string(tenant.Status)))

	return tenant, nil
}

func (s *service) update(ctx context.Context, tenantID domain.TenantID, updates storage.TenantUpdates) (*domain.Tenant, error) {
	tenant, err := s.storage.UpdateTenant(ctx, tenantID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update tenant: %w", err)
	}
	if tenant == nil {
		return nil, domain.ErrTenantNotFound
	}

	return tenant, nil
}

func (s *service) Features(ctx context.Context, tenantID domain.TenantID) (map[domain.Feature]bool, error) {
	if _, err := s.Get(ctx, tenantID); err != nil {
		return nil, err
	}

	all, err := s.features.All(ctx, features.CacheFrom(ctx), tenantID)
	if err != nil {
		return nil, fmt.Errorf("could not resolve features: %w", err)
	}

	return all, nil
}

func (s *service) SetFeatureOverride(ctx context.Context,
	tenantID domain.TenantID,
	feature domain.Feature,
	enabled bool,
) error {
	if !feature.Known() {
		return fmt.Errorf("%w: %s", ErrFeatureUnknown, feature)
	}
	if _, err := s.Get(ctx, tenantID); err != nil {
		return err
	}

	if err := s.storage.SetFeatureOverride(ctx, domain.FeatureOverride{
		TenantID: tenantID,
		Feature:  feature,
		Enabled:  enabled,
	}); err != nil {
		return fmt.Errorf("could not set feature override: %w", err)
	}
	features.CacheFrom(ctx).Invalidate(tenantID)

	logger.Info(ctx, "feature override set",
		zap.String("tenantID", tenantID.String()),
		zap.String("feature", string(feature)),
		zap.Bool("enabled", enabled))

	return nil
}

func (s *service) ClearFeatureOverride(ctx context.Context, tenantID domain.TenantID, feature domain.Feature) error {
	if !feature.Known() {
		return fmt.Errorf("%w: %s", ErrFeatureUnknown, feature)
	}

	if err := s.storage.DeleteFeatureOverride(ctx, tenantID, feature); err != nil {
		return fmt.Errorf("could not clear feature override: %w", err)
	}
	features.CacheFrom(ctx).Invalidate(tenantID)

	return nil
}

func (s *service) RotateAPIKey(ctx context.Context, tenantID domain.TenantID) (string, error) {
	if err := s.features.Require(ctx, features.CacheFrom(ctx), tenantID, domain.FeatureAPIAccess); err != nil {
		return "", err //nolint: wrapcheck
	}

	key := apiKeyPrefix + randomToken(32)
	hash, err := hashPassword(key)
	if err != nil {
		return "", err
	}
	if _, err := s.update(ctx, tenantID, storage.TenantUpdates{APIKeyHash: &hash}); err != nil {
		return "", err
	}

	logger.Info(ctx, "api key rotated", zap.String("tenantID", tenantID.String()))

	return key, nil
}

func (s *service) SetCustomDomain(ctx context.Context, tenantID domain.TenantID, host string) (*domain.Tenant, error) {
	host = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
	if host != "" {
		if err := s.features.Require(ctx, features.CacheFrom(ctx), tenantID, domain.FeatureCustomDomain); err != nil {
			return nil, err //nolint: wrapcheck
		}
		root := s.options.RootDomain
		if len(host) > 253 || !hostPattern.MatchString(host) ||
			(root != "" && (host == root || strings.HasSuffix(host, "."+root))) {
			return nil, ErrDomainInvalid
		}
	}

	tenant, err := s.update(ctx, tenantID, storage.TenantUpdates{CustomDomain: &host})
	if errors.Is(err, storage.ErrUniqueViolation) {
		return nil, ErrDomainTaken
	}

	return tenant, err
}

func (s *service) Members(ctx context.Context, tenantID domain.TenantID) ([]domain.User, error) {
	users, err := s.storage.TenantUsers(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("could not list members: %w", err)
	}

	return users, nil
}

func (s *service) InviteMember(ctx context.Context, tenantID domain.TenantID, input InviteInput) (*domain.User, error) {
	if err := s.features.Require(ctx, features.CacheFrom(ctx), tenantID, domain.FeatureTeamMembers); err != nil {
		return nil, err //nolint: wrapcheck
	}

	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if role == domain.RoleOwner {
		return nil, ErrOwnerNotInvitable
	}
	email, err := domain.NewEmail(input.Email)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	tenant, err := s.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.StoreUser(ctx, domain.User{
		ID:        domain.UserID(uuid.New()),
		TenantID:  tenantID,
		Email:     email,
		Name:      name,
		Role:      role,
		CreatedAt: s.now(),
	})
	if errors.Is(err, storage.ErrUniqueViolation) {
		return nil, ErrMemberExists
	}
	if err != nil {
		return nil, fmt.Errorf("could not store member: %w", err)
	}

	// the invitation link sets the first password through ResetPassword; its
	// token is minted when the message is delivered
	notify.Enqueue(ctx, s.storage, notify.Message{
		Template: notify.TemplateInvitation,
		TenantID: tenantID.String(),
		To:       email.String(),
		Ref:      user.ID.String(),
		Data: map[string]string{
			"name":       name,
			"studioName": tenant.Name,
			"role":       string(role),
		},
	})

	return user, nil
}

func (s *service) RequestPasswordReset(ctx context.Context, tenantID domain.TenantID, rawEmail, clientIP string) error {
	if err := ratelimit.Enforce(ctx, s.limiter, clientIP, s.options.ResetPolicy); err != nil {
		return err //nolint: wrapcheck
	}

	email, err := domain.NewEmail(rawEmail)
	if err != nil {
		return nil
	}

	user, err := s.storage.UserByEmail(ctx, tenantID, email)
	if err != nil {
		return fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil {
		logger.Debug(ctx, "password reset for unknown address")

		return nil
	}

	notify.Enqueue(ctx, s.storage, notify.Message{
		Template: notify.TemplatePasswordReset,
		TenantID: tenantID.String(),
		To:       email.String(),
		Ref:      user.ID.String(),
		Data: map[string]string{
			"name": user.Name,
		},
	})

	return nil
}

func (s *service) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	if err := ratelimit.Enforce(ctx, s.limiter, input.ClientIP, s.options.ResetPolicy); err != nil {
		return err //nolint: wrapcheck
	}
	if err := validatePassword(input.Password); err != nil {
		return err
	}
	if input.Token == "" {
		return ErrResetTokenInvalid
	}

	tokenHash := hashToken(input.Token)
	user, err := s.storage.UserByResetToken(ctx, input.TenantID, tokenHash)
	if err != nil {
		return fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil || !s.now().Before(user.ResetExpiresAt) {
		return ErrResetTokenInvalid
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		return err
	}

	updated, err := s.storage.ConsumePasswordReset(ctx, user.ID, tokenHash, passwordHash)
	if err != nil {
		return fmt.Errorf("could not set password: %w", err)
	}
	if updated == nil {
		// redeemed concurrently
		return ErrResetTokenInvalid
	}

	logger.Info(ctx, "password reset",
		zap.String("tenantID", input.TenantID.String()),
		zap.String("userID", user.ID.String()))

	return nil
}

func (s *service) CreateProduct(ctx context.Context, tenantID domain.TenantID, input ProductInput) (*domain.Product, error) {
	product, err := domain.NewProduct(tenantID, input.Name, input.Description, input.Price, s.now())
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	stored, err := s.storage.StoreProduct(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("could not store product: %w", err)
	}

	return stored, nil
}

func (s *service) ListProducts(ctx context.Context, tenantID domain.TenantID, activeOnly bool) ([]domain.Product, error) {
	products, err := s.storage.TenantProducts(ctx, tenantID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("could not list products: %w", err)
	}

	return products, nil
}
