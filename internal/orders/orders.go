// Package orders handles print orders placed by gallery clients, their
// payment and their fulfilment.
package orders

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"studiohub/internal/config"
	"studiohub/internal/features"
	"studiohub/pkg/domain"
	"studiohub/pkg/logger"
	"studiohub/pkg/metrics"
	"studiohub/pkg/notify"
	"studiohub/pkg/ratelimit"
	"studiohub/pkg/serrors"
	"studiohub/pkg/storage"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultMaxNumberAttempts bounds order number generation.
	DefaultMaxNumberAttempts = 3
	// MaxLines caps the number of lines of one order.
	MaxLines = 100

	defaultPageSize = 20
	maxPageSize     = 100
)

var (
	ErrProductUnavailable = serrors.With(serrors.ErrBadRequest, "product is not available")
	ErrPhotoNotInGallery  = serrors.With(serrors.ErrBadRequest, "photo does not belong to the gallery")
	ErrTooManyLines       = serrors.With(serrors.ErrBadRequest, "order has too many lines")
	ErrPaymentMismatch    = serrors.With(serrors.ErrConflict, "payment does not match the order")
	ErrOrderChanged       = serrors.With(serrors.ErrConflict, "order was changed concurrently, please retry")
)

// Options configure the order service.
type Options struct {
	// PlacePolicy limits order placement per client IP.
	PlacePolicy       ratelimit.Policy
	MaxNumberAttempts int
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PlacePolicy: ratelimit.Policy{
			Name:   "order",
			Limit:  cfg.RateLimit.Order.Limit,
			Window: cfg.RateLimit.Order.Window,
		},
		MaxNumberAttempts: DefaultMaxNumberAttempts,
	}
}

type service struct {
	options  Options
	storage  storage.Storage
	features features.Resolver
	limiter  ratelimit.Limiter
	metrics  *metrics.Domain
	now      func() time.Time
}

// New builds the order service. A nil limiter disables rate limiting and a
// nil metrics records nothing.
func New(st storage.Storage,
	resolver features.Resolver,
	limiter ratelimit.Limiter,
	m *metrics.Domain,
	options Options,
) Service {
	if options.MaxNumberAttempts <= 0 {
		options.MaxNumberAttempts = DefaultMaxNumberAttempts
	}
	if m == nil {
		m = metrics.NoopDomain()
	}

	return &service{
		options:  options,
		storage:  st,
		features: resolver,
		limiter:  limiter,
		metrics:  m,
		now:      time.Now,
	}
}

func (s *service) Place(ctx context.Context, input PlaceInput) (*PlaceResult, error) {
	if err := ratelimit.Enforce(ctx, s.limiter, input.ClientIP, s.options.PlacePolicy); err != nil {
		return nil, err //nolint: wrapcheck
	}

	code, err := domain.NewGalleryCode(input.GalleryCode)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	gallery, err := s.storage.GalleryByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("could not fetch gallery: %w", err)
	}
	if gallery == nil || !gallery.Accessible(s.now()) || gallery.Visibility == domain.GalleryVisibilityPrivate {
		return nil, domain.ErrGalleryNotFound
	}

	tenant, err := s.storage.TenantByID(ctx, gallery.TenantID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch tenant: %w", err)
	}
	if tenant == nil || !tenant.Active() {
		return nil, domain.ErrGalleryNotFound
	}

	if err := s.features.Require(ctx, features.CacheFrom(ctx), tenant.ID, domain.FeatureOnlineOrders); err != nil {
		return nil, err //nolint: wrapcheck
	}

	email, err := domain.NewEmail(input.CustomerEmail)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	lines, err := s.resolveLines(ctx, tenant.ID, gallery.ID, input.Items)
	if err != nil {
		return nil, err
	}

	currency := tenant.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	order, event, err := domain.NewOrder(tenant.ID, gallery.ID, domain.Customer{
		Name:  input.CustomerName,
		Email: email,
		Phone: input.CustomerPhone,
	}, currency, lines, s.now())
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	stored, err := s.store(ctx, order)
	if err != nil {
		return nil, err
	}

	s.metrics.OrderPlaced(ctx, stored.Currency, stored.Total)
	logger.Info(ctx, "order placed",
		zap.String("orderID", stored.ID.String()),
		zap.String("orderNumber", stored.Number),
		zap.String("event", string(event.Type)),
		zap.Int64("total", stored.Total))

	notify.Enqueue(ctx, s.storage, notify.Message{
		Template: notify.TemplateOrderConfirmation,
		TenantID: stored.TenantID.String(),
		To:       stored.Customer.Email.String(),
		Ref:      stored.ID.String(),
		Data: map[string]string{
			"customerName": stored.Customer.Name,
			"orderNumber":  stored.Number,
			"total":        strconv.FormatInt(stored.Total, 10),
			"currency":     stored.Currency,
		},
	})

	return &PlaceResult{
		OrderID:     stored.ID,
		OrderNumber: stored.Number,
		AccessToken: stored.AccessToken,
		Total:       stored.Total,
		Currency:    stored.Currency,
		Status:      stored.Status,
		CreatedAt:   stored.CreatedAt,
	}, nil
}

// resolveLines loads the products and photos referenced by items. Products
// must be the tenant's active products and photos must be in the gallery.
func (s *service) resolveLines(ctx context.Context,
	tenantID domain.TenantID,
	galleryID domain.GalleryID,
	items []LineInput,
) ([]domain.OrderLine, error) {
	switch {
	case len(items) == 0:
		return nil, domain.ErrNoOrderItems
	case len(items) > MaxLines:
		return nil, ErrTooManyLines
	}

	var (
		productIDs []domain.ProductID
		photoIDs   []domain.PhotoID
		seenProd   = map[domain.ProductID]struct{}{}
		seenPhoto  = map[domain.PhotoID]struct{}{}
	)
	for _, item := range items {
		if item.Quantity <= 0 || item.Quantity > domain.MaxQuantity {
			return nil, domain.ErrQuantityInvalid
		}
		if _, ok := seenProd[item.ProductID]; !ok {
			seenProd[item.ProductID] = struct{}{}
			productIDs = append(productIDs, item.ProductID)
		}
		if item.PhotoID != nil {
			if _, ok := seenPhoto[*item.PhotoID]; !ok {
				seenPhoto[*item.PhotoID] = struct{}{}
				photoIDs = append(photoIDs, *item.PhotoID)
			}
		}
	}

	products, err := s.storage.ProductsByIDs(ctx, tenantID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("could not fetch products: %w", err)
	}
	byID := make(map[domain.ProductID]domain.Product, len(products))
	for _, p := range products {
		if p.Active {
			byID[p.ID] = p
		}
	}

	if len(photoIDs) > 0 {
		photos, err := s.storage.PhotosByIDs(ctx, galleryID, photoIDs)
		if err != nil {
			return nil, fmt.Errorf("could not fetch photos: %w", err)
		}
		if len(photos) != len(photoIDs) {
			return nil, ErrPhotoNotInGallery
		}
	}

	lines := make([]domain.OrderLine, 0, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, item.ProductID)
		}
		lines = append(lines, domain.OrderLine{Product: product, PhotoID: item.PhotoID, Quantity: item.Quantity})
	}

	return lines, nil
}

// store inserts order and its items, drawing a new number when the number is
// taken. Each attempt runs in its own transaction because a unique violation
// aborts the transaction it happened in.
func (s *service) store(ctx context.Context, order domain.Order) (*domain.Order, error) {
	var (
		stored *domain.Order
		err    error
	)
	for attempt := 1; attempt <= s.options.MaxNumberAttempts; attempt++ {
		err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
			var err error
			stored, err = tx.StoreOrder(ctx, order)

			return err //nolint: wrapcheck
		})
		if err == nil {
			return stored, nil
		}
		if !errors.Is(err, storage.ErrUniqueViolation) {
			return nil, fmt.Errorf("could not store order: %w", err)
		}

		logger.Warn(ctx, "order number collision", zap.String("orderNumber", order.Number), zap.Int("attempt", attempt))
		order = order.Renumber(s.now())
	}

	return nil, serrors.Wrap(serrors.ErrConflict, err, "could not allocate a unique order number, please retry")
}

// errPaymentReplayed aborts the confirmation transaction when another request
// already recorded the same provider payment.
var errPaymentReplayed = errors.New("payment already recorded")

func (s *service) ConfirmPayment(ctx context.Context, n domain.PaymentNotification) (*domain.Order, error) {
	ctx = logger.WithFields(ctx,
		zap.String("orderID", n.OrderID.String()),
		zap.String("providerPaymentID", n.ProviderPaymentID))

	var (
		result    *domain.Order
		confirmed bool
	)
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.PaymentByProviderID(ctx, n.ProviderPaymentID)
		if err != nil {
			return fmt.Errorf("could not fetch payment: %w", err)
		}
		if existing != nil {
			return errPaymentReplayed
		}

		order, err := tx.OrderByID(ctx, n.TenantID, n.OrderID)
		if err != nil {
			return fmt.Errorf("could not fetch order: %w", err)
		}
		if order == nil {
			return domain.ErrOrderNotFound
		}
		if !n.Matches(*order) {
			return fmt.Errorf("%w: got %d %s, order %s expects %d %s", ErrPaymentMismatch,
				n.Amount, n.Currency, order.Number, order.Total, order.Currency)
		}

		result = order
		if order.Status != domain.OrderStatusPending {
			logger.Info(ctx, "payment for non-pending order ignored", zap.String("status", string(order.Status)))

			return nil
		}

		next, _, err := order.Transition(domain.OrderStatusConfirmed, s.now())
		if err != nil {
			return err //nolint: wrapcheck
		}
		updated, err := tx.UpdateOrderStatus(ctx, next, domain.OrderStatusPending)
		if err != nil {
			return fmt.Errorf("could not confirm order: %w", err)
		}
		if updated == nil {
			// a concurrent confirmation won
			return errPaymentReplayed
		}

		if _, err := tx.StorePayment(ctx, domain.NewPayment(n, s.now())); err != nil {
			if errors.Is(err, storage.ErrUniqueViolation) {
				return errPaymentReplayed
			}

			return fmt.Errorf("could not store payment: %w", err)
		}

		result, confirmed = updated, true

		return nil
	})
	if errors.Is(err, errPaymentReplayed) {
		logger.Info(ctx, "payment notification replayed")

		return s.storedOrder(ctx, n.TenantID, n.OrderID)
	}
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	if confirmed {
		s.metrics.PaymentConfirmed(ctx)
		logger.Info(ctx, "payment confirmed")
		s.notifyStatus(ctx, *result)
	}

	return result, nil
}

// storedOrder reads the committed state of an order after a no-op.
func (s *service) storedOrder(ctx context.Context, tenantID domain.TenantID, id domain.OrderID) (*domain.Order, error) {
	order, err := s.storage.OrderByID(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch order: %w", err)
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}

	return order, nil
}

func (s *service) UpdateStatus(ctx context.Context,
	tenantID domain.TenantID,
	id domain.OrderID,
	rawStatus string,
) (*domain.Order, error) {
	status, err := domain.ParseOrderStatus(rawStatus)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	order, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	next, event, err := order.Transition(status, s.now())
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if event == nil {
		return order, nil
	}

	updated, err := s.storage.UpdateOrderStatus(ctx, next, order.Status)
	if err != nil {
		return nil, fmt.Errorf("could not update order status: %w", err)
	}
	if updated == nil {
		return nil, ErrOrderChanged
	}

	logger.Info(ctx, "order status changed",
		zap.String("orderID", id.String()),
		zap.String("from", string(event.From)),
		zap.String("to", string(event.To)))
	s.notifyStatus(ctx, *updated)

	return updated, nil
}

func (s *service) notifyStatus(ctx context.Context, order domain.Order) {
	notify.Enqueue(ctx, s.storage, notify.Message{
		Template: notify.TemplateOrderStatusChanged,
		TenantID: order.TenantID.String(),
		To:       order.Customer.Email.String(),
		Ref:      order.ID.String(),
		Data: map[string]string{
			"customerName": order.Customer.Name,
			"orderNumber":  order.Number,
			"status":       string(order.Status),
		},
	})
}

func (s *service) Get(ctx context.Context, tenantID domain.TenantID, id domain.OrderID) (*domain.Order, error) {
	return s.storedOrder(ctx, tenantID, id)
}

func (s *service) List(ctx context.Context,
	tenantID domain.TenantID,
	filter storage.OrderFilter,
) (storage.TenantOrders, error) {
	switch {
	case filter.Limit == 0:
		filter.Limit = defaultPageSize
	case filter.Limit > maxPageSize:
		filter.Limit = maxPageSize
	}

	page, err := s.storage.TenantOrders(ctx, tenantID, filter)
	if err != nil {
		return storage.TenantOrders{}, fmt.Errorf("could not list orders: %w", err)
	}

	return page, nil
}

func (s *service) LookupByToken(ctx context.Context, token string) (*domain.Order, error) {
	if !domain.ValidAccessToken(token) {
		return nil, domain.ErrOrderNotFound
	}

	order, err := s.storage.OrderByAccessToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("could not fetch order: %w", err)
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}

	return order, nil
}
