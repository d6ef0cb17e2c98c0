package postgres

import (
	"database/sql"
	"studiohub/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// Pg* structs mirror table rows. Timestamps that the database defaults are
// skipped on insert so rows always carry server time.

type PgTenant struct {
	ID           uuid.UUID      `db:"id"`
	Slug         string         `db:"slug"`
	Name         string         `db:"name"`
	Tier         string         `db:"tier"`
	Status       string         `db:"status"`
	CustomDomain sql.NullString `db:"custom_domain"`
	Currency     string         `db:"currency"`
	APIKeyHash   sql.NullString `db:"api_key_hash"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgTenant) ToDomain() *domain.Tenant {
	return &domain.Tenant{
		ID:           domain.TenantID(p.ID),
		Slug:         domain.TenantSlug(p.Slug),
		Name:         p.Name,
		Tier:         domain.Tier(p.Tier),
		Status:       domain.TenantStatus(p.Status),
		CustomDomain: p.CustomDomain.String,
		Currency:     p.Currency,
		APIKeyHash:   p.APIKeyHash.String,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (p *PgTenant) FromDomain(t domain.Tenant) {
	*p = PgTenant{
		ID:           uuid.UUID(t.ID),
		Slug:         string(t.Slug),
		Name:         t.Name,
		Tier:         string(t.Tier),
		Status:       string(t.Status),
		CustomDomain: nullString(t.CustomDomain),
		Currency:     t.Currency,
		APIKeyHash:   nullString(t.APIKeyHash),
	}
}

type PgUser struct {
	ID             uuid.UUID      `db:"id"`
	TenantID       uuid.UUID      `db:"tenant_id"`
	Email          string         `db:"email"`
	Name           string         `db:"name"`
	Role           string         `db:"role"`
	PasswordHash   sql.NullString `db:"password_hash"`
	ResetTokenHash sql.NullString `db:"reset_token_hash"`
	ResetExpiresAt sql.NullTime   `db:"reset_expires_at"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:             domain.UserID(p.ID),
		TenantID:       domain.TenantID(p.TenantID),
		Email:          domain.Email(p.Email),
		Name:           p.Name,
		Role:           domain.Role(p.Role),
		PasswordHash:   p.PasswordHash.String,
		ResetTokenHash: p.ResetTokenHash.String,
		ResetExpiresAt: p.ResetExpiresAt.Time,
		CreatedAt:      p.CreatedAt,
	}
}

func (p *PgUser) FromDomain(u domain.User) {
	*p = PgUser{
		ID:             uuid.UUID(u.ID),
		TenantID:       uuid.UUID(u.TenantID),
		Email:          string(u.Email),
		Name:           u.Name,
		Role:           string(u.Role),
		PasswordHash:   nullString(u.PasswordHash),
		ResetTokenHash: nullString(u.ResetTokenHash),
		ResetExpiresAt: nullTime(u.ResetExpiresAt),
	}
}

type PgFeatureFlag struct {
	TenantID uuid.UUID `db:"tenant_id"`
	Feature  string    `db:"feature"`
	Enabled  bool      `db:"enabled"`
}

func (p *PgFeatureFlag) ToDomain() domain.FeatureOverride {
	return domain.FeatureOverride{
		TenantID: domain.TenantID(p.TenantID),
		Feature:  domain.Feature(p.Feature),
		Enabled:  p.Enabled,
	}
}

type PgGallery struct {
	ID           uuid.UUID     `db:"id"`
	TenantID     uuid.UUID     `db:"tenant_id"`
	Code         string        `db:"code"`
	Title        string        `db:"title"`
	Description  string        `db:"description"`
	Status       string        `db:"status"`
	Visibility   string        `db:"visibility"`
	PhotoCount   int           `db:"photo_count"`
	SessionPrice sql.NullInt64 `db:"session_price"`
	ExpiresAt    sql.NullTime  `db:"expires_at"`
	PublishedAt  sql.NullTime  `db:"published_at"`
	ArchivedAt   sql.NullTime  `db:"archived_at"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgGallery) ToDomain() *domain.Gallery {
	g := &domain.Gallery{
		ID:          domain.GalleryID(p.ID),
		TenantID:    domain.TenantID(p.TenantID),
		Code:        domain.GalleryCode(p.Code),
		Title:       p.Title,
		Description: p.Description,
		Status:      domain.GalleryStatus(p.Status),
		Visibility:  domain.GalleryVisibility(p.Visibility),
		PhotoCount:  p.PhotoCount,
		ExpiresAt:   p.ExpiresAt.Time,
		PublishedAt: p.PublishedAt.Time,
		ArchivedAt:  p.ArchivedAt.Time,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.SessionPrice.Valid {
		price := p.SessionPrice.Int64
		g.SessionPrice = &price
	}

	return g
}

func (p *PgGallery) FromDomain(g domain.Gallery) {
	*p = PgGallery{
		ID:          uuid.UUID(g.ID),
		TenantID:    uuid.UUID(g.TenantID),
		Code:        string(g.Code),
		Title:       g.Title,
		Description: g.Description,
		Status:      string(g.Status),
		Visibility:  string(g.Visibility),
		PhotoCount:  g.PhotoCount,
		ExpiresAt:   nullTime(g.ExpiresAt),
		PublishedAt: nullTime(g.PublishedAt),
		ArchivedAt:  nullTime(g.ArchivedAt),
	}
	if g.SessionPrice != nil {
		p.SessionPrice = sql.NullInt64{Int64: *g.SessionPrice, Valid: true}
	}
}

type PgPhoto struct {
	ID           uuid.UUID `db:"id"`
	GalleryID    uuid.UUID `db:"gallery_id"`
	Filename     string    `db:"filename"`
	OriginalKey  string    `db:"original_key"`
	WebKey       string    `db:"web_key"`
	ThumbnailKey string    `db:"thumbnail_key"`
	Width        int       `db:"width"`
	Height       int       `db:"height"`
	Size         int64     `db:"size"`
	MimeType     string    `db:"mime_type"`
	SortOrder    int       `db:"sort_order"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgPhoto) ToDomain() *domain.Photo {
	return &domain.Photo{
		ID:           domain.PhotoID(p.ID),
		GalleryID:    domain.GalleryID(p.GalleryID),
		Filename:     p.Filename,
		OriginalKey:  p.OriginalKey,
		WebKey:       p.WebKey,
		ThumbnailKey: p.ThumbnailKey,
		Width:        p.Width,
		Height:       p.Height,
		Size:         p.Size,
		MimeType:     p.MimeType,
		SortOrder:    p.SortOrder,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgPhoto) FromDomain(ph domain.Photo) {
	*p = PgPhoto{
		ID:           uuid.UUID(ph.ID),
		GalleryID:    uuid.UUID(ph.GalleryID),
		Filename:     ph.Filename,
		OriginalKey:  ph.OriginalKey,
		WebKey:       ph.WebKey,
		ThumbnailKey: ph.ThumbnailKey,
		Width:        ph.Width,
		Height:       ph.Height,
		Size:         ph.Size,
		MimeType:     ph.MimeType,
		SortOrder:    ph.SortOrder,
	}
}

type PgProduct struct {
	ID          uuid.UUID `db:"id"`
	TenantID    uuid.UUID `db:"tenant_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       int64     `db:"price"`
	Active      bool      `db:"active"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgProduct) ToDomain() *domain.Product {
	return &domain.Product{
		ID:          domain.ProductID(p.ID),
		TenantID:    domain.TenantID(p.TenantID),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p *PgProduct) FromDomain(pr domain.Product) {
	*p = PgProduct{
		ID:          uuid.UUID(pr.ID),
		TenantID:    uuid.UUID(pr.TenantID),
		Name:        pr.Name,
		Description: pr.Description,
		Price:       pr.Price,
		Active:      pr.Active,
	}
}

type PgOrder struct {
	ID               uuid.UUID      `db:"id"`
	TenantID         uuid.UUID      `db:"tenant_id"`
	GalleryID        uuid.UUID      `db:"gallery_id"`
	Number           string         `db:"order_number"`
	CustomerName     string         `db:"customer_name"`
	CustomerEmail    string         `db:"customer_email"`
	CustomerPhone    string         `db:"customer_phone"`
	Subtotal         int64          `db:"subtotal"`
	Discount         int64          `db:"discount"`
	Tax              int64          `db:"tax"`
	Total            int64          `db:"total"`
	Currency         string         `db:"currency"`
	Status           string         `db:"status"`
	AccessToken      string         `db:"access_token"`
	PaymentSessionID sql.NullString `db:"payment_session_id"`
	PaidAt           sql.NullTime   `db:"paid_at"`
	ShippedAt        sql.NullTime   `db:"shipped_at"`
	DeliveredAt      sql.NullTime   `db:"delivered_at"`
	CancelledAt      sql.NullTime   `db:"cancelled_at"`
	RefundedAt       sql.NullTime   `db:"refunded_at"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgOrder) ToDomain() *domain.Order {
	return &domain.Order{
		ID:        domain.OrderID(p.ID),
		TenantID:  domain.TenantID(p.TenantID),
		GalleryID: domain.GalleryID(p.GalleryID),
		Number:    p.Number,
		Customer: domain.Customer{
			Name:  p.CustomerName,
			Email: domain.Email(p.CustomerEmail),
			Phone: p.CustomerPhone,
		},
		Totals: domain.Totals{
			Subtotal: p.Subtotal,
			Discount: p.Discount,
			Tax:      p.Tax,
			Total:    p.Total,
		},
		Currency:         p.Currency,
		Status:           domain.OrderStatus(p.Status),
		AccessToken:      p.AccessToken,
		PaymentSessionID: p.PaymentSessionID.String,
		PaidAt:           p.PaidAt.Time,
		ShippedAt:        p.ShippedAt.Time,
		DeliveredAt:      p.DeliveredAt.Time,
		CancelledAt:      p.CancelledAt.Time,
		RefundedAt:       p.RefundedAt.Time,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (p *PgOrder) FromDomain(o domain.Order) {
	*p = PgOrder{
		ID:               uuid.UUID(o.ID),
		TenantID:         uuid.UUID(o.TenantID),
		GalleryID:        uuid.UUID(o.GalleryID),
		Number:           o.Number,
		CustomerName:     o.Customer.Name,
		CustomerEmail:    string(o.Customer.Email),
		CustomerPhone:    o.Customer.Phone,
		Subtotal:         o.Subtotal,
		Discount:         o.Discount,
		Tax:              o.Tax,
		Total:            o.Total,
		Currency:         o.Currency,
		Status:           string(o.Status),
		AccessToken:      o.AccessToken,
		PaymentSessionID: nullString(o.PaymentSessionID),
		PaidAt:           nullTime(o.PaidAt),
		ShippedAt:        nullTime(o.ShippedAt),
		DeliveredAt:      nullTime(o.DeliveredAt),
		CancelledAt:      nullTime(o.CancelledAt),
		RefundedAt:       nullTime(o.RefundedAt),
	}
}

type PgOrderItem struct {
	ID          uuid.UUID     `db:"id"`
	OrderID     uuid.UUID     `db:"order_id"`
	ProductID   uuid.UUID     `db:"product_id"`
	PhotoID     uuid.NullUUID `db:"photo_id"`
	ProductName string        `db:"product_name"`
	Quantity    int           `db:"quantity"`
	UnitPrice   int64         `db:"unit_price"`
	TotalPrice  int64         `db:"total_price"`
	Position    int           `db:"position"`
}

func (p *PgOrderItem) ToDomain() domain.OrderItem {
	item := domain.OrderItem{
		ID:          domain.OrderItemID(p.ID),
		ProductID:   domain.ProductID(p.ProductID),
		ProductName: p.ProductName,
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
		TotalPrice:  p.TotalPrice,
	}
	if p.PhotoID.Valid {
		id := domain.PhotoID(p.PhotoID.UUID)
		item.PhotoID = &id
	}

	return item
}

func (p *PgOrderItem) FromDomain(orderID domain.OrderID, position int, it domain.OrderItem) {
	*p = PgOrderItem{
		ID:          uuid.UUID(it.ID),
		OrderID:     uuid.UUID(orderID),
		ProductID:   uuid.UUID(it.ProductID),
		ProductName: it.ProductName,
		Quantity:    it.Quantity,
		UnitPrice:   it.UnitPrice,
		TotalPrice:  it.TotalPrice,
		Position:    position,
	}
	if it.PhotoID != nil {
		p.PhotoID = uuid.NullUUID{UUID: uuid.UUID(*it.PhotoID), Valid: true}
	}
}

type PgPayment struct {
	ID                uuid.UUID `db:"id"`
	TenantID          uuid.UUID `db:"tenant_id"`
	OrderID           uuid.UUID `db:"order_id"`
	ProviderPaymentID string    `db:"provider_payment_id"`
	Amount            int64     `db:"amount"`
	Currency          string    `db:"currency"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgPayment) ToDomain() *domain.Payment {
	return &domain.Payment{
		ID:                domain.PaymentID(p.ID),
		TenantID:          domain.TenantID(p.TenantID),
		OrderID:           domain.OrderID(p.OrderID),
		ProviderPaymentID: p.ProviderPaymentID,
		Amount:            p.Amount,
		Currency:          p.Currency,
		CreatedAt:         p.CreatedAt,
	}
}

func (p *PgPayment) FromDomain(pay domain.Payment) {
	*p = PgPayment{
		ID:                uuid.UUID(pay.ID),
		TenantID:          uuid.UUID(pay.TenantID),
		OrderID:           uuid.UUID(pay.OrderID),
		ProviderPaymentID: pay.ProviderPaymentID,
		Amount:            pay.Amount,
		Currency:          pay.Currency,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

// toDomainSlice converts scanned rows with their ToDomain method.
func toDomainSlice[R any, D any](rows []R, conv func(*R) *D) []D {
	out := make([]D, 0, len(rows))
	for i := range rows {
		out = append(out, *conv(&rows[i]))
	}

	return out
}

func uuidStrings[T ~[16]byte](ids []T) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, uuid.UUID(id).String())
	}

	return out
}
