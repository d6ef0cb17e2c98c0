package domain

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"studiohub/pkg/serrors"
)

// OrderID uniquely identifies an order.
type OrderID uuid.UUID

func (id OrderID) String() string { return uuid.UUID(id).String() }

// OrderItemID uniquely identifies an order line.
type OrderItemID uuid.UUID

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

// orderFlow is the linear fulfilment path.
var orderFlow = []OrderStatus{ //nolint: gochecknoglobals
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
}

func (s OrderStatus) step() int {
	for i, st := range orderFlow {
		if st == s {
			return i
		}
	}

	return -1
}

// Terminal reports whether no transition leaves s. A delivered order can
// still be refunded or cancelled.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCancelled || s == OrderStatusRefunded
}

// ParseOrderStatus validates a status name.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if s.step() >= 0 || s == OrderStatusCancelled || s == OrderStatusRefunded {
		return s, nil
	}

	return "", serrors.With(serrors.ErrBadRequest, "unknown order status %q", raw)
}

// Customer holds the contact details a client enters when ordering.
type Customer struct {
	Name  string `json:"name"`
	Email Email  `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// OrderItem is one line of an order. Prices are copied from the product when
// the order is placed and never follow later product edits.
type OrderItem struct {
	ID          OrderItemID `json:"id"`
	ProductID   ProductID   `json:"productId"`
	PhotoID     *PhotoID    `json:"photoId,omitempty"`
	ProductName string      `json:"productName"`
	Quantity    int         `json:"quantity"`
	UnitPrice   int64       `json:"unitPrice"`
	TotalPrice  int64       `json:"totalPrice"`
}

// Totals are the money amounts of an order in minor units.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// MaxQuantity caps the quantity of one order line.
const MaxQuantity = 10000

// ComputeTotals sums item totals and applies discount and tax:
// Total = Subtotal - Discount + Tax. Amounts that do not fit in an int64
// are rejected with ErrAmountOverflow.
func ComputeTotals(items []OrderItem, discount, tax int64) (Totals, error) {
	var subtotal int64
	for _, it := range items {
		var ok bool
		if subtotal, ok = addAmount(subtotal, it.TotalPrice); !ok {
			return Totals{}, ErrAmountOverflow
		}
	}

	net, ok := subAmount(subtotal, discount)
	if !ok {
		return Totals{}, ErrAmountOverflow
	}
	total, ok := addAmount(net, tax)
	if !ok {
		return Totals{}, ErrAmountOverflow
	}

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    total,
	}, nil
}

func addAmount(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}

	return sum, true
}

func subAmount(a, b int64) (int64, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}

	return diff, true
}

func mulAmount(price int64, quantity int) (int64, bool) {
	q := int64(quantity)
	if price != 0 && q > math.MaxInt64/price {
		return 0, false
	}

	return price * q, true
}

// OrderLine is a requested quantity of a product, optionally for one photo.
type OrderLine struct {
	Product  Product
	PhotoID  *PhotoID
	Quantity int
}

// PriceLines snapshots product prices into order items.
func PriceLines(lines []OrderLine) ([]OrderItem, error) {
	if len(lines) == 0 {
		return nil, ErrNoOrderItems
	}

	items := make([]OrderItem, 0, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 || l.Quantity > MaxQuantity {
			return nil, ErrQuantityInvalid
		}
		if l.Product.Price < 0 {
			return nil, ErrNegativePrice
		}
		total, ok := mulAmount(l.Product.Price, l.Quantity)
		if !ok {
			return nil, ErrAmountOverflow
		}

		items = append(items, OrderItem{
			ID:          OrderItemID(uuid.New()),
			ProductID:   l.Product.ID,
			PhotoID:     l.PhotoID,
			ProductName: l.Product.Name,
			Quantity:    l.Quantity,
			UnitPrice:   l.Product.Price,
			TotalPrice:  total,
		})
	}

	return items, nil
}

// Order is a client's purchase against a published gallery.
type Order struct {
	ID        OrderID   `json:"id"`
	TenantID  TenantID  `json:"tenantId"`
	GalleryID GalleryID `json:"galleryId"`

	Number   string      `json:"orderNumber"`
	Customer Customer    `json:"customer"`
	Items    []OrderItem `json:"items"`
	Totals
	Currency string      `json:"currency"`
	Status   OrderStatus `json:"status"`

	// AccessToken lets the client look the order up without an account.
	AccessToken string `json:"-"`
	// PaymentSessionID is the checkout session the payment provider reports back.
	PaymentSessionID string `json:"-"`

	PaidAt      time.Time `json:"paidAt,omitempty"`
	ShippedAt   time.Time `json:"shippedAt,omitempty"`
	DeliveredAt time.Time `json:"deliveredAt,omitempty"`
	CancelledAt time.Time `json:"cancelledAt,omitempty"`
	RefundedAt  time.Time `json:"refundedAt,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OrderEventType names an order lifecycle event.
type OrderEventType string

const (
	OrderPlaced        OrderEventType = "order.placed"
	OrderStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent is returned by order transitions.
type OrderEvent struct {
	Type     OrderEventType
	OrderID  OrderID
	TenantID TenantID
	From     OrderStatus
	To       OrderStatus
	At       time.Time
}

// NewOrder prices lines and builds a pending order with a fresh number and
// access token. Discount and tax are zero.
func NewOrder(tenantID TenantID,
	galleryID GalleryID,
	customer Customer,
	currency string,
	lines []OrderLine,
	now time.Time) (Order, OrderEvent, error) {
	if strings.TrimSpace(customer.Name) == "" {
		return Order{}, OrderEvent{}, serrors.With(serrors.ErrBadRequest, "customer name is required")
	}

	items, err := PriceLines(lines)
	if err != nil {
		return Order{}, OrderEvent{}, err
	}

	totals, err := ComputeTotals(items, 0, 0)
	if err != nil {
		return Order{}, OrderEvent{}, err
	}

	o := Order{
		ID:          OrderID(uuid.New()),
		TenantID:    tenantID,
		GalleryID:   galleryID,
		Number:      GenerateOrderNumber(now),
		Customer:    customer,
		Items:       items,
		Totals:      totals,
		Currency:    currency,
		Status:      OrderStatusPending,
		AccessToken: GenerateAccessToken(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return o, OrderEvent{
		Type:     OrderPlaced,
		OrderID:  o.ID,
		TenantID: tenantID,
		To:       OrderStatusPending,
		At:       now,
	}, nil
}

// Renumber returns o with a new order number, used after a number collision.
func (o Order) Renumber(now time.Time) Order {
	o.Number = GenerateOrderNumber(now)

	return o
}

// Transition moves o to status to. The fulfilment path is strictly linear;
// cancelled and refunded can be reached from any non-terminal status.
// Re-entering the current status returns o unchanged with a nil event, and
// every status timestamp is written only the first time it is reached.
func (o Order) Transition(to OrderStatus, now time.Time) (Order, *OrderEvent, error) {
	if to == o.Status {
		return o, nil, nil
	}
	if o.Status.Terminal() {
		return o, nil, fmt.Errorf("%w: order is %s", ErrInvalidTransition, o.Status)
	}

	switch to {
	case OrderStatusCancelled, OrderStatusRefunded:
	default:
		from, next := o.Status.step(), to.step()
		if from < 0 || next != from+1 {
			return o, nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
		}
	}

	from := o.Status
	o.Status = to
	o.UpdatedAt = now
	setOnce := func(ts *time.Time) {
		if ts.IsZero() {
			*ts = now
		}
	}
	switch to {
	case OrderStatusConfirmed:
		setOnce(&o.PaidAt)
	case OrderStatusShipped:
		setOnce(&o.ShippedAt)
	case OrderStatusDelivered:
		setOnce(&o.DeliveredAt)
	case OrderStatusCancelled:
		setOnce(&o.CancelledAt)
	case OrderStatusRefunded:
		setOnce(&o.RefundedAt)
	}

	return o, &OrderEvent{
		Type:     OrderStatusChanged,
		OrderID:  o.ID,
		TenantID: o.TenantID,
		From:     from,
		To:       to,
		At:       now,
	}, nil
}

// GenerateOrderNumber builds a human readable number from the creation time
// and a random suffix, e.g. "ORD-M1ZQ3K8P-7F2K". Uniqueness is enforced by
// storage.
func GenerateOrderNumber(now time.Time) string {
	return "ORD-" + strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)) + "-" + randomString(4)
}

const accessTokenBytes = 32

// GenerateAccessToken returns an opaque 64 character hex token.
func GenerateAccessToken() string {
	b := make([]byte, accessTokenBytes)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}

	return hex.EncodeToString(b)
}

// ValidAccessToken reports whether s has the shape of a generated token.
func ValidAccessToken(s string) bool {
	if len(s) != accessTokenBytes*2 {
		return false
	}
	_, err := hex.DecodeString(s)

	return err == nil
}
