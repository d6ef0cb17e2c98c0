package domain_test

import (
	"math"
	"studiohub/pkg/domain"
	"studiohub/pkg/serrors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func product(t *testing.T, name string, price int64) domain.Product {
	t.Helper()

	p, err := domain.NewProduct(domain.TenantID(uuid.New()), name, "", price, time.Now())
	require.NoError(t, err)

	return p
}

func customer() domain.Customer {
	return domain.Customer{Name: "Jane Client", Email: "jane@example.com"}
}

func TestNewOrder_TwoItems(t *testing.T) {
	a := product(t, "8x10 print", 500)
	b := product(t, "Canvas", 1000)

	o, ev, err := domain.NewOrder(a.TenantID, domain.GalleryID(uuid.New()), customer(), "usd", []domain.OrderLine{
		{Product: a, Quantity: 2},
		{Product: b, Quantity: 1},
	}, time.Now())
	require.NoError(t, err)
	require.Equal(t, domain.OrderPlaced, ev.Type)

	require.EqualValues(t, 2000, o.Subtotal)
	require.EqualValues(t, 2000, o.Total)
	require.Equal(t, domain.OrderStatusPending, o.Status)
	require.Regexp(t, `^ORD-[A-Z0-9]+-[A-Z0-9]{4}$`, o.Number)
	require.True(t, domain.ValidAccessToken(o.AccessToken))

	require.Len(t, o.Items, 2)
	require.EqualValues(t, 500, o.Items[0].UnitPrice)
	require.EqualValues(t, 1000, o.Items[0].TotalPrice)
	require.Equal(t, "Canvas", o.Items[1].ProductName)
}

func TestPriceLines_SnapshotsPrice(t *testing.T) {
	p := product(t, "Print", 700)
	items, err := domain.PriceLines([]domain.OrderLine{{Product: p, Quantity: 3}})
	require.NoError(t, err)

	p.Price = 9999
	require.EqualValues(t, 700, items[0].UnitPrice)
	require.EqualValues(t, 2100, items[0].TotalPrice)
}

func TestPriceLines_Validation(t *testing.T) {
	p := product(t, "Print", 700)

	_, err := domain.PriceLines(nil)
	require.ErrorIs(t, err, domain.ErrNoOrderItems)

	_, err = domain.PriceLines([]domain.OrderLine{{Product: p, Quantity: 0}})
	require.ErrorIs(t, err, domain.ErrQuantityInvalid)

	_, err = domain.PriceLines([]domain.OrderLine{{Product: p, Quantity: domain.MaxQuantity + 1}})
	require.ErrorIs(t, err, domain.ErrQuantityInvalid)

	_, err = domain.PriceLines([]domain.OrderLine{{Product: p, Quantity: 1 << 54}})
	require.ErrorIs(t, err, domain.ErrQuantityInvalid)

	p.Price = -1
	_, err = domain.PriceLines([]domain.OrderLine{{Product: p, Quantity: 1}})
	require.ErrorIs(t, err, domain.ErrNegativePrice)
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(err))
}

func TestPriceLines_Overflow(t *testing.T) {
	p := product(t, "Mural", math.MaxInt64/2)

	items, err := domain.PriceLines([]domain.OrderLine{{Product: p, Quantity: 2}})
	require.NoError(t, err)
	require.EqualValues(t, math.MaxInt64-1, items[0].TotalPrice)

	_, err = domain.PriceLines([]domain.OrderLine{{Product: p, Quantity: 3}})
	require.ErrorIs(t, err, domain.ErrAmountOverflow)
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(err))

	_, _, err = domain.NewOrder(domain.TenantID(uuid.New()), domain.GalleryID(uuid.New()),
		customer(), "usd",
		[]domain.OrderLine{{Product: p, Quantity: 1}, {Product: p, Quantity: 1}, {Product: p, Quantity: 1}},
		time.Now())
	require.ErrorIs(t, err, domain.ErrAmountOverflow)
}

func TestComputeTotals(t *testing.T) {
	cases := []struct {
		items    []int64
		discount int64
		tax      int64
		total    int64
	}{
		{items: nil, total: 0},
		{items: []int64{1000, 1000}, total: 2000},
		{items: []int64{1999, 1}, discount: 500, tax: 120, total: 1620},
		{items: []int64{3}, discount: 1, tax: 1, total: 3},
	}

	for _, tc := range cases {
		items := make([]domain.OrderItem, 0, len(tc.items))
		var sum int64
		for _, v := range tc.items {
			items = append(items, domain.OrderItem{TotalPrice: v})
			sum += v
		}

		totals, err := domain.ComputeTotals(items, tc.discount, tc.tax)
		require.NoError(t, err)
		require.Equal(t, sum, totals.Subtotal)
		require.Equal(t, tc.total, totals.Total)
		require.Equal(t, totals.Subtotal-totals.Discount+totals.Tax, totals.Total)
	}
}

func TestComputeTotals_Overflow(t *testing.T) {
	cases := map[string]struct {
		items    []int64
		discount int64
		tax      int64
	}{
		"subtotal":         {items: []int64{math.MaxInt64, 1}},
		"tax":              {items: []int64{math.MaxInt64 - 10}, tax: 11},
		"minimum discount": {items: []int64{0}, discount: math.MinInt64},
		"negative total":   {items: []int64{0}, discount: 1, tax: math.MinInt64},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			items := make([]domain.OrderItem, 0, len(tc.items))
			for _, v := range tc.items {
				items = append(items, domain.OrderItem{TotalPrice: v})
			}

			_, err := domain.ComputeTotals(items, tc.discount, tc.tax)
			require.ErrorIs(t, err, domain.ErrAmountOverflow)
		})
	}
}

func TestNewProduct_RejectsNegativePrice(t *testing.T) {
	_, err := domain.NewProduct(domain.TenantID(uuid.New()), "Print", "", -5, time.Now())
	require.ErrorIs(t, err, domain.ErrNegativePrice)
}

func TestOrderTransitions(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	o := domain.Order{ID: domain.OrderID(uuid.New()), Status: domain.OrderStatusPending, CreatedAt: start}

	steps := []domain.OrderStatus{
		domain.OrderStatusConfirmed,
		domain.OrderStatusProcessing,
		domain.OrderStatusShipped,
		domain.OrderStatusDelivered,
	}
	for i, to := range steps {
		next, ev, err := o.Transition(to, start.Add(time.Duration(i+1)*time.Hour))
		require.NoError(t, err, to)
		require.NotNil(t, ev)
		require.Equal(t, o.Status, ev.From)
		require.Equal(t, to, ev.To)
		o = next
	}
	require.Equal(t, start.Add(time.Hour), o.PaidAt)
	require.Equal(t, start.Add(3*time.Hour), o.ShippedAt)
	require.Equal(t, start.Add(4*time.Hour), o.DeliveredAt)

	again, ev, err := o.Transition(domain.OrderStatusDelivered, start.Add(48*time.Hour))
	require.NoError(t, err)
	require.Nil(t, ev)
	require.Equal(t, o.DeliveredAt, again.DeliveredAt)

	refunded, ev, err := o.Transition(domain.OrderStatusRefunded, start.Add(72*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, ev)
	require.Equal(t, start.Add(72*time.Hour), refunded.RefundedAt)

	_, _, err = refunded.Transition(domain.OrderStatusCancelled, start.Add(80*time.Hour))
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOrderTransitions_Rejected(t *testing.T) {
	now := time.Now()
	pending := domain.Order{Status: domain.OrderStatusPending}

	_, _, err := pending.Transition(domain.OrderStatusShipped, now)
	require.ErrorIs(t, err, domain.ErrInvalidTransition, "skipping is not allowed")

	processing := domain.Order{Status: domain.OrderStatusProcessing}
	_, _, err = processing.Transition(domain.OrderStatusConfirmed, now)
	require.ErrorIs(t, err, domain.ErrInvalidTransition, "moving backwards is not allowed")

	cancelled, _, err := pending.Transition(domain.OrderStatusCancelled, now)
	require.NoError(t, err)
	_, _, err = cancelled.Transition(domain.OrderStatusConfirmed, now)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOrderTransition_PaidAtSetOnce(t *testing.T) {
	first := time.Now()
	o := domain.Order{Status: domain.OrderStatusPending}

	confirmed, _, err := o.Transition(domain.OrderStatusConfirmed, first)
	require.NoError(t, err)

	replayed, ev, err := confirmed.Transition(domain.OrderStatusConfirmed, first.Add(time.Hour))
	require.NoError(t, err)
	require.Nil(t, ev)
	require.Equal(t, first, replayed.PaidAt)
	require.Equal(t, confirmed, replayed)
}

func TestParseOrderStatus(t *testing.T) {
	s, err := domain.ParseOrderStatus("Shipped")
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusShipped, s)

	_, err = domain.ParseOrderStatus("lost")
	require.Error(t, err)
}

func TestPaymentNotificationMatches(t *testing.T) {
	o := domain.Order{Totals: domain.Totals{Total: 2000}, Currency: "usd", PaymentSessionID: "cs_1"}

	require.True(t, domain.PaymentNotification{SessionID: "cs_1", Amount: 2000, Currency: "usd"}.Matches(o))
	require.False(t, domain.PaymentNotification{SessionID: "cs_2", Amount: 2000, Currency: "usd"}.Matches(o))
	require.False(t, domain.PaymentNotification{SessionID: "cs_1", Amount: 1999, Currency: "usd"}.Matches(o))
	require.False(t, domain.PaymentNotification{SessionID: "cs_1", Amount: 2000, Currency: "eur"}.Matches(o))

	o.PaymentSessionID = ""
	require.True(t, domain.PaymentNotification{SessionID: "anything", Amount: 2000, Currency: "usd"}.Matches(o))
}
