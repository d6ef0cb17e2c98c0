package postgres_test

import (
	"context"
	"studiohub/pkg/domain"
	"studiohub/pkg/storage"
	"studiohub/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, pg *postgres.PgSQL) (domain.Tenant, domain.Order) {
	t.Helper()
	ctx := context.Background()

	tenant := seedTenant(t, pg)
	g := seedGallery(t, pg, tenant)

	var products []domain.Product
	for _, item := range []struct {
		name  string
		price int64
	}{{"8x10 print", 500}, {"Canvas", 1000}} {
		p, err := domain.NewProduct(tenant.ID, item.name, "", item.price, time.Now())
		require.NoError(t, err)
		stored, err := pg.StoreProduct(ctx, p)
		require.NoError(t, err)
		products = append(products, *stored)
	}

	order, _, err := domain.NewOrder(tenant.ID, g.ID, domain.Customer{Name: "Jane", Email: "jane@example.com"},
		tenant.Currency, []domain.OrderLine{
			{Product: products[0], Quantity: 2},
			{Product: products[1], Quantity: 1},
		}, time.Now())
	require.NoError(t, err)

	var stored *domain.Order
	require.NoError(t, pg.WithTx(ctx, func(s storage.AllStorage) error {
		var err error
		stored, err = s.StoreOrder(ctx, order)

		return err
	}))

	return tenant, *stored
}

func TestPgSQL_Orders(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	tenant, order := seedOrder(t, pg)

	t.Run("stored with items and totals", func(t *testing.T) {
		require.EqualValues(t, 2000, order.Total)
		require.Len(t, order.Items, 2)
		require.Equal(t, "8x10 print", order.Items[0].ProductName)

		got, err := pg.OrderByID(ctx, tenant.ID, order.ID)
		require.NoError(t, err)
		require.Equal(t, order.Number, got.Number)
		require.Len(t, got.Items, 2)
		require.EqualValues(t, 1000, got.Items[0].TotalPrice)

		byToken, err := pg.OrderByAccessToken(ctx, order.AccessToken)
		require.NoError(t, err)
		require.Equal(t, order.ID, byToken.ID)

		foreign, err := pg.OrderByID(ctx, domain.TenantID(uuid.New()), order.ID)
		require.NoError(t, err)
		require.Nil(t, foreign)
	})

	t.Run("order number is unique", func(t *testing.T) {
		dup := order
		dup.ID = domain.OrderID(uuid.New())
		dup.AccessToken = domain.GenerateAccessToken()
		dup.Items = nil
		_, err := pg.StoreOrder(ctx, dup)
		require.ErrorIs(t, err, storage.ErrUniqueViolation)
	})

	t.Run("status update is a compare and set", func(t *testing.T) {
		confirmed, _, err := order.Transition(domain.OrderStatusConfirmed, time.Now())
		require.NoError(t, err)

		updated, err := pg.UpdateOrderStatus(ctx, confirmed, domain.OrderStatusPending)
		require.NoError(t, err)
		require.Equal(t, domain.OrderStatusConfirmed, updated.Status)
		require.False(t, updated.PaidAt.IsZero())
		require.Len(t, updated.Items, 2)

		again, err := pg.UpdateOrderStatus(ctx, confirmed, domain.OrderStatusPending)
		require.NoError(t, err)
		require.Nil(t, again, "precondition no longer holds")
	})

	t.Run("list", func(t *testing.T) {
		page, err := pg.TenantOrders(ctx, tenant.ID, storage.OrderFilter{Limit: 10})
		require.NoError(t, err)
		require.Len(t, page.Orders, 1)
		require.Nil(t, page.NextCursor)

		pending, err := pg.TenantOrders(ctx, tenant.ID, storage.OrderFilter{Limit: 10, Status: domain.OrderStatusPending})
		require.NoError(t, err)
		require.Empty(t, pending.Orders)
	})
}

func TestPgSQL_Payments(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	tenant, order := seedOrder(t, pg)
	n := domain.PaymentNotification{
		ProviderPaymentID: "pi_123",
		TenantID:          tenant.ID,
		OrderID:           order.ID,
		Amount:            order.Total,
		Currency:          order.Currency,
	}

	missing, err := pg.PaymentByProviderID(ctx, n.ProviderPaymentID)
	require.NoError(t, err)
	require.Nil(t, missing)

	_, err = pg.StorePayment(ctx, domain.NewPayment(n, time.Now()))
	require.NoError(t, err)

	_, err = pg.StorePayment(ctx, domain.NewPayment(n, time.Now()))
	require.ErrorIs(t, err, storage.ErrUniqueViolation)

	got, err := pg.PaymentByProviderID(ctx, n.ProviderPaymentID)
	require.NoError(t, err)
	require.Equal(t, order.ID, got.OrderID)
}

func TestPgSQL_Products(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	tenant := seedTenant(t, pg)
	other := seedTenant(t, pg)

	active, err := domain.NewProduct(tenant.ID, "Album", "", 9900, time.Now())
	require.NoError(t, err)
	inactive, err := domain.NewProduct(tenant.ID, "Retired", "", 100, time.Now())
	require.NoError(t, err)
	inactive.Active = false
	for _, p := range []domain.Product{active, inactive} {
		_, err := pg.StoreProduct(ctx, p)
		require.NoError(t, err)
	}

	all, err := pg.TenantProducts(ctx, tenant.ID, false)
	require.NoError(t, err)
	require.Len(t, all, 2)

	onlyActive, err := pg.TenantProducts(ctx, tenant.ID, true)
	require.NoError(t, err)
	require.Len(t, onlyActive, 1)

	byIDs, err := pg.ProductsByIDs(ctx, other.ID, []domain.ProductID{active.ID})
	require.NoError(t, err)
	require.Empty(t, byIDs, "products never leak across tenants")
}
