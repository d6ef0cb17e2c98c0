package postgres

import (
	"context"
	"fmt"
	"studiohub/pkg/domain"
	"studiohub/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	ordersTable     = "orders"
	orderItemsTable = "order_items"
	paymentsTable   = "payments"
)

// StoreOrder inserts the order row and then its items. Call it inside WithTx
// so that a failed item insert leaves no order behind.
func (p *PgSQL) StoreOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	var row PgOrder
	row.FromDomain(order)

	var stored PgOrder
	if _, err := p.Builder.Insert(ordersTable).
		Rows(row).
		Returning(&PgOrder{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, wrapError(err, "could not store order into pg")
	}

	out := stored.ToDomain()
	if len(order.Items) == 0 {
		return out, nil
	}

	items := make([]PgOrderItem, len(order.Items))
	for i, it := range order.Items {
		items[i].FromDomain(order.ID, i, it)
	}

	var storedItems []PgOrderItem
	if err := p.Builder.Insert(orderItemsTable).
		Rows(items).
		Returning(&PgOrderItem{}).
		Executor().ScanStructsContext(ctx, &storedItems); err != nil {
		return nil, wrapError(err, "could not store order items into pg")
	}
	out.Items = itemsToDomain(storedItems)

	return out, nil
}

func (p *PgSQL) OrderByID(ctx context.Context, tenantID domain.TenantID, id domain.OrderID) (*domain.Order, error) {
	return p.orderWhere(ctx,
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("tenant_id").Eq(uuid.UUID(tenantID)),
	)
}

func (p *PgSQL) OrderByAccessToken(ctx context.Context, token string) (*domain.Order, error) {
	return p.orderWhere(ctx, goqu.I("access_token").Eq(token))
}

func (p *PgSQL) orderWhere(ctx context.Context, where ...goqu.Expression) (*domain.Order, error) {
	var row PgOrder
	found, err := p.Builder.From(ordersTable).
		Where(where...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch order from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return p.withItems(ctx, row.ToDomain())
}

func (p *PgSQL) withItems(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	var rows []PgOrderItem
	if err := p.Builder.From(orderItemsTable).
		Where(goqu.I("order_id").Eq(uuid.UUID(order.ID))).
		Order(goqu.I("position").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch order items from pg: %w", err)
	}
	order.Items = itemsToDomain(rows)

	return order, nil
}

// UpdateOrderStatus is a compare-and-set on status. Only status, the status
// timestamps and updated_at are written; totals and items never change.
func (p *PgSQL) UpdateOrderStatus(ctx context.Context,
	order domain.Order,
	expected domain.OrderStatus) (*domain.Order, error) {
	var row PgOrder
	row.FromDomain(order)

	var stored PgOrder
	found, err := p.Builder.Update(ordersTable).
		Set(goqu.Record{
			"status":       row.Status,
			"paid_at":      row.PaidAt,
			"shipped_at":   row.ShippedAt,
			"delivered_at": row.DeliveredAt,
			"cancelled_at": row.CancelledAt,
			"refunded_at":  row.RefundedAt,
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(row.ID),
			goqu.I("tenant_id").Eq(row.TenantID),
			goqu.I("status").Eq(string(expected)),
		).
		Returning(&PgOrder{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not update order status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return p.withItems(ctx, stored.ToDomain())
}

func (p *PgSQL) TenantOrders(ctx context.Context,
	tenantID domain.TenantID,
	filter storage.OrderFilter) (storage.TenantOrders, error) {
	w := []goqu.Expression{
		goqu.I("tenant_id").Eq(uuid.UUID(tenantID)),
	}
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}
	if !filter.Cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(filter.Cursor))
	}

	var rows []PgOrder
	if err := p.Builder.From(ordersTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(filter.Limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.TenantOrders{}, fmt.Errorf("could not fetch tenant orders from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > filter.Limit {
		rows = rows[:filter.Limit]
		nextCursor = &rows[len(rows)-1].CreatedAt
	}

	return storage.TenantOrders{
		Orders:     toDomainSlice(rows, (*PgOrder).ToDomain),
		NextCursor: nextCursor,
	}, nil
}

func itemsToDomain(rows []PgOrderItem) []domain.OrderItem {
	out := make([]domain.OrderItem, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
