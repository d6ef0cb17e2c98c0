package orders

import (
	"context"
	"fmt"
	"studiohub/pkg/domain"
	"studiohub/pkg/notify"
	"studiohub/pkg/serrors"
	"studiohub/pkg/storage"

	"github.com/google/uuid"
)

type accessLinker struct {
	storage storage.OrderStorage
}

// NewLinker adds the access token of the order to order notifications when
// they are delivered, so the client's order link never sits in the job queue.
func NewLinker(st storage.OrderStorage) notify.Linker {
	return &accessLinker{storage: st}
}

func (l *accessLinker) Link(ctx context.Context, msg notify.Message) (notify.Message, error) {
	switch msg.Template {
	case notify.TemplateOrderConfirmation, notify.TemplateOrderStatusChanged:
	default:
		return msg, nil
	}

	tenantID, err := uuid.Parse(msg.TenantID)
	if err != nil {
		return msg, serrors.Wrap(serrors.ErrBadRequest, err, "malformed tenant reference %q", msg.TenantID)
	}
	orderID, err := uuid.Parse(msg.Ref)
	if err != nil {
		return msg, serrors.Wrap(serrors.ErrBadRequest, err, "malformed order reference %q", msg.Ref)
	}

	order, err := l.storage.OrderByID(ctx, domain.TenantID(tenantID), domain.OrderID(orderID))
	if err != nil {
		return msg, fmt.Errorf("could not fetch order: %w", err)
	}
	if order == nil {
		return msg, domain.ErrOrderNotFound
	}

	return msg.With("accessToken", order.AccessToken), nil
}
