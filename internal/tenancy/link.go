package tenancy

import (
	"context"
	"fmt"
	"studiohub/pkg/domain"
	"studiohub/pkg/notify"
	"studiohub/pkg/serrors"
	"studiohub/pkg/storage"
	"time"

	"github.com/google/uuid"
)

type tokenLinker struct {
	storage storage.UserStorage
	options Options
	now     func() time.Time
}

// NewLinker mints the token of invitation and password reset messages when
// they are delivered. Only its hash is stored; the plaintext exists in the
// outgoing message alone.
func NewLinker(st storage.UserStorage, options Options) notify.Linker {
	return &tokenLinker{storage: st, options: options.withDefaults(), now: time.Now}
}

func (l *tokenLinker) Link(ctx context.Context, msg notify.Message) (notify.Message, error) {
	var ttl time.Duration
	switch msg.Template {
	case notify.TemplateInvitation:
		ttl = l.options.InviteTokenTTL
	case notify.TemplatePasswordReset:
		ttl = l.options.ResetTokenTTL
	default:
		return msg, nil
	}

	id, err := uuid.Parse(msg.Ref)
	if err != nil {
		return msg, serrors.Wrap(serrors.ErrBadRequest, err, "malformed user reference %q", msg.Ref)
	}

	token := randomToken(32)
	if err := l.storage.SetPasswordResetToken(ctx, domain.UserID(id), hashToken(token), l.now().Add(ttl)); err != nil {
		return msg, fmt.Errorf("could not store %s token: %w", msg.Template, err)
	}

	return msg.With("token", token), nil
}
