package notify

import "context"

// Linker completes a dequeued message right before delivery, e.g. by minting
// the token of a password reset link.
type Linker interface {
	Link(ctx context.Context, msg Message) (Message, error)
}

type LinkerFunc func(ctx context.Context, msg Message) (Message, error)

func (f LinkerFunc) Link(ctx context.Context, msg Message) (Message, error) { return f(ctx, msg) }

// Linkers routes messages to the Linker of their template. Messages of other
// templates pass through unchanged.
type Linkers map[Template]Linker

func (l Linkers) Link(ctx context.Context, msg Message) (Message, error) {
	linker, ok := l[msg.Template]
	if !ok {
		return msg, nil
	}

	return linker.Link(ctx, msg)
}
