package kafka

import (
	"context"
)

type (
	// Middleware wraps a handler; consumer.NewGroupHandler applies them
	// outermost first.
	Middleware func(next MessageHandler) MessageHandler
	// MessageHandler processes one record. A non-nil error leaves the
	// record unmarked.
	MessageHandler func(ctx context.Context, msg Message) error
)

// Consumer reads records until ctx is done.
type Consumer interface {
	Consume(ctx context.Context, handler MessageHandler) error
}

// Producer publishes one record to the topic it was built for. Part events
// use the part id as key so events of one part stay ordered.
type Producer interface {
	Send(ctx context.Context, key, value []byte) error
}
