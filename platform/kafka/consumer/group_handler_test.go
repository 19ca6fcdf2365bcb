package consumer

import (
	"context"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"

	"github.com/you-humble/parts-inventory/platform/kafka"
	"github.com/you-humble/parts-inventory/platform/logger"
)

func TestNewGroupHandlerAppliesMiddlewaresInOrder(t *testing.T) {
	t.Parallel()

	var trace []string
	mw := func(name string) kafka.Middleware {
		return func(next kafka.MessageHandler) kafka.MessageHandler {
			return func(ctx context.Context, msg kafka.Message) error {
				trace = append(trace, name)
				return next(ctx, msg)
			}
		}
	}

	gh := NewGroupHandler(func(context.Context, kafka.Message) error {
		trace = append(trace, "handler")
		return nil
	}, logger.NoopLogger{}, mw("first"), mw("second"))

	assert.NoError(t, gh.handler(context.Background(), kafka.Message{}))
	assert.Equal(t, []string{"first", "second", "handler"}, trace)
}

func TestToMessage(t *testing.T) {
	t.Parallel()

	msg := toMessage(&sarama.ConsumerMessage{
		Key:       []byte("id"),
		Value:     []byte("{}"),
		Topic:     "parts.events",
		Partition: 2,
		Offset:    7,
		Headers: []*sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte("part.created")},
			nil,
			{Key: nil, Value: []byte("dropped")},
		},
	})

	assert.Equal(t, "parts.events", msg.Topic)
	assert.Equal(t, int32(2), msg.Partition)
	assert.Equal(t, int64(7), msg.Offset)
	assert.Equal(t, map[string][]byte{"type": []byte("part.created")}, msg.Headers)
}
