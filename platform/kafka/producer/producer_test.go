package producer

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/parts-inventory/platform/logger"
)

func TestProducerSend(t *testing.T) {
	t.Parallel()

	sp := mocks.NewSyncProducer(t, Config("test"))
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"ok":true}` {
			return errors.New("unexpected payload")
		}
		return nil
	})
	t.Cleanup(func() { _ = sp.Close() })

	p := NewProducer(sp, "parts.events", &logger.NoopLogger{})
	require.NoError(t, p.Send(context.Background(), []byte("key"), []byte(`{"ok":true}`)))
}

func TestProducerSendError(t *testing.T) {
	t.Parallel()

	sp := mocks.NewSyncProducer(t, Config("test"))
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	t.Cleanup(func() { _ = sp.Close() })

	p := NewProducer(sp, "parts.events", &logger.NoopLogger{})
	err := p.Send(context.Background(), []byte("key"), []byte("value"))
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}
