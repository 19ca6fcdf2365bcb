package partproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/parts-inventory/internal/model"
	"github.com/you-humble/parts-inventory/platform/kafka"
)

type Converter interface {
	PartEventToRecord(e model.PartEvent) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewPartProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendPartEvent(ctx context.Context, event model.PartEvent) error {
	payload, err := s.conv.PartEventToRecord(event)
	if err != nil {
		return fmt.Errorf("converter part_event_to_record error: %w", err)
	}

	if err := s.producer.Send(ctx, []byte(event.PartID), payload); err != nil {
		return fmt.Errorf("producer to part events topic error: %w", err)
	}

	return nil
}
