package converter

import (
	"encoding/json"
	"fmt"

	"github.com/you-humble/parts-inventory/internal/model"
	partsv1 "github.com/you-humble/parts-inventory/pkg/api/parts/v1"
)

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) PartEventToRecord(e model.PartEvent) ([]byte, error) {
	payload, err := json.Marshal(partsv1.PartEventRecord{
		EventID:    e.EventID.String(),
		Type:       string(e.Type),
		PartID:     e.PartID,
		OccurredAt: e.OccurredAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal part event: %w", err)
	}

	return payload, nil
}
