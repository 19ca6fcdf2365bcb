package envconfig

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Enabled             bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers             []string `env:"KAFKA_BROKERS" envSeparator:","`
	PartEventsTopicName string   `env:"PART_EVENTS_TOPIC_NAME" envDefault:"parts.events"`
	ClientID            string   `env:"KAFKA_CLIENT_ID" envDefault:"parts-inventory"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	if raw.Enabled && len(raw.Brokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is true")
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Enabled() bool           { return cfg.raw.Enabled }
func (cfg *kafka) Brokers() []string       { return cfg.raw.Brokers }
func (cfg *kafka) PartEventsTopic() string { return cfg.raw.PartEventsTopicName }
func (cfg *kafka) ClientID() string        { return cfg.raw.ClientID }
