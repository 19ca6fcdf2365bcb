package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/parts-inventory/internal/config/env"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

var cfg *config

type config struct {
	Server Server
	Logger Logger
	Mongo  Database
	Parts  Parts
	Kafka  Kafka
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	partsCfg, err := envconfig.NewPartsConfig()
	if err != nil {
		return fmt.Errorf("%s Parts: %w", op, err)
	}

	var mongoCfg Database
	switch partsCfg.StorageDriver() {
	case StorageMongo:
		mongoCfg, err = envconfig.NewMongoConfig()
		if err != nil {
			return fmt.Errorf("%s Mongo: %w", op, err)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("%s Parts: unknown storage driver %q", op, partsCfg.StorageDriver())
	}

	kafkaCfg, err := envconfig.NewKafkaConfig()
	if err != nil {
		return fmt.Errorf("%s Kafka: %w", op, err)
	}

	cfg = &config{
		Server: serverCfg,
		Logger: loggerCfg,
		Mongo:  mongoCfg,
		Parts:  partsCfg,
		Kafka:  kafkaCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
