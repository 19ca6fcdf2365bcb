package mongo

import (
	"context"

	"github.com/docker/docker/api/types/container"
	"go.uber.org/zap"

	"github.com/you-humble/parts-inventory/platform/logger"
	"github.com/you-humble/parts-inventory/platform/testcontainers"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	NetworkName   string
	ContainerName string
	ImageName     string
	Database      string
	Username      string
	Password      string
	AuthDB        string
	Logger        Logger

	// Host and Port are the mapped address reachable from the test process.
	Host string
	Port string
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ContainerName: "parts-" + testcontainers.MongoContainerName,
		ImageName:     "mongo:8.0",
		Database:      "parts-db",
		Username:      "root",
		Password:      "root",
		AuthDB:        "admin",
		Logger:        &logger.NoopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Env returns the variables the parts service config needs to reach this
// container from the test process.
func (c *Config) Env() map[string]string {
	return map[string]string{
		testcontainers.MongoHostKey:     c.Host,
		testcontainers.MongoPortKey:     c.Port,
		testcontainers.MongoDatabaseKey: c.Database,
		testcontainers.MongoUsernameKey: c.Username,
		testcontainers.MongoPasswordKey: c.Password,
		testcontainers.MongoAuthDBKey:   c.AuthDB,
	}
}

func defaultHostConfig() func(hc *container.HostConfig) {
	return func(hc *container.HostConfig) {
		hc.AutoRemove = true
	}
}
