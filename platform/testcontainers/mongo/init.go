package mongo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/docker/go-connections/nat"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	platformtc "github.com/you-humble/parts-inventory/platform/testcontainers"
)

var mongoNatPort = nat.Port(platformtc.MongoPort + "/tcp")

func startMongoContainer(ctx context.Context, cfg *Config) (testcontainers.Container, error) {
	req := testcontainers.ContainerRequest{
		Name:  cfg.ContainerName,
		Image: cfg.ImageName,
		Env: map[string]string{
			platformtc.MongoUsernameKey: cfg.Username,
			platformtc.MongoPasswordKey: cfg.Password,
			"MONGO_INITDB_DATABASE":     cfg.Database,
		},
		ExposedPorts:       []string{string(mongoNatPort)},
		WaitingFor:         wait.ForListeningPort(mongoNatPort).WithStartupTimeout(mongoStartupTimeout),
		HostConfigModifier: defaultHostConfig(),
	}
	if cfg.NetworkName != "" {
		req.Networks = []string{cfg.NetworkName}
		req.NetworkAliases = map[string][]string{
			cfg.NetworkName: {platformtc.MongoContainerName},
		}
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start mongo container")
	}

	return container, nil
}

func getContainerHostPort(ctx context.Context, container testcontainers.Container) (string, string, error) {
	host, err := container.Host(ctx)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to get container host")
	}

	port, err := container.MappedPort(ctx, mongoNatPort)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to get mapped port")
	}

	return host, port.Port(), nil
}

func buildMongoURI(cfg *Config) string {
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%s/%s?authSource=%s",
		url.QueryEscape(cfg.Username),
		url.QueryEscape(cfg.Password),
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.AuthDB,
	)
}
