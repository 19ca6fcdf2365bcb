package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DatabaseName() string
	PartsCollection() string
	DSN() string
}

type Parts interface {
	StorageDriver() string
	LegacyCreate() bool
	FixturesPath() string
	Bootstrap() bool
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	PartEventsTopic() string
	ClientID() string
}
