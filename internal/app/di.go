package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/you-humble/parts-inventory/internal/config"
	"github.com/you-humble/parts-inventory/internal/converter"
	"github.com/you-humble/parts-inventory/internal/model"
	repository "github.com/you-humble/parts-inventory/internal/repository/part"
	"github.com/you-humble/parts-inventory/internal/repository/part/memory"
	service "github.com/you-humble/parts-inventory/internal/service/part"
	partproducer "github.com/you-humble/parts-inventory/internal/service/producer/part"
	thttp "github.com/you-humble/parts-inventory/internal/transport/http/part/v1"
	"github.com/you-humble/parts-inventory/platform/closer"
	"github.com/you-humble/parts-inventory/platform/kafka"
	"github.com/you-humble/parts-inventory/platform/kafka/producer"
	"github.com/you-humble/parts-inventory/platform/logger"
)

type PartRepository interface {
	service.PartRepository
	repository.BatchCreator
}

type Converter interface {
	PartEventToRecord(e model.PartEvent) ([]byte, error)
}

type PartHandler interface {
	Register(r chi.Router)
}

type di struct {
	mongo      *mongo.Client
	collection *mongo.Collection
	repository PartRepository

	conv               Converter
	syncProducer       sarama.SyncProducer
	partEventsProducer kafka.Producer
	partProducer       service.PartEventSender

	service thttp.InventoryService
	handler PartHandler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) PartsCollection(ctx context.Context) *mongo.Collection {
	if d.collection == nil {
		d.collection = d.MongoDB(ctx).
			Database(config.C().Mongo.DatabaseName()).
			Collection(config.C().Mongo.PartsCollection())

		if err := repository.EnsureIndexes(ctx, d.collection); err != nil {
			panic(fmt.Sprintf("failed to ensure indexes: %v\n", err))
		}
	}

	return d.collection
}

func (d *di) PartsRepository(ctx context.Context) PartRepository {
	if d.repository == nil {
		switch config.C().Parts.StorageDriver() {
		case config.StorageMemory:
			logger.Info(ctx, "⚠️ using in-memory parts storage")
			d.repository = memory.NewPartRepository()
		default:
			d.repository = repository.NewPartRepository(d.PartsCollection(ctx))
		}
	}

	return d.repository
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			producer.Config(cfg.Kafka.ClientID()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) PartEventsProducer(ctx context.Context) kafka.Producer {
	if d.partEventsProducer == nil {
		d.partEventsProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.PartEventsTopic(),
			logger.L(),
		)
	}

	return d.partEventsProducer
}

// PartProducer returns nil when Kafka is disabled; the service then skips
// publishing.
func (d *di) PartProducer(ctx context.Context) service.PartEventSender {
	if !config.C().Kafka.Enabled() {
		return nil
	}

	if d.partProducer == nil {
		d.partProducer = partproducer.NewPartProducer(
			d.PartEventsProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.partProducer
}

func (d *di) InventoryService(ctx context.Context) thttp.InventoryService {
	if d.service == nil {
		d.service = service.NewInventoryService(
			d.PartsRepository(ctx),
			d.PartProducer(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.service
}

func (d *di) PartHandler(ctx context.Context) PartHandler {
	if d.handler == nil {
		d.handler = thttp.NewPartHandler(
			d.InventoryService(ctx),
			thttp.WithLegacyCreate(config.C().Parts.LegacyCreate()),
		)
	}

	return d.handler
}

func (d *di) Router(ctx context.Context) *chi.Mux {
	if d.router == nil {
		d.router = NewRouter(d.PartHandler(ctx))
	}

	return d.router
}
