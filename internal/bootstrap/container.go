package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"smt_scheduler/internal/adapter/persistence/repository"
	"smt_scheduler/internal/config"
	"smt_scheduler/internal/infrastructure/database"
	"smt_scheduler/internal/infrastructure/lock"
	"smt_scheduler/internal/infrastructure/logging"
	"smt_scheduler/internal/infrastructure/messaging"
	"smt_scheduler/internal/infrastructure/metrics"
	"smt_scheduler/internal/usecase"
	"smt_scheduler/internal/usecase/interfaces"
)

// Container holds the wired collaborators shared by the API and the CLI.
type Container struct {
	Config   *config.Config
	Log      *logging.Logger
	Metrics  *metrics.Metrics
	Location *time.Location

	WorkOrders interfaces.IWorkOrderRepository
	Lines      interfaces.IProductionLineRepository
	Publisher  interfaces.IScheduleEventPublisher
	RunLock    interfaces.IRunLock

	// Events is the Kafka publisher behind Publisher, kept for health reporting.
	Events *messaging.KafkaSchedulePublisher

	AutoSchedule   *usecase.AutoScheduleUseCase
	ProductionLine *usecase.ProductionLineUseCase
	WorkOrder      *usecase.WorkOrderUseCase

	closers []func() error
}

// New connects the configured store and the optional Kafka and Redis
// integrations. Kafka and Redis are skipped when their address is unset.
func New(ctx context.Context, cfg *config.Config, log *logging.Logger, m *metrics.Metrics) (*Container, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.AutoScheduleOptions()
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, Log: log, Metrics: m, Location: loc}
	if err := c.connectStore(ctx); err != nil {
		c.Close()
		return nil, err
	}

	if cfg.LinesFile != "" {
		lines, err := repository.NewProductionLineFileRepository(cfg.LinesFile)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.Lines = lines
		log.Info("line registry loaded from file", "path", cfg.LinesFile)
	}

	if len(cfg.KafkaBrokers) > 0 {
		kcfg := messaging.DefaultConfig(cfg.KafkaBrokers)
		kcfg.Topic = cfg.KafkaTopic
		pub := messaging.NewKafkaSchedulePublisher(messaging.NewWriter(kcfg), kcfg, log)
		c.Publisher = pub
		c.Events = pub
		c.closers = append(c.closers, pub.Close)
		log.Info("schedule events enabled", "topic", kcfg.Topic)
	}

	if cfg.RedisAddr != "" {
		rdb, err := lock.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.RunLock = lock.NewRedisRunLock(rdb)
		c.closers = append(c.closers, rdb.Close)
		log.Info("distributed run lock enabled", "addr", cfg.RedisAddr)
	}

	options := []usecase.AutoScheduleOption{
		usecase.WithLogger(log),
		usecase.WithMetrics(m),
	}
	if c.Publisher != nil {
		options = append(options, usecase.WithPublisher(c.Publisher))
	}
	if c.RunLock != nil {
		options = append(options, usecase.WithRunLock(c.RunLock))
	}
	c.AutoSchedule = usecase.NewAutoScheduleUseCase(c.WorkOrders, c.Lines, opts, options...)
	c.ProductionLine = usecase.NewProductionLineUseCase(c.Lines, c.WorkOrders)
	c.WorkOrder = usecase.NewWorkOrderUseCase(c.WorkOrders, log)
	return c, nil
}

func (c *Container) connectStore(ctx context.Context) error {
	switch c.Config.StoreBackend {
	case config.StorePostgres:
		db, err := database.OpenPostgres(ctx, c.Config.DatabaseURL)
		if err != nil {
			return err
		}
		c.closers = append(c.closers, db.Close)
		if c.Config.AutoInitDB {
			if err := database.Migrate(ctx, db); err != nil {
				return err
			}
			c.Log.Info("database schema applied")
		}
		c.usePostgres(db)
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBConfig{
			Region:   c.Config.AWSRegion,
			Endpoint: c.Config.DynamoDBEndpoint,
		})
		if err != nil {
			return err
		}
		c.WorkOrders = repository.NewWorkOrderDynamoRepository(ddb)
		c.Lines = repository.NewProductionLineDynamoRepository(ddb)
	default:
		return fmt.Errorf("%w: STORE_BACKEND %q", config.ErrInvalidConfig, c.Config.StoreBackend)
	}
	c.Log.Info("work-order store connected", "backend", c.Config.StoreBackend)
	return nil
}

func (c *Container) usePostgres(db *sql.DB) {
	c.WorkOrders = repository.NewWorkOrderPostgresRepository(db)
	c.Lines = repository.NewProductionLinePostgresRepository(db)
}

// Close releases connections in reverse order of opening.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
