package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"service-delivery-admin/internal/config"
	"service-delivery-admin/internal/http/handlers"
	"service-delivery-admin/internal/http/router"
	"service-delivery-admin/internal/logx"
	"service-delivery-admin/internal/metrics"
	"service-delivery-admin/internal/repository"
	"service-delivery-admin/internal/service/deliveryman"
	"service-delivery-admin/internal/service/order"
	"service-delivery-admin/internal/service/recipient"
	"service-delivery-admin/internal/transport/kafka"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		func() *log.Logger { return log.Default() },
		config.Load,
		NewLogger,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewDeliverymanRepo,
		repository.NewRecipientRepo,
		repository.NewOrderRepo,
		func() time.Duration { return 3 * time.Second },
		func(repo *repository.DeliverymanRepo, timeout time.Duration) *deliveryman.Service {
			return deliveryman.NewService(repo, timeout)
		},
		func(repo *repository.RecipientRepo, timeout time.Duration) *recipient.Service {
			return recipient.NewService(repo, timeout)
		},
		func(cfg *config.Config) (*kafka.Producer, error) {
			published := registerCounter(metrics.NewNotificationsPublishedTotal())
			return kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, published)
		},
		func(
			repo *repository.OrderRepo,
			deliverymen *repository.DeliverymanRepo,
			recipients *repository.RecipientRepo,
			producer *kafka.Producer,
			logger logx.Logger,
			timeout time.Duration,
		) *order.Service {
			return order.NewService(repo, deliverymen, recipients, producer, logger, timeout)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewDeliverymanUsecase,
		handlers.NewDeliverymanHandler,
		handlers.NewRecipientUsecase,
		handlers.NewRecipientHandler,
		handlers.NewOrderUsecase,
		handlers.NewOrderHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitCounter,
		newRateLimitMiddleware,
		router.New,
		serverProvider,
	)
}
