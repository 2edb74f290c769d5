package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.uber.org/dig"

	"service-delivery-admin/internal/config"
	"service-delivery-admin/internal/gateway/mailer"
	"service-delivery-admin/internal/logx"
	"service-delivery-admin/internal/metrics"
	"service-delivery-admin/internal/service/notifications"
	"service-delivery-admin/internal/transport/kafka"
)

// MustBuildWorkerContainer builds the DI container for the notification worker
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	container, err := buildWorker(ctx)
	if err != nil {
		logFatal("failed to build worker container: %v", err)
	}
	return container
}

var logFatal = log.Fatalf

func buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) (*mailer.Client, error) {
			if cfg.Mailer.BaseURL == "" {
				return nil, fmt.Errorf("MAILER_BASE_URL is required for the worker")
			}
			return mailer.NewClient(cfg.Mailer.BaseURL, 10*time.Second), nil
		},
		func(cfg *config.Config, client *mailer.Client, logger logx.Logger) *mailer.RetryingClient {
			retries := registerCounter(metrics.NewMailerRetriesTotal())
			return mailer.NewRetryingClient(client, logger, retries, mailer.RetryConfig{
				MaxAttempts: cfg.Mailer.MaxAttempts,
				BaseDelay:   cfg.Mailer.BaseDelay,
				MaxDelay:    cfg.Mailer.MaxDelay,
			})
		},
		func(cfg *config.Config, mail *mailer.RetryingClient, logger logx.Logger) *notifications.Processor {
			return notifications.NewProcessor(mail, cfg.Mailer.From, logger)
		},
		makeNotificationsHandler,
		func(cfg *config.Config, logger logx.Logger, h kafka.HandleFunc) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, h)
		},
	)
}
