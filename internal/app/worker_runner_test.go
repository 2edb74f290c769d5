package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"service-delivery-admin/internal/logx"
	"service-delivery-admin/internal/service/notifications"
	"service-delivery-admin/internal/transport/kafka"
)

func TestWorkerRunner_MustRun_NoPanicOnNil(t *testing.T) {
	r := &WorkerRunner{runFn: func(*dig.Container) error { return nil }}
	require.NotPanics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRunner_MustRun_NoPanicOnCanceled(t *testing.T) {
	r := &WorkerRunner{runFn: func(*dig.Container) error { return context.Canceled }}
	require.NotPanics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRunner_MustRun_PanicsOnOtherError(t *testing.T) {
	sentinel := errors.New("boom")
	r := &WorkerRunner{runFn: func(*dig.Container) error { return sentinel }}
	require.Panics(t, func() { r.MustRun(dig.New()) })
}

func TestWorkerRun_ReturnsError_WhenConsumerNil(t *testing.T) {
	err := workerRun(context.Background(), logx.Nop(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "kafka consumer is nil")
}

func TestBuildWorker_ProvidesProcessorAndConsumer(t *testing.T) {
	resetConfigEnv(t)
	t.Setenv("MAILER_BASE_URL", "http://mailer.local")

	c, err := buildWorker(context.Background())
	require.NoError(t, err)

	err = c.Invoke(func(p *notifications.Processor, h kafka.HandleFunc, consumer *kafka.Consumer) {
		require.NotNil(t, p)
		require.NotNil(t, h)
		// no brokers configured, so the consumer is disabled
		require.Nil(t, consumer)
	})
	require.NoError(t, err)
}

func TestBuildWorker_FailsWithoutMailerBaseURL(t *testing.T) {
	resetConfigEnv(t)

	c, err := buildWorker(context.Background())
	require.NoError(t, err)

	err = c.Invoke(func(p *notifications.Processor) { _ = p })
	require.Error(t, err)
	require.Contains(t, err.Error(), "MAILER_BASE_URL")
}
