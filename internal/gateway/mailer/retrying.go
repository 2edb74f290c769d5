package mailer

import (
	"context"
	"errors"
	"net/http"
	"time"

	"service-delivery-admin/internal/logx"
)

type sender interface {
	Send(ctx context.Context, msg Message) error
}

type counter interface {
	Inc()
}

// RetryConfig describes the retry behavior of RetryingClient.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingClient wraps a sender and retries transient delivery failures
// with exponential backoff.
type RetryingClient struct {
	next    sender
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingClient checks that next is not nil and returns a RetryingClient.
func NewRetryingClient(next sender, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingClient {
	if next == nil {
		return nil
	}
	return &RetryingClient{next: next, logger: logger, retries: retries, cfg: cfg}
}

// Send delivers a message, retrying when the failure is transient.
func (c *RetryingClient) Send(ctx context.Context, msg Message) error {
	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		err := c.next.Send(ctx, msg)
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == c.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(c.cfg.BaseDelay, c.cfg.MaxDelay, attempt)
		if c.retries != nil {
			c.retries.Inc()
		}
		c.logger.Warn("mailer retry",
			logx.String("to", msg.To),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return lastErr
}

// isRetryable treats transport failures and throttling or upstream
// unavailability statuses as transient.
func isRetryable(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return true
	}
	switch se.Code {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
