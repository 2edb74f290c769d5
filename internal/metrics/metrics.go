package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewMailerRetriesTotal returns a Prometheus counter for the number of retry attempts performed by the mail gateway
func NewMailerRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mailer_retries_total",
		Help: "Total number of retry attempts performed by the mail gateway",
	})
}

// NewNotificationsPublishedTotal returns a Prometheus counter for the number of order events published to the queue
func NewNotificationsPublishedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notifications_published_total",
		Help: "Total number of order events published to the notification queue",
	})
}
