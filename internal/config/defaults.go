package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "delivery_admin",
}

var defaultKafka = Kafka{
	Topic:   "order.created",
	GroupID: "delivery-admin-worker",
}

var defaultMailer = Mailer{
	From:        "noreply@delivery.local",
	MaxAttempts: 4,
	BaseDelay:   200 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       50,
	Burst:      100,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPprof = Pprof{Port: 0}

// DefaultPort returns the default HTTP port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default notification queue settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultMailer returns the default mail gateway settings.
func DefaultMailer() Mailer {
	return defaultMailer
}

// DefaultRateLimit returns the default rate limiter settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultPprof returns the default pprof server settings.
func DefaultPprof() Pprof {
	return defaultPprof
}
