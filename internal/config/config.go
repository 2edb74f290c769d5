package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a pgx-compatible connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(d.User), url.QueryEscape(d.Pass), d.Host, d.Port, d.Name)
}

// Kafka stores notification queue settings. Empty brokers disable the queue.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Mailer stores outbound mail gateway settings.
type Mailer struct {
	BaseURL     string
	From        string
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RateLimit stores HTTP rate limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores the pprof side server settings. Port 0 disables it.
type Pprof struct {
	Port int
	User string
	Pass string
}

// Config stores all service settings.
type Config struct {
	Port      int
	DB        DB
	Kafka     Kafka
	Mailer    Mailer
	RateLimit RateLimit
	Pprof     Pprof
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		DB:        DefaultDB(),
		Kafka:     DefaultKafka(),
		Mailer:    DefaultMailer(),
		RateLimit: DefaultRateLimit(),
		Pprof:     DefaultPprof(),
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %q", v)
		}
		cfg.Port = p
	}

	readEnv(&cfg.DB.Host, "POSTGRES_HOST")
	readEnv(&cfg.DB.User, "POSTGRES_USER")
	readEnv(&cfg.DB.Pass, "POSTGRES_PASSWORD")
	readEnv(&cfg.DB.Name, "POSTGRES_DB")
	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		if _, err := strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid POSTGRES_PORT: %q", v)
		}
		cfg.DB.Port = v
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	readEnv(&cfg.Kafka.Topic, "KAFKA_TOPIC")
	readEnv(&cfg.Kafka.GroupID, "KAFKA_GROUP_ID")

	readEnv(&cfg.Mailer.BaseURL, "MAILER_BASE_URL")
	readEnv(&cfg.Mailer.From, "MAILER_FROM")
	if err := readEnvInt(&cfg.Mailer.MaxAttempts, "MAILER_MAX_ATTEMPTS"); err != nil {
		return nil, err
	}
	if err := readEnvDuration(&cfg.Mailer.BaseDelay, "MAILER_BASE_DELAY"); err != nil {
		return nil, err
	}
	if err := readEnvDuration(&cfg.Mailer.MaxDelay, "MAILER_MAX_DELAY"); err != nil {
		return nil, err
	}

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_ENABLED: %q", v)
		}
		cfg.RateLimit.Enabled = b
	}
	if v := os.Getenv("RATE_LIMIT_RATE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RATE: %q", v)
		}
		cfg.RateLimit.Rate = f
	}
	if err := readEnvInt(&cfg.RateLimit.Burst, "RATE_LIMIT_BURST"); err != nil {
		return nil, err
	}
	if err := readEnvDuration(&cfg.RateLimit.TTL, "RATE_LIMIT_TTL"); err != nil {
		return nil, err
	}
	if err := readEnvInt(&cfg.RateLimit.MaxBuckets, "RATE_LIMIT_MAX_BUCKETS"); err != nil {
		return nil, err
	}

	if err := readEnvInt(&cfg.Pprof.Port, "PPROF_PORT"); err != nil {
		return nil, err
	}
	readEnv(&cfg.Pprof.User, "PPROF_USER")
	readEnv(&cfg.Pprof.Pass, "PPROF_PASSWORD")

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	return cfg, nil
}

func readEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func readEnvInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %q", key, v)
	}
	*dst = n
	return nil
}

func readEnvDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %q", key, v)
	}
	*dst = d
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
