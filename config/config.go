package config

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Gateway
	Redis
	Reconciler
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type APP struct {
	PORT     string `env:"APP_PORT" envDefault:"8080"`
	ENV      string `env:"APP_ENV" envDefault:"production"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func (a APP) IsDevelopment() bool {
	return a.ENV == "development"
}

// ConfigureLogger sets the logrus level and switches to JSON outside development.
func (a APP) ConfigureLogger() {
	level, err := logrus.ParseLevel(a.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", a.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if !a.IsDevelopment() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

type Kafka struct {
	Brokers              string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	WebhookConsumerGroup string `env:"KAFKA_WEBHOOK_GROUP_ID" envDefault:"defesapix-webhooks"`
	PublishTopics        string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"incidents.classified,charges.created,charges.paid,charges.expired,charges.webhook.retry,charges.dlq"`
	SubscriberTopics     string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"charges.webhook.retry"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

func (k Kafka) BrokerList() []string {
	return splitList(k.Brokers)
}

func (k Kafka) PublishTopicList() []string {
	return splitList(k.PublishTopics)
}

func (k Kafka) SubscriberTopicList() []string {
	return splitList(k.SubscriberTopics)
}

type Gateway struct {
	BaseURL      string        `env:"GATEWAY_BASE_URL" envDefault:"https://sandbox.asaas.com/api/v3"`
	APIKey       string        `env:"GATEWAY_API_KEY"`
	WebhookToken string        `env:"GATEWAY_WEBHOOK_TOKEN"`
	Timeout      time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"15s"`
	RateLimit    float64       `env:"GATEWAY_RATE_LIMIT" envDefault:"10"`
	RateBurst    int           `env:"GATEWAY_RATE_BURST" envDefault:"5"`

	WebhookRateLimit float64 `env:"WEBHOOK_RATE_LIMIT" envDefault:"20"`
	WebhookRateBurst int     `env:"WEBHOOK_RATE_BURST" envDefault:"40"`
}

type Reconciler struct {
	PollInterval  time.Duration `env:"RECONCILER_POLL_INTERVAL" envDefault:"3s"`
	SweepInterval time.Duration `env:"RECONCILER_SWEEP_INTERVAL" envDefault:"1m"`
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
