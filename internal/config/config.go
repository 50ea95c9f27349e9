package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyUUID    = key("uuid")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service  Service
	Postgres Postgres
	Feed     Feed
	Kafka    Kafka
	Logger   Logger
	Metrics  Metrics
	Platform Platform
}

type Service struct {
	Port string `env:"WORKSPACE_SERVICE_PORT" env-default:"8080"`
	Name string `env:"WORKSPACE_SERVICE_NAME" env-default:"workspace-chat"`
}

type Postgres struct {
	User     string `env:"WORKSPACE_POSTGRES_USER" env-required:"true"`
	Password string `env:"WORKSPACE_POSTGRES_PASSWORD" env-required:"true"`
	Database string `env:"WORKSPACE_POSTGRES_DB" env-required:"true"`
	Host     string `env:"WORKSPACE_POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"WORKSPACE_POSTGRES_PORT" env-default:"5432"`
}

type Feed struct {
	BaseURL   string        `env:"WORKSPACE_FEED_BASE_URL" env-required:"true"`
	APIKey    string        `env:"WORKSPACE_FEED_API_KEY" env-required:"true"`
	JWTSecret string        `env:"WORKSPACE_FEED_JWT_SECRET" env-required:"true"`
	Timeout   time.Duration `env:"WORKSPACE_FEED_TIMEOUT" env-default:"5s"`
}

type Kafka struct {
	Host           string `env:"WORKSPACE_KAFKA_HOST" env-default:"localhost"`
	Port           string `env:"WORKSPACE_KAFKA_PORT" env-default:"9092"`
	MessagesTopic  string `env:"WORKSPACE_KAFKA_MESSAGES_TOPIC" env-default:"workspace.messages.changes"`
	DirectoryTopic string `env:"WORKSPACE_KAFKA_DIRECTORY_TOPIC" env-default:"workspace.members.updates"`
}

type Logger struct {
	Host string `env:"WORKSPACE_LOGGER_HOST" env-default:"localhost"`
	Port string `env:"WORKSPACE_LOGGER_PORT" env-default:"6000"`
}

type Metrics struct {
	Host string `env:"WORKSPACE_METRICS_HOST" env-default:"localhost"`
	Port int    `env:"WORKSPACE_METRICS_PORT" env-default:"8125"`
}

type Platform struct {
	Env string `env:"WORKSPACE_ENV" env-default:"dev"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read service config: %v", err)
	}
	return cfg
}
