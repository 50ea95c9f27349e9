package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// ClientConfig describes the environment of the terminal workspace client.
type ClientConfig struct {
	ServerBaseURL string        `env:"WORKSPACE_SERVER_BASE_URL" env-default:"http://localhost:8080"`
	UserID        string        `env:"WORKSPACE_USER_ID" env-required:"true"`
	PollInterval  time.Duration `env:"WORKSPACE_POLL_INTERVAL" env-default:"1s"`
	HTTPTimeout   time.Duration `env:"WORKSPACE_HTTP_TIMEOUT" env-default:"10s"`
	Notifications bool          `env:"WORKSPACE_NOTIFICATIONS" env-default:"true"`

	Kafka    Kafka
	Logger   Logger
	Metrics  Metrics
	Service  Service
	Platform Platform
}

func MustLoadClient() *ClientConfig {
	cfg := &ClientConfig{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read client config: %v", err)
	}
	return cfg
}
