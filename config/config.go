package config

import (
	"fmt"
	"time"

	"github.com/teleka/teleka-taxi/pkg/configparser"
)

// Storage driver names
const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Server   ServerConfig
		Store    StoreConfig
		Database DatabaseConfig
		RabbitMQ RabbitMQConfig
		Auth     AuthConfig
		Dispatch DispatchConfig

		LogLevel string `env:"LOG_LEVEL" default:"DEBUG"`
	}

	ServerConfig struct {
		Host       string `env:"SERVER_HOST" default:"0.0.0.0"`
		Port       string `env:"SERVER_PORT" default:"3000"`
		CORSOrigin string `env:"SERVER_CORS_ORIGIN" default:"http://localhost:3000"`
	}

	StoreConfig struct {
		// Driver selects the storage backend: "file" keeps one JSON
		// document per collection under Dir, "postgres" uses Database.
		Driver string `env:"STORE_DRIVER" default:"file"`
		Dir    string `env:"STORE_DIR" default:"data"`
	}

	DatabaseConfig struct {
		Host     string `env:"DATABASE_HOST" default:"localhost"`
		Port     string `env:"DATABASE_PORT" default:"5432"`
		User     string `env:"DATABASE_USER" default:"teleka_user"`
		Password string `env:"DATABASE_PASSWORD" default:"teleka_pass"`
		Database string `env:"DATABASE_DATABASE" default:"teleka_db"`

		MaxConns        int32         `env:"DATABASE_MAXCONNS" default:"20"`
		MinConns        int32         `env:"DATABASE_MINCONNS" default:"2"`
		MaxConnLifetime time.Duration `env:"DATABASE_MAXCONNLIFETIME" default:"30m"`
		MaxConnIdleTime time.Duration `env:"DATABASE_MAXCONNIDLETIME" default:"5m"`
	}

	RabbitMQConfig struct {
		// Disabled by default: lifecycle events are only mirrored to the
		// broker when an operator turns it on.
		Enabled  bool   `env:"RABBITMQ_ENABLED" default:"false"`
		Host     string `env:"RABBITMQ_HOST" default:"localhost"`
		Port     string `env:"RABBITMQ_PORT" default:"5672"`
		User     string `env:"RABBITMQ_USER" default:"guest"`
		Password string `env:"RABBITMQ_PASSWORD" default:"guest"`
		Exchange string `env:"RABBITMQ_EXCHANGE" default:"teleka_topic"`
	}

	// AuthConfig holds the single operator credential. The defaults mirror
	// the hard-coded console login this replaces.
	AuthConfig struct {
		Username       string        `env:"AUTH_USERNAME" default:"admin"`
		Password       string        `env:"AUTH_PASSWORD" default:"admin123"`
		JWTSecret      string        `env:"AUTH_JWT_SECRET" default:"supersecretkey"`
		AccessTokenTTL time.Duration `env:"AUTH_ACCESS_TOKEN_TTL" default:"12h"`
	}

	DispatchConfig struct {
		// Fare used for a trip when the request carries none.
		DefaultFare float64 `env:"DISPATCH_DEFAULT_FARE" default:"25.50"`
	}
)

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

func (c RabbitMQConfig) GetDSN() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		c.User,
		c.Password,
		c.Host,
		c.Port,
	)
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading environment variables and parsing into the config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	return cfg, nil
}
