package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV"`
	Port         int    `envconfig:"PORT" default:"8080"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS" default:"*"`

	Mongo struct {
		URI        string `envconfig:"MONGO_URI"`
		DBName     string `envconfig:"DB_NAME"`
		Collection string `envconfig:"MONGO_COLLECTION" default:"movies"`
	}
	Neo4j struct {
		URI      string `envconfig:"NEO4J_URI"`
		User     string `envconfig:"NEO4J_USER"`
		Password string `envconfig:"NEO4J_PASSWORD"`
		Database string `envconfig:"NEO4J_DATABASE"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}
