package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	JWT    JWTConfig
	Gemini GeminiConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GROCERYMART_APP_ENV" default:"dev"`
	Port         string `envconfig:"GROCERYMART_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"GROCERYMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GROCERYMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// DBConfig points GORM at the in-memory SQLite store. The default DSN keeps
// every connection of the process on one shared database that vanishes on
// restart.
type DBConfig struct {
	DSN string `envconfig:"GROCERYMART_DB_DSN" default:"file::memory:?cache=shared"`
}

type JWTConfig struct {
	Secret            string `envconfig:"GROCERYMART_JWT_SECRET" default:"grocery-mart-demo-secret"`
	Issuer            string `envconfig:"GROCERYMART_JWT_ISSUER" default:"grocery-mart"`
	ExpirationMinutes int    `envconfig:"GROCERYMART_JWT_EXPIRATION_MINUTES" default:"720"`
}

// GeminiConfig holds the single external credential the service consumes.
type GeminiConfig struct {
	APIKey  string `envconfig:"GROCERYMART_GEMINI_API_KEY"`
	BaseURL string `envconfig:"GROCERYMART_GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	Model   string `envconfig:"GROCERYMART_GEMINI_MODEL" default:"gemini-3-flash-preview"`
}
