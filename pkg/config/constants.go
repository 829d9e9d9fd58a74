package config

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	EnvAppEnv       = "GROCERYMART_APP_ENV"
	EnvAppPort      = "GROCERYMART_APP_PORT"
	EnvDBDSN        = "GROCERYMART_DB_DSN"
	EnvJWTSecret    = "GROCERYMART_JWT_SECRET"
	EnvGeminiAPIKey = "GROCERYMART_GEMINI_API_KEY"
)
