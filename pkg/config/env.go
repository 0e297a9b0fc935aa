package config

// EnvPrefix namespaces every StockTrail environment variable.
const EnvPrefix = "stocktrail"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "STOCKTRAIL_DB_DSN"
	EnvDBHost = "STOCKTRAIL_DB_HOST"
	EnvDBUser = "STOCKTRAIL_DB_USER"
	EnvDBName = "STOCKTRAIL_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
