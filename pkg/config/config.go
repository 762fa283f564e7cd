package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "LOTFLOW"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv       = "LOTFLOW_APP_ENV"
	EnvPort         = "LOTFLOW_APP_PORT"
	EnvDBDSN        = "LOTFLOW_DB_DSN"
	EnvDBDriver     = "LOTFLOW_DB_DRIVER"
	EnvDBHost       = "LOTFLOW_DB_HOST"
	EnvDBUser       = "LOTFLOW_DB_USER"
	EnvDBName       = "LOTFLOW_DB_NAME"
	EnvRedisURL     = "LOTFLOW_REDIS_URL"
	EnvPasscode     = "LOTFLOW_COMPANY_PASSCODE"
	EnvPasscodeHash = "LOTFLOW_COMPANY_PASSCODE_HASH"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Auth         AuthConfig
	Password     PasswordConfig
	FeatureFlags FeatureFlagsConfig
	Metrics      MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LOTFLOW_APP_ENV" required:"true"`
	Port         string `envconfig:"LOTFLOW_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"LOTFLOW_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LOTFLOW_LOG_WARN_STACK" default:"false"`

	CORSOrigins []string `envconfig:"LOTFLOW_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"LOTFLOW_DB_DSN"`
	Driver string `envconfig:"LOTFLOW_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"LOTFLOW_DB_HOST"`
	LegacyPort     int    `envconfig:"LOTFLOW_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LOTFLOW_DB_USER"`
	LegacyPassword string `envconfig:"LOTFLOW_DB_PASSWORD"`
	LegacyName     string `envconfig:"LOTFLOW_DB_NAME"`
	LegacySSLMode  string `envconfig:"LOTFLOW_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LOTFLOW_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LOTFLOW_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LOTFLOW_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LOTFLOW_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the sqlite driver was selected.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(strings.TrimSpace(db.Driver), DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"LOTFLOW_REDIS_URL" required:"true"`
	Address      string        `envconfig:"LOTFLOW_REDIS_ADDR"`
	Password     string        `envconfig:"LOTFLOW_REDIS_PASSWORD"`
	DB           int           `envconfig:"LOTFLOW_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LOTFLOW_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LOTFLOW_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LOTFLOW_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LOTFLOW_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LOTFLOW_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// AuthConfig holds the shared company passcode guarding write endpoints.
// PasscodeHash (argon2id) takes precedence over the plain Passcode.
type AuthConfig struct {
	Passcode         string        `envconfig:"LOTFLOW_COMPANY_PASSCODE"`
	PasscodeHash     string        `envconfig:"LOTFLOW_COMPANY_PASSCODE_HASH"`
	WriteLimitWindow time.Duration `envconfig:"LOTFLOW_WRITE_RATE_LIMIT_WINDOW" default:"1m"`
	WriteLimitPerIP  int           `envconfig:"LOTFLOW_WRITE_RATE_LIMIT_IP_LIMIT" default:"60"`
}

// Configured reports whether any passcode was provided.
func (a AuthConfig) Configured() bool {
	return strings.TrimSpace(a.Passcode) != "" || strings.TrimSpace(a.PasscodeHash) != ""
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"LOTFLOW_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"LOTFLOW_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"LOTFLOW_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"LOTFLOW_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"LOTFLOW_ARGON_KEY_LEN" default:"32"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"LOTFLOW_AUTO_MIGRATE" default:"false"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"LOTFLOW_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"LOTFLOW_METRICS_PATH" default:"/metrics"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		return fmt.Errorf("%s is required for the sqlite driver", EnvDBDSN)
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
