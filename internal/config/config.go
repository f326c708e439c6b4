package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	CPD      CPDConfig      `yaml:"cpd"`
	Access   AccessConfig   `yaml:"access"`
	Storage  StorageConfig  `yaml:"storage"`
	Billing  BillingConfig  `yaml:"billing"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds the settings used to verify tokens issued by the
// identity provider.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"cpdtrack"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CPDConfig holds the regulatory parameters of a CPD cycle.
type CPDConfig struct {
	RequiredHours         float64 `yaml:"required_hours"          env:"CPD_REQUIRED_HOURS"          env-default:"20"`
	EndorsedRequiredHours float64 `yaml:"endorsed_required_hours" env:"CPD_ENDORSED_REQUIRED_HOURS" env-default:"30"`
	MinReflectionLength   int     `yaml:"min_reflection_length"   env:"CPD_MIN_REFLECTION_LENGTH"   env-default:"50"`
	Timezone              string  `yaml:"timezone"                env:"CPD_TIMEZONE"                env-default:"UTC"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// AccessConfig holds route access and throttling settings.
type AccessConfig struct {
	PolicyPath           string `yaml:"policy_path"           env:"ACCESS_POLICY_PATH"`
	EnforceSubscriptions bool   `yaml:"enforce_subscriptions" env:"ACCESS_ENFORCE_SUBSCRIPTIONS" env-default:"false"`
	RateLimitPerMinute   int    `yaml:"rate_limit_per_minute" env:"ACCESS_RATE_LIMIT_PER_MINUTE" env-default:"120"`
}

// Storage drivers.
const (
	StorageLocal = "local"
	StorageGCS   = "gcs"
)

// StorageConfig holds evidence file storage settings.
type StorageConfig struct {
	Driver         string `yaml:"driver"           env:"STORAGE_DRIVER"           env-default:"local"`
	LocalDir       string `yaml:"local_dir"        env:"STORAGE_LOCAL_DIR"        env-default:"./data/evidence"`
	PublicBaseURL  string `yaml:"public_base_url"  env:"STORAGE_PUBLIC_BASE_URL"  env-default:"http://localhost:8080/files"`
	GCSBucket      string `yaml:"gcs_bucket"       env:"STORAGE_GCS_BUCKET"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"STORAGE_MAX_UPLOAD_BYTES" env-default:"10485760"`
}

// BillingConfig holds payment processor credentials. Billing endpoints are
// disabled when the secret key is empty.
type BillingConfig struct {
	StripeSecretKey     string `yaml:"stripe_secret_key"     env:"BILLING_STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `yaml:"stripe_webhook_secret" env:"BILLING_STRIPE_WEBHOOK_SECRET"`
	PlanNames           string `yaml:"plan_names"            env:"BILLING_PLAN_NAMES"`
}

// Enabled reports whether billing credentials are configured.
func (c BillingConfig) Enabled() bool {
	return c.StripeSecretKey != ""
}

// Plans parses PlanNames ("price_123=Pro,price_456=Basic") into a price id to
// plan name map.
func (c BillingConfig) Plans() map[string]string {
	plans := make(map[string]string)
	for _, pair := range strings.Split(c.PlanNames, ",") {
		price, name, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || price == "" {
			continue
		}
		plans[strings.TrimSpace(price)] = strings.TrimSpace(name)
	}
	return plans
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}
