package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// ErrInsecureJWTSecret is returned when production runs without its own signing secret.
var ErrInsecureJWTSecret = errors.New("JWT_SECRET must be set to a non-default value when IS_PRODUCTION is true")

// BootstrapUser is an account seeded at startup if its username is not stored yet.
type BootstrapUser struct {
	Username string
	Password string
	Roles    []string
}

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	// LoginRateLimit uses the ulule/limiter formatted rate, e.g. "5-M".
	LoginRateLimit      string
	ExchangeTxTimeout   time.Duration
	AuditPublishTimeout time.Duration
	CORSAllowedOrigins  []string

	BootstrapUsers []BootstrapUser

	KafkaBrokers    []string
	KafkaAuditTopic string

	// External identity providers
	GoogleClientID string `mapstructure:"GOOGLE_CLIENT_ID"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "exchange-audit-app")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("EXCHANGE_TX_TIMEOUT", "10s")
	v.SetDefault("AUDIT_PUBLISH_TIMEOUT", "2s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("BOOTSTRAP_ADMIN_USERNAME", "admin")
	v.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "")
	v.SetDefault("BOOTSTRAP_USER_USERNAME", "user")
	v.SetDefault("BOOTSTRAP_USER_PASSWORD", "")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_AUDIT_TOPIC", "exchange-audit-events")
	v.SetDefault("GOOGLE_CLIENT_ID", "")

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		LoginRateLimit:  v.GetString("LOGIN_RATE_LIMIT"),
		KafkaAuditTopic: v.GetString("KAFKA_AUDIT_TOPIC"),
		GoogleClientID:  v.GetString("GOOGLE_CLIENT_ID"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, ErrInsecureJWTSecret
		}
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "exchange-audit-app"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.JWTExpiryDuration = parseDuration(v.GetString("JWT_EXPIRY_DURATION"), time.Hour, "JWT_EXPIRY_DURATION")
	cfg.ExchangeTxTimeout = parseDuration(v.GetString("EXCHANGE_TX_TIMEOUT"), 10*time.Second, "EXCHANGE_TX_TIMEOUT")
	cfg.AuditPublishTimeout = parseDuration(v.GetString("AUDIT_PUBLISH_TIMEOUT"), 2*time.Second, "AUDIT_PUBLISH_TIMEOUT")

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.KafkaBrokers = splitList(v.GetString("KAFKA_BROKERS"))

	if pw := v.GetString("BOOTSTRAP_ADMIN_PASSWORD"); pw != "" {
		cfg.BootstrapUsers = append(cfg.BootstrapUsers, BootstrapUser{
			Username: v.GetString("BOOTSTRAP_ADMIN_USERNAME"),
			Password: pw,
			Roles:    []string{"ADMIN", "USER"},
		})
	}
	if pw := v.GetString("BOOTSTRAP_USER_PASSWORD"); pw != "" {
		cfg.BootstrapUsers = append(cfg.BootstrapUsers, BootstrapUser{
			Username: v.GetString("BOOTSTRAP_USER_USERNAME"),
			Password: pw,
			Roles:    []string{"USER"},
		})
	}

	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in is disabled.")
	}

	return cfg, nil
}

func parseDuration(raw string, fallback time.Duration, key string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
