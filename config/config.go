package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Seed      SeedConfig      `mapstructure:"seed"`
	Payout    PayoutConfig    `mapstructure:"payout"`
	Reconcile ReconcileConfig `mapstructure:"reconcile"`
	Notify    NotifyConfig    `mapstructure:"notify"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// SeedConfig carries the master-seed mnemonic. Injected once at process
// start into the keychain constructor; never logged, never re-read per call.
type SeedConfig struct {
	Mnemonic   string `mapstructure:"mnemonic"`
	Passphrase string `mapstructure:"passphrase"`
}

// PayoutConfig carries withdrawal policy knobs. Amounts are cents.
type PayoutConfig struct {
	MinimumDefault  int64    `mapstructure:"minimum_default"`
	MinimumBank     int64    `mapstructure:"minimum_bank"`
	DisabledMethods []string `mapstructure:"disabled_methods"`
}

// MinimumFor returns the minimum withdrawal amount for a payout method.
func (p PayoutConfig) MinimumFor(method string) int64 {
	if method == "bank_transfer" {
		return p.MinimumBank
	}
	return p.MinimumDefault
}

// IsDisabled reports whether a payout method is switched off.
func (p PayoutConfig) IsDisabled(method string) bool {
	for _, m := range p.DisabledMethods {
		if m == method {
			return true
		}
	}
	return false
}

// ReconcileConfig drives the scheduled reconciliation daemon.
type ReconcileConfig struct {
	Schedule string `mapstructure:"schedule"` // cron spec, e.g. "@every 10m"
}

// NotifyConfig points at the platform notification webhook.
type NotifyConfig struct {
	WebhookURL string `mapstructure:"webhook_url"` // empty = notifications disabled
	Secret     string `mapstructure:"secret"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CST_ (Creator Settlement).
// Nested keys use underscore: CST_DATABASE_HOST, CST_SEED_MNEMONIC, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "settlement")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "creator-settlement")
	v.SetDefault("seed.mnemonic", "")
	v.SetDefault("seed.passphrase", "")
	v.SetDefault("payout.minimum_default", 1000) // $10.00
	v.SetDefault("payout.minimum_bank", 5000)    // $50.00
	v.SetDefault("payout.disabled_methods", []string{})
	v.SetDefault("reconcile.schedule", "@every 10m")
	v.SetDefault("notify.webhook_url", "")
	v.SetDefault("notify.secret", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CST_DATABASE_HOST -> database.host
	v.SetEnvPrefix("CST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
