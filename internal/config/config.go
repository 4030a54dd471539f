package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DB      DBConfig      `mapstructure:"db"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type DBConfig struct {
	ExplicitDSN     string        `mapstructure:"dsn"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Name            string        `mapstructure:"name"`
	Schema          string        `mapstructure:"schema"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
	File        string `mapstructure:"file"`
	MaxSizeMB   int    `mapstructure:"max_size_mb"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAgeDays  int    `mapstructure:"max_age_days"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// envBindings lists environment names per key, first match wins. The
// lowercase names are the ones the dashboard deployment already uses.
var envBindings = map[string][]string{
	"db.dsn":                {"DATABASE_URL"},
	"db.username":           {"DB_USERNAME", "username"},
	"db.password":           {"DB_PASSWORD", "password"},
	"db.host":               {"DB_HOST", "database_url"},
	"db.port":               {"DB_PORT", "port"},
	"db.name":               {"DB_NAME", "database"},
	"db.schema":             {"DB_SCHEMA"},
	"db.max_open_conns":     {"DB_MAX_OPEN_CONNS"},
	"db.max_idle_conns":     {"DB_MAX_IDLE_CONNS"},
	"db.conn_max_lifetime":  {"DB_CONN_MAX_LIFETIME"},
	"http.addr":             {"APP_HOST"},
	"http.request_timeout":  {"HTTP_REQUEST_TIMEOUT"},
	"http.shutdown_timeout": {"HTTP_SHUTDOWN_TIMEOUT"},
	"log.level":             {"LOG_LEVEL"},
	"log.development":       {"LOG_DEVELOPMENT"},
	"log.file":              {"LOG_FILE"},
	"log.max_size_mb":       {"LOG_MAX_SIZE_MB"},
	"log.max_backups":       {"LOG_MAX_BACKUPS"},
	"log.max_age_days":      {"LOG_MAX_AGE_DAYS"},
	"metrics.enabled":       {"METRICS_ENABLED"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.username", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "postgres")
	v.SetDefault("db.schema", "inventory")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", 30*time.Minute)
	v.SetDefault("http.addr", ":8000")
	v.SetDefault("http.request_timeout", 10*time.Second)
	v.SetDefault("http.shutdown_timeout", 5*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("metrics.enabled", true)
}

// Load resolves configuration from the process environment. Callers are
// expected to have loaded any .env file beforehand.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, names := range envBindings {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return Config{}, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}

	if c.DB.Schema == "" {
		return c, fmt.Errorf("database schema must not be empty")
	}

	return c, nil
}

// DSN returns the explicit connection string when one is configured,
// otherwise a postgres URL assembled from the individual parameters.
func (c DBConfig) DSN() string {
	if c.ExplicitDSN != "" {
		return c.ExplicitDSN
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=disable",
	}

	return u.String()
}
