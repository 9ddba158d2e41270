package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"univadmin/internal/validation"
)

const (
	StoreDriverMemory = "memory"
	StoreDriverMySQL  = "mysql"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Log      LogConfig
	HTTP     HTTPConfig
	Refund   RefundConfig
	Fees     FeeConfig
}

type ServerConfig struct {
	Port         int `validate:"min=1,max=65535"`
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type StoreConfig struct {
	Driver string `validate:"oneof=memory mysql"`
}

type DatabaseConfig struct {
	Host            string `validate:"notblank"`
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Addr     string `validate:"notblank"`
	Password string
	DB       int `validate:"min=0"`
	TTL      time.Duration
}

type LogConfig struct {
	Level string `validate:"oneof=debug info warn error"`
}

type HTTPConfig struct {
	RateLimitRPS       int `validate:"min=0"`
	CORSAllowedOrigins []string
}

// RefundConfig controls the refund reason length rule. With StrictReason
// off only a non-blank reason is required.
type RefundConfig struct {
	StrictReason    bool
	MinReasonLength int `validate:"min=1"`
	MaxReasonLength int `validate:"gtefield=MinReasonLength"`
}

// FeeConfig is the platform fee schedule shown on the settings page. Money
// values are kept as decimal strings.
type FeeConfig struct {
	CommissionPercent     string `validate:"decimal"`
	ProcessingPercent     string `validate:"decimal"`
	FixedFee              string `validate:"decimal"`
	WithdrawalFee         string `validate:"decimal"`
	SessionTimeoutMinutes int    `validate:"min=1"`
	HighValueThreshold    string `validate:"decimal"`
}

// Load reads configuration from the environment, falling back to the YAML
// file at path when it exists and to defaults otherwise.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.BindEnv("fee.session_timeout_minutes", "SESSION_TIMEOUT_MINUTES"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("fee.high_value_threshold", "HIGH_VALUE_ORDER_THRESHOLD"); err != nil {
		return nil, err
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config file %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(v.GetString("store.driver")),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("db.host"),
			Port:            v.GetInt("db.port"),
			User:            v.GetString("db.user"),
			Password:        v.GetString("db.password"),
			Name:            v.GetString("db.name"),
			MaxOpenConns:    v.GetInt("db.max_open_conns"),
			MaxIdleConns:    v.GetInt("db.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("db.conn_max_lifetime"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("redis.enabled"),
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			TTL:      v.GetDuration("redis.ttl"),
		},
		Log: LogConfig{
			Level: strings.ToLower(v.GetString("log.level")),
		},
		HTTP: HTTPConfig{
			RateLimitRPS:       v.GetInt("rate_limit.rps"),
			CORSAllowedOrigins: splitList(v.GetStringSlice("cors.allowed_origins")),
		},
		Refund: RefundConfig{
			StrictReason:    v.GetBool("refund.strict_reason"),
			MinReasonLength: v.GetInt("refund.min_reason_length"),
			MaxReasonLength: v.GetInt("refund.max_reason_length"),
		},
		Fees: FeeConfig{
			CommissionPercent:     v.GetString("fee.commission_percent"),
			ProcessingPercent:     v.GetString("fee.processing_percent"),
			FixedFee:              v.GetString("fee.fixed"),
			WithdrawalFee:         v.GetString("fee.withdrawal"),
			SessionTimeoutMinutes: v.GetInt("fee.session_timeout_minutes"),
			HighValueThreshold:    v.GetString("fee.high_value_threshold"),
		},
	}

	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")

	v.SetDefault("store.driver", StoreDriverMemory)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "univadmin")
	v.SetDefault("db.password", "secret")
	v.SetDefault("db.name", "univjobs")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "5m")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "5m")

	v.SetDefault("log.level", "info")

	v.SetDefault("rate_limit.rps", 50)
	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetDefault("refund.strict_reason", true)
	v.SetDefault("refund.min_reason_length", 10)
	v.SetDefault("refund.max_reason_length", 250)

	v.SetDefault("fee.commission_percent", "10")
	v.SetDefault("fee.processing_percent", "2.9")
	v.SetDefault("fee.fixed", "0.30")
	v.SetDefault("fee.withdrawal", "2.00")
	v.SetDefault("fee.session_timeout_minutes", 30)
	v.SetDefault("fee.high_value_threshold", "500")
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
