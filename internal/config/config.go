package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
)

const envPrefix = "CHECKOUT_"

type Config struct {
	Primary     Primary           `koanf:"primary"`
	Server      ServerConfig      `koanf:"server"`
	AsaasClient AsaasClientConfig `koanf:"asaas_client"`
	Retry       RetryConfig       `koanf:"retry"`
	Hosted      HostedConfig      `koanf:"hosted"`
	Logger      LoggerConfig      `koanf:"logger"`
	Ledger      LedgerConfig      `koanf:"ledger"`

	// Asaas is resolved from the raw process environment, not from koanf.
	Asaas AsaasSettings `koanf:"-" validate:"-"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
}

type AsaasClientConfig struct {
	Timeout   time.Duration `koanf:"timeout" validate:"required"`
	UserAgent string        `koanf:"user_agent" validate:"required"`
}

// RetryConfig only applies to idempotent reads. MaxAttempts of 1 disables retries.
type RetryConfig struct {
	MaxAttempts int           `koanf:"max_attempts" validate:"min=1,max=5"`
	BaseDelay   time.Duration `koanf:"base_delay"`
}

type HostedConfig struct {
	InstallmentCharges bool `koanf:"installment_charges"`
}

type LedgerConfig struct {
	Enabled  bool           `koanf:"enabled"`
	Database DatabaseConfig `koanf:"database" validate:"-"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                        "development",
		"server.port":                        "3001",
		"server.read_timeout":                "10s",
		"server.write_timeout":               "70s",
		"server.idle_timeout":                "120s",
		"server.request_timeout":             "60s",
		"asaas_client.timeout":               "30s",
		"asaas_client.user_agent":            "checkout-orchestrator/1.0",
		"retry.max_attempts":                 1,
		"retry.base_delay":                   "200ms",
		"hosted.installment_charges":         false,
		"logger.level":                       "info",
		"logger.format":                      "json",
		"ledger.enabled":                     false,
		"ledger.database.port":               5432,
		"ledger.database.ssl_mode":           "disable",
		"ledger.database.max_open_conns":     5,
		"ledger.database.max_idle_conns":     1,
		"ledger.database.conn_max_lifetime":  "1h",
		"ledger.database.conn_max_idle_time": "30m",
	}
}

// LoadConfig reads CHECKOUT_ prefixed variables (after .env autoload) on top
// of the defaults and resolves the Asaas settings from the process environment.
func LoadConfig() (*Config, error) {
	return Load(EnvironMap(os.Environ()))
}

// Load builds the configuration from an explicit environment mapping.
func Load(environ map[string]string) (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	prefixed := make(map[string]interface{})
	for key, value := range environ {
		if !strings.HasPrefix(key, envPrefix) {
			continue
		}
		prefixed[envKey(key)] = value
	}

	err := k.Load(confmap.Provider(prefixed, "."), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	if mainConfig.Ledger.Enabled {
		if err := validate.Struct(mainConfig.Ledger.Database); err != nil {
			logger.Error("ledger database config validation failed", "error", err)
			return nil, err
		}
	}

	mainConfig.Asaas = ResolveAsaas(environ)

	return mainConfig, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(
		strings.ToLower(strings.TrimPrefix(s, envPrefix)),
		"__",
		".",
	)
}

// EnvironMap converts os.Environ style pairs into a lookup map.
func EnvironMap(pairs []string) map[string]string {
	environ := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		environ[key] = value
	}
	return environ
}
