package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Alijeyrad/glider_backend/pkg/constants"
)

var GlobalConf *Config

func ReadConfig(configPath string) (*Config, error) {
	// A local .env is optional; real environment variables always win.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName(constants.ConfigName)
	v.SetConfigType(constants.ConfigFormat)
	v.AddConfigPath(configPath)

	setDefaults(v)

	// e.g. GLIDER_DATABASE_DATA_DIR overrides database.data_dir
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	applyLegacyEmailEnv(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}

	GlobalConf = config

	return config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.timeout_seconds", 30)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.cors.enabled", true)
	v.SetDefault("server.cors.allow_origins", []string{"*"})
	v.SetDefault("server.rate_limit.enabled", true)
	v.SetDefault("server.rate_limit.requests_per_window", 20)
	v.SetDefault("server.rate_limit.window_seconds", 30)

	v.SetDefault("database.data_dir", "data")
	v.SetDefault("database.file_name", "glider.db")
	v.SetDefault("database.journal_mode", "WAL")
	v.SetDefault("database.busy_timeout_ms", 5000)

	v.SetDefault("redis.addr", "")
	v.SetDefault("admin.token", "")

	v.SetDefault("email.enabled", false)
	v.SetDefault("email.from", "")
	v.SetDefault("email.admin_address", "")
	v.SetDefault("email.from_name", constants.AppName)
	v.SetDefault("email.smtp.username", "")
	v.SetDefault("email.smtp.password", "")
	v.SetDefault("email.smtp.use_tls", false)
	v.SetDefault("email.smtp.host", "smtp.gmail.com")
	v.SetDefault("email.smtp.port", 587)
	v.SetDefault("email.smtp.timeout_seconds", 30)

	v.SetDefault("prices.enabled", true)
	v.SetDefault("prices.base_url", "https://api.coingecko.com/api/v3")
	v.SetDefault("prices.token_ids", []string{"solana", "ethereum", "moonriver"})
	v.SetDefault("prices.vs_currency", "usd")
	v.SetDefault("prices.poll_interval_seconds", 60)
	v.SetDefault("prices.timeout_seconds", 10)

	v.SetDefault("observability.enabled", false)
	v.SetDefault("observability.service_name", constants.ServiceName)
	v.SetDefault("observability.service_version", "dev")
	v.SetDefault("observability.metrics.path", "/metrics")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output.stdout", true)
}

// applyLegacyEmailEnv honours the EMAIL_USER / EMAIL_PASS / ADMIN_EMAIL variables
// used by earlier deployments. Both credentials present switch email on.
func applyLegacyEmailEnv(c *Config) {
	user := os.Getenv("EMAIL_USER")
	pass := os.Getenv("EMAIL_PASS")

	if c.Email.SMTP.Username == "" {
		c.Email.SMTP.Username = user
	}
	if c.Email.SMTP.Password == "" {
		c.Email.SMTP.Password = pass
	}
	if c.Email.AdminAddress == "" {
		c.Email.AdminAddress = os.Getenv("ADMIN_EMAIL")
	}
	if user != "" && pass != "" {
		c.Email.Enabled = true
	}

	if c.Email.From == "" {
		c.Email.From = c.Email.SMTP.Username
	}
	if c.Email.AdminAddress == "" {
		c.Email.AdminAddress = c.Email.From
	}
}
