package email

import (
	"time"

	"github.com/Alijeyrad/glider_backend/config"
	"github.com/Alijeyrad/glider_backend/pkg/constants"
)

// Config holds email service configuration
type Config struct {
	Enabled  bool
	From     string
	FromName string

	// AdminAddress receives signup alerts.
	AdminAddress string

	// SMTP settings
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	SMTPUseTLS         bool
	SMTPTimeoutSeconds int
}

// DefaultConfig returns defaults matching a Gmail app-password setup
func DefaultConfig() Config {
	return Config{
		Enabled:            false,
		FromName:           constants.AppName,
		SMTPHost:           "smtp.gmail.com",
		SMTPPort:           587,
		SMTPTimeoutSeconds: 30,
	}
}

// SMTPTimeout returns the SMTP timeout as a duration
func (c Config) SMTPTimeout() time.Duration {
	if c.SMTPTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.SMTPTimeoutSeconds) * time.Second
}

// HasCredentials reports whether SMTP auth is configured.
func (c Config) HasCredentials() bool {
	return c.SMTPUsername != "" && c.SMTPPassword != ""
}

// FromCentralConfig converts central config.EmailConfig to package Config
func FromCentralConfig(c config.EmailConfig) Config {
	cfg := Config{
		Enabled:            c.Enabled,
		From:               c.From,
		FromName:           c.FromName,
		AdminAddress:       c.AdminAddress,
		SMTPHost:           c.SMTP.Host,
		SMTPPort:           c.SMTP.Port,
		SMTPUsername:       c.SMTP.Username,
		SMTPPassword:       c.SMTP.Password,
		SMTPUseTLS:         c.SMTP.UseTLS,
		SMTPTimeoutSeconds: c.SMTP.TimeoutSeconds,
	}
	if cfg.FromName == "" {
		cfg.FromName = constants.AppName
	}
	if cfg.AdminAddress == "" {
		cfg.AdminAddress = cfg.From
	}
	return cfg
}
