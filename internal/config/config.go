package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Equipment GatewayConfig   `yaml:"equipment"`
	Payment   GatewayConfig   `yaml:"payment"`
	Notifier  NotifierConfig  `yaml:"notifier"`
	Billing   BillingConfig   `yaml:"billing"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// GatewayConfig points at one downstream microservice
type GatewayConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// NotifierConfig selects how transactional email is delivered:
// "external" posts to the notification microservice, "sendgrid"
// delivers directly through the SendGrid API.
type NotifierConfig struct {
	Provider       string `yaml:"provider"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	SendGridAPIKey string `yaml:"sendgrid_api_key"`
	FromEmail      string `yaml:"from_email"`
	FromName       string `yaml:"from_name"`
}

// BillingConfig contains the rental fee schedule
type BillingConfig struct {
	BaseFeeCents int32 `yaml:"base_fee_cents"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	RemindLongOpenRentals string `yaml:"remind_long_open_rentals"`
	LongOpenAfterHours    int    `yaml:"long_open_after_hours"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Downstream services
	if val := os.Getenv("EQUIPMENT_URL"); val != "" {
		c.Equipment.BaseURL = val
	}
	if val := os.Getenv("PAYMENT_URL"); val != "" {
		c.Payment.BaseURL = val
	}
	if val := os.Getenv("NOTIFIER_URL"); val != "" {
		c.Notifier.BaseURL = val
	}
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Notifier.SendGridAPIKey = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Equipment.BaseURL == "" {
		return fmt.Errorf("equipment service base_url is required")
	}
	if c.Payment.BaseURL == "" {
		return fmt.Errorf("payment service base_url is required")
	}

	switch c.Notifier.Provider {
	case "", "external":
		c.Notifier.Provider = "external"
		if c.Notifier.BaseURL == "" {
			return fmt.Errorf("notifier base_url is required for the external provider")
		}
	case "sendgrid":
		if c.Notifier.SendGridAPIKey == "" {
			return fmt.Errorf("sendgrid_api_key is required for the sendgrid provider")
		}
		if c.Notifier.FromEmail == "" {
			return fmt.Errorf("from_email is required for the sendgrid provider")
		}
	default:
		return fmt.Errorf("unknown notifier provider: %s", c.Notifier.Provider)
	}

	// Gateway timeout defaults
	if c.Equipment.TimeoutSeconds <= 0 {
		c.Equipment.TimeoutSeconds = 10
	}
	if c.Payment.TimeoutSeconds <= 0 {
		c.Payment.TimeoutSeconds = 10
	}
	if c.Notifier.TimeoutSeconds <= 0 {
		c.Notifier.TimeoutSeconds = 10
	}

	// Billing defaults
	if c.Billing.BaseFeeCents == 0 {
		c.Billing.BaseFeeCents = 1000 // Flat fee per rental
	}

	// Scheduler defaults
	if c.Scheduler.RemindLongOpenRentals == "" {
		c.Scheduler.RemindLongOpenRentals = "0 0 * * * *" // hourly
	}
	if c.Scheduler.LongOpenAfterHours <= 0 {
		c.Scheduler.LongOpenAfterHours = 2
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
