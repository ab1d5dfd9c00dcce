package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Dashboard specifics
	Store          StoreConfig
	Dashboard      DashboardConfig
	Labels         LabelsConfig
	GoogleCalendar GoogleCalendarConfig
	Telemetry      TelemetryConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StoreConfig points at the remote document store backing the dashboard.
type StoreConfig struct {
	URL         string
	Collection  string
	AccessToken string
}

type DashboardConfig struct {
	Timezone string
}

// LabelsConfig overrides the due-date labels shown on project cards.
// Empty fields fall back to the built-in English labels.
type LabelsConfig struct {
	OverdueBy  string
	DueToday   string
	OneDayLeft string
	DaysLeft   string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type TelemetryConfig struct {
	Endpoint string
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Document store
	cfg.Store.URL = viper.GetString("store.url")
	cfg.Store.Collection = viper.GetString("store.collection")
	cfg.Store.AccessToken = expandEnvVar(viper.GetString("store.access_token"))
	if storeURL := viper.GetString("store_url"); storeURL != "" {
		cfg.Store.URL = storeURL
	}
	if storeToken := viper.GetString("store_access_token"); storeToken != "" {
		cfg.Store.AccessToken = storeToken
	}
	if cfg.Store.URL == "" {
		return nil, fmt.Errorf("store.url is required")
	}

	// Dashboard
	cfg.Dashboard.Timezone = viper.GetString("dashboard.timezone")
	cfg.Labels.OverdueBy = viper.GetString("labels.overdue_by")
	cfg.Labels.DueToday = viper.GetString("labels.due_today")
	cfg.Labels.OneDayLeft = viper.GetString("labels.one_day_left")
	cfg.Labels.DaysLeft = viper.GetString("labels.days_left")

	// Google Calendar mirroring (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Telemetry (optional)
	cfg.Telemetry.Endpoint = viper.GetString("telemetry.endpoint")

	// Webhooks
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("webhook.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("store.collection", "projects")
	viper.SetDefault("dashboard.timezone", "UTC")
	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("webhook.enabled", false)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
