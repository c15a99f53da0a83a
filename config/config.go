package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration. It is built once by Load and
// passed explicitly to the components that need it.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	Metrics    MetricsConfig

	// Booking specifics
	GoogleCalendar GoogleCalendarConfig
	Booking        BookingConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port               int
	Mode               string
	MaxBodyBytes       int64
	CORSAllowedOrigins []string
	TrustedProxies     []string // empty: client IP is the socket peer
	ShutdownTimeout    time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type MetricsConfig struct {
	Enabled bool
}

// GoogleCalendarConfig holds the OAuth installed-app credentials and the
// calendar bookings are written to.
type GoogleCalendarConfig struct {
	ClientID       string
	ClientSecret   string
	RedirectURL    string
	RefreshToken   string
	CalendarID     string
	RequestTimeout time.Duration // 0 disables the per-call timeout
}

type BookingConfig struct {
	Timezone                string
	DefaultDurationMin      int
	DeleteAvailabilityEvent bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

// load builds a Config from an already prepared viper instance.
func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.MaxBodyBytes = v.GetInt64("http_server.max_body_bytes")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	origins := v.GetString("http_server.cors_allowed_origins")
	if envOrigins := v.GetString("cors_origins"); envOrigins != "" {
		origins = envOrigins
	}
	cfg.HTTPServer.CORSAllowedOrigins = splitList(origins)
	proxies := v.GetString("http_server.trusted_proxies")
	if envProxies := v.GetString("trusted_proxies"); envProxies != "" {
		proxies = envProxies
	}
	cfg.HTTPServer.TrustedProxies = splitList(proxies)

	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	cfg.Metrics.Enabled = v.GetBool("metrics.enabled")

	// Google Calendar
	cfg.GoogleCalendar.ClientID = firstNonEmpty(v.GetString("google_client_id"), v.GetString("google_calendar.client_id"))
	cfg.GoogleCalendar.ClientSecret = firstNonEmpty(v.GetString("google_client_secret"), v.GetString("google_calendar.client_secret"))
	cfg.GoogleCalendar.RedirectURL = firstNonEmpty(v.GetString("google_redirect_uri"), v.GetString("google_calendar.redirect_url"))
	cfg.GoogleCalendar.RefreshToken = firstNonEmpty(v.GetString("google_refresh_token"), v.GetString("google_calendar.refresh_token"))
	cfg.GoogleCalendar.CalendarID = firstNonEmpty(v.GetString("calendar_id"), v.GetString("google_calendar.calendar_id"))
	cfg.GoogleCalendar.RequestTimeout = v.GetDuration("google_calendar.request_timeout")

	// Booking
	cfg.Booking.Timezone = firstNonEmpty(v.GetString("timezone"), v.GetString("booking.timezone"))
	cfg.Booking.DefaultDurationMin = v.GetInt("booking.default_duration_min")
	if v.IsSet("default_duration_min") {
		cfg.Booking.DefaultDurationMin = v.GetInt("default_duration_min")
	}
	cfg.Booking.DeleteAvailabilityEvent = v.GetBool("booking.delete_availability_event")
	if v.IsSet("delete_availability_event") {
		cfg.Booking.DeleteAvailabilityEvent = v.GetBool("delete_availability_event")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.max_body_bytes", 100*1024)
	v.SetDefault("http_server.cors_allowed_origins", "*")
	v.SetDefault("http_server.trusted_proxies", "")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests_per_min", 30)
	v.SetDefault("metrics.enabled", true)

	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.request_timeout", "20s")

	v.SetDefault("booking.timezone", "America/New_York")
	v.SetDefault("booking.default_duration_min", 60)
	v.SetDefault("booking.delete_availability_event", false)
}

func (cfg *Config) validate() error {
	var missing []string
	if cfg.GoogleCalendar.ClientID == "" {
		missing = append(missing, "GOOGLE_CLIENT_ID")
	}
	if cfg.GoogleCalendar.ClientSecret == "" {
		missing = append(missing, "GOOGLE_CLIENT_SECRET")
	}
	if cfg.GoogleCalendar.RedirectURL == "" {
		missing = append(missing, "GOOGLE_REDIRECT_URI")
	}
	if cfg.GoogleCalendar.RefreshToken == "" {
		missing = append(missing, "GOOGLE_REFRESH_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing google calendar credentials: %s", strings.Join(missing, ", "))
	}

	if _, err := time.LoadLocation(cfg.Booking.Timezone); err != nil {
		return fmt.Errorf("invalid booking timezone %q: %w", cfg.Booking.Timezone, err)
	}
	if cfg.Booking.DefaultDurationMin <= 0 {
		return errors.New("booking.default_duration_min must be positive")
	}
	if cfg.HTTPServer.MaxBodyBytes <= 0 {
		return errors.New("http_server.max_body_bytes must be positive")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return errors.New("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}

// splitList splits a comma separated value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
