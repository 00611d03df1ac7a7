package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Availability source modes
const (
	AvailabilityGenerated = "generated"
	AvailabilityLive      = "live"
)

// Submission transport modes
const (
	SubmissionMailRelay       = "mailrelay"
	SubmissionMailRelayLegacy = "mailrelay-legacy"
	SubmissionSendGrid        = "sendgrid"
	SubmissionSimplyBook      = "simplybook"
)

var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config is the full service configuration loaded from config.toml.
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Sessions     SessionsConfig     `toml:"sessions"`
	Availability AvailabilityConfig `toml:"availability"`
	CalendarFeed CalendarFeedConfig `toml:"calendar_feed"`
	SimplyBook   SimplyBookConfig   `toml:"simplybook"`
	Submission   SubmissionConfig   `toml:"submission"`
	SendGrid     SendGridConfig     `toml:"sendgrid"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type SessionsConfig struct {
	IdleTTLMinutes int `toml:"idle_ttl_minutes"`
}

// AvailabilityConfig selects and tunes the availability source. The opening
// policy fields apply only to the generated source; the live source takes its
// schedule from the scheduling system.
type AvailabilityConfig struct {
	Mode          string  `toml:"mode"`
	OpenHour      int     `toml:"open_hour"`
	LastStartHour int     `toml:"last_start_hour"`
	PeakStartHour int     `toml:"peak_start_hour"`
	OffPeakPrice  float64 `toml:"off_peak_price"`
	PeakPrice     float64 `toml:"peak_price"`
}

type CalendarFeedConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

type SimplyBookConfig struct {
	APIURL       string `toml:"api_url"`
	CompanyLogin string `toml:"company_login"`
	Login        string `toml:"login"`
	Password     string `toml:"password"` // supports ${ENV_VAR} expansion
	Timeout      int    `toml:"timeout"`  // seconds
}

// SubmissionConfig selects the submission transport. SinkURL applies to the
// mail-relay modes; HoneypotField applies to the legacy form-encoded mode.
type SubmissionConfig struct {
	Mode          string `toml:"mode"`
	SinkURL       string `toml:"sink_url"`
	Timeout       int    `toml:"timeout"` // seconds
	HoneypotField string `toml:"honeypot_field"`
}

type SendGridConfig struct {
	APIKey    string `toml:"api_key"` // supports ${ENV_VAR} expansion
	FromEmail string `toml:"from_email"`
	FromName  string `toml:"from_name"`
	ToEmail   string `toml:"to_email"`
}

// Load reads and validates the configuration file, expanding ${ENV_VAR}
// references in credential fields and applying defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	cfg.SimplyBook.Password = os.ExpandEnv(cfg.SimplyBook.Password)
	cfg.SendGrid.APIKey = os.ExpandEnv(cfg.SendGrid.APIKey)

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "studio-booking-service"
	}
	if c.Sessions.IdleTTLMinutes == 0 {
		c.Sessions.IdleTTLMinutes = 120
	}
	if c.Availability.Mode == "" {
		c.Availability.Mode = AvailabilityGenerated
	}
	if c.Availability.OpenHour == 0 {
		c.Availability.OpenHour = 9
	}
	if c.Availability.LastStartHour == 0 {
		c.Availability.LastStartHour = 21
	}
	if c.Availability.PeakStartHour == 0 {
		c.Availability.PeakStartHour = 18
	}
	if c.Availability.OffPeakPrice == 0 {
		c.Availability.OffPeakPrice = 20
	}
	if c.Availability.PeakPrice == 0 {
		c.Availability.PeakPrice = 25
	}
	if c.CalendarFeed.Timeout == 0 {
		c.CalendarFeed.Timeout = 10
	}
	if c.SimplyBook.APIURL == "" {
		c.SimplyBook.APIURL = "https://user-api.simplybook.me"
	}
	if c.SimplyBook.Login == "" {
		c.SimplyBook.Login = "admin"
	}
	if c.SimplyBook.Timeout == 0 {
		c.SimplyBook.Timeout = 10
	}
	if c.Submission.Mode == "" {
		c.Submission.Mode = SubmissionMailRelay
	}
	if c.Submission.Timeout == 0 {
		c.Submission.Timeout = 15
	}
	if c.Submission.HoneypotField == "" {
		c.Submission.HoneypotField = "website"
	}
}

func (c *Config) validate() error {
	switch c.Availability.Mode {
	case AvailabilityGenerated:
	case AvailabilityLive:
		if c.SimplyBook.CompanyLogin == "" || c.SimplyBook.Password == "" {
			return fmt.Errorf("%w: availability.mode=live requires simplybook credentials", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown availability.mode %q", ErrInvalidConfig, c.Availability.Mode)
	}

	if c.Availability.OpenHour >= c.Availability.LastStartHour {
		return fmt.Errorf("%w: availability.open_hour must precede last_start_hour", ErrInvalidConfig)
	}

	switch c.Submission.Mode {
	case SubmissionMailRelay, SubmissionMailRelayLegacy:
		if c.Submission.SinkURL == "" {
			return fmt.Errorf("%w: submission.mode=%s requires submission.sink_url", ErrInvalidConfig, c.Submission.Mode)
		}
	case SubmissionSendGrid:
		if c.SendGrid.APIKey == "" || c.SendGrid.ToEmail == "" {
			return fmt.Errorf("%w: submission.mode=sendgrid requires sendgrid.api_key and sendgrid.to_email", ErrInvalidConfig)
		}
	case SubmissionSimplyBook:
		if c.SimplyBook.CompanyLogin == "" || c.SimplyBook.Password == "" {
			return fmt.Errorf("%w: submission.mode=simplybook requires simplybook credentials", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown submission.mode %q", ErrInvalidConfig, c.Submission.Mode)
	}

	if c.CalendarFeed.URL == "" {
		return fmt.Errorf("%w: calendar_feed.url is required", ErrInvalidConfig)
	}

	return nil
}
