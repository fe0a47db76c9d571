// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Browser() BrowserConfig
	Wait() WaitConfig
	Session() SessionConfig

	// Browser Setters
	SetBrowserHeadless(bool)
	SetBrowserNoSandbox(bool)

	// Wait Setters
	SetWaitTimeout(d time.Duration)
	SetWaitPollInterval(d time.Duration)

	// Session Setters
	SetSessionGatewayURL(url string)
}

// Config holds the entire application configuration. Access normally goes
// through the Interface's getter methods; the fields stay exported so viper
// can unmarshal into them.
type Config struct {
	LoggerCfg  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	BrowserCfg BrowserConfig `mapstructure:"browser" yaml:"browser"`
	WaitCfg    WaitConfig    `mapstructure:"wait" yaml:"wait"`
	SessionCfg SessionConfig `mapstructure:"session" yaml:"session"`
}

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig   { return c.LoggerCfg }
func (c *Config) Browser() BrowserConfig { return c.BrowserCfg }
func (c *Config) Wait() WaitConfig       { return c.WaitCfg }
func (c *Config) Session() SessionConfig { return c.SessionCfg }

// --- Interface Method Implementations (Setters) ---

func (c *Config) SetBrowserHeadless(b bool)  { c.BrowserCfg.Headless = b }
func (c *Config) SetBrowserNoSandbox(b bool) { c.BrowserCfg.NoSandbox = b }

func (c *Config) SetWaitTimeout(d time.Duration)      { c.WaitCfg.Timeout = d }
func (c *Config) SetWaitPollInterval(d time.Duration) { c.WaitCfg.PollInterval = d }

func (c *Config) SetSessionGatewayURL(url string) { c.SessionCfg.GatewayURL = url }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// BrowserConfig holds settings for the headless browser instance.
type BrowserConfig struct {
	Headless     bool           `mapstructure:"headless" yaml:"headless"`
	NoSandbox    bool           `mapstructure:"no_sandbox" yaml:"no_sandbox"`
	UserAgent    string         `mapstructure:"user_agent" yaml:"user_agent"`
	WindowWidth  int            `mapstructure:"window_width" yaml:"window_width"`
	WindowHeight int            `mapstructure:"window_height" yaml:"window_height"`
	ExtraFlags   map[string]any `mapstructure:"extra_flags" yaml:"extra_flags"`
}

// WaitConfig tunes DOM polling behavior across all components.
type WaitConfig struct {
	Timeout      time.Duration `mapstructure:"timeout" yaml:"timeout"`
	PollInterval time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`
	SettleTime   time.Duration `mapstructure:"settle_time" yaml:"settle_time"`
}

// SessionConfig describes the Perspective session under automation.
type SessionConfig struct {
	GatewayURL         string        `mapstructure:"gateway_url" yaml:"gateway_url"`
	ProjectName        string        `mapstructure:"project_name" yaml:"project_name"`
	PageLoadTimeout    time.Duration `mapstructure:"page_load_timeout" yaml:"page_load_timeout"`
	NavigationSettle   time.Duration `mapstructure:"navigation_settle" yaml:"navigation_settle"`
	CredentialsProfile string        `mapstructure:"credentials_profile" yaml:"credentials_profile"`
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "perspective-pom")
	v.SetDefault("logger.log_file", "perspective-pom.log")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Browser --
	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.no_sandbox", false)
	v.SetDefault("browser.window_width", 1920)
	v.SetDefault("browser.window_height", 1080)

	// -- Wait --
	v.SetDefault("wait.timeout", "10s")
	v.SetDefault("wait.poll_interval", "500ms")
	v.SetDefault("wait.settle_time", "500ms")

	// -- Session --
	v.SetDefault("session.gateway_url", "http://localhost:8088")
	v.SetDefault("session.project_name", "")
	v.SetDefault("session.page_load_timeout", "60s")
	v.SetDefault("session.navigation_settle", "2s")
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if c.WaitCfg.Timeout < 0 {
		return fmt.Errorf("wait.timeout must not be negative")
	}
	if c.WaitCfg.PollInterval <= 0 {
		return fmt.Errorf("wait.poll_interval must be a positive duration")
	}
	if c.BrowserCfg.WindowWidth < 0 || c.BrowserCfg.WindowHeight < 0 {
		return fmt.Errorf("browser window dimensions must not be negative")
	}
	if c.SessionCfg.GatewayURL == "" {
		return fmt.Errorf("session.gateway_url is a required configuration field")
	}
	return nil
}
