// File: internal/config/config_test.go
package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Constructor and Defaults Tests --

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	// Verify a few key defaults to ensure the mechanism works.
	assert.Equal(t, "info", cfg.Logger().Level)
	assert.Equal(t, "perspective-pom", cfg.Logger().ServiceName)
	assert.True(t, cfg.Browser().Headless)
	assert.Equal(t, 1920, cfg.Browser().WindowWidth)
	assert.Equal(t, 10*time.Second, cfg.Wait().Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Wait().PollInterval)
	assert.Equal(t, "http://localhost:8088", cfg.Session().GatewayURL)
	assert.Equal(t, 60*time.Second, cfg.Session().PageLoadTimeout)
}

// -- Validation Logic Tests --

func TestConfigValidation(t *testing.T) {
	// Start with a valid default config.
	cfg := NewDefaultConfig()
	err := cfg.Validate()
	assert.NoError(t, err, "A valid config should not produce a validation error")

	// Test Case: Invalid Poll Interval
	cfgInvalidPoll := *cfg
	cfgInvalidPoll.WaitCfg.PollInterval = 0
	err = cfgInvalidPoll.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "wait.poll_interval must be a positive duration")

	// Test Case: Negative Timeout
	cfgInvalidTimeout := *cfg
	cfgInvalidTimeout.WaitCfg.Timeout = -time.Second
	err = cfgInvalidTimeout.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "wait.timeout must not be negative")

	// Test Case: Missing Gateway URL
	cfgMissingGateway := *cfg
	cfgMissingGateway.SessionCfg.GatewayURL = ""
	err = cfgMissingGateway.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "session.gateway_url is a required configuration field")

	// Test Case: Negative Window Dimensions
	cfgInvalidWindow := *cfg
	cfgInvalidWindow.BrowserCfg.WindowHeight = -1
	err = cfgInvalidWindow.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "browser window dimensions must not be negative")
}

// -- Factory Function Tests --

func TestNewConfigFromViper(t *testing.T) {
	t.Run("Successful Load from YAML", func(t *testing.T) {
		yamlBytes := []byte(`
session:
  gateway_url: "http://gateway.plant.local:8088"
  project_name: "LineOverview"
wait:
  timeout: 4s
`)
		v := viper.New()
		SetDefaults(v)
		v.SetConfigType("yaml")
		err := v.ReadConfig(bytes.NewBuffer(yamlBytes))
		require.NoError(t, err)

		cfg, err := NewConfigFromViper(v)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "http://gateway.plant.local:8088", cfg.Session().GatewayURL)
		assert.Equal(t, "LineOverview", cfg.Session().ProjectName)
		assert.Equal(t, 4*time.Second, cfg.Wait().Timeout)
		// Check a default value was also loaded.
		assert.Equal(t, "info", cfg.Logger().Level)
	})

	t.Run("Validation Failure", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.Set("wait.poll_interval", "0s") // Intentionally invalid

		cfg, err := NewConfigFromViper(v)
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Contains(t, err.Error(), "wait.poll_interval must be a positive duration")
	})
}

// -- Struct and Mapping Tests --

func TestConfigStructureMapping(t *testing.T) {
	yamlInput := `
logger:
  level: debug
  log_file: /var/log/app.log
browser:
  headless: false
  extra_flags:
    disable-gpu: true
wait:
  settle_time: 250ms
`
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	err := v.ReadConfig(bytes.NewBufferString(yamlInput))
	require.NoError(t, err)

	var cfg Config
	err = v.Unmarshal(&cfg)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger().Level)
	assert.Equal(t, "/var/log/app.log", cfg.Logger().LogFile)
	assert.False(t, cfg.Browser().Headless)
	assert.Equal(t, 250*time.Millisecond, cfg.Wait().SettleTime)
	require.NotNil(t, cfg.Browser().ExtraFlags)
	assert.Equal(t, true, cfg.Browser().ExtraFlags["disable-gpu"])
}
