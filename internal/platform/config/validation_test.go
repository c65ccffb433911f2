package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a fully valid configuration for testing.
func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "feeling-quotes",
			Version:     "1.0.0",
			Environment: "local",
		},
		Server: ServerConfig{
			Port:            3000,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxRequestSize:  1 << 20,
			RequestTimeout:  5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Database: DatabaseConfig{
			Path:        "quotes.db",
			BusyTimeout: 5 * time.Second,
		},
		Static: StaticConfig{
			Dir: "web",
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing app name",
			mutate:  func(c *Config) { c.App.Name = "" },
			wantErr: "app.name is required",
		},
		{
			name:    "unknown environment",
			mutate:  func(c *Config) { c.App.Environment = "staging" },
			wantErr: "app.environment must be one of: local dev qa prod test",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port must be at most 65535",
		},
		{
			name:    "read timeout too short",
			mutate:  func(c *Config) { c.Server.ReadTimeout = time.Millisecond },
			wantErr: "server.read_timeout must be at least 1s",
		},
		{
			name:    "missing max request size",
			mutate:  func(c *Config) { c.Server.MaxRequestSize = 0 },
			wantErr: "server.max_request_size is required",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: "log.level must be one of: trace debug info warn error",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "log.format must be one of",
		},
		{
			name: "log file enabled without path",
			mutate: func(c *Config) {
				c.Log.File.Enabled = true
				c.Log.File.Path = ""
			},
			wantErr: "log.file.path is required when Enabled true",
		},
		{
			name: "telemetry enabled without endpoint",
			mutate: func(c *Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.ServiceName = "feeling-quotes"
			},
			wantErr: "telemetry.endpoint is required when Enabled true",
		},
		{
			name: "telemetry endpoint not host:port",
			mutate: func(c *Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.ServiceName = "feeling-quotes"
				c.Telemetry.Endpoint = "collector"
			},
			wantErr: "telemetry.endpoint must be host:port",
		},
		{
			name:    "sampling rate above one",
			mutate:  func(c *Config) { c.Telemetry.SamplingRate = 1.5 },
			wantErr: "telemetry.sampling_rate must be at most 1",
		},
		{
			name:    "missing database path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: "database.path is required",
		},
		{
			name:    "negative pool size",
			mutate:  func(c *Config) { c.Database.MaxOpenConns = -1 },
			wantErr: "database.max_open_conns must be at least 0",
		},
		{
			name:    "missing static dir",
			mutate:  func(c *Config) { c.Static.Dir = "" },
			wantErr: "static is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate_TelemetryEnabled(t *testing.T) {
	cfg := validConfig()
	cfg.Telemetry = TelemetryConfig{
		Enabled:      true,
		Endpoint:     "otel-collector:4317",
		ServiceName:  "feeling-quotes",
		SamplingRate: 0.5,
	}

	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := &Config{
		App: AppConfig{
			Environment: "invalid",
		},
		Server: ServerConfig{
			Port: -1,
		},
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "app.name")
	assert.Contains(t, errStr, "app.version")
	assert.Contains(t, errStr, "database is required")
}

func TestFormatFieldPath(t *testing.T) {
	tests := []struct {
		namespace string
		expected  string
	}{
		{"Config.server.port", "server.port"},
		{"Config.app.name", "app.name"},
		{"Config.server.max_request_size", "server.max_request_size"},
		{"Config.log.file.path", "log.file.path"},
		{"Port", "port"},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFieldPath(tt.namespace))
		})
	}
}
