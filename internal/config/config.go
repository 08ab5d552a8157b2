package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/formselect/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "formselect.json"

	// DefaultPort is the default render server port.
	DefaultPort = 8080

	// DefaultHost is the default render server host.
	DefaultHost = "localhost"

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "formselect"

	// DefaultMetricsPath is where metrics are served.
	DefaultMetricsPath = "/metrics"

	// DefaultTracerName is the default OpenTelemetry tracer name.
	DefaultTracerName = "formselect"

	// DefaultIDReplacement replaces characters that are not valid in ids.
	DefaultIDReplacement = "_"
)

// Config represents the complete formselect.json configuration.
type Config struct {
	// Server contains HTTP render server settings.
	Server ServerConfig `json:"server,omitempty"`

	// Render contains markup settings.
	Render RenderConfig `json:"render,omitempty"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Tracing contains OpenTelemetry settings.
	Tracing TracingConfig `json:"tracing,omitempty"`

	// Publish configures where rendered fragments can be written.
	Publish PublishConfig `json:"publish,omitempty"`

	// Log contains logging settings.
	Log LogConfig `json:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// ReadTimeout bounds reading a request (e.g., "10s").
	ReadTimeout string `json:"readTimeout,omitempty"`

	// WriteTimeout bounds writing a response (e.g., "10s").
	WriteTimeout string `json:"writeTimeout,omitempty"`

	// MaxBodyBytes limits render request bodies.
	MaxBodyBytes int64 `json:"maxBodyBytes,omitempty"`
}

// RenderConfig contains markup settings.
type RenderConfig struct {
	// IDReplacement replaces characters that are not valid in generated ids.
	IDReplacement string `json:"idReplacement,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled exposes metrics and records render statistics.
	Enabled bool `json:"enabled,omitempty"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`

	// Subsystem is inserted between namespace and metric name.
	Subsystem string `json:"subsystem,omitempty"`

	// ConstLabels are added to every metric (e.g., {"region": "eu"}).
	ConstLabels map[string]string `json:"constLabels,omitempty"`

	// Buckets are the request duration histogram buckets in seconds.
	// Must be strictly increasing. Empty uses the Prometheus defaults.
	Buckets []float64 `json:"buckets,omitempty"`

	// Path is the URL path metrics are served on.
	Path string `json:"path,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	// Enabled wraps every request in a server span.
	Enabled bool `json:"enabled,omitempty"`

	// TracerName is the name passed to otel.Tracer.
	TracerName string `json:"tracerName,omitempty"`
}

// PublishConfig configures fragment publishing.
type PublishConfig struct {
	// Dir is a local directory fragments are written to.
	Dir string `json:"dir,omitempty"`

	// S3 configures an S3 bucket. Takes precedence over Dir when Bucket
	// is set.
	S3 S3Config `json:"s3,omitempty"`
}

// S3Config contains S3 publishing settings.
type S3Config struct {
	Bucket       string `json:"bucket,omitempty"`
	Region       string `json:"region,omitempty"`
	Endpoint     string `json:"endpoint,omitempty"`
	Prefix       string `json:"prefix,omitempty"`
	UsePathStyle bool   `json:"usePathStyle,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `json:"level,omitempty"`

	// Format is "text" or "json".
	Format string `json:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         DefaultHost,
			Port:         DefaultPort,
			ReadTimeout:  "10s",
			WriteTimeout: "10s",
			MaxBodyBytes: 1 << 20,
		},
		Render: RenderConfig{
			IDReplacement: DefaultIDReplacement,
		},
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
			Path:      DefaultMetricsPath,
		},
		Tracing: TracingConfig{
			TracerName: DefaultTracerName,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for formselect.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E121").
				WithDetail("No " + ConfigFileName + " found at " + path).
				WithSuggestion("Create " + ConfigFileName + " or run without --config to use defaults")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that the file is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads path when it is not empty and falls back to the
// defaults otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return New(), nil
	}
	return LoadFile(path)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = "10s"
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = "10s"
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = 1 << 20
	}

	// An empty replacement falls back to the default, never to "no
	// replacement".
	if c.Render.IDReplacement == "" {
		c.Render.IDReplacement = DefaultIDReplacement
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E122").
			WithDetail("Port must be between 0 and 65535, got " + strconv.Itoa(c.Server.Port))
	}
	if _, err := c.ReadTimeout(); err != nil {
		return errors.New("E120").WithDetail("server.readTimeout: " + err.Error())
	}
	if _, err := c.WriteTimeout(); err != nil {
		return errors.New("E120").WithDetail("server.writeTimeout: " + err.Error())
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("E120").WithDetail(`log.format must be "text" or "json"`)
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("E120").WithDetail("metrics.path must start with /")
	}
	for i := 1; i < len(c.Metrics.Buckets); i++ {
		if c.Metrics.Buckets[i] <= c.Metrics.Buckets[i-1] {
			return errors.New("E120").WithDetail("metrics.buckets must be strictly increasing")
		}
	}
	return nil
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// ReadTimeout parses Server.ReadTimeout.
func (c *Config) ReadTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Server.ReadTimeout)
}

// WriteTimeout parses Server.WriteTimeout.
func (c *Config) WriteTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Server.WriteTimeout)
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.New("E123").
		WithDetail("Unknown log level " + strconv.Quote(c.Log.Level))
}

// HasS3 reports whether an S3 bucket is configured for publishing.
func (c *Config) HasS3() bool {
	return c.Publish.S3.Bucket != ""
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}
