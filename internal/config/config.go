package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/language"

	"github.com/glint-go/glint/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "glint.json"

	// DefaultAddress is the default server listen address.
	DefaultAddress = ":8080"

	// DefaultLocale is the default formatting locale.
	DefaultLocale = "en-US"

	// DefaultNamespace is the default metric namespace.
	DefaultNamespace = "glint"
)

// Config represents the complete glint.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Server contains server and session settings.
	Server ServerConfig `json:"server,omitempty"`

	// Format contains locale-aware formatting settings.
	Format FormatConfig `json:"format,omitempty"`

	// Interact contains interaction tuning knobs.
	Interact InteractConfig `json:"interact,omitempty"`

	// Log contains logging settings.
	Log LogConfig `json:"log,omitempty"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains server and session settings. Durations are
// written as Go duration strings ("30s", "1m").
type ServerConfig struct {
	// Address is the listen address.
	Address string `json:"address,omitempty"`

	// ReadTimeout bounds how long a live connection may stay silent.
	ReadTimeout string `json:"readTimeout,omitempty"`

	// WriteTimeout bounds a single frame write.
	WriteTimeout string `json:"writeTimeout,omitempty"`

	// Heartbeat is the ping interval on live connections.
	Heartbeat string `json:"heartbeat,omitempty"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout string `json:"shutdownTimeout,omitempty"`
}

// FormatConfig contains locale-aware formatting settings.
type FormatConfig struct {
	// Locale is a BCP 47 tag ("en-US", "de-DE") used for currency
	// formatting.
	Locale string `json:"locale,omitempty"`

	// DateLayout is a Go reference-time layout for date formatting.
	DateLayout string `json:"dateLayout,omitempty"`
}

// InteractConfig contains interaction tuning knobs.
type InteractConfig struct {
	// SearchWindow is the search debounce window.
	SearchWindow string `json:"searchWindow,omitempty"`

	// Breakpoint is the viewport width in pixels below which the
	// sidebar collapses.
	Breakpoint int `json:"breakpoint,omitempty"`

	// AutoHide is the default alert auto-hide delay.
	AutoHide string `json:"autoHide,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected and served.
	Enabled bool `json:"enabled,omitempty"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Server: ServerConfig{
			Address:         DefaultAddress,
			ReadTimeout:     "60s",
			WriteTimeout:    "10s",
			Heartbeat:       "30s",
			ShutdownTimeout: "30s",
		},
		Format: FormatConfig{
			Locale:     DefaultLocale,
			DateLayout: "Jan 2, 2006",
		},
		Interact: InteractConfig{
			SearchWindow: "300ms",
			Breakpoint:   768,
			AutoHide:     "5s",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for glint.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path. Absent
// keys keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No glint.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'glint init' or create glint.json manually")
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse glint.json: " + err.Error()).
			WithSuggestion("Check that glint.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E101").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E101").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = DefaultAddress
	}
	if c.Format.Locale == "" {
		c.Format.Locale = DefaultLocale
	}
	if c.Format.DateLayout == "" {
		c.Format.DateLayout = "Jan 2, 2006"
	}
	if c.Interact.Breakpoint == 0 {
		c.Interact.Breakpoint = 768
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := language.Parse(c.Format.Locale); err != nil {
		return errors.New("E102").
			WithDetail("Unknown locale " + c.Format.Locale).
			WithSuggestion("Use a BCP 47 tag such as \"en-US\" or \"de-DE\"")
	}
	if c.Interact.Breakpoint < 0 {
		return errors.New("E102").
			WithDetail("interact.breakpoint must not be negative")
	}
	for _, d := range []struct {
		key string
		val string
	}{
		{"server.readTimeout", c.Server.ReadTimeout},
		{"server.writeTimeout", c.Server.WriteTimeout},
		{"server.heartbeat", c.Server.Heartbeat},
		{"server.shutdownTimeout", c.Server.ShutdownTimeout},
		{"interact.searchWindow", c.Interact.SearchWindow},
		{"interact.autoHide", c.Interact.AutoHide},
	} {
		if d.val == "" {
			continue
		}
		if _, err := time.ParseDuration(d.val); err != nil {
			return errors.New("E102").
				WithDetail(d.key + " is not a valid duration: " + d.val).
				WithSuggestion("Use a Go duration string such as \"300ms\" or \"30s\"")
		}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("E102").
			WithDetail("log.level must be one of debug, info, warn, error")
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("E102").
			WithDetail("log.format must be text or json")
	}
	return nil
}

// Language returns the parsed formatting locale. Unparseable tags fall
// back to English; Validate reports them.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Format.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a logger per the log settings, writing to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel()}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SearchWindow returns the parsed debounce window.
func (c *Config) SearchWindow() time.Duration {
	return parseDuration(c.Interact.SearchWindow, 300*time.Millisecond)
}

// AutoHideDelay returns the parsed default alert delay.
func (c *Config) AutoHideDelay() time.Duration {
	return parseDuration(c.Interact.AutoHide, 5*time.Second)
}

// ReadTimeout returns the parsed connection read timeout.
func (c *Config) ReadTimeout() time.Duration {
	return parseDuration(c.Server.ReadTimeout, 60*time.Second)
}

// WriteTimeout returns the parsed frame write timeout.
func (c *Config) WriteTimeout() time.Duration {
	return parseDuration(c.Server.WriteTimeout, 10*time.Second)
}

// Heartbeat returns the parsed ping interval.
func (c *Config) Heartbeat() time.Duration {
	return parseDuration(c.Server.Heartbeat, 30*time.Second)
}

// ShutdownTimeout returns the parsed graceful shutdown bound.
func (c *Config) ShutdownTimeout() time.Duration {
	return parseDuration(c.Server.ShutdownTimeout, 30*time.Second)
}

// parseDuration parses a duration string, falling back when the string
// is empty or malformed.
func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing glint.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E100").
				WithDetail("No glint.json found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'glint init' to create one")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working
// directory, walking up to the project root.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
