package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/issueboard/internal/models"
	"github.com/thenoetrevino/issueboard/internal/ordinal"
)

// Backends the board can persist moves to
const (
	BackendSQLite = "sqlite"
	BackendAPI    = "api"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	// Lanes is the ordered column set; empty selects the default lanes
	Lanes []string `yaml:"lanes" env:"ISSUEBOARD_LANES" envSeparator:","`

	// Backend selects where moves are persisted: sqlite or api
	Backend string `yaml:"backend" env:"ISSUEBOARD_BACKEND"`

	Database    DatabaseConfig `yaml:"database"`
	API         APIConfig      `yaml:"api"`
	Ordering    OrderingConfig `yaml:"ordering"`
	Moves       MovesConfig    `yaml:"moves"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// DatabaseConfig locates the sqlite file
type DatabaseConfig struct {
	Path string `yaml:"path" env:"ISSUEBOARD_DB_PATH"`
}

// APIConfig points at the REST issue service
type APIConfig struct {
	URL      string `yaml:"url" env:"ISSUEBOARD_API_URL"`
	Key      string `yaml:"key" env:"ISSUEBOARD_API_KEY"`
	PageSize int    `yaml:"page_size" env:"ISSUEBOARD_API_PAGE_SIZE"`
}

// OrderingConfig tunes position allocation
type OrderingConfig struct {
	Base    float64 `yaml:"base" env:"ISSUEBOARD_BASE"`
	Gap     float64 `yaml:"gap" env:"ISSUEBOARD_GAP"`
	MinGap  float64 `yaml:"min_gap" env:"ISSUEBOARD_MIN_GAP"`
	Epsilon float64 `yaml:"epsilon" env:"ISSUEBOARD_EPSILON"`
}

// MovesConfig tunes the optimistic move controller
type MovesConfig struct {
	PendingPolicy  string        `yaml:"pending_policy" env:"ISSUEBOARD_PENDING_POLICY"`
	PersistTimeout time.Duration `yaml:"persist_timeout" env:"ISSUEBOARD_PERSIST_TIMEOUT"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from the user's config directory, then applies
// ISSUEBOARD_* environment overrides.
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Defaults plus environment if we can't determine config path
		configPath = ""
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the config file at path; a missing file yields defaults
func LoadFrom(path string) (*Config, error) {
	var config Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults below
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o600) // May carry the API key
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if p := os.Getenv("ISSUEBOARD_CONFIG"); p != "" {
		return p, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "issueboard", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "issueboard", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if len(c.Lanes) == 0 {
		for _, col := range models.DefaultColumns() {
			c.Lanes = append(c.Lanes, string(col))
		}
	}
	if c.Backend == "" {
		c.Backend = BackendSQLite
	}
	if c.API.PageSize <= 0 {
		c.API.PageSize = 50
	}
	if c.Ordering.Base == 0 {
		c.Ordering.Base = models.DefaultBasePosition
	}
	if c.Ordering.Gap == 0 {
		c.Ordering.Gap = models.DefaultPositionGap
	}
	if c.Ordering.MinGap == 0 {
		c.Ordering.MinGap = models.DefaultMinPositionGap
	}
	if c.Ordering.Epsilon == 0 {
		c.Ordering.Epsilon = models.DefaultNoChangeEpsilon
	}
	if c.Moves.PendingPolicy == "" {
		c.Moves.PendingPolicy = "reject"
	}
	if c.Moves.PersistTimeout == 0 {
		c.Moves.PersistTimeout = 10 * time.Second
	}
	c.ColorScheme.ApplyDefaults()
}

// Validate reports the first inconsistent setting
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Lanes))
	for _, lane := range c.Lanes {
		key := strings.ToLower(strings.TrimSpace(lane))
		if key == "" {
			return fmt.Errorf("%w: empty lane name", ErrInvalidConfig)
		}
		if seen[key] {
			return fmt.Errorf("%w: duplicate lane %q", ErrInvalidConfig, lane)
		}
		seen[key] = true
	}

	switch c.Backend {
	case BackendSQLite:
	case BackendAPI:
		if c.API.URL == "" {
			return fmt.Errorf("%w: backend %q needs api.url", ErrInvalidConfig, c.Backend)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q (must be: sqlite, api)", ErrInvalidConfig, c.Backend)
	}

	if c.Ordering.Gap <= 0 {
		return fmt.Errorf("%w: ordering.gap must be positive", ErrInvalidConfig)
	}
	if c.Ordering.MinGap <= 0 || c.Ordering.MinGap >= c.Ordering.Gap {
		return fmt.Errorf("%w: ordering.min_gap must be in (0, gap)", ErrInvalidConfig)
	}
	if c.Ordering.Epsilon < 0 {
		return fmt.Errorf("%w: ordering.epsilon cannot be negative", ErrInvalidConfig)
	}

	switch strings.ToLower(c.Moves.PendingPolicy) {
	case "reject", "supersede":
	default:
		return fmt.Errorf("%w: unknown pending_policy %q (must be: reject, supersede)", ErrInvalidConfig, c.Moves.PendingPolicy)
	}
	if c.Moves.PersistTimeout < 0 {
		return fmt.Errorf("%w: moves.persist_timeout cannot be negative", ErrInvalidConfig)
	}
	return nil
}

// Columns returns the lanes as board columns
func (c *Config) Columns() []models.Column {
	out := make([]models.Column, len(c.Lanes))
	for i, lane := range c.Lanes {
		out[i] = models.Column(strings.TrimSpace(lane))
	}
	return out
}

// Allocator returns the position allocator described by the ordering settings
func (c *Config) Allocator() ordinal.Allocator {
	return ordinal.New(c.Ordering.Base, c.Ordering.Gap, c.Ordering.MinGap)
}
