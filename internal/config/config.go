package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Chackochi310/News/internal/logger"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// envFile is loaded before environment overrides are applied. A missing file
// is not an error.
var envFile = ".env"

type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type GNewsConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Timeout string `yaml:"timeout"`
}

// ClientConfig drives the terminal frontend and the list command.
type ClientConfig struct {
	ServerURL string `yaml:"server_url"`
	Query     string `yaml:"query"`
	Language  string `yaml:"language"`
	Page      int    `yaml:"page"`
	PageSize  int    `yaml:"page_size"`
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	GNews   GNewsConfig   `yaml:"gnews"`
	Client  ClientConfig  `yaml:"client"`
	Logging logger.Config `yaml:"logging"`
}

// APIKey returns the GNews token from config, falling back to GNEWS_API_KEY.
func (c *Config) APIKey() string {
	if c.GNews.APIKey != "" {
		return c.GNews.APIKey
	}
	return os.Getenv("GNEWS_API_KEY")
}

func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.GNews.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// GetPageSize returns the page length, defaulting to 6.
func (c *Config) GetPageSize() int {
	if c.Client.PageSize <= 0 {
		return 6
	}
	return c.Client.PageSize
}

func (c *Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "newsdesk", "config.yaml")
}

// LogPath is where the TUI writes its logs, keeping them off the screen.
func LogPath() string {
	return filepath.Join(xdg.StateHome, "newsdesk", "newsdesk.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path on top of the embedded defaults, then
// applies .env and environment overrides. A missing file is created from
// the defaults on a best-effort basis.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Non-fatal: the embedded defaults still apply
		_ = writeDefaults(path)
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := loadEnvFile(); err != nil {
		return nil, err
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func loadEnvFile() error {
	err := godotenv.Load(envFile)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", envFile, err)
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("GNEWS_API_KEY"); v != "" {
		cfg.GNews.APIKey = v
	}
	if v := os.Getenv("NEWSDESK_SERVER_URL"); v != "" {
		cfg.Client.ServerURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

var languageCode = regexp.MustCompile(`^[a-z]{2}$`)

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if err := validateHTTPURL("gnews.base_url", cfg.GNews.BaseURL); err != nil {
		return err
	}
	if err := validateHTTPURL("client.server_url", cfg.Client.ServerURL); err != nil {
		return err
	}
	if cfg.Client.Language != "" && !languageCode.MatchString(cfg.Client.Language) {
		return fmt.Errorf("client.language must be a two-letter code, got %q", cfg.Client.Language)
	}
	if cfg.Client.Page < 0 {
		return fmt.Errorf("client.page must not be negative, got %d", cfg.Client.Page)
	}
	if cfg.Client.PageSize < 0 {
		return fmt.Errorf("client.page_size must not be negative, got %d", cfg.Client.PageSize)
	}
	return nil
}

func validateHTTPURL(field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: invalid url: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s: url scheme must be http or https, got %q", field, u.Scheme)
	}
	return nil
}
