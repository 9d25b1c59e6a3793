package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate clears the overrides so the host environment cannot leak in.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "GNEWS_API_KEY", "NEWSDESK_SERVER_URL", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	old := envFile
	envFile = filepath.Join(t.TempDir(), ".env")
	t.Cleanup(func() { envFile = old })
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Client.Query != "latest" || cfg.Client.Language != "en" || cfg.Client.Page != 1 {
		t.Errorf("unexpected client defaults: %+v", cfg.Client)
	}
	if cfg.GetPageSize() != 6 {
		t.Errorf("expected page size 6, got %d", cfg.GetPageSize())
	}
	if err := validate(cfg); err != nil {
		t.Errorf("embedded defaults should validate: %v", err)
	}
}

func TestTimeoutDuration(t *testing.T) {
	cfg := &Config{GNews: GNewsConfig{Timeout: "30s"}}
	if d := cfg.TimeoutDuration(); d != 30*time.Second {
		t.Errorf("expected 30s, got %v", d)
	}

	cfg.GNews.Timeout = "invalid"
	if d := cfg.TimeoutDuration(); d != 10*time.Second {
		t.Errorf("expected 10s default for invalid timeout, got %v", d)
	}
}

func TestGetPageSize(t *testing.T) {
	tests := []struct {
		input, want int
	}{
		{0, 6},
		{-3, 6},
		{9, 9},
	}
	for _, tt := range tests {
		cfg := &Config{Client: ClientConfig{PageSize: tt.input}}
		if got := cfg.GetPageSize(); got != tt.want {
			t.Errorf("GetPageSize(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestAPIKeyFallsBackToEnv(t *testing.T) {
	t.Setenv("GNEWS_API_KEY", "from-env")
	cfg := &Config{}
	if got := cfg.APIKey(); got != "from-env" {
		t.Errorf("expected env key, got %q", got)
	}
	cfg.GNews.APIKey = "from-file"
	if got := cfg.APIKey(); got != "from-file" {
		t.Errorf("expected config key, got %q", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	content := `server:
  port: 9090
client:
  language: fr
  page_size: 4
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Client.Language != "fr" || cfg.GetPageSize() != 4 {
		t.Errorf("unexpected client config: %+v", cfg.Client)
	}
	// Keys absent from the file keep their defaults
	if cfg.Client.Query != "latest" {
		t.Errorf("expected default query, got %q", cfg.Client.Query)
	}
	if cfg.GNews.BaseURL != "https://gnews.io/api/v4" {
		t.Errorf("expected default base url, got %q", cfg.GNews.BaseURL)
	}
}

func TestLoadNonexistentWritesDefaults(t *testing.T) {
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Errorf("expected defaults written to %s: %v", cfgPath, err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "8123")
	t.Setenv("GNEWS_API_KEY", "secret")
	t.Setenv("NEWSDESK_SERVER_URL", "https://news.example.com")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8123 {
		t.Errorf("expected port 8123, got %d", cfg.Server.Port)
	}
	if cfg.APIKey() != "secret" {
		t.Errorf("expected api key from env, got %q", cfg.APIKey())
	}
	if cfg.Client.ServerURL != "https://news.example.com" {
		t.Errorf("unexpected server url %q", cfg.Client.ServerURL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Logging.Level)
	}
	if cfg.ListenAddr() != ":8123" {
		t.Errorf("expected :8123, got %q", cfg.ListenAddr())
	}
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)
	// godotenv never overrides variables that are already set, even to "".
	os.Unsetenv("GNEWS_API_KEY")
	t.Cleanup(func() { os.Unsetenv("GNEWS_API_KEY") })

	if err := os.WriteFile(envFile, []byte("GNEWS_API_KEY=dotenv-key\n"), 0o644); err != nil {
		t.Fatalf("writing .env: %v", err)
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey() != "dotenv-key" {
		t.Errorf("expected key from .env, got %q", cfg.APIKey())
	}
}

func TestLoadInvalidPortEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "eighty")
	if _, err := Load(filepath.Join(t.TempDir(), "config.yaml")); err == nil {
		t.Error("expected error for non-numeric PORT")
	}
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8000},
		GNews:  GNewsConfig{BaseURL: "https://gnews.io/api/v4"},
		Client: ClientConfig{ServerURL: "http://localhost:8000", Language: "en", Page: 1, PageSize: 6},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"missing base url", func(c *Config) { c.GNews.BaseURL = "" }, true},
		{"file scheme", func(c *Config) { c.GNews.BaseURL = "file:///etc/passwd" }, true},
		{"ftp server url", func(c *Config) { c.Client.ServerURL = "ftp://example.com" }, true},
		{"http server url", func(c *Config) { c.Client.ServerURL = "http://10.0.0.1:8000" }, false},
		{"long language", func(c *Config) { c.Client.Language = "english" }, true},
		{"upper language", func(c *Config) { c.Client.Language = "EN" }, true},
		{"empty language", func(c *Config) { c.Client.Language = "" }, false},
		{"negative page", func(c *Config) { c.Client.Page = -1 }, true},
		{"negative page size", func(c *Config) { c.Client.PageSize = -1 }, true},
	}
	for _, tt := range tests {
		cfg := validConfig()
		tt.mutate(cfg)
		err := validate(cfg)
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
	}
}
