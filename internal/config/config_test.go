package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 5000 {
		t.Errorf("unexpected listen address %s", cfg.Server.Addr())
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("expected 15s read timeout, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.MaxBodyBytes != 65536 {
		t.Errorf("expected 64KiB body limit, got %d", cfg.Server.MaxBodyBytes)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("unexpected origins %v", cfg.CORS.AllowedOrigins)
	}
	if !cfg.Metrics.IsEnabled() || !cfg.Stream.IsEnabled() {
		t.Error("metrics and stream should default to enabled")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config %+v", cfg.Log)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  port: 9090
  read_timeout: 5s
cors:
  allowed_origins: ["https://hr.example.com"]
log:
  level: debug
metrics:
  enabled: false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("STREAM_ENABLED", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("env should override file port, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("expected 5s read timeout from file, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.CORS.AllowedOrigins[0] != "https://hr.example.com" {
		t.Errorf("unexpected origins %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Log.Level)
	}
	if cfg.Metrics.IsEnabled() {
		t.Error("metrics disabled in file")
	}
	if cfg.Stream.IsEnabled() {
		t.Error("stream disabled by env")
	}
}

func TestLoad_CORSFromEnv(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.CORS.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("unexpected origin %q", cfg.CORS.AllowedOrigins[1])
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port out of range", map[string]string{"SERVER_PORT": "70000"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "verbose"}},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}},
		{"negative body limit", map[string]string{"SERVER_MAX_BODY_BYTES": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(""); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [unterminated"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
