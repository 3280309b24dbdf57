package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.HTTP.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.HTTP.Port)
	}
	if cfg.Neo4j.URI != "bolt://localhost:7687" {
		t.Errorf("unexpected default URI: %s", cfg.Neo4j.URI)
	}
	if cfg.Neo4j.Username != "neo4j" {
		t.Errorf("unexpected default username: %s", cfg.Neo4j.Username)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("unexpected default log level: %s", cfg.Logging.Level)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")
	t.Setenv("NEO4J_URI", "neo4j://db.internal:7687")
	t.Setenv("NEO4J_MAX_CONNECTIONS", "25")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.HTTP.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeout != 30*time.Second {
		t.Errorf("expected 30s read timeout, got %v", cfg.HTTP.ReadTimeout)
	}
	if cfg.Neo4j.URI != "neo4j://db.internal:7687" {
		t.Errorf("unexpected URI: %s", cfg.Neo4j.URI)
	}
	if cfg.Neo4j.MaxConnections != 25 {
		t.Errorf("expected 25 max connections, got %d", cfg.Neo4j.MaxConnections)
	}
	if len(cfg.HTTP.AllowedOrigins) != 2 || cfg.HTTP.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("unexpected allowed origins: %v", cfg.HTTP.AllowedOrigins)
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	for _, value := range []string{"abc", "0", "70000"} {
		t.Setenv("SERVER_PORT", value)
		if _, err := Load(); err == nil {
			t.Errorf("expected error for port %q", value)
		}
	}
}
