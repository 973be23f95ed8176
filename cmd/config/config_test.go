package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_EXP_TIME", "")
	t.Setenv("DB_PORT", "not-a-number")

	cfg := Load()

	if cfg.Auth.SessionExpTime != 7*24*time.Hour {
		t.Fatalf("SessionExpTime = %v, want 168h", cfg.Auth.SessionExpTime)
	}
	if cfg.Database.Port != 3306 {
		t.Fatalf("Database.Port = %d, want fallback 3306", cfg.Database.Port)
	}
	if cfg.Checkout.CartPath != "/user/cart" {
		t.Fatalf("CartPath = %q", cfg.Checkout.CartPath)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://shop:9000")
	t.Setenv("RABBITMQ_ENABLED", "true")
	t.Setenv("BACKEND_TIMEOUT", "3s")

	cfg := Load()

	if cfg.Backend.BaseURL != "http://shop:9000" {
		t.Fatalf("BaseURL = %q", cfg.Backend.BaseURL)
	}
	if !cfg.RabbitMQ.Enabled {
		t.Fatal("RabbitMQ.Enabled should be true")
	}
	if cfg.Backend.Timeout != 3*time.Second {
		t.Fatalf("Timeout = %v", cfg.Backend.Timeout)
	}
}

func TestConfig_GetDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{User: "u", Password: "p", Host: "h", Port: 3307, Name: "db"}}
	want := "u:p@tcp(h:3307)/db?parseTime=true&loc=UTC"
	if got := cfg.GetDSN(); got != want {
		t.Fatalf("GetDSN() = %q, want %q", got, want)
	}
}
