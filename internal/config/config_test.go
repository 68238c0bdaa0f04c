package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"ORDER_SERVICE_ADDR", "STORE_DRIVER", "FRONTEND_URL", "REQUEST_TIMEOUT"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.OrderSvcAddr != ":8082" {
		t.Fatalf("addr=%q", cfg.OrderSvcAddr)
	}
	if cfg.StoreDriver != "postgres" {
		t.Fatalf("driver=%q", cfg.StoreDriver)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("timeout=%s", cfg.RequestTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Mongo")
	t.Setenv("FRONTEND_URL", "https://eats.example.com/")
	t.Setenv("REQUEST_TIMEOUT", "3s")

	cfg := Load()
	if cfg.StoreDriver != "mongo" {
		t.Fatalf("driver=%q", cfg.StoreDriver)
	}
	if cfg.FrontendURL != "https://eats.example.com" {
		t.Fatalf("frontend url must drop trailing slash, got %q", cfg.FrontendURL)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("timeout=%s", cfg.RequestTimeout)
	}
}

func TestLoad_BadTimeoutFallsBack(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	if got := Load().RequestTimeout; got != 10*time.Second {
		t.Fatalf("timeout=%s", got)
	}
}
