package main

import (
	"testing"

	"github.com/vladislavdragonenkov/storefront/internal/app"
)

func mapLookup(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestReadConfig_Defaults(t *testing.T) {
	cfg := readConfig(mapLookup(nil))

	defaults := app.DefaultConfig()
	if cfg != defaults {
		t.Errorf("expected default config %+v, got %+v", defaults, cfg)
	}
}

func TestReadConfig_Overrides(t *testing.T) {
	cfg := readConfig(mapLookup(map[string]string{
		envHTTPAddr:      ":18080",
		envMetricsAddr:   ":19090",
		envStorageDriver: app.StorageDriverPostgres,
		envPostgresDSN:   "postgres://localhost:5432/storefront",
		envAutoMigrate:   "true",
	}))

	if cfg.HTTPAddr != ":18080" {
		t.Errorf("expected HTTPAddr :18080, got %s", cfg.HTTPAddr)
	}
	if cfg.MetricsAddr != ":19090" {
		t.Errorf("expected MetricsAddr :19090, got %s", cfg.MetricsAddr)
	}
	if cfg.StorageDriver != app.StorageDriverPostgres {
		t.Errorf("expected postgres driver, got %s", cfg.StorageDriver)
	}
	if cfg.PostgresDSN != "postgres://localhost:5432/storefront" {
		t.Errorf("unexpected dsn %s", cfg.PostgresDSN)
	}
	if !cfg.PostgresAutoMigrate {
		t.Error("expected auto migrate enabled")
	}
}

func TestReadConfig_EmptyValuesIgnored(t *testing.T) {
	cfg := readConfig(mapLookup(map[string]string{
		envHTTPAddr:      "",
		envStorageDriver: "",
	}))

	defaults := app.DefaultConfig()
	if cfg.HTTPAddr != defaults.HTTPAddr {
		t.Errorf("empty env should keep default addr, got %s", cfg.HTTPAddr)
	}
	if cfg.StorageDriver != defaults.StorageDriver {
		t.Errorf("empty env should keep default driver, got %s", cfg.StorageDriver)
	}
}

func TestReadConfig_InvalidBoolIgnored(t *testing.T) {
	cfg := readConfig(mapLookup(map[string]string{
		envAutoMigrate: "yes-please",
	}))

	if cfg.PostgresAutoMigrate {
		t.Error("invalid bool value should keep auto migrate disabled")
	}
}
