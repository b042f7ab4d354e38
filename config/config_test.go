package config

import (
	"os"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv clears any ambient value
	// so the defaults actually apply.
	for _, key := range []string{"SERVER_PORT", "STORE_BACKEND", "MONGO_URI", "MONGO_DB", "DB_USE_SSL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := LoadConfig()

	if cfg.ServerPort != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.ServerPort)
	}
	if cfg.StoreBackend != StoreBackendMongo {
		t.Fatalf("expected default store backend %q, got %q", StoreBackendMongo, cfg.StoreBackend)
	}
	if cfg.Mongo.URI == "" || cfg.Mongo.DBName == "" {
		t.Fatalf("expected mongo defaults, got %+v", cfg.Mongo)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_BACKEND", StoreBackendPostgres)
	t.Setenv("DB_USE_SSL", "true")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("OPERATOR_TOKEN", "op")

	cfg := LoadConfig()

	if cfg.ServerPort != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.ServerPort)
	}
	if cfg.StoreBackend != StoreBackendPostgres {
		t.Fatalf("expected postgres backend, got %q", cfg.StoreBackend)
	}
	if !cfg.Database.UseSSL {
		t.Fatalf("expected ssl enabled")
	}
	if cfg.JWTSecret != "s3cret" || cfg.OperatorToken != "op" {
		t.Fatalf("expected secrets loaded, got %+v", cfg)
	}
}
