package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DATABASE_URL", "DATABASE_NAME", "REDIS_ADDR", "PORT"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	config, err := LoadConfig("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("expected no error for a missing file, got %v", err)
	}
	if config.Database.URL != "mongodb://localhost:27017" {
		t.Errorf("unexpected database url %q", config.Database.URL)
	}
	if config.Database.Name != "carcommerce" {
		t.Errorf("unexpected database name %q", config.Database.Name)
	}
	if config.Server.Port != "8000" {
		t.Errorf("unexpected port %q", config.Server.Port)
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)

	filename := filepath.Join(t.TempDir(), "config.yaml")
	contents := "database:\n  url: mongodb://db:27017\n  name: cars\nserver:\n  port: \"9000\"\n"
	if err := os.WriteFile(filename, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(filename)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if config.Database.URL != "mongodb://db:27017" || config.Database.Name != "cars" {
		t.Errorf("unexpected database config %+v", config.Database)
	}
	if config.Server.Port != "9000" {
		t.Errorf("unexpected port %q", config.Server.Port)
	}
	//values the file does not set keep their defaults
	if config.Redis.Addr != "localhost:6379" {
		t.Errorf("unexpected redis addr %q", config.Redis.Addr)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "mongodb://env:27017")
	t.Setenv("PORT", "7000")

	config, err := LoadConfig("does-not-exist.yaml")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if config.Database.URL != "mongodb://env:27017" {
		t.Errorf("expected the env override, got %q", config.Database.URL)
	}
	if config.Server.Port != "7000" {
		t.Errorf("expected the env override, got %q", config.Server.Port)
	}
}
