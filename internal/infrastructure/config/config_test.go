package config

import "testing"

// Load relies on viper's global state, so these tests run sequentially.

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Pagination.DefaultPageSize != 10 || cfg.Pagination.MaxPageSize != 100 {
		t.Errorf("unexpected pagination defaults: %+v", cfg.Pagination)
	}
	if cfg.Database.Host != "localhost" || cfg.Database.Port != 5432 {
		t.Errorf("unexpected database defaults: %+v", cfg.Database)
	}
	if cfg.Logger.Level != "info" || cfg.Logger.Format != "json" {
		t.Errorf("unexpected logger defaults: %+v", cfg.Logger)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_NAME", "tasks_test")
	t.Setenv("DEFAULT_PAGE_SIZE", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Database.Name != "tasks_test" {
		t.Errorf("expected database name tasks_test, got %q", cfg.Database.Name)
	}
	if cfg.Pagination.DefaultPageSize != 25 {
		t.Errorf("expected default page size 25, got %d", cfg.Pagination.DefaultPageSize)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "70000")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestGetDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "svc",
		Password: "secret",
		Name:     "tasks",
		SSLMode:  "require",
	}

	want := "host=db.internal port=5433 user=svc password=secret dbname=tasks sslmode=require"
	if got := cfg.GetDSN(); got != want {
		t.Errorf("GetDSN:\n got %q\nwant %q", got, want)
	}
}
