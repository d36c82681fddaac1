// internal/config/config_test.go

package config

import (
	"os"
	"testing"
	"time"
)

// unset menghapus env selama test (dipulihkan otomatis oleh t.Setenv).
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	unset(t, "APP_PORT", "DB_DSN", "DB_DSN_DOCKER", "MYSQL_HOST", "REDIS_TTL")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if c.AppPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", c.AppPort)
	}
	if c.Redis.TTL != 10*time.Minute {
		t.Fatalf("expected default cache ttl 10m, got %v", c.Redis.TTL)
	}
	if c.MySQLDSN() != "" {
		t.Fatalf("expected empty dsn when nothing configured, got %q", c.MySQLDSN())
	}
}

func TestMySQLDSNPrecedence(t *testing.T) {
	unset(t, "DB_DSN", "DB_DSN_DOCKER", "MYSQL_PORT", "MYSQL_DB")
	t.Setenv("MYSQL_HOST", "db")
	t.Setenv("MYSQL_USER", "mcpuser")
	t.Setenv("MYSQL_PASSWORD", "secret")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := "mcpuser:secret@tcp(db:3306)/mcp?parseTime=true"
	if got := c.MySQLDSN(); got != want {
		t.Fatalf("dsn = %q, want %q", got, want)
	}

	t.Setenv("DB_DSN", "explicit")
	c, _ = Load()
	if got := c.MySQLDSN(); got != "explicit" {
		t.Fatalf("DB_DSN must win, got %q", got)
	}
}
