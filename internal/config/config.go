// internal/config/config.go
// Loader konfigurasi dari environment variables

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AppName   string `env:"APP_NAME" envDefault:"mcp-skin"`
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	AppPort   string `env:"APP_PORT" envDefault:"8080"`
	MCPPort   string `env:"MCP_PORT" envDefault:"8090"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"debug"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // json | console

	// DB_DSN menang atas MYSQL_*; kosong keduanya = repo sumur tidak aktif.
	DSN       string `env:"DB_DSN"`
	DSNDocker string `env:"DB_DSN_DOCKER"`

	MySQL struct {
		Host     string `env:"HOST"`
		Port     string `env:"PORT" envDefault:"3306"`
		DB       string `env:"DB" envDefault:"mcp"`
		User     string `env:"USER" envDefault:"root"`
		Password string `env:"PASSWORD"`
		MaxOpen  int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdle  int    `env:"MAX_IDLE_CONNS" envDefault:"5"`
	} `envPrefix:"MYSQL_"`

	Redis struct {
		Addr     string        `env:"ADDR"`
		Password string        `env:"PASSWORD"`
		DB       int           `env:"DB" envDefault:"0"`
		TTL      time.Duration `env:"TTL" envDefault:"10m"`
	} `envPrefix:"REDIS_"`

	LLM struct {
		APIKey  string `env:"OPENAI_API_KEY"`
		BaseURL string `env:"OPENAI_BASE_URL"`
		Model   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	}

	Admin struct {
		User      string `env:"ADMIN_USER"`
		PassHash  string `env:"ADMIN_PASS_HASH"`
		JWTSecret string `env:"ADMIN_JWT_SECRET"`
	}

	APIKey string `env:"API_KEY"`
}

func Load() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	return c, nil
}

// MySQLDSN mengembalikan DSN final: DB_DSN, DB_DSN_DOCKER, lalu rakitan MYSQL_*.
// String kosong berarti DB tidak dikonfigurasi.
func (c *Config) MySQLDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	if c.DSNDocker != "" {
		return c.DSNDocker
	}
	if c.MySQL.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		c.MySQL.User, c.MySQL.Password, c.MySQL.Host, c.MySQL.Port, c.MySQL.DB)
}
