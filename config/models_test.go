package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		GitHub: GitHubConfig{BaseURL: "https://api.github.com", PageSize: 100},
		Cache:  CacheConfig{Backend: "memory"},
		Postgres: PostgresConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			DBName:   "strange_metrics_db",
			SSLMode:  "disable",
		},
	}
}

func TestValidateOK(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejectsMissingPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsBadPageSize(t *testing.T) {
	cfg := validConfig()
	cfg.GitHub.PageSize = 101
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownCacheBackend(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.Backend = "memcached"
	require.Error(t, cfg.Validate())
}

func TestServerAddr(t *testing.T) {
	require.Equal(t, "0.0.0.0:8080", validConfig().ServerAddr())
}

func TestPostgresDSN(t *testing.T) {
	dsn := validConfig().Postgres.DSN()
	require.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=strange_metrics_db sslmode=disable", dsn)
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "localhost", Port: 6379}
	require.Equal(t, "localhost:6379", r.Addr())
}
