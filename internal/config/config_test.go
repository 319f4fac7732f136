package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// writeFile - утилита записи временного файла конфигурации.
func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0o600))
	return p
}

// chdir - смена текущего рабочего каталога с авто-возвратом.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

const sampleYAML = `
env: "prod"
http:
  host: "0.0.0.0"
  port: "8080"
upstream:
  base_url: "https://profiles.example.org/api"
  user_agent: "pg-test"
cache:
  redis_url: "redis://localhost:6379/1"
  prefix: "pf:"
  portfolio_ttl: "45s"
  catalog_ttl: "1h"
cors:
  allowed_origins: ["https://a.example", "https://b.example"]
timeouts:
  service: "3s"
  upstream: "2s"
`

const minimalYAML = `
env: "stage"
`

const brokenYAML = `
env: [unclosed
`

func TestHTTPConfig_Addr(t *testing.T) {
	t.Parallel()
	cfg := HTTPConfig{Host: "0.0.0.0", Port: "8080"}
	require.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoad_WithExplicitPath_OK(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	require.Equal(t, "8080", cfg.HTTP.Port)

	require.Equal(t, "https://profiles.example.org/api", cfg.Upstream.BaseURL)
	require.Equal(t, "pg-test", cfg.Upstream.UserAgent)

	require.Equal(t, "redis://localhost:6379/1", cfg.Cache.RedisURL)
	require.Equal(t, "pf:", cfg.Cache.Prefix)
	require.Equal(t, 45*time.Second, cfg.Cache.PortfolioTTL)
	require.Equal(t, time.Hour, cfg.Cache.CatalogTTL)

	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)

	require.Equal(t, 3*time.Second, cfg.Timeouts.Service)
	require.Equal(t, 2*time.Second, cfg.Timeouts.Upstream)
}

func TestLoad_Defaults_FromMinimalYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "min.yaml", minimalYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "stage", cfg.Env)
	require.Equal(t, "50090", cfg.HTTP.Port)
	require.Equal(t, "http://localhost:8080/api", cfg.Upstream.BaseURL)
	require.Empty(t, cfg.Cache.RedisURL)
	require.Equal(t, "portfolio:", cfg.Cache.Prefix)
	require.Equal(t, 30*time.Second, cfg.Cache.PortfolioTTL)
	require.Equal(t, 10*time.Minute, cfg.Cache.CatalogTTL)
	require.Equal(t, 15*time.Second, cfg.Timeouts.Service)
	require.Equal(t, 5*time.Second, cfg.Timeouts.Upstream)
}

func TestLoad_WithExplicitPath_BrokenYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "broken.yaml", brokenYAML)

	_, err := Load(cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_WithExplicitPath_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "stat failed")
}

func TestLoad_WithCONFIG_PATH_OK(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "from_env_path.yaml", minimalYAML)
	t.Setenv("CONFIG_PATH", cfgPath)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "stage", cfg.Env)
}

func TestLoad_WithLocalYAML_OK(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, ".", "local.yaml", sampleYAML)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "https://profiles.example.org/api", cfg.Upstream.BaseURL)
}

// CONFIG_PATH важнее local.yaml.
func TestLoad_Priority_ENVWinsOverLocal(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, ".", "local.yaml", `
env: "local"
http: { host: "127.0.0.1", port: "7777" }
`)

	envPath := writeFile(t, dir, "from_env.yaml", minimalYAML)
	t.Setenv("CONFIG_PATH", envPath)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "stage", cfg.Env)
}

// Явный путь важнее CONFIG_PATH и local.yaml.
func TestLoad_Priority_ExplicitWinsOverEnvAndLocal(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	explicit := writeFile(t, dir, "explicit.yaml", `
env: "prod"
http: { host: "0.0.0.0", port: "8080" }
`)
	badFromEnv := writeFile(t, dir, "bad.yaml", brokenYAML)
	t.Setenv("CONFIG_PATH", badFromEnv)
	writeFile(t, ".", "local.yaml", `
env: "local"
http: { host: "127.0.0.1", port: "9999" }
`)

	cfg, err := Load(explicit)
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "8080", cfg.HTTP.Port)
}

func TestLoad_EnvOverlay_OverridesValuesFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)

	t.Setenv("HTTP_PORT", "18080")
	t.Setenv("UPSTREAM_BASE_URL", "http://10.0.0.5:8080/api")
	t.Setenv("CACHE_PORTFOLIO_TTL", "0s")
	t.Setenv("SERVICE_TIMEOUT", "5s")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "18080", cfg.HTTP.Port)
	require.Equal(t, "http://10.0.0.5:8080/api", cfg.Upstream.BaseURL)
	require.Equal(t, time.Duration(0), cfg.Cache.PortfolioTTL)
	require.Equal(t, 5*time.Second, cfg.Timeouts.Service)
}

// «Только ENV» без файлов.
func TestLoad_EnvOnly_OK(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("CONFIG_PATH", "")

	t.Setenv("ENV", "dev")
	t.Setenv("HTTP_PORT", "50090")
	t.Setenv("UPSTREAM_BASE_URL", "http://upstream/api")
	t.Setenv("CACHE_REDIS_URL", "redis://cache:6379/0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://x.example,https://y.example")
	t.Setenv("UPSTREAM_TIMEOUT", "1s")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "50090", cfg.HTTP.Port)
	require.Equal(t, "http://upstream/api", cfg.Upstream.BaseURL)
	require.Equal(t, "redis://cache:6379/0", cfg.Cache.RedisURL)
	require.Equal(t, []string{"https://x.example", "https://y.example"}, cfg.CORS.AllowedOrigins)
	require.Equal(t, time.Second, cfg.Timeouts.Upstream)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_ = MustLoad(filepath.Join(t.TempDir(), "nope.yaml"))
	})
}
