// config - источник загрузки конфигурации для portfolio-gateway и portfolioctl.
//
// Источники (по убыванию приоритета):
//  1. явный путь --config;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. только ENV (cleanenv).
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Cache    CacheConfig    `yaml:"cache"`
	CORS     CORSConfig     `yaml:"cors"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// TimeoutConfig - общий дедлайн входящего запроса и таймаут одного вызова апстрима.
type TimeoutConfig struct {
	Service  time.Duration `yaml:"service"  env:"SERVICE_TIMEOUT"  env-default:"15s"`
	Upstream time.Duration `yaml:"upstream" env:"UPSTREAM_TIMEOUT" env-default:"5s"`
}

// HTTPConfig - публичный REST-сервер шлюза.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50090"`
}

func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// UpstreamConfig - внешний profile API.
type UpstreamConfig struct {
	BaseURL   string `yaml:"base_url"   env:"UPSTREAM_BASE_URL"   env-default:"http://localhost:8080/api"`
	UserAgent string `yaml:"user_agent" env:"UPSTREAM_USER_AGENT" env-default:"portfolio-gateway"`
}

// CacheConfig - кэш собранных портфолио и каталога навыков.
// Пустой RedisURL - in-process кэш. Нулевой TTL отключает соответствующий кэш.
type CacheConfig struct {
	RedisURL     string        `yaml:"redis_url"     env:"CACHE_REDIS_URL"`
	Prefix       string        `yaml:"prefix"        env:"CACHE_PREFIX"        env-default:"portfolio:"`
	PortfolioTTL time.Duration `yaml:"portfolio_ttl" env:"CACHE_PORTFOLIO_TTL" env-default:"30s"`
	CatalogTTL   time.Duration `yaml:"catalog_ttl"   env:"CACHE_CATALOG_TTL"   env-default:"10m"`
}

// CORSConfig - список origin'ов SPA.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`
}

// MustLoad - паника при ошибке загрузки.
func MustLoad(path string) *Config {
	cfg, err := Load(path)

	if err != nil {
		panic(err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	read := func(p string) error {
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return fmt.Errorf("failed to overlay env: %w", err)
		}

		return nil
	}

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := read(p); err != nil {
			return nil, err
		}

		return &cfg, nil
	}

	// 1) --config
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := read("local.yaml"); err != nil {
			return nil, fmt.Errorf("local.yaml: %w", err)
		}

		return &cfg, nil
	}

	// 4) только ENV
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
