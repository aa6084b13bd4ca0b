package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     Server     `yaml:"server"`
	Strapi     Strapi     `yaml:"strapi"`
	Cache      Cache      `yaml:"cache"`
	Revalidate Revalidate `yaml:"revalidate"`
}

type Server struct {
	Address            string `yaml:"address"              env:"SERVER_ADDR"              env-default:":8080"`
	ReadTimeoutSec     int    `yaml:"read_timeout_sec"     env:"SERVER_READ_TIMEOUT"      env-default:"15"`
	WriteTimeoutSec    int    `yaml:"write_timeout_sec"    env:"SERVER_WRITE_TIMEOUT"     env-default:"15"`
	IdleTimeoutSec     int    `yaml:"idle_timeout_sec"     env:"SERVER_IDLE_TIMEOUT"      env-default:"60"`
	ShutdownTimeoutSec int    `yaml:"shutdown_timeout_sec" env:"SERVER_SHUTDOWN_TIMEOUT"  env-default:"15"`
}

// Strapi describes the upstream CMS. An empty URL disables the backend:
// every accessor then answers with its empty payload.
type Strapi struct {
	URL       string `yaml:"url"        env:"STRAPI_URL,NEXT_PUBLIC_STRAPI_URL"`
	ReadToken string `yaml:"read_token" env:"STRAPI_READ_TOKEN,NEXT_PUBLIC_STRAPI_READ_TOKEN"`
	Timeout   string `yaml:"timeout"    env:"STRAPI_TIMEOUT" env-default:"10s"`
	// Pages lists the content pages served on /api/pages/:type, each as
	// "type" or "type:tag".
	Pages []string `yaml:"pages" env:"CONTENT_PAGES" env-separator:"," env-default:"privacy-policy,terms-and-conditions,about-us-page:about-us"`
}

type Cache struct {
	Driver     string `yaml:"driver"      env:"CACHE_DRIVER"      env-default:"memory"`
	MaxEntries int    `yaml:"max_entries" env:"CACHE_MAX_ENTRIES" env-default:"10000"`
	Host       string `yaml:"host"      env:"CACHE_HOST"      env-default:"localhost"`
	Port       int    `yaml:"port"      env:"CACHE_PORT"      env-default:"6379"`
	Db         int    `yaml:"db"        env:"CACHE_DB"        env-default:"0"`
	Pass       string `yaml:"password"  env:"CACHE_PASSWORD"  env-default:""`
	Prefix     string `yaml:"prefix"    env:"CACHE_PREFIX"    env-default:"contentd"`
	TTL        string `yaml:"ttl"       env:"CACHE_TTL"       env-default:""`
}

type Revalidate struct {
	Secret string `yaml:"secret" env:"REVALIDATE_SECRET"`
}

// PageTags maps each allowed content page type to its cache tag. A bare
// type is tagged with its own name; blank and duplicate entries are skipped.
func (s Strapi) PageTags() map[string]string {
	out := make(map[string]string, len(s.Pages))
	for _, p := range s.Pages {
		typ, tag, _ := strings.Cut(strings.TrimSpace(p), ":")
		typ, tag = strings.TrimSpace(typ), strings.TrimSpace(tag)
		if typ == "" {
			continue
		}
		if tag == "" {
			tag = typ
		}
		if _, ok := out[typ]; !ok {
			out[typ] = tag
		}
	}
	return out
}

// Load reads the config from a file path or from inline YAML content, then
// applies environment overrides and defaults.
func Load(pathOrContent string) (*Config, error) {
	var cfg Config

	if fi, err := os.Stat(pathOrContent); err == nil && !fi.IsDir() {
		if err := cleanenv.ReadConfig(pathOrContent, &cfg); err != nil {
			return nil, fmt.Errorf("read config %q: %w", pathOrContent, err)
		}
		return &cfg, nil
	}

	if looksInline(pathOrContent) {
		if err := yaml.Unmarshal([]byte(pathOrContent), &cfg); err != nil {
			return nil, fmt.Errorf("parse config content: %w", err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
		return &cfg, nil
	}

	// a missing config file is fine: env alone can describe the service
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	return &cfg, nil
}

func looksInline(s string) bool {
	return strings.Contains(s, "\n") || strings.Contains(s, "strapi:") || strings.Contains(s, "server:")
}

// Redacted returns a copy safe to log or expose on debug endpoints.
func (c *Config) Redacted() Config {
	out := *c
	out.Strapi.ReadToken = mask(out.Strapi.ReadToken)
	out.Cache.Pass = mask(out.Cache.Pass)
	out.Revalidate.Secret = mask(out.Revalidate.Secret)
	return out
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}

// Pretty returns the redacted YAML form of the config for logging.
func (c *Config) Pretty() (string, error) {
	b, err := yaml.Marshal(c.Redacted())
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(b), nil
}
