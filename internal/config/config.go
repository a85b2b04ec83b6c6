// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	DBName   string `yaml:"dbname"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// ConnString builds a postgres connection URL for pgx.
func (p PostgresConfig) ConnString() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(p.User, p.Password),
		Host:   p.Host + ":" + p.Port,
		Path:   "/" + p.DBName,
	}
	return u.String()
}

type Config struct {
	Postgres PostgresConfig `yaml:"postgres"`

	//Search criteria
	SearchTerms  []string `yaml:"search_terms"`
	MaxPerSource int      `yaml:"max_per_source"`

	//Pacing and enrichment bounds
	RequestDelayMS  int  `yaml:"request_delay_ms"`
	EnrichLimit     int  `yaml:"enrich_limit"`
	EnrichTimeoutMS int  `yaml:"enrich_timeout_ms"`
	Headful         bool `yaml:"headful"`

	//Optional run-summary notification
	TelegramToken  string `yaml:"telegram_token"`
	TelegramChatID int64  `yaml:"telegram_chat_id"`
}

// RequestDelay is the courtesy pause between outbound requests.
func (c *Config) RequestDelay() time.Duration {
	return time.Duration(c.RequestDelayMS) * time.Millisecond
}

// EnrichTimeout bounds the wait for a detail page's content marker.
func (c *Config) EnrichTimeout() time.Duration {
	return time.Duration(c.EnrichTimeoutMS) * time.Millisecond
}

func defaults() *Config {
	return &Config{
		Postgres: PostgresConfig{
			Host: "localhost",
			Port: "5432",
		},
		SearchTerms:     []string{"Data Analyst", "Python Developer", "Data Scientist", "Business Analyst"},
		MaxPerSource:    10,
		RequestDelayMS:  2000,
		EnrichLimit:     0,
		EnrichTimeoutMS: 10000,
	}
}

// Load reads the YAML config at path, then applies .env / environment
// overrides on top. A missing config file is fine; missing required
// database fields are not.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	//Override with env vars
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Postgres.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		cfg.Postgres.Port = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Postgres.DBName = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Postgres.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Postgres.Password = v
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	//Validate required fields
	if cfg.Postgres.DBName == "" {
		return nil, fmt.Errorf("postgres dbname is required (config or DB_NAME)")
	}
	if cfg.Postgres.User == "" {
		return nil, fmt.Errorf("postgres user is required (config or DB_USER)")
	}
	if len(cfg.SearchTerms) == 0 {
		return nil, fmt.Errorf("at least one search term is required")
	}
	if cfg.RequestDelayMS < 0 || cfg.EnrichTimeoutMS <= 0 {
		return nil, fmt.Errorf("request_delay_ms must be >= 0 and enrich_timeout_ms > 0")
	}

	return cfg, nil
}
