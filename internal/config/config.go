package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sbowman/dotenv"
)

const defaultRateLimit = 10

type Config struct {
	DBUser    string
	DBPass    string
	DBName    string
	DBHost    string
	DBPort    string
	SSLMode   string
	BaseURL   string
	Domain    string
	Port      string
	RateLimit int
}

func Load() (Config, error) {
	dotenv.Load()

	cfg := Config{
		DBUser:    dotenv.GetString("DB_USER"),
		DBPass:    dotenv.GetString("DB_USER_PASSWORD"),
		DBName:    dotenv.GetString("DB_NAME"),
		DBHost:    dotenv.GetString("DB_HOST"),
		DBPort:    dotenv.GetString("DB_PORT"),
		SSLMode:   dotenv.GetString("DB_SSLMODE"),
		BaseURL:   dotenv.GetString("BASE_URL"),
		Domain:    dotenv.GetString("DOMAIN"),
		Port:      dotenv.GetString("PORT"),
		RateLimit: defaultRateLimit,
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if raw := dotenv.GetString("RATE_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT %q", raw)
		}
		cfg.RateLimit = n
	}
	return cfg, nil
}

func (cfg Config) BindAddr() string {
	return fmt.Sprintf("%s:%s", cfg.Domain, cfg.Port)
}

func (cfg Config) DSN() string {
	return fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=%s",
		cfg.DBUser, cfg.DBPass, cfg.DBName, cfg.DBHost, cfg.DBPort, cfg.SSLMode)
}

// BaseHost returns the host of the configured base URL, used to reject
// self-referential shorten requests.
func (cfg Config) BaseHost() string {
	u, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return ""
	}
	return u.Host
}
