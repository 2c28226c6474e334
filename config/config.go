package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	CMS       CMSConfig
	Search    SearchConfig
	Mail      MailConfig
	Turnstile TurnstileConfig
	HTTP      HTTPConfig
}

type CMSConfig struct {
	GraphQLURL string
	Timeout    time.Duration
}

type SearchConfig struct {
	Host     string
	Port     string
	Protocol string
	APIKey   string
	Timeout  time.Duration
}

// URL assembles the search engine base URL from its parts.
func (c SearchConfig) URL() string {
	return fmt.Sprintf("%s://%s:%s", c.Protocol, c.Host, c.Port)
}

type MailConfig struct {
	APIKey       string
	ContactEmail string
	FromEmail    string
	ListID       string
}

type TurnstileConfig struct {
	SecretKey string
}

type HTTPConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		CMS: CMSConfig{
			GraphQLURL: getEnvRequired("CMS_GRAPHQL_URL"),
			Timeout:    10 * time.Second,
		},
		Search: SearchConfig{
			Host:     getEnvRequired("SEARCH_HOST"),
			Port:     getEnvOrDefault("SEARCH_PORT", "7700"),
			Protocol: getEnvOrDefault("SEARCH_PROTOCOL", "http"),
			APIKey:   getEnvOrDefault("SEARCH_API_KEY", ""),
			Timeout:  2 * time.Second,
		},
		Mail: MailConfig{
			APIKey:       getEnvRequired("SENDGRID_API_KEY"),
			ContactEmail: getEnvOrDefault("CONTACT_EMAIL", "admin@example.com"),
			FromEmail:    getEnvOrDefault("FROM_EMAIL", "noreply@edubrief.com"),
			ListID:       getEnvOrDefault("SENDGRID_LIST_ID", ""),
		},
		Turnstile: TurnstileConfig{
			SecretKey: getEnvRequired("TURNSTILE_SECRET_KEY"),
		},
		HTTP: HTTPConfig{
			Addr:              getEnvOrDefault("HTTP_ADDR", ":8080"),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	slog.Info("Configuration loaded",
		"cms_graphql_url", cfg.CMS.GraphQLURL,
		"search_url", cfg.Search.URL(),
		"http_addr", cfg.HTTP.Addr,
	)

	return cfg, nil
}

func getEnvRequired(key string) string {
	// Check for _FILE suffix
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	// Check for _FILE suffix
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
