// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Document store drivers.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// Session drivers.
const (
	SessionValkey = "valkey"
	SessionMemory = "memory"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Document store selection
	DocstoreDriver string // "postgres", "mongo", "memory"

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// MongoDB connection (DOCSTORE_DRIVER=mongo)
	MongoURI string
	MongoDB  string

	// Valkey (Redis-compatible session store)
	SessionDriver  string // "valkey", "memory"
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Content query cache in Valkey; 0 disables it
	ContentCacheTTL time.Duration

	// Site content
	SiteOwner   string
	SiteBaseURL string // asset prefix in production
	BlogURL     string
	ResumeURL   string

	// External REST API (not used for page rendering)
	APIBaseURL string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DocstoreDriver: envOrDefault("DOCSTORE_DRIVER", DriverPostgres),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "folio"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "folio"),

		MongoURI: envOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  envOrDefault("MONGO_DB", "folio"),

		SessionDriver:  envOrDefault("SESSION_DRIVER", SessionValkey),
		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		SiteOwner:   envOrDefault("SITE_OWNER", "Arpit Goyal"),
		SiteBaseURL: strings.TrimRight(os.Getenv("SITE_BASE_URL"), "/"),
		BlogURL:     envOrDefault("BLOG_URL", "https://arpitgoyalkgp.medium.com/"),
		ResumeURL:   envOrDefault("RESUME_URL", "https://drive.google.com/file/d/1Bp_rSPQfQ0EHv6NtFqU7AxJu1c13NtS3/view?usp=sharing"),

		APIBaseURL: envOrDefault("API_BASE_URL", "http://localhost:8000/api"),
	}

	ttl, err := time.ParseDuration(envOrDefault("CONTENT_CACHE_TTL", "0s"))
	if err != nil || ttl < 0 {
		return nil, fmt.Errorf("CONTENT_CACHE_TTL %q is not a valid duration", os.Getenv("CONTENT_CACHE_TTL"))
	}
	cfg.ContentCacheTTL = ttl

	switch cfg.DocstoreDriver {
	case DriverPostgres, DriverMongo, DriverMemory:
	default:
		return nil, fmt.Errorf("DOCSTORE_DRIVER %q is not one of postgres, mongo, memory", cfg.DocstoreDriver)
	}

	switch cfg.SessionDriver {
	case SessionValkey, SessionMemory:
	default:
		return nil, fmt.Errorf("SESSION_DRIVER %q is not one of valkey, memory", cfg.SessionDriver)
	}

	if cfg.Env == "production" {
		if cfg.DocstoreDriver == DriverPostgres && cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// AssetPrefix is prepended to static asset URLs. It is only applied in
// production; development serves assets from the local origin.
func (c *Config) AssetPrefix() string {
	if !c.IsProduction() {
		return ""
	}
	return c.SiteBaseURL
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
