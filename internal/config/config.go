// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. A .env file in the working directory is read first when present;
// variables already set in the environment win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"carouselai/internal/ai"
	"carouselai/internal/storage"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible cache). Empty host disables caching.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// AI providers
	AIProvider       string // "openai", "gemini", "claude", "mistral"
	AITimeout        time.Duration
	AIImageTimeout   time.Duration
	OpenAIAPIKey     string
	OpenAIModel      string
	OpenAIImageModel string
	OpenAIBaseURL    string
	GeminiAPIKey     string
	GeminiModel      string
	GeminiImageModel string
	GeminiBaseURL    string
	ClaudeAPIKey     string
	ClaudeModel      string
	ClaudeBaseURL    string
	MistralAPIKey    string
	MistralModel     string
	MistralBaseURL   string

	// Deck generation sampling
	DeckTemperature float64
	DeckMaxTokens   int

	// S3-compatible storage. Without an endpoint, media is kept on disk.
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string

	// Local media
	MediaRoot string
	MediaURL  string

	// LogFile enables rotating file logging in addition to stderr.
	LogFile string
}

// Load reads configuration from the environment, applying defaults for
// development. Returns an error if critical values are missing in
// production mode.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not read .env file", "error", err)
	}

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "carouselai"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "carouselai"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		AIProvider:       envOrDefault("AI_PROVIDER", "openai"),
		AITimeout:        time.Duration(envInt("AI_TIMEOUT_SECONDS", 60)) * time.Second,
		AIImageTimeout:   time.Duration(envInt("AI_IMAGE_TIMEOUT_SECONDS", 120)) * time.Second,
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:      envOrDefault("OPENAI_MODEL", "gpt-4.1-mini"),
		OpenAIImageModel: envOrDefault("OPENAI_IMAGE_MODEL", "gpt-image-1"),
		OpenAIBaseURL:    envOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      envOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiImageModel: envOrDefault("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),
		GeminiBaseURL:    os.Getenv("GEMINI_BASE_URL"),
		ClaudeAPIKey:     os.Getenv("CLAUDE_API_KEY"),
		ClaudeModel:      envOrDefault("CLAUDE_MODEL", "claude-sonnet-4-5"),
		ClaudeBaseURL:    os.Getenv("CLAUDE_BASE_URL"),
		MistralAPIKey:    os.Getenv("MISTRAL_API_KEY"),
		MistralModel:     envOrDefault("MISTRAL_MODEL", "mistral-large-latest"),
		MistralBaseURL:   envOrDefault("MISTRAL_BASE_URL", "https://api.mistral.ai/v1"),

		DeckTemperature: envFloat("DECK_TEMPERATURE", 0.7),
		DeckMaxTokens:   envInt("DECK_MAX_TOKENS", 2000),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "carouselai-media"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		MediaRoot: envOrDefault("MEDIA_ROOT", "media"),
		MediaURL:  envOrDefault("MEDIA_URL", "/media/"),

		LogFile: os.Getenv("LOG_FILE"),
	}

	if cfg.Env == "production" && cfg.DBPassword == "changeme" {
		return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
	}
	if cfg.DeckMaxTokens <= 0 {
		return nil, fmt.Errorf("DECK_MAX_TOKENS must be positive, got %d", cfg.DeckMaxTokens)
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

// ProviderConfigs returns the per-provider settings for ai.NewRegistry.
func (c *Config) ProviderConfigs() map[string]ai.ProviderConfig {
	return map[string]ai.ProviderConfig{
		"openai": {
			APIKey: c.OpenAIAPIKey, Model: c.OpenAIModel, ModelImage: c.OpenAIImageModel,
			BaseURL: c.OpenAIBaseURL, Timeout: c.AITimeout, ImageTimeout: c.AIImageTimeout,
		},
		"gemini": {
			APIKey: c.GeminiAPIKey, Model: c.GeminiModel, ModelImage: c.GeminiImageModel,
			BaseURL: c.GeminiBaseURL, Timeout: c.AITimeout, ImageTimeout: c.AIImageTimeout,
		},
		"claude": {
			APIKey: c.ClaudeAPIKey, Model: c.ClaudeModel,
			BaseURL: c.ClaudeBaseURL, Timeout: c.AITimeout,
		},
		"mistral": {
			APIKey: c.MistralAPIKey, Model: c.MistralModel,
			BaseURL: c.MistralBaseURL, Timeout: c.AITimeout,
		},
	}
}

// S3 returns the object storage settings.
func (c *Config) S3() storage.S3Config {
	return storage.S3Config{
		Endpoint:  c.S3Endpoint,
		Region:    c.S3Region,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
		Bucket:    c.S3Bucket,
		PublicURL: c.S3PublicURL,
	}
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}
