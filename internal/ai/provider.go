// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides a unified interface for interacting with multiple
// LLM providers (OpenAI, Gemini, Claude, Mistral). Each provider implements
// the Provider interface, and the Registry selects the active one by name.
package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// TextRequest is a single text generation call.
type TextRequest struct {
	Model        string // empty uses the provider's configured model
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int
}

// Provider defines the interface that all AI providers must implement.
type Provider interface {
	// Generate sends the request to the LLM and returns the generated text.
	Generate(ctx context.Context, req TextRequest) (string, error)

	// Name returns the provider identifier (e.g., "openai", "gemini").
	Name() string
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey     string
	Model      string
	ModelImage string // image model, only used by providers that generate images
	BaseURL    string
	Timeout    time.Duration // text calls, default 60s
	// ImageTimeout bounds image generation calls, default 120s.
	ImageTimeout time.Duration
}

func (c ProviderConfig) timeout() time.Duration {
	if c.Timeout <= 0 {
		return 60 * time.Second
	}
	return c.Timeout
}

func (c ProviderConfig) imageTimeout() time.Duration {
	if c.ImageTimeout <= 0 {
		return 120 * time.Second
	}
	return c.ImageTimeout
}

// Registry manages available AI providers and selects the active one.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	active    string
	moderator Moderator // may be nil if no moderation API is available
}

// NewRegistry creates a registry and initialises providers for every config
// that has a non-empty API key. Providers without keys are silently skipped.
// Moderation uses OpenAI's moderation endpoint when an OpenAI key exists.
func NewRegistry(ctx context.Context, active string, configs map[string]ProviderConfig) *Registry {
	r := &Registry{
		providers: make(map[string]Provider),
		active:    active,
	}

	for name, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		switch name {
		case "openai":
			r.providers[name] = newOpenAI(cfg)
		case "mistral":
			r.providers[name] = newMistral(cfg)
		case "claude":
			r.providers[name] = newClaude(cfg)
		case "gemini":
			p, err := newGemini(ctx, cfg)
			if err != nil {
				slog.Warn("gemini provider disabled", "error", err)
				continue
			}
			r.providers[name] = p
		}
	}

	if cfg, ok := configs["openai"]; ok && cfg.APIKey != "" {
		r.moderator = newOpenAIModerator(cfg)
	}

	return r
}

// Generate calls the active provider's Generate method.
func (r *Registry) Generate(ctx context.Context, req TextRequest) (string, error) {
	p, err := r.Active()
	if err != nil {
		return "", err
	}
	return p.Generate(ctx, req)
}

// Active returns the currently active provider.
func (r *Registry) Active() (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[r.active]
	if !ok {
		return nil, fmt.Errorf("ai: no provider configured for %q", r.active)
	}
	return p, nil
}

// SetActive switches the active provider at runtime. Returns an error if
// the named provider has no API key configured.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		return fmt.Errorf("ai: provider %q is not available (no API key?)", name)
	}
	r.active = name
	return nil
}

// ActiveName returns the name of the currently active provider.
func (r *Registry) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// Available returns the sorted names of all configured providers.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds or replaces a provider in the registry.
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// SetModerator replaces the moderator. A nil moderator disables checks.
func (r *Registry) SetModerator(m Moderator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.moderator = m
}

// CheckPrompt runs a prompt through the moderation API before generation.
// With no moderator configured every prompt is reported safe.
func (r *Registry) CheckPrompt(ctx context.Context, prompt string) (*ModerationResult, error) {
	r.mu.RLock()
	m := r.moderator
	r.mu.RUnlock()

	if m == nil {
		return &ModerationResult{Safe: true}, nil
	}
	return m.CheckSafety(ctx, prompt)
}

// HasProvider checks whether a named provider is configured and available.
func (r *Registry) HasProvider(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[name]
	return ok
}

// ImageGenerator is implemented by providers that can produce images.
type ImageGenerator interface {
	// GenerateImage returns raw image bytes and their MIME type.
	GenerateImage(ctx context.Context, prompt string) ([]byte, string, error)
}

// GenerateImage delegates to the active provider when it can draw.
func (r *Registry) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	p, err := r.Active()
	if err != nil {
		return nil, "", err
	}
	ig, ok := p.(ImageGenerator)
	if !ok {
		return nil, "", fmt.Errorf("ai: provider %q does not support image generation", p.Name())
	}
	return ig.GenerateImage(ctx, prompt)
}

// SupportsImageGeneration reports whether the active provider can draw.
func (r *Registry) SupportsImageGeneration() bool {
	p, err := r.Active()
	if err != nil {
		return false
	}
	_, ok := p.(ImageGenerator)
	return ok
}
