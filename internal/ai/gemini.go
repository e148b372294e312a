// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// geminiProvider implements Provider and ImageGenerator using the Google
// Gen AI SDK against the Gemini API backend.
type geminiProvider struct {
	config ProviderConfig
	client *genai.Client
	images *genai.Client // image model calls, longer timeout
}

// newGemini creates a new Google Gemini provider.
func newGemini(ctx context.Context, cfg ProviderConfig) (*geminiProvider, error) {
	client, err := newGeminiClient(ctx, cfg, cfg.timeout())
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	images, err := newGeminiClient(ctx, cfg, cfg.imageTimeout())
	if err != nil {
		return nil, fmt.Errorf("gemini image client: %w", err)
	}
	return &geminiProvider{config: cfg, client: client, images: images}, nil
}

func newGeminiClient(ctx context.Context, cfg ProviderConfig, timeout time.Duration) (*genai.Client, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	return genai.NewClient(ctx, cc)
}

func (p *geminiProvider) Name() string { return "gemini" }

// Generate sends a generateContent request and returns the concatenated
// text parts of the first candidate.
func (p *geminiProvider) Generate(ctx context.Context, req TextRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = p.config.Model
	}

	gc := &genai.GenerateContentConfig{}
	if req.SystemPrompt != "" {
		gc.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}
	if req.Temperature > 0 {
		gc.Temperature = genai.Ptr(req.Temperature)
	}
	if req.MaxTokens > 0 {
		gc.MaxOutputTokens = int32(req.MaxTokens)
	}

	resp, err := p.client.Models.GenerateContent(ctx, model, genai.Text(req.UserPrompt), gc)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini: no candidates returned")
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini: no text in response")
	}
	return text, nil
}

// GenerateImage asks the image model for inline image data.
func (p *geminiProvider) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	model := p.config.ModelImage
	if model == "" {
		return nil, "", fmt.Errorf("gemini: image generation requires GEMINI_IMAGE_MODEL to be set")
	}

	resp, err := p.images.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	})
	if err != nil {
		return nil, "", fmt.Errorf("gemini image: %w", err)
	}

	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, part := range c.Content.Parts {
			if part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			mime := part.InlineData.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			return part.InlineData.Data, mime, nil
		}
	}

	return nil, "", fmt.Errorf("gemini image: no image data in response")
}
