package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// openAIProvider implements Provider and ImageGenerator on top of the
// OpenAI chat completions and image endpoints.
type openAIProvider struct {
	name   string
	config ProviderConfig
	client *openai.Client
	images *openai.Client // same endpoint, longer timeout
	fetch  *http.Client   // downloads images returned by URL
}

// newOpenAI creates a new OpenAI provider.
func newOpenAI(cfg ProviderConfig) *openAIProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	return newOpenAICompatible("openai", cfg)
}

// newOpenAICompatible builds a client for any endpoint speaking the OpenAI
// chat completions protocol. Shared between OpenAI and Mistral.
func newOpenAICompatible(name string, cfg ProviderConfig) *openAIProvider {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.timeout()}

	imageCfg := openai.DefaultConfig(cfg.APIKey)
	imageCfg.BaseURL = cfg.BaseURL
	imageCfg.HTTPClient = &http.Client{Timeout: cfg.imageTimeout()}

	return &openAIProvider{
		name:   name,
		config: cfg,
		client: openai.NewClientWithConfig(clientCfg),
		images: openai.NewClientWithConfig(imageCfg),
		fetch:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *openAIProvider) Name() string { return p.name }

// Generate sends a chat completion request and returns the assistant's
// response text.
func (p *openAIProvider) Generate(ctx context.Context, req TextRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = p.config.Model
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s chat: %w", p.name, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s: no choices returned", p.name)
	}

	return resp.Choices[0].Message.Content, nil
}

// GenerateImage creates a square image with the configured image model.
// The API answers either with base64 data or a short-lived URL; both are
// returned as raw bytes.
func (p *openAIProvider) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	model := p.config.ModelImage
	if model == "" {
		return nil, "", fmt.Errorf("%s: image generation requires an image model", p.name)
	}

	resp, err := p.images.CreateImage(ctx, openai.ImageRequest{
		Prompt:  prompt,
		Model:   model,
		N:       1,
		Size:    openai.CreateImageSize1024x1024,
		Quality: "auto",
	})
	if err != nil {
		return nil, "", fmt.Errorf("%s image: %w", p.name, err)
	}
	if len(resp.Data) == 0 {
		return nil, "", fmt.Errorf("%s image: empty data array", p.name)
	}

	img := resp.Data[0]
	switch {
	case img.B64JSON != "":
		data, err := base64.StdEncoding.DecodeString(img.B64JSON)
		if err != nil {
			return nil, "", fmt.Errorf("%s image decode base64: %w", p.name, err)
		}
		return data, "image/png", nil
	case img.URL != "":
		return download(ctx, p.fetch, img.URL)
	default:
		return nil, "", errors.New(p.name + " image: response has neither data nor URL")
	}
}
