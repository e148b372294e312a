// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import "context"

// mistralProvider uses Mistral's OpenAI-compatible chat completions API.
// Text only.
type mistralProvider struct {
	inner *openAIProvider
}

func newMistral(cfg ProviderConfig) *mistralProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.mistral.ai/v1"
	}
	return &mistralProvider{inner: newOpenAICompatible("mistral", cfg)}
}

func (p *mistralProvider) Name() string { return "mistral" }

func (p *mistralProvider) Generate(ctx context.Context, req TextRequest) (string, error) {
	return p.inner.Generate(ctx, req)
}
