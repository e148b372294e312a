// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ModerationResult contains the outcome of a prompt safety check.
type ModerationResult struct {
	Safe       bool     // true if the prompt passes moderation
	Categories []string // flagged category names (empty when safe)
}

// Moderator checks user prompts for policy violations before sending
// them to AI generation endpoints.
type Moderator interface {
	CheckSafety(ctx context.Context, text string) (*ModerationResult, error)
}

// openAIModerator uses the OpenAI moderation endpoint, which is free for
// all OpenAI API key holders.
type openAIModerator struct {
	client *openai.Client
}

func newOpenAIModerator(cfg ProviderConfig) *openAIModerator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	return &openAIModerator{client: openai.NewClientWithConfig(clientCfg)}
}

func (m *openAIModerator) CheckSafety(ctx context.Context, text string) (*ModerationResult, error) {
	resp, err := m.client.Moderations(ctx, openai.ModerationRequest{
		Model: "omni-moderation-latest",
		Input: text,
	})
	if err != nil {
		return nil, fmt.Errorf("moderation: %w", err)
	}

	if len(resp.Results) == 0 || !resp.Results[0].Flagged {
		return &ModerationResult{Safe: true}, nil
	}

	return &ModerationResult{
		Safe:       false,
		Categories: flaggedCategories(resp.Results[0].Categories),
	}, nil
}

// flaggedCategories lists the true fields of the SDK's category struct in
// readable form ("hate/threatening" -> "hate (threatening)").
func flaggedCategories(categories any) []string {
	raw, err := json.Marshal(categories)
	if err != nil {
		return nil
	}
	var m map[string]bool
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}

	var flagged []string
	for cat, isFlagged := range m {
		if !isFlagged {
			continue
		}
		display := cat
		if before, after, ok := strings.Cut(cat, "/"); ok {
			display = before + " (" + after + ")"
		}
		flagged = append(flagged, strings.ReplaceAll(display, "_", " "))
	}
	sort.Strings(flagged)
	return flagged
}
