// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"carouselai/internal/ai"
	"carouselai/internal/carousel"
)

var deckFlags struct {
	topic    string
	count    int
	platform string
	style    string
	offline  bool
}

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Generate slide content for a topic and print it as JSON",
	Long: `Generates a deck with the configured AI provider, without touching the
database or media storage. With --offline, or when no provider has a key,
the curated default deck is printed instead.`,
	Args: cobra.NoArgs,
	RunE: runDeck,
}

func init() {
	f := deckCmd.Flags()
	f.StringVar(&deckFlags.topic, "topic", "", "deck topic (required)")
	f.IntVar(&deckFlags.count, "count", 5, "number of slides")
	f.StringVar(&deckFlags.platform, "platform", carousel.DefaultPlatform, "target platform")
	f.StringVar(&deckFlags.style, "style", carousel.DefaultStyle, "visual style")
	f.BoolVar(&deckFlags.offline, "offline", false, "skip the AI provider")
	deckCmd.MarkFlagRequired("topic")
}

type deckOutput struct {
	Source         string        `json:"content_source"`
	FallbackReason string        `json:"fallback_reason,omitempty"`
	Slides         carousel.Deck `json:"slides"`
}

func runDeck(cmd *cobra.Command, _ []string) error {
	topic := strings.TrimSpace(deckFlags.topic)
	if topic == "" {
		return fmt.Errorf("--topic must not be blank")
	}
	if deckFlags.count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", deckFlags.count)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	registry := ai.NewRegistry(ctx, cfg.AIProvider, cfg.ProviderConfigs())

	var out deckOutput
	if deckFlags.offline || !registry.HasProvider(registry.ActiveName()) {
		out.Source = carousel.SourceDefault
		out.Slides = carousel.DefaultDeck(topic, deckFlags.count, deckFlags.platform, deckFlags.style)
	} else {
		pipeline := carousel.NewPipeline(registry, carousel.Options{
			Temperature: float32(cfg.DeckTemperature),
			MaxTokens:   cfg.DeckMaxTokens,
		})
		res := pipeline.GenerateSlides(ctx, carousel.Request{
			Topic:    topic,
			Count:    deckFlags.count,
			Platform: deckFlags.platform,
			Style:    deckFlags.style,
		})
		out.Source = res.Source
		out.Slides = res.Deck
		if res.Failure != nil {
			out.FallbackReason = res.Failure.Reason
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
