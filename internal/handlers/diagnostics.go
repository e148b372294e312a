// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"carouselai/internal/ai"
)

// TestProvider sends one short prompt through the active provider.
func (a *API) TestProvider(w http.ResponseWriter, r *http.Request) {
	name := a.aiRegistry.ActiveName()
	if !a.aiRegistry.HasProvider(name) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   fmt.Sprintf("AI provider %q has no API key configured", name),
		})
		return
	}

	reply, err := a.aiRegistry.Generate(r.Context(), ai.TextRequest{
		UserPrompt: "Say 'Canva Carousel Generator is working!'",
		MaxTokens:  50,
	})
	if err != nil {
		slog.Error("provider test failed", "provider", name, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	slog.Info("provider test succeeded", "provider", name)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"provider":     name,
		"gpt_response": reply,
		"message":      "AI provider is working!",
	})
}

// DebugGenerate returns the raw provider output for a short deck prompt,
// without parsing or fallback.
func (a *API) DebugGenerate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic      string      `json:"topic"`
		SlideCount json.Number `json:"slide_count"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		topic = "Test Topic"
	}
	count := 3
	if req.SlideCount != "" {
		c, msg := parseSlideCount(req.SlideCount)
		if msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
		count = c
	}

	name := a.aiRegistry.ActiveName()
	raw, err := a.aiRegistry.Generate(r.Context(), ai.TextRequest{
		SystemPrompt: "Return JSON array.",
		UserPrompt:   fmt.Sprintf("Create %d slides about %s. Return JSON array.", count, topic),
		MaxTokens:    500,
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"raw_response": raw,
		"model_used":   name,
	})
}

// Providers lists the configured AI providers and the active one.
func (a *API) Providers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"active":           a.aiRegistry.ActiveName(),
		"available":        a.aiRegistry.Available(),
		"image_generation": a.aiRegistry.SupportsImageGeneration(),
	})
}

// SetProvider switches the active AI provider at runtime.
func (a *API) SetProvider(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Provider string `json:"provider"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	name := strings.TrimSpace(req.Provider)
	if name == "" {
		writeError(w, http.StatusBadRequest, "No provider specified")
		return
	}

	if err := a.aiRegistry.SetActive(name); err != nil {
		slog.Warn("failed to switch AI provider", "provider", name, "error", err)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Cannot switch to %q: provider not available", name))
		return
	}

	slog.Info("ai provider switched", "provider", name)
	a.Providers(w, r)
}
