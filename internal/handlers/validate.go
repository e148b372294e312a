// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validation limits for generation requests.
const (
	maxTopicLen        = 500
	maxHandleLen       = 100
	maxPromptLen       = 1_000
	maxSlideTextLen    = 2_000
	defaultSlideCount  = 5
	minSlideCount      = 1
	maxSlideCount      = 20
	maxPlatformNameLen = 50
)

// validateTopic checks the carousel topic and returns the first error found.
func validateTopic(topic string) string {
	if strings.TrimSpace(topic) == "" {
		return "Topic is required"
	}
	if utf8.RuneCountInString(topic) > maxTopicLen {
		return fmt.Sprintf("Topic is too long (max %d characters)", maxTopicLen)
	}
	return ""
}

// parseSlideCount reads slide_count, defaulting to 5 when absent.
func parseSlideCount(n json.Number) (int, string) {
	if n == "" {
		return defaultSlideCount, ""
	}
	c, err := n.Int64()
	if err != nil {
		return 0, "slide_count must be an integer"
	}
	if c < minSlideCount || c > maxSlideCount {
		return 0, fmt.Sprintf("slide_count must be between %d and %d", minSlideCount, maxSlideCount)
	}
	return int(c), ""
}

// validateOptions checks the free-form platform, style and handle fields.
func validateOptions(platform, style, handle string) string {
	if utf8.RuneCountInString(platform) > maxPlatformNameLen {
		return "Platform name is too long"
	}
	if utf8.RuneCountInString(style) > maxPlatformNameLen {
		return "Style name is too long"
	}
	if utf8.RuneCountInString(handle) > maxHandleLen {
		return fmt.Sprintf("Profile handle is too long (max %d characters)", maxHandleLen)
	}
	return ""
}

// validatePrompt checks an image prompt or description.
func validatePrompt(field, prompt string) string {
	if prompt == "" {
		return field + " is required"
	}
	if utf8.RuneCountInString(prompt) > maxPromptLen {
		return fmt.Sprintf("%s is too long (max %d characters)", field, maxPromptLen)
	}
	return ""
}

// validateSlideEdit checks the text fields of a partial slide update.
func validateSlideEdit(e slideEdit) string {
	fields := []struct {
		name  string
		value *string
	}{
		{"title", e.Title},
		{"description", e.Description},
		{"image_prompt", e.ImagePrompt},
	}
	for _, f := range fields {
		if f.value != nil && utf8.RuneCountInString(*f.value) > maxSlideTextLen {
			return fmt.Sprintf("%s is too long (max %d characters)", f.name, maxSlideTextLen)
		}
	}
	return ""
}
