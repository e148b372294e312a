// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package carousel turns a topic into a deck of validated slide content.
// The model's answer is treated as untrusted: every slide that leaves this
// package has non-empty text fields and canonical "#RRGGBB" colors, and
// when the model cannot be used at all a deterministic deck is returned.
package carousel

// SlideContent is the validated content of one carousel slide.
type SlideContent struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	ImagePrompt     string `json:"image_prompt"`
	BackgroundColor string `json:"background_color"`
	FontColor       string `json:"font_color"`
}

// Deck is an ordered list of slides. Index 0 is slide number 1.
type Deck []SlideContent

// Platform names with curated palettes.
const (
	PlatformInstagram    = "instagram"
	PlatformLinkedIn     = "linkedin"
	PlatformTwitter      = "twitter"
	PlatformPresentation = "presentation"
)

const (
	DefaultPlatform = PlatformInstagram
	DefaultStyle    = "modern"
)
