// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package carousel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFallbackSlide(t *testing.T) {
	t.Run("first slide", func(t *testing.T) {
		got := FallbackSlide("Go", 1, "instagram", "modern")
		want := SlideContent{
			Title:           "Introduction to Go",
			Description:     "Learn the essential concepts and fundamentals of Go.",
			ImagePrompt:     "Canva instagram template with modern style, professional design for slide 1, Go",
			BackgroundColor: "#405DE6",
			FontColor:       "#FFFFFF",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("FallbackSlide mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a := FallbackSlide("Cooking", 4, "twitter", "bold")
		b := FallbackSlide("Cooking", 4, "twitter", "bold")
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("same inputs gave different slides:\n%s", diff)
		}
	})

	t.Run("colors cycle every ten", func(t *testing.T) {
		a := FallbackSlide("X", 3, "instagram", "modern")
		b := FallbackSlide("X", 13, "instagram", "modern")
		if a.BackgroundColor != b.BackgroundColor || a.FontColor != b.FontColor {
			t.Errorf("colors at 3 and 13 differ: %s/%s vs %s/%s",
				a.BackgroundColor, a.FontColor, b.BackgroundColor, b.FontColor)
		}
		if a.BackgroundColor != "#00BFFF" || a.FontColor != "#000000" {
			t.Errorf("slide 3 colors = %s/%s, want #00BFFF/#000000", a.BackgroundColor, a.FontColor)
		}
	})

	t.Run("templates clamp at ten", func(t *testing.T) {
		ten := FallbackSlide("AI", 10, "instagram", "modern")
		fifteen := FallbackSlide("AI", 15, "instagram", "modern")
		if ten.Title != "Future of AI" || fifteen.Title != "Future of AI" {
			t.Errorf("titles = %q, %q; want both %q", ten.Title, fifteen.Title, "Future of AI")
		}
		if fifteen.ImagePrompt == ten.ImagePrompt {
			t.Error("image prompt should still carry the slide position")
		}
	})

	t.Run("non-positive position uses first entry", func(t *testing.T) {
		got := FallbackSlide("AI", 0, "instagram", "modern")
		if got.Title != "Introduction to AI" || got.BackgroundColor != "#405DE6" {
			t.Errorf("position 0 gave %+v", got)
		}
	})
}
