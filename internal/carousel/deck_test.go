// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package carousel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultDeck(t *testing.T) {
	t.Run("linkedin palette", func(t *testing.T) {
		deck := DefaultDeck("Leadership", 3, "linkedin", "corporate")
		want := Deck{
			{
				Title:           "Introduction to Leadership",
				Description:     "Learn the fundamentals of Leadership and why it matters in today's world.",
				ImagePrompt:     "Canva linkedin template, corporate style, introduction slide, professional design",
				BackgroundColor: "#0A66C2",
				FontColor:       "#FFFFFF",
			},
			{
				Title:           "Key Principles of Leadership",
				Description:     "Discover the core principles that drive success in Leadership.",
				ImagePrompt:     "Canva linkedin template, corporate style, key principles slide, professional design",
				BackgroundColor: "#333333",
				FontColor:       "#FFFFFF",
			},
			{
				Title:           "Practical Strategies for Leadership",
				Description:     "Implement effective strategies to achieve your goals in Leadership.",
				ImagePrompt:     "Canva linkedin template, corporate style, strategies slide, professional design",
				BackgroundColor: "#666666",
				FontColor:       "#FFFFFF",
			},
		}
		if diff := cmp.Diff(want, deck); diff != "" {
			t.Errorf("DefaultDeck mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown platform uses instagram", func(t *testing.T) {
		a := DefaultDeck("X", 5, "myspace", "modern")
		b := DefaultDeck("X", 5, "instagram", "modern")
		for i := range a {
			if a[i].BackgroundColor != b[i].BackgroundColor || a[i].FontColor != b[i].FontColor {
				t.Errorf("slide %d colors differ from instagram palette", i+1)
			}
		}
	})

	t.Run("palette wraps after five", func(t *testing.T) {
		deck := DefaultDeck("X", 7, "twitter", "modern")
		if deck[5].BackgroundColor != deck[0].BackgroundColor {
			t.Errorf("slide 6 bg = %s, want %s", deck[5].BackgroundColor, deck[0].BackgroundColor)
		}
	})

	t.Run("more than eight yields eight", func(t *testing.T) {
		deck := DefaultDeck("X", 12, "instagram", "modern")
		if len(deck) != MaxDefaultSlides {
			t.Errorf("len = %d, want %d", len(deck), MaxDefaultSlides)
		}
		if deck[7].Title != "Your X Success Plan" {
			t.Errorf("last title = %q", deck[7].Title)
		}
	})

	t.Run("zero count", func(t *testing.T) {
		if deck := DefaultDeck("X", 0, "instagram", "modern"); len(deck) != 0 {
			t.Errorf("len = %d, want 0", len(deck))
		}
	})
}
