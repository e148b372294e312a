// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package carousel

import "fmt"

type deckTemplate struct {
	title       string
	description string
	suffix      string
}

var deckTemplates = [8]deckTemplate{
	{"Introduction to {topic}", "Learn the fundamentals of {topic} and why it matters in today's world.", "introduction slide"},
	{"Key Principles of {topic}", "Discover the core principles that drive success in {topic}.", "key principles slide"},
	{"Practical Strategies for {topic}", "Implement effective strategies to achieve your goals in {topic}.", "strategies slide"},
	{"Action Steps for {topic} Success", "Follow these actionable steps to excel in {topic}.", "action steps slide"},
	{"Advanced Techniques in {topic}", "Master advanced techniques to take your {topic} skills to the next level.", "advanced techniques slide"},
	{"{topic} Best Practices", "Learn industry best practices and avoid common mistakes in {topic}.", "best practices slide"},
	{"Future Trends in {topic}", "Explore emerging trends and future opportunities in {topic}.", "future trends slide"},
	{"Your {topic} Success Plan", "Create a personalized plan to achieve success in {topic}.", "success plan slide"},
}

// MaxDefaultSlides is the number of curated templates in the default deck.
const MaxDefaultSlides = len(deckTemplates)

// DefaultDeck builds the curated deck used when the model cannot be used
// at all. It returns min(count, MaxDefaultSlides) slides; callers asking
// for more get a short deck.
func DefaultDeck(topic string, count int, platform, style string) Deck {
	n := min(max(count, 0), MaxDefaultSlides)
	palette := PlatformPalette(platform)

	deck := make(Deck, 0, n)
	for i := range n {
		t := deckTemplates[i]
		pair := palette[i%len(palette)]
		deck = append(deck, SlideContent{
			Title:           fillTopic(t.title, topic),
			Description:     fillTopic(t.description, topic),
			ImagePrompt:     fmt.Sprintf("Canva %s template, %s style, %s, professional design", platform, style, t.suffix),
			BackgroundColor: pair.Background,
			FontColor:       pair.Font,
		})
	}
	return deck
}
