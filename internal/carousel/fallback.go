// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package carousel

import (
	"fmt"
	"strings"
)

var fallbackTitles = [10]string{
	"Introduction to {topic}",
	"Key Principles of {topic}",
	"Strategies for {topic} Success",
	"Practical {topic} Techniques",
	"Advanced {topic} Insights",
	"{topic} Implementation Guide",
	"Mastering {topic} Skills",
	"{topic} Action Plan",
	"{topic} Best Practices",
	"Future of {topic}",
}

var fallbackDescriptions = [10]string{
	"Learn the essential concepts and fundamentals of {topic}.",
	"Discover the core principles that drive success in {topic}.",
	"Implement effective strategies to achieve your {topic} goals.",
	"Master practical techniques for excelling in {topic}.",
	"Gain advanced insights to take your {topic} skills further.",
	"Follow this step-by-step guide to implement {topic}.",
	"Develop the skills needed to master {topic}.",
	"Create a personalized plan for {topic} success.",
	"Learn industry best practices for {topic}.",
	"Explore future trends and opportunities in {topic}.",
}

// FallbackSlide builds the placeholder slide for a 1-based position.
// Colors cycle through a 10-entry palette while the text templates clamp
// at the tenth, so slide 11 and slide 1 share colors but not copy.
// The result depends only on its arguments.
func FallbackSlide(topic string, position int, platform, style string) SlideContent {
	idx := position - 1
	if idx < 0 {
		idx = 0
	}
	pair := fallbackPalette[idx%len(fallbackPalette)]
	tmpl := min(idx, len(fallbackTitles)-1)

	return SlideContent{
		Title:           fillTopic(fallbackTitles[tmpl], topic),
		Description:     fillTopic(fallbackDescriptions[tmpl], topic),
		ImagePrompt:     fmt.Sprintf("Canva %s template with %s style, professional design for slide %d, %s", platform, style, position, topic),
		BackgroundColor: pair.Background,
		FontColor:       pair.Font,
	}
}

func fillTopic(tmpl, topic string) string {
	return strings.ReplaceAll(tmpl, "{topic}", topic)
}
