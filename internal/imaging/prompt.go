// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package imaging

import "fmt"

// MaxPromptLength is the longest prompt sent to the image endpoint.
const MaxPromptLength = 4000

// BuildPrompt wraps a slide's image theme in the instructions for a
// minimal, text-friendly slide background.
func BuildPrompt(theme, platform, style string) string {
	p := fmt.Sprintf(`Create a MINIMAL, CLEAN Canva template background for a %[2]s carousel slide.

Theme: %[1]s
Platform: %[2]s
Style: %[3]s

CRITICAL DESIGN REQUIREMENTS:
- MINIMAL and CLEAN design with lots of whitespace
- Keep 60%% of the image as EMPTY SPACE for text overlay
- Simple, subtle gradient background (soft transitions)
- Small decorative elements only (abstract shapes, simple icons at edges)
- NO busy patterns, NO cluttered details, NO photo-heavy content
- Professional, modern look
- Looks like premium Canva template (simple and elegant)
- Text-friendly: center area completely clear for readable text
- Use soft colors, gradients, or simple abstract geometric shapes
- Minimize details to ensure text is always readable`, theme, platform, style)
	return truncate(p, MaxPromptLength)
}

// ApplyPrompt is the prompt used when a user describes the background they
// want for an existing slide.
func ApplyPrompt(description string) string {
	return truncate("Canva-style minimal background for: "+description+
		". Make it clean, leave a clear center area for text, flat/vector style, subtle colors.", MaxPromptLength)
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
