// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package carousel

import "fmt"

const (
	deckSystemPrompt  = "You are a professional Canva designer. Return ONLY a valid JSON array. No explanations."
	slideSystemPrompt = "Return ONLY a valid JSON object."
)

func deckUserPrompt(req Request) string {
	return fmt.Sprintf(`Create %[1]d slides for a carousel about "%[2]s".

Platform: %[3]s
Style: %[4]s

Return ONLY a JSON array with exactly %[1]d objects. Each object must have:
- title: Engaging title (5-8 words)
- description: Informative description (1-2 sentences)
- image_prompt: Description for Canva background image
- background_color: Hex color code (e.g., "#405DE6")
- font_color: Hex color code (e.g., "#FFFFFF")

Make it professional and suitable for %[3]s with %[4]s design.`,
		req.Count, req.Topic, req.Platform, req.Style)
}

func slideUserPrompt(req RegenerateRequest) string {
	return fmt.Sprintf(`Create new content for one carousel slide about "%[1]s" for %[2]s.

Current slide: %[3]s - %[4]s

Return a JSON object with:
- title: New engaging title
- description: New informative description
- image_prompt: New prompt for Canva background
- background_color: Hex color
- font_color: Hex color

Make it fresh and suitable for %[2]s Canva template.`,
		req.Topic, req.Platform, req.Current.Title, req.Current.Description)
}
