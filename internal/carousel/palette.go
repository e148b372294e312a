// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package carousel

// ColorPair is a background/foreground combination.
type ColorPair struct {
	Background string
	Font       string
}

// fallbackPalette is cycled by slide position for single fallback slides.
var fallbackPalette = [10]ColorPair{
	{"#405DE6", "#FFFFFF"},
	{"#8A2BE2", "#FFFFFF"},
	{"#00BFFF", "#000000"},
	{"#FF6B6B", "#FFFFFF"},
	{"#4ECDC4", "#000000"},
	{"#FFD166", "#000000"},
	{"#06D6A0", "#000000"},
	{"#EF476F", "#FFFFFF"},
	{"#118AB2", "#FFFFFF"},
	{"#073B4C", "#FFFFFF"},
}

var platformPalettes = map[string][5]ColorPair{
	PlatformInstagram: {
		{"#405DE6", "#FFFFFF"},
		{"#8A2BE2", "#FFFFFF"},
		{"#FF6B6B", "#FFFFFF"},
		{"#4ECDC4", "#000000"},
		{"#FFD166", "#000000"},
	},
	PlatformLinkedIn: {
		{"#0A66C2", "#FFFFFF"},
		{"#333333", "#FFFFFF"},
		{"#666666", "#FFFFFF"},
		{"#999999", "#000000"},
		{"#CCCCCC", "#000000"},
	},
	PlatformTwitter: {
		{"#1DA1F2", "#FFFFFF"},
		{"#14171A", "#FFFFFF"},
		{"#657786", "#FFFFFF"},
		{"#AAB8C2", "#000000"},
		{"#E1E8ED", "#000000"},
	},
	PlatformPresentation: {
		{"#2E86AB", "#FFFFFF"},
		{"#A23B72", "#FFFFFF"},
		{"#F18F01", "#000000"},
		{"#C73E1D", "#FFFFFF"},
		{"#6BAA75", "#000000"},
	},
}

// PlatformPalette returns the palette for a platform. Unknown platforms
// get the Instagram palette.
func PlatformPalette(platform string) [5]ColorPair {
	if p, ok := platformPalettes[platform]; ok {
		return p
	}
	return platformPalettes[PlatformInstagram]
}
