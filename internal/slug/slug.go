// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug turns free-form topics into short ASCII path segments.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength caps generated slugs.
const MaxLength = 60

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Generate creates a lowercase, hyphen-separated slug. Accents are
// stripped ("Café Menü" -> "cafe-menu"); other symbols act as separators.
func Generate(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	result := nonAlphanumeric.ReplaceAllString(strings.ToLower(folded), "-")
	result = strings.Trim(result, "-")
	if len(result) > MaxLength {
		result = strings.TrimRight(result[:MaxLength], "-")
	}
	return result
}
