// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package carousel

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultColor is returned for empty color input.
	DefaultColor = "#FFFFFF"
	// BrandColor replaces any color that cannot be parsed.
	BrandColor = "#405DE6"
)

var (
	longHex  = regexp.MustCompile(`^#[0-9A-F]{6}$`)
	shortHex = regexp.MustCompile(`^#[0-9A-F]{3}$`)
)

// NormalizeColor coerces arbitrary input into canonical "#RRGGBB" form.
// Empty input yields DefaultColor, three-digit shorthand is expanded and
// anything unparseable becomes BrandColor. The result is always valid and
// NormalizeColor(NormalizeColor(x)) == NormalizeColor(x).
func NormalizeColor(value string) string {
	if value == "" {
		return DefaultColor
	}

	c := strings.ToUpper(strings.TrimSpace(value))
	if !strings.HasPrefix(c, "#") {
		c = "#" + c
	}

	switch {
	case longHex.MatchString(c):
		return c
	case shortHex.MatchString(c):
		return "#" + strings.Repeat(c[1:2], 2) + strings.Repeat(c[2:3], 2) + strings.Repeat(c[3:4], 2)
	default:
		return BrandColor
	}
}

// IsCanonical reports whether c is already in "#RRGGBB" uppercase form.
func IsCanonical(c string) bool {
	return longHex.MatchString(c)
}

// ParseHex returns the RGB components of a color after normalization.
func ParseHex(color string) (r, g, b uint8, ok bool) {
	c := NormalizeColor(color)
	v, err := strconv.ParseUint(c[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
