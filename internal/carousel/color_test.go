// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package carousel

import "testing"

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: "#FFFFFF"},
		{name: "canonical", input: "#405DE6", want: "#405DE6"},
		{name: "lowercase with spaces", input: "  ff6b6b ", want: "#FF6B6B"},
		{name: "short hex", input: "#abc", want: "#AABBCC"},
		{name: "short hex without hash", input: "0f0", want: "#00FF00"},
		{name: "named color", input: "blue", want: "#405DE6"},
		{name: "too long", input: "#1234567", want: "#405DE6"},
		{name: "whitespace only", input: "   ", want: "#405DE6"},
		{name: "double hash", input: "##FFFFFF", want: "#405DE6"},
		{name: "non hex digits", input: "#GGGGGG", want: "#405DE6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeColor(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeColor(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := NormalizeColor(got); again != got {
				t.Errorf("NormalizeColor not idempotent: %q -> %q", got, again)
			}
			if !IsCanonical(got) {
				t.Errorf("result %q is not canonical", got)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	r, g, b, ok := ParseHex("#0A66C2")
	if !ok {
		t.Fatal("ParseHex: expected ok")
	}
	if r != 0x0A || g != 0x66 || b != 0xC2 {
		t.Errorf("ParseHex = (%d, %d, %d), want (10, 102, 194)", r, g, b)
	}

	r, g, b, _ = ParseHex("nonsense")
	if r != 0x40 || g != 0x5D || b != 0xE6 {
		t.Errorf("invalid input should parse as brand color, got (%d, %d, %d)", r, g, b)
	}
}
