// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple two words", input: "Hello World", want: "hello-world"},
		{name: "punctuation", input: "Hello, World! How's it going?", want: "hello-world-how-s-it-going"},
		{name: "accents", input: "Café Menü", want: "cafe-menu"},
		{name: "german", input: "Über die Brücke", want: "uber-die-brucke"},
		{name: "version number", input: "Version 2.0.1", want: "version-2-0-1"},
		{name: "tabs and newlines", input: "hello\tworld\nagain", want: "hello-world-again"},
		{name: "surrounding hyphens", input: "  --hello -- world--  ", want: "hello-world"},
		{name: "empty", input: "", want: ""},
		{name: "only symbols", input: "!@#$%^&*()", want: ""},
		{name: "non latin script", input: "東京 Tokyo", want: "tokyo"},
		{name: "date", input: "2026-02-25", want: "2026-02-25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateMaxLength(t *testing.T) {
	got := Generate(strings.Repeat("carousel ", 20))
	if len(got) > MaxLength {
		t.Errorf("len = %d, want <= %d", len(got), MaxLength)
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("slug ends with hyphen: %q", got)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	for _, s := range []string{"Productivity Tips 2026", "Café Menü", "a--b"} {
		once := Generate(s)
		if twice := Generate(once); twice != once {
			t.Errorf("Generate(%q) = %q, Generate again = %q", s, once, twice)
		}
	}
}
