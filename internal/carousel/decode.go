// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package carousel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// payloadShape identifies which of the accepted answer layouts was found.
type payloadShape int

const (
	shapeUnknown payloadShape = iota
	shapeList                 // top-level array
	shapeKeyed                // {"slides": [...]} and friends
	shapeSingle               // one slide object
)

func (s payloadShape) String() string {
	switch s {
	case shapeList:
		return "list"
	case shapeKeyed:
		return "keyed"
	case shapeSingle:
		return "single"
	default:
		return "unknown"
	}
}

// listKeys are checked in order when the answer is an object wrapping a list.
var listKeys = []string{"slides", "content", "data", "carousel"}

// slideKeys must all be present for an object to count as a single slide.
var slideKeys = []string{"title", "description", "image_prompt", "background_color", "font_color"}

type payload struct {
	shape      payloadShape
	candidates []json.RawMessage
}

// stripFences removes a leading markdown fence (with or without a language
// tag) and a trailing fence.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "```"); ok {
		s = strings.TrimLeftFunc(rest, func(r rune) bool {
			return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		})
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// decodePayload parses the model answer into slide candidates. Only
// malformed JSON is an error; well-formed but unrecognized answers yield
// an empty candidate list.
func decodePayload(text string) (payload, error) {
	data := []byte(stripFences(text))
	if !json.Valid(data) {
		return payload{}, fmt.Errorf("decode payload: malformed JSON (%d bytes)", len(data))
	}

	trimmed := bytes.TrimSpace(data)
	switch trimmed[0] {
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return payload{}, fmt.Errorf("decode payload list: %w", err)
		}
		return payload{shape: shapeList, candidates: list}, nil
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return payload{}, fmt.Errorf("decode payload object: %w", err)
		}
		// The first listed key holding an array decides, even when empty.
		for _, key := range listKeys {
			list, ok := arrayField(obj, key)
			if !ok {
				continue
			}
			if len(list) > 0 {
				return payload{shape: shapeKeyed, candidates: list}, nil
			}
			break
		}
		for _, key := range slideKeys {
			if _, ok := obj[key]; !ok {
				return payload{shape: shapeUnknown}, nil
			}
		}
		return payload{shape: shapeSingle, candidates: []json.RawMessage{trimmed}}, nil
	default:
		return payload{shape: shapeUnknown}, nil
	}
}

// arrayField returns obj[key] when it is a JSON array.
func arrayField(obj map[string]json.RawMessage, key string) ([]json.RawMessage, bool) {
	raw := bytes.TrimSpace(obj[key])
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false
	}
	return list, true
}

// slideDefaults holds what a coerced slide falls back to per field.
type slideDefaults struct {
	topic    string
	platform string
	style    string
}

// coerceSlide turns one candidate into validated content. ok is false when
// the candidate is not a JSON object at all.
func coerceSlide(raw json.RawMessage, position int, d slideDefaults) (SlideContent, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return SlideContent{}, false
	}

	s := SlideContent{
		Title:       textOr(obj, "title", d.topic+" - Part "+strconv.Itoa(position)),
		Description: textOr(obj, "description", "Learn about "+d.topic+"."),
		ImagePrompt: textOr(obj, "image_prompt", fmt.Sprintf("Canva %s template with %s style", d.platform, d.style)),
	}
	s.BackgroundColor = colorOr(obj, "background_color", BrandColor)
	s.FontColor = colorOr(obj, "font_color", DefaultColor)
	return s, true
}

// fieldText returns the trimmed text form of obj[key]. Strings are used as
// is, other JSON values in their compact encoding. JSON null counts as
// missing.
func fieldText(obj map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := obj[key]
	if !ok {
		return "", false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return "", false
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return strings.TrimSpace(str), true
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return strings.TrimSpace(string(raw)), true
	}
	return buf.String(), true
}

func textOr(obj map[string]json.RawMessage, key, fallback string) string {
	if v, ok := fieldText(obj, key); ok && v != "" {
		return v
	}
	return fallback
}

// colorOr uses fallback only when key is absent. A present null or empty
// value normalizes to white like any other unusable color.
func colorOr(obj map[string]json.RawMessage, key, fallback string) string {
	if _, present := obj[key]; !present {
		return NormalizeColor(fallback)
	}
	v, _ := fieldText(obj, key)
	return NormalizeColor(v)
}
