// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package carousel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"carouselai/internal/ai"
)

// Failure reasons reported by Run.
const (
	ReasonInvalidRequest = "invalid_request"
	ReasonTextGeneration = "text_generation"
	ReasonParsePayload   = "parse_payload"
	ReasonPanic          = "panic"
)

// Content sources reported in a Result.
const (
	SourceAI      = "ai"
	SourceDefault = "default"
)

// Failure describes why the model path could not produce a deck.
type Failure struct {
	Reason string
	Err    error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return "carousel: " + f.Reason
	}
	return "carousel: " + f.Reason + ": " + f.Err.Error()
}

func (f *Failure) Unwrap() error { return f.Err }

// TextGenerator is the single capability the pipeline needs from an AI
// backend. *ai.Registry satisfies it.
type TextGenerator interface {
	Generate(ctx context.Context, req ai.TextRequest) (string, error)
}

// Options tunes the deck generation call.
type Options struct {
	Model       string // empty uses the provider default
	Temperature float32
	MaxTokens   int
}

// DefaultOptions returns the sampling settings used for deck generation.
func DefaultOptions() Options {
	return Options{Temperature: 0.7, MaxTokens: 2000}
}

// Request asks for a deck of Count slides.
type Request struct {
	Topic    string
	Count    int
	Platform string
	Style    string
}

// RegenerateRequest asks for fresh content for one existing slide.
type RegenerateRequest struct {
	Topic    string
	Platform string
	Current  SlideContent
}

// Result is what GenerateSlides hands back: always a deck, plus where it
// came from. Failure is set when Source is SourceDefault.
type Result struct {
	Deck    Deck
	Source  string
	Failure *Failure
}

// Pipeline turns a request into validated slide content.
type Pipeline struct {
	gen  TextGenerator
	opts Options
}

// NewPipeline creates a pipeline. Zero Temperature and MaxTokens are
// replaced by DefaultOptions values.
func NewPipeline(gen TextGenerator, opts Options) *Pipeline {
	def := DefaultOptions()
	if opts.Temperature == 0 {
		opts.Temperature = def.Temperature
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = def.MaxTokens
	}
	return &Pipeline{gen: gen, opts: opts}
}

// Run asks the model for a deck and validates the answer. On success the
// deck has exactly req.Count slides. Any failure, including a panic in
// parsing, comes back as a *Failure.
func (p *Pipeline) Run(ctx context.Context, req Request) (deck Deck, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			deck = nil
			err = &Failure{Reason: ReasonPanic, Err: fmt.Errorf("%v", rec)}
		}
	}()

	if req.Count < 1 {
		return nil, &Failure{Reason: ReasonInvalidRequest, Err: fmt.Errorf("slide count %d", req.Count)}
	}
	if p.gen == nil {
		return nil, &Failure{Reason: ReasonTextGeneration, Err: errors.New("no text generator configured")}
	}

	text, err := p.gen.Generate(ctx, ai.TextRequest{
		Model:        p.opts.Model,
		SystemPrompt: deckSystemPrompt,
		UserPrompt:   deckUserPrompt(req),
		Temperature:  p.opts.Temperature,
		MaxTokens:    p.opts.MaxTokens,
	})
	if err != nil {
		return nil, &Failure{Reason: ReasonTextGeneration, Err: err}
	}

	pl, err := decodePayload(text)
	if err != nil {
		return nil, &Failure{Reason: ReasonParsePayload, Err: err}
	}
	slog.Debug("deck payload decoded", "shape", pl.shape, "candidates", len(pl.candidates))

	return assembleDeck(req, pl.candidates), nil
}

// assembleDeck coerces at most req.Count candidates and pads the rest with
// fallback slides.
func assembleDeck(req Request, candidates []json.RawMessage) Deck {
	d := slideDefaults{topic: req.Topic, platform: req.Platform, style: req.Style}
	deck := make(Deck, 0, req.Count)

	for i, raw := range candidates {
		if i >= req.Count {
			break
		}
		pos := i + 1
		s, ok := coerceSlide(raw, pos, d)
		if !ok {
			slog.Warn("slide candidate is not an object, using fallback", "position", pos)
			s = FallbackSlide(req.Topic, pos, req.Platform, req.Style)
		}
		deck = append(deck, s)
	}

	for len(deck) < req.Count {
		deck = append(deck, FallbackSlide(req.Topic, len(deck)+1, req.Platform, req.Style))
	}
	return deck
}

// GenerateSlides never fails: when Run does, the curated default deck is
// returned and the failure is reported alongside it.
func (p *Pipeline) GenerateSlides(ctx context.Context, req Request) Result {
	deck, err := p.Run(ctx, req)
	if err == nil {
		return Result{Deck: deck, Source: SourceAI}
	}

	var f *Failure
	if !errors.As(err, &f) {
		f = &Failure{Reason: ReasonTextGeneration, Err: err}
	}
	slog.Warn("deck generation failed, using default deck",
		"reason", f.Reason, "topic", req.Topic, "count", req.Count, "error", f.Err)

	return Result{
		Deck:    DefaultDeck(req.Topic, req.Count, req.Platform, req.Style),
		Source:  SourceDefault,
		Failure: f,
	}
}

// RegenerateSlide asks the model for fresh content for a single slide.
// Fields the model leaves out keep their current values. Unlike
// GenerateSlides there is no fallback: errors are returned.
func (p *Pipeline) RegenerateSlide(ctx context.Context, req RegenerateRequest) (SlideContent, error) {
	if p.gen == nil {
		return SlideContent{}, &Failure{Reason: ReasonTextGeneration, Err: errors.New("no text generator configured")}
	}

	text, err := p.gen.Generate(ctx, ai.TextRequest{
		Model:        p.opts.Model,
		SystemPrompt: slideSystemPrompt,
		UserPrompt:   slideUserPrompt(req),
		Temperature:  0.8,
		MaxTokens:    500,
	})
	if err != nil {
		return SlideContent{}, &Failure{Reason: ReasonTextGeneration, Err: err}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripFences(text)), &obj); err != nil || obj == nil {
		if err == nil {
			err = errors.New("answer is not a JSON object")
		}
		return SlideContent{}, &Failure{Reason: ReasonParsePayload, Err: err}
	}

	cur := req.Current
	return SlideContent{
		Title:           textOr(obj, "title", cur.Title),
		Description:     textOr(obj, "description", cur.Description),
		ImagePrompt:     textOr(obj, "image_prompt", cur.ImagePrompt),
		BackgroundColor: colorOr(obj, "background_color", cur.BackgroundColor),
		FontColor:       colorOr(obj, "font_color", cur.FontColor),
	}, nil
}
