// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"carouselai/internal/carousel"
)

// Slide is one persisted slide of a project. SlideNumber is 1-based and
// unique within its project.
type Slide struct {
	ID              int64     `json:"id"`
	ProjectID       int64     `json:"project_id"`
	SlideNumber     int       `json:"slide_number"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ImagePrompt     string    `json:"image_prompt"`
	BackgroundColor string    `json:"background_color"`
	FontColor       string    `json:"font_color"`
	GeneratedImage  *string   `json:"generated_image,omitempty"` // storage key
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewSlide builds an unsaved slide from generated content.
func NewSlide(projectID int64, number int, c carousel.SlideContent) *Slide {
	s := &Slide{ProjectID: projectID, SlideNumber: number}
	s.Apply(c)
	return s
}

// Content returns the slide's editable content.
func (s *Slide) Content() carousel.SlideContent {
	return carousel.SlideContent{
		Title:           s.Title,
		Description:     s.Description,
		ImagePrompt:     s.ImagePrompt,
		BackgroundColor: s.BackgroundColor,
		FontColor:       s.FontColor,
	}
}

// Apply overwrites the slide's content fields. Colors are normalized.
func (s *Slide) Apply(c carousel.SlideContent) {
	s.Title = c.Title
	s.Description = c.Description
	s.ImagePrompt = c.ImagePrompt
	s.BackgroundColor = carousel.NormalizeColor(c.BackgroundColor)
	s.FontColor = carousel.NormalizeColor(c.FontColor)
}

// HasImage reports whether an image has been generated for the slide.
func (s *Slide) HasImage() bool {
	return s.GeneratedImage != nil && *s.GeneratedImage != ""
}
