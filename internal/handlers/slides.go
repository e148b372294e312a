// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"carouselai/internal/carousel"
)

// RegenerateSlide asks the model for fresh copy for one slide and saves it.
// There is no fallback here: model or parse failures are a 500.
func (a *API) RegenerateSlide(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SlideID json.Number `json:"slide_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	slide, project, ok := a.slideWithProject(w, req.SlideID)
	if !ok {
		return
	}

	ctx := r.Context()
	content, err := a.pipeline.RegenerateSlide(ctx, carousel.RegenerateRequest{
		Topic:    project.Topic,
		Platform: project.Platform,
		Current:  slide.Content(),
	})
	if err != nil {
		slog.Error("regenerate slide failed", "slide_id", slide.ID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	slide.Apply(content)
	if err := a.slides.Update(slide); err != nil {
		slog.Error("slide update failed", "slide_id", slide.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save slide")
		return
	}
	a.projectCache.Invalidate(ctx, project.ID)

	slog.Info("slide regenerated", "slide_id", slide.ID, "title", slide.Title)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"slide":   a.viewSlide(slide),
		"message": "Slide content regenerated successfully",
	})
}

// slideEdit is a partial slide update. Nil fields are left unchanged.
type slideEdit struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	ImagePrompt     *string `json:"image_prompt"`
	BackgroundColor *string `json:"background_color"`
	FontColor       *string `json:"font_color"`
}

// UpdateSlide applies a manual edit to a slide. Colors are normalized the
// same way model output is.
func (a *API) UpdateSlide(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SlideID   json.Number `json:"slide_id"`
		SlideData slideEdit   `json:"slide_data"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateSlideEdit(req.SlideData); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	slide, project, ok := a.slideWithProject(w, req.SlideID)
	if !ok {
		return
	}

	content := slide.Content()
	edit := req.SlideData
	if edit.Title != nil {
		content.Title = *edit.Title
	}
	if edit.Description != nil {
		content.Description = *edit.Description
	}
	if edit.ImagePrompt != nil {
		content.ImagePrompt = *edit.ImagePrompt
	}
	if edit.BackgroundColor != nil {
		content.BackgroundColor = *edit.BackgroundColor
	}
	if edit.FontColor != nil {
		content.FontColor = *edit.FontColor
	}
	slide.Apply(content)

	ctx := r.Context()
	if err := a.slides.Update(slide); err != nil {
		slog.Error("slide update failed", "slide_id", slide.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save slide")
		return
	}
	a.projectCache.Invalidate(ctx, project.ID)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Slide updated successfully",
		"slide":   a.viewSlide(slide),
	})
}
