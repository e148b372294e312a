// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"carouselai/internal/carousel"
	"carouselai/internal/imaging"
	"carouselai/internal/models"
)

type generateRequest struct {
	Topic         string      `json:"topic"`
	Platform      string      `json:"platform"`
	Style         string      `json:"style"`
	SlideCount    json.Number `json:"slide_count"`
	ProfileImage  string      `json:"profile_image"` // base64 data URL
	BrandLogo     string      `json:"brand_logo"`    // base64 data URL
	ProfileHandle string      `json:"profile_handle"`
}

type generateResponse struct {
	Success        bool        `json:"success"`
	ProjectID      int64       `json:"project_id"`
	Slides         []slideView `json:"slides"`
	ContentSource  string      `json:"content_source"`
	FallbackReason string      `json:"fallback_reason,omitempty"`
	ImagesCreated  int         `json:"images_generated"`
	Message        string      `json:"message"`
}

// GenerateCarousel creates a project, generates its slide copy, persists
// the slides and draws a background for each one. Slide copy always
// succeeds: when the model path fails the curated default deck is used and
// the reason is reported. Image failures leave the slide without an image.
func (a *API) GenerateCarousel(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if msg := validateTopic(topic); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	platform := strings.TrimSpace(req.Platform)
	if platform == "" {
		platform = carousel.DefaultPlatform
	}
	style := strings.TrimSpace(req.Style)
	if style == "" {
		style = carousel.DefaultStyle
	}
	handle := strings.TrimSpace(req.ProfileHandle)
	if msg := validateOptions(platform, style, handle); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	count, msg := parseSlideCount(req.SlideCount)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if !a.checkPromptSafety(w, r, topic) {
		return
	}

	ctx := r.Context()
	slog.Info("generating carousel", "topic", topic, "platform", platform, "style", style, "slides", count)

	project := &models.Project{
		Topic:      topic,
		Platform:   platform,
		Style:      style,
		SlideCount: count,
	}
	if handle != "" {
		project.ProfileHandle = &handle
	}
	project, err := a.projects.Create(project)
	if err != nil {
		slog.Error("create project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create project")
		return
	}

	brand := a.saveBranding(ctx, project, req.ProfileImage, req.BrandLogo)

	result := a.pipeline.GenerateSlides(ctx, carousel.Request{
		Topic:    topic,
		Count:    count,
		Platform: platform,
		Style:    style,
	})

	drawImages := a.aiRegistry.SupportsImageGeneration()
	if !drawImages {
		slog.Warn("active provider cannot generate images, slides saved without backgrounds",
			"provider", a.aiRegistry.ActiveName())
	}

	views := make([]slideView, 0, len(result.Deck))
	images := 0
	for i, content := range result.Deck {
		slide, err := a.slides.Create(models.NewSlide(project.ID, i+1, content))
		if err != nil {
			slog.Error("create slide failed", "project_id", project.ID, "slide_number", i+1, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to save slides")
			return
		}

		if drawImages {
			prompt := imaging.BuildPrompt(slide.ImagePrompt, platform, style)
			key, err := a.renderSlideImage(ctx, project, slide, prompt, brand)
			if err != nil {
				slog.Warn("slide image generation failed", "slide_id", slide.ID, "slide_number", i+1, "error", err)
			} else {
				slide.GeneratedImage = &key
				if err := a.slides.Update(slide); err != nil {
					slog.Warn("slide image not recorded", "slide_id", slide.ID, "error", err)
					slide.GeneratedImage = nil
				} else {
					images++
				}
			}
		}

		views = append(views, a.viewSlide(slide))
	}
	a.projectCache.Invalidate(ctx, project.ID)

	resp := generateResponse{
		Success:       true,
		ProjectID:     project.ID,
		Slides:        views,
		ContentSource: result.Source,
		ImagesCreated: images,
		Message:       fmt.Sprintf("Carousel with %d slides generated successfully!", len(views)),
	}
	if result.Failure != nil {
		resp.FallbackReason = result.Failure.Reason
	}

	slog.Info("carousel generated", "project_id", project.ID, "slides", len(views),
		"images", images, "source", result.Source)
	writeJSON(w, http.StatusOK, resp)
}

type projectView struct {
	ID            int64  `json:"id"`
	ProfileHandle string `json:"profile_handle"`
	Topic         string `json:"topic"`
	Platform      string `json:"platform"`
	Style         string `json:"style"`
	SlideCount    int    `json:"slide_count"`
}

// ProjectSlides returns a project with its slides in order. The encoded
// body is cached per project until the next change.
func (a *API) ProjectSlides(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	ctx := r.Context()
	if body, ok := a.projectCache.Get(ctx, id); ok {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("X-Cache", "HIT")
		w.Write(body)
		return
	}

	project, err := a.projects.FindByID(id)
	if err != nil {
		slog.Error("find project failed", "project_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load project")
		return
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	slides, err := a.slides.ListByProject(id)
	if err != nil {
		slog.Error("list slides failed", "project_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load slides")
		return
	}

	views := make([]slideView, 0, len(slides))
	for i := range slides {
		views = append(views, a.viewSlide(&slides[i]))
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(map[string]any{
		"success":    true,
		"project_id": project.ID,
		"project": projectView{
			ID:            project.ID,
			ProfileHandle: project.Handle(),
			Topic:         project.Topic,
			Platform:      project.Platform,
			Style:         project.Style,
			SlideCount:    project.SlideCount,
		},
		"slides": views,
	}); err != nil {
		slog.Error("encode project slides failed", "project_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to encode response")
		return
	}

	a.projectCache.Set(ctx, id, buf.Bytes())
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Cache", "MISS")
	w.Write(buf.Bytes())
}
