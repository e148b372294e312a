// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"carouselai/internal/imaging"
	"carouselai/internal/models"
	"carouselai/internal/storage"
)

// --- Slide image endpoints ---
//
// Every image goes through renderSlideImage: the active provider draws a
// background, imaging.Compose tints it and stamps the project branding, and
// the PNG is written to the media backend under a per-topic key.

// renderSlideImage generates, composes and stores an image for a slide and
// returns its storage key. The slide itself is not modified.
func (a *API) renderSlideImage(ctx context.Context, project *models.Project, slide *models.Slide, prompt string, brand imaging.Branding) (string, error) {
	raw, rawType, err := a.aiRegistry.GenerateImage(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate image: %w", err)
	}

	out, contentType := raw, "image/png"
	composed, err := imaging.Compose(raw, slide.BackgroundColor, brand)
	if err != nil {
		if rawType == "" {
			rawType = http.DetectContentType(raw)
		}
		slog.Warn("slide image post-processing failed, storing raw image",
			"slide_id", slide.ID, "content_type", rawType, "error", err)
		contentType = rawType
	} else {
		out = composed
	}

	key := storage.SlideKey(project.Topic, slide.ID, contentType)
	if err := a.media.Put(ctx, key, contentType, out); err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	return key, nil
}

// loadBranding reads a project's stored profile photo and logo. Missing or
// unreadable files are skipped.
func (a *API) loadBranding(ctx context.Context, project *models.Project) imaging.Branding {
	var brand imaging.Branding
	if project.ProfileImage != nil && *project.ProfileImage != "" {
		data, err := a.media.Get(ctx, *project.ProfileImage)
		if err != nil {
			slog.Warn("profile image unavailable", "project_id", project.ID, "error", err)
		} else {
			brand.Profile = data
		}
	}
	if project.BrandLogo != nil && *project.BrandLogo != "" {
		data, err := a.media.Get(ctx, *project.BrandLogo)
		if err != nil {
			slog.Warn("brand logo unavailable", "project_id", project.ID, "error", err)
		} else {
			brand.Logo = data
		}
	}
	return brand
}

// decodeDataURL decodes a "data:image/png;base64,..." string. A bare base64
// payload without the header is accepted too.
func decodeDataURL(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty image data")
	}
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return data, nil
}

// saveBranding stores uploaded branding images and records their keys on
// the project. Failures are logged and the image is dropped. The decoded
// bytes are returned for immediate use in composition.
func (a *API) saveBranding(ctx context.Context, project *models.Project, profileData, logoData string) imaging.Branding {
	var brand imaging.Branding
	var profileKey, logoKey *string

	store := func(kind, encoded, key string) ([]byte, *string) {
		if encoded == "" {
			return nil, nil
		}
		data, err := decodeDataURL(encoded)
		if err != nil {
			slog.Warn("branding image rejected", "kind", kind, "project_id", project.ID, "error", err)
			return nil, nil
		}
		if err := a.media.Put(ctx, key, "image/png", data); err != nil {
			slog.Warn("branding image not saved", "kind", kind, "project_id", project.ID, "error", err)
			return nil, nil
		}
		slog.Info("branding image saved", "kind", kind, "project_id", project.ID, "key", key)
		return data, &key
	}

	brand.Profile, profileKey = store("profile", profileData, storage.ProfileKey(project.ID))
	brand.Logo, logoKey = store("logo", logoData, storage.LogoKey(project.ID))

	if profileKey == nil && logoKey == nil {
		return brand
	}
	if err := a.projects.UpdateBranding(project.ID, profileKey, logoKey); err != nil {
		slog.Warn("branding keys not recorded", "project_id", project.ID, "error", err)
		return brand
	}
	project.ProfileImage = profileKey
	project.BrandLogo = logoKey
	return brand
}

// slideWithProject loads a slide and its project, writing 400/404 responses
// when either is missing.
func (a *API) slideWithProject(w http.ResponseWriter, rawID json.Number) (*models.Slide, *models.Project, bool) {
	id, ok := parseID(rawID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Slide ID is required")
		return nil, nil, false
	}

	slide, err := a.slides.FindByID(id)
	if err != nil {
		slog.Error("find slide failed", "slide_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load slide")
		return nil, nil, false
	}
	if slide == nil {
		writeError(w, http.StatusNotFound, "Slide not found")
		return nil, nil, false
	}

	project, err := a.projects.FindByID(slide.ProjectID)
	if err != nil {
		slog.Error("find project failed", "project_id", slide.ProjectID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load project")
		return nil, nil, false
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "Project not found")
		return nil, nil, false
	}
	return slide, project, true
}

type imageResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"image_url"`
	Filename string `json:"filename"`
	SlideID  int64  `json:"slide_id"`
	Message  string `json:"message"`
}

// applyImage renders an image for slide, stores imagePrompt on it and writes
// the response. Shared by GenerateImage and GenerateAndApply.
func (a *API) applyImage(w http.ResponseWriter, r *http.Request, slide *models.Slide, project *models.Project, prompt, imagePrompt, message string) {
	ctx := r.Context()

	key, err := a.renderSlideImage(ctx, project, slide, prompt, a.loadBranding(ctx, project))
	if err != nil {
		slog.Error("slide image generation failed", "slide_id", slide.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate image")
		return
	}

	slide.GeneratedImage = &key
	slide.ImagePrompt = imagePrompt
	if err := a.slides.Update(slide); err != nil {
		slog.Error("slide update failed", "slide_id", slide.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save slide")
		return
	}
	a.projectCache.Invalidate(ctx, project.ID)

	slog.Info("slide image applied", "slide_id", slide.ID, "key", key)
	writeJSON(w, http.StatusOK, imageResponse{
		Success:  true,
		ImageURL: a.media.URL(key),
		Filename: key,
		SlideID:  slide.ID,
		Message:  message,
	})
}

// GenerateImage draws a new background for a slide from an explicit image
// prompt and applies it.
func (a *API) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SlideID json.Number `json:"slide_id"`
		Prompt  string      `json:"prompt"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if _, ok := parseID(req.SlideID); !ok {
		writeError(w, http.StatusBadRequest, "Slide ID is required")
		return
	}
	if msg := validatePrompt("Image prompt", prompt); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	slide, project, ok := a.slideWithProject(w, req.SlideID)
	if !ok {
		return
	}
	if !a.checkPromptSafety(w, r, prompt) {
		return
	}

	a.applyImage(w, r, slide, project,
		imaging.BuildPrompt(prompt, project.Platform, project.Style),
		prompt, "Image generated and applied successfully!")
}

// GenerateAndApply turns a free-text description into a background prompt,
// draws it and applies it. The description becomes the slide's image prompt.
func (a *API) GenerateAndApply(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SlideID     json.Number `json:"slide_id"`
		Description string      `json:"description"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	description := strings.TrimSpace(req.Description)
	if _, ok := parseID(req.SlideID); !ok {
		writeError(w, http.StatusBadRequest, "Slide ID is required")
		return
	}
	if msg := validatePrompt("Description", description); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	slide, project, ok := a.slideWithProject(w, req.SlideID)
	if !ok {
		return
	}
	if !a.checkPromptSafety(w, r, description) {
		return
	}

	a.applyImage(w, r, slide, project,
		imaging.ApplyPrompt(description),
		description, "Image generated from description and applied to slide.")
}

// GenerateAllImages fills in images for every slide of a project that does
// not have one yet. Individual failures are counted, not fatal.
func (a *API) GenerateAllImages(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProjectID json.Number `json:"project_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	projectID, ok := parseID(req.ProjectID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Project ID is required")
		return
	}

	project, err := a.projects.FindByID(projectID)
	if err != nil {
		slog.Error("find project failed", "project_id", projectID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load project")
		return
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}

	slides, err := a.slides.ListByProject(projectID)
	if err != nil {
		slog.Error("list slides failed", "project_id", projectID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load slides")
		return
	}

	ctx := r.Context()
	brand := a.loadBranding(ctx, project)
	generated, failed := 0, 0

	for i := range slides {
		s := &slides[i]
		if s.HasImage() {
			continue
		}

		key, err := a.renderSlideImage(ctx, project, s, imaging.BuildPrompt(s.ImagePrompt, project.Platform, project.Style), brand)
		if err != nil {
			failed++
			slog.Warn("slide image generation failed", "slide_id", s.ID, "slide_number", s.SlideNumber, "error", err)
			continue
		}
		s.GeneratedImage = &key
		if err := a.slides.Update(s); err != nil {
			failed++
			slog.Warn("slide update failed", "slide_id", s.ID, "error", err)
			continue
		}
		generated++
	}

	if generated > 0 {
		a.projectCache.Invalidate(ctx, projectID)
	}

	slog.Info("project images generated", "project_id", projectID, "generated", generated, "failed", failed)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"generated": generated,
		"failed":    failed,
		"total":     len(slides),
		"message":   fmt.Sprintf("Generated %d images, %d failed", generated, failed),
	})
}
