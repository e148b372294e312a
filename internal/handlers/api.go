// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API for carousel generation and
// slide editing.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"carouselai/internal/ai"
	"carouselai/internal/cache"
	"carouselai/internal/carousel"
	"carouselai/internal/models"
	"carouselai/internal/storage"
)

// projectStore is the subset of store.ProjectStore the handlers use.
type projectStore interface {
	Create(p *models.Project) (*models.Project, error)
	FindByID(id int64) (*models.Project, error)
	UpdateBranding(id int64, profileImage, brandLogo *string) error
}

// slideStore is the subset of store.SlideStore the handlers use.
type slideStore interface {
	Create(sl *models.Slide) (*models.Slide, error)
	FindByID(id int64) (*models.Slide, error)
	ListByProject(projectID int64) ([]models.Slide, error)
	Update(sl *models.Slide) error
}

// API groups the carousel endpoints and their dependencies.
type API struct {
	projects     projectStore
	slides       slideStore
	aiRegistry   *ai.Registry
	pipeline     *carousel.Pipeline
	media        storage.Backend
	projectCache *cache.ProjectCache // nil disables caching
}

// NewAPI creates the API handler group.
func NewAPI(projects projectStore, slides slideStore, aiRegistry *ai.Registry, pipeline *carousel.Pipeline, media storage.Backend, projectCache *cache.ProjectCache) *API {
	return &API{
		projects:     projects,
		slides:       slides,
		aiRegistry:   aiRegistry,
		pipeline:     pipeline,
		media:        media,
		projectCache: projectCache,
	}
}

// slideView is the JSON shape of a slide in every response.
type slideView struct {
	ID                int64   `json:"id"`
	SlideNumber       int     `json:"slide_number"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	ImagePrompt       string  `json:"image_prompt"`
	BackgroundColor   string  `json:"background_color"`
	FontColor         string  `json:"font_color"`
	GeneratedImage    *string `json:"generated_image"`
	GeneratedImageURL string  `json:"generated_image_url,omitempty"`
}

func (a *API) viewSlide(s *models.Slide) slideView {
	v := slideView{
		ID:              s.ID,
		SlideNumber:     s.SlideNumber,
		Title:           s.Title,
		Description:     s.Description,
		ImagePrompt:     s.ImagePrompt,
		BackgroundColor: s.BackgroundColor,
		FontColor:       s.FontColor,
		GeneratedImage:  s.GeneratedImage,
	}
	if s.HasImage() {
		v.GeneratedImageURL = a.media.URL(*s.GeneratedImage)
	}
	return v
}

// decodeJSON reads the request body into dst. An empty body leaves dst untouched.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
	}
	if err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// parseID converts a JSON number or numeric string to a positive id.
func parseID(n json.Number) (int64, bool) {
	if n == "" {
		return 0, false
	}
	id, err := n.Int64()
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes {"error": msg}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// checkPromptSafety runs a user prompt through moderation. It returns false
// and writes a 400 when the prompt is flagged. Moderation errors let the
// prompt through.
func (a *API) checkPromptSafety(w http.ResponseWriter, r *http.Request, prompt string) bool {
	result, err := a.aiRegistry.CheckPrompt(r.Context(), prompt)
	if err != nil {
		slog.Warn("moderation check failed, allowing prompt", "error", err)
		return true
	}
	if result.Safe {
		return true
	}

	categories := strings.Join(result.Categories, ", ")
	slog.Warn("prompt flagged by moderation", "categories", categories)
	writeError(w, http.StatusBadRequest, fmt.Sprintf(
		"Your topic was flagged for: %s. Please reformulate your request and try again.", categories))
	return false
}
