// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Stores are in-memory fakes, media goes to a temporary FileStore and the
// AI registry holds a scripted provider, so no external service is needed.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"carouselai/internal/ai"
	"carouselai/internal/carousel"
	"carouselai/internal/models"
	"carouselai/internal/storage"
)

// mockTextProvider implements ai.Provider.
type mockTextProvider struct {
	mu       sync.Mutex
	name     string
	response string
	err      error
	requests []ai.TextRequest
}

func (m *mockTextProvider) Name() string { return m.name }

func (m *mockTextProvider) Generate(_ context.Context, req ai.TextRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	return m.response, m.err
}

func (m *mockTextProvider) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// mockImageProvider adds image generation. imageErr fails every call;
// failAfter > 0 fails every call after that many successes.
type mockImageProvider struct {
	mockTextProvider
	image     []byte
	imageType string // defaults to image/png
	imageErr  error
	failAfter int
	prompts   []string
}

func (m *mockImageProvider) GenerateImage(_ context.Context, prompt string) ([]byte, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	if m.imageErr != nil {
		return nil, "", m.imageErr
	}
	if m.failAfter > 0 && len(m.prompts) > m.failAfter {
		return nil, "", errors.New("image quota exceeded")
	}
	if m.imageType != "" {
		return m.image, m.imageType, nil
	}
	return m.image, "image/png", nil
}

// mockModerator flags topics containing "forbidden".
type mockModerator struct {
	err error
}

func (m *mockModerator) CheckSafety(_ context.Context, text string) (*ai.ModerationResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	if strings.Contains(text, "forbidden") {
		return &ai.ModerationResult{Safe: false, Categories: []string{"violence"}}, nil
	}
	return &ai.ModerationResult{Safe: true}, nil
}

// memProjects is an in-memory projectStore.
type memProjects struct {
	mu      sync.Mutex
	next    int64
	records map[int64]models.Project
}

func (s *memProjects) Create(p *models.Project) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	c := *p
	c.ID = s.next
	s.records[c.ID] = c
	return &c, nil
}

func (s *memProjects) FindByID(id int64) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *memProjects) UpdateBranding(id int64, profileImage, brandLogo *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.records[id]
	if !ok {
		return errors.New("project not found")
	}
	p.ProfileImage, p.BrandLogo = profileImage, brandLogo
	s.records[id] = p
	return nil
}

// memSlides is an in-memory slideStore.
type memSlides struct {
	mu        sync.Mutex
	next      int64
	records   map[int64]models.Slide
	updates   int
	updateErr error
}

func (s *memSlides) Create(sl *models.Slide) (*models.Slide, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	c := *sl
	c.ID = s.next
	s.records[c.ID] = c
	return &c, nil
}

func (s *memSlides) FindByID(id int64) (*models.Slide, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	return &sl, nil
}

func (s *memSlides) ListByProject(projectID int64) ([]models.Slide, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Slide
	for _, sl := range s.records {
		if sl.ProjectID == projectID {
			out = append(out, sl)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SlideNumber < out[j].SlideNumber })
	return out, nil
}

func (s *memSlides) Update(sl *models.Slide) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return s.updateErr
	}
	if _, ok := s.records[sl.ID]; !ok {
		return errors.New("slide not found")
	}
	s.records[sl.ID] = *sl
	s.updates++
	return nil
}

// testEnv holds all dependencies for handler tests.
type testEnv struct {
	Projects   *memProjects
	Slides     *memSlides
	Media      *storage.FileStore
	Provider   *mockImageProvider
	AIRegistry *ai.Registry
	API        *API
	Router     http.Handler
}

// newTestEnv creates a test environment whose active provider "test" can
// generate both text and images.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	media, err := storage.NewFileStore(t.TempDir(), "/media/")
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	provider := &mockImageProvider{
		mockTextProvider: mockTextProvider{name: "test"},
		image:            testPNG(t, 64, 64, color.NRGBA{R: 200, G: 200, B: 200, A: 255}),
	}
	registry := ai.NewRegistry(context.Background(), "test", nil)
	registry.Register("test", provider)

	projects := &memProjects{records: make(map[int64]models.Project)}
	slides := &memSlides{records: make(map[int64]models.Slide)}
	api := NewAPI(projects, slides, registry, carousel.NewPipeline(registry, carousel.DefaultOptions()), media, nil)

	r := chi.NewRouter()
	r.Get("/api/project/{id}/slides/", api.ProjectSlides)

	return &testEnv{
		Projects:   projects,
		Slides:     slides,
		Media:      media,
		Provider:   provider,
		AIRegistry: registry,
		API:        api,
		Router:     r,
	}
}

// seedSlides creates a project with n slides, none of which have images.
func (env *testEnv) seedSlides(t *testing.T, topic string, n int) (*models.Project, []*models.Slide) {
	t.Helper()
	project, _ := env.Projects.Create(&models.Project{
		Topic: topic, Platform: "instagram", Style: "modern", SlideCount: n,
	})
	var slides []*models.Slide
	for i := 1; i <= n; i++ {
		sl, _ := env.Slides.Create(models.NewSlide(project.ID, i, carousel.SlideContent{
			Title:           "Slide title",
			Description:     "Slide description",
			ImagePrompt:     "abstract shapes",
			BackgroundColor: "#112233",
			FontColor:       "#FFFFFF",
		}))
		slides = append(slides, sl)
	}
	return project, slides
}

// testPNG encodes a solid w×h PNG.
func testPNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// postJSON calls handler with body encoded as JSON and returns the recorder.
func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	switch b := body.(type) {
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

// decodeBody unmarshals the recorder body into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

// deckJSON builds a model answer with n well-formed slides.
func deckJSON(n int) string {
	slides := make([]map[string]string, n)
	for i := range slides {
		slides[i] = map[string]string{
			"title":            "AI title",
			"description":      "AI description",
			"image_prompt":     "soft gradient",
			"background_color": "#1A1A2E",
			"font_color":       "#FFFFFF",
		}
	}
	b, _ := json.Marshal(slides)
	return string(b)
}
