// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"strings"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"

	"carouselai/internal/carousel"
	"carouselai/internal/database"
	"carouselai/internal/models"
)

func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "carouselai")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "carouselai")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// createProject inserts a project and deletes it (and its slides) on cleanup.
func createProject(t *testing.T, db *sql.DB, topic string) *models.Project {
	t.Helper()
	p, err := NewProjectStore(db).Create(&models.Project{
		Topic: topic, Platform: "instagram", Style: "modern", SlideCount: 3,
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM projects WHERE id = $1", p.ID) })
	return p
}

func TestProjectStore(t *testing.T) {
	db := testDB(t)
	ps := NewProjectStore(db)
	p := createProject(t, db, "Store Test Topic")

	if p.ID == 0 || p.CreatedAt.IsZero() {
		t.Fatalf("created project missing id/timestamp: %+v", p)
	}

	got, err := ps.FindByID(p.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got == nil || got.Topic != "Store Test Topic" || got.SlideCount != 3 {
		t.Fatalf("FindByID: got %+v", got)
	}

	profile, logo := "branding/profiles/profile_1.png", "branding/logos/logo_1.png"
	if err := ps.UpdateBranding(p.ID, &profile, &logo); err != nil {
		t.Fatalf("UpdateBranding: %v", err)
	}
	got, _ = ps.FindByID(p.ID)
	if got.ProfileImage == nil || *got.ProfileImage != profile || got.BrandLogo == nil || *got.BrandLogo != logo {
		t.Errorf("branding not stored: %+v", got)
	}

	missing, err := ps.FindByID(-1)
	if err != nil || missing != nil {
		t.Errorf("FindByID(-1): got %v, %v; want nil, nil", missing, err)
	}
}

func TestSlideStore(t *testing.T) {
	db := testDB(t)
	ss := NewSlideStore(db)
	p := createProject(t, db, "Slide Store Topic")

	deck := carousel.DefaultDeck(p.Topic, 3, p.Platform, p.Style)
	// Insert out of order to check ListByProject ordering.
	for _, n := range []int{3, 1, 2} {
		if _, err := ss.Create(models.NewSlide(p.ID, n, deck[n-1])); err != nil {
			t.Fatalf("Create slide %d: %v", n, err)
		}
	}

	if _, err := ss.Create(models.NewSlide(p.ID, 1, deck[0])); err == nil {
		t.Error("duplicate slide number should fail")
	}

	slides, err := ss.ListByProject(p.ID)
	if err != nil {
		t.Fatalf("ListByProject: %v", err)
	}
	if len(slides) != 3 {
		t.Fatalf("ListByProject: got %d slides, want 3", len(slides))
	}
	for i, sl := range slides {
		if sl.SlideNumber != i+1 {
			t.Errorf("slide %d has number %d", i, sl.SlideNumber)
		}
	}

	first := slides[0]
	before := first.UpdatedAt
	key := "slides/x/canva_slide_1_deadbeef.png"
	first.Title = "Edited"
	first.GeneratedImage = &key
	if err := ss.Update(&first); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if first.UpdatedAt.Before(before) {
		t.Error("updated_at went backwards")
	}

	got, err := ss.FindByID(first.ID)
	if err != nil || got == nil {
		t.Fatalf("FindByID: %v, %v", got, err)
	}
	if got.Title != "Edited" || !got.HasImage() {
		t.Errorf("update not persisted: %+v", got)
	}

	missing, err := ss.FindByID(-1)
	if err != nil || missing != nil {
		t.Errorf("FindByID(-1): got %v, %v; want nil, nil", missing, err)
	}
}

// TestStoresAcceptLongText checks that the schema holds every length the
// API validation allows: topics up to 500 characters and slide text up to
// 2000, including model-written titles of any length.
func TestStoresAcceptLongText(t *testing.T) {
	db := testDB(t)
	ss := NewSlideStore(db)

	topic := strings.Repeat("é", 500)
	p := createProject(t, db, topic)
	got, err := NewProjectStore(db).FindByID(p.ID)
	if err != nil || got == nil {
		t.Fatalf("FindByID: %v, %v", got, err)
	}
	if got.Topic != topic {
		t.Errorf("topic truncated to %d runes", len([]rune(got.Topic)))
	}

	content := carousel.FallbackSlide("Long", 1, "instagram", "modern")
	content.Title = strings.Repeat("t", 300)
	sl, err := ss.Create(models.NewSlide(p.ID, 1, content))
	if err != nil {
		t.Fatalf("Create with 300-character title: %v", err)
	}

	sl.Title = strings.Repeat("u", 2000)
	if err := ss.Update(sl); err != nil {
		t.Fatalf("Update with 2000-character title: %v", err)
	}
	stored, _ := ss.FindByID(sl.ID)
	if stored == nil || len(stored.Title) != 2000 {
		t.Errorf("long title not persisted")
	}
}
