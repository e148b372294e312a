// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"carouselai/internal/models"
)

// SlideStore handles slide-related database operations.
type SlideStore struct {
	db *sql.DB
}

// NewSlideStore creates a new SlideStore with the given database connection.
func NewSlideStore(db *sql.DB) *SlideStore {
	return &SlideStore{db: db}
}

const slideColumns = `id, project_id, slide_number, title, description, image_prompt,
	background_color, font_color, generated_image, created_at, updated_at`

func scanSlide(scanner interface{ Scan(...any) error }) (*models.Slide, error) {
	var sl models.Slide
	err := scanner.Scan(
		&sl.ID, &sl.ProjectID, &sl.SlideNumber, &sl.Title, &sl.Description, &sl.ImagePrompt,
		&sl.BackgroundColor, &sl.FontColor, &sl.GeneratedImage, &sl.CreatedAt, &sl.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sl, nil
}

// Create inserts a slide and returns it with its ID and timestamps set.
func (s *SlideStore) Create(sl *models.Slide) (*models.Slide, error) {
	row := s.db.QueryRow(`
		INSERT INTO slides (project_id, slide_number, title, description, image_prompt,
			background_color, font_color, generated_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+slideColumns,
		sl.ProjectID, sl.SlideNumber, sl.Title, sl.Description, sl.ImagePrompt,
		sl.BackgroundColor, sl.FontColor, sl.GeneratedImage,
	)
	created, err := scanSlide(row)
	if err != nil {
		return nil, fmt.Errorf("create slide: %w", err)
	}
	return created, nil
}

// FindByID retrieves a slide by its ID.
func (s *SlideStore) FindByID(id int64) (*models.Slide, error) {
	row := s.db.QueryRow(`SELECT `+slideColumns+` FROM slides WHERE id = $1`, id)
	sl, err := scanSlide(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find slide by id: %w", err)
	}
	return sl, nil
}

// ListByProject returns a project's slides ordered by slide number.
func (s *SlideStore) ListByProject(projectID int64) ([]models.Slide, error) {
	rows, err := s.db.Query(`
		SELECT `+slideColumns+`
		FROM slides
		WHERE project_id = $1
		ORDER BY slide_number`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}
	defer rows.Close()

	var slides []models.Slide
	for rows.Next() {
		sl, err := scanSlide(rows)
		if err != nil {
			return nil, fmt.Errorf("scan slide: %w", err)
		}
		slides = append(slides, *sl)
	}
	return slides, rows.Err()
}

// Update writes the slide's content and image key and bumps updated_at.
func (s *SlideStore) Update(sl *models.Slide) error {
	err := s.db.QueryRow(`
		UPDATE slides SET
			title = $1, description = $2, image_prompt = $3,
			background_color = $4, font_color = $5, generated_image = $6,
			updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at`,
		sl.Title, sl.Description, sl.ImagePrompt,
		sl.BackgroundColor, sl.FontColor, sl.GeneratedImage, sl.ID,
	).Scan(&sl.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update slide: %w", err)
	}
	return nil
}
