// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements PostgreSQL persistence for projects and slides.
// Lookups return (nil, nil) when a row does not exist.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"carouselai/internal/models"
)

// ProjectStore handles project-related database operations.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

const projectColumns = `id, topic, platform, style, slide_count,
	profile_image, profile_handle, brand_logo, created_at`

func scanProject(scanner interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	err := scanner.Scan(
		&p.ID, &p.Topic, &p.Platform, &p.Style, &p.SlideCount,
		&p.ProfileImage, &p.ProfileHandle, &p.BrandLogo, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a project and returns it with its ID and timestamp set.
func (s *ProjectStore) Create(p *models.Project) (*models.Project, error) {
	row := s.db.QueryRow(`
		INSERT INTO projects (topic, platform, style, slide_count,
			profile_image, profile_handle, brand_logo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+projectColumns,
		p.Topic, p.Platform, p.Style, p.SlideCount,
		p.ProfileImage, p.ProfileHandle, p.BrandLogo,
	)
	created, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return created, nil
}

// FindByID retrieves a project by its ID.
func (s *ProjectStore) FindByID(id int64) (*models.Project, error) {
	row := s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	return p, nil
}

// UpdateBranding stores the storage keys of uploaded branding images.
func (s *ProjectStore) UpdateBranding(id int64, profileImage, brandLogo *string) error {
	_, err := s.db.Exec(`
		UPDATE projects SET profile_image = $1, brand_logo = $2 WHERE id = $3`,
		profileImage, brandLogo, id)
	if err != nil {
		return fmt.Errorf("update project branding: %w", err)
	}
	return nil
}
