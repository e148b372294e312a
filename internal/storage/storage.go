// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage keeps generated slide images and uploaded branding
// assets. Two backends exist: an S3-compatible bucket for deployments and
// a local directory served under MEDIA_URL for development.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"carouselai/internal/slug"
)

// Backend stores media objects by key.
type Backend interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	URL(key string) string
}

// imageExtensions maps the image types providers return to file extensions.
var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Extension returns the file extension for an image content type.
// Parameters are ignored; unknown types map to ".png".
func Extension(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	if ext, ok := imageExtensions[strings.ToLower(strings.TrimSpace(mediaType))]; ok {
		return ext
	}
	return ".png"
}

// SlideKey returns a fresh object key for a generated slide image of the
// given content type. The random suffix keeps regenerated images from
// colliding with cached ones.
func SlideKey(topic string, slideID int64, contentType string) string {
	dir := slug.Generate(topic)
	if dir == "" {
		dir = "untitled"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("slides/%s/canva_slide_%d_%s%s", dir, slideID, suffix, Extension(contentType))
}

// ProfileKey is where a project's profile photo is kept.
func ProfileKey(projectID int64) string {
	return fmt.Sprintf("branding/profiles/profile_%d.png", projectID)
}

// LogoKey is where a project's brand logo is kept.
func LogoKey(projectID int64) string {
	return fmt.Sprintf("branding/logos/logo_%d.png", projectID)
}
