// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the persisted carousel entities.
package models

import "time"

// Project is one carousel request and its branding.
type Project struct {
	ID            int64     `json:"id"`
	Topic         string    `json:"topic"`
	Platform      string    `json:"platform"`
	Style         string    `json:"style"`
	SlideCount    int       `json:"slide_count"`
	ProfileImage  *string   `json:"profile_image,omitempty"` // storage key
	ProfileHandle *string   `json:"profile_handle,omitempty"`
	BrandLogo     *string   `json:"brand_logo,omitempty"` // storage key
	CreatedAt     time.Time `json:"created_at"`
}

// Handle returns the profile handle or "" when unset.
func (p *Project) Handle() string {
	if p.ProfileHandle == nil {
		return ""
	}
	return *p.ProfileHandle
}

// HasBranding reports whether a profile photo or logo was uploaded.
func (p *Project) HasBranding() bool {
	return (p.ProfileImage != nil && *p.ProfileImage != "") ||
		(p.BrandLogo != nil && *p.BrandLogo != "")
}
