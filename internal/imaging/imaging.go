// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging post-processes generated slide backgrounds: it tints the
// image toward the slide's background color and stamps the creator's
// profile photo and circular brand logo into the bottom corners.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"carouselai/internal/carousel"
)

// Layout constants for branding overlays, in pixels.
const (
	ProfileSize = 60
	LogoSize    = 70
	Padding     = 15
)

// tintStrength is the share of the background color blended into opaque
// images.
const tintStrength = 0.15

// ErrInvalidImage is returned when the base image cannot be decoded.
var ErrInvalidImage = errors.New("imaging: invalid image")

// Branding holds optional encoded overlay images.
type Branding struct {
	Profile []byte
	Logo    []byte
}

// Compose applies the background tint and branding to raw and returns the
// result as PNG. An empty bgColor skips tinting. Branding images that fail
// to decode are skipped with a warning.
func Compose(raw []byte, bgColor string, brand Branding) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	canvas := toNRGBA(src)
	if bgColor != "" {
		canvas = Tint(canvas, bgColor)
	}

	dc := gg.NewContextForImage(canvas)
	w, h := dc.Width(), dc.Height()

	if len(brand.Profile) > 0 {
		if profile, err := decode(brand.Profile); err != nil {
			slog.Warn("profile image skipped", "error", err)
		} else {
			thumb := Thumbnail(profile, ProfileSize)
			dc.DrawImage(thumb, Padding, h-ProfileSize-Padding)
		}
	}

	if len(brand.Logo) > 0 {
		if logo, err := decode(brand.Logo); err != nil {
			slog.Warn("brand logo skipped", "error", err)
		} else {
			thumb := Thumbnail(logo, LogoSize)
			x, y := w-LogoSize-Padding, h-LogoSize-Padding
			r := float64(LogoSize) / 2
			dc.Push()
			dc.DrawCircle(float64(x)+r, float64(y)+r, r)
			dc.Clip()
			dc.DrawImage(thumb, x, y)
			dc.ResetClip()
			dc.Pop()
		}
	}

	var out bytes.Buffer
	if err := dc.EncodePNG(&out); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return out.Bytes(), nil
}

// Tint places img over a solid bgColor when it has transparent pixels and
// otherwise blends the color in at tintStrength.
func Tint(img *image.NRGBA, bgColor string) *image.NRGBA {
	r, g, b, _ := carousel.ParseHex(bgColor)
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)

	if hasTransparency(img) {
		draw.Draw(out, bounds, &image.Uniform{C: color.NRGBA{R: r, G: g, B: b, A: 255}}, image.Point{}, draw.Src)
		draw.Draw(out, bounds, img, bounds.Min, draw.Over)
		return out
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			out.SetNRGBA(x, y, color.NRGBA{
				R: blend(c.R, r),
				G: blend(c.G, g),
				B: blend(c.B, b),
				A: c.A,
			})
		}
	}
	return out
}

// Thumbnail scales img down to fit in a size x size box, keeping the aspect
// ratio. Images already inside the box are returned unscaled.
func Thumbnail(img image.Image, size int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= size && h <= size {
		return img
	}

	if w >= h {
		h = max(1, h*size/w)
		w = size
	} else {
		w = max(1, w*size/h)
		h = size
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return img, nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)
	return out
}

func hasTransparency(img *image.NRGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y).A < 255 {
				return true
			}
		}
	}
	return false
}

func blend(src, tint uint8) uint8 {
	v := float64(src)*(1-tintStrength) + float64(tint)*tintStrength
	return uint8(v + 0.5)
}
