// Package display scales rendered codes for the on-screen preview.
package display

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Preview surface defaults
const (
	SurfaceWidth  = 400
	SurfaceHeight = 400

	// MarginFactor is the share of the surface a fitted image may occupy
	MarginFactor = 0.9
)

// DefaultSurface is the fixed preview area of the main window
var DefaultSurface = image.Pt(SurfaceWidth, SurfaceHeight)

// FitSize returns the size img should be shown at on surface: the largest
// size that keeps the aspect ratio and stays within MarginFactor of the
// surface. Images that already fit are never enlarged.
func FitSize(src, surface image.Point) image.Point {
	if src.X <= 0 || src.Y <= 0 || surface.X <= 0 || surface.Y <= 0 {
		return image.Point{}
	}

	scale := min(float64(surface.X)/float64(src.X), float64(surface.Y)/float64(src.Y)) * MarginFactor
	if scale >= 1 {
		return src
	}

	w := max(int(math.Round(float64(src.X)*scale)), 1)
	h := max(int(math.Round(float64(src.Y)*scale)), 1)
	return image.Pt(w, h)
}

// Fit returns img scaled down to FitSize. The source is returned as is when
// no scaling is needed.
func Fit(img image.Image, surface image.Point) image.Image {
	if img == nil {
		return nil
	}

	srcSize := img.Bounds().Size()
	size := FitSize(srcSize, surface)
	if size == srcSize || size == (image.Point{}) {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
