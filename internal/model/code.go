package model

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileExtension is appended to every suggested filename
const FileExtension = ".png"

// GeneratedCode is the result of one successful generation. It lives only in
// memory and is replaced wholesale by the next generation.
type GeneratedCode struct {
	ID        string      // random id used to correlate log lines
	Value     string      // identifier exactly as entered
	Kind      CodeKind    // symbology used
	Image     image.Image // rendered raster
	CreatedAt time.Time   // when the code was generated
	Filename  string      // suggested filename, see SuggestedFilename
}

// NewGeneratedCode creates a code record for an already rendered image
func NewGeneratedCode(value string, kind CodeKind, img image.Image, createdAt time.Time) *GeneratedCode {
	return &GeneratedCode{
		ID:        uuid.NewString(),
		Value:     value,
		Kind:      kind,
		Image:     img,
		CreatedAt: createdAt,
		Filename:  SuggestedFilename(kind, value),
	}
}

// Size returns the pixel dimensions of the rendered image
func (c *GeneratedCode) Size() image.Point {
	if c == nil || c.Image == nil {
		return image.Point{}
	}
	return c.Image.Bounds().Size()
}

// GetDisplayTitle returns a short human readable description of the code
func (c *GeneratedCode) GetDisplayTitle() string {
	if c == nil {
		return ""
	}
	size := c.Size()
	return fmt.Sprintf("%s · %s · %dx%d", c.Kind.Label(), c.Value, size.X, size.Y)
}

// SuggestedFilename derives "<kind>_<value>.png". Characters that would
// escape the output directory or are reserved on common filesystems are
// replaced with '_'.
func SuggestedFilename(kind CodeKind, value string) string {
	return kind.String() + "_" + sanitizeFilenamePart(value) + FileExtension
}

func sanitizeFilenamePart(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r < 0x20 || r == 0x7f:
			b.WriteRune('_')
		case strings.ContainsRune(`/\:*?"<>|`, r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	out := b.String()
	// "." and ".." would resolve to directories
	if strings.Trim(out, ".") == "" {
		out = strings.Repeat("_", len(out))
	}
	return out
}
