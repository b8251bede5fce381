package encode

import (
	"image"

	"github.com/ytget/codegen/internal/model"
)

// Encoder renders a validated identifier as a raster image.
type Encoder interface {
	Encode(kind model.CodeKind, value string) (image.Image, error)
}
