package encode

import (
	"fmt"
	"image"
	"unicode"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/ytget/codegen/internal/model"
)

// Barcode renders value as a Code128 symbol with the value printed beneath
// the bars. Characters Code128 cannot represent are reported as an
// *EncodingError.
func (s *Service) Barcode(value string) (image.Image, error) {
	// code128 maps U+00F1..U+00F4 to FNC1..FNC4, so anything past ASCII is
	// rejected here instead of turning into control symbols.
	for _, r := range value {
		if r > unicode.MaxASCII {
			return nil, &EncodingError{Kind: model.KindBarcode, Err: fmt.Errorf("%q could not be encoded", r)}
		}
	}

	bc, err := code128.Encode(value)
	if err != nil {
		return nil, &EncodingError{Kind: model.KindBarcode, Err: err}
	}

	modules := bc.Bounds().Dx()
	bars, err := barcode.Scale(bc, modules*s.opts.BarModuleWidth, s.opts.BarHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to scale barcode: %w", err)
	}

	face, err := s.captionFace()
	if err != nil {
		return nil, err
	}
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	textHeight := ascent + metrics.Descent.Ceil()
	textWidth := font.MeasureString(face, value).Ceil()

	quiet := s.opts.BarQuietZone
	barsSize := bars.Bounds().Size()
	width := max(barsSize.X, textWidth) + 2*quiet
	height := quiet + barsSize.Y + s.opts.BarTextDistance + textHeight + quiet

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	barX := (width - barsSize.X) / 2
	barRect := image.Rect(barX, quiet, barX+barsSize.X, quiet+barsSize.Y)
	draw.Draw(dst, barRect, bars, bars.Bounds().Min, draw.Src)

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P((width-textWidth)/2, barRect.Max.Y+s.opts.BarTextDistance+ascent),
	}
	drawer.DrawString(value)

	return dst, nil
}

func (s *Service) captionFace() (font.Face, error) {
	f, err := s.captionFont()
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    s.opts.BarFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create caption face: %w", err)
	}
	return face, nil
}
