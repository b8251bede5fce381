package encode

import (
	"fmt"
	"image"
	"log"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/ytget/codegen/internal/model"
)

// QR rendering constants
const (
	// QRModuleSize is the edge length of one QR module in pixels
	QRModuleSize = 10

	// QRBorderModules is the quiet border width in modules (library default)
	QRBorderModules = 4
)

// Barcode rendering constants
const (
	BarModuleWidth  = 3   // px per narrowest bar
	BarHeight       = 150 // px
	BarQuietZone    = 30  // px on every side
	BarTextDistance = 10  // px between bars and caption
	BarFontSize     = 24  // points at 72 DPI
)

// Options fixes the geometry of rendered symbols
type Options struct {
	QRModuleSize int

	BarModuleWidth  int
	BarHeight       int
	BarQuietZone    int
	BarTextDistance int
	BarFontSize     float64
}

// DefaultOptions returns the geometry used by the application
func DefaultOptions() Options {
	return Options{
		QRModuleSize:    QRModuleSize,
		BarModuleWidth:  BarModuleWidth,
		BarHeight:       BarHeight,
		BarQuietZone:    BarQuietZone,
		BarTextDistance: BarTextDistance,
		BarFontSize:     BarFontSize,
	}
}

// EncodingError is returned when a library refuses to encode an identifier,
// for example because it contains characters outside Code128's set.
type EncodingError struct {
	Kind model.CodeKind
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s encoding failed: %v", e.Kind, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Service renders QR codes and Code128 barcodes. It is stateless apart from
// the lazily parsed caption font.
type Service struct {
	opts Options

	fontOnce sync.Once
	font     *opentype.Font
	fontErr  error
}

// NewService creates an encoder with the given geometry
func NewService(opts Options) *Service {
	return &Service{opts: opts}
}

// Options returns the geometry the service renders with
func (s *Service) Options() Options {
	return s.opts
}

// Encode dispatches to the QR or barcode renderer
func (s *Service) Encode(kind model.CodeKind, value string) (image.Image, error) {
	if err := Validate(value).Err(); err != nil {
		return nil, err
	}

	var (
		img image.Image
		err error
	)
	switch kind {
	case model.KindQR:
		img, err = s.QR(value)
	case model.KindBarcode:
		img, err = s.Barcode(value)
	default:
		return nil, fmt.Errorf("unsupported code kind: %q", kind)
	}
	if err != nil {
		log.Printf("Encoding failed: kind=%s err=%v", kind, err)
		return nil, err
	}

	size := img.Bounds().Size()
	log.Printf("Encoded %s: %d chars -> %dx%d px", kind, utf8.RuneCountInString(value), size.X, size.Y)
	return img, nil
}

// captionFont parses the bundled Go Regular font once
func (s *Service) captionFont() (*opentype.Font, error) {
	s.fontOnce.Do(func() {
		s.font, s.fontErr = opentype.Parse(goregular.TTF)
		if s.fontErr != nil {
			s.fontErr = fmt.Errorf("failed to parse caption font: %w", s.fontErr)
		}
	})
	return s.font, s.fontErr
}
