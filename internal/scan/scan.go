// Package scan decodes QR codes and Code128 barcodes from images. It uses
// github.com/makiuchi-d/gozxing, which shares no code with the encoders, so
// it doubles as an independent check of what the application writes.
package scan

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/ytget/codegen/internal/model"
)

// ErrUnsupportedImage is returned for files that are neither PNG nor JPEG
var ErrUnsupportedImage = errors.New("unsupported image format")

var (
	pngSig  = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	jpegSig = []byte{0xff, 0xd8, 0xff}
)

// DecodeFile opens an image file and decodes the symbol in it. An empty kind
// tries QR first and then Code128.
func DecodeFile(path string, kind model.CodeKind) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening image file: %w", err)
	}
	defer f.Close()

	return DecodeReader(f, kind)
}

// DecodeReader is DecodeFile for an already opened stream
func DecodeReader(r io.Reader, kind model.CodeKind) (string, error) {
	header := make([]byte, len(pngSig))
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("reading image header: %w", err)
	}
	header = header[:n]
	if !bytes.HasPrefix(header, pngSig) && !bytes.HasPrefix(header, jpegSig) {
		return "", ErrUnsupportedImage
	}

	img, _, err := image.Decode(io.MultiReader(bytes.NewReader(header), r))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	return Decode(img, kind)
}

// Decode reads the symbol of the given kind from img
func Decode(img image.Image, kind model.CodeKind) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("creating bitmap: %w", err)
	}

	switch kind {
	case model.KindQR:
		return decodeQR(bmp)
	case model.KindBarcode:
		return decodeCode128(bmp)
	case "":
		if text, err := decodeQR(bmp); err == nil {
			return text, nil
		}
		return decodeCode128(bmp)
	default:
		return "", fmt.Errorf("unsupported code kind: %q", kind)
	}
}

func decodeQR(bmp *gozxing.BinaryBitmap) (string, error) {
	// The encoder writes raw UTF-8 without an ECI marker.
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_CHARACTER_SET: "UTF-8",
	}
	result, err := qrcode.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		return "", fmt.Errorf("no QR code found in image: %w", err)
	}
	return result.GetText(), nil
}

func decodeCode128(bmp *gozxing.BinaryBitmap) (string, error) {
	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	}
	result, err := oned.NewCode128Reader().Decode(bmp, hints)
	if err != nil {
		return "", fmt.Errorf("no Code128 barcode found in image: %w", err)
	}
	return result.GetText(), nil
}
