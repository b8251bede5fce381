package encode

import (
	"image"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/ytget/codegen/internal/model"
)

// QR renders value as a QR symbol. The version is chosen by the library to fit
// the data; error correction is Medium (~15% recovery).
func (s *Service) QR(value string) (image.Image, error) {
	q, err := qrcode.New(value, qrcode.Medium)
	if err != nil {
		return nil, &EncodingError{Kind: model.KindQR, Err: err}
	}

	q.ForegroundColor = color.Black
	q.BackgroundColor = color.White
	q.DisableBorder = false

	// A negative size asks for a fixed number of pixels per module.
	return q.Image(-s.opts.QRModuleSize), nil
}
