package qr

import (
	"bytes"
	"image/png"

	"github.com/boombuler/barcode"
	qrcode "github.com/boombuler/barcode/qr"
)

// DefaultSize is the pixel edge of generated QR codes. Kiosk screens show
// them at roughly this size, so there is no point going bigger.
const DefaultSize = 330

// PNG encodes content into a QR code PNG of size x size pixels.
func PNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}

	code, err := qrcode.Encode(content, qrcode.L, qrcode.Auto)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
