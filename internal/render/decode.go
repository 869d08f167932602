package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
)

// Decode scans a QR code image and returns the embedded text payload.
func Decode(img image.Image) (string, error) {
	if img == nil {
		return "", ErrDecode
	}
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", errors.Join(ErrDecode, err)
	}
	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", errors.Join(ErrDecode, err)
	}
	return result.GetText(), nil
}

// DecodePNG scans a PNG-encoded QR code.
func DecodePNG(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrDecode
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return "", errors.Join(ErrDecode, err)
	}
	return Decode(img)
}
