// Package render turns a text payload into a styled QR code raster or vector
// image: colors, rounded modules, transparent background.
package render

import (
	"errors"
	"image"
	"image/draw"
	"strings"

	"github.com/fogleman/gg"
	qrcode "github.com/skip2/go-qrcode"
)

// Errors
var (
	ErrEmptyPayload    = errors.New("payload is empty")
	ErrPayloadTooLarge = errors.New("payload exceeds QR capacity")
	ErrDecode          = errors.New("failed to decode QR code")
)

// QuietZone is the blank border around the code, in modules. Four modules is
// the minimum the QR standard requires for reliable scanning.
const QuietZone = 4

// matrix returns the module grid for text, quiet zone included, at
// error-correction level M.
func matrix(text string) ([][]bool, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyPayload
	}
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, errors.Join(ErrPayloadTooLarge, err)
	}
	return q.Bitmap(), nil
}

// Image renders text as a styled QR raster. The result is a square RGBA image
// with side (modules + 2*QuietZone) * style.ModuleSize. Inputs are never
// mutated and the renderer keeps no reference to the returned image, so the
// same call is safe to repeat in a loop.
func Image(text string, style Style) (*image.RGBA, error) {
	m, err := matrix(text)
	if err != nil {
		return nil, err
	}

	st := style.normalized()
	side := len(m) * st.ModuleSize

	if st.CornerRadius == 0 {
		return drawSquare(m, st, side), nil
	}
	return drawRounded(m, st, side), nil
}

// drawSquare fills modules as exact pixel rectangles. No anti-aliasing, so
// every pixel is either the foreground, the background, or fully transparent.
func drawSquare(m [][]bool, st Style, side int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	if !st.Transparent {
		draw.Draw(img, img.Bounds(), &image.Uniform{C: st.Background}, image.Point{}, draw.Src)
	}
	fg := &image.Uniform{C: st.Foreground}
	for y, row := range m {
		for x, on := range row {
			if !on {
				continue
			}
			r := image.Rect(x*st.ModuleSize, y*st.ModuleSize, (x+1)*st.ModuleSize, (y+1)*st.ModuleSize)
			draw.Draw(img, r, fg, image.Point{}, draw.Src)
		}
	}
	return img
}

// drawRounded paints each module as a rounded rectangle. The corner radius is
// the clamped fraction of the module size.
func drawRounded(m [][]bool, st Style, side int) *image.RGBA {
	dc := gg.NewContext(side, side)
	if !st.Transparent {
		dc.SetColor(st.Background)
		dc.Clear()
	}
	dc.SetColor(st.Foreground)

	ms := float64(st.ModuleSize)
	radius := st.CornerRadius * ms
	for y, row := range m {
		for x, on := range row {
			if !on {
				continue
			}
			dc.DrawRoundedRectangle(float64(x)*ms, float64(y)*ms, ms, ms, radius)
		}
	}
	dc.Fill()

	return dc.Image().(*image.RGBA)
}
