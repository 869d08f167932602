package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

const testPayload = "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Jane Doe\r\nEMAIL;TYPE=INTERNET:jane@example.com\r\nEND:VCARD\r\n"

func TestImageDimensions(t *testing.T) {
	style := DefaultStyle()
	style.ModuleSize = 10

	img, err := Image(testPayload, style)
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != b.Dy() {
		t.Fatalf("image is not square: %dx%d", b.Dx(), b.Dy())
	}
	if b.Dx()%style.ModuleSize != 0 {
		t.Errorf("side %d is not a multiple of module size %d", b.Dx(), style.ModuleSize)
	}

	modules := b.Dx() / style.ModuleSize
	data := modules - 2*QuietZone
	if data < 21 || (data-21)%4 != 0 {
		t.Errorf("module count %d is not a valid QR dimension plus quiet zone", modules)
	}
}

func TestImageEmptyPayload(t *testing.T) {
	for _, text := range []string{"", "   ", "\r\n"} {
		if _, err := Image(text, DefaultStyle()); !errors.Is(err, ErrEmptyPayload) {
			t.Errorf("Image(%q): expected ErrEmptyPayload, got %v", text, err)
		}
	}
}

func TestImagePayloadTooLarge(t *testing.T) {
	_, err := Image(strings.Repeat("a", 5000), DefaultStyle())
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("expected ErrPayloadTooLarge, got %v", err)
	}
}

func TestImageIdempotent(t *testing.T) {
	style := DefaultStyle()
	style.ModuleSize = 8
	style.CornerRadius = 0.3
	style.Foreground = color.RGBA{20, 40, 80, 255}

	a, err := Image(testPayload, style)
	if err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	b, err := Image(testPayload, style)
	if err != nil {
		t.Fatalf("second render failed: %v", err)
	}

	if !a.Bounds().Eq(b.Bounds()) || !bytes.Equal(a.Pix, b.Pix) {
		t.Error("repeated renders are not pixel-identical")
	}
}

func TestOpaqueBackgroundInvariant(t *testing.T) {
	fg := color.RGBA{10, 20, 30, 255}
	bg := color.RGBA{200, 210, 220, 255}
	style := Style{ModuleSize: 6, Foreground: fg, Background: bg}

	img, err := Image(testPayload, style)
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}

	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c != fg && c != bg {
				t.Fatalf("pixel (%d,%d) = %+v is neither foreground nor background", x, y, c)
			}
		}
	}
}

func TestTransparentBackgroundInvariant(t *testing.T) {
	fg := color.RGBA{0, 0, 0, 255}
	style := Style{
		ModuleSize:  6,
		Foreground:  fg,
		Background:  color.RGBA{255, 0, 0, 255}, // must be ignored
		Transparent: true,
	}

	img, err := Image(testPayload, style)
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}

	sawOn := false
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			c := img.RGBAAt(x, y)
			switch {
			case c == fg:
				sawOn = true
			case c.A == 0:
				// off module, fully transparent
			default:
				t.Fatalf("pixel (%d,%d) = %+v is neither opaque foreground nor transparent", x, y, c)
			}
		}
	}
	if !sawOn {
		t.Error("no foreground modules drawn")
	}
}

func TestRadiusClampedNotRejected(t *testing.T) {
	style := DefaultStyle()
	style.CornerRadius = 40 // way past the cap, must clamp to 0.5

	img, err := Image(testPayload, style)
	if err != nil {
		t.Fatalf("oversized radius should clamp, got error: %v", err)
	}
	if img.Bounds().Dx() == 0 {
		t.Error("empty image")
	}

	if s := (Style{CornerRadius: 40}).normalized(); s.CornerRadius != MaxRadiusFraction {
		t.Errorf("normalized radius = %v, want %v", s.CornerRadius, MaxRadiusFraction)
	}
	if s := (Style{CornerRadius: -1}).normalized(); s.CornerRadius != 0 {
		t.Errorf("normalized negative radius = %v, want 0", s.CornerRadius)
	}
}

func TestRoundTripSquareModules(t *testing.T) {
	img, err := Image(testPayload, DefaultStyle())
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}

	decoded, err := Decode(img)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded != testPayload {
		t.Errorf("round trip mismatch:\ngot:  %q\nwant: %q", decoded, testPayload)
	}
}

func TestRoundTripRoundedModules(t *testing.T) {
	style := DefaultStyle()
	style.ModuleSize = 12
	style.CornerRadius = 0.25

	img, err := Image(testPayload, style)
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}

	decoded, err := Decode(img)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded != testPayload {
		t.Errorf("round trip mismatch with rounded modules:\ngot:  %q\nwant: %q", decoded, testPayload)
	}
}

func TestDecodePNG(t *testing.T) {
	img, err := Image(testPayload, DefaultStyle())
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}

	decoded, err := DecodePNG(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodePNG failed: %v", err)
	}
	if decoded != testPayload {
		t.Errorf("PNG round trip mismatch:\ngot:  %q\nwant: %q", decoded, testPayload)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(nil); !errors.Is(err, ErrDecode) {
		t.Errorf("Decode(nil): expected ErrDecode, got %v", err)
	}
	if _, err := DecodePNG(nil); !errors.Is(err, ErrDecode) {
		t.Errorf("DecodePNG(nil): expected ErrDecode, got %v", err)
	}
	if _, err := DecodePNG([]byte("not a png")); !errors.Is(err, ErrDecode) {
		t.Errorf("DecodePNG(garbage): expected ErrDecode, got %v", err)
	}
}

func TestFitTo(t *testing.T) {
	img, err := Image(testPayload, DefaultStyle())
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}

	out := FitTo(img, 512)
	if out.Bounds().Dx() != 512 || out.Bounds().Dy() != 512 {
		t.Errorf("FitTo produced %dx%d, want 512x512", out.Bounds().Dx(), out.Bounds().Dy())
	}

	if same := FitTo(img, 0); same != img {
		t.Error("FitTo(0) should return the image unchanged")
	}
	if same := FitTo(img, img.Bounds().Dx()); same != img {
		t.Error("FitTo(native side) should return the image unchanged")
	}
}

func TestSVG(t *testing.T) {
	style := DefaultStyle()
	style.ModuleSize = 10
	style.CornerRadius = 0.3

	data, err := SVG(testPayload, style)
	if err != nil {
		t.Fatalf("SVG failed: %v", err)
	}
	svg := string(data)

	if !strings.HasPrefix(svg, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(svg, `rx="3.00"`) {
		t.Errorf("expected rounded rects with rx=3.00, got:\n%s", svg[:200])
	}
	if !strings.Contains(svg, `fill="rgb(255,255,255)"`) {
		t.Error("missing opaque background rect")
	}
}

func TestSVGTransparent(t *testing.T) {
	style := DefaultStyle()
	style.Transparent = true

	data, err := SVG(testPayload, style)
	if err != nil {
		t.Fatalf("SVG failed: %v", err)
	}
	if strings.Contains(string(data), "rgb(255,255,255)") {
		t.Error("transparent SVG must not contain a background rect")
	}
}

func TestSVGEmptyPayload(t *testing.T) {
	if _, err := SVG("", DefaultStyle()); !errors.Is(err, ErrEmptyPayload) {
		t.Errorf("expected ErrEmptyPayload, got %v", err)
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#000000", color.RGBA{0, 0, 0, 255}, false},
		{"FFFFFF", color.RGBA{255, 255, 255, 255}, false},
		{"#1a2B3c", color.RGBA{0x1a, 0x2b, 0x3c, 255}, false},
		{"", color.RGBA{}, true},
		{"#fff", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
	}
	for _, tc := range cases {
		got, err := ParseHexColor(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseHexColor(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}
