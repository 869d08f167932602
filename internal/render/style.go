package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DefaultModuleSize is the module edge length in pixels used when a style
// does not set one.
const DefaultModuleSize = 16

// MaxRadiusFraction caps the corner radius at half the module size; beyond
// that the rounding degenerates and leaves gaps between modules.
const MaxRadiusFraction = 0.5

// Style holds the user-selected QR appearance options for a single render.
// It is a plain value passed into each call, never ambient state, so renders
// stay pure and repeatable.
type Style struct {
	ModuleSize   int
	CornerRadius float64 // fraction of module size, clamped to [0, 0.5]
	Foreground   color.RGBA
	Background   color.RGBA
	Transparent  bool // when set, wins over Background
}

// DefaultStyle returns black-on-white squares at the default module size.
func DefaultStyle() Style {
	return Style{
		ModuleSize: DefaultModuleSize,
		Foreground: color.RGBA{0, 0, 0, 255},
		Background: color.RGBA{255, 255, 255, 255},
	}
}

// normalized returns a copy with the module size defaulted, the radius
// fraction clamped rather than rejected, and color alphas forced opaque.
// The Background value is left untouched when Transparent is set so a caller
// toggling transparency off gets their color back.
func (s Style) normalized() Style {
	if s.ModuleSize <= 0 {
		s.ModuleSize = DefaultModuleSize
	}
	if s.CornerRadius < 0 {
		s.CornerRadius = 0
	}
	if s.CornerRadius > MaxRadiusFraction {
		s.CornerRadius = MaxRadiusFraction
	}
	s.Foreground.A = 255
	if !s.Transparent {
		s.Background.A = 255
	}
	return s
}

// ParseHexColor parses a "#RRGGBB" (or "RRGGBB") string into an opaque RGBA.
func ParseHexColor(s string) (color.RGBA, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(v) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	r, err1 := strconv.ParseUint(v[0:2], 16, 8)
	g, err2 := strconv.ParseUint(v[2:4], 16, 8)
	b, err3 := strconv.ParseUint(v[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}, nil
}
