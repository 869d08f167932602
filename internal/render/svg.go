package render

import (
	"fmt"
	"strings"
)

// SVG renders text as a styled QR vector image. Modules become <rect>
// elements, with an rx attribute when a corner radius is set; a transparent
// background simply omits the backdrop rectangle. The viewBox matches the
// raster geometry so PNG and SVG output scale identically.
func SVG(text string, style Style) ([]byte, error) {
	m, err := matrix(text)
	if err != nil {
		return nil, err
	}

	st := style.normalized()
	side := len(m) * st.ModuleSize
	radius := st.CornerRadius * float64(st.ModuleSize)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		side, side, side, side)

	if !st.Transparent {
		fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="rgb(%d,%d,%d)"/>`,
			side, side, st.Background.R, st.Background.G, st.Background.B)
	}

	fill := fmt.Sprintf("rgb(%d,%d,%d)", st.Foreground.R, st.Foreground.G, st.Foreground.B)
	rx := ""
	if radius > 0 {
		rx = fmt.Sprintf(` rx="%.2f"`, radius)
	}
	for y, row := range m {
		for x, on := range row {
			if !on {
				continue
			}
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d"%s fill="%s"/>`,
				x*st.ModuleSize, y*st.ModuleSize, st.ModuleSize, st.ModuleSize, rx, fill)
		}
	}

	b.WriteString(`</svg>`)
	return []byte(b.String()), nil
}
