// Package export renders comparison runs into standalone SVG documents:
// the hull as crisp vector geometry, or a replay frame dot-for-dot as
// the terminal showed it.
package export

import (
	"fmt"
	"strings"

	"github.com/hullscope/hullscope/internal/geom"
	"github.com/hullscope/hullscope/internal/viz"
)

// HullSVG draws the input set and its hull: every point as a dot, hull
// vertices emphasized, the hull itself as a closed outline. Degenerate
// inputs (under 3 points) render as an empty document body.
func HullSVG(points, hull []geom.Point, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if len(points) > 0 {
		minX, maxX := points[0].X, points[0].X
		minY, maxY := points[0].Y, points[0].Y
		for _, p := range points {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}

		rangeX := maxX - minX
		rangeY := maxY - minY
		if rangeX == 0 {
			rangeX = 1
		}
		if rangeY == 0 {
			rangeY = 1
		}
		minX -= rangeX * 0.1
		maxX += rangeX * 0.1
		minY -= rangeY * 0.1
		maxY += rangeY * 0.1
		rangeX = maxX - minX
		rangeY = maxY - minY

		// SVG y grows downward, plane y grows upward.
		toSVG := func(p geom.Point) (float64, float64) {
			x := (p.X - minX) / rangeX * float64(width)
			y := float64(height) - (p.Y-minY)/rangeY*float64(height)
			return x, y
		}

		if len(hull) >= 3 {
			sb.WriteString(`<path fill="none" stroke="#00ff00" stroke-width="1.5" d="M`)
			for i, p := range hull {
				x, y := toSVG(p)
				if i == 0 {
					sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
				} else {
					sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
				}
			}
			sb.WriteString(" Z\"/>\n")
		}

		sb.WriteString(`<g fill="#b8b8b8">` + "\n")
		for _, p := range points {
			x, y := toSVG(p)
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2"/>
`, x, y))
		}
		sb.WriteString("</g>\n")

		sb.WriteString(`<g fill="#00ff00">` + "\n")
		for _, p := range hull {
			x, y := toSVG(p)
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3.5"/>
`, x, y))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// FrameSVG converts a braille canvas frame to SVG, one circle per lit
// dot, preserving the terminal picture exactly.
func FrameSVG(c *viz.Canvas, scale float64) string {
	if c == nil {
		return ""
	}
	if scale <= 0 {
		scale = 4
	}

	width := float64(c.DotsWide()) * scale
	height := float64(c.DotsHigh()) * scale
	dotRadius := scale * 0.4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	for y := 0; y < c.DotsHigh(); y++ {
		for x := 0; x < c.DotsWide(); x++ {
			if !c.At(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
