package viz

import (
	"strings"

	"github.com/hullscope/hullscope/internal/geom"
)

// Braille cells pack a 2x4 dot grid per character:
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// so a Width x Height canvas addresses (Width*2) x (Height*4) dots.
// Unicode offset 0x2800.
var dotMask = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const emptyCell = 0x2800

type Canvas struct {
	Width, Height int
	grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		grid:   make([][]rune, h),
	}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		for j := range c.grid[i] {
			c.grid[i][j] = emptyCell
		}
	}
	return c
}

// DotsWide and DotsHigh are the canvas dimensions in dot coordinates.
func (c *Canvas) DotsWide() int { return c.Width * 2 }
func (c *Canvas) DotsHigh() int { return c.Height * 4 }

// Set turns on the dot at (x, y) in dot coordinates. Out-of-range dots
// are dropped.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.grid[row][col] |= dotMask[y%4][x%2]
}

// At reports whether the dot at (x, y) is on.
func (c *Canvas) At(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.grid[row][col]&dotMask[y%4][x%2] != 0
}

// Marker draws a 3x3 dot blob so a single point stands out from the
// field.
func (c *Canvas) Marker(x, y int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c.Set(x+dx, y+dy)
		}
	}
}

// Clear resets every cell.
func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = emptyCell
		}
	}
}

// DrawLine draws a segment between two dots using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Viewport maps world coordinates onto canvas dots. World Y grows upward,
// dot Y grows downward, so the mapping flips the vertical axis.
type Viewport struct {
	minX, minY     float64
	scaleX, scaleY float64
	margin         int
	dotsH          int
}

// FitViewport frames the given points with a small margin. Degenerate
// spans (all points on one vertical or horizontal line) get a unit span
// so the mapping stays finite.
func FitViewport(pts []geom.Point, c *Canvas) Viewport {
	const margin = 2

	minX, minY := 0.0, 0.0
	maxX, maxY := 1.0, 1.0
	if len(pts) > 0 {
		minX, minY = pts[0].X, pts[0].Y
		maxX, maxY = pts[0].X, pts[0].Y
		for _, p := range pts[1:] {
			minX = minFloat(minX, p.X)
			minY = minFloat(minY, p.Y)
			maxX = maxFloat(maxX, p.X)
			maxY = maxFloat(maxY, p.Y)
		}
	}

	spanX := maxX - minX
	if spanX == 0 {
		spanX = 1
	}
	spanY := maxY - minY
	if spanY == 0 {
		spanY = 1
	}

	usableW := c.DotsWide() - 2*margin - 1
	usableH := c.DotsHigh() - 2*margin - 1
	if usableW < 1 {
		usableW = 1
	}
	if usableH < 1 {
		usableH = 1
	}

	return Viewport{
		minX:   minX,
		minY:   minY,
		scaleX: float64(usableW) / spanX,
		scaleY: float64(usableH) / spanY,
		margin: margin,
		dotsH:  c.DotsHigh(),
	}
}

// Dot converts a world point to dot coordinates.
func (v Viewport) Dot(p geom.Point) (int, int) {
	x := v.margin + int((p.X-v.minX)*v.scaleX+0.5)
	y := v.dotsH - 1 - v.margin - int((p.Y-v.minY)*v.scaleY+0.5)
	return x, y
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
