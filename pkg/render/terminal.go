package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/opd-ai/go-rigid2d/pkg/physics"
	"github.com/opd-ai/go-rigid2d/pkg/world"
)

// Glyphs used by the terminal renderer
const (
	glyphEmpty   = ' '
	glyphStatic  = '#'
	glyphDynamic = '+'
	glyphCenter  = '@'
)

// TerminalRenderer provides a simple ASCII-based rendering for terminals.
// World y grows upward, so screen rows are flipped.
type TerminalRenderer struct {
	out       io.Writer
	width     int
	height    int
	buffer    [][]rune
	scale     float64 // world units per cell
	centerPos physics.Vector2D
}

// NewTerminalRenderer creates a new terminal renderer with the specified dimensions
func NewTerminalRenderer(out io.Writer, width, height int, scale float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	r := &TerminalRenderer{
		out:    out,
		width:  width,
		height: height,
		buffer: buffer,
		scale:  scale,
	}
	r.Clear()
	return r
}

// SetCenter sets the center position of the view
func (r *TerminalRenderer) SetCenter(pos physics.Vector2D) {
	r.centerPos = pos
}

// Fit centres the view on area and picks the smallest scale that shows all of it.
func (r *TerminalRenderer) Fit(area physics.Rect) {
	r.centerPos = area.Center
	r.scale = math.Max(area.Width/float64(r.width-1), area.Height/float64(r.height-1))
	if r.scale <= 0 {
		r.scale = 1
	}
}

// worldToScreen converts world coordinates to screen coordinates
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	x, y := r.screenPoint(pos)
	return int(math.Round(x)), int(math.Round(y))
}

// screenPoint is worldToScreen before rounding to a cell.
func (r *TerminalRenderer) screenPoint(pos physics.Vector2D) (float64, float64) {
	x := (pos.X-r.centerPos.X)/r.scale + float64(r.width-1)/2
	y := float64(r.height-1)/2 - (pos.Y-r.centerPos.Y)/r.scale
	return x, y
}

func (r *TerminalRenderer) plot(x, y int, glyph rune) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	// statics are drawn over everything but the body centres
	if r.buffer[y][x] == glyphCenter || (r.buffer[y][x] == glyphStatic && glyph == glyphDynamic) {
		return
	}
	r.buffer[y][x] = glyph
}

// drawSegment rasterises a segment by stepping along its longer axis. The
// segment is clipped to the screen first, so the step count never exceeds
// the screen size. Segments with a non-finite end are skipped.
func (r *TerminalRenderer) drawSegment(from, to physics.Vector2D, glyph rune) {
	fx0, fy0 := r.screenPoint(from)
	fx1, fy1 := r.screenPoint(to)
	if !isFinite(fx0) || !isFinite(fy0) || !isFinite(fx1) || !isFinite(fy1) {
		return
	}

	fx0, fy0, fx1, fy1, ok := clipSegment(fx0, fy0, fx1, fy1,
		-0.5, -0.5, float64(r.width)-0.5, float64(r.height)-0.5)
	if !ok {
		return
	}

	x0, y0 := int(math.Round(fx0)), int(math.Round(fy0))
	x1, y1 := int(math.Round(fx1)), int(math.Round(fy1))

	steps := max(abs(x1-x0), abs(y1-y0))
	if steps == 0 {
		r.plot(x0, y0, glyph)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(float64(x0) + t*float64(x1-x0)))
		y := int(math.Round(float64(y0) + t*float64(y1-y0)))
		r.plot(x, y, glyph)
	}
}

// Clear implements Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = glyphEmpty
		}
	}
}

// RenderBody implements Renderer. Bodies are drawn as the outline through
// their vertices; dynamic bodies also mark their centre.
func (r *TerminalRenderer) RenderBody(body world.BodyState) {
	glyph := glyphDynamic
	if body.Static {
		glyph = glyphStatic
	}

	n := len(body.Vertices)
	switch {
	case n == 2:
		r.drawSegment(body.Vertices[0], body.Vertices[1], glyph)
	case n > 2:
		for i := range body.Vertices {
			r.drawSegment(body.Vertices[i], body.Vertices[(i+1)%n], glyph)
		}
	}

	if !body.Static {
		x, y := r.screenPoint(body.Position)
		if isFinite(x) && isFinite(y) && x > -1 && y > -1 && x < float64(r.width) && y < float64(r.height) {
			r.plot(int(math.Round(x)), int(math.Round(y)), glyphCenter)
		}
	}
}

// Present implements Renderer. The frame is written in one call.
func (r *TerminalRenderer) Present(tick uint64) error {
	var sb strings.Builder
	sb.Grow((r.width + 3) * (r.height + 3))

	// Clear terminal
	sb.WriteString("\033[H\033[2J")

	sb.WriteString("+" + strings.Repeat("-", r.width) + "+\n")
	for y := range r.buffer {
		sb.WriteByte('|')
		sb.WriteString(string(r.buffer[y]))
		sb.WriteString("|\n")
	}
	sb.WriteString("+" + strings.Repeat("-", r.width) + "+\n")
	fmt.Fprintf(&sb, "tick %d\n", tick)

	if _, err := io.WriteString(r.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// clipSegment clips the segment to the rectangle [xmin, xmax] x [ymin, ymax]
// (Liang-Barsky). ok is false when nothing of it is inside.
func clipSegment(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}

	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
