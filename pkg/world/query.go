package world

import (
	"math"

	"github.com/opd-ai/go-rigid2d/pkg/body"
	"github.com/opd-ai/go-rigid2d/pkg/physics"
)

// indexCapacity is the number of bodies per quad before it subdivides.
const indexCapacity = 8

// refreshIndex rebuilds the spatial index from committed positions. Caller
// holds the write lock.
func (m *Map) refreshIndex() {
	bodies := make([]body.Object, 0, len(m.statics)+len(m.dynamics))
	bodies = append(bodies, m.statics...)
	for _, d := range m.dynamics {
		bodies = append(bodies, d)
	}

	if len(bodies) == 0 {
		m.index = nil
		return
	}

	// Bodies may leave the boundary after a bad step, so the index covers
	// every body rather than the boundary alone.
	lo := bodies[0].GetCurrentPosition()
	hi := lo
	for _, b := range bodies[1:] {
		p := b.GetCurrentPosition()
		lo = physics.Vector2D{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y)}
		hi = physics.Vector2D{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y)}
	}
	area := physics.RectFromCorners(lo, hi).Expand(1)

	if m.index == nil || m.index.Boundary != area {
		m.index = physics.NewQuadTree[body.Object](area, indexCapacity)
	} else {
		m.index.Clear()
	}
	for _, b := range bodies {
		m.index.Insert(b.GetCurrentPosition(), b)
	}
}

// Query returns every body whose bounding circle, at its committed position,
// overlaps area. Renderers use it to skip bodies outside the view.
func (m *Map) Query(area physics.Rect) []body.Object {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.index == nil {
		return nil
	}

	reach := 0.0
	for _, s := range m.statics {
		reach = math.Max(reach, s.BoundingRadius())
	}
	for _, d := range m.dynamics {
		reach = math.Max(reach, d.BoundingRadius())
	}

	var found []body.Object
	for _, b := range m.index.Query(area.Expand(reach)) {
		if circleOverlapsRect(b.GetCurrentPosition(), b.BoundingRadius(), area) {
			found = append(found, b)
		}
	}
	return found
}

func circleOverlapsRect(center physics.Vector2D, radius float64, r physics.Rect) bool {
	closest := physics.Vector2D{
		X: math.Max(r.Center.X-r.Width/2, math.Min(center.X, r.Center.X+r.Width/2)),
		Y: math.Max(r.Center.Y-r.Height/2, math.Min(center.Y, r.Center.Y+r.Height/2)),
	}
	return closest.Distance(center) <= radius
}
