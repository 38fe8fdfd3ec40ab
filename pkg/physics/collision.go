// pkg/physics/collision.go
package physics

import "math"

// contactTolerance is how close two vertex projections must be for both to be
// treated as the deepest point. Edge-on contacts report the midpoint.
const contactTolerance = 1e-6

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides checks if two circles are colliding
func (c Circle) Collides(other Circle) bool {
	return c.Center.Distance(other.Center) < c.Radius+other.Radius
}

// CollisionResult contains information about a collision
type CollisionResult struct {
	Collided bool
	// Normal is the unit separating axis, pointing from the first shape toward the second.
	Normal       Vector2D
	Penetration  float64
	ContactPoint Vector2D
}

// Convex is a convex polygon or segment described by the vertices of its
// potential (not yet committed) state and its primary direction.
type Convex interface {
	GetPotentialVertices() []Vector2D
	GetDirection() Vector2D
}

type projection struct {
	min, max  float64
	minVertex Vector2D
}

func project(axis Vector2D, vertices []Vector2D) projection {
	if len(vertices) < 2 {
		panic("physics: convex shape needs at least two vertices")
	}

	p := projection{min: axis.Dot(vertices[0])}
	p.max = p.min
	for _, v := range vertices[1:] {
		d := axis.Dot(v)
		if d < p.min {
			p.min = d
		}
		if d > p.max {
			p.max = d
		}
	}

	var sum Vector2D
	n := 0
	for _, v := range vertices {
		if axis.Dot(v)-p.min <= contactTolerance {
			sum = sum.Add(v)
			n++
		}
	}
	p.minVertex = sum.Scale(1 / float64(n))

	return p
}

// SAT runs the separating axis test on two convex shapes. The candidate axes are
// each shape's direction and its normal, which is exhaustive for rectangles and
// segments.
//
// The result's Normal points from a toward b and Penetration is the smallest
// overlap found. ContactPoint is the deepest vertex of the incident shape, the
// one whose face did not provide the axis.
func SAT(a, b Convex) CollisionResult {
	va, vb := a.GetPotentialVertices(), b.GetPotentialVertices()
	da, db := a.GetDirection(), b.GetDirection()
	axes := [4]Vector2D{da.Normal(), da, db.Normal(), db}

	minOverlap := math.Inf(1)
	var smallest Vector2D
	referenceOnB := false

	for i, axis := range axes {
		pa := project(axis, va)
		pb := project(axis, vb)

		overlap := math.Min(pa.max, pb.max) - math.Max(pa.min, pb.min)

		// One interval nested in the other: the plain overlap underestimates the
		// push needed to get out through the nearer end.
		if (pa.max > pb.max && pa.min < pb.min) || (pa.max < pb.max && pa.min > pb.min) {
			dMin := math.Abs(pa.min - pb.min)
			dMax := math.Abs(pa.max - pb.max)
			if dMin < dMax {
				overlap += dMin
			} else {
				overlap += dMax
				axis = axis.Scale(-1)
			}
		}

		if overlap <= 0 {
			return CollisionResult{}
		}
		if overlap >= minOverlap {
			continue
		}

		minOverlap = overlap
		smallest = axis
		if i < 2 {
			referenceOnB = false
			if pa.max > pb.max {
				smallest = smallest.Scale(-1)
			}
		} else {
			referenceOnB = true
			if pa.max < pb.max {
				smallest = smallest.Scale(-1)
			}
		}
	}

	result := CollisionResult{Collided: true, Penetration: minOverlap}
	if referenceOnB {
		// smallest points from b toward a; a's deepest vertex is its minimum.
		result.ContactPoint = project(smallest, va).minVertex
		result.Normal = smallest.Scale(-1)
	} else {
		result.ContactPoint = project(smallest, vb).minVertex
		result.Normal = smallest
	}

	return result
}

// QuadTree for spatial partitioning
type QuadTree[T any] struct {
	Boundary  Rect
	Capacity  int
	Points    []Vector2D
	Objects   []T
	Divided   bool
	NorthWest *QuadTree[T]
	NorthEast *QuadTree[T]
	SouthWest *QuadTree[T]
	SouthEast *QuadTree[T]

	depth int
}

// maxQuadTreeDepth stops subdivision when many points share a location.
const maxQuadTreeDepth = 16

// Rect represents a rectangular area
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// RectFromCorners builds a Rect spanning two opposite corners.
func RectFromCorners(bottomLeft, topRight Vector2D) Rect {
	return Rect{
		Center: bottomLeft.Add(topRight).Scale(0.5),
		Width:  math.Abs(topRight.X - bottomLeft.X),
		Height: math.Abs(topRight.Y - bottomLeft.Y),
	}
}

// Expand grows the rect by margin on every side.
func (r Rect) Expand(margin float64) Rect {
	return Rect{Center: r.Center, Width: r.Width + 2*margin, Height: r.Height + 2*margin}
}

func (r Rect) Contains(point Vector2D) bool {
	return point.X >= r.Center.X-r.Width/2 &&
		point.X < r.Center.X+r.Width/2 &&
		point.Y >= r.Center.Y-r.Height/2 &&
		point.Y < r.Center.Y+r.Height/2
}

// NewQuadTree creates a new quad tree with the given boundary and capacity
func NewQuadTree[T any](boundary Rect, capacity int) *QuadTree[T] {
	return &QuadTree[T]{
		Boundary: boundary,
		Capacity: capacity,
		Points:   make([]Vector2D, 0, capacity),
		Objects:  make([]T, 0, capacity),
		Divided:  false,
	}
}

// Insert stores object at point. It returns false when the point lies outside the tree.
func (qt *QuadTree[T]) Insert(point Vector2D, object T) bool {
	if !qt.Boundary.Contains(point) {
		return false
	}

	if !qt.Divided && (len(qt.Points) < qt.Capacity || qt.depth >= maxQuadTreeDepth) {
		qt.Points = append(qt.Points, point)
		qt.Objects = append(qt.Objects, object)
		return true
	}

	if !qt.Divided {
		qt.Subdivide()
	}

	return qt.NorthWest.Insert(point, object) ||
		qt.NorthEast.Insert(point, object) ||
		qt.SouthWest.Insert(point, object) ||
		qt.SouthEast.Insert(point, object)
}

// Subdivide splits the quadtree into four quadrants
func (qt *QuadTree[T]) Subdivide() {
	x := qt.Boundary.Center.X
	y := qt.Boundary.Center.Y
	w := qt.Boundary.Width / 2
	h := qt.Boundary.Height / 2

	nw := Rect{Center: Vector2D{X: x - w/2, Y: y + h/2}, Width: w, Height: h}
	ne := Rect{Center: Vector2D{X: x + w/2, Y: y + h/2}, Width: w, Height: h}
	sw := Rect{Center: Vector2D{X: x - w/2, Y: y - h/2}, Width: w, Height: h}
	se := Rect{Center: Vector2D{X: x + w/2, Y: y - h/2}, Width: w, Height: h}

	qt.NorthWest = NewQuadTree[T](nw, qt.Capacity)
	qt.NorthEast = NewQuadTree[T](ne, qt.Capacity)
	qt.SouthWest = NewQuadTree[T](sw, qt.Capacity)
	qt.SouthEast = NewQuadTree[T](se, qt.Capacity)
	for _, child := range []*QuadTree[T]{qt.NorthWest, qt.NorthEast, qt.SouthWest, qt.SouthEast} {
		child.depth = qt.depth + 1
	}
	qt.Divided = true
}

// Clear empties the tree and drops its children, keeping the boundary.
func (qt *QuadTree[T]) Clear() {
	qt.Points = qt.Points[:0]
	qt.Objects = qt.Objects[:0]
	qt.Divided = false
	qt.NorthWest, qt.NorthEast, qt.SouthWest, qt.SouthEast = nil, nil, nil, nil
}

// Query returns all objects whose points fall inside area
func (qt *QuadTree[T]) Query(area Rect) []T {
	found := make([]T, 0)

	if !qt.intersects(area) {
		return found
	}

	for i, point := range qt.Points {
		if area.Contains(point) {
			found = append(found, qt.Objects[i])
		}
	}

	if !qt.Divided {
		return found
	}

	found = append(found, qt.NorthWest.Query(area)...)
	found = append(found, qt.NorthEast.Query(area)...)
	found = append(found, qt.SouthWest.Query(area)...)
	found = append(found, qt.SouthEast.Query(area)...)

	return found
}

func (qt *QuadTree[T]) intersects(area Rect) bool {
	return !(area.Center.X-area.Width/2 > qt.Boundary.Center.X+qt.Boundary.Width/2 ||
		area.Center.X+area.Width/2 < qt.Boundary.Center.X-qt.Boundary.Width/2 ||
		area.Center.Y-area.Height/2 > qt.Boundary.Center.Y+qt.Boundary.Height/2 ||
		area.Center.Y+area.Height/2 < qt.Boundary.Center.Y-qt.Boundary.Height/2)
}
