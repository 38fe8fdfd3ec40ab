// pkg/physics/vector.go
package physics

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrZeroVector is returned by constructors that need a direction and were given
// a zero-length vector.
var ErrZeroVector = errors.New("zero-length vector has no direction")

// parallelEpsilon is the determinant magnitude below which two lines are
// treated as parallel by CrossPoint.
const parallelEpsilon = 1e-9

// Vector2D represents a 2D vector with x and y components
type Vector2D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns magnitude squared (optimization for comparisons)
func (v Vector2D) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// IsZero reports whether both components are exactly zero.
func (v Vector2D) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Unit returns a vector of length 1 in the same direction.
// The zero vector has no direction and is returned unchanged; callers that need
// a real direction must check IsZero first.
func (v Vector2D) Unit() Vector2D {
	length := v.Length()
	if length == 0 {
		return Vector2D{}
	}
	return Vector2D{
		X: v.X / length,
		Y: v.Y / length,
	}
}

// Normal returns the vector rotated a quarter turn counter-clockwise: (x, y) -> (-y, x).
// Rectangle vertex winding relies on this convention.
func (v Vector2D) Normal() Vector2D {
	return Vector2D{X: -v.Y, Y: v.X}
}

// Distance returns the distance between two vectors
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// Dot returns the dot product of two vectors
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product, a signed area proxy.
func (v Vector2D) Cross(other Vector2D) float64 {
	return v.X*other.Y - v.Y*other.X
}

// CrossScalar returns w × v for an angular velocity w around the z axis.
func CrossScalar(w float64, v Vector2D) Vector2D {
	return Vector2D{X: -w * v.Y, Y: w * v.X}
}

// Angle returns the angle of the vector in radians
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle creates a vector from an angle and magnitude
func FromAngle(angle float64, magnitude float64) Vector2D {
	return Vector2D{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}

// Rotate rotates the vector by angle (in radians)
func (v Vector2D) Rotate(angle float64) Vector2D {
	r := mgl64.Rotate2D(angle).Mul2x1(mgl64.Vec2{v.X, v.Y})
	return Vector2D{X: r[0], Y: r[1]}
}

// CrossPoint returns the intersection of the infinite line through a1, a2 with
// the infinite line through b1, b2. ok is false when the lines are parallel.
func CrossPoint(a1, a2, b1, b2 Vector2D) (point Vector2D, ok bool) {
	da := a2.Sub(a1)
	db := b2.Sub(b1)

	det := da.Cross(db)
	if math.Abs(det) < parallelEpsilon {
		return Vector2D{}, false
	}

	t := b1.Sub(a1).Cross(db) / det
	return a1.Add(da.Scale(t)), true
}
