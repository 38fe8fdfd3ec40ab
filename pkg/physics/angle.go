// pkg/physics/angle.go
package physics

import "math"

const fullTurn = 2 * math.Pi

// maxLoopRadian is the magnitude past which whole-turn steps stop being
// exact and normalizeRadian switches to math.Mod.
const maxLoopRadian = (1 << 20) * fullTurn

// Angle is a radian value kept in [0, 2π).
type Angle struct {
	radian float64
}

// NewAngle creates an angle normalised into [0, 2π).
func NewAngle(radian float64) Angle {
	return Angle{radian: normalizeRadian(radian)}
}

// Radians returns the stored value.
func (a Angle) Radians() float64 {
	return a.radian
}

// Set replaces the value, normalising it.
func (a *Angle) Set(radian float64) {
	a.radian = normalizeRadian(radian)
}

// Add returns the angle turned by delta radians.
func (a Angle) Add(delta float64) Angle {
	return NewAngle(a.radian + delta)
}

// Direction returns the unit vector pointing along the angle, measured from +X.
func (a Angle) Direction() Vector2D {
	return Vector2D{X: 1}.Rotate(a.radian)
}

// normalizeRadian folds r into [0, 2π) by repeated whole-turn corrections.
// Far out of range inputs are reduced with math.Mod first.
func normalizeRadian(r float64) float64 {
	if math.IsInf(r, 0) {
		panic("physics: angle is not finite")
	}
	if math.Abs(r) > maxLoopRadian {
		r = math.Mod(r, fullTurn)
		if r < 0 {
			r += fullTurn
		}
		if r >= fullTurn {
			r = 0
		}
		return r
	}
	for r < 0 || r >= fullTurn {
		if r >= fullTurn {
			r -= fullTurn
		} else {
			r += fullTurn
		}
	}
	return r
}
