package collision

import "math"

// Separate pushes both bodies apart along the normal until they no longer
// overlap, each moving in proportion to its inverse mass. Only potential
// positions change.
func (c *Contact) Separate() {
	a := inertialOf(c.A)
	b := inertialOf(c.B)

	total := a.inverseMass + b.inverseMass
	if total == 0 {
		return
	}
	share := c.Depth / total

	if a.inverseMass > 0 {
		c.A.SetPotentialPosition(c.A.GetPotentialPosition().Sub(c.Normal.Scale(share * a.inverseMass)))
	}
	if b.movable != nil && b.inverseMass > 0 {
		b.movable.SetPotentialPosition(b.movable.GetPotentialPosition().Add(c.Normal.Scale(share * b.inverseMass)))
	}
}

// ApplyImpulse changes linear and angular velocities of both bodies with a
// single impulse at the contact point. Restitution is the smaller of the two
// elasticities. Nothing happens when the bodies are already moving apart.
//
// It returns the impulse magnitude along the normal, or 0 when none was applied.
func (c *Contact) ApplyImpulse() float64 {
	a := inertialOf(c.A)
	b := inertialOf(c.B)

	rA := c.Point.Sub(c.A.GetPotentialPosition())
	rB := c.Point.Sub(c.B.GetPotentialPosition())

	closing := a.pointVelocity(rA).Sub(b.pointVelocity(rB)).Dot(c.Normal)
	if closing <= 0 {
		return 0
	}

	restitution := math.Min(a.elasticity, b.elasticity)

	armA := rA.Cross(c.Normal)
	armB := rB.Cross(c.Normal)
	denominator := a.inverseMass + b.inverseMass +
		a.inverseInertia*armA*armA +
		b.inverseInertia*armB*armB
	if denominator == 0 {
		return 0
	}

	j := (-closing*restitution - closing) / denominator
	impulse := c.Normal.Scale(j)

	c.A.SetVelocity(a.velocity.Add(impulse.Scale(a.inverseMass)))
	c.A.SetAngularVelocity(a.angularVelocity + a.inverseInertia*rA.Cross(impulse))

	if b.movable != nil {
		b.movable.SetVelocity(b.velocity.Sub(impulse.Scale(b.inverseMass)))
		b.movable.SetAngularVelocity(b.angularVelocity - b.inverseInertia*rB.Cross(impulse))
	}

	return -j
}

// Resolve separates the bodies and then applies the impulse.
func (c *Contact) Resolve() float64 {
	c.Separate()
	return c.ApplyImpulse()
}
