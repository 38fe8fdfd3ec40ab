package physics

// MotionState is the kinematic part of a body advanced by one integration step.
type MotionState struct {
	Position        Vector2D
	Velocity        Vector2D
	Heading         Angle
	AngularVelocity float64
}

// StepOptions selects the optional parts of an integration step.
type StepOptions struct {
	// Rotate advances Heading by AngularVelocity*dt.
	Rotate bool
	// Friction and AngularFriction are per-second damping rates, applied
	// only when Damp is set.
	Damp            bool
	Friction        float64
	AngularFriction float64
}

// UpdateMotion advances state by dt with explicit Euler. Velocity is damped
// before it moves the position.
func UpdateMotion(state *MotionState, deltaTime float64, opts StepOptions) {
	if opts.Damp {
		state.Velocity = state.Velocity.Scale(dampFactor(opts.Friction, deltaTime))
		state.AngularVelocity *= dampFactor(opts.AngularFriction, deltaTime)
	}

	if opts.Rotate && state.AngularVelocity != 0 {
		state.Heading = state.Heading.Add(state.AngularVelocity * deltaTime)
	}

	state.Position = state.Position.Add(state.Velocity.Scale(deltaTime))
}

func dampFactor(rate, deltaTime float64) float64 {
	return max(0, 1-rate*deltaTime)
}
