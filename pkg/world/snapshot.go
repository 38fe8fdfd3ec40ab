package world

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/opd-ai/go-rigid2d/pkg/body"
	"github.com/opd-ai/go-rigid2d/pkg/physics"
)

// Snapshot is a copy of the committed world state.
type Snapshot struct {
	Tick   uint64      `json:"tick" yaml:"tick"`
	Bodies []BodyState `json:"bodies" yaml:"bodies"`
}

// BodyState represents a snapshot of one body. Statics come first, then
// dynamics, each in insertion order.
type BodyState struct {
	ID              body.ID            `json:"id" yaml:"id"`
	Kind            body.Kind          `json:"kind" yaml:"kind"`
	Static          bool               `json:"static" yaml:"static"`
	Position        physics.Vector2D   `json:"position" yaml:"position"`
	Direction       physics.Vector2D   `json:"direction" yaml:"direction"`
	Size            physics.Vector2D   `json:"size" yaml:"size"`
	Vertices        []physics.Vector2D `json:"vertices" yaml:"vertices"`
	Velocity        physics.Vector2D   `json:"velocity" yaml:"velocity"`
	AngularVelocity float64            `json:"angular_velocity" yaml:"angular_velocity"`
}

// Snapshot copies the committed state of every body.
func (m *Map) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Snapshot{
		Tick:   m.tick,
		Bodies: make([]BodyState, 0, len(m.statics)+len(m.dynamics)),
	}
	for _, o := range m.statics {
		s.Bodies = append(s.Bodies, objectState(o, true))
	}
	for _, d := range m.dynamics {
		state := objectState(d, false)
		state.Velocity = d.GetVelocity()
		state.AngularVelocity = d.GetAngularVelocity()
		s.Bodies = append(s.Bodies, state)
	}
	return s
}

func objectState(o body.Object, static bool) BodyState {
	return BodyState{
		ID:        o.GetID(),
		Kind:      o.Kind(),
		Static:    static,
		Position:  o.GetCurrentPosition(),
		Direction: o.GetDirection(),
		Size:      o.GetSize(),
		Vertices:  o.GetCurrentVertices(),
	}
}

// Checksum hashes the tick number and the kinematic state of every body.
// Identifiers are left out, so two worlds built from the same scene and fed
// the same time steps produce the same checksum.
func (s Snapshot) Checksum() uint64 {
	d := xxhash.New()
	var buf [8]byte

	writeUint := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	writeFloat := func(f float64) { writeUint(math.Float64bits(f)) }
	writeVector := func(v physics.Vector2D) {
		writeFloat(v.X)
		writeFloat(v.Y)
	}

	writeUint(s.Tick)
	for _, b := range s.Bodies {
		writeUint(uint64(b.Kind))
		writeVector(b.Position)
		writeVector(b.Direction)
		writeVector(b.Velocity)
		writeFloat(b.AngularVelocity)
	}
	return d.Sum64()
}
