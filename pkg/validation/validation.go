// Package validation checks simulation inputs before they reach the physics
// core, which assumes finite, well-formed values.
package validation

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/opd-ai/go-rigid2d/pkg/physics"
)

// Limits for scene input
const (
	MaxSceneFileSize = 1 << 20 // 1MB max scene file
	MaxBodyNameLen   = 32
	MaxBodies        = 4096
)

// ErrInvalidDeltaTime is returned for a negative or non-finite time step.
var ErrInvalidDeltaTime = errors.New("invalid delta time")

// Allow alphanumeric, spaces, hyphens, underscores and dots in body names
var validBodyNameChars = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.]+$`)

// ValidateDeltaTime checks that dt is finite and non-negative. When maxDT is
// positive dt may not exceed it.
func ValidateDeltaTime(dt, maxDT float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: %v is not finite", ErrInvalidDeltaTime, dt)
	}
	if dt < 0 {
		return fmt.Errorf("%w: %v is negative", ErrInvalidDeltaTime, dt)
	}
	if maxDT > 0 && dt > maxDT {
		return fmt.Errorf("%w: %v exceeds maximum %v", ErrInvalidDeltaTime, dt, maxDT)
	}
	return nil
}

// ValidateFinite rejects NaN and infinite components.
func ValidateFinite(name string, v physics.Vector2D) error {
	if !isFinite(v.X) || !isFinite(v.Y) {
		return fmt.Errorf("%s must be finite, got (%v, %v)", name, v.X, v.Y)
	}
	return nil
}

// ValidateMass validates a body mass. Zero is allowed and means immovable.
func ValidateMass(mass float64) error {
	if !isFinite(mass) {
		return fmt.Errorf("mass must be finite, got %v", mass)
	}
	if mass < 0 {
		return fmt.Errorf("mass cannot be negative: %v", mass)
	}
	return nil
}

// ValidateElasticity validates a restitution coefficient
func ValidateElasticity(elasticity float64) error {
	if !isFinite(elasticity) || elasticity < 0 || elasticity > 1 {
		return fmt.Errorf("invalid elasticity: %v (must be between 0 and 1)", elasticity)
	}
	return nil
}

// ValidateFriction validates a per-second damping rate
func ValidateFriction(friction float64) error {
	if !isFinite(friction) || friction < 0 {
		return fmt.Errorf("invalid friction: %v (must be a non-negative number)", friction)
	}
	return nil
}

// ValidateSize checks that both extents of a rectangle are positive.
func ValidateSize(size physics.Vector2D) error {
	if err := ValidateFinite("size", size); err != nil {
		return err
	}
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("size must be positive, got (%v, %v)", size.X, size.Y)
	}
	return nil
}

// ValidateDirection checks that a direction can be normalised.
func ValidateDirection(direction physics.Vector2D) error {
	if err := ValidateFinite("direction", direction); err != nil {
		return err
	}
	if direction.IsZero() {
		return fmt.Errorf("direction: %w", physics.ErrZeroVector)
	}
	return nil
}

// ValidateBounds checks that topRight lies strictly above and to the right of bottomLeft.
func ValidateBounds(bottomLeft, topRight physics.Vector2D) error {
	if err := ValidateFinite("bottom left", bottomLeft); err != nil {
		return err
	}
	if err := ValidateFinite("top right", topRight); err != nil {
		return err
	}
	if topRight.X <= bottomLeft.X || topRight.Y <= bottomLeft.Y {
		return fmt.Errorf("invalid bounds: top right (%v, %v) must be above and right of bottom left (%v, %v)",
			topRight.X, topRight.Y, bottomLeft.X, bottomLeft.Y)
	}
	return nil
}

// ValidateBodyName validates and trims an optional body label. An empty name
// is accepted.
func ValidateBodyName(name string) (string, error) {
	if name == "" {
		return "", nil
	}

	if len(name) > MaxBodyNameLen {
		return "", fmt.Errorf("body name too long: %d characters (max %d)", len(name), MaxBodyNameLen)
	}

	if !utf8.ValidString(name) {
		return "", fmt.Errorf("body name contains invalid UTF-8 characters")
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("body name cannot be only whitespace")
	}

	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("body name contains control characters")
		}
	}

	if !validBodyNameChars.MatchString(trimmed) {
		return "", fmt.Errorf("body name contains invalid characters (only alphanumeric, spaces, hyphens, underscores and dots allowed)")
	}

	return trimmed, nil
}

// ValidateBodyCount limits the number of bodies in one scene.
func ValidateBodyCount(n int) error {
	if n > MaxBodies {
		return fmt.Errorf("too many bodies: %d (max %d)", n, MaxBodies)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
