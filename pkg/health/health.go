// Package health reports whether a running simulation is still making
// progress. It exposes liveness and readiness HTTP handlers for cmd/sim.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/opd-ai/go-rigid2d/pkg/physics"
	"github.com/opd-ai/go-rigid2d/pkg/world"
)

// HealthCheck defines the interface for individual health checks.
type HealthCheck interface {
	// Name returns the unique name of this health check
	Name() string
	// Check performs the health check and returns an error if unhealthy
	Check(ctx context.Context) error
}

// HealthStatus is the aggregated result served by the readiness probe.
type HealthStatus struct {
	Status string                     `json:"status"`
	Checks map[string]ComponentHealth `json:"checks"`
}

// ComponentHealth represents the health status of an individual component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// readinessTimeout bounds a single readiness probe.
const readinessTimeout = 5 * time.Second

// HealthChecker manages and executes health checks.
type HealthChecker struct {
	checks map[string]HealthCheck
	mu     sync.RWMutex
}

// NewHealthChecker creates a new health checker instance.
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		checks: make(map[string]HealthCheck),
	}
}

// Handler returns a mux serving /health and /ready.
func (hc *HealthChecker) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", hc.LivenessHandler)
	mux.HandleFunc("/ready", hc.ReadinessHandler)
	return mux
}

// AddCheck registers a new health check with the health checker.
// If a check with the same name already exists, it will be replaced.
func (hc *HealthChecker) AddCheck(check HealthCheck) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.checks[check.Name()] = check
}

// RemoveCheck removes a health check by name.
func (hc *HealthChecker) RemoveCheck(name string) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	delete(hc.checks, name)
}

// CheckHealth executes all registered health checks and returns the aggregated status.
// The overall status is "healthy" only if all individual checks pass.
func (hc *HealthChecker) CheckHealth(ctx context.Context) HealthStatus {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	status := HealthStatus{
		Status: "healthy",
		Checks: make(map[string]ComponentHealth),
	}

	for name, check := range hc.checks {
		if err := check.Check(ctx); err != nil {
			status.Status = "unhealthy"
			status.Checks[name] = ComponentHealth{
				Status:  "unhealthy",
				Message: err.Error(),
			}
		} else {
			status.Checks[name] = ComponentHealth{
				Status: "healthy",
			}
		}
	}

	return status
}

// LivenessHandler answers 200 whenever the process can serve HTTP.
func (hc *HealthChecker) LivenessHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]string{"status": "alive"}
	json.NewEncoder(w).Encode(response)
}

// ReadinessHandler runs every check and answers 200 when all pass,
// 503 otherwise.
func (hc *HealthChecker) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	health := hc.CheckHealth(ctx)

	w.Header().Set("Content-Type", "application/json")

	if health.Status == "healthy" {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	json.NewEncoder(w).Encode(health)
}

// TickProgressCheck fails when the tick counter has not moved since the
// previous check. A finished run is always healthy.
type TickProgressCheck struct {
	ticks func() uint64
	done  func() bool

	mu      sync.Mutex
	last    uint64
	checked bool
}

// NewTickProgressCheck creates a progress check. done may be nil.
func NewTickProgressCheck(ticks func() uint64, done func() bool) *TickProgressCheck {
	return &TickProgressCheck{
		ticks: ticks,
		done:  done,
	}
}

// Name returns the name of this health check.
func (t *TickProgressCheck) Name() string {
	return "simulation"
}

// Check compares the current tick against the one seen last time.
func (t *TickProgressCheck) Check(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	current := t.ticks()
	first := !t.checked
	stalled := current == t.last
	t.last = current
	t.checked = true

	if first || (t.done != nil && t.done()) {
		return nil
	}
	if stalled {
		return fmt.Errorf("simulation stalled at tick %d", current)
	}
	return nil
}

// BodyStateCheck fails when any body carries a NaN or infinite value, which
// only happens once the integration has blown up.
type BodyStateCheck struct {
	snapshot func() world.Snapshot
}

// NewBodyStateCheck creates a check over the given snapshot source.
func NewBodyStateCheck(snapshot func() world.Snapshot) *BodyStateCheck {
	return &BodyStateCheck{snapshot: snapshot}
}

// Name returns the name of this health check.
func (b *BodyStateCheck) Name() string {
	return "bodies"
}

// Check scans every body of the current snapshot.
func (b *BodyStateCheck) Check(ctx context.Context) error {
	snap := b.snapshot()
	for _, state := range snap.Bodies {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !finite(state.Position) || !finite(state.Velocity) || !finite(state.Direction) ||
			math.IsNaN(state.AngularVelocity) || math.IsInf(state.AngularVelocity, 0) {
			return fmt.Errorf("body %s has a non-finite state at tick %d", state.ID, snap.Tick)
		}
	}
	return nil
}

func finite(v physics.Vector2D) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// MemoryHealthCheck implements HealthCheck for memory usage monitoring.
type MemoryHealthCheck struct {
	maxMemoryMB    int64
	getMemoryUsage func() int64
}

// NewMemoryHealthCheck creates a health check for memory usage. A nil
// getMemoryUsage reads the Go heap via CurrentMemoryMB.
func NewMemoryHealthCheck(maxMemoryMB int64, getMemoryUsage func() int64) *MemoryHealthCheck {
	if getMemoryUsage == nil {
		getMemoryUsage = CurrentMemoryMB
	}
	return &MemoryHealthCheck{
		maxMemoryMB:    maxMemoryMB,
		getMemoryUsage: getMemoryUsage,
	}
}

// Name returns the name of this health check.
func (m *MemoryHealthCheck) Name() string {
	return "memory"
}

// Check verifies that memory usage is within acceptable limits.
func (m *MemoryHealthCheck) Check(ctx context.Context) error {
	currentMB := m.getMemoryUsage()
	if currentMB > m.maxMemoryMB {
		return fmt.Errorf("memory usage %dMB exceeds limit %dMB", currentMB, m.maxMemoryMB)
	}
	return nil
}

// CurrentMemoryMB returns the allocated heap in megabytes.
func CurrentMemoryMB() int64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return int64(m.Alloc / 1024 / 1024)
}
