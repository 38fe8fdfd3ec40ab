package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by ApplyEnvironmentOverrides
const (
	EnvTickRate     = "RIGID2D_TICK_RATE"
	EnvMaxDeltaTime = "RIGID2D_MAX_DT"
	EnvFixedStep    = "RIGID2D_FIXED_STEP"
	EnvRotation     = "RIGID2D_ROTATION"
	EnvDamping      = "RIGID2D_DAMPING"
	EnvDuration     = "RIGID2D_DURATION"
	EnvRenderMode   = "RIGID2D_RENDER_MODE"
	EnvRenderWidth  = "RIGID2D_RENDER_WIDTH"
	EnvRenderHeight = "RIGID2D_RENDER_HEIGHT"
)

// ApplyEnvironmentOverrides replaces config values with those set in RIGID2D_*
// environment variables, then validates the result. Unparsable values are
// ignored and the config value is kept.
func ApplyEnvironmentOverrides(config *SimulationConfig) error {
	config.Physics.TickRate = getEnvAsIntOrDefault(EnvTickRate, config.Physics.TickRate)
	config.Physics.MaxDeltaTime = getEnvAsFloatOrDefault(EnvMaxDeltaTime, config.Physics.MaxDeltaTime)
	config.Physics.FixedStep = getEnvAsBoolOrDefault(EnvFixedStep, config.Physics.FixedStep)
	config.Physics.Rotation = getEnvAsBoolOrDefault(EnvRotation, config.Physics.Rotation)
	config.Physics.Damping = getEnvAsBoolOrDefault(EnvDamping, config.Physics.Damping)

	duration := time.Duration(config.Physics.Duration * float64(time.Second))
	config.Physics.Duration = getEnvAsDurationOrDefault(EnvDuration, duration).Seconds()

	config.Render.Mode = strings.ToLower(getEnvOrDefault(EnvRenderMode, config.Render.Mode))
	config.Render.Width = getEnvAsIntOrDefault(EnvRenderWidth, config.Render.Width)
	config.Render.Height = getEnvAsIntOrDefault(EnvRenderHeight, config.Render.Height)

	return config.Validate()
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns environment variable as int or default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns environment variable as bool or default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns environment variable as float64 or default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault returns environment variable as time.Duration or default
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
