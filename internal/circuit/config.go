package circuit

import (
	"strconv"

	"pixlogic/internal/core"
)

// MaxSide is the largest grid side length the engine accepts.
const MaxSide = 4096

// Config controls the circuit engine.
type Config struct {
	// Size is the side length of the blank grid the engine starts with.
	Size int
	// Seed drives the gate shuffle. Zero picks a seed from the clock.
	Seed int64
	// Threshold is the channel value a cell must exceed to conduct. Zero
	// selects core.DefaultWireThreshold.
	Threshold uint8
	// StepsPerTick is how many simulation steps a caller runs per update.
	StepsPerTick int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:         64,
		Seed:         0,
		Threshold:    core.DefaultWireThreshold,
		StepsPerTick: 1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= MaxSide {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 255 {
			c.Threshold = uint8(parsed)
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.StepsPerTick = parsed
		}
	}
	return c
}
