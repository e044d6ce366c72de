package scene

import (
	"errors"
	"fmt"

	"github.com/taigrr/glint/pkg/math3d"
)

var (
	ErrInvalidDepth    = errors.New("max depth must not be negative")
	ErrInvalidShadow   = errors.New("shadow factor must be within [0, 1]")
	ErrInvalidViewport = errors.New("viewport dimensions must be positive")
	ErrInvalidEpsilon  = errors.New("epsilon must be positive")
)

// Config holds the tunables of a scene and of the renders made from it.
type Config struct {
	Width  int // Default viewport width in pixels
	Height int // Default viewport height in pixels

	MaxDepth     int          // Mirror bounces per primary ray
	ShadowFactor float32      // Multiplier applied to occluded points
	Background   math3d.Color // Color of rays that hit nothing
	Epsilon      float32      // Offset of shadow and mirror ray origins

	Workers         int  // Render goroutine limit; <= 0 means one per row
	ParallelShadows bool // Fan shadow tests out across primitives
}

// DefaultConfig returns the configuration glint renders with by default.
func DefaultConfig() Config {
	return Config{
		Width:        640,
		Height:       480,
		MaxDepth:     5,
		ShadowFactor: 0.05,
		Background:   math3d.RGBA(0.2, 0.2, 0.4, 1),
		Epsilon:      1e-4,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidViewport, c.Width, c.Height)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, c.MaxDepth)
	}
	if !(c.ShadowFactor >= 0 && c.ShadowFactor <= 1) {
		return fmt.Errorf("%w: %v", ErrInvalidShadow, c.ShadowFactor)
	}
	if !(c.Epsilon > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidEpsilon, c.Epsilon)
	}
	return nil
}
