// Package scene resolves rays to colors: nearest-hit search, point-light
// shading, shadows and bounded mirror recursion.
package scene

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/chewxy/math32"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/taigrr/glint/pkg/math3d"
	"github.com/taigrr/glint/pkg/models"
)

// mirrorThreshold is the smallest reflectivity that spawns a mirror ray.
const mirrorThreshold = 1e-5

// PrimitiveID identifies a primitive added to a Scene.
type PrimitiveID = uuid.UUID

// Light is a point light.
type Light struct {
	Position  math3d.Vec3
	Intensity math3d.Color // May exceed 1; attenuated by 1/d^2
}

// DefaultLight returns the light glint scenes start with.
func DefaultLight() Light {
	return Light{
		Position:  math3d.V3(0, 10, 5),
		Intensity: math3d.RGBA(100, 100, 100, 1),
	}
}

type entry struct {
	id   PrimitiveID
	prim models.Primitive
}

// Scene owns the primitives and the light.
//
// Evaluate may be called from any number of goroutines at once. Add, Remove
// and SetLight must not run concurrently with evaluation.
type Scene struct {
	cfg     Config
	light   Light
	entries []entry
}

// New creates an empty scene.
func New(cfg Config, light Light) *Scene {
	return &Scene{
		cfg:   cfg,
		light: light,
	}
}

// Config returns the scene configuration.
func (s *Scene) Config() Config {
	return s.cfg
}

// Light returns the scene light.
func (s *Scene) Light() Light {
	return s.light
}

// SetLight replaces the scene light.
func (s *Scene) SetLight(l Light) {
	s.light = l
}

// Len returns the number of primitives.
func (s *Scene) Len() int {
	return len(s.entries)
}

// Add appends a primitive and returns its id.
func (s *Scene) Add(p models.Primitive) PrimitiveID {
	id := uuid.New()
	s.entries = append(s.entries, entry{id: id, prim: p})
	return id
}

// Remove detaches the primitive with the given id. It reports whether the
// primitive was present.
func (s *Scene) Remove(id PrimitiveID) bool {
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// EvaluatePrimary returns the color seen along ray using the configured
// mirror depth.
func (s *Scene) EvaluatePrimary(ray math3d.Ray) math3d.Color {
	return s.Evaluate(ray, s.cfg.MaxDepth)
}

// Evaluate returns the color seen along ray. depth bounds the number of
// further mirror bounces; at depth 0 the hit is still shaded but not mirrored.
func (s *Scene) Evaluate(ray math3d.Ray, depth int) math3d.Color {
	hit, ok := s.nearest(ray)
	if !ok {
		return s.cfg.Background
	}

	shadowDir := s.light.Position.Sub(hit.Position).Normalize()

	color := hit.Material.ColorAt(hit.Position)
	color = s.applyLight(color, hit.Position)
	color = applyShading(color, hit.Normal, shadowDir)

	shadowRay := math3d.NewRay(hit.Position.Add(shadowDir.Mul(s.cfg.Epsilon)), shadowDir)
	if s.occluded(shadowRay) {
		color = color.Scale(s.cfg.ShadowFactor)
	}

	return s.applyMirror(color, hit, depth)
}

// nearest returns the hit with the smallest t. Distances that cannot be
// ordered (NaN) compare as equal and keep the current best.
func (s *Scene) nearest(ray math3d.Ray) (models.Hit, bool) {
	var (
		best  models.Hit
		found bool
	)
	for _, e := range s.entries {
		hit, ok := e.prim.Intersect(ray)
		if !ok {
			continue
		}
		if !found || hit.T < best.T {
			best = hit
			found = true
		}
	}
	return best, found
}

// applyLight attenuates the base color by the light intensity with
// inverse-square falloff.
func (s *Scene) applyLight(color math3d.Color, position math3d.Vec3) math3d.Color {
	distSq := position.Sub(s.light.Position).LenSqr()
	return color.Mul(s.light.Intensity.Scale(1 / distSq))
}

// applyShading applies the Lambert term.
func applyShading(color math3d.Color, normal, shadowDir math3d.Vec3) math3d.Color {
	lambert := shadowDir.Dot(normal.Normalize())
	return color.Scale(math32.Max(0, math32.Min(1, lambert)))
}

func (s *Scene) applyMirror(color math3d.Color, hit models.Hit, depth int) math3d.Color {
	reflective := hit.Material.Reflective
	if depth <= 0 || reflective <= mirrorThreshold {
		return color
	}

	origin := hit.Ray.At(hit.T - s.cfg.Epsilon)
	mirrored := s.Evaluate(hit.Ray.Reflect(hit.Normal, origin), depth-1)

	return color.Mix(mirrored, reflective)
}

// occluded reports whether any primitive lies in front of the shadow ray.
func (s *Scene) occluded(ray math3d.Ray) bool {
	if s.cfg.ParallelShadows {
		return s.occludedParallel(ray)
	}
	for _, e := range s.entries {
		if hit, ok := e.prim.Intersect(ray); ok && hit.T > 0 {
			return true
		}
	}
	return false
}

var errOccluded = errors.New("occluded")

// occludedParallel tests every primitive in its own goroutine and stops
// scheduling work once one reports a hit.
func (s *Scene) occludedParallel(ray math3d.Ray) bool {
	var hit atomic.Bool
	g, ctx := errgroup.WithContext(context.Background())

	for _, e := range s.entries {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			if h, ok := e.prim.Intersect(ray); ok && h.T > 0 {
				hit.Store(true)
				return errOccluded
			}
			return nil
		})
	}
	_ = g.Wait()

	return hit.Load()
}
