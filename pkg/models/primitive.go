// Package models provides the materials and geometric primitives that make up a glint scene.
package models

import "github.com/taigrr/glint/pkg/math3d"

// HitBias pulls a hit position back along the ray so that rays leaving the
// surface do not immediately re-intersect it.
const HitBias float32 = 1e-10

// Hit is a ray/primitive intersection.
type Hit struct {
	Ray      math3d.Ray  // Ray that produced the hit
	T        float32     // Signed distance along Ray; only T > 0 is in front
	Position math3d.Vec3 // Ray.At(T - HitBias)
	Normal   math3d.Vec3 // Unit surface normal
	Material Material    // Copied at hit time
}

// Primitive is a shape that can be intersected by a ray.
//
// Intersect must be free of side effects: it is called concurrently from
// many pixel evaluations.
type Primitive interface {
	Position() math3d.Vec3
	Intersect(ray math3d.Ray) (Hit, bool)
}
