// Package math3d provides the 32-bit vector, color and ray primitives used by glint.
package math3d

import "github.com/go-gl/mathgl/mgl32"

// Vec3 represents a 3D vector. Positions, directions and normals all use it.
//
// Vec3 does not normalize itself; types that require unit directions
// (Ray, Plane, Camera.Up) normalize at construction.
type Vec3 = mgl32.Vec3

// V3 creates a new Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// Up returns the world up vector (0, 1, 0).
func Up() Vec3 {
	return Vec3{0, 1, 0}
}

// Negate returns the negated vector.
func Negate(a Vec3) Vec3 {
	return Vec3{-a[0], -a[1], -a[2]}
}

// Reflect returns the reflection of d around the unit normal n.
func Reflect(d, n Vec3) Vec3 {
	return d.Sub(n.Mul(2 * n.Dot(d)))
}
