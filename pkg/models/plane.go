package models

import "github.com/taigrr/glint/pkg/math3d"

// parallelEpsilon is the minimum facing term for a plane hit.
const parallelEpsilon = 1e-6

// Plane is an infinite single-sided plane. Only rays arriving against the
// normal (from the front) hit it.
type Plane struct {
	Point    math3d.Vec3 // Any point on the plane
	Normal   math3d.Vec3 // Unit normal
	Material Material
}

// NewPlane creates a new plane and normalizes its normal.
func NewPlane(point, normal math3d.Vec3, material Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Position returns the reference point of the plane.
func (p *Plane) Position() math3d.Vec3 {
	return p.Point
}

// Intersect tests the ray against the front face of the plane.
func (p *Plane) Intersect(ray math3d.Ray) (Hit, bool) {
	back := math3d.Negate(p.Normal)

	d := ray.Direction.Dot(back)
	if !(d > parallelEpsilon) {
		// Parallel, arriving from behind, or NaN.
		return Hit{}, false
	}

	t := p.Point.Sub(ray.Origin).Dot(back) / d
	if !(t >= 0) {
		return Hit{}, false
	}

	return Hit{
		Ray:      ray,
		T:        t,
		Position: ray.At(t - HitBias),
		Normal:   p.Normal,
		Material: p.Material,
	}, true
}
