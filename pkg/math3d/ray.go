package math3d

// Ray is a half-line with a unit direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a ray and normalizes its direction.
//
// direction must be non-zero. A zero direction has no geometric meaning and
// produces non-finite components; callers are responsible for avoiding it.
func NewRay(origin, direction Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
	}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Reflect mirrors the ray direction about normal and starts the new ray at
// origin. The normal does not need to be unit length.
func (r Ray) Reflect(normal, origin Vec3) Ray {
	n := normal.Normalize()
	return Ray{
		Origin:    origin,
		Direction: Reflect(r.Direction, n).Normalize(),
	}
}
