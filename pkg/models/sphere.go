package models

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/glint/pkg/math3d"
)

// Sphere is a sphere in world space.
type Sphere struct {
	Center   math3d.Vec3
	Radius   float32
	Material Material
}

// NewSphere creates a new sphere.
func NewSphere(center math3d.Vec3, radius float32, material Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Position returns the sphere center.
func (s *Sphere) Position() math3d.Vec3 {
	return s.Center
}

// Intersect returns the nearest hit in front of the ray origin.
// The near root is preferred; the far root is used when the origin is inside
// the sphere.
func (s *Sphere) Intersect(ray math3d.Ray) (Hit, bool) {
	offset := ray.Origin.Sub(s.Center)

	// a*t^2 + b*t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * offset.Dot(ray.Direction)
	c := offset.Dot(offset) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Hit{}, false
	}
	sqrtD := math32.Sqrt(discriminant)

	if t := (-b - sqrtD) / (2 * a); t > 0 {
		return s.hit(ray, t), true
	}
	if t := (-b + sqrtD) / (2 * a); t > 0 {
		return s.hit(ray, t), true
	}
	return Hit{}, false
}

func (s *Sphere) hit(ray math3d.Ray, t float32) Hit {
	pos := ray.At(t - HitBias)
	return Hit{
		Ray:      ray,
		T:        t,
		Position: pos,
		Normal:   pos.Sub(s.Center).Normalize(),
		Material: s.Material,
	}
}
