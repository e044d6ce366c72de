package models

import (
	"image"

	"github.com/taigrr/glint/pkg/math3d"
)

// ColorSource provides the base color of a surface at a world position.
type ColorSource interface {
	ColorAt(p math3d.Vec3) math3d.Color
}

// SolidColor is a uniform color; it ignores the position.
type SolidColor struct {
	Color math3d.Color
}

// ColorAt returns the solid color.
func (s SolidColor) ColorAt(math3d.Vec3) math3d.Color {
	return s.Color
}

// ImageMap is an image-mapped color source. Sampling is not implemented yet:
// it reports Fallback everywhere so shading stays well defined.
type ImageMap struct {
	Image    image.Image
	Fallback math3d.Color
}

// ColorAt returns the fallback color.
func (m ImageMap) ColorAt(math3d.Vec3) math3d.Color {
	return m.Fallback
}

// Material describes surface appearance.
type Material struct {
	Reflective float32     // Mirror fraction in [0, 1]
	Refractive float32     // Reserved; not used by shading
	Source     ColorSource // Base color
}

// Solid creates a non-reflective material with a uniform color.
func Solid(c math3d.Color) Material {
	return Material{Source: SolidColor{Color: c}}
}

// Reflective creates a solid-colored material that mirrors the given
// fraction of incoming light.
func Reflective(c math3d.Color, reflective float32) Material {
	return Material{
		Reflective: reflective,
		Source:     SolidColor{Color: c},
	}
}

// ColorAt returns the base color at p. A material without a source is black.
func (m Material) ColorAt(p math3d.Vec3) math3d.Color {
	if m.Source == nil {
		return math3d.Color{}
	}
	return m.Source.ColorAt(p)
}
