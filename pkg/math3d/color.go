package math3d

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Color is a linear RGBA color. Channels are not clamped: values above 1 are
// meaningful (light intensity, accumulated radiance) and are only saturated
// when converted to bytes.
type Color struct {
	R, G, B, A float32
}

// RGBA creates a new Color.
func RGBA(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// Add returns the componentwise sum, alpha included.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// Mul returns the componentwise product, alpha included.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// Scale multiplies the color channels by s and keeps alpha.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A}
}

// Mix returns (1-t)*c + t*o on all four channels.
// Mix(o, 1) is exactly o and Mix(o, 0) is exactly c for finite inputs.
func (c Color) Mix(o Color, t float32) Color {
	u := 1 - t
	return Color{
		c.R*u + o.R*t,
		c.G*u + o.G*t,
		c.B*u + o.B*t,
		c.A*u + o.A*t,
	}
}

// RGBA8 converts the color to 8-bit channels. Components are saturated to
// [0, 1] and NaN maps to 0 before scaling to [0, 255].
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
		A: toByte(c.A),
	}
}

func toByte(v float32) uint8 {
	if math32.IsNaN(v) {
		return 0
	}
	v = math32.Max(0, math32.Min(1, v))
	return uint8(v * 255)
}
