// Package render turns scenes into pixels: primary ray generation, parallel
// rendering, image export and terminal presentation.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	ErrSizeMismatch      = errors.New("pixel buffer does not match dimensions")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Framebuffer is a rendered frame. It can be drawn to the terminal with
// half-block characters (two pixel rows per terminal row) or saved to disk.
type Framebuffer struct {
	Width  int    // Width in pixels
	Height int    // Height in pixels
	Pix    []byte // Row-major RGBA, 4 bytes per pixel
}

// NewFramebuffer creates a transparent framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	width, height = max(width, 0), max(height, 0)
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// FramebufferFromPixels wraps an existing RGBA buffer. The buffer is not
// copied.
func FramebufferFromPixels(width, height int, pix []byte) (*Framebuffer, error) {
	if width < 0 || height < 0 || len(pix) != width*height*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrSizeMismatch, len(pix), width, height)
	}
	return &Framebuffer{Width: width, Height: height, Pix: pix}, nil
}

// SetPixel sets the pixel at (x, y). Writes outside the frame are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Pix[i+0] = c.R
	fb.Pix[i+1] = c.G
	fb.Pix[i+2] = c.B
	fb.Pix[i+3] = c.A
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	i := (y*fb.Width + x) * 4
	return color.RGBA{fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2], fb.Pix[i+3]}
}

// ToImage copies the framebuffer into a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Pix)
	return img
}
