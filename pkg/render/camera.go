package render

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taigrr/glint/pkg/math3d"
	"github.com/taigrr/glint/pkg/scene"
)

// Viewport is the pixel grid a camera renders into.
type Viewport struct {
	Width  int
	Height int
}

// ViewportFromConfig returns the default viewport of a scene configuration.
func ViewportFromConfig(cfg scene.Config) Viewport {
	return Viewport{Width: cfg.Width, Height: cfg.Height}
}

// Pixels returns the number of pixels in the viewport, or 0 if either
// dimension is not positive.
func (v Viewport) Pixels() int {
	if v.Width <= 0 || v.Height <= 0 {
		return 0
	}
	return v.Width * v.Height
}

// Camera generates primary rays and renders scenes.
type Camera struct {
	// Position in world space
	Position math3d.Vec3

	// Direction the camera looks along. It is not normalized: its length is
	// the distance from the eye to the image plane, in pixels.
	Direction math3d.Vec3

	// Up is the unit up vector of the image plane.
	Up math3d.Vec3

	log Logger
}

// NewCamera creates a camera with world up (0, 1, 0).
func NewCamera(position, direction math3d.Vec3) *Camera {
	return NewCameraUp(position, direction, math3d.Up())
}

// NewCameraUp creates a camera with a custom up vector. up is normalized.
func NewCameraUp(position, direction, up math3d.Vec3) *Camera {
	return &Camera{
		Position:  position,
		Direction: direction,
		Up:        up.Normalize(),
		log:       NewNopLogger(),
	}
}

// SetLogger sets the logger used for per-frame debug output.
func (c *Camera) SetLogger(l Logger) {
	if l == nil {
		l = NewNopLogger()
	}
	c.log = l
}

// Left returns the unit vector cross(Direction, Up). Pixel columns advance
// along it. With the default up vector and a camera looking along -X this is
// -Z.
func (c *Camera) Left() math3d.Vec3 {
	return c.Direction.Cross(c.Up).Normalize()
}

// MoveLeft moves the camera opposite to Left.
func (c *Camera) MoveLeft(amount float32) {
	c.Position = c.Position.Add(c.Left().Mul(-amount))
}

// MoveRight moves the camera along Left.
func (c *Camera) MoveRight(amount float32) {
	c.Position = c.Position.Add(c.Left().Mul(amount))
}

// MoveForward moves the camera along the view direction.
func (c *Camera) MoveForward(amount float32) {
	c.Position = c.Position.Add(c.Direction.Normalize().Mul(amount))
}

// MoveBack moves the camera against the view direction.
func (c *Camera) MoveBack(amount float32) {
	c.MoveForward(-amount)
}

// Ray returns the primary ray through pixel (px, py) of vp, where (0, 0) is
// the top-left pixel.
func (c *Camera) Ray(vp Viewport, px, py int) math3d.Ray {
	return c.basis(vp).ray(px, py)
}

// frame holds everything needed to build primary rays for one render.
type frame struct {
	origin  math3d.Vec3
	forward math3d.Vec3
	left    math3d.Vec3
	up      math3d.Vec3
	x0, y0  int
}

// The viewport is recentred by integer halving so odd sizes still produce
// exactly Width*Height rays.
func (c *Camera) basis(vp Viewport) frame {
	return frame{
		origin:  c.Position,
		forward: c.Direction,
		left:    c.Left(),
		up:      c.Up,
		x0:      -(vp.Width / 2),
		y0:      -(vp.Height / 2),
	}
}

func (f frame) ray(px, py int) math3d.Ray {
	x := float32(f.x0 + px)
	y := float32(-(f.y0 + py))
	dir := f.forward.Add(f.left.Mul(x)).Add(f.up.Mul(y))
	return math3d.NewRay(f.origin, dir)
}

// Render traces one primary ray per pixel and returns row-major RGBA bytes,
// four per pixel.
func (c *Camera) Render(s *scene.Scene, vp Viewport) []byte {
	return c.RenderFramebuffer(s, vp).Pix
}

// RenderFramebuffer renders into a new Framebuffer of the viewport's size.
// Rows are traced concurrently, bounded by the scene's Workers setting; the
// output does not depend on scheduling.
func (c *Camera) RenderFramebuffer(s *scene.Scene, vp Viewport) *Framebuffer {
	fb := NewFramebuffer(vp.Width, vp.Height)
	if vp.Pixels() == 0 {
		return fb
	}

	start := time.Now()
	f := c.basis(vp)
	c.log.Debugf("frame %dx%d pos=%v dir=%v left=%v up=%v",
		vp.Width, vp.Height, f.origin, f.forward, f.left, f.up)

	var g errgroup.Group
	if w := s.Config().Workers; w > 0 {
		g.SetLimit(w)
	}
	for py := range vp.Height {
		// Each goroutine owns one row of fb.Pix.
		g.Go(func() error {
			for px := range vp.Width {
				fb.SetPixel(px, py, s.EvaluatePrimary(f.ray(px, py)).RGBA8())
			}
			return nil
		})
	}
	_ = g.Wait()

	c.log.Debugf("frame traced in %s", time.Since(start))
	return fb
}
