package main

import (
	"github.com/taigrr/glint/pkg/math3d"
	"github.com/taigrr/glint/pkg/models"
	"github.com/taigrr/glint/pkg/render"
	"github.com/taigrr/glint/pkg/scene"
)

// Focal distance in pixels for a 640 pixel wide frame. Other widths scale it
// so the field of view stays the same.
const (
	baseFocal = 700
	baseWidth = 640
)

var (
	orange      = math3d.RGBA(0.6, 0.3, 0, 1)
	cameraStart = math3d.V3(10, 1, 0)
)

func focalLength(width int) float32 {
	return baseFocal * float32(max(width, 1)) / baseWidth
}

// newCamera returns the starting camera for a frame of the given width.
func newCamera(width int) *render.Camera {
	return render.NewCamera(cameraStart, math3d.V3(-focalLength(width), 0, 0))
}

// refocus keeps the camera's view direction and adapts its focal length to
// a new frame width.
func refocus(cam *render.Camera, width int) {
	cam.Direction = cam.Direction.Normalize().Mul(focalLength(width))
}

// demo is the interactive scene together with the parts the keyboard can
// change between frames.
type demo struct {
	scene *scene.Scene

	tower    []models.Primitive
	towerIDs []scene.PrimitiveID // nil while the tower is hidden

	lights []scene.Light
	light  int
}

// buildDemo creates the demo scene: a mirrored floor, a tower of orange
// spheres, two large orange mirrors and three small colored spheres.
func buildDemo(cfg scene.Config) *demo {
	d := &demo{
		scene: scene.New(cfg, scene.DefaultLight()),
		lights: []scene.Light{
			scene.DefaultLight(),
			{Position: math3d.V3(0, 10, -5), Intensity: math3d.RGBA(100, 100, 100, 1)},
			{Position: math3d.V3(5, 20, 0), Intensity: math3d.RGBA(300, 300, 300, 1)},
		},
	}
	s := d.scene

	s.Add(models.NewPlane(math3d.Zero3(), math3d.Up(),
		models.Reflective(math3d.RGBA(0.9, 0.9, 0.9, 1), 0.7)))

	for j := range 4 {
		for k := range 2 {
			center := math3d.V3(-30, float32(j*10), float32(20+k*10))
			d.tower = append(d.tower, models.NewSphere(center, 5, models.Reflective(orange, 0.5)))
		}
	}
	d.ToggleTower()

	s.Add(models.NewSphere(math3d.V3(-10, 1, 0), 5, models.Reflective(orange, 0.9)))
	s.Add(models.NewSphere(math3d.V3(-10, 11, 0), 5, models.Reflective(orange, 0.9)))

	s.Add(models.NewSphere(math3d.V3(0, 1, 0), 1,
		models.Reflective(math3d.RGBA(0.3, 0.3, 0.9, 1), 0.3)))
	s.Add(models.NewSphere(math3d.V3(0, 1, -2), 1,
		models.Reflective(math3d.RGBA(0.5, 0.9, 0.5, 1), 0.4)))
	s.Add(models.NewSphere(math3d.V3(0, 1, 2), 1,
		models.Solid(math3d.RGBA(0.9, 0.9, 0.5, 1))))

	return d
}

// ToggleTower detaches the sphere tower if it is shown and attaches it
// otherwise. It reports whether the tower is shown afterwards.
func (d *demo) ToggleTower() bool {
	if d.towerIDs != nil {
		for _, id := range d.towerIDs {
			d.scene.Remove(id)
		}
		d.towerIDs = nil
		return false
	}
	for _, p := range d.tower {
		d.towerIDs = append(d.towerIDs, d.scene.Add(p))
	}
	return true
}

// NextLight moves the light to the next preset position.
func (d *demo) NextLight() scene.Light {
	d.light = (d.light + 1) % len(d.lights)
	d.scene.SetLight(d.lights[d.light])
	return d.lights[d.light]
}
