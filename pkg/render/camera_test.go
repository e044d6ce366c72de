package render

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/glint/pkg/math3d"
	"github.com/taigrr/glint/pkg/models"
	"github.com/taigrr/glint/pkg/scene"
)

// approxVec compares vectors component by component with an absolute
// tolerance.
func approxVec(t *testing.T, want, got math3d.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "want %v, got %v", want, got)
	}
}

// testScene is a reduced version of the default glint scene.
func testScene(workers int) *scene.Scene {
	cfg := scene.DefaultConfig()
	cfg.Workers = workers
	s := scene.New(cfg, scene.DefaultLight())
	s.Add(models.NewPlane(math3d.Zero3(), math3d.Up(), models.Reflective(math3d.RGBA(0.9, 0.9, 0.9, 1), 0.7)))
	s.Add(models.NewSphere(math3d.V3(-10, 1, 0), 5, models.Reflective(math3d.RGBA(0.6, 0.3, 0, 1), 0.9)))
	s.Add(models.NewSphere(math3d.V3(0, 1, 2), 1, models.Solid(math3d.RGBA(0.9, 0.9, 0.5, 1))))
	return s
}

func testCamera() *Camera {
	return NewCamera(math3d.V3(10, 1, 0), math3d.V3(-70, 0, 0))
}

func TestNewCamera(t *testing.T) {
	c := NewCamera(math3d.V3(1, 2, 3), math3d.V3(-700, 0, 0))
	assert.Equal(t, math3d.V3(1, 2, 3), c.Position)
	assert.Equal(t, math3d.V3(-700, 0, 0), c.Direction, "direction keeps its length")
	assert.Equal(t, math3d.Up(), c.Up)

	c = NewCameraUp(math3d.Zero3(), math3d.V3(0, 0, -1), math3d.V3(0, 2, 0))
	approxVec(t, math3d.Up(), c.Up)
}

func TestCamera_Left(t *testing.T) {
	c := NewCamera(math3d.Zero3(), math3d.V3(-700, 0, 0))
	approxVec(t, math3d.V3(0, 0, -1), c.Left())
}

func TestCamera_Move(t *testing.T) {
	tests := []struct {
		name string
		move func(c *Camera)
		want math3d.Vec3
	}{
		{"left", func(c *Camera) { c.MoveLeft(2) }, math3d.V3(10, 1, 2)},
		{"right", func(c *Camera) { c.MoveRight(2) }, math3d.V3(10, 1, -2)},
		{"forward", func(c *Camera) { c.MoveForward(3) }, math3d.V3(7, 1, 0)},
		{"back", func(c *Camera) { c.MoveBack(3) }, math3d.V3(13, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(math3d.V3(10, 1, 0), math3d.V3(-700, 0, 0))
			tt.move(c)
			approxVec(t, tt.want, c.Position)
			assert.Equal(t, math3d.V3(-700, 0, 0), c.Direction)
		})
	}
}

func TestCamera_Ray(t *testing.T) {
	c := NewCamera(math3d.V3(10, 1, 0), math3d.V3(-700, 0, 0))
	vp := Viewport{Width: 4, Height: 4}

	center := c.Ray(vp, 2, 2)
	assert.Equal(t, c.Position, center.Origin)
	approxVec(t, math3d.V3(-1, 0, 0), center.Direction)

	topLeft := c.Ray(vp, 0, 0)
	approxVec(t, math3d.V3(-700, 2, 2).Normalize(), topLeft.Direction)
	assert.Greater(t, topLeft.Direction.Y(), float32(0), "top row looks up")

	bottomRight := c.Ray(vp, 3, 3)
	assert.Less(t, bottomRight.Direction.Y(), float32(0), "bottom row looks down")
	assert.Less(t, bottomRight.Direction.Z(), float32(0), "columns advance along Left")
}

func TestViewport(t *testing.T) {
	assert.Equal(t, Viewport{Width: 640, Height: 480}, ViewportFromConfig(scene.DefaultConfig()))
	assert.Equal(t, 12, Viewport{Width: 4, Height: 3}.Pixels())
	assert.Equal(t, 0, Viewport{Width: 0, Height: 3}.Pixels())
	assert.Equal(t, 0, Viewport{Width: -4, Height: -3}.Pixels())
}

func TestCamera_RenderSize(t *testing.T) {
	tests := []struct {
		w, h int
	}{
		{1, 1},
		{4, 4},
		{7, 5},
		{5, 7},
		{16, 9},
	}

	s := testScene(0)
	c := testCamera()
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.w, tt.h), func(t *testing.T) {
			pix := c.Render(s, Viewport{Width: tt.w, Height: tt.h})
			assert.Len(t, pix, tt.w*tt.h*4)
		})
	}
}

func TestCamera_RenderEmptyViewport(t *testing.T) {
	c := testCamera()
	assert.Empty(t, c.Render(testScene(0), Viewport{}))
	assert.Empty(t, c.Render(testScene(0), Viewport{Width: 3, Height: -1}))
}

func TestCamera_RenderBackground(t *testing.T) {
	s := scene.New(scene.DefaultConfig(), scene.DefaultLight())
	pix := testCamera().Render(s, Viewport{Width: 3, Height: 2})

	want := []byte{51, 51, 102, 255}
	for i := 0; i < len(pix); i += 4 {
		assert.Equal(t, want, pix[i:i+4], "pixel %d", i/4)
	}
}

func TestCamera_RenderHitsGeometry(t *testing.T) {
	s := scene.New(scene.DefaultConfig(), scene.DefaultLight())
	s.Add(models.NewSphere(math3d.V3(0, 1, 0), 3, models.Solid(math3d.RGBA(1, 0, 0, 1))))
	s.SetLight(scene.Light{Position: math3d.V3(20, 1, 0), Intensity: math3d.RGBA(400, 400, 400, 1)})
	c := NewCamera(math3d.V3(10, 1, 0), math3d.V3(-10, 0, 0))

	fb := c.RenderFramebuffer(s, Viewport{Width: 9, Height: 9})
	require.Equal(t, 9, fb.Width)
	require.Equal(t, 9, fb.Height)

	background := s.Config().Background.RGBA8()
	assert.Equal(t, background, fb.GetPixel(0, 0), "corner misses the sphere")

	center := fb.GetPixel(4, 4)
	assert.NotEqual(t, background, center)
	assert.Equal(t, uint8(255), center.R, "lit head-on")
	assert.Zero(t, center.G, "red sphere")
	assert.Zero(t, center.B, "red sphere")
}

func TestCamera_RenderDeterministic(t *testing.T) {
	vp := Viewport{Width: 33, Height: 17}
	c := testCamera()

	want := c.Render(testScene(1), vp)
	assert.Equal(t, want, c.Render(testScene(1), vp), "repeat render")

	for _, workers := range []int{0, 2, 4, 64} {
		t.Run(fmt.Sprintf("workers %d", workers), func(t *testing.T) {
			assert.Equal(t, want, c.Render(testScene(workers), vp))
		})
	}
}

func TestCamera_RenderLogsFrame(t *testing.T) {
	var out, errOut bytes.Buffer
	c := testCamera()
	c.SetLogger(NewLoggerTo(&out, &errOut, "glint", true))

	c.Render(testScene(0), Viewport{Width: 4, Height: 4})
	assert.Contains(t, out.String(), "[glint] DEBUG: frame 4x4")
	assert.Contains(t, out.String(), "frame traced in")
	assert.Empty(t, errOut.String())

	c.SetLogger(nil)
	assert.NotPanics(t, func() { c.Render(testScene(0), Viewport{Width: 1, Height: 1}) })
}
