package main

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/glint/pkg/render"
)

// restVelocity is the speed below which an axis is considered stopped.
const restVelocity = 1e-3

// MotionAxis tracks camera velocity along one axis with spring decay
type MotionAxis struct {
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewMotionAxis creates an axis with harmonica spring for smooth velocity decay
func NewMotionAxis(fps int) MotionAxis {
	return MotionAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Step returns the distance to travel this frame and eases the velocity
// toward 0.
func (a *MotionAxis) Step() float32 {
	d := a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	if math.Abs(a.Velocity) < restVelocity && math.Abs(a.velAccel) < restVelocity {
		a.Velocity, a.velAccel = 0, 0
	}
	return float32(d)
}

// Moving reports whether the axis still has velocity.
func (a *MotionAxis) Moving() bool {
	return a.Velocity != 0
}

// Motion holds the camera's strafe and advance velocities.
type Motion struct {
	Strafe, Advance MotionAxis
	fps             int
}

func NewMotion(fps int) *Motion {
	return &Motion{
		Strafe:  NewMotionAxis(fps),
		Advance: NewMotionAxis(fps),
		fps:     fps,
	}
}

// Impulse adds velocity. Positive strafe moves right, positive advance moves
// forward.
func (m *Motion) Impulse(strafe, advance float64) {
	m.Strafe.Velocity += strafe
	m.Advance.Velocity += advance
}

func (m *Motion) Reset() {
	m.Strafe = NewMotionAxis(m.fps)
	m.Advance = NewMotionAxis(m.fps)
}

// Apply moves cam by one frame of motion and reports whether it moved.
func (m *Motion) Apply(cam *render.Camera) bool {
	if !m.Strafe.Moving() && !m.Advance.Moving() {
		return false
	}
	cam.MoveRight(m.Strafe.Step())
	cam.MoveForward(m.Advance.Step())
	return true
}
