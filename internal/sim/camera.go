package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type CameraMode int

const (
	CameraModeFollow CameraMode = iota
	CameraModeTopDown
	CameraModeFPV
)

// Camera orbits, hovers above, or rides the vehicle node depending on
// mode. It only ever reads the vehicle transform.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	Yaw      float64 // orbit yaw, degrees
	Pitch    float64 // orbit pitch, degrees
	Distance float64

	Mode          CameraMode
	TopDownHeight float64
}

func NewCamera() *Camera {
	return &Camera{
		Up:            Vec3{0, 1, 0},
		Yaw:           45,
		Pitch:         -20,
		Distance:      8,
		Mode:          CameraModeFollow,
		TopDownHeight: 25,
	}
}

func (c *Camera) Update(vehicle *Node) {
	c.Target = vehicle.Position

	switch c.Mode {
	case CameraModeFollow:
		yaw := c.Yaw * math.Pi / 180.0
		pitch := c.Pitch * math.Pi / 180.0
		c.Position.X = c.Target.X + c.Distance*math.Cos(pitch)*math.Sin(yaw)
		c.Position.Y = c.Target.Y + c.Distance*math.Sin(pitch)
		c.Position.Z = c.Target.Z + c.Distance*math.Cos(pitch)*math.Cos(yaw)
		if c.Position.Y < 0.5 {
			c.Position.Y = 0.5
		}
		c.Up = Vec3{0, 1, 0}

	case CameraModeTopDown:
		c.Position = Vec3{c.Target.X, c.Target.Y + c.TopDownHeight, c.Target.Z}
		c.Up = Vec3{0, 0, -1}

	case CameraModeFPV:
		c.Position = vehicle.Position.Add(Vec3{0, 0.2, 0})
		pitch, yaw := vehicle.Rotation.X, vehicle.Rotation.Y
		forward := Vec3{
			math.Sin(yaw) * math.Cos(pitch),
			-math.Sin(pitch),
			math.Cos(yaw) * math.Cos(pitch),
		}
		c.Target = c.Position.Add(forward.Mul(10))
		c.Up = Vec3{0, 1, 0}
	}
}

func (c *Camera) CycleMode() {
	c.Mode = (c.Mode + 1) % 3
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(toVec32(c.Position), toVec32(c.Target), toVec32(c.Up))
}

func (c *Camera) ProjectionMatrix(width, height int) mgl32.Mat4 {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 1000)
}

func toVec32(v Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
