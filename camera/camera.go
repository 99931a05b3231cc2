package camera

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/chewxy/math32"
)

type Camera struct {
	Pos     gglm.Vec3
	Forward gglm.Vec3
	WorldUp gglm.Vec3

	ViewMat gglm.Mat4
	ProjMat gglm.Mat4

	NearClip float32
	FarClip  float32
	// Fov is the vertical field of view in radians
	Fov         float32
	AspectRatio float32
}

// Update recalculates the view and projection matrices
func (c *Camera) Update() {

	target := c.Target()
	view := gglm.LookAtRH(&c.Pos, &target, &c.WorldUp)
	c.ViewMat = view.Mat4

	proj := gglm.Perspective(c.Fov, c.AspectRatio, c.NearClip, c.FarClip)
	c.ProjMat = *proj.Clone()
}

// UpdateRotation points the camera using pitch and yaw in radians. A yaw of zero looks down +x.
func (c *Camera) UpdateRotation(pitch, yaw float32) {
	c.Forward = ForwardFromAngles(pitch, yaw)
	c.Update()
}

// Target is the point one unit in front of the camera
func (c *Camera) Target() gglm.Vec3 {
	return gglm.NewVec3(
		c.Pos.Data[0]+c.Forward.Data[0],
		c.Pos.Data[1]+c.Forward.Data[1],
		c.Pos.Data[2]+c.Forward.Data[2],
	)
}

func (c *Camera) ProjView() gglm.Mat4 {
	return *c.ProjMat.Clone().Mul(&c.ViewMat)
}

func (c *Camera) SetAspectRatio(width, height int32) {

	if width <= 0 || height <= 0 {
		return
	}

	c.AspectRatio = float32(width) / float32(height)
	c.Update()
}

// ForwardFromAngles returns the unit look direction for pitch and yaw in radians
func ForwardFromAngles(pitch, yaw float32) gglm.Vec3 {

	cosPitch := math32.Cos(pitch)
	return gglm.NewVec3(
		math32.Cos(yaw)*cosPitch,
		math32.Sin(pitch),
		math32.Sin(yaw)*cosPitch,
	)
}

func NewPerspective(pos, forward, worldUp *gglm.Vec3, nearClip, farClip, fovRadians, aspectRatio float32) Camera {

	cam := Camera{
		Pos:     *pos,
		Forward: *forward,
		WorldUp: *worldUp,

		NearClip:    nearClip,
		FarClip:     farClip,
		Fov:         fovRadians,
		AspectRatio: aspectRatio,
	}

	cam.Update()
	return cam
}
