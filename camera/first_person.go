package camera

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/chewxy/math32"
)

// Bounds keeps the player inside the stairwell
type Bounds struct {
	Enabled bool
	MinX    float32
	MinZ    float32
	MaxZ    float32
}

func (b *Bounds) Clamp(pos *gglm.Vec3) {

	if !b.Enabled {
		return
	}

	if pos.Data[0] < b.MinX {
		pos.Data[0] = b.MinX
	}

	pos.Data[2] = gglm.Clamp(pos.Data[2], b.MinZ, b.MaxZ)
}

type MoveInput struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Sprint  bool
}

// Any is true when any movement key is held
func (m MoveInput) Any() bool {
	return m.Forward || m.Back || m.Left || m.Right
}

// FirstPerson walks a camera on the xz plane with mouse look
type FirstPerson struct {
	// Yaw and Pitch are in radians
	Yaw   float32
	Pitch float32

	MaxPitch float32

	MoveSpeed   float32
	SprintScale float32
	// LookSpeed is radians per pixel of mouse motion
	LookSpeed float32

	Bounds Bounds
}

const maxMouseMove = 300

func (fp *FirstPerson) Look(dx, dy int32) {

	if dx == 0 && dy == 0 {
		return
	}

	dx = gglm.Clamp(dx, -maxMouseMove, maxMouseMove)
	dy = gglm.Clamp(dy, -maxMouseMove, maxMouseMove)

	fp.Yaw += float32(dx) * fp.LookSpeed
	fp.Pitch += float32(-dy) * fp.LookSpeed

	fp.Pitch = gglm.Clamp(fp.Pitch, -fp.MaxPitch, fp.MaxPitch)

	// Keep yaw small so precision doesn't drift on long sessions
	fp.Yaw = math32.Remainder(fp.Yaw, 2*math32.Pi)
}

// Move steps the camera position along the ground plane and returns true if it moved
func (fp *FirstPerson) Move(cam *Camera, in MoveInput, dt float32) bool {

	if !in.Any() {
		return false
	}

	speed := fp.MoveSpeed * dt
	if in.Sprint && fp.SprintScale > 0 {
		speed *= fp.SprintScale
	}

	fwdX, fwdZ := math32.Cos(fp.Yaw), math32.Sin(fp.Yaw)

	// Right is forward x up on the ground plane
	rightX, rightZ := -fwdZ, fwdX

	var forwardAmount, rightAmount float32
	if in.Forward {
		forwardAmount++
	}
	if in.Back {
		forwardAmount--
	}
	if in.Right {
		rightAmount++
	}
	if in.Left {
		rightAmount--
	}

	if forwardAmount == 0 && rightAmount == 0 {
		return false
	}

	dirX := fwdX*forwardAmount + rightX*rightAmount
	dirZ := fwdZ*forwardAmount + rightZ*rightAmount

	// Diagonals are no faster than straight lines
	l := math32.Sqrt(dirX*dirX + dirZ*dirZ)
	cam.Pos.Data[0] += dirX / l * speed
	cam.Pos.Data[2] += dirZ / l * speed

	return true
}

// Apply clamps the camera into bounds and points it along the current yaw and pitch
func (fp *FirstPerson) Apply(cam *Camera) {
	fp.Bounds.Clamp(&cam.Pos)
	cam.UpdateRotation(fp.Pitch, fp.Yaw)
}

// IsLookingBack is true when the camera looks back up the stairs, toward -x
func IsLookingBack(cam *Camera) bool {
	target := cam.Target()
	return target.Data[0] < cam.Pos.Data[0]
}
