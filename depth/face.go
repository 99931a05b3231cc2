package depth

import "github.com/bloeys/gglm/gglm"

// Face is the jump-scare billboard that trails the player once shown.
// It keeps following at Offset from the camera until the player turns to
// look back at it, after which it stays where it was.
//
// Only x and y follow the camera. Offset.Z is a fixed z on the stairwell's center line.
type Face struct {
	Visible bool
	Stopped bool
	Pos     gglm.Vec3
	Offset  gglm.Vec3
}

func NewFace(offset gglm.Vec3) Face {
	return Face{Offset: offset}
}

func (f *Face) Show() {
	f.Visible = true
}

func (f *Face) Toggle() {
	f.Visible = !f.Visible
}

func (f *Face) ResetStopped() {
	f.Stopped = false
}

// Tracking is true while the face follows the camera
func (f *Face) Tracking() bool {
	return f.Visible && !f.Stopped
}

// Update stops the face whenever the player looks back, shown or not, then moves it
// along with the camera if still tracking. Stopped stays set until ResetStopped.
func (f *Face) Update(camPos *gglm.Vec3, lookingBack bool) {

	if lookingBack {
		f.Stopped = true
	}

	if !f.Tracking() {
		return
	}

	f.Pos.Data = [3]float32{
		camPos.Data[0] + f.Offset.Data[0],
		camPos.Data[1] + f.Offset.Data[1],
		f.Offset.Data[2],
	}
}
