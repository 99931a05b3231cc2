package camera

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/chewxy/math32"
)

const eps = 1e-5

func near(a, b float32) bool {
	return math32.Abs(a-b) < eps
}

func newTestCamera() Camera {

	pos := gglm.NewVec3(0, 2, 0)
	fwd := gglm.NewVec3(1, 0, 0)
	up := gglm.NewVec3(0, 1, 0)
	return NewPerspective(&pos, &fwd, &up, 0.05, 200, 90*gglm.Deg2Rad, 16.0/9)
}

func TestForwardFromAngles(t *testing.T) {

	tests := []struct {
		pitch, yaw float32
		want       [3]float32
	}{
		{0, 0, [3]float32{1, 0, 0}},
		{0, math32.Pi / 2, [3]float32{0, 0, 1}},
		{0, math32.Pi, [3]float32{-1, 0, 0}},
		{math32.Pi / 2, 0, [3]float32{0, 1, 0}},
	}

	for _, tt := range tests {
		got := ForwardFromAngles(tt.pitch, tt.yaw)
		for i := 0; i < 3; i++ {
			if !near(got.Data[i], tt.want[i]) {
				t.Errorf("ForwardFromAngles(%v, %v): expected %v, got %v", tt.pitch, tt.yaw, tt.want, got.Data)
				break
			}
		}
	}
}

func TestTarget(t *testing.T) {

	cam := newTestCamera()
	target := cam.Target()

	if target.Data != [3]float32{1, 2, 0} {
		t.Errorf("target: expected [1 2 0], got %v", target.Data)
	}
}

func TestMoveOnGroundPlane(t *testing.T) {

	cam := newTestCamera()
	fp := FirstPerson{MoveSpeed: 6, SprintScale: 2, Pitch: -1, MaxPitch: 1.5}

	if !fp.Move(&cam, MoveInput{Forward: true}, 0.5) {
		t.Fatalf("expected move")
	}

	// Pitch doesn't lift or sink the player
	if !near(cam.Pos.X(), 3) || !near(cam.Pos.Y(), 2) || !near(cam.Pos.Z(), 0) {
		t.Errorf("forward: expected [3 2 0], got %v", cam.Pos.Data)
	}

	fp.Move(&cam, MoveInput{Right: true, Sprint: true}, 0.1)
	if !near(cam.Pos.X(), 3) || !near(cam.Pos.Z(), 1.2) {
		t.Errorf("sprint right: expected [3 2 1.2], got %v", cam.Pos.Data)
	}

	if fp.Move(&cam, MoveInput{Forward: true, Back: true}, 1) {
		t.Errorf("opposite keys should cancel out")
	}

	if fp.Move(&cam, MoveInput{}, 1) {
		t.Errorf("no keys should not move")
	}
}

func TestDiagonalSpeed(t *testing.T) {

	cam := newTestCamera()
	fp := FirstPerson{MoveSpeed: 1}

	fp.Move(&cam, MoveInput{Forward: true, Left: true}, 1)

	dist := math32.Sqrt(cam.Pos.X()*cam.Pos.X() + cam.Pos.Z()*cam.Pos.Z())
	if !near(dist, 1) {
		t.Errorf("diagonal distance: expected 1, got %v", dist)
	}
}

func TestBoundsClamp(t *testing.T) {

	b := Bounds{Enabled: true, MinX: 0, MinZ: -1.4, MaxZ: 1.4}

	pos := gglm.NewVec3(-3, 2, 2)
	b.Clamp(&pos)
	if pos.Data != [3]float32{0, 2, 1.4} {
		t.Errorf("clamp: expected [0 2 1.4], got %v", pos.Data)
	}

	pos = gglm.NewVec3(50, 2, -9)
	b.Clamp(&pos)
	if pos.Data != [3]float32{50, 2, -1.4} {
		t.Errorf("clamp: expected [50 2 -1.4], got %v", pos.Data)
	}

	b.Enabled = false
	pos = gglm.NewVec3(-3, 2, 9)
	b.Clamp(&pos)
	if pos.Data != [3]float32{-3, 2, 9} {
		t.Errorf("disabled bounds changed the position: %v", pos.Data)
	}
}

func TestLookClampsPitch(t *testing.T) {

	fp := FirstPerson{LookSpeed: 0.01, MaxPitch: 1.5}

	fp.Look(10, 0)
	if !near(fp.Yaw, 0.1) {
		t.Errorf("yaw: expected 0.1, got %v", fp.Yaw)
	}

	// Mouse up looks up
	fp.Look(0, -100)
	if !near(fp.Pitch, 1) {
		t.Errorf("pitch: expected 1, got %v", fp.Pitch)
	}

	fp.Look(0, -300)
	if fp.Pitch != 1.5 {
		t.Errorf("pitch: expected clamp at 1.5, got %v", fp.Pitch)
	}
}

func TestApplyAndLookingBack(t *testing.T) {

	cam := newTestCamera()
	fp := FirstPerson{Bounds: Bounds{Enabled: true, MinX: 0, MinZ: -1.4, MaxZ: 1.4}}

	cam.Pos = gglm.NewVec3(-1, 2, 3)
	fp.Apply(&cam)

	if cam.Pos.Data != [3]float32{0, 2, 1.4} {
		t.Errorf("apply: expected clamped [0 2 1.4], got %v", cam.Pos.Data)
	}

	if IsLookingBack(&cam) {
		t.Errorf("yaw 0 looks down the stairs, not back")
	}

	fp.Yaw = math32.Pi
	fp.Apply(&cam)
	if !IsLookingBack(&cam) {
		t.Errorf("yaw pi should look back up the stairs")
	}
}
