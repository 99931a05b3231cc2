package depth

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
)

func TestMap(t *testing.T) {

	if v := Map(0, 0, 1000, 0.04, 0.7); v != 0.04 {
		t.Errorf("Map at start: expected 0.04, got %v", v)
	}

	if v := Map(1000, 0, 1000, 0, 1); v != 1 {
		t.Errorf("Map at stop: expected 1, got %v", v)
	}

	if v := Map(500, 0, 1000, 0, 1); v != 0.5 {
		t.Errorf("Map(500): expected 0.5, got %v", v)
	}

	if v := Map(250, 0, 1000, 20, 255); v != 78.75 {
		t.Errorf("Map(250) red: expected 78.75, got %v", v)
	}

	// No clamping
	if v := Map(2000, 0, 1000, 0, 1); v != 2 {
		t.Errorf("Map(2000): expected 2, got %v", v)
	}
}

func TestCurveHoldsEnds(t *testing.T) {

	c := NewCurve(0, 1000, 0.04, 0.7)

	if v := c.Eval(1500); v != 0.7 {
		t.Errorf("Eval past end: expected 0.7, got %v", v)
	}

	if v := c.Eval(1000); v != 0.7 {
		t.Errorf("Eval at end: expected 0.7, got %v", v)
	}

	if v := c.Eval(-5); v != 0.04 {
		t.Errorf("Eval before start: expected 0.04, got %v", v)
	}

	k := ConstCurve(0.2)
	for _, x := range []float32{-10, 0, 0.5, 10, 5000} {
		if v := k.Eval(x); v != 0.2 {
			t.Errorf("ConstCurve(0.2).Eval(%v): expected 0.2, got %v", x, v)
		}
	}
}

func stairwellCurves() Curves {
	return Curves{
		Fog:      NewCurve(0, 1000, 0.04, 0.7),
		LightRed: NewCurve(0, 1000, 20, 255),
		Music:    NewCurve(0, 1000, 0, 1),
	}
}

func TestCurvesClampedBeyondBottom(t *testing.T) {

	c := stairwellCurves()
	out := c.Eval(1500)

	if out.FogDensity != 0.7 {
		t.Errorf("fog: expected 0.7, got %v", out.FogDensity)
	}

	if out.LightRed != 255 {
		t.Errorf("light red: expected 255, got %v", out.LightRed)
	}

	if out.MusicVolume != 1 {
		t.Errorf("music: expected 1, got %v", out.MusicVolume)
	}
}

func TestCurvesAtTop(t *testing.T) {

	c := stairwellCurves()
	out := c.Eval(0)

	if out.FogDensity != 0.04 || out.LightRed != 20 || out.MusicVolume != 0 {
		t.Errorf("expected {0.04 20 0}, got %+v", out)
	}

	// 78.75 truncates
	if red := c.Eval(250).LightRed; red != 78 {
		t.Errorf("light red at 250: expected 78, got %v", red)
	}
}

func TestTrackerMaxIsMonotone(t *testing.T) {

	var tr Tracker
	positions := []float32{0, 3, 8, 5, 12, 1, 12, 11.5, 20, 0}
	var prevMax float32

	for _, p := range positions {

		tr.Update(p)

		if tr.Current() != p {
			t.Errorf("current: expected %v, got %v", p, tr.Current())
		}

		if tr.Max() < prevMax {
			t.Errorf("max decreased from %v to %v at position %v", prevMax, tr.Max(), p)
		}
		prevMax = tr.Max()
	}

	if tr.Max() != 20 {
		t.Errorf("max: expected 20, got %v", tr.Max())
	}
}

func TestTriggerFiresOnce(t *testing.T) {

	cryStarts := 0
	s := NewSequencer(Trigger{Name: "cry", Threshold: 10, Action: func() { cryStarts++ }})

	var tr Tracker
	for frame := 0; frame < 500; frame++ {

		// Walk down past 10 and wander back and forth
		pos := float32(frame) * 0.05
		if frame%3 == 0 {
			pos -= 4
		}

		tr.Update(pos)
		s.Evaluate(tr.Max())
	}

	if cryStarts != 1 {
		t.Errorf("cry starts: expected 1, got %d", cryStarts)
	}

	if !s.Fired("cry") || s.Pending() != 0 {
		t.Errorf("expected cry fired and nothing pending")
	}
}

func TestTriggerThresholdIsStrict(t *testing.T) {

	s := NewSequencer(Trigger{Name: "cry", Threshold: 10})

	if n := s.Evaluate(10); n != 0 {
		t.Errorf("at threshold: expected 0 fired, got %d", n)
	}

	if n := s.Evaluate(10.01); n != 1 {
		t.Errorf("past threshold: expected 1 fired, got %d", n)
	}
}

func TestTriggersFireInTableOrder(t *testing.T) {

	var order []string
	rec := func(name string) func() {
		return func() { order = append(order, name) }
	}

	s := NewSequencer(
		Trigger{Name: "cry", Threshold: 10, Action: rec("cry")},
		Trigger{Name: "whispering", Threshold: 20, Action: rec("whispering")},
		Trigger{Name: "face", Threshold: 30, Action: rec("face")},
	)

	// One big jump fires every row in one evaluation
	if n := s.Evaluate(35); n != 3 {
		t.Fatalf("fired: expected 3, got %d", n)
	}

	want := []string{"cry", "whispering", "face"}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d]: expected %s, got %s", i, want[i], order[i])
		}
	}

	if s.Pending() != 0 || s.Evaluate(50) != 0 {
		t.Errorf("expected nothing left to fire, %d pending", s.Pending())
	}
}

func TestFaceLatchesAt35(t *testing.T) {

	face := NewFace(gglm.NewVec3(-2, 2, 0))
	s := NewSequencer(Trigger{Name: "face", Threshold: 30, Action: face.Show})

	var tr Tracker
	tr.Update(35)
	s.Evaluate(tr.Max())

	if !face.Visible {
		t.Fatalf("expected face visible after reaching 35")
	}

	// Walking back up does not hide it
	tr.Update(5)
	s.Evaluate(tr.Max())

	if !face.Visible {
		t.Errorf("expected face to stay visible after walking back")
	}
}

func TestFaceTracksUntilLookedAt(t *testing.T) {

	face := NewFace(gglm.NewVec3(-2, 2, 0))

	cam := gglm.NewVec3(40, 2, 0.5)

	face.Show()
	face.Update(&cam, false)

	want := gglm.NewVec3(38, 4, 0)
	if face.Pos != want {
		t.Errorf("pos: expected %v, got %v", want.Data, face.Pos.Data)
	}

	cam = gglm.NewVec3(45, 2, -1)
	face.Update(&cam, true)

	if !face.Stopped {
		t.Fatalf("expected face stopped after looking back")
	}

	cam = gglm.NewVec3(60, 2, 0)
	face.Update(&cam, false)
	if face.Pos != want {
		t.Errorf("stopped face moved: expected %v, got %v", want.Data, face.Pos.Data)
	}

	face.ResetStopped()
	face.Update(&cam, false)

	want = gglm.NewVec3(58, 4, 0)
	if face.Pos != want {
		t.Errorf("after reset: expected %v, got %v", want.Data, face.Pos.Data)
	}

	face.Toggle()
	if face.Visible || face.Tracking() {
		t.Errorf("expected toggle to hide the face")
	}
}

func TestFaceStopLatchesWhileHidden(t *testing.T) {

	face := NewFace(gglm.NewVec3(-2, 2, 0))
	cam := gglm.NewVec3(10, 2, 0)

	// Turning around before the face is shown still stops it
	face.Update(&cam, true)
	if !face.Stopped {
		t.Fatalf("expected face stopped after looking back while hidden")
	}

	face.Show()
	face.Update(&cam, false)
	if face.Tracking() {
		t.Errorf("expected a face stopped earlier to not track once shown")
	}

	if face.Pos != (gglm.Vec3{}) {
		t.Errorf("expected untouched position, got %v", face.Pos.Data)
	}
}
