package game

import (
	"strings"
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/scp087/camera"
	"github.com/bloeys/scp087/config"
	"github.com/chewxy/math32"
)

const eps = 1e-4

func near(a, b float32) bool {
	return math32.Abs(a-b) < eps
}

// newTestSession builds the gl free part of a session from a preset
func newTestSession(t *testing.T, preset string) *Session {

	t.Helper()

	cfg, err := config.Preset(preset)
	if err != nil {
		t.Fatalf("failed to load preset %s: %v", preset, err)
	}

	s := &Session{
		Cfg:              cfg,
		LightEnabled:     cfg.Lighting.LightEnabled,
		PixelizerEnabled: cfg.Pixelizer.Enabled,
	}
	s.initCamera()
	s.initDepth()

	return s
}

func walkForward(s *Session, frames int, dt float32) {
	for i := 0; i < frames; i++ {
		s.simulate(frameInput{Move: camera.MoveInput{Forward: true}}, dt)
	}
}

func TestWalkingDownFiresTriggersInOrder(t *testing.T) {

	s := newTestSession(t, "scp087")

	// 0.6 units a frame
	walkForward(s, 10, 0.1)
	if s.Sequencer.Fired("cry") {
		t.Fatalf("cry fired early at max depth %v", s.Tracker.Max())
	}

	walkForward(s, 10, 0.1)
	if !s.Sequencer.Fired("cry") || s.Sequencer.Fired("whispering") {
		t.Fatalf("at max depth %v expected only cry fired", s.Tracker.Max())
	}

	walkForward(s, 40, 0.1)
	for _, name := range []string{"cry", "whispering", "face"} {
		if !s.Sequencer.Fired(name) {
			t.Errorf("at max depth %v expected %s fired", s.Tracker.Max(), name)
		}
	}

	if !s.Face.Visible || s.Face.Stopped {
		t.Fatalf("expected the face shown and following, got visible=%t stopped=%t", s.Face.Visible, s.Face.Stopped)
	}

	want := gglm.NewVec3(s.Cam.Pos.X()-2, s.Cam.Pos.Y()+2, 0)
	if !near(s.Face.Pos.X(), want.X()) || !near(s.Face.Pos.Y(), want.Y()) || !near(s.Face.Pos.Z(), want.Z()) {
		t.Errorf("expected face at %v, got %v", want.Data, s.Face.Pos.Data)
	}
}

func TestLookingBackStopsTheFace(t *testing.T) {

	s := newTestSession(t, "scp087")
	walkForward(s, 60, 0.1)

	// Turn around. Each frame turns at most 300px * 0.003 rad.
	for i := 0; i < 4; i++ {
		s.simulate(frameInput{MouseDX: 300}, 0.01)
	}

	if !camera.IsLookingBack(&s.Cam) {
		t.Fatalf("expected the camera to look back, yaw=%v", s.Controller.Yaw)
	}

	if !s.Face.Stopped {
		t.Fatalf("expected the face to stop once looked at")
	}

	stoppedAt := s.Face.Pos
	walkForward(s, 5, 0.1)
	if s.Face.Pos != stoppedAt {
		t.Errorf("stopped face moved from %v to %v", stoppedAt.Data, s.Face.Pos.Data)
	}
}

func TestMaxDepthSurvivesWalkingBack(t *testing.T) {

	s := newTestSession(t, "scp087")
	walkForward(s, 50, 0.1)
	reached := s.Tracker.Max()

	for i := 0; i < 20; i++ {
		s.simulate(frameInput{Move: camera.MoveInput{Back: true}}, 0.1)
	}

	if s.Tracker.Max() != reached {
		t.Errorf("max depth changed from %v to %v while walking back", reached, s.Tracker.Max())
	}

	if s.Tracker.Current() >= reached {
		t.Errorf("expected current position %v behind max %v", s.Tracker.Current(), reached)
	}
}

func TestBoundsKeepPlayerInStairwell(t *testing.T) {

	s := newTestSession(t, "scp087")

	// Strafe left (toward -z when looking down +x) and back past the start
	for i := 0; i < 50; i++ {
		s.simulate(frameInput{Move: camera.MoveInput{Left: true, Back: true}}, 0.1)
	}

	if s.Cam.Pos.X() < 0 || s.Cam.Pos.Z() < -1.4-eps || s.Cam.Pos.Z() > 1.4+eps {
		t.Errorf("camera left the stairwell: %v", s.Cam.Pos.Data)
	}
}

func TestFrameUniformsFollowDepth(t *testing.T) {

	s := newTestSession(t, "scp087")
	s.simulate(frameInput{}, 0.01)

	u := s.frameUniforms(1.5)
	if !near(u.FogDensity, 0.04) {
		t.Errorf("expected starting fog 0.04, got %v", u.FogDensity)
	}

	if !near(u.LightColor.X(), 20.0/255) || !near(u.LightColor.Y(), 20.0/255) {
		t.Errorf("expected starting light 20/255, got %v", u.LightColor.Data)
	}

	if !near(u.LightPos.Y(), s.Cam.Pos.Y()-0.5) || !near(u.LightPos.X(), s.Cam.Pos.X()) {
		t.Errorf("expected the light half a unit under the camera at %v, got %v", s.Cam.Pos.Data, u.LightPos.Data)
	}

	if u.LightEnabled != 1 || u.Time != 1.5 {
		t.Errorf("expected light on and time 1.5, got enabled=%d time=%v", u.LightEnabled, u.Time)
	}

	s.Cam.Pos.Data[0] = 1500
	s.simulate(frameInput{}, 0.01)
	u = s.frameUniforms(2)

	if !near(u.FogDensity, 0.7) || !near(u.LightColor.X(), 1) || !near(s.Outputs.MusicVolume, 1) {
		t.Errorf("expected clamped maxima past 1000, got fog=%v red=%v music=%v", u.FogDensity, u.LightColor.X(), s.Outputs.MusicVolume)
	}

	s.ToggleLight()
	if u = s.frameUniforms(2); u.LightEnabled != 0 {
		t.Errorf("expected the light off after toggling")
	}
}

func TestLiteUsesConstantAtmosphere(t *testing.T) {

	s := newTestSession(t, "scp087-lite")
	walkForward(s, 100, 0.1)

	if s.Sequencer.Len() != 0 {
		t.Fatalf("expected no depth triggers, got %d", s.Sequencer.Len())
	}

	if !near(s.Outputs.FogDensity, s.Cfg.Fog.Density) || !near(s.Outputs.MusicVolume, 0.2) || s.Outputs.LightRed != 20 {
		t.Errorf("expected constant atmosphere, got %+v", s.Outputs)
	}

	if s.Face.Visible {
		t.Errorf("face must never show without depth events")
	}
}

func TestPixelizerToggle(t *testing.T) {

	s := newTestSession(t, "scp087")
	s.TogglePixelizer()
	if s.PixelizerEnabled {
		t.Errorf("expected pixelizer off after toggling")
	}

	s = newTestSession(t, "blinddate")
	s.TogglePixelizer()
	if !s.PixelizerEnabled {
		t.Errorf("blinddate always pixelizes")
	}
}

func TestHudLines(t *testing.T) {

	s := newTestSession(t, "scp087")
	lines := s.hudLines(119.6, 397)

	joined := strings.Join(lines, "\n")
	for _, want := range []string{"FPS: 120", "Max depth: 0.00", "Look target x:", "Draw calls: 397", "G - Toggle pixelizer"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected hud to contain %q, got:\n%s", want, joined)
		}
	}

	s = newTestSession(t, "blinddate")
	joined = strings.Join(s.hudLines(60, 4), "\n")
	if strings.Contains(joined, "Max depth") {
		t.Errorf("blinddate hud must not show depth, got:\n%s", joined)
	}
}

func TestCameraAxes(t *testing.T) {

	fwd := gglm.NewVec3(1, 0, 0)
	up := gglm.NewVec3(0, 1, 0)
	right, camUp := cameraAxes(&fwd, &up)

	if !near(right.X(), 0) || !near(right.Y(), 0) || !near(right.Z(), 1) {
		t.Errorf("expected right (0, 0, 1), got %v", right.Data)
	}

	if !near(camUp.X(), 0) || !near(camUp.Y(), 1) || !near(camUp.Z(), 0) {
		t.Errorf("expected up (0, 1, 0), got %v", camUp.Data)
	}

	// Pitched down, up tilts forward but stays unit length
	fwd = gglm.NewVec3(math32.Cos(-0.5), math32.Sin(-0.5), 0)
	_, camUp = cameraAxes(&fwd, &up)
	l := math32.Sqrt(camUp.X()*camUp.X() + camUp.Y()*camUp.Y() + camUp.Z()*camUp.Z())
	if !near(l, 1) || camUp.X() <= 0 {
		t.Errorf("expected a unit up vector leaning toward +x, got %v", camUp.Data)
	}
}
