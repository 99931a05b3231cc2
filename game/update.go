package game

import (
	"github.com/bloeys/scp087/camera"
	"github.com/bloeys/scp087/engine"
	"github.com/bloeys/scp087/input"
	"github.com/bloeys/scp087/logging"
	"github.com/bloeys/scp087/timing"
	"github.com/veandco/go-sdl2/sdl"
)

// frameInput is what the player did this frame
type frameInput struct {
	MouseDX int32
	MouseDY int32
	Move    camera.MoveInput
}

func readFrameInput() frameInput {

	dx, dy := input.GetMouseMotion()
	return frameInput{
		MouseDX: dx,
		MouseDY: dy,
		Move: camera.MoveInput{
			Forward: input.KeyDown(sdl.K_w),
			Back:    input.KeyDown(sdl.K_s),
			Left:    input.KeyDown(sdl.K_a),
			Right:   input.KeyDown(sdl.K_d),
			Sprint:  input.KeyDown(sdl.K_LSHIFT),
		},
	}
}

func (s *Session) Init() {
	engine.SetRelativeMouse(true)
}

func (s *Session) Update() {

	in := readFrameInput()
	s.simulate(in, timing.DT())

	u := s.frameUniforms(timing.ElapsedTime())
	s.uploadFrameUniforms(&u)

	s.handleKeys()

	if s.Audio != nil {
		s.Audio.StepWhileWalking(s.walking)
		s.Audio.UpdateMusic(s.Outputs.MusicVolume)
	}

	// Toggles above may have changed the light
	u.LightEnabled = 0
	if s.LightEnabled {
		u.LightEnabled = 1
	}
	s.uploadLight(&u)
}

// simulate advances everything that doesn't need GL or audio:
// camera, bounds, depth tracking, atmosphere curves, the trigger table and the face.
func (s *Session) simulate(in frameInput, dt float32) {

	s.Controller.Look(in.MouseDX, in.MouseDY)
	s.walking = s.Controller.Move(&s.Cam, in.Move, dt)
	s.Controller.Apply(&s.Cam)

	s.Tracker.Update(s.Cam.Pos.X())
	s.Outputs = s.Curves.Eval(s.Tracker.Current())
	s.Sequencer.Evaluate(s.Tracker.Max())

	if s.Cfg.Face.Enabled {
		s.Face.Update(&s.Cam.Pos, camera.IsLookingBack(&s.Cam))
	}
}

func (s *Session) handleKeys() {

	if input.KeyClicked(sdl.K_ESCAPE) {
		engine.Quit()
	}

	if input.KeyClicked(sdl.K_f) {
		s.ToggleLight()
	}

	if input.KeyClicked(sdl.K_g) {
		s.TogglePixelizer()
	}

	if s.Cfg.Face.Enabled && s.Cfg.Face.DebugKeys {

		if input.KeyClicked(sdl.K_h) {
			s.Face.Toggle()
		}

		if input.KeyClicked(sdl.K_j) {
			s.Face.ResetStopped()
		}
	}
}

func (s *Session) ToggleLight() {
	s.LightEnabled = !s.LightEnabled
}

// TogglePixelizer flips the pixelizer unless the demo always applies it
func (s *Session) TogglePixelizer() {

	if !s.Cfg.Pixelizer.Toggleable {
		return
	}

	s.PixelizerEnabled = !s.PixelizerEnabled
}

func (s *Session) FrameEnd() {
}

func (s *Session) DeInit() {

	logging.InfoLog.Printf("[game] %s done: max depth %.2f, triggers fired %d/%d\n", s.Cfg.Name, s.Tracker.Max(), s.Sequencer.Len()-s.Sequencer.Pending(), s.Sequencer.Len())

	engine.SetRelativeMouse(false)
	s.free()
}
