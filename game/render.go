package game

import (
	"fmt"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/scp087/config"
	"github.com/bloeys/scp087/level"
	"github.com/bloeys/scp087/logging"
	"github.com/bloeys/scp087/timing"
)

func (s *Session) Render() {

	s.post.BeginScene()

	s.placements = s.scenePlacements(s.placements[:0])
	s.scenery.Draw(s.Rend, s.placements)

	if s.Cfg.Face.Enabled && s.Face.Visible {
		faceMat := gglm.NewTrMatId()
		s.Rend.DrawMesh(&s.faceMesh, faceMat.TranslateVec(&s.Face.Pos), &s.faceMat)
	}

	s.post.EndScene()
	s.post.Present(s.Rend, s.PixelizerEnabled)

	if s.overlay != nil {
		s.overlay.SetLines(s.hudLines(timing.GetAvgFPS(), s.Rend.DrawCalls()))
		if err := s.overlay.Draw(s.Rend); err != nil {
			logging.ErrLog.Println("[game] failed to draw hud:", err)
		}
	}
}

func (s *Session) scenePlacements(dst []level.Placement) []level.Placement {

	if s.Cfg.Scene == config.SceneRoom {
		return s.room.Placements(dst)
	}

	return s.corridor.Placements(s.Cam.Pos.X(), dst)
}

// hudLines is the debug text for this frame
func (s *Session) hudLines(fps float32, drawCalls int) []string {

	h := &s.Cfg.HUD
	lines := make([]string, 0, 5+len(h.Help))

	lines = append(lines,
		fmt.Sprintf("FPS: %.0f", fps),
		fmt.Sprintf("Position: (%.2f, %.2f, %.2f)", s.Cam.Pos.X(), s.Cam.Pos.Y(), s.Cam.Pos.Z()),
	)

	if h.ShowDepth {
		target := s.Cam.Target()
		lines = append(lines,
			fmt.Sprintf("Max depth: %.2f", s.Tracker.Max()),
			fmt.Sprintf("Look target x: %.2f", target.X()),
		)
	}

	lines = append(lines, fmt.Sprintf("Draw calls: %d", drawCalls))
	lines = append(lines, h.Help...)

	return lines
}
