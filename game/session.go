// Package game runs one demo: it owns every piece of per-program state and
// implements engine.Game on top of it.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/scp087/assets"
	"github.com/bloeys/scp087/audio"
	"github.com/bloeys/scp087/buffers"
	"github.com/bloeys/scp087/camera"
	"github.com/bloeys/scp087/config"
	"github.com/bloeys/scp087/depth"
	"github.com/bloeys/scp087/engine"
	"github.com/bloeys/scp087/hud"
	"github.com/bloeys/scp087/level"
	"github.com/bloeys/scp087/logging"
	"github.com/bloeys/scp087/materials"
	"github.com/bloeys/scp087/meshes"
	"github.com/bloeys/scp087/postfx"
	"github.com/bloeys/scp087/renderer"
)

var _ engine.Game = &Session{}

// maxPitch keeps the camera from flipping over when looking straight up or down
const maxPitch = 1.5

// frameBindPoint is where the per frame uniform block lives
const frameBindPoint = 0

type Session struct {
	Cfg  *config.Demo
	Win  *engine.Window
	Rend renderer.Render

	Cam        camera.Camera
	Controller camera.FirstPerson

	Tracker   depth.Tracker
	Sequencer *depth.Sequencer
	Curves    depth.Curves
	Outputs   depth.Outputs
	Face      depth.Face

	// Audio is nil when the demo has no sound
	Audio *audio.Manager

	LightEnabled     bool
	PixelizerEnabled bool

	corridor   level.Corridor
	room       level.Room
	scenery    level.Scenery
	placements []level.Placement

	pieceMeshes [level.PieceCount]meshes.Mesh
	pieceMats   [level.PieceCount]materials.Material
	pieceTexs   [level.PieceCount]assets.Texture

	faceMesh meshes.Mesh
	faceMat  materials.Material
	faceTex  assets.Texture

	frameUbo buffers.UniformBuffer
	post     *postfx.Pipeline
	overlay  *hud.Overlay

	walking bool
}

// New loads everything the demo needs. The window's GL context must be current.
// Any error means an asset or shader could not be loaded.
func New(cfg *config.Demo, win *engine.Window) (*Session, error) {

	s := &Session{
		Cfg:              cfg,
		Win:              win,
		Rend:             win.Rend,
		LightEnabled:     cfg.Lighting.LightEnabled,
		PixelizerEnabled: cfg.Pixelizer.Enabled,
	}

	s.initCamera()
	s.initDepth()

	assets.CreateDefaultTextures()
	s.frameUbo = newFrameUbo()

	if err := s.loadScenery(); err != nil {
		s.free()
		return nil, err
	}

	if cfg.Face.Enabled {
		if err := s.loadFace(); err != nil {
			s.free()
			return nil, err
		}
	}

	width, height := win.Size()

	var err error
	s.post, err = postfx.NewPipeline(width, height, cfg.Shaders.Pixelizer, cfg.Shaders.ScreenQuad)
	if err != nil {
		s.free()
		return nil, err
	}

	if cfg.Pixelizer.Enabled || cfg.Pixelizer.Toggleable {
		s.post.SetPixelSize(cfg.Pixelizer.PixelWidth, cfg.Pixelizer.PixelHeight)
	}

	if cfg.HUD.Enabled {

		layout := hud.Layout{X: cfg.HUD.X, Y: cfg.HUD.Y, LineSpacing: cfg.HUD.LineSpacing}
		s.overlay, err = hud.NewOverlay(width, height, cfg.HUD.FontSize, cfg.HUD.Color, layout, cfg.Shaders.ScreenQuad)
		if err != nil {
			s.free()
			return nil, err
		}
	}

	if cfg.Audio.Enabled {

		if err := audio.Init(cfg.Audio.Frequency, cfg.Audio.ChunkSize); err != nil {
			s.free()
			return nil, err
		}

		s.Audio, err = audio.NewManager(&cfg.Audio, rand.New(rand.NewSource(time.Now().UnixNano())))
		if err != nil {
			s.free()
			return nil, err
		}
	}

	s.Cam.SetAspectRatio(width, height)
	win.ResizeCallbacks = append(win.ResizeCallbacks, s.handleResize)

	logging.InfoLog.Printf("[game] %s ready: scene=%s pieces=%d depth=%t audio=%t\n", cfg.Name, cfg.Scene, len(cfg.Pieces), cfg.Depth.Enabled, cfg.Audio.Enabled)
	return s, nil
}

func (s *Session) initCamera() {

	c := &s.Cfg.Camera

	s.Controller = camera.FirstPerson{
		Yaw:         c.Yaw * gglm.Deg2Rad,
		Pitch:       c.Pitch * gglm.Deg2Rad,
		MaxPitch:    maxPitch,
		MoveSpeed:   c.MoveSpeed,
		SprintScale: c.SprintScale,
		LookSpeed:   c.LookSpeed,
		Bounds: camera.Bounds{
			Enabled: c.Bounds.Enabled,
			MinX:    c.Bounds.MinX,
			MinZ:    c.Bounds.MinZ,
			MaxZ:    c.Bounds.MaxZ,
		},
	}

	pos := gglm.NewVec3(c.Pos[0], c.Pos[1], c.Pos[2])
	fwd := camera.ForwardFromAngles(s.Controller.Pitch, s.Controller.Yaw)
	up := gglm.NewVec3(0, 1, 0)

	aspect := float32(s.Cfg.Window.Width) / float32(s.Cfg.Window.Height)
	s.Cam = camera.NewPerspective(&pos, &fwd, &up, c.Near, c.Far, c.FovY*gglm.Deg2Rad, aspect)
}

// initDepth builds the depth curves and trigger table. Curves missing from the
// config hold the static values instead, so the frame logic is the same for every demo.
func (s *Session) initDepth() {

	cfg := s.Cfg
	s.Curves = depth.Curves{
		Fog:      depth.ConstCurve(cfg.Fog.Density),
		LightRed: depth.ConstCurve(cfg.Lighting.LightColor[0]),
		Music:    depth.ConstCurve(cfg.Audio.Music.Volume),
	}

	s.Face = depth.NewFace(gglm.NewVec3(cfg.Face.Offset[0], cfg.Face.Offset[1], cfg.Face.Offset[2]))
	s.Sequencer = depth.NewSequencer()

	if !cfg.Depth.Enabled {
		s.Outputs = s.Curves.Eval(0)
		return
	}

	curveFromConfig(&s.Curves.Fog, cfg.Depth.Fog)
	curveFromConfig(&s.Curves.LightRed, cfg.Depth.LightRed)
	curveFromConfig(&s.Curves.Music, cfg.Depth.Music)
	s.Outputs = s.Curves.Eval(0)

	for _, t := range cfg.Depth.Triggers {
		s.Sequencer.AddTrigger(depth.Trigger{
			Name:      t.Name,
			Threshold: t.Threshold,
			Action:    s.triggerAction(t),
		})
	}
}

func curveFromConfig(dst *depth.Curve, c *config.Curve) {

	if c == nil {
		return
	}

	*dst = depth.NewCurve(c.In[0], c.In[1], c.Out[0], c.Out[1])
}

func (s *Session) triggerAction(t config.Trigger) func() {

	switch t.Effect {
	case config.EffectPlayLayer:
		return func() {
			logging.InfoLog.Printf("[game] depth trigger %s fired at max depth %.2f\n", t.Name, s.Tracker.Max())
			if s.Audio != nil {
				s.Audio.StartLayer(t.Layer, t.Volume)
			}
		}

	case config.EffectShowFace:
		return func() {
			logging.InfoLog.Printf("[game] depth trigger %s fired at max depth %.2f\n", t.Name, s.Tracker.Max())
			s.Face.Show()
		}

	default:
		// Validate rejects unknown effects, this only guards hand built configs
		return func() {
			logging.WarnLog.Printf("[game] depth trigger %s has unknown effect %q\n", t.Name, t.Effect)
		}
	}
}

func (s *Session) loadScenery() error {

	cfg := s.Cfg

	switch cfg.Scene {
	case config.SceneCorridor:
		mode, err := level.ParseModuloMode(cfg.Corridor.Modulo)
		if err != nil {
			return err
		}
		s.corridor = level.NewCorridor(cfg.Corridor.ChunkLength, cfg.Corridor.Radius, mode, cfg.Corridor.BackWall)
		s.placements = make([]level.Placement, 0, s.corridor.PlacementsPerFrame())

	case config.SceneRoom:
		s.room = level.NewRoom(cfg.Room.Count, cfg.Room.Spacing, cfg.Room.Y)
		s.placements = make([]level.Placement, 0, cfg.Room.Count)

	default:
		return fmt.Errorf("unknown scene %q", cfg.Scene)
	}

	for name, pieceCfg := range cfg.Pieces {

		piece, err := level.ParsePiece(name)
		if err != nil {
			return err
		}

		if err := s.loadPiece(piece, &pieceCfg); err != nil {
			return err
		}

		s.scenery.Bind(piece, &s.pieceMeshes[piece], &s.pieceMats[piece])
	}

	return nil
}

func (s *Session) loadPiece(piece level.Piece, pieceCfg *config.Piece) (err error) {

	name := piece.String()

	if pieceCfg.Model != "" {
		s.pieceMeshes[piece], err = meshes.NewMesh(name, pieceCfg.Model, 0)
		if err != nil {
			return err
		}
	} else {
		s.pieceMeshes[piece] = meshes.NewCubeMesh(name, pieceCfg.Size[0], pieceCfg.Size[1], pieceCfg.Size[2])
	}

	s.pieceTexs[piece], err = assets.LoadTexturePNG(pieceCfg.Texture, &assets.TextureLoadOptions{})
	if err != nil {
		return err
	}

	s.pieceMats[piece], err = materials.NewMaterial(name, s.Cfg.Shaders.Lit)
	if err != nil {
		return err
	}

	mat := &s.pieceMats[piece]
	mat.Settings.Set(materials.MaterialSettings_HasModelMtx)
	mat.DiffuseTex = s.pieceTexs[piece].TexID
	mat.SetUniformBlockBindingPoint("Frame", frameBindPoint)

	return nil
}

func (s *Session) loadFace() (err error) {

	faceCfg := &s.Cfg.Face

	s.faceTex, err = assets.LoadTexturePNG(faceCfg.Texture, &assets.TextureLoadOptions{Clamp: true})
	if err != nil {
		return err
	}

	s.faceMat, err = materials.NewMaterial("face", s.Cfg.Shaders.Billboard)
	if err != nil {
		return err
	}

	s.faceMat.Settings.Set(materials.MaterialSettings_HasModelMtx | materials.MaterialSettings_NoDepthWrite)
	s.faceMat.DiffuseTex = s.faceTex.TexID
	s.faceMat.SetUniformBlockBindingPoint("Frame", frameBindPoint)
	s.faceMat.SetUnifFloat32("alpha", faceCfg.Alpha)

	// Keep the billboard's aspect ratio the same as the image
	width := faceCfg.Size
	height := faceCfg.Size
	if s.faceTex.Width > 0 {
		height = faceCfg.Size * float32(s.faceTex.Height) / float32(s.faceTex.Width)
	}

	s.faceMesh = meshes.NewQuadMesh("face", width, height)
	return nil
}

func (s *Session) handleResize(width, height int32) {

	s.Cam.SetAspectRatio(width, height)
	s.post.Resize(width, height)

	if s.overlay != nil {
		s.overlay.Resize(width, height)
	}
}

// free releases whatever was loaded so far. Zero GL handles are ignored by OpenGL.
func (s *Session) free() {

	for i := range s.pieceMeshes {
		s.pieceMeshes[i].Delete()
		s.pieceMats[i].Delete()
		s.pieceTexs[i].Delete()
	}

	s.faceMesh.Delete()
	s.faceMat.Delete()
	s.faceTex.Delete()

	s.frameUbo.Delete()

	if s.post != nil {
		s.post.Delete()
		s.post = nil
	}

	if s.overlay != nil {
		s.overlay.Delete()
		s.overlay = nil
	}

	if s.Audio != nil {
		s.Audio.FreeAll()
		s.Audio = nil
	}

	audio.Close()
}
