package config

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets/*.yaml
var presetFS embed.FS

const (
	SceneCorridor = "corridor"
	SceneRoom     = "room"

	EffectPlayLayer = "play_layer"
	EffectShowFace  = "show_face"

	PieceFloor    = "floor"
	PieceCeiling  = "ceiling"
	PieceWall     = "wall"
	PieceBackWall = "backwall"
)

// Demo is everything one demo executable needs to set itself up
//
// A user file decoded on top of a preset replaces list values and whole
// 'pieces' entries rather than merging into them.
type Demo struct {
	// Preset names the embedded base a user file builds on
	Preset string `yaml:"preset"`
	Name   string `yaml:"name"`
	Scene  string `yaml:"scene"`

	Window    Window           `yaml:"window"`
	Camera    Camera           `yaml:"camera"`
	Shaders   Shaders          `yaml:"shaders"`
	Pieces    map[string]Piece `yaml:"pieces"`
	Lighting  Lighting         `yaml:"lighting"`
	Fog       Fog              `yaml:"fog"`
	Corridor  Corridor         `yaml:"corridor"`
	Room      Room             `yaml:"room"`
	Depth     Depth            `yaml:"depth"`
	Pixelizer Pixelizer        `yaml:"pixelizer"`
	Face      Face             `yaml:"face"`
	Audio     Audio            `yaml:"audio"`
	HUD       HUD              `yaml:"hud"`
}

type Window struct {
	Title      string `yaml:"title"`
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	MSAA       bool   `yaml:"msaa"`
	// TargetFPS of zero means uncapped
	TargetFPS int `yaml:"target_fps"`
}

type Camera struct {
	Pos [3]float32 `yaml:"pos"`
	// Yaw, Pitch and FovY are in degrees
	Yaw         float32 `yaml:"yaw"`
	Pitch       float32 `yaml:"pitch"`
	FovY        float32 `yaml:"fov_y"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	MoveSpeed   float32 `yaml:"move_speed"`
	LookSpeed   float32 `yaml:"look_speed"`
	SprintScale float32 `yaml:"sprint_scale"`
	Bounds      Bounds  `yaml:"bounds"`
}

type Bounds struct {
	Enabled bool    `yaml:"enabled"`
	MinX    float32 `yaml:"min_x"`
	MinZ    float32 `yaml:"min_z"`
	MaxZ    float32 `yaml:"max_z"`
}

type Shaders struct {
	Lit        string `yaml:"lit"`
	Billboard  string `yaml:"billboard"`
	Pixelizer  string `yaml:"pixelizer"`
	ScreenQuad string `yaml:"screen_quad"`
}

// Piece describes one kind of scenery block. Model is optional and replaces the
// generated cube of Size when set.
type Piece struct {
	Size    [3]float32 `yaml:"size"`
	Texture string     `yaml:"texture"`
	Model   string     `yaml:"model"`
}

type Lighting struct {
	Ambient [4]float32 `yaml:"ambient"`
	// LightColor channels are 0-255
	LightColor   [3]float32 `yaml:"light_color"`
	LightEnabled bool       `yaml:"light_enabled"`
	LightYOffset float32    `yaml:"light_y_offset"`
}

type Fog struct {
	Density float32    `yaml:"density"`
	Color   [3]float32 `yaml:"color"`
}

type Corridor struct {
	ChunkLength float32 `yaml:"chunk_length"`
	Radius      int     `yaml:"radius"`
	Modulo      string  `yaml:"modulo"`
	BackWall    bool    `yaml:"back_wall"`
}

type Room struct {
	Count   int     `yaml:"count"`
	Spacing float32 `yaml:"spacing"`
	Y       float32 `yaml:"y"`
}

// Curve remaps the In range onto the Out range, holding the end values outside of In
type Curve struct {
	In  [2]float32 `yaml:"in"`
	Out [2]float32 `yaml:"out"`
}

type Trigger struct {
	Name      string  `yaml:"name"`
	Threshold float32 `yaml:"threshold"`
	Effect    string  `yaml:"effect"`
	Layer     string  `yaml:"layer"`
	Volume    float32 `yaml:"volume"`
}

type Depth struct {
	Enabled  bool      `yaml:"enabled"`
	Fog      *Curve    `yaml:"fog"`
	LightRed *Curve    `yaml:"light_red"`
	Music    *Curve    `yaml:"music"`
	Triggers []Trigger `yaml:"triggers"`
}

type Pixelizer struct {
	Enabled     bool    `yaml:"enabled"`
	Toggleable  bool    `yaml:"toggleable"`
	PixelWidth  float32 `yaml:"pixel_width"`
	PixelHeight float32 `yaml:"pixel_height"`
}

type Face struct {
	Enabled   bool       `yaml:"enabled"`
	DebugKeys bool       `yaml:"debug_keys"`
	Texture   string     `yaml:"texture"`
	Offset    [3]float32 `yaml:"offset"`
	Size      float32    `yaml:"size"`
	Alpha     float32    `yaml:"alpha"`
}

type Music struct {
	Path   string  `yaml:"path"`
	Volume float32 `yaml:"volume"`
}

type Layer struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

type Step struct {
	Path string `yaml:"path"`
	// Volume range in [0,1]
	MinVolume float32 `yaml:"min_volume"`
	MaxVolume float32 `yaml:"max_volume"`
}

type Audio struct {
	Enabled   bool    `yaml:"enabled"`
	Frequency int     `yaml:"frequency"`
	ChunkSize int     `yaml:"chunk_size"`
	Music     Music   `yaml:"music"`
	Layers    []Layer `yaml:"layers"`
	Step      Step    `yaml:"step"`
}

type HUD struct {
	Enabled     bool       `yaml:"enabled"`
	FontSize    float64    `yaml:"font_size"`
	Color       [4]float32 `yaml:"color"`
	X           int        `yaml:"x"`
	Y           int        `yaml:"y"`
	LineSpacing int        `yaml:"line_spacing"`
	ShowDepth   bool       `yaml:"show_depth"`
	Help        []string   `yaml:"help"`
}

var (
	ErrUnknownPreset  = errors.New("unknown preset")
	ErrPresetMismatch = errors.New("config file is for another demo")
)

// PresetNames lists the embedded demo presets
func PresetNames() []string {

	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}

	sort.Strings(names)
	return names
}

// Preset returns a fresh copy of the embedded preset with the given name
func Preset(name string) (*Demo, error) {

	data, err := presetFS.ReadFile("presets/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownPreset, name, PresetNames())
	}

	return Parse(data, nil)
}

// Load reads a user config file on top of the named preset, and only needs to hold
// the values it changes. A top level 'preset' key, if present, must name the same preset.
func Load(path, preset string) (*Demo, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var header Demo
	if err := yaml.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if header.Preset != "" && header.Preset != preset {
		return nil, fmt.Errorf("%w: %s is for %q, this is %q", ErrPresetMismatch, path, header.Preset, preset)
	}

	base, err := Preset(preset)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(data, base)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes data on top of base (which may be nil) and validates the result
func Parse(data []byte, base *Demo) (*Demo, error) {

	cfg := base
	if cfg == nil {
		cfg = &Demo{}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse demo config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations the demo can't run with
func (d *Demo) Validate() error {

	var errs []error

	if d.Window.Width <= 0 || d.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", d.Window.Width, d.Window.Height))
	}

	if d.Window.TargetFPS < 0 {
		errs = append(errs, fmt.Errorf("window.target_fps can't be negative, got %d", d.Window.TargetFPS))
	}

	if d.Camera.FovY <= 0 || d.Camera.FovY >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov_y must be in (0, 180), got %v", d.Camera.FovY))
	}

	if d.Camera.Near <= 0 || d.Camera.Far <= d.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes must satisfy 0 < near < far, got near=%v far=%v", d.Camera.Near, d.Camera.Far))
	}

	if d.Camera.Bounds.Enabled && d.Camera.Bounds.MinZ > d.Camera.Bounds.MaxZ {
		errs = append(errs, fmt.Errorf("camera.bounds min_z=%v is above max_z=%v", d.Camera.Bounds.MinZ, d.Camera.Bounds.MaxZ))
	}

	switch d.Scene {
	case SceneCorridor:

		if d.Corridor.ChunkLength <= 0 {
			errs = append(errs, fmt.Errorf("corridor.chunk_length must be positive, got %v", d.Corridor.ChunkLength))
		}

		if d.Corridor.Radius < 0 {
			errs = append(errs, fmt.Errorf("corridor.radius can't be negative, got %d", d.Corridor.Radius))
		}

		if d.Corridor.Modulo != "trunc" && d.Corridor.Modulo != "floor" {
			errs = append(errs, fmt.Errorf("corridor.modulo must be 'trunc' or 'floor', got %q", d.Corridor.Modulo))
		}

		required := []string{PieceFloor, PieceCeiling, PieceWall}
		if d.Corridor.BackWall {
			required = append(required, PieceBackWall)
		}
		errs = append(errs, d.checkPieces(required...)...)

	case SceneRoom:

		if d.Room.Count <= 0 {
			errs = append(errs, fmt.Errorf("room.count must be positive, got %d", d.Room.Count))
		}
		errs = append(errs, d.checkPieces(PieceWall)...)

	default:
		errs = append(errs, fmt.Errorf("scene must be %q or %q, got %q", SceneCorridor, SceneRoom, d.Scene))
	}

	if d.Depth.Enabled {

		for name, c := range map[string]*Curve{"fog": d.Depth.Fog, "light_red": d.Depth.LightRed, "music": d.Depth.Music} {
			if c != nil && c.In[1] <= c.In[0] {
				errs = append(errs, fmt.Errorf("depth.%s curve input range must increase, got %v", name, c.In))
			}
		}

		for i, t := range d.Depth.Triggers {
			switch t.Effect {
			case EffectPlayLayer:
				if !d.hasLayer(t.Layer) {
					errs = append(errs, fmt.Errorf("depth.triggers[%d] (%s) plays unknown audio layer %q", i, t.Name, t.Layer))
				}
			case EffectShowFace:
				if !d.Face.Enabled {
					errs = append(errs, fmt.Errorf("depth.triggers[%d] (%s) shows the face but face.enabled is false", i, t.Name))
				}
			default:
				errs = append(errs, fmt.Errorf("depth.triggers[%d] (%s) has unknown effect %q", i, t.Name, t.Effect))
			}
		}
	}

	if d.Pixelizer.Enabled && (d.Pixelizer.PixelWidth <= 0 || d.Pixelizer.PixelHeight <= 0) {
		errs = append(errs, fmt.Errorf("pixelizer pixel size must be positive, got %vx%v", d.Pixelizer.PixelWidth, d.Pixelizer.PixelHeight))
	}

	if d.Face.Enabled && d.Face.Texture == "" {
		errs = append(errs, errors.New("face.texture is required when the face is enabled"))
	}

	if d.Audio.Enabled && d.Audio.Step.MinVolume > d.Audio.Step.MaxVolume {
		errs = append(errs, fmt.Errorf("audio.step min_volume=%v is above max_volume=%v", d.Audio.Step.MinVolume, d.Audio.Step.MaxVolume))
	}

	if d.HUD.Enabled && d.HUD.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("hud.font_size must be positive, got %v", d.HUD.FontSize))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config for demo %q: %w", d.Name, errors.Join(errs...))
	}

	return nil
}

func (d *Demo) checkPieces(names ...string) []error {

	var errs []error
	for _, n := range names {

		p, ok := d.Pieces[n]
		if !ok {
			errs = append(errs, fmt.Errorf("pieces.%s is missing", n))
			continue
		}

		if p.Model == "" && (p.Size[0] <= 0 || p.Size[1] <= 0 || p.Size[2] <= 0) {
			errs = append(errs, fmt.Errorf("pieces.%s size must be positive, got %v", n, p.Size))
		}

		if p.Texture == "" {
			errs = append(errs, fmt.Errorf("pieces.%s has no texture", n))
		}
	}

	return errs
}

func (d *Demo) hasLayer(name string) bool {

	if !d.Audio.Enabled {
		return false
	}

	for _, l := range d.Audio.Layers {
		if l.Name == name {
			return true
		}
	}

	return false
}
