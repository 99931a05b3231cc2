package audio

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/bloeys/scp087/config"
	"github.com/bloeys/scp087/logging"
)

// Manager owns every track a demo uses. Layers get the low mixer channels in
// config order and the footstep takes the one after them.
type Manager struct {
	Music  *Music
	Step   *Sound
	layers map[string]*Layer

	stepMinVolume float32
	stepMaxVolume float32
	rng           *rand.Rand
}

func NewManager(cfg *config.Audio, rng *rand.Rand) (*Manager, error) {

	if len(cfg.Layers)+1 > mixChannels {
		return nil, fmt.Errorf("too many audio layers: %d, max is %d", len(cfg.Layers), mixChannels-1)
	}

	m := &Manager{
		layers:        make(map[string]*Layer, len(cfg.Layers)),
		stepMinVolume: cfg.Step.MinVolume,
		stepMaxVolume: cfg.Step.MaxVolume,
		rng:           rng,
	}

	var err error
	if cfg.Music.Path != "" {

		m.Music, err = LoadMusic(cfg.Music.Path)
		if err != nil {
			m.FreeAll()
			return nil, err
		}
	}

	for i, l := range cfg.Layers {

		if _, ok := m.layers[l.Name]; ok {
			m.FreeAll()
			return nil, fmt.Errorf("audio layer %q is defined twice", l.Name)
		}

		layer, err := LoadLayer(l.Name, l.Path, i)
		if err != nil {
			m.FreeAll()
			return nil, err
		}

		m.layers[l.Name] = layer
	}

	if cfg.Step.Path != "" {

		m.Step, err = LoadSound(cfg.Step.Path, len(cfg.Layers))
		if err != nil {
			m.FreeAll()
			return nil, err
		}
	}

	logging.InfoLog.Printf("[audio] loaded music=%t layers=%d step=%t\n", m.Music != nil, len(m.layers), m.Step != nil)
	return m, nil
}

var ErrNoLayer = errors.New("no such audio layer")

func (m *Manager) Layer(name string) (*Layer, error) {

	l, ok := m.layers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoLayer, name)
	}

	return l, nil
}

// StartLayer makes sure the named layer is playing, starting it at volume if needed
func (m *Manager) StartLayer(name string, volume float32) {

	l, err := m.Layer(name)
	if err != nil {
		logging.ErrLog.Println("[audio]", err)
		return
	}

	started, err := l.EnsurePlaying(volume)
	if err != nil {
		logging.ErrLog.Println("[audio]", err)
		return
	}

	if started {
		logging.InfoLog.Printf("[audio] started layer %s at volume %.2f\n", name, volume)
	}
}

// UpdateMusic keeps the background track playing at volume
func (m *Manager) UpdateMusic(volume float32) {

	if m.Music == nil {
		return
	}

	m.Music.SetVolume(volume)
	if m.Music.IsPlaying() {
		return
	}

	if err := m.Music.Play(); err != nil {
		logging.ErrLog.Println("[audio] failed to play music:", err)
	}
}

// StepWhileWalking plays a footstep with a random volume if walking and the previous one finished
func (m *Manager) StepWhileWalking(walking bool) {

	if !walking || m.Step == nil || m.Step.IsPlaying() {
		return
	}

	if err := m.Step.Play(RandomVolume(m.rng, m.stepMinVolume, m.stepMaxVolume)); err != nil {
		logging.ErrLog.Println("[audio]", err)
	}
}

// RandomVolume picks a volume uniformly in [min, max]
func RandomVolume(rng *rand.Rand, min, max float32) float32 {

	if max <= min {
		return min
	}

	return min + rng.Float32()*(max-min)
}

func (m *Manager) FreeAll() {

	if m.Music != nil {
		m.Music.Free()
	}

	for _, l := range m.layers {
		l.Free()
	}

	if m.Step != nil {
		m.Step.Free()
	}
}
