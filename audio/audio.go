// Package audio plays the demo soundscape with SDL_mixer: one looping music
// stream plus looping layers and one-shot sounds on reserved mixer channels.
package audio

import (
	"fmt"

	"github.com/bloeys/scp087/logging"
	"github.com/veandco/go-sdl2/mix"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	DefaultFrequency = 44100
	DefaultChunkSize = 1024

	mixChannels = 16
)

var isOpen bool

// Init opens the audio device, bringing up SDL's audio subsystem if sdl.Init didn't
func Init(frequency, chunkSize int) error {

	if sdl.WasInit(sdl.INIT_AUDIO) == 0 {
		if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
			return fmt.Errorf("failed to init sdl audio: %w", err)
		}
	}

	if frequency <= 0 {
		frequency = DefaultFrequency
	}

	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	if err := mix.Init(mix.INIT_MP3 | mix.INIT_OGG); err != nil {
		// Wav still works without the decoders, so only warn
		logging.WarnLog.Printf("[audio] mix.Init: %v\n", err)
	}

	if err := mix.OpenAudio(frequency, mix.DEFAULT_FORMAT, mix.DEFAULT_CHANNELS, chunkSize); err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}

	mix.AllocateChannels(mixChannels)
	isOpen = true

	return nil
}

func Close() {

	if !isOpen {
		return
	}

	mix.HaltMusic()
	mix.HaltChannel(-1)
	mix.CloseAudio()
	mix.Quit()
	isOpen = false
}

// VolumeToMix converts a [0,1] volume to the mixer's integer range
func VolumeToMix(v float32) int {

	if v <= 0 {
		return 0
	}

	if v >= 1 {
		return int(mix.MAX_VOLUME)
	}

	return int(v*float32(mix.MAX_VOLUME) + 0.5)
}

// Music is a streamed track. SDL_mixer plays one music stream at a time.
type Music struct {
	Path string
	mus  *mix.Music
}

func LoadMusic(path string) (*Music, error) {

	mus, err := mix.LoadMUS(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load music %s: %w", path, err)
	}

	return &Music{Path: path, mus: mus}, nil
}

// Play starts the track looping forever
func (m *Music) Play() error {
	return m.mus.Play(-1)
}

func (m *Music) IsPlaying() bool {
	return mix.PlayingMusic()
}

func (m *Music) SetVolume(v float32) {
	mix.VolumeMusic(VolumeToMix(v))
}

func (m *Music) Free() {

	if m.mus == nil {
		return
	}

	m.mus.Free()
	m.mus = nil
}

// Layer is a decoded track that loops on its own mixer channel alongside the music
type Layer struct {
	Name    string
	Channel int
	chunk   *mix.Chunk
}

func LoadLayer(name, path string, channel int) (*Layer, error) {

	chunk, err := mix.LoadWAV(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load audio layer %s from %s: %w", name, path, err)
	}

	return &Layer{Name: name, Channel: channel, chunk: chunk}, nil
}

func (l *Layer) IsPlaying() bool {
	return mix.Playing(l.Channel) != 0
}

func (l *Layer) SetVolume(v float32) {
	mix.Volume(l.Channel, VolumeToMix(v))
}

// EnsurePlaying starts the layer at volume if it isn't already playing and reports whether it started it
func (l *Layer) EnsurePlaying(volume float32) (started bool, err error) {

	if l.IsPlaying() {
		return false, nil
	}

	l.SetVolume(volume)
	if _, err := l.chunk.Play(l.Channel, -1); err != nil {
		return false, fmt.Errorf("failed to play audio layer %s: %w", l.Name, err)
	}

	return true, nil
}

func (l *Layer) Free() {

	if l.chunk == nil {
		return
	}

	mix.HaltChannel(l.Channel)
	l.chunk.Free()
	l.chunk = nil
}

// Sound is a one-shot effect on its own mixer channel
type Sound struct {
	Path    string
	Channel int
	chunk   *mix.Chunk
}

func LoadSound(path string, channel int) (*Sound, error) {

	chunk, err := mix.LoadWAV(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load sound %s: %w", path, err)
	}

	return &Sound{Path: path, Channel: channel, chunk: chunk}, nil
}

func (s *Sound) IsPlaying() bool {
	return mix.Playing(s.Channel) != 0
}

func (s *Sound) Play(volume float32) error {

	mix.Volume(s.Channel, VolumeToMix(volume))
	if _, err := s.chunk.Play(s.Channel, 0); err != nil {
		return fmt.Errorf("failed to play sound %s: %w", s.Path, err)
	}

	return nil
}

func (s *Sound) Free() {

	if s.chunk == nil {
		return
	}

	s.chunk.Free()
	s.chunk = nil
}
