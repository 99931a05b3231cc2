package audio

import (
	"math/rand"
	"testing"
)

func TestVolumeToMix(t *testing.T) {

	tests := []struct {
		in   float32
		want int
	}{
		{-1, 0},
		{0, 0},
		{0.2, 26},
		{0.5, 64},
		{1, 128},
		{3, 128},
	}

	for _, tt := range tests {
		if got := VolumeToMix(tt.in); got != tt.want {
			t.Errorf("VolumeToMix(%v): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestRandomVolumeStaysInRange(t *testing.T) {

	rng := rand.New(rand.NewSource(87))

	// Footstep range is 20/150 to 40/150
	min, max := float32(20.0/150), float32(40.0/150)

	for i := 0; i < 1000; i++ {
		v := RandomVolume(rng, min, max)
		if v < min || v > max {
			t.Fatalf("volume %v outside [%v, %v]", v, min, max)
		}
	}

	if v := RandomVolume(rng, 0.3, 0.3); v != 0.3 {
		t.Errorf("empty range: expected 0.3, got %v", v)
	}
}
