package engine

import (
	"testing"
	"time"
)

func TestFrameSleepMs(t *testing.T) {

	tests := []struct {
		name    string
		target  int
		elapsed time.Duration
		want    uint32
	}{
		{"uncapped", 0, time.Millisecond, 0},
		{"negative target", -5, 0, 0},
		{"60fps fresh frame", 60, 0, 16},
		{"60fps half spent", 60, 8 * time.Millisecond, 8},
		{"120fps", 120, 2 * time.Millisecond, 6},
		{"over budget", 60, 20 * time.Millisecond, 0},
		{"exactly on budget", 100, 10 * time.Millisecond, 0},
	}

	for _, tt := range tests {
		if got := frameSleepMs(tt.target, tt.elapsed); got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}
