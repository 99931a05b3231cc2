package timing

import (
	"testing"
	"time"
)

func TestFpsCounterAveragesOverWindow(t *testing.T) {

	var c fpsCounter
	start := time.Unix(100, 0)

	// 120 frames spread over exactly one second
	for i := 0; i <= 120; i++ {
		c.frame(start.Add(time.Duration(i) * time.Second / 120))
	}

	if c.avg < 119 || c.avg > 122 {
		t.Errorf("avg fps: expected ~121, got %v", c.avg)
	}

	if c.frames != 0 {
		t.Errorf("frames after window refresh: expected 0, got %d", c.frames)
	}
}

func TestFpsCounterHoldsUntilWindowEnds(t *testing.T) {

	var c fpsCounter
	start := time.Unix(100, 0)

	c.frame(start)
	c.frame(start.Add(500 * time.Millisecond))

	if c.avg != 0 {
		t.Errorf("avg before first window: expected 0, got %v", c.avg)
	}

	if c.frames != 2 {
		t.Errorf("frames: expected 2, got %d", c.frames)
	}
}
