package timing

import "time"

// fpsWindow is how long frames are counted before the average fps is refreshed
const fpsWindow = time.Second

type fpsCounter struct {
	windowStart time.Time
	frames      uint32
	avg         float32
}

// frame counts one frame that ended at now and refreshes the average once a full window passed
func (c *fpsCounter) frame(now time.Time) {

	if c.windowStart.IsZero() {
		c.windowStart = now
	}

	c.frames++

	elapsed := now.Sub(c.windowStart)
	if elapsed < fpsWindow {
		return
	}

	c.avg = float32(float64(c.frames) / elapsed.Seconds())
	c.frames = 0
	c.windowStart = now
}

var (
	dt float32 = 0.01

	startTime  time.Time
	frameStart time.Time

	fps fpsCounter
)

func Init() {
	startTime = time.Now()
	frameStart = startTime
	fps = fpsCounter{}
}

func FrameStarted() {
	frameStart = time.Now()
}

func FrameEnded() {

	now := time.Now()
	dt = float32(now.Sub(frameStart).Seconds())
	fps.frame(now)
}

// DT is the duration of the last frame in seconds
func DT() float32 {
	return dt
}

// FrameSinceStart is how long the current frame has been running
func FrameSinceStart() time.Duration {
	return time.Since(frameStart)
}

// ElapsedTime is the seconds since Init
func ElapsedTime() float32 {
	return float32(time.Since(startTime).Seconds())
}

func GetAvgFPS() float32 {
	return fps.avg
}
