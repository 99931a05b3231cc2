package engine

import (
	"time"

	"github.com/bloeys/scp087/input"
	"github.com/bloeys/scp087/timing"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	isRunning = false
	targetFPS = 0
)

type Game interface {
	Init()

	Update()
	Render()
	FrameEnd()

	DeInit()
}

// Run drives g until Quit is called or the window is closed.
// Each frame polls events, updates, renders, swaps, then sleeps off the rest of the frame budget if an fps cap is set.
func Run(g Game, w *Window) {

	isRunning = true
	g.Init()

	for IsRunning() {

		timing.FrameStarted()
		w.handleInputs()

		if input.IsQuitClicked() {
			Quit()
		}

		g.Update()
		g.Render()
		w.SDLWin.GLSwap()

		w.Rend.FrameEnd()
		g.FrameEnd()

		if sleepMs := frameSleepMs(targetFPS, timing.FrameSinceStart()); sleepMs > 0 {
			sdl.Delay(sleepMs)
		}

		timing.FrameEnded()
	}

	g.DeInit()
}

func Quit() {
	isRunning = false
}

func IsRunning() bool {
	return isRunning
}

// SetTargetFPS caps the frame rate. Zero or less means uncapped.
func SetTargetFPS(fps int) {
	targetFPS = fps
}

// frameSleepMs is how many whole milliseconds are left of a frame at the target rate after elapsed was spent
func frameSleepMs(target int, elapsed time.Duration) uint32 {

	if target <= 0 {
		return 0
	}

	budget := time.Second / time.Duration(target)
	if elapsed >= budget {
		return 0
	}

	return uint32((budget - elapsed) / time.Millisecond)
}
