// The input package tracks mouse motion and keyboard state fed to it by the engine event loop,
// along with per frame constructs like pressed this frame.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

type keyState struct {
	Key                sdl.Keycode
	State              int
	IsPressedThisFrame bool
}

type mouseMotionState struct {
	XDelta int32
	YDelta int32
}

var (
	mouseMotion = mouseMotionState{}
	keyMap      = make(map[sdl.Keycode]keyState)

	isQuitRequested bool
)

// EventLoopStart resets per frame state. It must run before the frame's events are handled.
func EventLoopStart() {

	// Update per-frame state
	for k, v := range keyMap {
		v.IsPressedThisFrame = false
		keyMap[k] = v
	}

	mouseMotion.XDelta = 0
	mouseMotion.YDelta = 0

	isQuitRequested = false
}

func HandleQuitEvent(e *sdl.QuitEvent) {
	isQuitRequested = true
}

func IsQuitClicked() bool {
	return isQuitRequested
}

func HandleKeyboardEvent(e *sdl.KeyboardEvent) {

	ks, ok := keyMap[e.Keysym.Sym]
	if !ok {
		ks = keyState{Key: e.Keysym.Sym}
	}

	ks.State = int(e.State)
	ks.IsPressedThisFrame = e.State == sdl.PRESSED && e.Repeat == 0

	keyMap[ks.Key] = ks
}

func HandleMouseMotionEvent(e *sdl.MouseMotionEvent) {

	mouseMotion.XDelta = e.XRel
	mouseMotion.YDelta = e.YRel
}

func GetMouseMotion() (xDelta, yDelta int32) {
	return mouseMotion.XDelta, mouseMotion.YDelta
}

func KeyClicked(kc sdl.Keycode) bool {

	ks, ok := keyMap[kc]
	if !ok {
		return false
	}

	return ks.IsPressedThisFrame
}

func KeyDown(kc sdl.Keycode) bool {

	ks, ok := keyMap[kc]
	if !ok {
		return false
	}

	return ks.State == sdl.PRESSED
}
