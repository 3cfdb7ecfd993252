package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"blockman/internal/sim"
)

// Tuning increments applied per key press (and per key repeat).
const (
	angleStep    = 1.0
	distanceStep = 1.0
	speedStep    = 0.01
)

var movementKeys = map[glfw.Key]sim.Key{
	glfw.KeyLeft:  sim.KeyLeft,
	glfw.KeyRight: sim.KeyRight,
	glfw.KeyUp:    sim.KeyUp,
	glfw.KeyDown:  sim.KeyDown,
}

// Keyboard feeds GLFW key events into the simulation state. Callbacks run
// inside glfw.PollEvents on the frame goroutine.
type Keyboard struct {
	state *sim.State
}

func BindKeyboard(window *glfw.Window, state *sim.State) *Keyboard {
	k := &Keyboard{state: state}
	window.SetKeyCallback(k.onKey)
	window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			state.Input.Release()
		}
	})
	return k
}

func (k *Keyboard) onKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if mk, ok := movementKeys[key]; ok {
		switch action {
		case glfw.Press:
			k.state.Input.KeyDown(mk)
		case glfw.Release:
			k.state.Input.KeyUp(mk)
		}
		return
	}
	if action == glfw.Release {
		return
	}
	repeat := action == glfw.Repeat

	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeyT:
		if !repeat {
			k.state.ToggleSkin()
		}
	case glfw.KeyLeftBracket:
		k.state.AdjustCamera(-angleStep, 0)
	case glfw.KeyRightBracket:
		k.state.AdjustCamera(angleStep, 0)
	case glfw.KeyMinus:
		k.state.AdjustCamera(0, -distanceStep)
	case glfw.KeyEqual:
		k.state.AdjustCamera(0, distanceStep)
	case glfw.KeyComma:
		k.state.AdjustSpeed(-speedStep)
	case glfw.KeyPeriod:
		k.state.AdjustSpeed(speedStep)
	}
}
