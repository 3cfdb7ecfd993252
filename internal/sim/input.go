package sim

// Key identifies a movement key independent of the window backend.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	}
	return "unknown"
}

// InputState tracks which keys are currently held. The last event per key wins.
type InputState struct {
	held map[Key]bool
}

func NewInputState() *InputState {
	return &InputState{held: make(map[Key]bool)}
}

func (in *InputState) KeyDown(k Key) { in.held[k] = true }

func (in *InputState) KeyUp(k Key) { in.held[k] = false }

func (in *InputState) Held(k Key) bool { return in.held[k] }

// Release clears every held key, e.g. when the window loses focus.
func (in *InputState) Release() {
	for k := range in.held {
		in.held[k] = false
	}
}
