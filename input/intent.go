package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit       // q, Esc, Ctrl+C
	IntentRestart    // R
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Run control
	IntentTogglePause // Space
	IntentStep        // n while paused

	// View
	IntentPan       // arrows, h/j/k/l
	IntentZoom      // +/-
	IntentZoomAt    // mouse wheel, anchored at the pointer
	IntentResetView // r
)

// Intent is a parsed user action
// DX/DY carry the pan delta, Factor the zoom multiplier, X/Y the cell under the pointer
type Intent struct {
	Type   IntentType
	DX, DY float64
	Factor float64
	X, Y   int
}

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentRestart:
		return "restart"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentResize:
		return "resize"
	case IntentTogglePause:
		return "toggle_pause"
	case IntentStep:
		return "step"
	case IntentPan:
		return "pan"
	case IntentZoom:
		return "zoom"
	case IntentZoomAt:
		return "zoom_at"
	case IntentResetView:
		return "reset_view"
	default:
		return "none"
	}
}
