package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stellar/parameter"
)

// KeyEntry is what a key resolves to: an intent plus its fixed arguments
type KeyEntry struct {
	Intent IntentType
	DX, DY float64
	Factor float64
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// Pan entries move the content: Left shifts it right, Up shifts it down
var (
	entryPanLeft  = KeyEntry{Intent: IntentPan, DX: parameter.ScrollSpeed}
	entryPanRight = KeyEntry{Intent: IntentPan, DX: -parameter.ScrollSpeed}
	entryPanUp    = KeyEntry{Intent: IntentPan, DY: parameter.ScrollSpeed}
	entryPanDown  = KeyEntry{Intent: IntentPan, DY: -parameter.ScrollSpeed}
	entryZoomIn   = KeyEntry{Intent: IntentZoom, Factor: parameter.ZoomStep}
	entryZoomOut  = KeyEntry{Intent: IntentZoom, Factor: 1 / parameter.ZoomStep}
)

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyLeft:   entryPanLeft,
			tcell.KeyRight:  entryPanRight,
			tcell.KeyUp:     entryPanUp,
			tcell.KeyDown:   entryPanDown,
		},

		Runes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},
			'R': {Intent: IntentRestart},
			'm': {Intent: IntentToggleMute},
			' ': {Intent: IntentTogglePause},
			'n': {Intent: IntentStep},
			'r': {Intent: IntentResetView},

			'h': entryPanLeft,
			'l': entryPanRight,
			'k': entryPanUp,
			'j': entryPanDown,

			'+': entryZoomIn,
			'=': entryZoomIn,
			'-': entryZoomOut,
			'_': entryZoomOut,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}
