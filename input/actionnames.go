package input

import "github.com/lixenwraith/stellar/parameter"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"quit":         {Intent: IntentQuit},
	"restart":      {Intent: IntentRestart},
	"toggle_mute":  {Intent: IntentToggleMute},
	"toggle_pause": {Intent: IntentTogglePause},
	"step":         {Intent: IntentStep},
	"reset_view":   {Intent: IntentResetView},

	"pan_left":  entryPanLeft,
	"pan_right": entryPanRight,
	"pan_up":    entryPanUp,
	"pan_down":  entryPanDown,

	// Fast pan moves four scroll steps
	"pan_left_fast":  {Intent: IntentPan, DX: 4 * parameter.ScrollSpeed},
	"pan_right_fast": {Intent: IntentPan, DX: -4 * parameter.ScrollSpeed},
	"pan_up_fast":    {Intent: IntentPan, DY: 4 * parameter.ScrollSpeed},
	"pan_down_fast":  {Intent: IntentPan, DY: -4 * parameter.ScrollSpeed},

	"zoom_in":  entryZoomIn,
	"zoom_out": entryZoomOut,
}

// ActionEntry looks up an action by canonical name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}
