package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stellar/parameter"
)

// Machine parses tcell events into semantic Intents
// The key table is the only state; there are no modes or pending prefixes
type Machine struct {
	keyTable *KeyTable
}

// NewMachine creates a machine over the default key table
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// NewMachineWithTable creates a machine over a custom key table
func NewMachineWithTable(kt *KeyTable) *Machine {
	return &Machine{keyTable: kt}
}

// Process converts one event; unrecognized events yield IntentNone
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return processMouse(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (m *Machine) processKey(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		if entry, ok := m.keyTable.Runes[ev.Rune()]; ok {
			return fromEntry(entry)
		}
		return Intent{}
	}
	if entry, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
		return fromEntry(entry)
	}
	return Intent{}
}

// processMouse maps wheel notches to zoom anchored at the pointer cell
func processMouse(ev *tcell.EventMouse) Intent {
	x, y := ev.Position()
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		return Intent{Type: IntentZoomAt, Factor: parameter.ZoomStep, X: x, Y: y}
	case buttons&tcell.WheelDown != 0:
		return Intent{Type: IntentZoomAt, Factor: 1 / parameter.ZoomStep, X: x, Y: y}
	}
	return Intent{}
}

func fromEntry(e KeyEntry) Intent {
	return Intent{Type: e.Intent, DX: e.DX, DY: e.DY, Factor: e.Factor}
}
