package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine turns tcell events into intents
// Mouse clicks fire on the button press edge only, so holding the button does not repeat
type Machine struct {
	table      *KeyTable
	buttonDown bool
}

// NewMachine creates a machine over the given key table; nil uses the defaults
func NewMachine(table *KeyTable) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{table: table}
}

// Process maps one terminal event to an intent; nil when the event has no meaning
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.Key(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		return m.Mouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	}
	return nil
}

// Key maps a key press; r is only consulted for tcell.KeyRune
func (m *Machine) Key(k tcell.Key, r rune) *Intent {
	if k != tcell.KeyRune {
		if entry, ok := m.table.SpecialKeys[k]; ok {
			return &Intent{Type: entry.Intent, Value: entry.Value}
		}
		return nil
	}

	entry, ok := m.table.Runes[r]
	if !ok {
		entry, ok = m.table.Runes[unicode.ToLower(r)]
	}
	if !ok {
		return nil
	}
	return &Intent{Type: entry.Intent, Value: entry.Value}
}

// Mouse maps a mouse report at cell (x, y) with the given button state
func (m *Machine) Mouse(x, y int, buttons tcell.ButtonMask) *Intent {
	pressed := buttons&tcell.Button1 != 0
	wasDown := m.buttonDown
	m.buttonDown = pressed
	if !pressed || wasDown {
		return nil
	}
	return &Intent{Type: IntentClick, X: x, Y: y}
}
