package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// inputEvent is a key press translated to a game intent. Flipper events
// are level-ish: terminals deliver key-down repeats but no key-up, so the
// model re-arms a short hold on every event and lets it expire.
type inputEvent int

const (
	evNone inputEvent = iota
	evLeftFlipper
	evRightFlipper
	evLaunch
	evStart
	evRestart
	evPause
	evQuit
)

// flipperHoldTicks is how many simulation ticks one key event keeps a
// flipper pressed. Terminal key auto-repeat refreshes the hold faster
// than it expires, so a physically held key reads as continuously pressed.
const flipperHoldTicks = 8

// KeyMapper translates Bubble Tea key messages to game intents. This
// centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// Map translates a key message to an input event.
func (km *KeyMapper) Map(msg tea.KeyMsg) inputEvent {
	switch msg.String() {
	case "ctrl+c", "q":
		return evQuit
	case "z", "left", "a":
		return evLeftFlipper
	case "/", "right", "d":
		return evRightFlipper
	case " ", "enter":
		return evLaunch
	case "s":
		return evStart
	case "r":
		return evRestart
	case "p", "esc":
		return evPause
	}
	return evNone
}
