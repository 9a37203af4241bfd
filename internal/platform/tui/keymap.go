package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typejump/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// Every printable key is typing input, so letters never double as commands.
type KeyMapper struct {
	startKey string
}

// NewKeyMapper creates a key mapper. startKey is the key name that starts a
// session, "enter" when empty.
func NewKeyMapper(startKey string) *KeyMapper {
	if startKey == "" {
		startKey = "enter"
	}
	return &KeyMapper{startKey: startKey}
}

// MapKey translates a key message into zero or more presses.
// A burst of runes (fast typing or a paste) becomes one press per rune.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) []core.KeyPress {
	if msg.Type == tea.KeyRunes && !msg.Alt {
		presses := make([]core.KeyPress, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			presses = append(presses, km.press(string(r)))
		}
		return presses
	}
	return []core.KeyPress{km.press(msg.String())}
}

func (km *KeyMapper) press(key string) core.KeyPress {
	switch key {
	case "ctrl+c":
		return core.KeyPress{Action: core.ActionQuit, Key: key}
	case "esc":
		return core.KeyPress{Action: core.ActionBack, Key: key}
	case "tab":
		return core.KeyPress{Action: core.ActionCycleDifficulty, Key: key}
	case "ctrl+o":
		return core.KeyPress{Action: core.ActionMute, Key: key}
	case "ctrl+s":
		return core.KeyPress{Action: core.ActionScreenshot, Key: key}
	case km.startKey:
		return core.KeyPress{Action: core.ActionStart, Key: key}
	}

	if core.IsPrintable(key) {
		return core.KeyPress{Action: core.ActionType, Key: key}
	}
	return core.KeyPress{Action: core.ActionNone, Key: key}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}

	return MenuActionNone
}
