package core

import (
	"unicode"
	"unicode/utf8"
)

// Action is a semantic input intent, abstracted from physical key presses.
type Action int

const (
	ActionNone            Action = iota
	ActionType                   // A printable character aimed at the current word
	ActionStart                  // Enter - start or restart a session
	ActionCycleDifficulty        // Tab - switch to the next difficulty
	ActionMute                   // Ctrl+O - toggle audio
	ActionScreenshot             // Ctrl+S - dump the screen to a file
	ActionBack                   // Esc - leave the game
	ActionQuit                   // Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionType:
		return "Type"
	case ActionStart:
		return "Start"
	case ActionCycleDifficulty:
		return "CycleDifficulty"
	case ActionMute:
		return "Mute"
	case ActionScreenshot:
		return "Screenshot"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyPress is one physical key press after mapping.
// Key keeps the raw key name so the engine can recognize its start key.
type KeyPress struct {
	Action Action
	Key    string
}

// IsPrintable reports whether key is exactly one printable character.
// Named keys such as "enter" or "shift" are not.
func IsPrintable(key string) bool {
	if utf8.RuneCountInString(key) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(key)
	return r != utf8.RuneError && unicode.IsPrint(r)
}
