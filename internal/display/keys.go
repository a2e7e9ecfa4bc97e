package display

import "github.com/gdamore/tcell/v2"

// KeyToAxis converts a key event to a vertical axis value: -1 up, +1 down,
// 0 for anything unbound. Arrow keys work alongside the configured runes.
func KeyToAxis(key tcell.Key, r rune, up, down rune) int {
	switch key {
	case tcell.KeyUp:
		return -1
	case tcell.KeyDown:
		return 1
	case tcell.KeyRune:
		switch r {
		case up:
			return -1
		case down:
			return 1
		}
	}
	return 0
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}
