package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings: arrows and hjkl move, p pauses, m mutes, q and Esc quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'k': ActionUp,
			'j': ActionDown,
			'h': ActionLeft,
			'l': ActionRight,
			'p': ActionPause,
			' ': ActionPause,
			'm': ActionMute,
			'q': ActionQuit,
		},
	}
}

// Lookup decodes a key event; unknown keys map to ActionNone
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev == nil {
		return ActionNone
	}
	return kt.LookupKey(ev.Key(), ev.Rune())
}

// LookupKey decodes a raw key and rune pair; r is only read for tcell.KeyRune
func (kt *KeyTable) LookupKey(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.SpecialKeys[key]
}
