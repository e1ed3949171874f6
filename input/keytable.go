package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes a binding
type KeyEntry struct {
	Intent IntentType
	Value  int
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings; lookups are case-insensitive for letters
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
		},
		Runes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},
			'm': {Intent: IntentToggleMute},
			's': {Intent: IntentStart},
			'e': {Intent: IntentEnd},
			' ': {Intent: IntentPause},
			'+': {Intent: IntentDifficultyUp},
			'=': {Intent: IntentDifficultyUp},
			'-': {Intent: IntentDifficultyDown},
			'_': {Intent: IntentDifficultyDown},
			'0': {Intent: IntentDifficultySet, Value: 10},
		},
	}
	for d := 1; d <= 9; d++ {
		kt.Runes[rune('0'+d)] = KeyEntry{Intent: IntentDifficultySet, Value: d}
	}
	return kt
}
