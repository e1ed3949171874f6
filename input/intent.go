package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Round control
	IntentStart // s
	IntentEnd   // e
	IntentPause // Space

	// Difficulty
	IntentDifficultyUp   // +, =
	IntentDifficultyDown // -, _
	IntentDifficultySet  // 1-9, 0 (= 10)

	// Pointer
	IntentClick // Left mouse button press
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentToggleMute:
		return "mute"
	case IntentResize:
		return "resize"
	case IntentStart:
		return "start"
	case IntentEnd:
		return "end"
	case IntentPause:
		return "pause"
	case IntentDifficultyUp:
		return "difficulty_up"
	case IntentDifficultyDown:
		return "difficulty_down"
	case IntentDifficultySet:
		return "difficulty_set"
	case IntentClick:
		return "click"
	default:
		return "none"
	}
}

// Intent is a semantic action produced from a terminal event
type Intent struct {
	Type  IntentType
	Value int // Difficulty for IntentDifficultySet
	X, Y  int // Screen cell for IntentClick
}
