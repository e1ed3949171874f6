package event

// EventType represents the type of game event
type EventType int

const (
	// EventRoundStarted signals a fresh round entering Running
	// Trigger: Game.Start | Payload: *RoundPayload
	EventRoundStarted EventType = iota

	// EventRoundEnded signals a round reaching Ended
	// Trigger: Game.End, countdown expiry, miss budget | Payload: *RoundEndPayload
	// Consumer: Renderer (clear), SoundManager (end cue)
	EventRoundEnded

	// EventPhaseChanged signals any phase transition
	// Payload: *PhasePayload
	EventPhaseChanged

	// EventEntitySpawned signals a dot entering the play area
	// Trigger: Spawner tick | Payload: *EntityPayload
	EventEntitySpawned

	// EventEntityMoved signals a dot position update
	// Trigger: entity frame step | Payload: *EntityPayload
	// Consumer: Renderer (position, trail stamp)
	EventEntityMoved

	// EventEntityDestroyed signals a dot leaving the registry
	// Payload: *EntityDestroyedPayload
	// Consumer: Renderer (particle burst on hit), SoundManager (hit/miss cue)
	EventEntityDestroyed

	// EventScoreChanged carries the new round score | Payload: *CounterPayload
	EventScoreChanged

	// EventMissedChanged carries the new missed count | Payload: *CounterPayload
	EventMissedChanged

	// EventCountdownChanged carries the seconds left | Payload: *CounterPayload
	EventCountdownChanged

	// EventHighScoreChanged carries the persisted high score | Payload: *CounterPayload
	EventHighScoreChanged

	// EventHistoryChanged carries the persisted score history | Payload: *HistoryPayload
	EventHistoryChanged

	// EventDifficultyChanged carries the accepted difficulty | Payload: *CounterPayload
	EventDifficultyChanged

	// EventMessageChanged carries the round banner | Payload: *MessagePayload
	EventMessageChanged

	// EventOrientationPrompt toggles the rotate/resize overlay | Payload: *OrientationPayload
	EventOrientationPrompt

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	"RoundStarted",
	"RoundEnded",
	"PhaseChanged",
	"EntitySpawned",
	"EntityMoved",
	"EntityDestroyed",
	"ScoreChanged",
	"MissedChanged",
	"CountdownChanged",
	"HighScoreChanged",
	"HistoryChanged",
	"DifficultyChanged",
	"MessageChanged",
	"OrientationPrompt",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return eventNames[t]
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
