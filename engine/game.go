package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/dotstrike/constants"
	"github.com/lixenwraith/dotstrike/core"
	"github.com/lixenwraith/dotstrike/event"
	"github.com/lixenwraith/dotstrike/status"
)

// ScoreKeeper persists the high score and the score history
type ScoreKeeper interface {
	HighScore(ctx context.Context) int
	History(ctx context.Context) []int
	// RecordRound folds a finished round into the high score and history
	// After a failed write the returned values still reflect the new state;
	// a failed read returns a nil history and must leave the caller's state alone
	RecordRound(ctx context.Context, score int) (high int, history []int, newHigh bool, err error)
}

// GameConfig holds construction parameters for Game
type GameConfig struct {
	Area       core.Area
	Difficulty int
	Rand       *rand.Rand
	Logger     zerolog.Logger
	Metrics    *status.Registry
	// NewRoundID generates round identifiers; defaults to random UUIDs
	NewRoundID func() string
}

// Game is the round state machine
// It owns the round counters, the live-entity registry and the spawner
// Not safe for concurrent use: every method runs on the loop that drives the scheduler
type Game struct {
	sched  Scheduler
	clock  TimeProvider
	router *event.Router
	scores ScoreKeeper
	rng    *rand.Rand
	log    zerolog.Logger

	metrics    *status.Registry
	newRoundID func() string

	round    RoundState
	registry *Registry
	spawner  *Spawner
	locator  BoxLocator

	difficulty    int
	area          core.Area
	promptVisible bool
	nextEntityID  uint64
	spawned       int64
	rounds        int64

	highScore int
	history   []int
}

// NewGame creates a game in the Idle phase
func NewGame(cfg GameConfig, sched Scheduler, clock TimeProvider, router *event.Router, scores ScoreKeeper) *Game {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	newID := cfg.NewRoundID
	if newID == nil {
		newID = uuid.NewString
	}

	g := &Game{
		sched:      sched,
		clock:      clock,
		router:     router,
		scores:     scores,
		rng:        rng,
		log:        cfg.Logger.With().Str("component", "engine").Logger(),
		metrics:    metrics,
		newRoundID: newID,
		registry:   NewRegistry(),
		difficulty: ClampDifficulty(cfg.Difficulty),
		area:       cfg.Area,
	}
	g.spawner = NewSpawner(sched, g.spawnTick, g.countdownTick)
	return g
}

// ClampDifficulty bounds d to the accepted difficulty range
func ClampDifficulty(d int) int {
	if d < constants.DifficultyMin {
		return constants.DifficultyMin
	}
	if d > constants.DifficultyMax {
		return constants.DifficultyMax
	}
	return d
}

// SetBoxLocator installs the renderer's view of where dots are drawn
func (g *Game) SetBoxLocator(l BoxLocator) {
	g.locator = l
}

// Init loads persisted scores and announces the initial state to handlers
func (g *Game) Init(ctx context.Context) {
	g.highScore = g.scores.HighScore(ctx)
	g.history = g.scores.History(ctx)

	g.router.Emit(event.EventHighScoreChanged, &event.CounterPayload{Value: g.highScore})
	g.router.Emit(event.EventHistoryChanged, &event.HistoryPayload{Scores: g.historyCopy()})
	g.router.Emit(event.EventDifficultyChanged, &event.CounterPayload{Value: g.difficulty})
	g.router.Emit(event.EventMessageChanged, &event.MessagePayload{Kind: event.MessageReady})
	g.publish()
}

// Start begins a fresh round
// An active round is ended normally first, mirroring a restart
func (g *Game) Start() {
	if g.promptVisible {
		g.log.Debug().Msg("start ignored while orientation prompt is visible")
		return
	}
	if g.round.Active() {
		g.end(false)
	}

	g.round.Reset(g.newRoundID(), g.clock.Now())
	g.transition(PhaseRunning)

	g.router.Emit(event.EventRoundStarted, &event.RoundPayload{RoundID: g.round.ID, Difficulty: g.difficulty})
	g.router.Emit(event.EventScoreChanged, &event.CounterPayload{Value: 0})
	g.router.Emit(event.EventMissedChanged, &event.CounterPayload{Value: 0})
	g.router.Emit(event.EventCountdownChanged, &event.CounterPayload{Value: g.round.TimeLeft})
	g.router.Emit(event.EventMessageChanged, &event.MessagePayload{Kind: event.MessageRunning})

	g.spawner.Start(g.difficulty)
	g.log.Info().Str("round", g.round.ID).Int("difficulty", g.difficulty).
		Dur("period", g.spawner.Period()).Msg("round started")
	g.publish()
}

// TogglePause switches between Running and Paused; a no-op in any other phase
func (g *Game) TogglePause() {
	switch g.round.Phase {
	case PhaseRunning:
		g.pause()
	case PhasePaused:
		if g.promptVisible {
			return
		}
		g.spawner.Start(g.difficulty)
		g.transition(PhaseRunning)
		g.router.Emit(event.EventMessageChanged, &event.MessagePayload{Kind: event.MessageRunning})
		g.publish()
	}
}

func (g *Game) pause() {
	g.spawner.Stop()
	g.transition(PhasePaused)
	g.router.Emit(event.EventMessageChanged, &event.MessagePayload{Kind: event.MessagePaused})
	g.publish()
}

// End finishes the active round normally; a no-op when no round is active
func (g *Game) End() {
	if !g.round.Active() {
		return
	}
	g.end(false)
}

func (g *Game) end(failed bool) {
	g.spawner.Stop()

	for _, e := range g.registry.Clear() {
		g.sched.Cancel(e.frame)
		g.emitDestroyed(e, event.ReasonCleared)
	}

	g.round.Failed = failed
	g.transition(PhaseEnded)
	g.rounds++

	ctx, cancel := context.WithTimeout(context.Background(), constants.PersistTimeout)
	defer cancel()
	high, history, _, err := g.scores.RecordRound(ctx, g.round.Score)
	if err != nil {
		g.log.Error().Err(err).Str("round", g.round.ID).Msg("persisting round result failed")
	}
	// The high score never decreases; a nil history means nothing could be read back
	newHigh := high > g.highScore
	if newHigh {
		g.highScore = high
	}
	if history != nil {
		g.history = history
	}

	if newHigh {
		g.router.Emit(event.EventHighScoreChanged, &event.CounterPayload{Value: g.highScore})
	}
	g.router.Emit(event.EventHistoryChanged, &event.HistoryPayload{Scores: g.historyCopy()})

	kind := event.MessageEnded
	if failed {
		kind = event.MessageFailed
	}
	g.router.Emit(event.EventMessageChanged, &event.MessagePayload{Kind: kind})
	g.router.Emit(event.EventRoundEnded, &event.RoundEndPayload{
		RoundID:   g.round.ID,
		Score:     g.round.Score,
		Missed:    g.round.Missed,
		Failed:    failed,
		NewHigh:   newHigh,
		HighScore: g.highScore,
	})

	g.log.Info().Str("round", g.round.ID).Int("score", g.round.Score).Int("missed", g.round.Missed).
		Bool("failed", failed).Bool("new_high", newHigh).Msg("round ended")
	g.publish()
}

// SetDifficulty clamps and applies a new difficulty
// A running spawner is restarted at the new period; otherwise it applies on the next start or resume
func (g *Game) SetDifficulty(d int) {
	d = ClampDifficulty(d)
	if d == g.difficulty {
		return
	}
	g.difficulty = d
	if g.round.Phase == PhaseRunning {
		g.spawner.Restart(d)
	}
	g.router.Emit(event.EventDifficultyChanged, &event.CounterPayload{Value: d})
	g.publish()
}

// Resize updates the area new dots spawn into and the orientation prompt
// Becoming unplayable pauses a running round
func (g *Game) Resize(area core.Area, promptVisible bool) {
	g.area = area
	if promptVisible == g.promptVisible {
		return
	}
	g.promptVisible = promptVisible
	g.router.Emit(event.EventOrientationPrompt, &event.OrientationPayload{Visible: promptVisible})
	if promptVisible && g.round.Phase == PhaseRunning {
		g.pause()
	}
}

// Click routes a pointer event to the topmost dot under it and scores a hit
// Returns true when a dot was hit
func (g *Game) Click(p PointerEvent) bool {
	if g.round.Phase != PhaseRunning || !p.HasPos {
		return false
	}

	for _, e := range g.registry.TopmostFirst() {
		box := g.boxOf(e)
		if !box.Contains(p.Pos) {
			continue
		}
		// The topmost dot under the pointer receives the event, hit or not
		if !HitTest(p, box) {
			return false
		}
		g.registry.Remove(e.ID)
		g.sched.Cancel(e.frame)
		score := g.round.AddHit()
		g.emitDestroyed(e, event.ReasonHit)
		g.router.Emit(event.EventScoreChanged, &event.CounterPayload{Value: score})
		g.publish()
		return true
	}
	return false
}

func (g *Game) boxOf(e *Entity) Rect {
	if g.locator != nil {
		if box, ok := g.locator.RenderedBox(e.ID); ok {
			return box
		}
	}
	return e.Box()
}

func (g *Game) spawnTick() {
	if g.round.Phase != PhaseRunning || g.area.Empty() {
		return
	}
	g.nextEntityID++
	g.spawned++
	e := SpawnEntity(g.nextEntityID, g.round.Generation, g.area, g.difficulty, g.rng)
	g.registry.Add(e)
	g.router.Emit(event.EventEntitySpawned, entityPayload(e))
	g.scheduleStep(e)
	g.publish()
}

func (g *Game) scheduleStep(e *Entity) {
	id, gen := e.ID, e.Round
	e.frame = g.sched.ScheduleNextFrame(func() { g.stepEntity(id, gen) })
}

// stepEntity is the per-frame motion update; it self-terminates once the dot is deregistered
func (g *Game) stepEntity(id, gen uint64) {
	e, ok := g.registry.Get(id)
	if !ok || e.Round != gen {
		return
	}

	switch g.round.Phase {
	case PhasePaused:
		// Frozen in place until resumed
		g.scheduleStep(e)
		return
	case PhaseRunning:
	default:
		return
	}

	e.Step()
	if e.Exited() {
		g.registry.Remove(id)
		g.emitDestroyed(e, event.ReasonMiss)
		missed := g.round.AddMiss()
		g.router.Emit(event.EventMissedChanged, &event.CounterPayload{Value: missed})
		g.publish()
		if g.round.MissBudgetExhausted() {
			g.end(true)
		}
		return
	}

	g.router.Emit(event.EventEntityMoved, entityPayload(e))
	g.scheduleStep(e)
}

func (g *Game) countdownTick() {
	if g.round.Phase != PhaseRunning {
		return
	}
	left := g.round.TickCountdown()
	g.router.Emit(event.EventCountdownChanged, &event.CounterPayload{Value: left})
	g.publish()
	if left == 0 {
		g.end(false)
	}
}

func (g *Game) transition(to Phase) {
	from := g.round.Phase
	if !g.round.Transition(to) {
		g.log.Warn().Stringer("from", from).Stringer("to", to).Msg("rejected phase transition")
		return
	}
	g.router.Emit(event.EventPhaseChanged, &event.PhasePayload{From: from.String(), To: to.String()})
}

func (g *Game) emitDestroyed(e *Entity, reason event.DestroyReason) {
	g.router.Emit(event.EventEntityDestroyed, &event.EntityDestroyedPayload{
		EntityPayload: *entityPayload(e),
		Reason:        reason,
	})
}

func entityPayload(e *Entity) *event.EntityPayload {
	return &event.EntityPayload{
		ID:    e.ID,
		Shape: e.Shape,
		Color: e.Color,
		Pos:   e.Pos,
		Size:  e.Size,
	}
}

func (g *Game) historyCopy() []int {
	out := make([]int, len(g.history))
	copy(out, g.history)
	return out
}

// publish mirrors the round state into the metrics registry for other goroutines
func (g *Game) publish() {
	m := g.metrics
	m.Strings.Get(status.KeyPhase).Store(g.round.Phase.String())
	m.Strings.Get(status.KeyRoundID).Store(g.round.ID)
	m.Ints.Get(status.KeyScore).Store(int64(g.round.Score))
	m.Ints.Get(status.KeyMissed).Store(int64(g.round.Missed))
	m.Ints.Get(status.KeyTimeLeft).Store(int64(g.round.TimeLeft))
	m.Ints.Get(status.KeyLive).Store(int64(g.registry.Len()))
	m.Ints.Get(status.KeySpawned).Store(g.spawned)
	m.Ints.Get(status.KeyDifficulty).Store(int64(g.difficulty))
	m.Ints.Get(status.KeyPeriodMs).Store(SpawnPeriod(g.difficulty).Milliseconds())
	m.Ints.Get(status.KeyHighScore).Store(int64(g.highScore))
	m.Ints.Get(status.KeyRoundsTotal).Store(g.rounds)
}

// ===== Read accessors =====

// Round returns a copy of the current round state
func (g *Game) Round() RoundState {
	return g.round
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.round.Phase
}

// Difficulty returns the accepted difficulty
func (g *Game) Difficulty() int {
	return g.difficulty
}

// HighScore returns the high score as of the last load or round end
func (g *Game) HighScore() int {
	return g.highScore
}

// History returns a copy of the score history
func (g *Game) History() []int {
	return g.historyCopy()
}

// LiveEntities returns the live dots newest first
func (g *Game) LiveEntities() []*Entity {
	return g.registry.TopmostFirst()
}

// Spawner exposes the round timers for inspection
func (g *Game) Spawner() *Spawner {
	return g.spawner
}

// PromptVisible reports whether the orientation prompt is shown
func (g *Game) PromptVisible() bool {
	return g.promptVisible
}
