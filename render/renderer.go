package render

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dotstrike/constants"
	"github.com/lixenwraith/dotstrike/core"
	"github.com/lixenwraith/dotstrike/engine"
	"github.com/lixenwraith/dotstrike/event"
	"github.com/lixenwraith/dotstrike/vmath"
)

// sprite is the renderer's copy of a live dot
type sprite struct {
	shape core.Shape
	color tcell.Color
	pos   vmath.Vec2F
}

// hudState mirrors the counters announced by the engine
type hudState struct {
	score, missed, timeLeft int
	highScore, difficulty   int
	history                 []int
	message                 event.MessageKind
	prompt                  bool
	muted                   bool
	audio                   bool
}

// TerminalRenderer draws the game on a tcell screen from the event stream
// It also maps mouse cells back to play-area pointer events and reports where each dot is drawn
type TerminalRenderer struct {
	screen tcell.Screen
	clock  engine.TimeProvider
	vp     Viewport

	sprites map[uint64]*sprite
	order   []uint64 // Draw order, oldest first so the newest is on top

	fx  *effects
	hud hudState
}

// NewTerminalRenderer creates a renderer sized to the screen
// rng drives particle bursts only
func NewTerminalRenderer(screen tcell.Screen, clock engine.TimeProvider, rng *rand.Rand) *TerminalRenderer {
	r := &TerminalRenderer{
		screen:  screen,
		clock:   clock,
		sprites: make(map[uint64]*sprite),
		fx:      newEffects(rng),
		hud:     hudState{message: event.MessageReady, timeLeft: int(constants.RoundDuration.Seconds())},
	}
	r.Resize()
	return r
}

// Resize re-reads the screen size and returns the new play area and whether to show the orientation prompt
func (r *TerminalRenderer) Resize() (core.Area, bool) {
	cols, rows := r.screen.Size()
	r.vp = Viewport{Cols: cols, Rows: rows}
	return r.vp.Area(), NeedsPrompt(cols, rows)
}

// Viewport returns the current cell mapping
func (r *TerminalRenderer) Viewport() Viewport {
	return r.vp
}

// SetAudioState updates the sound indicator in the HUD
func (r *TerminalRenderer) SetAudioState(available, muted bool) {
	r.hud.audio = available
	r.hud.muted = muted
}

// PointerAt converts a mouse cell into a pointer event; cells outside the play area carry no position
func (r *TerminalRenderer) PointerAt(x, y int) engine.PointerEvent {
	pos, ok := r.vp.CellToWorld(x, y)
	if !ok {
		return engine.PointerEvent{}
	}
	return engine.MousePointer(pos.X, pos.Y)
}

// RenderedBox reports the unit-space box the dot occupies as drawn, snapped to cells
func (r *TerminalRenderer) RenderedBox(id uint64) (engine.Rect, bool) {
	s, ok := r.sprites[id]
	if !ok {
		return engine.Rect{}, false
	}
	return spriteBox(s.pos), true
}

func spriteBox(pos vmath.Vec2F) engine.Rect {
	return engine.Rect{
		X: math.Floor(pos.X/constants.CellWidth) * constants.CellWidth,
		Y: math.Floor(pos.Y/constants.CellHeight) * constants.CellHeight,
		W: constants.SpriteCols * constants.CellWidth,
		H: constants.SpriteRows * constants.CellHeight,
	}
}

// ===== Event handling =====

// HandleEvent updates renderer state from a game event
func (r *TerminalRenderer) HandleEvent(ev event.GameEvent) {
	now := r.clock.Now()

	switch ev.Type {
	case event.EventEntitySpawned:
		if p, ok := ev.Payload.(*event.EntityPayload); ok {
			r.sprites[p.ID] = &sprite{shape: p.Shape, color: paletteColor(p.Color), pos: p.Pos}
			r.order = append(r.order, p.ID)
		}

	case event.EventEntityMoved:
		if p, ok := ev.Payload.(*event.EntityPayload); ok {
			if s, live := r.sprites[p.ID]; live {
				s.pos = p.Pos
				r.fx.addTrail(spriteBox(p.Pos).Center(), s.color, now)
			}
		}

	case event.EventEntityDestroyed:
		if p, ok := ev.Payload.(*event.EntityDestroyedPayload); ok {
			if s, live := r.sprites[p.ID]; live && p.Reason == event.ReasonHit {
				r.fx.burst(spriteBox(s.pos).Center(), s.color, now)
			}
			r.removeSprite(p.ID)
		}

	case event.EventRoundStarted, event.EventRoundEnded:
		r.sprites = make(map[uint64]*sprite)
		r.order = r.order[:0]
		r.fx.clearTrails()

	case event.EventScoreChanged:
		r.hud.score = counter(ev.Payload, r.hud.score)
	case event.EventMissedChanged:
		r.hud.missed = counter(ev.Payload, r.hud.missed)
	case event.EventCountdownChanged:
		r.hud.timeLeft = counter(ev.Payload, r.hud.timeLeft)
	case event.EventHighScoreChanged:
		r.hud.highScore = counter(ev.Payload, r.hud.highScore)
	case event.EventDifficultyChanged:
		r.hud.difficulty = counter(ev.Payload, r.hud.difficulty)

	case event.EventHistoryChanged:
		if p, ok := ev.Payload.(*event.HistoryPayload); ok {
			r.hud.history = append(r.hud.history[:0], p.Scores...)
		}
	case event.EventMessageChanged:
		if p, ok := ev.Payload.(*event.MessagePayload); ok {
			r.hud.message = p.Kind
		}
	case event.EventOrientationPrompt:
		if p, ok := ev.Payload.(*event.OrientationPayload); ok {
			r.hud.prompt = p.Visible
		}
	}
}

// EventTypes returns the events the renderer listens to
func (r *TerminalRenderer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventRoundStarted,
		event.EventRoundEnded,
		event.EventEntitySpawned,
		event.EventEntityMoved,
		event.EventEntityDestroyed,
		event.EventScoreChanged,
		event.EventMissedChanged,
		event.EventCountdownChanged,
		event.EventHighScoreChanged,
		event.EventHistoryChanged,
		event.EventDifficultyChanged,
		event.EventMessageChanged,
		event.EventOrientationPrompt,
	}
}

func counter(payload any, fallback int) int {
	if p, ok := payload.(*event.CounterPayload); ok {
		return p.Value
	}
	return fallback
}

func (r *TerminalRenderer) removeSprite(id uint64) {
	if _, ok := r.sprites[id]; !ok {
		return
	}
	delete(r.sprites, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// SpriteCount returns the number of dots the renderer is drawing
func (r *TerminalRenderer) SpriteCount() int {
	return len(r.sprites)
}

// ===== Drawing =====

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame() {
	now := r.clock.Now()
	r.fx.update(now)

	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	if r.hud.prompt {
		r.drawPrompt(defaultStyle)
		r.screen.Show()
		return
	}

	r.drawTrails(defaultStyle, now)
	r.drawSprites(defaultStyle)
	r.drawParticles(defaultStyle, now)
	r.drawHistory(defaultStyle)
	r.drawHUD(defaultStyle)
	r.drawFooter(defaultStyle)
	r.drawMessage(defaultStyle)

	r.screen.Show()
}

// setPlay writes a cell only when it falls inside the play area
func (r *TerminalRenderer) setPlay(x, y int, ch rune, style tcell.Style) {
	if r.vp.InPlay(x, y) {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= 0 && x < r.vp.Cols && y >= 0 && y < r.vp.Rows {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

func (r *TerminalRenderer) drawTrails(defaultStyle tcell.Style, now time.Time) {
	for _, t := range r.fx.trails {
		alpha := 1 - progress(t.born, now, constants.TrailLifetime)
		x, y := r.vp.WorldToCell(t.pos)
		ch := '·'
		if alpha > 0.6 {
			ch = '•'
		}
		r.setPlay(x, y, ch, defaultStyle.Foreground(fade(t.color, alpha*0.7)))
	}
}

func (r *TerminalRenderer) drawSprites(defaultStyle tcell.Style) {
	for _, id := range r.order {
		s := r.sprites[id]
		x0, y0 := r.vp.WorldToCell(s.pos)
		style := defaultStyle.Foreground(s.color)
		for dy, line := range spriteFor(s.shape) {
			dx := 0
			for _, ch := range line {
				if ch != ' ' {
					r.setPlay(x0+dx, y0+dy, ch, style)
				}
				dx++
			}
		}
	}
}

func (r *TerminalRenderer) drawParticles(defaultStyle tcell.Style, now time.Time) {
	for _, p := range r.fx.particles {
		alpha := 1 - progress(p.born, now, constants.ParticleLifetime)
		x, y := r.vp.WorldToCell(p.position(now))
		ch := '*'
		if alpha < 0.4 {
			ch = '.'
		}
		r.setPlay(x, y, ch, defaultStyle.Foreground(fade(p.color, alpha)))
	}
}

// drawHUD draws the counters on the top row
func (r *TerminalRenderer) drawHUD(defaultStyle tcell.Style) {
	for x := 0; x < r.vp.Cols; x++ {
		r.screen.SetContent(x, 0, ' ', nil, defaultStyle)
	}

	segments := []struct {
		text string
		bg   tcell.Color
	}{
		{fmt.Sprintf(" SCORE %d ", r.hud.score), RgbHUDBg},
		{fmt.Sprintf(" MISSED %d ", r.hud.missed), RgbMissedBg},
		{fmt.Sprintf(" TIME %ds ", r.hud.timeLeft), RgbTimerBg},
		{fmt.Sprintf(" HIGH %d ", r.hud.highScore), RgbHighScoreBg},
		{fmt.Sprintf(" LVL %d ", r.hud.difficulty), RgbStatusBar},
	}

	x := 0
	for _, seg := range segments {
		x = r.drawText(x, 0, seg.text, defaultStyle.Foreground(RgbStatusText).Background(seg.bg)) + 1
	}

	if r.hud.audio {
		label := " ♪ "
		if r.hud.muted {
			label = " ♪ off "
		}
		r.drawText(x, 0, label, defaultStyle.Foreground(RgbFooter))
	}
}

func (r *TerminalRenderer) drawFooter(defaultStyle tcell.Style) {
	y := r.vp.Rows - 1
	if y <= 0 {
		return
	}
	help := " s start  e end  space pause  +/- 0-9 level  m mute  q quit"
	r.drawText(0, y, help, defaultStyle.Foreground(RgbFooter))
}

// drawHistory draws the top scores panel in the upper right of the play area
func (r *TerminalRenderer) drawHistory(defaultStyle tcell.Style) {
	width := constants.HistoryPanelWidth
	x0 := r.vp.Cols - width
	y0 := constants.HUDRows
	if x0 < 0 || r.vp.PlayRows() < constants.HistoryLimit+2 {
		return
	}

	border := defaultStyle.Foreground(RgbPanelBorder)
	text := defaultStyle.Foreground(RgbStatusBar)

	r.drawText(x0, y0, fmt.Sprintf("%-*s", width, " HISTORY"), border.Reverse(true))
	if len(r.hud.history) == 0 {
		r.drawText(x0, y0+1, fmt.Sprintf("%-*s", width, " no games"), text)
		return
	}
	for i, score := range r.hud.history {
		r.drawText(x0, y0+1+i, fmt.Sprintf(" %d. %-*d", i+1, width-5, score), text)
	}
}

func messageText(kind event.MessageKind) string {
	switch kind {
	case event.MessageReady:
		return "Press S to start"
	case event.MessagePaused:
		return "Paused - press space to resume"
	case event.MessageEnded:
		return "Game over! Press S to play again"
	case event.MessageFailed:
		return "Too many dots missed! Press S to try again"
	default:
		return ""
	}
}

// drawMessage draws the round banner centered in the play area
func (r *TerminalRenderer) drawMessage(defaultStyle tcell.Style) {
	msg := messageText(r.hud.message)
	if msg == "" {
		return
	}
	fg := RgbMessage
	if r.hud.message == event.MessageFailed {
		fg = RgbFailed
	}
	r.drawBanner(msg, defaultStyle.Foreground(fg).Background(RgbMessageBg))
}

func (r *TerminalRenderer) drawBanner(msg string, style tcell.Style) {
	line := " " + msg + " "
	x := (r.vp.Cols - len([]rune(line))) / 2
	if x < 0 {
		x = 0
	}
	y := constants.HUDRows + r.vp.PlayRows()/2
	r.drawText(x, y, line, style)
}

// drawPrompt replaces the frame with a request to enlarge or widen the terminal
func (r *TerminalRenderer) drawPrompt(defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbMessage)
	lines := []string{
		"Terminal too small or too tall",
		fmt.Sprintf("need at least %dx%d, wider than tall", constants.MinPlayCols, constants.MinPlayRows),
		strings.Repeat("-", 10),
		"q to quit",
	}
	y := r.vp.Rows/2 - len(lines)/2
	for i, line := range lines {
		x := (r.vp.Cols - len([]rune(line))) / 2
		if x < 0 {
			x = 0
		}
		r.drawText(x, y+i, line, style)
	}
}
