package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/dotstrike/constants"
)

// Scoreboard reads and records the high score and the top-N history on top of a Store
// Absent or malformed values read as 0 and an empty history; store failures are reported by RecordRound
type Scoreboard struct {
	store Store
	log   zerolog.Logger
	limit int
}

// NewScoreboard wraps s; history is capped at constants.HistoryLimit entries
func NewScoreboard(s Store, logger zerolog.Logger) *Scoreboard {
	return &Scoreboard{
		store: s,
		log:   logger.With().Str("component", "scores").Logger(),
		limit: constants.HistoryLimit,
	}
}

// HighScore returns the persisted high score or 0
func (b *Scoreboard) HighScore(ctx context.Context) int {
	high, err := b.readHigh(ctx)
	if err != nil {
		b.log.Warn().Err(err).Msg("reading high score failed")
		return 0
	}
	return high
}

// History returns the persisted scores, highest first
func (b *Scoreboard) History(ctx context.Context) []int {
	history, err := b.readHistory(ctx)
	if err != nil {
		b.log.Warn().Err(err).Msg("reading score history failed")
		return []int{}
	}
	return history
}

// readHigh returns an error only when the store itself fails; absent or malformed values read as 0
func (b *Scoreboard) readHigh(ctx context.Context) (int, error) {
	raw, ok, err := b.store.Get(ctx, KeyHighScore)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		b.log.Warn().Str("value", raw).Msg("malformed high score, using 0")
		return 0, nil
	}
	return n, nil
}

// readHistory returns an error only when the store itself fails; absent or malformed values read as empty
func (b *Scoreboard) readHistory(ctx context.Context) ([]int, error) {
	raw, ok, err := b.store.Get(ctx, KeyHistory)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []int{}, nil
	}
	var scores []int
	if err := json.Unmarshal([]byte(raw), &scores); err != nil {
		b.log.Warn().Str("value", raw).Msg("malformed score history, using empty")
		return []int{}, nil
	}
	return normalize(scores, b.limit), nil
}

// RecordRound inserts score into the history and raises the high score when exceeded
// A failed read writes nothing and returns the error with a zero high score and nil history;
// after a failed write the returned state is still what the caller should display
func (b *Scoreboard) RecordRound(ctx context.Context, score int) (int, []int, bool, error) {
	high, err := b.readHigh(ctx)
	if err != nil {
		return 0, nil, false, fmt.Errorf("read high score: %w", err)
	}
	prev, err := b.readHistory(ctx)
	if err != nil {
		return 0, nil, false, fmt.Errorf("read score history: %w", err)
	}
	history := normalize(append(prev, score), b.limit)

	var errs []error
	if err := b.store.Set(ctx, KeyHistory, encodeHistory(history)); err != nil {
		errs = append(errs, err)
	}

	newHigh := score > high
	if newHigh {
		high = score
		if err := b.store.Set(ctx, KeyHighScore, strconv.Itoa(high)); err != nil {
			errs = append(errs, err)
		}
	}

	return high, history, newHigh, errors.Join(errs...)
}

func normalize(scores []int, limit int) []int {
	out := make([]int, len(scores))
	copy(out, scores)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func encodeHistory(scores []int) string {
	data, _ := json.Marshal(scores)
	return string(data)
}
