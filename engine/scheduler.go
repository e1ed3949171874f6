package engine

import (
	"sort"
	"time"
)

// Handle identifies a scheduled callback; the zero Handle is never issued
type Handle uint64

// Scheduler is the timing capability the game logic depends on
// All callbacks run on the goroutine that drives the scheduler
type Scheduler interface {
	// ScheduleRepeating runs fn every period, first after one full period
	ScheduleRepeating(period time.Duration, fn func()) Handle

	// ScheduleNextFrame runs fn once during the next frame
	ScheduleNextFrame(fn func()) Handle

	// Cancel stops a scheduled callback; unknown or finished handles are ignored
	Cancel(h Handle)
}

type repeatingTask struct {
	period time.Duration
	next   time.Time
	fn     func()
}

type frameTask struct {
	handle Handle
	fn     func()
}

// LoopScheduler is a Scheduler driven explicitly by the owning loop
// Advance fires due repeating timers, RunFrame drains the frame queue
// Not safe for concurrent use
type LoopScheduler struct {
	clock     TimeProvider
	nextID    Handle
	repeating map[Handle]*repeatingTask
	frames    []frameTask
	pending   map[Handle]struct{}
	cancelled map[Handle]struct{}
	frameNum  int64
}

// NewLoopScheduler creates a scheduler measuring periods against clock
func NewLoopScheduler(clock TimeProvider) *LoopScheduler {
	return &LoopScheduler{
		clock:     clock,
		repeating: make(map[Handle]*repeatingTask),
		pending:   make(map[Handle]struct{}),
		cancelled: make(map[Handle]struct{}),
	}
}

func (s *LoopScheduler) issue() Handle {
	s.nextID++
	return s.nextID
}

// ScheduleRepeating registers fn to fire every period
func (s *LoopScheduler) ScheduleRepeating(period time.Duration, fn func()) Handle {
	if period <= 0 {
		period = time.Millisecond
	}
	h := s.issue()
	s.repeating[h] = &repeatingTask{
		period: period,
		next:   s.clock.Now().Add(period),
		fn:     fn,
	}
	return h
}

// ScheduleNextFrame queues fn for the next RunFrame call
func (s *LoopScheduler) ScheduleNextFrame(fn func()) Handle {
	h := s.issue()
	s.frames = append(s.frames, frameTask{handle: h, fn: fn})
	s.pending[h] = struct{}{}
	return h
}

// Cancel removes a repeating timer or a pending frame callback
func (s *LoopScheduler) Cancel(h Handle) {
	if h == 0 {
		return
	}
	if _, ok := s.repeating[h]; ok {
		delete(s.repeating, h)
		return
	}
	if _, ok := s.pending[h]; ok {
		s.cancelled[h] = struct{}{}
	}
}

// Advance fires every repeating timer whose deadline has passed
// Timers fire in registration order; a timer more than two periods behind is re-anchored to now
func (s *LoopScheduler) Advance() {
	now := s.clock.Now()

	handles := make([]Handle, 0, len(s.repeating))
	for h := range s.repeating {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	for _, h := range handles {
		for {
			// Callbacks may cancel this or any other timer
			task, ok := s.repeating[h]
			if !ok || now.Before(task.next) {
				break
			}
			task.next = task.next.Add(task.period)
			if now.Sub(task.next) > task.period*2 {
				task.next = now.Add(task.period)
			}
			task.fn()
		}
	}
}

// RunFrame executes the frame callbacks queued before this call
// Callbacks scheduled while running are deferred to the following frame;
// a callback canceled mid-frame by an earlier one is skipped
func (s *LoopScheduler) RunFrame() {
	s.frameNum++
	batch := s.frames
	s.frames = nil

	for _, ft := range batch {
		delete(s.pending, ft.handle)
		if _, skip := s.cancelled[ft.handle]; skip {
			delete(s.cancelled, ft.handle)
			continue
		}
		ft.fn()
	}
}

// FrameNumber returns the number of frames run so far
func (s *LoopScheduler) FrameNumber() int64 {
	return s.frameNum
}

// RepeatingCount returns the number of active repeating timers
func (s *LoopScheduler) RepeatingCount() int {
	return len(s.repeating)
}

// PendingFrames returns the number of frame callbacks waiting for the next frame
func (s *LoopScheduler) PendingFrames() int {
	return len(s.pending) - len(s.cancelled)
}
