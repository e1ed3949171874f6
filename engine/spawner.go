package engine

import (
	"time"

	"github.com/lixenwraith/dotstrike/constants"
)

// SpawnPeriod returns the spawn interval for a difficulty: max(200ms, 1000ms - 80ms*d)
func SpawnPeriod(difficulty int) time.Duration {
	p := constants.SpawnPeriodBase - time.Duration(difficulty)*constants.SpawnPeriodStep
	if p < constants.SpawnPeriodMin {
		return constants.SpawnPeriodMin
	}
	return p
}

// Spawner owns the two round timers: the spawn tick and the one-second countdown tick
type Spawner struct {
	sched Scheduler

	onSpawn     func()
	onCountdown func()

	spawnHandle     Handle
	countdownHandle Handle
	period          time.Duration
}

// NewSpawner creates a stopped spawner that calls onSpawn per spawn tick and onCountdown per second
func NewSpawner(sched Scheduler, onSpawn, onCountdown func()) *Spawner {
	return &Spawner{
		sched:       sched,
		onSpawn:     onSpawn,
		onCountdown: onCountdown,
	}
}

// Start begins both timers at the period derived from difficulty
// Any timers already running are replaced
func (s *Spawner) Start(difficulty int) {
	s.Stop()
	s.period = SpawnPeriod(difficulty)
	s.spawnHandle = s.sched.ScheduleRepeating(s.period, s.onSpawn)
	s.countdownHandle = s.sched.ScheduleRepeating(constants.CountdownTick, s.onCountdown)
}

// Stop cancels both timers; stopping a stopped spawner is a no-op
func (s *Spawner) Stop() {
	s.sched.Cancel(s.spawnHandle)
	s.sched.Cancel(s.countdownHandle)
	s.spawnHandle = 0
	s.countdownHandle = 0
}

// Restart re-schedules the spawn timer at the period for a new difficulty
// The countdown keeps its phase; a stopped spawner stays stopped
func (s *Spawner) Restart(difficulty int) {
	if s.spawnHandle == 0 {
		return
	}
	s.sched.Cancel(s.spawnHandle)
	s.period = SpawnPeriod(difficulty)
	s.spawnHandle = s.sched.ScheduleRepeating(s.period, s.onSpawn)
}

// Running reports whether the spawn timer is active
func (s *Spawner) Running() bool {
	return s.spawnHandle != 0
}

// Period returns the period of the current or last spawn timer
func (s *Spawner) Period() time.Duration {
	return s.period
}
