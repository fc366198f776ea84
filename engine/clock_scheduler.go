package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/parameter"
)

// ClockScheduler drives World.Step on a wall-clock fixed tick for interactive hosts
// The simulation itself never reads the wall clock; lockstep hosts call Step directly
type ClockScheduler struct {
	world        *World
	tickInterval time.Duration
	sample       func() // Writes this tick's inputs, runs under the world lock

	paused    atomic.Bool
	tickCount atomic.Uint64

	nextTickDeadline time.Time

	stopChan   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	running    atomic.Bool
	updateDone chan struct{}

	statTicks  *atomic.Int64
	statPaused *atomic.Bool
}

// NewClockScheduler returns the scheduler and a channel signalled after every tick
func NewClockScheduler(world *World, tickInterval time.Duration, sample func()) (*ClockScheduler, <-chan struct{}) {
	if tickInterval <= 0 {
		tickInterval = parameter.TickInterval
	}
	cs := &ClockScheduler{
		world:        world,
		tickInterval: tickInterval,
		sample:       sample,
		stopChan:     make(chan struct{}),
		updateDone:   make(chan struct{}, 1),
		statTicks:    world.Resources.Status.Ints.Get("engine.ticks"),
		statPaused:   world.Resources.Status.Bools.Get("engine.paused"),
	}
	return cs, cs.updateDone
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the running tick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TogglePause flips the pause state, returning the new state
func (cs *ClockScheduler) TogglePause() bool {
	for {
		cur := cs.paused.Load()
		if cs.paused.CompareAndSwap(cur, !cur) {
			cs.statPaused.Store(!cur)
			return !cur
		}
	}
}

// IsPaused reports the pause state
func (cs *ClockScheduler) IsPaused() bool {
	return cs.paused.Load()
}

// RequestReset queues a game reset for the next tick
func (cs *ClockScheduler) RequestReset() {
	cs.world.RunSafe(func() {
		cs.world.PushEvent(event.EventGameReset, nil)
	})
}

// TickCount returns ticks run since Start
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)
	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-timer.C:
		}

		now := time.Now()
		if cs.paused.Load() {
			// Resume from a fresh deadline instead of catching up the paused span
			cs.nextTickDeadline = now.Add(cs.tickInterval)
			timer.Reset(cs.tickInterval * 2)
			continue
		}

		// Bounded catch-up after a stall
		for ticks := 0; !now.Before(cs.nextTickDeadline) && ticks < parameter.MaxTicksPerFrame; ticks++ {
			cs.processTick()
			cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
		}
		if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
			cs.nextTickDeadline = now.Add(cs.tickInterval)
		}

		select {
		case cs.updateDone <- struct{}{}:
		default:
		}

		sleep := time.Until(cs.nextTickDeadline)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// processTick executes one clock cycle
func (cs *ClockScheduler) processTick() {
	cs.world.RunSafe(func() {
		if cs.sample != nil {
			cs.sample()
		}
		cs.world.Step()
	})
	cs.statTicks.Store(int64(cs.tickCount.Add(1)))
}
