package app

import (
	"godforce-ca/internal/core"
	"godforce-ca/internal/director"
	"godforce-ca/internal/sims/godforce"
	pcore "godforce-ca/pkg/core"
)

// Driver runs one frame of the simulation loop: it installs at most one
// pending director update, advances simulated time and ticks the automaton
// when the scheduler allows. Every front end drives the world through it, so
// updates are only ever applied between ticks.
type Driver struct {
	world   *godforce.World
	updates <-chan director.Update
	sched   *core.Scheduler
	rng     *pcore.RNG

	paused   bool
	tickOnce bool
	last     director.Update
	applied  int
}

// NewDriver wires world to an update stream. A nil stream is allowed.
func NewDriver(world *godforce.World, updates <-chan director.Update, seed int64) *Driver {
	cfg := world.Config()
	rng := pcore.NewRNG(seed)
	if seed == 0 {
		rng = pcore.NewTimeRNG()
	}
	return &Driver{
		world:   world,
		updates: updates,
		sched:   core.NewScheduler(cfg.Schedule.TimeStep, cfg.Schedule.TickRate),
		rng:     rng,
	}
}

// World returns the driven world.
func (d *Driver) World() *godforce.World { return d.world }

// Elapsed returns the simulated time.
func (d *Driver) Elapsed() float64 { return d.sched.Elapsed() }

// Paused reports whether ticking is suspended.
func (d *Driver) Paused() bool { return d.paused }

// SetPaused suspends or resumes ticking. Time keeps advancing while paused.
func (d *Driver) SetPaused(p bool) { d.paused = p }

// TogglePause flips the paused state.
func (d *Driver) TogglePause() { d.paused = !d.paused }

// StepOnce forces a tick on the next frame, even when paused.
func (d *Driver) StepOnce() { d.tickOnce = true }

// LastUpdate returns the most recently applied director update and how many
// have been applied so far.
func (d *Driver) LastUpdate() (director.Update, int) { return d.last, d.applied }

// Frame runs one frame and reports whether the automaton ticked.
func (d *Driver) Frame() bool {
	select {
	case u, ok := <-d.updates:
		if ok {
			d.world.Apply(u)
			d.last = u
			d.applied++
		}
	default:
	}

	d.sched.Rate = d.world.TickRate()
	elapsed, tick := d.sched.Advance(d.rng)
	d.world.SetElapsed(elapsed)

	ticked := false
	if (tick && !d.paused) || d.tickOnce {
		d.world.Step()
		d.tickOnce = false
		ticked = true
	}
	d.world.Morph()
	return ticked
}
