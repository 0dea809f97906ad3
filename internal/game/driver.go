package game

import (
	"context"
	"log/slog"
	"time"
)

// Driver turns wall-clock time into simulation ticks. It is not safe for
// concurrent use; Step and the commands on Sim must run on one goroutine.
type Driver struct {
	sim      *Sim
	clock    Clock
	interval time.Duration
	running  bool
	last     time.Time
	logger   *slog.Logger

	// AfterStep, if set, runs on the driver goroutine after every tick in Run.
	AfterStep func(*Sim)
}

// NewDriver returns a paused driver for sim.
func NewDriver(sim *Sim, clock Clock, interval time.Duration) *Driver {
	if clock == nil {
		clock = RealClock{}
	}
	return &Driver{
		sim:      sim,
		clock:    clock,
		interval: interval,
		logger:   sim.logger.With("component", "driver"),
	}
}

func (d *Driver) Running() bool { return d.running }

// Start resumes ticking. Time spent paused is not simulated.
func (d *Driver) Start() {
	d.last = d.clock.Now()
	d.running = true
}

// Pause stops ticking until the next Start.
func (d *Driver) Pause() {
	d.running = false
}

// Toggle flips between running and paused.
func (d *Driver) Toggle() {
	if d.running {
		d.Pause()
	} else {
		d.Start()
	}
}

// Step ticks the simulation by the wall-clock time since the previous step,
// scaled by the sim's TimeScale, and returns the simulated seconds. It does
// nothing while paused.
func (d *Driver) Step() float64 {
	if !d.running {
		return 0
	}
	now := d.clock.Now()
	elapsed := now.Sub(d.last).Seconds() * d.sim.TimeScale
	d.last = now

	d.sim.Tick(elapsed, d.sim.Mode)
	return elapsed
}

// Run starts the driver and steps it on every interval until ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.Start()
	d.logger.Info("driver started", "interval", d.interval, "time_scale", d.sim.TimeScale)

	for {
		select {
		case <-ctx.Done():
			d.Pause()
			d.logger.Info("driver stopped", "ticks", d.sim.Ticks, "elapsed", d.sim.Elapsed)
			return nil
		case <-ticker.C:
			d.Step()
			if d.AfterStep != nil {
				d.AfterStep(d.sim)
			}
		}
	}
}
