package game

import "time"

// Driver is a fixed-interval tick schedule polled from the frame loop. There is
// only ever one schedule: Start always discards the previous one.
type Driver struct {
	interval   time.Duration
	lastUpdate time.Time
	running    bool
}

func NewDriver(interval time.Duration) *Driver {
	return &Driver{interval: interval}
}

// Start (re)starts the schedule; the first tick fires one interval after now.
func (d *Driver) Start(now time.Time) {
	d.Stop()
	d.lastUpdate = now
	d.running = true
}

func (d *Driver) Stop() {
	d.running = false
	d.lastUpdate = time.Time{}
}

func (d *Driver) Running() bool {
	return d.running
}

func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Due reports whether a tick boundary has passed since the last one. A late
// poll fires once; missed ticks are not replayed.
func (d *Driver) Due(now time.Time) bool {
	if !d.running {
		return false
	}
	if now.Sub(d.lastUpdate) < d.interval {
		return false
	}
	d.lastUpdate = now
	return true
}
