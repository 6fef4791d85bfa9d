package sim

import "time"

// Periodic is a cancellable repeating clock driven by elapsed time.
// It fires at most once per Advance; surplus time stays queued so that no
// period is ever dropped, only delayed to the next call.
type Periodic struct {
	interval time.Duration
	acc      time.Duration
	active   bool
}

// Start (re)arms the clock so that it first fires after one interval.
func (p *Periodic) Start(interval time.Duration) {
	p.StartAfter(interval, interval)
}

// StartAfter (re)arms the clock so that it first fires after delay.
func (p *Periodic) StartAfter(interval, delay time.Duration) {
	p.interval = interval
	p.acc = interval - delay
	p.active = true
}

// Stop cancels the clock. Stopping a stopped clock is a no-op.
func (p *Periodic) Stop() {
	p.active = false
	p.acc = 0
}

// Active reports whether the clock is running.
func (p *Periodic) Active() bool {
	return p.active
}

// SetInterval changes the period without touching accumulated time.
func (p *Periodic) SetInterval(interval time.Duration) {
	if interval > 0 {
		p.interval = interval
	}
}

// Advance adds dt and reports whether the clock fired.
func (p *Periodic) Advance(dt time.Duration) bool {
	if !p.active || p.interval <= 0 {
		return false
	}
	p.acc += dt
	if p.acc >= p.interval {
		p.acc -= p.interval
		return true
	}
	return false
}

// Pending returns the accumulated, not yet consumed time.
func (p *Periodic) Pending() time.Duration {
	return p.acc
}

// OneShot is a cancellable delayed callback. Scheduling replaces any
// pending shot instead of stacking a second one.
type OneShot struct {
	remaining time.Duration
	active    bool
}

// Schedule arms the shot to fire after d, replacing any pending one.
func (o *OneShot) Schedule(d time.Duration) {
	o.remaining = d
	o.active = true
}

// Cancel disarms the shot. Cancelling twice is a no-op.
func (o *OneShot) Cancel() {
	o.active = false
	o.remaining = 0
}

// Active reports whether the shot is pending.
func (o *OneShot) Active() bool {
	return o.active
}

// Remaining returns the time left before the shot fires.
func (o *OneShot) Remaining() time.Duration {
	if !o.active {
		return 0
	}
	return o.remaining
}

// Advance subtracts dt and reports whether the shot fired on this call.
func (o *OneShot) Advance(dt time.Duration) bool {
	if !o.active {
		return false
	}
	o.remaining -= dt
	if o.remaining <= 0 {
		o.Cancel()
		return true
	}
	return false
}
