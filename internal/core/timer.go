package core

import "time"

// Ticker is a periodic timer driven by simulated time rather than the wall
// clock. The owner feeds it elapsed time through Advance; a stopped ticker
// ignores time entirely, so nothing fires after Stop.
type Ticker struct {
	period  time.Duration
	elapsed time.Duration
	active  bool
}

// NewTicker creates a stopped ticker with the given period.
func NewTicker(period time.Duration) *Ticker {
	return &Ticker{period: period}
}

// Start (re)starts the ticker. The first fire happens one full period later.
func (t *Ticker) Start() {
	t.elapsed = 0
	t.active = true
}

// Stop cancels the ticker. Accumulated time is discarded.
func (t *Ticker) Stop() {
	t.active = false
	t.elapsed = 0
}

// Active reports whether the ticker is running.
func (t *Ticker) Active() bool {
	return t.active
}

// SetPeriod changes the period without resetting accumulated time.
func (t *Ticker) SetPeriod(period time.Duration) {
	t.period = period
}

// Advance adds dt of simulated time and returns how many periods completed.
// A stopped ticker or a non-positive period never fires.
func (t *Ticker) Advance(dt time.Duration) int {
	if !t.active || t.period <= 0 || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	fires := int(t.elapsed / t.period)
	t.elapsed -= time.Duration(fires) * t.period
	return fires
}
