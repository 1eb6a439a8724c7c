package dodge

import (
	"time"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// sessionTimers owns the three periodic timers of a session. They are
// started together on entering Playing and cancelled together on leaving it.
type sessionTimers struct {
	spawn     *core.Ticker
	speedRamp *core.Ticker
	barRamp   *core.Ticker
}

// firings counts how often each timer fired during one tick.
type firings struct {
	spawn     int
	speedRamp int
	barRamp   int
}

func newSessionTimers(cfg config.DodgeTimers) sessionTimers {
	return sessionTimers{
		spawn:     core.NewTicker(cfg.Spawn()),
		speedRamp: core.NewTicker(cfg.SpeedRamp()),
		barRamp:   core.NewTicker(cfg.BarRamp()),
	}
}

// configure applies new periods. Only called while the timers are stopped.
func (t sessionTimers) configure(cfg config.DodgeTimers) {
	t.spawn.SetPeriod(cfg.Spawn())
	t.speedRamp.SetPeriod(cfg.SpeedRamp())
	t.barRamp.SetPeriod(cfg.BarRamp())
}

// start starts every timer. withBar controls the bar ramp, which only
// rising-bar variants use.
func (t sessionTimers) start(withBar bool) {
	t.spawn.Start()
	t.speedRamp.Start()
	if withBar {
		t.barRamp.Start()
	}
}

// cancel stops every timer.
func (t sessionTimers) cancel() {
	t.spawn.Stop()
	t.speedRamp.Stop()
	t.barRamp.Stop()
}

// anyActive reports whether any timer is still running.
func (t sessionTimers) anyActive() bool {
	return t.spawn.Active() || t.speedRamp.Active() || t.barRamp.Active()
}

// advance feeds dt to every timer.
func (t sessionTimers) advance(dt time.Duration) firings {
	return firings{
		spawn:     t.spawn.Advance(dt),
		speedRamp: t.speedRamp.Advance(dt),
		barRamp:   t.barRamp.Advance(dt),
	}
}
