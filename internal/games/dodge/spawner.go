package dodge

import (
	"math/rand"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// Spawner creates obstacles and rare balls just above the visible field.
// All randomness comes from one seeded source so sessions are reproducible.
type Spawner struct {
	rng *rand.Rand
	cfg config.DodgeObstacles
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg config.DodgeObstacles) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Reset reseeds the RNG and replaces the obstacle parameters.
func (sp *Spawner) Reset(seed int64, cfg config.DodgeObstacles) {
	sp.rng = rand.New(rand.NewSource(seed))
	sp.cfg = cfg
}

// Obstacle returns a new obstacle for a field of the given width.
// Speed is drawn from [min_speed, min_speed + speedCap).
func (sp *Spawner) Obstacle(fieldW, speedCap float64) Obstacle {
	return Obstacle{
		Circle: sp.circle(fieldW),
		Speed:  sp.speed(speedCap),
		Color:  Palette[sp.rng.Intn(len(Palette))],
	}
}

// RareBall returns a new rare ball for a field of the given width.
func (sp *Spawner) RareBall(fieldW, speedCap float64) RareBall {
	return RareBall{
		Circle:  sp.circle(fieldW),
		Speed:   sp.speed(speedCap),
		Emotion: AllEmotions[sp.rng.Intn(len(AllEmotions))],
	}
}

// circle picks a radius in [min_radius, max_radius) and a horizontal center
// that keeps the whole circle inside the field. The circle starts with its
// bottom edge touching the top of the field.
func (sp *Spawner) circle(fieldW float64) core.Circle {
	r := sp.between(sp.cfg.MinRadius, sp.cfg.MaxRadius)

	x := fieldW / 2
	if span := fieldW - 2*r; span > 0 {
		x = r + sp.rng.Float64()*span
	}
	return core.Circle{X: x, Y: -r, R: r}
}

func (sp *Spawner) speed(speedCap float64) float64 {
	if speedCap <= 0 {
		return sp.cfg.MinSpeed
	}
	return sp.cfg.MinSpeed + sp.rng.Float64()*speedCap
}

// between returns a uniform value in [lo, hi).
func (sp *Spawner) between(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + sp.rng.Float64()*(hi-lo)
}
