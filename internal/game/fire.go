package game

import (
	"math/rand"

	"github.com/firetower-arcade/lookout/internal/config"
	"github.com/firetower-arcade/lookout/internal/core"
)

// FireID uniquely identifies a fire within a pool for its whole lifecycle.
type FireID uint64

// Position is a point in world space: compass azimuth and elevation
// relative to the horizon, both in degrees.
type Position struct {
	Azimuth   float64
	Elevation float64
}

// Fire is one active ignition point. Lifetime is fixed at spawn from the
// weather active at that moment and is never re-scaled afterwards.
type Fire struct {
	ID        FireID
	Pos       Position
	Layer     Layer
	Remaining float64 // Seconds until natural expiry
	Lifetime  float64 // Remaining at spawn, kept for HUD/intensity display
}

// Pool owns every active Fire. It spawns fires on a weather-scaled timer,
// burns their lifetimes down each tick, and removes them on expiry or on a
// confirmed report. No other component holds fire references beyond a
// transient read during detection.
type Pool struct {
	rng        *rand.Rand
	terrain    *Terrain
	cfg        config.FireConfig
	difficulty *config.DifficultyManager

	fires      []Fire
	nextID     FireID
	sinceSpawn float64

	spawned   int
	expired   int
	fallbacks int // Times placement gave up on separation (saturation signal)
}

// NewPool creates an empty fire pool sharing the game's RNG and terrain.
func NewPool(rng *rand.Rand, terrain *Terrain, cfg config.FireConfig, diff *config.DifficultyManager) *Pool {
	return &Pool{
		rng:        rng,
		terrain:    terrain,
		cfg:        cfg,
		difficulty: diff,
		fires:      make([]Fire, 0, 16),
	}
}

// Tick advances the pool by dt seconds under the given weather:
// lifetimes burn down and expired fires are removed, then the spawn timer
// advances and at most one new fire is created when it crosses the
// weather-scaled interval. The timer resets to zero on spawn rather than
// carrying the overshoot, so a long stall never burst-spawns.
// Returns the number of fires that expired unreported this tick.
func (p *Pool) Tick(dt float64, w *Weather, score, ticks int) int {
	// Burn lifetimes and drop expired fires, preserving order.
	alive := p.fires[:0]
	expiredNow := 0
	for _, f := range p.fires {
		f.Remaining -= dt
		if f.Remaining <= 0 {
			expiredNow++
			continue
		}
		alive = append(alive, f)
	}
	p.fires = alive
	p.expired += expiredNow

	// Spawn timer.
	p.sinceSpawn += dt
	interval := p.cfg.SpawnInterval
	if p.difficulty != nil {
		interval = p.difficulty.SpawnInterval(interval, score, ticks)
	}
	if p.sinceSpawn >= interval*w.SpawnScale() {
		p.spawn(w, score, ticks)
		p.sinceSpawn = 0
	}

	return expiredNow
}

// spawn creates exactly one fire at a random ridge position. Placement
// resamples up to MaxPlaceAttempts times looking for a column that has
// terrain and keeps MinSeparation degrees from every active fire; when the
// map is saturated the last terrain-valid candidate is accepted as-is.
func (p *Pool) spawn(w *Weather, score, ticks int) {
	var pos Position
	var layer Layer
	placed := false
	haveFallback := false

	for attempt := 0; attempt < p.cfg.MaxPlaceAttempts; attempt++ {
		az := p.rng.Float64() * 360
		l := Layer(p.rng.Intn(layerCount))
		if !p.terrain.HasRidge(l, az) {
			continue
		}

		// Fires sit a little below the ridge top, like smoke rising from
		// a hillside rather than the crest.
		drop := p.rng.Float64() * 3
		candidate := Position{
			Azimuth:   core.WrapDeg(az),
			Elevation: p.terrain.RidgeElevation(l, az) - drop,
		}

		if !haveFallback {
			pos, layer = candidate, l
			haveFallback = true
		}

		if p.tooClose(candidate) {
			continue
		}

		pos, layer = candidate, l
		placed = true
		break
	}

	if !haveFallback {
		// Every attempt landed in a terrain gap; skip this spawn entirely
		// rather than igniting open water.
		return
	}
	if !placed {
		p.fallbacks++
	}

	lifetime := p.cfg.BaseLifetime
	if p.difficulty != nil {
		lifetime = p.difficulty.Lifetime(lifetime, score, ticks)
	}
	lifetime *= w.LifetimeScale()

	p.nextID++
	p.fires = append(p.fires, Fire{
		ID:        p.nextID,
		Pos:       pos,
		Layer:     layer,
		Remaining: lifetime,
		Lifetime:  lifetime,
	})
	p.spawned++
}

// tooClose reports whether a candidate position crowds an active fire.
func (p *Pool) tooClose(pos Position) bool {
	for _, f := range p.fires {
		if core.AngularDistance(f.Pos.Azimuth, pos.Azimuth) < p.cfg.MinSeparation {
			return true
		}
	}
	return false
}

// Active returns the active fires. The slice is owned by the pool and is
// stable between ticks; callers must treat it as read-only.
func (p *Pool) Active() []Fire {
	return p.fires
}

// Extinguish removes the fire with the given id immediately. It is a
// silent no-op when the id is no longer present - expiry and reporting can
// race from the player's point of view, so an already-gone fire is an
// expected outcome, not an error. Returns whether a fire was removed.
func (p *Pool) Extinguish(id FireID) bool {
	for i, f := range p.fires {
		if f.ID == id {
			p.fires = append(p.fires[:i], p.fires[i+1:]...)
			return true
		}
	}
	return false
}

// Spawned returns how many fires have ignited since the pool was created.
func (p *Pool) Spawned() int {
	return p.spawned
}

// Expired returns how many fires burned out unreported.
func (p *Pool) Expired() int {
	return p.expired
}

// PlacementFallbacks counts spawns that gave up finding a separated spot.
// A steadily growing value is a tuning signal, never a player-facing error.
func (p *Pool) PlacementFallbacks() int {
	return p.fallbacks
}
