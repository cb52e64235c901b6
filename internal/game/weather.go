// Package game implements the fire lookout simulation: the weather state
// machine, the fire pool, the detection subsystem and the playable game
// built on top of them. The package is pure logic in the registry.Game
// mold - no Bubble Tea, no terminal, no wall clock.
package game

import (
	"fmt"
	"math/rand"

	"github.com/firetower-arcade/lookout/internal/config"
)

// WeatherState is one of the four discrete weather modes.
// Exactly one state is active at any time.
type WeatherState int

const (
	WeatherClear WeatherState = iota
	WeatherHot
	WeatherWindy
	WeatherRainy

	weatherStateCount = 4
)

// String returns the display name of the state.
func (s WeatherState) String() string {
	switch s {
	case WeatherClear:
		return "Clear"
	case WeatherHot:
		return "Hot"
	case WeatherWindy:
		return "Windy"
	case WeatherRainy:
		return "Rainy"
	default:
		return "Unknown"
	}
}

// ParseWeatherState converts a config key ("clear", "hot", ...) to a state.
func ParseWeatherState(name string) (WeatherState, error) {
	switch name {
	case "clear":
		return WeatherClear, nil
	case "hot":
		return WeatherHot, nil
	case "windy":
		return WeatherWindy, nil
	case "rainy":
		return WeatherRainy, nil
	default:
		return WeatherClear, fmt.Errorf("game: unknown weather state %q", name)
	}
}

// scales holds the two multipliers a state applies to the fire pool.
type scales struct {
	spawn    float64
	lifetime float64
}

// Weather holds the current weather state and rolls a new one, uniformly
// at random (self-transitions allowed), whenever its duration countdown
// reaches zero. Scales are pure lookups keyed by the current state.
type Weather struct {
	rng       *rand.Rand
	table     [weatherStateCount]scales
	minDur    float64
	maxDur    float64
	state     WeatherState
	remaining float64
}

// NewWeather builds a weather controller from the configured table.
// The table must already have passed config validation; a missing or
// non-positive entry is still rejected here so a controller can never
// exist in a corrupt state.
func NewWeather(rng *rand.Rand, cfg config.WeatherConfig) (*Weather, error) {
	w := &Weather{
		rng:    rng,
		minDur: cfg.MinDuration,
		maxDur: cfg.MaxDuration,
	}

	for name, sc := range cfg.States {
		st, err := ParseWeatherState(name)
		if err != nil {
			return nil, err
		}
		if sc.SpawnScale <= 0 || sc.LifetimeScale <= 0 {
			return nil, fmt.Errorf("game: weather state %q has non-positive scales", name)
		}
		w.table[st] = scales{spawn: sc.SpawnScale, lifetime: sc.LifetimeScale}
	}
	for st := WeatherState(0); st < weatherStateCount; st++ {
		if w.table[st].spawn == 0 {
			return nil, fmt.Errorf("game: weather table is missing state %s", st)
		}
	}

	w.roll()
	return w, nil
}

// Current returns the active weather state.
func (w *Weather) Current() WeatherState {
	return w.state
}

// SpawnScale returns the spawn interval multiplier of the active state.
func (w *Weather) SpawnScale() float64 {
	return w.table[w.state].spawn
}

// LifetimeScale returns the fire lifetime multiplier of the active state.
func (w *Weather) LifetimeScale() float64 {
	return w.table[w.state].lifetime
}

// Tick advances the duration countdown by dt seconds. When it runs out a
// new state is rolled; Tick returns true on the tick that changed state
// so the caller can announce it.
func (w *Weather) Tick(dt float64) bool {
	w.remaining -= dt
	if w.remaining > 0 {
		return false
	}
	w.roll()
	return true
}

// roll picks a new state uniformly among the four variants, independent of
// the previous state, and resets the duration countdown.
func (w *Weather) roll() {
	w.state = WeatherState(w.rng.Intn(weatherStateCount))
	w.remaining = w.minDur + w.rng.Float64()*(w.maxDur-w.minDur)
}
