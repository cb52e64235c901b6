package game

import (
	"math/rand"
	"os"

	"github.com/firetower-arcade/lookout/internal/config"
	"github.com/firetower-arcade/lookout/internal/core"
	"github.com/firetower-arcade/lookout/internal/registry"
)

// Mode selects between the timed shift and endless play.
type Mode string

const (
	ModeShift   Mode = "shift"
	ModeEndless Mode = "endless"
)

// Visual characters for rendering
const (
	FireChar      = '▲'
	SmokeChar     = '░'
	FarRidgeChar  = '░'
	MidRidgeChar  = '▓'
	WaterChar     = '≈'
	CrosshairChar = '┼'
	TickChar      = '·'
)

// How long transient HUD flashes stay up, in ticks.
const flashTicks = 90

// Package-level hooks set by the CLI before game creation,
// following the platform's pre-create configuration pattern.
var (
	configPath       string
	difficultyPreset string
	reportSink       ReportSink
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetReportSink routes confirmed reports somewhere other than stdout
// (the platform points this at the report journal).
func SetReportSink(s ReportSink) {
	reportSink = s
}

// Game is the playable fire lookout. It owns the weather controller, the
// terrain, the fire pool and the detector, and drives them once per fixed
// tick from player input.
type Game struct {
	mode Mode
	cfg  config.LookoutConfig
	diff *config.DifficultyManager
	rtc  core.RuntimeConfig

	rng      *rand.Rand
	weather  *Weather
	terrain  *Terrain
	pool     *Pool
	detector *Detector

	// Player/viewport state
	azimuth    float64 // View center, degrees compass
	aimElev    float64 // Crosshair elevation, degrees from horizon
	instrument bool    // Fire-finder open

	tick           uint64
	score          int
	reported       int
	missed         int
	shiftRemaining float64
	gameOver       bool
	paused         bool

	// Transient HUD flashes
	lastOutcome    ReportOutcome
	lastReport     ReportResult
	outcomeTicks   int
	weatherTicks   int
	announcedState WeatherState
}

// New creates a shift-mode game.
func New() *Game {
	return &Game{mode: ModeShift}
}

// NewEndless creates an endless game with no shift clock.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("lookout", func() registry.Game {
		return New()
	})
	registry.Register("lookout_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "lookout_endless"
	}
	return "lookout"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Fire Lookout (Endless)"
	}
	return "Fire Lookout"
}

// Reset initializes or restarts the game. The CLI validates the config at
// startup, so a load failure here (e.g. the file vanished mid-session)
// falls back to the embedded defaults rather than crashing the session.
func (g *Game) Reset(rtc core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultLookoutConfig()
	}
	g.cfg = cfg
	g.rtc = rtc

	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	if difficultyPreset != "" {
		preset := config.DifficultyPreset(difficultyPreset)
		if config.IsFixedPreset(preset) {
			g.diff.SetEnabled(false)
		} else {
			g.diff.SetInitialLevel(config.InitialLevelForPreset(preset))
		}
	}

	g.rng = rand.New(rand.NewSource(rtc.Seed))
	g.terrain = NewTerrain(g.rng)

	weather, werr := NewWeather(g.rng, cfg.Weather)
	if werr != nil {
		// Validation upstream makes this unreachable with a loadable
		// config; recover with the default table anyway.
		weather, _ = NewWeather(g.rng, config.DefaultLookoutConfig().Weather)
	}
	g.weather = weather

	g.pool = NewPool(g.rng, g.terrain, cfg.Fires, g.diff)

	sink := reportSink
	if sink == nil {
		sink = WriterSink{W: os.Stdout}
	}
	g.detector = NewDetector(cfg.Detection.Tolerance, sink)

	g.azimuth = 0
	g.aimElev = 0
	g.instrument = false
	g.tick = 0
	g.score = 0
	g.reported = 0
	g.missed = 0
	g.shiftRemaining = cfg.Shift.Length
	g.gameOver = false
	g.paused = false
	g.outcomeTicks = 0

	// Announce the opening weather like the dispatcher would.
	g.weatherTicks = flashTicks
	g.announcedState = g.weather.Current()
}

// Aim returns the current aim state consumed by the detector: the
// crosshair sits at the view center azimuth at the chosen elevation.
func (g *Game) Aim() AimState {
	return AimState{
		Azimuth:          g.azimuth,
		Elevation:        g.aimElev,
		InstrumentActive: g.instrument,
	}
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	dt := 1.0 / float64(core.Max(g.rtc.TickRate, 1))

	// Player/viewport input. Panning and aiming step per key event, which
	// the terminal's key repeat turns into hold-to-move.
	if in.Has(core.ActionPanLeft) {
		g.azimuth = core.WrapDeg(g.azimuth - g.cfg.View.PanStep)
	}
	if in.Has(core.ActionPanRight) {
		g.azimuth = core.WrapDeg(g.azimuth + g.cfg.View.PanStep)
	}
	if g.instrument {
		half := g.cfg.View.VertSpan / 2
		if in.Has(core.ActionAimUp) {
			g.aimElev = core.ClampF(g.aimElev+g.cfg.View.AimStep, -half, half)
		}
		if in.Has(core.ActionAimDown) {
			g.aimElev = core.ClampF(g.aimElev-g.cfg.View.AimStep, -half, half)
		}
	}
	if in.Has(core.ActionToggleScope) {
		g.instrument = !g.instrument
	}

	// Simulation: weather first, then the pool under the (possibly new)
	// weather. The report resolves afterwards, against the ticked world,
	// so a fire that burns out this tick is already gone when the player's
	// call comes in.
	if g.weather.Tick(dt) {
		g.weatherTicks = flashTicks
		g.announcedState = g.weather.Current()
	}
	g.missed += g.pool.Tick(dt, g.weather, g.score, int(g.tick))

	// Report action, edge-triggered: exactly one resolution per press.
	if in.Has(core.ActionReport) {
		result := g.detector.Report(g.Aim(), g.pool, g.weather.Current(), string(g.mode))
		g.lastOutcome = result.Outcome
		g.lastReport = result
		g.outcomeTicks = flashTicks
		if result.Outcome == ReportFireDetected {
			g.reported++
			g.score += g.cfg.Shift.PointsPerReport
		}
	}

	if g.mode == ModeShift {
		g.shiftRemaining -= dt
		if g.shiftRemaining <= 0 {
			g.shiftRemaining = 0
			g.gameOver = true
		}
	}

	if g.outcomeTicks > 0 {
		g.outcomeTicks--
	}
	if g.weatherTicks > 0 {
		g.weatherTicks--
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
