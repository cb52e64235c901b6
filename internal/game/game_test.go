package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/firetower-arcade/lookout/internal/core"
	"github.com/firetower-arcade/lookout/internal/registry"
)

func resetHooks(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
		SetReportSink(nil)
	})
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{"lookout", "lookout_endless"} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}
}

func TestResetInitialState(t *testing.T) {
	resetHooks(t)
	g := New()
	g.Reset(testRuntime(1))

	snap := g.Snapshot()
	if snap.Tick != 0 || snap.Score != 0 || snap.ActiveFires != 0 {
		t.Errorf("fresh game snapshot = %+v", snap)
	}
	if snap.Instrument {
		t.Error("instrument should start closed")
	}
	if snap.GameOver || snap.Paused {
		t.Error("fresh game should be running")
	}
	if snap.Azimuth != 0 || snap.AimElev != 0 {
		t.Errorf("view should start at azimuth 0, horizon; got %v / %v", snap.Azimuth, snap.AimElev)
	}
}

func TestPanWrapsAroundCompass(t *testing.T) {
	resetHooks(t)
	g := New()
	g.Reset(testRuntime(1))

	g.Step(frame(core.ActionPanLeft))
	if got := g.Snapshot().Azimuth; got != 357 {
		t.Errorf("azimuth after one left pan from 0 = %v, expected 357", got)
	}
	g.Step(frame(core.ActionPanRight))
	if got := g.Snapshot().Azimuth; got != 0 {
		t.Errorf("azimuth after panning back = %v, expected 0", got)
	}
}

func TestAimRequiresOpenInstrument(t *testing.T) {
	resetHooks(t)
	g := New()
	g.Reset(testRuntime(1))

	g.Step(frame(core.ActionAimUp))
	if got := g.Snapshot().AimElev; got != 0 {
		t.Errorf("aim moved to %v with the instrument closed", got)
	}

	g.Step(frame(core.ActionToggleScope))
	if !g.Snapshot().Instrument {
		t.Fatal("toggle did not open the instrument")
	}
	g.Step(frame(core.ActionAimUp))
	if got := g.Snapshot().AimElev; got != 1.5 {
		t.Errorf("aim after one up step = %v, expected 1.5", got)
	}
}

func TestAimClampsToVerticalSpan(t *testing.T) {
	resetHooks(t)
	g := New()
	g.Reset(testRuntime(1))
	g.Step(frame(core.ActionToggleScope))

	// Default span 60 -> crosshair clamps at +30.
	for i := 0; i < 100; i++ {
		g.Step(frame(core.ActionAimUp))
	}
	if got := g.Snapshot().AimElev; got != 30 {
		t.Errorf("aim elevation = %v after holding up, expected clamp at 30", got)
	}
}

func TestReportWithClosedInstrumentIsBenign(t *testing.T) {
	resetHooks(t)
	g := New()
	g.Reset(testRuntime(1))

	before := g.Snapshot()
	g.Step(frame(core.ActionReport))
	after := g.Snapshot()

	if g.lastOutcome != ReportInstrumentInactive {
		t.Errorf("outcome = %v, expected instrument inactive", g.lastOutcome)
	}
	if after.Score != before.Score || after.ActiveFires != before.ActiveFires {
		t.Error("closed-instrument report changed score or pool")
	}
}

func TestReportResolvesAgainstTickedWorld(t *testing.T) {
	resetHooks(t)
	g := New()
	g.Reset(testRuntime(1))
	g.Step(frame(core.ActionToggleScope))

	// A fire right under the crosshair with less lifetime than one tick
	// burns out during the same step the report is filed, so the call
	// finds nothing: the pool advances before the report resolves.
	g.pool.fires = append(g.pool.fires,
		Fire{ID: 1, Pos: Position{Azimuth: 0, Elevation: 0}, Remaining: 0.01, Lifetime: 30})

	g.Step(frame(core.ActionReport))
	if g.lastOutcome != ReportNoFire {
		t.Errorf("outcome = %v, expected no fire once it expired mid-step", g.lastOutcome)
	}
	snap := g.Snapshot()
	if snap.Missed != 1 || snap.Score != 0 {
		t.Errorf("missed = %d, score = %d; the expired fire should count as missed, not reported",
			snap.Missed, snap.Score)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	resetHooks(t)
	g := New()
	g.Reset(testRuntime(1))

	g.Step(frame())
	g.Step(frame(core.ActionPause))
	if !g.Snapshot().Paused {
		t.Fatal("pause action did not pause")
	}

	tick := g.Snapshot().Tick
	for i := 0; i < 10; i++ {
		g.Step(frame())
	}
	if g.Snapshot().Tick != tick {
		t.Error("simulation advanced while paused")
	}

	// The unpausing step already advances the simulation.
	g.Step(frame(core.ActionPause))
	if g.Snapshot().Tick != tick+1 {
		t.Error("simulation did not resume after unpause")
	}
}

func TestShiftEndsOnClock(t *testing.T) {
	resetHooks(t)

	// A custom config with a 2-second shift at 1 tick/s ends the game on
	// the second step.
	SetConfigPath(writeShortShiftConfig(t))
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 1, Seed: 1})

	g.Step(frame())
	if g.Snapshot().GameOver {
		t.Fatal("shift ended one tick early")
	}
	g.Step(frame())
	if !g.Snapshot().GameOver {
		t.Fatal("shift did not end when the clock ran out")
	}

	// Steps after game over are no-ops.
	tick := g.Snapshot().Tick
	g.Step(frame(core.ActionPanLeft))
	if g.Snapshot().Tick != tick {
		t.Error("game advanced after game over")
	}
}

func TestEndlessModeHasNoClock(t *testing.T) {
	resetHooks(t)
	SetConfigPath(writeShortShiftConfig(t))
	g := NewEndless()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 1, Seed: 1})

	for i := 0; i < 30; i++ {
		g.Step(frame())
	}
	if g.Snapshot().GameOver {
		t.Error("endless mode ended on the shift clock")
	}
}

// TestDeterministicReplay runs the same seed and input script twice and
// expects identical snapshots every tick and an identical report sequence.
func TestDeterministicReplay(t *testing.T) {
	resetHooks(t)

	script := func(tick int) core.InputFrame {
		switch {
		case tick == 3:
			return frame(core.ActionToggleScope)
		case tick%7 == 0:
			return frame(core.ActionPanRight)
		case tick%11 == 0:
			return frame(core.ActionAimUp)
		case tick%13 == 0:
			return frame(core.ActionReport)
		default:
			return frame()
		}
	}

	run := func() ([]Snapshot, []ReportRecord) {
		sink := &recordSink{}
		SetReportSink(sink)
		g := New()
		g.Reset(testRuntime(424242))

		var snaps []Snapshot
		for tick := 0; tick < 600; tick++ {
			g.Step(script(tick))
			snaps = append(snaps, g.Snapshot())
		}
		return snaps, sink.records
	}

	snapsA, reportsA := run()
	snapsB, reportsB := run()

	for i := range snapsA {
		if snapsA[i] != snapsB[i] {
			t.Fatalf("snapshots diverged at tick %d:\n  %+v\n  %+v", i, snapsA[i], snapsB[i])
		}
	}
	if len(reportsA) != len(reportsB) {
		t.Fatalf("report counts diverged: %d vs %d", len(reportsA), len(reportsB))
	}
	for i := range reportsA {
		if reportsA[i] != reportsB[i] {
			t.Errorf("report %d diverged: %+v vs %+v", i, reportsA[i], reportsB[i])
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	resetHooks(t)

	run := func(seed int64) []Fire {
		g := New()
		g.Reset(testRuntime(seed))
		for i := 0; i < 900; i++ {
			g.Step(frame())
		}
		return append([]Fire(nil), g.pool.Active()...)
	}

	a := run(1)
	b := run(2)
	// Fire placement comes straight from the seeded RNG; after 30 simulated
	// seconds the two worlds should not have burned identically.
	if len(a) == 0 || len(b) == 0 {
		t.Fatal("expected active fires after 30 simulated seconds")
	}
	same := len(a) == len(b)
	if same {
		for i := range a {
			if a[i].Pos != b[i].Pos {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("two different seeds produced identical fire placements after 900 ticks")
	}
}

func TestRenderSmoke(t *testing.T) {
	resetHooks(t)
	g := New()
	g.Reset(testRuntime(9))
	for i := 0; i < 300; i++ {
		g.Step(frame())
	}
	g.Step(frame(core.ActionToggleScope))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Score:") {
		t.Error("HUD line missing from rendered frame")
	}
	if !strings.Contains(out, "Weather:") {
		t.Error("weather readout missing from rendered frame")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	resetHooks(t)
	g := New()
	g.Reset(testRuntime(9))

	screen := core.NewScreen(40, 4)
	g.Render(screen) // Must not panic.
	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Error("tiny screen should show the too-small notice")
	}
}

// writeShortShiftConfig writes a valid config with a 2-second shift and a
// spawn interval long enough that no fire appears during these tests.
func writeShortShiftConfig(t *testing.T) string {
	t.Helper()
	yaml := `view:
  fov: 120
  vert_span: 60
  pan_step: 3.0
  aim_step: 1.5
weather:
  min_duration: 1000
  max_duration: 1000
  states:
    clear: {spawn_scale: 1.0, lifetime_scale: 1.0}
    hot: {spawn_scale: 0.5, lifetime_scale: 2.0}
    windy: {spawn_scale: 0.7, lifetime_scale: 1.5}
    rainy: {spawn_scale: 2.0, lifetime_scale: 0.5}
fires:
  spawn_interval: 1000
  base_lifetime: 30
  min_separation: 6
  max_place_attempts: 20
detection:
  tolerance: 4.0
shift:
  length: 2
  points_per_report: 100
difficulty:
  enabled: false
`
	path := filepath.Join(t.TempDir(), "lookout.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	return path
}
