package game

import (
	"math"

	"github.com/firetower-arcade/lookout/internal/core"
)

// ReportOutcome classifies the result of a report action. Every variant is
// an expected gameplay outcome; none of them is an error.
type ReportOutcome int

const (
	// ReportInstrumentInactive means the fire-finder was closed; nothing
	// was scanned and the pool was not touched.
	ReportInstrumentInactive ReportOutcome = iota
	// ReportNoFire means the instrument was open but no fire sat within
	// tolerance of the crosshair.
	ReportNoFire
	// ReportFireDetected means a fire was confirmed and extinguished.
	ReportFireDetected
)

// String returns a short display name for the outcome.
func (o ReportOutcome) String() string {
	switch o {
	case ReportInstrumentInactive:
		return "instrument inactive"
	case ReportNoFire:
		return "no fire sighted"
	case ReportFireDetected:
		return "fire confirmed"
	default:
		return "unknown"
	}
}

// ReportResult is what a single report action produced.
type ReportResult struct {
	Outcome  ReportOutcome
	FireID   FireID   // Set when Outcome is ReportFireDetected
	Pos      Position // Position of the confirmed fire
	Distance float64  // Angular distance from crosshair to the fire
}

// AimState is the ephemeral player aim at the instant of a report:
// crosshair position in world angles plus the instrument flag. It is
// produced by the game from input each tick and read-only to the detector.
type AimState struct {
	Azimuth          float64
	Elevation        float64
	InstrumentActive bool
}

// Detector resolves report actions against the fire pool.
type Detector struct {
	tolerance float64
	sink      ReportSink
}

// NewDetector creates a detector with the given angular tolerance.
// A nil sink discards dispatch lines.
func NewDetector(tolerance float64, sink ReportSink) *Detector {
	return &Detector{tolerance: tolerance, sink: sink}
}

// Report resolves one report action. With the instrument closed it returns
// ReportInstrumentInactive and performs no pool mutation. Otherwise it
// scans the active fires for any within tolerance of the crosshair, picks
// the nearest (ties broken by lowest id), extinguishes it and emits the
// dispatch line through the sink.
func (d *Detector) Report(aim AimState, pool *Pool, weather WeatherState, mode string) ReportResult {
	if !aim.InstrumentActive {
		return ReportResult{Outcome: ReportInstrumentInactive}
	}

	found := false
	var best Fire
	var bestDist float64

	for _, f := range pool.Active() {
		da := core.AngleDiff(f.Pos.Azimuth, aim.Azimuth)
		de := f.Pos.Elevation - aim.Elevation
		dist := math.Hypot(da, de)
		if dist > d.tolerance {
			continue
		}
		if !found || dist < bestDist || (dist == bestDist && f.ID < best.ID) {
			found = true
			best = f
			bestDist = dist
		}
	}

	if !found {
		return ReportResult{Outcome: ReportNoFire}
	}

	pool.Extinguish(best.ID)

	if d.sink != nil {
		d.sink.FireReported(ReportRecord{
			FireID:      best.ID,
			Azimuth:     best.Pos.Azimuth,
			Declination: best.Pos.Elevation,
			Weather:     weather,
			Mode:        mode,
		})
	}

	return ReportResult{
		Outcome:  ReportFireDetected,
		FireID:   best.ID,
		Pos:      best.Pos,
		Distance: bestDist,
	}
}
