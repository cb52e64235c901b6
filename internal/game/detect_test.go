package game

import (
	"bytes"
	"strings"
	"testing"
)

// recordSink captures reports for assertion.
type recordSink struct {
	records []ReportRecord
}

func (s *recordSink) FireReported(r ReportRecord) {
	s.records = append(s.records, r)
}

func poolWithFires(t *testing.T, fires ...Fire) *Pool {
	t.Helper()
	pool := testPool(1, testFireConfig())
	pool.fires = append(pool.fires, fires...)
	for _, f := range fires {
		if f.ID > pool.nextID {
			pool.nextID = f.ID
		}
	}
	return pool
}

func TestReportWithInstrumentClosed(t *testing.T) {
	sink := &recordSink{}
	d := NewDetector(4.0, sink)
	pool := poolWithFires(t, Fire{ID: 1, Pos: Position{Azimuth: 100, Elevation: 5}, Remaining: 30, Lifetime: 30})

	aim := AimState{Azimuth: 100, Elevation: 5, InstrumentActive: false}
	res := d.Report(aim, pool, WeatherClear, "shift")

	if res.Outcome != ReportInstrumentInactive {
		t.Errorf("outcome = %v, expected instrument inactive", res.Outcome)
	}
	if len(pool.Active()) != 1 {
		t.Error("closed-instrument report must not touch the pool")
	}
	if len(sink.records) != 0 {
		t.Error("closed-instrument report must not emit a dispatch line")
	}
}

func TestReportHitWithinTolerance(t *testing.T) {
	sink := &recordSink{}
	d := NewDetector(4.0, sink)
	pool := poolWithFires(t, Fire{ID: 3, Pos: Position{Azimuth: 100, Elevation: 5}, Remaining: 30, Lifetime: 30})

	aim := AimState{Azimuth: 101, Elevation: 4, InstrumentActive: true}
	res := d.Report(aim, pool, WeatherWindy, "shift")

	if res.Outcome != ReportFireDetected {
		t.Fatalf("outcome = %v, expected fire detected", res.Outcome)
	}
	if res.FireID != 3 {
		t.Errorf("FireID = %d, expected 3", res.FireID)
	}
	if len(pool.Active()) != 0 {
		t.Error("confirmed fire was not extinguished")
	}
	if len(sink.records) != 1 {
		t.Fatalf("%d dispatch records, expected 1", len(sink.records))
	}
	rec := sink.records[0]
	if rec.FireID != 3 || rec.Azimuth != 100 || rec.Declination != 5 || rec.Weather != WeatherWindy {
		t.Errorf("dispatch record = %+v", rec)
	}
}

func TestReportMiss(t *testing.T) {
	sink := &recordSink{}
	d := NewDetector(4.0, sink)
	pool := poolWithFires(t, Fire{ID: 1, Pos: Position{Azimuth: 100, Elevation: 5}, Remaining: 30, Lifetime: 30})

	aim := AimState{Azimuth: 180, Elevation: 0, InstrumentActive: true}
	res := d.Report(aim, pool, WeatherClear, "shift")

	if res.Outcome != ReportNoFire {
		t.Errorf("outcome = %v, expected no fire", res.Outcome)
	}
	if len(pool.Active()) != 1 {
		t.Error("missed report must not extinguish anything")
	}
	if len(sink.records) != 0 {
		t.Error("missed report must not emit a dispatch line")
	}
}

func TestReportPicksNearestFire(t *testing.T) {
	d := NewDetector(4.0, nil)
	pool := poolWithFires(t,
		Fire{ID: 1, Pos: Position{Azimuth: 103, Elevation: 0}, Remaining: 30, Lifetime: 30},
		Fire{ID: 2, Pos: Position{Azimuth: 101, Elevation: 0}, Remaining: 30, Lifetime: 30},
	)

	aim := AimState{Azimuth: 100, Elevation: 0, InstrumentActive: true}
	res := d.Report(aim, pool, WeatherClear, "shift")

	if res.Outcome != ReportFireDetected || res.FireID != 2 {
		t.Errorf("got outcome %v fire %d, expected fire 2 (the nearer)", res.Outcome, res.FireID)
	}
	if len(pool.Active()) != 1 || pool.Active()[0].ID != 1 {
		t.Error("only the nearest fire should be extinguished")
	}
}

func TestReportTieBreaksOnLowestID(t *testing.T) {
	d := NewDetector(4.0, nil)
	// Two fires at identical angular distance on opposite sides.
	pool := poolWithFires(t,
		Fire{ID: 7, Pos: Position{Azimuth: 98, Elevation: 0}, Remaining: 30, Lifetime: 30},
		Fire{ID: 4, Pos: Position{Azimuth: 102, Elevation: 0}, Remaining: 30, Lifetime: 30},
	)

	aim := AimState{Azimuth: 100, Elevation: 0, InstrumentActive: true}
	res := d.Report(aim, pool, WeatherClear, "shift")

	if res.FireID != 4 {
		t.Errorf("tie broke to fire %d, expected lowest id 4", res.FireID)
	}
}

func TestReportDistanceWrapsAroundNorth(t *testing.T) {
	d := NewDetector(4.0, nil)
	pool := poolWithFires(t, Fire{ID: 1, Pos: Position{Azimuth: 359, Elevation: 0}, Remaining: 30, Lifetime: 30})

	// 359° is 2° from 1° across the north wrap, well within tolerance.
	aim := AimState{Azimuth: 1, Elevation: 0, InstrumentActive: true}
	res := d.Report(aim, pool, WeatherClear, "shift")

	if res.Outcome != ReportFireDetected {
		t.Fatalf("outcome = %v, expected detection across the 0/360 seam", res.Outcome)
	}
	if res.Distance > 4.0 {
		t.Errorf("distance = %v, expected the wrapped 2°", res.Distance)
	}
}

func TestReportOnEmptyPool(t *testing.T) {
	d := NewDetector(4.0, nil)
	pool := testPool(1, testFireConfig())

	aim := AimState{Azimuth: 100, Elevation: 0, InstrumentActive: true}
	if res := d.Report(aim, pool, WeatherClear, "shift"); res.Outcome != ReportNoFire {
		t.Errorf("outcome = %v, expected no fire on an empty pool", res.Outcome)
	}
}

func TestWriterSinkDispatchLine(t *testing.T) {
	var buf bytes.Buffer
	sink := WriterSink{W: &buf}

	sink.FireReported(ReportRecord{
		FireID:      1,
		Azimuth:     245,
		Declination: -3,
		Weather:     WeatherWindy,
		Mode:        "shift",
	})

	got := strings.TrimRight(buf.String(), "\n")
	want := "Fire reported at azimuth 245°, declination -3° (weather: Windy)"
	if got != want {
		t.Errorf("dispatch line = %q, expected %q", got, want)
	}
}

func TestMultiSinkFansOut(t *testing.T) {
	a := &recordSink{}
	b := &recordSink{}
	m := MultiSink{a, b}

	m.FireReported(ReportRecord{FireID: 2, Azimuth: 10, Weather: WeatherClear})

	if len(a.records) != 1 || len(b.records) != 1 {
		t.Errorf("fan-out reached %d/%d sinks, expected 1/1", len(a.records), len(b.records))
	}
}
