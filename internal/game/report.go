package game

import (
	"fmt"
	"io"
)

// ReportRecord is the externally observable result of a confirmed fire
// report: where the fire was and what the weather was when it was called in.
type ReportRecord struct {
	FireID      FireID
	Azimuth     float64
	Declination float64
	Weather     WeatherState
	Mode        string
}

// Line formats the record as the one-line dispatch message printed for
// every confirmed report.
func (r ReportRecord) Line() string {
	return fmt.Sprintf("Fire reported at azimuth %.0f°, declination %.0f° (weather: %s)",
		r.Azimuth, r.Declination, r.Weather)
}

// ReportSink receives confirmed fire reports. The default sink writes the
// dispatch line to stdout; the platform substitutes a sink that also
// journals reports to storage.
type ReportSink interface {
	FireReported(r ReportRecord)
}

// WriterSink writes one dispatch line per report to W.
type WriterSink struct {
	W io.Writer
}

// FireReported implements ReportSink.
func (s WriterSink) FireReported(r ReportRecord) {
	fmt.Fprintln(s.W, r.Line())
}

// MultiSink fans a report out to several sinks.
type MultiSink []ReportSink

// FireReported implements ReportSink.
func (m MultiSink) FireReported(r ReportRecord) {
	for _, s := range m {
		s.FireReported(r)
	}
}
