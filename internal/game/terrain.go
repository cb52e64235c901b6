package game

import (
	"math"
	"math/rand"
)

// Layer identifies which parallax ridge a position sits on.
type Layer int

const (
	LayerFar Layer = iota
	LayerMid

	layerCount = 2
)

// String returns the display name of the layer.
func (l Layer) String() string {
	if l == LayerFar {
		return "far"
	}
	return "mid"
}

// Terrain is the deterministic 360° landscape around the tower: two ridge
// lines (far and mid) sampled per degree of azimuth, with occasional gaps
// (lakes, valleys) where no fire can sit. Elevation is in degrees relative
// to the horizon; the far ridge sits above the mid one.
type Terrain struct {
	ridges  [layerCount][360]float64
	present [layerCount][360]bool
}

// NewTerrain generates the landscape from the shared game RNG, so the same
// seed always produces the same ridges.
func NewTerrain(rng *rand.Rand) *Terrain {
	t := &Terrain{}
	t.generateLayer(rng, LayerFar, 6.0, 4.0)
	t.generateLayer(rng, LayerMid, -4.0, 6.0)
	return t
}

// generateLayer builds one ridge line as a sum of low-frequency sinusoids
// with random phases, then carves a few gaps.
func (t *Terrain) generateLayer(rng *rand.Rand, l Layer, base, amplitude float64) {
	// Three harmonics keep the line rolling without looking periodic.
	p1 := rng.Float64() * 2 * math.Pi
	p2 := rng.Float64() * 2 * math.Pi
	p3 := rng.Float64() * 2 * math.Pi

	for deg := 0; deg < 360; deg++ {
		a := float64(deg) * math.Pi / 180
		h := 0.55*math.Sin(2*a+p1) + 0.3*math.Sin(5*a+p2) + 0.15*math.Sin(9*a+p3)
		t.ridges[l][deg] = base + amplitude*h
		t.present[l][deg] = true
	}

	// Carve 2-4 gaps of 5-15 degrees where no ridge exists.
	gaps := 2 + rng.Intn(3)
	for i := 0; i < gaps; i++ {
		start := rng.Intn(360)
		width := 5 + rng.Intn(11)
		for d := 0; d < width; d++ {
			t.present[l][(start+d)%360] = false
		}
	}
}

// HasRidge reports whether the layer has terrain at the given azimuth.
func (t *Terrain) HasRidge(l Layer, azimuth float64) bool {
	return t.present[l][degIndex(azimuth)]
}

// RidgeElevation returns the ridge-top elevation in degrees at the given
// azimuth. Only meaningful where HasRidge is true.
func (t *Terrain) RidgeElevation(l Layer, azimuth float64) float64 {
	return t.ridges[l][degIndex(azimuth)]
}

func degIndex(azimuth float64) int {
	d := int(math.Floor(azimuth)) % 360
	if d < 0 {
		d += 360
	}
	return d
}
