package game

// Snapshot captures the observable simulation state for determinism
// testing and replay comparison.
type Snapshot struct {
	Tick        uint64
	Mode        string
	Score       int
	Reported    int
	Missed      int
	Weather     WeatherState
	ActiveFires int
	NextFireID  FireID
	SpawnTimer  float64
	Azimuth     float64
	AimElev     float64
	Instrument  bool
	GameOver    bool
	Paused      bool
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Mode:        string(g.mode),
		Score:       g.score,
		Reported:    g.reported,
		Missed:      g.missed,
		Weather:     g.weather.Current(),
		ActiveFires: len(g.pool.Active()),
		NextFireID:  g.pool.nextID,
		SpawnTimer:  g.pool.sinceSpawn,
		Azimuth:     g.azimuth,
		AimElev:     g.aimElev,
		Instrument:  g.instrument,
		GameOver:    g.gameOver,
		Paused:      g.paused,
	}
}
