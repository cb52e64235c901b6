package game

import (
	"fmt"

	"github.com/firetower-arcade/lookout/internal/core"
)

// Render draws the panorama, fires, instrument overlay and HUD.
// The playfield occupies the rows between the top HUD line and the bottom
// status line; columns map linearly onto the field of view around the
// current azimuth, rows onto the vertical span around the horizon.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w := dst.Width()
	h := dst.Height()
	fieldTop := 1
	fieldBottom := h - 2
	fieldH := fieldBottom - fieldTop + 1
	if w < 20 || fieldH < 6 {
		dst.DrawTextCentered(h/2, "Terminal too small")
		return
	}

	g.drawLandscape(dst, w, fieldTop, fieldBottom, fieldH)
	g.drawFires(dst, w, fieldTop, fieldBottom, fieldH)

	if g.instrument {
		g.drawInstrument(dst, w, fieldTop, fieldBottom, fieldH)
	}

	g.drawHUD(dst, w, h)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "SHIFT OVER",
			fmt.Sprintf("Score: %d  |  Reported: %d  Missed: %d  |  Press R to restart",
				g.score, g.reported, g.missed))
	}
}

// colForAzimuth maps a world azimuth to a screen column, or -1 when it is
// outside the field of view.
func (g *Game) colForAzimuth(az float64, w int) int {
	rel := core.AngleDiff(az, g.azimuth)
	half := g.cfg.View.FOV / 2
	if rel < -half || rel >= half {
		return -1
	}
	return int((rel + half) / g.cfg.View.FOV * float64(w))
}

// azimuthForCol maps a screen column center back to a world azimuth.
func (g *Game) azimuthForCol(x, w int) float64 {
	half := g.cfg.View.FOV / 2
	return core.WrapDeg(g.azimuth - half + g.cfg.View.FOV*(float64(x)+0.5)/float64(w))
}

// rowForElevation maps an elevation to a playfield row (top = highest).
func (g *Game) rowForElevation(elev float64, fieldTop, fieldH int) int {
	half := g.cfg.View.VertSpan / 2
	frac := (half - elev) / g.cfg.View.VertSpan
	return fieldTop + int(frac*float64(fieldH-1)+0.5)
}

// drawLandscape renders the two ridge layers column by column: the far
// ridge in haze gray, the mid ridge in green, water glyphs in the gaps.
func (g *Game) drawLandscape(dst *core.Screen, w, fieldTop, fieldBottom, fieldH int) {
	for x := 0; x < w; x++ {
		az := g.azimuthForCol(x, w)

		if g.terrain.HasRidge(LayerFar, az) {
			top := g.rowForElevation(g.terrain.RidgeElevation(LayerFar, az), fieldTop, fieldH)
			for y := core.Max(top, fieldTop); y <= fieldBottom; y++ {
				dst.SetCell(x, y, FarRidgeChar, core.ColorGray)
			}
		}

		if g.terrain.HasRidge(LayerMid, az) {
			top := g.rowForElevation(g.terrain.RidgeElevation(LayerMid, az), fieldTop, fieldH)
			for y := core.Max(top, fieldTop); y <= fieldBottom; y++ {
				dst.SetCell(x, y, MidRidgeChar, core.ColorGreen)
			}
		} else {
			// Mid-layer gap: water at the valley floor.
			horizon := g.rowForElevation(-g.cfg.View.VertSpan/2+2, fieldTop, fieldH)
			for y := core.Max(horizon, fieldTop); y <= fieldBottom; y++ {
				dst.SetCell(x, y, WaterChar, core.ColorBlue)
			}
		}
	}
}

// drawFires renders every visible fire with a smoke column above it.
// Fires close to burning out fade from bright red to yellow.
func (g *Game) drawFires(dst *core.Screen, w, fieldTop, fieldBottom, fieldH int) {
	for _, f := range g.pool.Active() {
		x := g.colForAzimuth(f.Pos.Azimuth, w)
		if x < 0 {
			continue
		}
		y := g.rowForElevation(f.Pos.Elevation, fieldTop, fieldH)
		if y < fieldTop || y > fieldBottom {
			continue
		}

		color := core.ColorBrightRed
		if f.Lifetime > 0 && f.Remaining/f.Lifetime < 0.25 {
			color = core.ColorYellow
		}
		dst.SetCell(x, y, FireChar, color)

		// Smoke drifts up one or two cells above the flame.
		dst.SetCell(x, y-1, SmokeChar, core.ColorGray)
		if f.Layer == LayerMid {
			dst.SetCell(x, y-2, SmokeChar, core.ColorGray)
		}
	}
}

// drawInstrument renders the Osborne fire-finder overlay: crosshair at the
// view center, elevation ticks, and the target readout line.
func (g *Game) drawInstrument(dst *core.Screen, w, fieldTop, fieldBottom, fieldH int) {
	cx := w / 2
	cy := g.rowForElevation(g.aimElev, fieldTop, fieldH)
	cy = core.Clamp(cy, fieldTop, fieldBottom)

	for y := fieldTop; y <= fieldBottom; y += 3 {
		if y != cy {
			dst.SetCell(cx, y, TickChar, core.ColorGray)
		}
	}
	dst.SetCell(cx-1, cy, '─', core.ColorBrightYellow)
	dst.SetCell(cx+1, cy, '─', core.ColorBrightYellow)
	dst.SetCell(cx, cy, CrosshairChar, core.ColorBrightYellow)

	readout := fmt.Sprintf(" Target azimuth %.0f°, declination %.0f°  |  Weather: %s ",
		g.azimuth, g.aimElev, g.weather.Current())
	dst.DrawTextColored(1, dst.Height()-1, readout, core.ColorBrightWhite)
}

// drawHUD renders the top status line and any transient flashes.
func (g *Game) drawHUD(dst *core.Screen, w, h int) {
	hud := fmt.Sprintf(" Score: %d  Reported: %d  Missed: %d  Weather: %s",
		g.score, g.reported, g.missed, g.weather.Current())
	if g.mode == ModeShift {
		mins := int(g.shiftRemaining) / 60
		secs := int(g.shiftRemaining) % 60
		hud += fmt.Sprintf("  Shift: %02d:%02d", mins, secs)
	}
	dst.DrawText(1, 0, hud)

	if !g.instrument {
		hint := " ←/→ pan  O open fire-finder  Q quit "
		dst.DrawTextColored(1, h-1, hint, core.ColorGray)
	}

	if g.weatherTicks > 0 {
		msg := fmt.Sprintf(" Weather shifting: %s ", g.announcedState)
		dst.DrawTextColored((w-len([]rune(msg)))/2, 1, msg, core.ColorBrightCyan)
	}

	if g.outcomeTicks > 0 {
		var msg string
		var color core.Color
		switch g.lastOutcome {
		case ReportFireDetected:
			msg = fmt.Sprintf(" Fire confirmed at azimuth %.0f°! ", g.lastReport.Pos.Azimuth)
			color = core.ColorBrightGreen
		case ReportNoFire:
			msg = " No fire sighted "
			color = core.ColorYellow
		case ReportInstrumentInactive:
			msg = " Open the fire-finder first (O) "
			color = core.ColorBrightRed
		}
		dst.DrawTextColored((w-len([]rune(msg)))/2, 2, msg, color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
