package view

import (
	"fmt"
	"image/color"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	cardMargin  = 14
	cardHeight  = 118
	cardPadding = 10

	// Energy samples kept for the trend sparkline, about 1.5s at 60 TPS.
	trendWindow = 90

	trendUpThreshold = 0.02
)

func (v *View) drawDashboard(dst *ebiten.Image) {
	m := v.snap.Metrics
	w := v.width
	cardW := w - 2*cardMargin
	cardX := cardMargin
	cardY := v.height - cardHeight - cardMargin

	vector.DrawFilledRect(dst, float32(cardX), float32(cardY), float32(cardW), float32(cardHeight), color.RGBA{R: 10, G: 14, B: 22, A: 215}, false)
	vector.StrokeRect(dst, float32(cardX), float32(cardY), float32(cardW), float32(cardHeight), 1, withAlpha(v.pal.accent, 90), false)

	// Badge row: label above value, four columns.
	type badge struct {
		label string
		value string
		bar   float64 // -1 for no bar
	}
	badges := []badge{
		{"ENERGY", fmt.Sprintf("%d%%", int(m.Energy*100+0.5)), m.Energy},
		{"FLOW", fmt.Sprintf("%d%%", int(m.Flow*100+0.5)), m.Flow},
		{"SPEED", humanize.Comma(int64(m.Speed)) + "/s", -1},
		{"ACC", fmt.Sprintf("%.1f%%", m.Accuracy*100), -1},
	}
	cellW := (cardW - 2*cardPadding) / len(badges)
	rowY := cardY + cardPadding
	for i, b := range badges {
		cellX := cardX + cardPadding + i*cellW
		ebitenutil.DebugPrintAt(dst, b.label, cellX, rowY)
		ebitenutil.DebugPrintAt(dst, b.value, cellX, rowY+14)
		if b.bar >= 0 {
			barW := float64(cellW - 12)
			vector.DrawFilledRect(dst, float32(cellX), float32(rowY+30), float32(barW), 3, withAlpha(v.pal.accent, 60), false)
			vector.DrawFilledRect(dst, float32(cellX), float32(rowY+30), float32(barW*b.bar), 3, v.pal.accent, false)
		}
	}

	v.drawSparkline(dst, cardX+cardPadding, rowY+42, cardW-2*cardPadding-30, 26)
	ebitenutil.DebugPrintAt(dst, trendGlyph(v.energyHist), cardX+cardW-cardPadding-14, rowY+50)

	footer := fmt.Sprintf("TIME %s | %s samples", formatDuration(m.Elapsed), humanize.Comma(m.Samples))
	ebitenutil.DebugPrintAt(dst, footer, cardX+cardPadding, cardY+cardHeight-20)
}

// drawSparkline plots the recent energy history into the given rect.
func (v *View) drawSparkline(dst *ebiten.Image, x, y, w, h int) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, withAlpha(v.pal.accent, 40), false)

	hist := v.energyHist
	if len(hist) < 2 {
		return
	}
	stepX := float64(w) / float64(trendWindow-1)
	prevX := float64(x)
	prevY := float64(y+h) - hist[0]*float64(h)
	for i := 1; i < len(hist); i++ {
		curX := float64(x) + float64(i)*stepX
		curY := float64(y+h) - hist[i]*float64(h)
		vector.StrokeLine(dst, float32(prevX), float32(prevY), float32(curX), float32(curY), 1, v.pal.accent, false)
		prevX, prevY = curX, curY
	}
}

// trendGlyph summarizes the history direction: "^" rising, "v" falling,
// "-" flat or not enough data.
func trendGlyph(hist []float64) string {
	if len(hist) < 10 {
		return "-"
	}
	half := len(hist) / 2
	var early, late float64
	for _, e := range hist[:half] {
		early += e
	}
	for _, e := range hist[half:] {
		late += e
	}
	early /= float64(half)
	late /= float64(len(hist) - half)

	switch {
	case late-early > trendUpThreshold:
		return "^"
	case early-late > trendUpThreshold:
		return "v"
	default:
		return "-"
	}
}

func (v *View) pushEnergy(e float64) {
	v.energyHist = append(v.energyHist, e)
	if len(v.energyHist) > trendWindow {
		v.energyHist = v.energyHist[1:]
	}
}

func (v *View) drawStatus(dst *ebiten.Image) {
	status := "M: metrics  S: screenshot  Space: pause  Esc/Q: quit"
	if v.paused {
		status = "Paused - " + status
	}
	if v.lastErr != nil {
		status += " | Error: " + v.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(dst, status, 12, 12)
}
