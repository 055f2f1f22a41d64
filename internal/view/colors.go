package view

import (
	"fmt"
	"image/color"
	"time"
)

// palette groups the accent colors of one visual theme. Signal colors are
// fixed by the simulation; the palette drives everything else.
type palette struct {
	name     string
	bgTop    color.RGBA
	bgBottom color.RGBA
	node     color.RGBA
	nodeRing color.RGBA
	loadDot  color.RGBA
	strand   color.RGBA
	accent   color.RGBA
	dust     color.RGBA
}

func paletteByName(name string) palette {
	switch name {
	case "ember":
		return palette{
			name:     "ember",
			bgTop:    color.RGBA{R: 20, G: 8, B: 8, A: 255},
			bgBottom: color.RGBA{R: 32, G: 13, B: 6, A: 255},
			node:     color.RGBA{R: 255, G: 170, B: 110, A: 255},
			nodeRing: color.RGBA{R: 255, G: 212, B: 150, A: 255},
			loadDot:  color.RGBA{R: 255, G: 140, B: 0, A: 255},
			strand:   color.RGBA{R: 180, G: 100, B: 70, A: 255},
			accent:   color.RGBA{R: 255, G: 150, B: 60, A: 255},
			dust:     color.RGBA{R: 255, G: 202, B: 160, A: 255},
		}
	case "mono":
		return palette{
			name:     "mono",
			bgTop:    color.RGBA{R: 10, G: 10, B: 12, A: 255},
			bgBottom: color.RGBA{R: 19, G: 19, B: 22, A: 255},
			node:     color.RGBA{R: 210, G: 210, B: 220, A: 255},
			nodeRing: color.RGBA{R: 240, G: 240, B: 245, A: 255},
			loadDot:  color.RGBA{R: 255, G: 176, B: 32, A: 255},
			strand:   color.RGBA{R: 120, G: 120, B: 130, A: 255},
			accent:   color.RGBA{R: 200, G: 200, B: 210, A: 255},
			dust:     color.RGBA{R: 160, G: 160, B: 170, A: 255},
		}
	default:
		return palette{
			name:     "neon",
			bgTop:    color.RGBA{R: 8, G: 10, B: 24, A: 255},
			bgBottom: color.RGBA{R: 17, G: 8, B: 34, A: 255},
			node:     color.RGBA{R: 120, G: 190, B: 255, A: 255},
			nodeRing: color.RGBA{R: 170, G: 225, B: 255, A: 255},
			loadDot:  color.RGBA{R: 255, G: 176, B: 32, A: 255},
			strand:   color.RGBA{R: 90, G: 130, B: 200, A: 255},
			accent:   color.RGBA{R: 64, G: 224, B: 255, A: 255},
			dust:     color.RGBA{R: 180, G: 200, B: 255, A: 255},
		}
	}
}

// withAlpha returns c with its alpha replaced.
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// scaled returns c with the color channels multiplied by f in [0,1].
func scaled(c color.RGBA, f float64) color.RGBA {
	f = clamp01(f)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// lerpColor blends a toward b by t in [0,1].
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
