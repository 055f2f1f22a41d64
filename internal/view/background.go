package view

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Perlin parameters for the drift field. Low octave count keeps the flow
// broad and slow instead of jittery.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3

	noiseScale = 0.002
	noiseDrift = 0.04
)

type dustMote struct {
	x, y    float64
	size    float64
	depth   float64 // 0 far .. 1 near, scales speed and brightness
	twinkle float64 // phase offset for the alpha shimmer
}

// dustField is the drifting star-dust layer behind the network. Motes
// follow a slowly evolving Perlin flow field and wrap at the edges.
type dustField struct {
	noise *perlin.Perlin
	motes []dustMote
	w, h  float64
	t     float64
}

func newDustField(w, h float64, count int, seed int64) *dustField {
	rng := rand.New(rand.NewSource(seed))
	f := &dustField{
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
		motes: make([]dustMote, count),
		w:     w,
		h:     h,
	}
	for i := range f.motes {
		f.motes[i] = dustMote{
			x:       rng.Float64() * w,
			y:       rng.Float64() * h,
			size:    0.6 + rng.Float64()*1.6,
			depth:   rng.Float64(),
			twinkle: rng.Float64() * 2 * math.Pi,
		}
	}
	return f
}

func (f *dustField) resize(w, h float64) {
	if w < 1 || h < 1 {
		return
	}
	sx, sy := w/f.w, h/f.h
	for i := range f.motes {
		f.motes[i].x *= sx
		f.motes[i].y *= sy
	}
	f.w, f.h = w, h
}

// step advances the field by one tick. Energy speeds the drift up a little
// so the background stirs when the network is busy.
func (f *dustField) step(energy float64) {
	f.t += 1.0 / 60.0
	speedBase := 0.15 + energy*0.45
	for i := range f.motes {
		m := &f.motes[i]
		n := f.noise.Noise2D(m.x*noiseScale+f.t*noiseDrift, m.y*noiseScale)
		angle := n * 2 * math.Pi
		speed := speedBase * (0.4 + m.depth*0.8)
		m.x += math.Cos(angle) * speed
		m.y += math.Sin(angle)*speed - 0.05*speed // slight upward bias

		if m.x < 0 {
			m.x += f.w
		}
		if m.x >= f.w {
			m.x -= f.w
		}
		if m.y < 0 {
			m.y += f.h
		}
		if m.y >= f.h {
			m.y -= f.h
		}
	}
}

func (f *dustField) draw(dst *ebiten.Image, pal palette) {
	for i := range f.motes {
		m := &f.motes[i]
		shimmer := 0.5 + 0.5*math.Sin(f.t*1.7+m.twinkle)
		alpha := uint8((0.15 + 0.55*m.depth*shimmer) * 255)
		vector.DrawFilledCircle(dst, float32(m.x), float32(m.y), float32(m.size), withAlpha(pal.dust, alpha), false)
	}
}

// drawGradient fills the backdrop with a vertical blend that breathes
// slowly over time.
func drawGradient(dst *ebiten.Image, w, h int, t float64, pal palette) {
	breathe := 0.5 + 0.5*math.Sin(t*0.23)
	for y := 0; y < h; y++ {
		ratio := float64(y) / float64(h)
		c := lerpColor(pal.bgTop, pal.bgBottom, ratio)
		c = scaled(c, 0.85+0.15*breathe)
		vector.StrokeLine(dst, 0, float32(y), float32(w), float32(y), 1, c, false)
	}
}
