package field

import (
	"math"
	"math/rand"
	"time"
)

// Tuning holds the knobs that shape the dot field. All distances are in
// layout pixels.
type Tuning struct {
	Divisor         float64 // area per dot on wide windows
	NarrowDivisor   float64 // area per dot on narrow windows (denser)
	NarrowWidth     float64 // below this width the narrow divisor applies
	MaxDots         int
	LinkDistance    float64 // farther pairs are not linked
	MaxLinkAlpha    float64 // link opacity at distance zero
	Speed           float64 // per-axis velocity magnitude limit
	MinRadius       float64
	MaxRadius       float64
	RepopulateDelta float64 // width change that forces a fresh population
}

func DefaultTuning() Tuning {
	return Tuning{
		Divisor:         20000,
		NarrowDivisor:   12000,
		NarrowWidth:     768,
		MaxDots:         150,
		LinkDistance:    150,
		MaxLinkAlpha:    0.3,
		Speed:           0.3,
		MinRadius:       1,
		MaxRadius:       3,
		RepopulateDelta: 50,
	}
}

// Particle is a single moving dot.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Link connects two dots by index into Field.Dots, with the opacity the
// line should be drawn at.
type Link struct {
	A, B  int
	Alpha float64
}

// Field owns the dot population for a width x height area. Height covers
// the whole scrollable content, not just the visible window.
type Field struct {
	Width, Height float64
	Dots          []*Particle
	Tuning        Tuning

	rng *rand.Rand
}

func New(width, height float64, t Tuning) *Field {
	f := &Field{
		Width:  width,
		Height: height,
		Tuning: t,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	f.Populate()
	return f
}

// DotCount derives the population size from the covered area, denser on
// narrow windows, capped so the pairwise link scan stays cheap.
func (f *Field) DotCount() int {
	div := f.Tuning.Divisor
	if f.Width < f.Tuning.NarrowWidth {
		div = f.Tuning.NarrowDivisor
	}
	n := int(f.Width * f.Height / div)
	if n > f.Tuning.MaxDots {
		n = f.Tuning.MaxDots
	}
	return n
}

// Populate discards the current dots and scatters a fresh set.
func (f *Field) Populate() {
	n := f.DotCount()
	f.Dots = make([]*Particle, 0, n)
	for i := 0; i < n; i++ {
		f.Dots = append(f.Dots, &Particle{
			X:      f.rng.Float64() * f.Width,
			Y:      f.rng.Float64() * f.Height,
			VX:     (f.rng.Float64()*2 - 1) * f.Tuning.Speed,
			VY:     (f.rng.Float64()*2 - 1) * f.Tuning.Speed,
			Radius: f.Tuning.MinRadius + f.rng.Float64()*(f.Tuning.MaxRadius-f.Tuning.MinRadius),
		})
	}
}

// Resize updates the covered area. The population is rebuilt only when
// the width moved by more than RepopulateDelta; height-only growth (new
// content below the fold, on-screen keyboards) keeps the dots in place
// so there is no visible discontinuity. Reports whether it repopulated.
func (f *Field) Resize(width, height float64) bool {
	repopulate := math.Abs(width-f.Width) > f.Tuning.RepopulateDelta
	f.Width = width
	f.Height = height
	if repopulate {
		f.Populate()
	}
	return repopulate
}

// Step advances every dot by its velocity with a reflective bounce at
// the edges. The coordinate is clamped back in the same step so a dot
// can never drift outside [0, dim].
func (f *Field) Step() {
	for _, d := range f.Dots {
		d.X += d.VX
		d.Y += d.VY
		if d.X < 0 || d.X > f.Width {
			d.VX = -d.VX
			d.X = clamp(d.X, 0, f.Width)
		}
		if d.Y < 0 || d.Y > f.Height {
			d.VY = -d.VY
			d.Y = clamp(d.Y, 0, f.Height)
		}
	}
}

// Links scans every unordered pair and returns the ones close enough to
// draw, brightest at distance zero and fading to nothing at
// LinkDistance. The squared-distance filter runs first so the square
// root is only paid for pairs that pass. Pair order is i < j over the
// slice, so output order is deterministic for a given population.
func (f *Field) Links() []Link {
	maxDist := f.Tuning.LinkDistance
	maxDistSq := maxDist * maxDist
	var links []Link
	for i := 0; i < len(f.Dots); i++ {
		for j := i + 1; j < len(f.Dots); j++ {
			dx := f.Dots[i].X - f.Dots[j].X
			dy := f.Dots[i].Y - f.Dots[j].Y
			distSq := dx*dx + dy*dy
			if distSq >= maxDistSq {
				continue
			}
			dist := math.Sqrt(distSq)
			links = append(links, Link{
				A:     i,
				B:     j,
				Alpha: (1 - dist/maxDist) * f.Tuning.MaxLinkAlpha,
			})
		}
	}
	return links
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
