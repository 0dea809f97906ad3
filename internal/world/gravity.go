package world

import "gonum.org/v1/gonum/spatial/r2"

// GravityWell is the black hole's attraction field. The pull is inverse
// distance, not inverse square, tuned for a fast visual collapse.
type GravityWell struct {
	InfluenceRadius float64
	DestroyRadius   float64
	Strength        float64
}

// minPullDistance keeps the pull factor finite next to the hole.
const minPullDistance = 0.1

// DefaultGravityWell returns the stock 800/35/900 well.
func DefaultGravityWell() GravityWell {
	return GravityWell{InfluenceRadius: 800, DestroyRadius: 35, Strength: 900}
}

// Pull applies one tick of attraction toward hole to b and reports whether b
// fell inside the destroy radius. A consumed body is not moved; the caller
// removes it once its sweep is finished.
func (g GravityWell) Pull(hole r2.Vec, b *Body, elapsed float64) (consumed bool) {
	delta := r2.Sub(hole, b.Pos)
	dist := r2.Norm(delta)

	if dist < g.DestroyRadius {
		return true
	}
	if dist < g.InfluenceRadius && dist > minPullDistance {
		factor := g.Strength * elapsed / dist
		b.Pos = r2.Add(b.Pos, r2.Scale(factor, delta))
	}
	return false
}
