package game

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
)

// BodyAt returns the body whose center is closest to (x, y) within radius,
// or the zero handle.
func (s *Sim) BodyAt(x, y, radius float64) ecs.Entity {
	p := r2.Vec{X: x, Y: y}
	var best ecs.Entity
	bestD := radius
	for _, e := range s.bodies {
		b := s.Body(e)
		if b == nil {
			continue
		}
		if d := r2.Norm(r2.Sub(b.Center(), p)); d <= bestD {
			bestD = d
			best = e
		}
	}
	return best
}

// ShipAt is BodyAt for ships.
func (s *Sim) ShipAt(x, y, radius float64) ecs.Entity {
	p := r2.Vec{X: x, Y: y}
	var best ecs.Entity
	bestD := radius
	for _, e := range s.ships {
		sh := s.Ship(e)
		if sh == nil {
			continue
		}
		if d := r2.Norm(r2.Sub(sh.Center(), p)); d <= bestD {
			bestD = d
			best = e
		}
	}
	return best
}
