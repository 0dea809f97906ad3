package world

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
)

// Default ship properties.
const (
	DefaultShipName  = "Explorer"
	DefaultShipSpeed = 80.0 // units per simulated second
	ShipSize         = 10

	arrivalRadius = 1.0
)

// Ship moves point-to-point between bodies at constant speed.
type Ship struct {
	Name        string
	Speed       float64
	DisplaySize float64
	Color       uint8
	Pos         r2.Vec

	// Source is the body the ship departed from or is docked at.
	Source ecs.Entity
	// Target is the body the ship is flying to. Zero when idle.
	Target ecs.Entity
}

// NewShip returns a ship with the default size and color.
func NewShip(name string, speed float64) Ship {
	return Ship{Name: name, Speed: speed, DisplaySize: ShipSize, Color: ColorHull}
}

// Center returns the middle of the ship's sprite.
func (s *Ship) Center() r2.Vec {
	return r2.Add(s.Pos, r2.Vec{X: s.DisplaySize / 2, Y: s.DisplaySize / 2})
}

// Idle reports whether the ship has no target.
func (s *Ship) Idle() bool {
	return s.Target.IsZero()
}

// Update steers the ship for one tick. source and target are the resolved
// Source and Target handles, nil when absent.
//
// Without a target the ship rides along with its source. With one it moves
// min(speed*elapsed, distance) toward the target's center and never overshoots.
func (s *Ship) Update(elapsed float64, source, target *Body) {
	if target == nil {
		if source != nil {
			s.Pos = source.Pos
		}
		return
	}

	delta := r2.Sub(target.Center(), s.Center())
	dist := r2.Norm(delta)
	if dist < arrivalRadius {
		return
	}

	t := s.Speed * elapsed / dist
	if t > 1 {
		t = 1
	}
	if t < 0 {
		t = 0
	}
	s.Pos = r2.Add(s.Pos, r2.Scale(t, delta))
}

// DistanceTo returns the center-to-center distance between the ship and b.
func (s *Ship) DistanceTo(b *Body) float64 {
	return r2.Norm(r2.Sub(b.Center(), s.Center()))
}
