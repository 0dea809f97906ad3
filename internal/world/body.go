package world

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
)

// BodyKind identifies which celestial variant a Body is.
type BodyKind uint8

const (
	KindStar BodyKind = iota
	KindPlanet
	KindMoon
	KindBlackHole
)

// Display sizes per variant, in canvas units.
const (
	StarSize      = 30
	PlanetSize    = 14
	MoonSize      = 8
	BlackHoleSize = 30

	defaultOrbitPeriod = 60.0
	blackHoleMass      = 5000
)

// Body is any orbitable or placeable object: star, planet, moon or black hole.
// Fields are flat; variant-only fields are zero for the other kinds.
type Body struct {
	Kind        BodyKind
	Name        string
	DisplaySize float64
	Color       uint8 // palette index, cosmetic only

	Mass        float64 // flavor only, never used by kinematics
	OrbitRadius float64
	OrbitPeriod float64 // seconds per full revolution
	Angle       float64 // degrees, [0, 360)
	Pos         r2.Vec  // top-left corner of the sprite

	// Parent is the body this one orbits. Zero for stars and black holes.
	Parent ecs.Entity

	Moons    []ecs.Entity // only for KindPlanet, insertion order
	Resource Ledger       // only for KindPlanet
}

// NewStar returns a star with the variant defaults.
func NewStar(name string, mass float64) Body {
	return Body{Kind: KindStar, Name: name, Mass: mass, DisplaySize: StarSize, OrbitPeriod: defaultOrbitPeriod, Color: ColorGold}
}

// NewPlanet returns a planet orbiting parent.
func NewPlanet(name string, mass, radius, period float64, parent ecs.Entity) Body {
	return Body{
		Kind:        KindPlanet,
		Name:        name,
		Mass:        mass,
		DisplaySize: PlanetSize,
		OrbitRadius: radius,
		OrbitPeriod: period,
		Parent:      parent,
		Color:       ColorSteelBlue,
		Resource:    Ledger{Kind: DefaultResource},
	}
}

// NewMoon returns a moon orbiting the planet parent.
func NewMoon(name string, mass, radius, period float64, parent ecs.Entity) Body {
	return Body{
		Kind:        KindMoon,
		Name:        name,
		Mass:        mass,
		DisplaySize: MoonSize,
		OrbitRadius: radius,
		OrbitPeriod: period,
		Parent:      parent,
		Color:       ColorLightGray,
	}
}

// NewBlackHole returns a black hole fixed at (x, y).
func NewBlackHole(x, y float64) Body {
	return Body{
		Kind:        KindBlackHole,
		Name:        "Black Hole",
		Mass:        blackHoleMass,
		DisplaySize: BlackHoleSize,
		OrbitPeriod: defaultOrbitPeriod,
		Pos:         r2.Vec{X: x, Y: y},
		Color:       ColorVoid,
	}
}

// Center returns the middle of the body's sprite.
func (b *Body) Center() r2.Vec {
	return r2.Add(b.Pos, r2.Vec{X: b.DisplaySize / 2, Y: b.DisplaySize / 2})
}

// Static reports whether the body sits on its anchor instead of orbiting it.
func (b *Body) Static() bool {
	return b.OrbitPeriod <= 0 || b.OrbitRadius <= 0
}

// UpdatePosition advances the orbit by elapsed seconds around anchor, which is
// the parent's position or the fallback center when the body has no parent.
// Calling it twice for the same tick advances the orbit twice.
func (b *Body) UpdatePosition(elapsed float64, anchor r2.Vec) {
	if b.Kind == KindBlackHole {
		return
	}
	if b.Static() {
		b.Pos = anchor
		return
	}

	b.Angle = wrapDegrees(b.Angle + (elapsed/b.OrbitPeriod)*360.0)
	rad := b.Angle * math.Pi / 180.0

	half := b.DisplaySize / 2
	b.Pos = r2.Vec{
		X: anchor.X + b.OrbitRadius*math.Cos(rad) - half,
		Y: anchor.Y + b.OrbitRadius*math.Sin(rad) - half,
	}
}

func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// KindName returns a label for a body variant.
func KindName(k BodyKind) string {
	switch k {
	case KindStar:
		return "Star"
	case KindPlanet:
		return "Planet"
	case KindMoon:
		return "Moon"
	case KindBlackHole:
		return "Black hole"
	default:
		return "Unknown"
	}
}

// ParseKind is the inverse of the lowercase kind names used in preset files.
func ParseKind(s string) (BodyKind, bool) {
	switch s {
	case "star":
		return KindStar, true
	case "planet":
		return KindPlanet, true
	case "moon":
		return KindMoon, true
	case "blackhole", "black_hole":
		return KindBlackHole, true
	default:
		return 0, false
	}
}
