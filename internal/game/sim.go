package game

import (
	"log/slog"
	"slices"

	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/missionsim/internal/config"
	"github.com/spacehole-rogue/missionsim/internal/mission"
	"github.com/spacehole-rogue/missionsim/internal/world"
	"gonum.org/v1/gonum/spatial/r2"
)

// Mode selects which rules the simulation runs under.
type Mode uint8

const (
	ModeSandbox Mode = iota
	ModeMissions
)

// ModeName returns a label for a mode.
func ModeName(m Mode) string {
	switch m {
	case ModeSandbox:
		return "Sandbox"
	case ModeMissions:
		return "Missions"
	default:
		return "Unknown"
	}
}

const (
	logSize = 50
	// ships dock this far past the star's sprite on both axes
	dockOffset = 10
	// where a ship spawns when there is no star to dock at
	noStarX, noStarY = 100, 100
)

// Sim is the mission simulation. It owns all bodies, ships and missions and
// is driven one tick at a time from a single goroutine.
type Sim struct {
	ECS      *ecs.World
	Mode     Mode
	Missions []*mission.Mission
	Credits  int
	Log      *MessageLog
	Ticks    uint64
	Elapsed  float64 // simulated seconds

	// PlacingBlackHole is armed by BeginPlacingBlackHole and cleared by
	// PlaceBlackHole.
	PlacingBlackHole bool

	// TimeScale multiplies wall-clock time into simulated time.
	TimeScale float64

	bodies  []ecs.Entity // insertion order, moons included
	ships   []ecs.Entity
	bodyMap *ecs.Map[world.Body]
	shipMap *ecs.Map[world.Ship]

	center      r2.Vec
	well        world.GravityWell
	gen         *mission.Generator
	batch       int
	normalScale float64
	boostScale  float64
	logger      *slog.Logger
}

// NewSim creates a sandbox with a single star at the world center.
func NewSim(cfg config.Config, logger *slog.Logger) *Sim {
	if logger == nil {
		logger = slog.Default()
	}
	w := ecs.NewWorld(256)

	s := &Sim{
		ECS:       w,
		Mode:      ModeSandbox,
		Log:       NewMessageLog(logSize),
		TimeScale: cfg.Simulation.TimeScale,
		bodyMap:   ecs.NewMap[world.Body](w),
		shipMap:   ecs.NewMap[world.Ship](w),
		center:    r2.Vec{X: cfg.World.CenterX, Y: cfg.World.CenterY},
		well: world.GravityWell{
			InfluenceRadius: cfg.GravityWell.InfluenceRadius,
			DestroyRadius:   cfg.GravityWell.DestroyRadius,
			Strength:        cfg.GravityWell.Strength,
		},
		gen:         mission.NewGenerator(cfg.Seed),
		batch:       cfg.Missions.BatchSize,
		normalScale: cfg.Simulation.TimeScale,
		boostScale:  cfg.Simulation.BoostScale,
		logger:      logger.With("component", "sim"),
	}

	s.AddStar()
	s.Log.Add("Sandbox ready. Add planets, ships and missions.", MsgInfo)
	return s
}

// Body resolves a body handle. It returns nil when the handle is zero, the
// entity was removed, or the entity is not a body.
func (s *Sim) Body(e ecs.Entity) *world.Body {
	if e.IsZero() || !s.ECS.Alive(e) || !s.bodyMap.Has(e) {
		return nil
	}
	return s.bodyMap.Get(e)
}

// Ship resolves a ship handle, nil when absent.
func (s *Sim) Ship(e ecs.Entity) *world.Ship {
	if e.IsZero() || !s.ECS.Alive(e) || !s.shipMap.Has(e) {
		return nil
	}
	return s.shipMap.Get(e)
}

// Bodies returns the live body handles in insertion order. The slice is
// owned by the Sim.
func (s *Sim) Bodies() []ecs.Entity { return s.bodies }

// Ships returns the live ship handles in insertion order.
func (s *Sim) Ships() []ecs.Entity { return s.ships }

// Center is the anchor for bodies without a live parent.
func (s *Sim) Center() r2.Vec { return s.center }

// Star returns the first star, or the zero handle.
func (s *Sim) Star() ecs.Entity { return s.firstOf(world.KindStar) }

// BlackHole returns the black hole, or the zero handle.
func (s *Sim) BlackHole() ecs.Entity { return s.firstOf(world.KindBlackHole) }

// Planets returns every planet in insertion order.
func (s *Sim) Planets() []ecs.Entity {
	var out []ecs.Entity
	for _, e := range s.bodies {
		if b := s.Body(e); b != nil && b.Kind == world.KindPlanet {
			out = append(out, e)
		}
	}
	return out
}

func (s *Sim) firstOf(kind world.BodyKind) ecs.Entity {
	for _, e := range s.bodies {
		if b := s.Body(e); b != nil && b.Kind == kind {
			return e
		}
	}
	return ecs.Entity{}
}

// Boosted reports whether the time scale is at boost speed.
func (s *Sim) Boosted() bool { return s.TimeScale == s.boostScale }

// SetBoost switches between the normal and boost time scales.
func (s *Sim) SetBoost(on bool) {
	if on {
		s.TimeScale = s.boostScale
	} else {
		s.TimeScale = s.normalScale
	}
}

// anchor returns the position a child of parent orbits around.
func (s *Sim) anchor(parent ecs.Entity) r2.Vec {
	if p := s.Body(parent); p != nil {
		return p.Pos
	}
	return s.center
}

// spawnBody stores b and, for moons, registers it with its planet.
func (s *Sim) spawnBody(b world.Body) ecs.Entity {
	e := s.bodyMap.NewEntity(&b)
	s.bodies = append(s.bodies, e)

	if b.Kind == world.KindMoon {
		if p := s.Body(b.Parent); p != nil {
			p.Moons = append(p.Moons, e)
		}
	}
	return e
}

func (s *Sim) spawnShip(sh world.Ship) ecs.Entity {
	e := s.shipMap.NewEntity(&sh)
	s.ships = append(s.ships, e)
	return e
}

// removeBody deletes a body, and a planet's moons with it. Handles to the
// removed entities resolve to nil afterwards.
func (s *Sim) removeBody(e ecs.Entity) bool {
	b := s.Body(e)
	if b == nil {
		return false
	}
	kind, parent := b.Kind, b.Parent
	moons := slices.Clone(b.Moons)

	for _, m := range moons {
		s.removeBody(m)
	}
	if kind == world.KindMoon {
		if p := s.Body(parent); p != nil {
			p.Moons = slices.DeleteFunc(p.Moons, func(m ecs.Entity) bool { return m == e })
		}
	}

	s.bodies = slices.DeleteFunc(s.bodies, func(x ecs.Entity) bool { return x == e })
	s.ECS.RemoveEntity(e)
	return true
}

func (s *Sim) removeShip(e ecs.Entity) bool {
	if s.Ship(e) == nil {
		return false
	}
	s.ships = slices.DeleteFunc(s.ships, func(x ecs.Entity) bool { return x == e })
	s.ECS.RemoveEntity(e)
	return true
}

func (s *Sim) removeMission(m *mission.Mission) {
	s.Missions = slices.DeleteFunc(s.Missions, func(x *mission.Mission) bool { return x == m })
}

// clearWorld removes every ship, body and mission.
func (s *Sim) clearWorld() {
	for _, e := range s.ships {
		if s.ECS.Alive(e) {
			s.ECS.RemoveEntity(e)
		}
	}
	for _, e := range s.bodies {
		if s.ECS.Alive(e) {
			s.ECS.RemoveEntity(e)
		}
	}
	s.ships = nil
	s.bodies = nil
	s.Missions = nil
}

// dockPos is where ships wait beside a star.
func dockPos(star *world.Body) r2.Vec {
	off := star.DisplaySize + dockOffset
	return r2.Add(star.Pos, r2.Vec{X: off, Y: off})
}
