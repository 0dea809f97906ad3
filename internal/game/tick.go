package game

import (
	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/missionsim/internal/mission"
	"github.com/spacehole-rogue/missionsim/internal/world"
)

// Tick advances the simulation by elapsed simulated seconds under mode.
//
// Orbits run first, then ships, then the black hole's pull, then missions.
// While a black hole exists in Sandbox mode orbits are frozen and only the
// gravity well moves bodies.
func (s *Sim) Tick(elapsed float64, mode Mode) {
	s.Ticks++
	s.Elapsed += elapsed

	hole := s.BlackHole()
	gravity := mode == ModeSandbox && !hole.IsZero()

	if !gravity {
		s.tickOrbits(elapsed)
	}
	s.tickShips(elapsed)
	if gravity {
		s.applyGravityWell(hole, elapsed)
	}
	s.tickMissions(elapsed)
}

// tickOrbits moves every body around its anchor. A planet also moves its
// moons right after itself, so a moon advances once through its planet and
// once through the body list.
func (s *Sim) tickOrbits(elapsed float64) {
	for _, e := range s.bodies {
		b := s.Body(e)
		if b == nil || b.Kind == world.KindBlackHole {
			continue
		}
		b.UpdatePosition(elapsed, s.anchor(b.Parent))

		if b.Kind != world.KindPlanet {
			continue
		}
		for _, m := range b.Moons {
			if moon := s.Body(m); moon != nil {
				moon.UpdatePosition(elapsed, b.Pos)
			}
		}
	}
}

func (s *Sim) tickShips(elapsed float64) {
	for _, e := range s.ships {
		sh := s.Ship(e)
		if sh == nil {
			continue
		}
		target := s.Body(sh.Target)
		if target == nil && !sh.Target.IsZero() {
			// target was swallowed or deleted
			sh.Target = ecs.Entity{}
		}
		sh.Update(elapsed, s.Body(sh.Source), target)
	}
}

func (s *Sim) tickMissions(elapsed float64) {
	for _, m := range s.Missions {
		if m.Status() != mission.StatusInTransit {
			continue
		}
		if m.AdvanceTime(s, elapsed) {
			s.Log.Addf(MsgMission, "Arrived: %s. Ready to extract.", m.Description)
			s.logger.Info("mission completed", "mission", m.ID, "description", m.Description, "elapsed", s.Elapsed)
		}
	}
}
