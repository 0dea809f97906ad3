package game

import (
	"fmt"
	"slices"

	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/missionsim/internal/mission"
	apperrors "github.com/spacehole-rogue/missionsim/internal/shared/errors"
	"github.com/spacehole-rogue/missionsim/internal/world"
	"gonum.org/v1/gonum/spatial/r2"
)

// AddStar creates "Sol" centered on the world center. It does nothing when
// a star already exists and returns the zero handle in that case.
func (s *Sim) AddStar() ecs.Entity {
	if !s.Star().IsZero() {
		return ecs.Entity{}
	}
	b := world.NewStar("Sol", 1000)
	half := b.DisplaySize / 2
	b.Pos = r2.Sub(s.center, r2.Vec{X: half, Y: half})

	e := s.spawnBody(b)
	s.logger.Debug("star added", "name", b.Name)
	return e
}

// AddPlanet puts the next numbered planet in orbit around the star. Each
// new planet is heavier, wider and slower than the last.
func (s *Sim) AddPlanet() ecs.Entity {
	star := s.Star()
	sb := s.Body(star)
	if sb == nil {
		s.Log.Add("No star to orbit. Add a star first.", MsgWarning)
		return ecs.Entity{}
	}

	i := len(s.Planets()) + 1
	b := world.NewPlanet(fmt.Sprintf("Planet %d", i), float64(10*i), float64(60+40*i), float64(30+20*i), star)
	b.UpdatePosition(0, sb.Pos)

	e := s.spawnBody(b)
	s.logger.Debug("planet added", "name", b.Name, "orbit_radius", b.OrbitRadius)
	return e
}

// AddMoon adds a moon to planet, or to the most recent planet when planet
// does not resolve to one.
func (s *Sim) AddMoon(planet ecs.Entity) ecs.Entity {
	if p := s.Body(planet); p == nil || p.Kind != world.KindPlanet {
		planets := s.Planets()
		if len(planets) == 0 {
			s.Log.Add("No planet to put a moon around.", MsgWarning)
			return ecs.Entity{}
		}
		planet = planets[len(planets)-1]
	}
	p := s.Body(planet)

	i := len(p.Moons) + 1
	b := world.NewMoon(fmt.Sprintf("Moon %s-%d", p.Name, i), 1, float64(18+6*i), float64(8+4*i), planet)
	b.UpdatePosition(0, p.Pos)

	e := s.spawnBody(b)
	s.logger.Debug("moon added", "name", b.Name)
	return e
}

// AddShip launches an Explorer beside the star. When a planet exists the
// ship heads for the first one and a matching Transport mission is filed.
func (s *Sim) AddShip() ecs.Entity {
	sh := world.NewShip(world.DefaultShipName, world.DefaultShipSpeed)
	star := s.Star()
	if sb := s.Body(star); sb != nil {
		sh.Pos = dockPos(sb)
		sh.Source = star
	} else {
		sh.Pos = r2.Vec{X: noStarX, Y: noStarY}
	}

	var dest ecs.Entity
	if planets := s.Planets(); len(planets) > 0 {
		dest = planets[0]
		sh.Target = dest
	}

	e := s.spawnShip(sh)
	if !dest.IsZero() {
		desc := fmt.Sprintf("%s -> %s", sh.Name, s.Body(dest).Name)
		m := mission.New(mission.TypeTransport, desc, sh.Source, dest)
		m.Ship = e
		s.Missions = append(s.Missions, m)
	}
	s.logger.Debug("ship added", "name", sh.Name)
	return e
}

// DeleteBody removes a body or a ship. Deleting a planet deletes its moons.
func (s *Sim) DeleteBody(e ecs.Entity) bool {
	if b := s.Body(e); b != nil {
		name := b.Name
		s.removeBody(e)
		s.Log.Addf(MsgInfo, "%s removed.", name)
		return true
	}
	if sh := s.Ship(e); sh != nil {
		name := sh.Name
		s.removeShip(e)
		s.Log.Addf(MsgInfo, "Ship %s removed.", name)
		return true
	}
	return false
}

// BeginPlacingBlackHole arms black hole placement. Only one black hole can
// exist and only in Sandbox mode.
func (s *Sim) BeginPlacingBlackHole() {
	if s.Mode != ModeSandbox || !s.BlackHole().IsZero() {
		return
	}
	s.PlacingBlackHole = true
	s.Log.Add("Click to place the black hole.", MsgWarning)
}

// PlaceBlackHole creates the black hole at (x, y) if placement is armed.
func (s *Sim) PlaceBlackHole(x, y float64) bool {
	if s.Mode != ModeSandbox || !s.PlacingBlackHole {
		return false
	}
	s.PlacingBlackHole = false
	if !s.BlackHole().IsZero() {
		return false
	}

	s.spawnBody(world.NewBlackHole(x, y))
	s.Log.Addf(MsgCritical, "Black hole opened at (%.0f, %.0f).", x, y)
	s.logger.Info("black hole placed", "x", x, "y", y)
	return true
}

// GenerateMissions draws count gather missions over the current planets and
// appends them to the active set. A count of zero or less uses the
// configured batch size.
func (s *Sim) GenerateMissions(count int) []*mission.Mission {
	if count <= 0 {
		count = s.batch
	}

	var candidates []mission.Candidate
	for _, e := range s.Planets() {
		b := s.Body(e)
		c := mission.Candidate{
			Planet:       e,
			Name:         b.Name,
			ResourceKind: b.Resource.Kind,
			Amount:       b.Resource.Amount,
		}
		if s.Body(b.Parent) != nil {
			c.Parent = b.Parent
		}
		candidates = append(candidates, c)
	}

	generated := s.gen.Generate(candidates, count)
	s.Missions = append(s.Missions, generated...)
	if len(generated) > 0 {
		s.Log.Addf(MsgMission, "%d new missions on the board.", len(generated))
	}
	return generated
}

// AcceptMission puts a ship on m and starts it. Missions mode flies the one
// ship; Sandbox picks the first idle ship. Either way a ship is launched
// when none is available. On error the world and m are left as they were.
func (s *Sim) AcceptMission(m *mission.Mission) error {
	if m == nil {
		return apperrors.InvalidOperation("no mission selected")
	}
	if m.Status() != mission.StatusPlanned {
		return apperrors.InvalidOperationf("mission %q is already %s", m.Description, mission.StatusName(m.Status()))
	}
	if s.Body(m.To) == nil {
		return apperrors.InvalidOperationf("mission %q has no destination", m.Description)
	}

	prevShip, prevFrom := m.Ship, m.From
	ship := s.pickShip()
	launched := ship.IsZero()
	if launched {
		ship = s.AddShip()
	}

	err := m.AssignShip(ship)
	if err == nil {
		if sh := s.Ship(ship); sh != nil && s.Body(sh.Source) != nil {
			m.From = sh.Source
		}
		err = m.Start(s)
	}
	if err != nil {
		m.Ship, m.From = prevShip, prevFrom
		if launched {
			s.discardShip(ship)
		}
		s.logger.Warn("mission start failed", "mission", m.ID, "error", err)
		return err
	}

	if !slices.Contains(s.Missions, m) {
		s.Missions = append(s.Missions, m)
	}
	s.Log.Addf(MsgMission, "Accepted: %s (ETA %.1fs).", m.Description, m.EstimatedDuration())
	s.logger.Info("mission accepted", "mission", m.ID, "description", m.Description, "eta", m.EstimatedDuration())
	return nil
}

// discardShip removes a ship together with the missions bound to it.
func (s *Sim) discardShip(e ecs.Entity) {
	s.Missions = slices.DeleteFunc(s.Missions, func(m *mission.Mission) bool { return m.Ship == e })
	s.removeShip(e)
}

func (s *Sim) pickShip() ecs.Entity {
	if s.Mode == ModeMissions {
		if len(s.ships) > 0 {
			return s.ships[0]
		}
		return ecs.Entity{}
	}
	for _, e := range s.ships {
		if sh := s.Ship(e); sh != nil && sh.Idle() {
			return e
		}
	}
	return ecs.Entity{}
}

// ExtractMission pays out a completed mission, draws the gathered resource
// from its planet, docks the ship back at the star and drops the mission
// from the active set. It returns false, changing nothing, when m is not
// ready to extract.
func (s *Sim) ExtractMission(m *mission.Mission) bool {
	if m == nil || !m.CanExtract() {
		return false
	}

	if m.Type == mission.TypeGather {
		if p := s.Body(m.To); p != nil && p.Kind == world.KindPlanet {
			p.Resource.Take(m.ResourceAmount)
		}
	}
	s.Credits += m.Reward
	m.RewardClaimed = true

	if sh := s.Ship(m.Ship); sh != nil {
		star := s.Star()
		if sb := s.Body(star); sb != nil {
			sh.Pos = dockPos(sb)
			sh.Target = ecs.Entity{}
			sh.Source = star
		}
	}

	s.removeMission(m)
	s.Log.Addf(MsgReward, "Mission complete! Earned %d credits.", m.Reward)
	s.logger.Info("mission extracted", "mission", m.ID, "reward", m.Reward, "credits", s.Credits)
	return true
}
