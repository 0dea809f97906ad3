package game

import "github.com/spacehole-rogue/missionsim/internal/world"

// Missions mode starts with this many planets and a single ship.
const missionPlanets = 5

// SwitchToMissions rebuilds the world for Missions mode: one star, five
// planets with growing mineral reserves, one Explorer docked at the star and
// a fresh batch of missions.
func (s *Sim) SwitchToMissions() {
	s.clearWorld()
	s.PlacingBlackHole = false

	s.AddStar()
	for range missionPlanets {
		s.AddPlanet()
	}
	for i, e := range s.Planets() {
		s.Body(e).Resource.Set(world.DefaultResource, 60+25*(i+1))
	}

	sh := world.NewShip(world.DefaultShipName, world.DefaultShipSpeed)
	star := s.Star()
	if sb := s.Body(star); sb != nil {
		sh.Pos = dockPos(sb)
		sh.Source = star
	}
	s.spawnShip(sh)

	s.GenerateMissions(s.batch)
	s.Mode = ModeMissions

	s.Log.Add("Missions mode. Pick a job from the board.", MsgInfo)
	s.logger.Info("switched mode", "mode", ModeName(s.Mode), "missions", len(s.Missions))
}

// SwitchToSandbox drops every mission and keeps the bodies.
func (s *Sim) SwitchToSandbox() {
	s.Missions = nil
	s.Mode = ModeSandbox

	s.Log.Add("Sandbox mode.", MsgInfo)
	s.logger.Info("switched mode", "mode", ModeName(s.Mode))
}

// ResetSandbox returns to a fresh sandbox: normal speed, no pending black
// hole placement, one star and three planets.
func (s *Sim) ResetSandbox() {
	if s.Mode != ModeSandbox {
		s.SwitchToSandbox()
	}
	s.SetBoost(false)
	s.PlacingBlackHole = false
	s.clearWorld()

	s.AddStar()
	for range 3 {
		s.AddPlanet()
	}
	s.Log.Add("Sandbox reset.", MsgWarning)
}

// InitializeSystem adds five planets, stocks every planet with minerals and
// posts a batch of missions.
func (s *Sim) InitializeSystem() {
	for range missionPlanets {
		s.AddPlanet()
	}
	for i, e := range s.Planets() {
		s.Body(e).Resource.Set(world.DefaultResource, 50+30*(i+1))
	}
	s.GenerateMissions(s.batch)
}
