package game

import (
	"testing"

	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/missionsim/internal/mission"
	apperrors "github.com/spacehole-rogue/missionsim/internal/shared/errors"
	"github.com/spacehole-rogue/missionsim/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

// gatherScene builds a star, a planet 160 units out that practically does
// not move, and a point-sized idle ship docked at the star.
func gatherScene(t *testing.T) (s *Sim, planet, ship ecs.Entity) {
	t.Helper()
	s = newTestSim(t)
	s.Tick(0, ModeSandbox) // settle the star on the center

	planet = s.AddPlanet()
	p := s.Body(planet)
	p.OrbitRadius = 160
	p.OrbitPeriod = 1e12
	p.Resource.Set(world.DefaultResource, 80)
	p.UpdatePosition(0, s.Body(s.Star()).Pos)

	sh := world.NewShip(world.DefaultShipName, world.DefaultShipSpeed)
	sh.DisplaySize = 0
	sh.Source = s.Star()
	ship = s.spawnShip(sh)
	return s, planet, ship
}

func TestGatherMissionEndToEnd(t *testing.T) {
	s, planet, ship := gatherScene(t)
	star := s.Star()

	m := mission.New(mission.TypeGather, "Gather 30 Minerals from Planet 1", star, planet)
	m.ResourceKind = world.DefaultResource
	m.ResourceAmount = 30
	m.Reward = 300

	require.NoError(t, s.AcceptMission(m))
	require.Contains(t, s.Missions, m)
	assert.Equal(t, ship, m.Ship)
	assert.Equal(t, mission.StatusInTransit, m.Status())
	assert.InDelta(t, 160.0, m.InitialDistance(), 1e-6)
	assert.InDelta(t, 2.0, m.EstimatedDuration(), 1e-6)

	for i := 0; i < 200 && m.Status() != mission.StatusCompleted; i++ {
		s.Tick(0.05, s.Mode)
	}
	require.Equal(t, mission.StatusCompleted, m.Status())
	assert.Equal(t, 1.0, m.Progress())
	assert.True(t, s.Ship(ship).Idle())
	assert.Equal(t, planet, s.Ship(ship).Source)

	require.True(t, s.ExtractMission(m))
	assert.Equal(t, 50, s.Body(planet).Resource.Amount)
	assert.Equal(t, 300, s.Credits)
	assert.True(t, m.RewardClaimed)
	assert.NotContains(t, s.Missions, m)

	sh := s.Ship(ship)
	assert.Equal(t, star, sh.Source)
	assert.True(t, sh.Idle())
	assert.Equal(t, r2.Add(s.Body(star).Pos, r2.Vec{X: 40, Y: 40}), sh.Pos)

	// second extraction changes nothing
	assert.False(t, s.ExtractMission(m))
	assert.Equal(t, 300, s.Credits)
	assert.Equal(t, 50, s.Body(planet).Resource.Amount)
}

func TestExtractClampsToReserves(t *testing.T) {
	s, planet, _ := gatherScene(t)
	s.Body(planet).Resource.Set(world.DefaultResource, 10)

	m := mission.New(mission.TypeGather, "big haul", s.Star(), planet)
	m.ResourceAmount = 40
	m.Reward = 120
	require.NoError(t, s.AcceptMission(m))
	for i := 0; i < 200 && m.Status() != mission.StatusCompleted; i++ {
		s.Tick(0.05, s.Mode)
	}

	require.True(t, s.ExtractMission(m))
	assert.Equal(t, 0, s.Body(planet).Resource.Amount)
	assert.Equal(t, 120, s.Credits)
}

func TestExtractRequiresCompletion(t *testing.T) {
	s, planet, _ := gatherScene(t)
	m := mission.New(mission.TypeGather, "early", s.Star(), planet)
	m.ResourceAmount = 10
	m.Reward = 50

	assert.False(t, s.ExtractMission(m), "planned")
	require.NoError(t, s.AcceptMission(m))
	assert.False(t, s.ExtractMission(m), "in transit")
	assert.False(t, s.ExtractMission(nil))

	assert.Zero(t, s.Credits)
	assert.Equal(t, 80, s.Body(planet).Resource.Amount)
	assert.Contains(t, s.Missions, m)
}

func TestExtractTransportPaysWithoutTakingResources(t *testing.T) {
	s, planet, _ := gatherScene(t)
	m := mission.New(mission.TypeTransport, "ferry", s.Star(), planet)
	m.ResourceAmount = 20
	m.Reward = 75

	require.NoError(t, s.AcceptMission(m))
	for i := 0; i < 200 && m.Status() != mission.StatusCompleted; i++ {
		s.Tick(0.05, s.Mode)
	}

	require.True(t, s.ExtractMission(m))
	assert.Equal(t, 75, s.Credits)
	assert.Equal(t, 80, s.Body(planet).Resource.Amount)
}

func TestAcceptMissionRejects(t *testing.T) {
	s, planet, _ := gatherScene(t)

	err := s.AcceptMission(nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInvalidOperation, apperrors.GetType(err))

	m := mission.New(mission.TypeGather, "twice", s.Star(), planet)
	require.NoError(t, s.AcceptMission(m))
	err = s.AcceptMission(m)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInvalidOperation, apperrors.GetType(err))
	assert.Len(t, s.Missions, 1)
}

func TestAcceptMissionDeadDestinationChangesNothing(t *testing.T) {
	s := newTestSim(t)
	planet := s.AddPlanet()
	m := mission.New(mission.TypeGather, "gone", s.Star(), planet)
	require.True(t, s.DeleteBody(planet))

	err := s.AcceptMission(m)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInvalidOperation, apperrors.GetType(err))
	assert.Empty(t, s.Ships())
	assert.Empty(t, s.Missions)
	assert.True(t, m.Ship.IsZero())
	assert.Equal(t, s.Star(), m.From)
	assert.Equal(t, mission.StatusPlanned, m.Status())
}

func TestAcceptMissionFailedStartDiscardsLaunchedShip(t *testing.T) {
	s := newTestSim(t)
	planet := s.AddPlanet()
	// no star, so the launched ship has no source and From stays dead
	require.True(t, s.DeleteBody(s.Star()))
	m := mission.New(mission.TypeGather, "no source", ecs.Entity{}, planet)

	err := s.AcceptMission(m)
	require.Error(t, err)
	assert.Empty(t, s.Ships())
	assert.Empty(t, s.Missions, "the launched ship's transport job goes with it")
	assert.True(t, m.Ship.IsZero())
	assert.True(t, m.From.IsZero())
	assert.Equal(t, mission.StatusPlanned, m.Status())
}

func TestAcceptMissionSandboxPicksIdleShip(t *testing.T) {
	s, planet, first := gatherScene(t)

	a := mission.New(mission.TypeGather, "a", s.Star(), planet)
	b := mission.New(mission.TypeGather, "b", s.Star(), planet)
	require.NoError(t, s.AcceptMission(a))
	require.NoError(t, s.AcceptMission(b))

	assert.Equal(t, first, a.Ship)
	assert.NotEqual(t, first, b.Ship, "first ship is busy")
	require.Len(t, s.Ships(), 2)
	assert.Equal(t, s.Ships()[1], b.Ship)
}

func TestAcceptMissionMissionsModeUsesOnlyShip(t *testing.T) {
	s := newTestSim(t)
	s.SwitchToMissions()
	require.Len(t, s.Ships(), 1)
	require.GreaterOrEqual(t, len(s.Missions), 2)

	ship := s.Ships()[0]
	a, b := s.Missions[0], s.Missions[1]
	require.NoError(t, s.AcceptMission(a))
	require.NoError(t, s.AcceptMission(b))

	assert.Equal(t, ship, a.Ship)
	assert.Equal(t, ship, b.Ship)
	assert.Len(t, s.Ships(), 1)
	assert.Equal(t, b.To, s.Ship(ship).Target)
}

func TestGenerateMissions(t *testing.T) {
	s := newTestSim(t)
	assert.Empty(t, s.GenerateMissions(5), "no planets")

	s.InitializeSystem()
	require.Len(t, s.Planets(), 5)
	require.Len(t, s.Missions, 5)

	star := s.Star()
	for _, m := range s.Missions {
		assert.Equal(t, mission.TypeGather, m.Type)
		assert.Equal(t, star, m.From)
		assert.Contains(t, s.Planets(), m.To)
		assert.Positive(t, m.Reward)
	}

	more := s.GenerateMissions(0)
	assert.Len(t, more, 5, "zero count uses the batch size")
	assert.Len(t, s.Missions, 10)
}

func TestBlackHolePlacement(t *testing.T) {
	s := newTestSim(t)

	assert.False(t, s.PlaceBlackHole(10, 10), "not armed")

	s.BeginPlacingBlackHole()
	require.True(t, s.PlacingBlackHole)
	require.True(t, s.PlaceBlackHole(250, 125))
	assert.False(t, s.PlacingBlackHole)

	hole := s.Body(s.BlackHole())
	require.NotNil(t, hole)
	assert.Equal(t, world.KindBlackHole, hole.Kind)
	assert.Equal(t, "Black Hole", hole.Name)
	assert.Equal(t, r2.Vec{X: 250, Y: 125}, hole.Pos)

	s.BeginPlacingBlackHole()
	assert.False(t, s.PlacingBlackHole, "only one black hole")
}

func TestBlackHolePlacementDisarmsWhenOneExists(t *testing.T) {
	s := newTestSim(t)
	s.BeginPlacingBlackHole()
	s.spawnBody(world.NewBlackHole(0, 0))

	assert.False(t, s.PlaceBlackHole(300, 300))
	assert.False(t, s.PlacingBlackHole)
	assert.Len(t, s.Bodies(), 2)
}

func TestBlackHoleOnlyInSandbox(t *testing.T) {
	s := newTestSim(t)
	s.SwitchToMissions()

	s.BeginPlacingBlackHole()
	assert.False(t, s.PlacingBlackHole)

	s.PlacingBlackHole = true
	assert.False(t, s.PlaceBlackHole(10, 10))
	assert.True(t, s.BlackHole().IsZero())
}
