package game

import (
	"testing"

	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/missionsim/internal/config"
	"github.com/spacehole-rogue/missionsim/internal/mission"
	apperrors "github.com/spacehole-rogue/missionsim/internal/shared/errors"
	"github.com/spacehole-rogue/missionsim/internal/shared/logger"
	"github.com/spacehole-rogue/missionsim/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func newTestSim(t *testing.T) *Sim {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 42
	return NewSim(cfg, logger.Discard())
}

func TestNewSimStartsWithStar(t *testing.T) {
	s := newTestSim(t)

	require.Len(t, s.Bodies(), 1)
	assert.Equal(t, ModeSandbox, s.Mode)
	assert.Empty(t, s.Ships())
	assert.Empty(t, s.Missions)

	star := s.Body(s.Star())
	require.NotNil(t, star)
	assert.Equal(t, "Sol", star.Name)
	assert.Equal(t, 1000.0, star.Mass)
	assert.Equal(t, r2.Vec{X: 400, Y: 300}, star.Center())
}

func TestAddStarOnlyOnce(t *testing.T) {
	s := newTestSim(t)

	assert.True(t, s.AddStar().IsZero())
	assert.Len(t, s.Bodies(), 1)
}

func TestAddPlanetSequence(t *testing.T) {
	s := newTestSim(t)
	star := s.Star()

	first := s.Body(s.AddPlanet())
	require.NotNil(t, first)
	assert.Equal(t, "Planet 1", first.Name)
	assert.Equal(t, 10.0, first.Mass)
	assert.Equal(t, 100.0, first.OrbitRadius)
	assert.Equal(t, 50.0, first.OrbitPeriod)
	assert.Equal(t, star, first.Parent)
	assert.Equal(t, world.DefaultResource, first.Resource.Kind)

	second := s.Body(s.AddPlanet())
	require.NotNil(t, second)
	assert.Equal(t, "Planet 2", second.Name)
	assert.Equal(t, 140.0, second.OrbitRadius)
	assert.Equal(t, 70.0, second.OrbitPeriod)
	assert.Len(t, s.Planets(), 2)
}

func TestAddPlanetNeedsStar(t *testing.T) {
	s := newTestSim(t)
	require.True(t, s.DeleteBody(s.Star()))

	assert.True(t, s.AddPlanet().IsZero())
	assert.Empty(t, s.Bodies())
}

func TestAddMoon(t *testing.T) {
	s := newTestSim(t)
	assert.True(t, s.AddMoon(ecs.Entity{}).IsZero(), "no planet yet")

	p1 := s.AddPlanet()
	p2 := s.AddPlanet()

	// falls back to the last planet
	m := s.AddMoon(ecs.Entity{})
	moon := s.Body(m)
	require.NotNil(t, moon)
	assert.Equal(t, "Moon Planet 2-1", moon.Name)
	assert.Equal(t, 24.0, moon.OrbitRadius)
	assert.Equal(t, 12.0, moon.OrbitPeriod)
	assert.Equal(t, p2, moon.Parent)
	assert.Equal(t, []ecs.Entity{m}, s.Body(p2).Moons)

	// a star is not a planet, same fallback
	s.AddMoon(s.Star())
	assert.Len(t, s.Body(p2).Moons, 2)

	s.AddMoon(p1)
	require.Len(t, s.Body(p1).Moons, 1)
	assert.Equal(t, "Moon Planet 1-1", s.Body(s.Body(p1).Moons[0]).Name)
}

func TestAddShipFilesTransportMission(t *testing.T) {
	s := newTestSim(t)
	planet := s.AddPlanet()

	e := s.AddShip()
	sh := s.Ship(e)
	require.NotNil(t, sh)
	assert.Equal(t, world.DefaultShipName, sh.Name)
	assert.Equal(t, world.DefaultShipSpeed, sh.Speed)
	assert.Equal(t, s.Star(), sh.Source)
	assert.Equal(t, planet, sh.Target)

	star := s.Body(s.Star())
	assert.Equal(t, r2.Add(star.Pos, r2.Vec{X: 40, Y: 40}), sh.Pos)

	require.Len(t, s.Missions, 1)
	m := s.Missions[0]
	assert.Equal(t, mission.TypeTransport, m.Type)
	assert.Equal(t, mission.StatusPlanned, m.Status())
	assert.Equal(t, "Explorer -> Planet 1", m.Description)
	assert.Equal(t, e, m.Ship)
	assert.Equal(t, planet, m.To)
}

func TestAddShipWithoutStar(t *testing.T) {
	s := newTestSim(t)
	s.DeleteBody(s.Star())

	sh := s.Ship(s.AddShip())
	require.NotNil(t, sh)
	assert.Equal(t, r2.Vec{X: 100, Y: 100}, sh.Pos)
	assert.True(t, sh.Idle())
	assert.Empty(t, s.Missions)
}

func TestDeletePlanetRemovesMoons(t *testing.T) {
	s := newTestSim(t)
	p := s.AddPlanet()
	m1 := s.AddMoon(p)
	m2 := s.AddMoon(p)
	require.Len(t, s.Bodies(), 4)

	require.True(t, s.DeleteBody(p))

	assert.Nil(t, s.Body(p))
	assert.Nil(t, s.Body(m1))
	assert.Nil(t, s.Body(m2))
	assert.Len(t, s.Bodies(), 1)
	assert.False(t, s.DeleteBody(p), "already gone")
}

func TestDeleteMoonLeavesSiblings(t *testing.T) {
	s := newTestSim(t)
	p := s.AddPlanet()
	m1 := s.AddMoon(p)
	m2 := s.AddMoon(p)

	require.True(t, s.DeleteBody(m1))

	assert.Equal(t, []ecs.Entity{m2}, s.Body(p).Moons)
	assert.NotNil(t, s.Body(m2))
}

func TestDeleteShip(t *testing.T) {
	s := newTestSim(t)
	e := s.AddShip()

	require.True(t, s.DeleteBody(e))
	assert.Nil(t, s.Ship(e))
	assert.Empty(t, s.Ships())
}

func TestHandlesDoNotCrossKinds(t *testing.T) {
	s := newTestSim(t)
	ship := s.AddShip()

	assert.Nil(t, s.Body(ship))
	assert.Nil(t, s.Ship(s.Star()))
	assert.Nil(t, s.Body(ecs.Entity{}))
	assert.Nil(t, s.Ship(ecs.Entity{}))
}

func TestAcceptMissionToDeletedPlanet(t *testing.T) {
	s := newTestSim(t)
	p := s.AddPlanet()
	s.Body(p).Resource.Set(world.DefaultResource, 100)
	ms := s.GenerateMissions(1)
	require.Len(t, ms, 1)

	s.DeleteBody(p)

	err := s.AcceptMission(ms[0])
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrorTypeInvalidOperation))
	assert.Equal(t, mission.StatusPlanned, ms[0].Status())
}

func TestBoost(t *testing.T) {
	s := newTestSim(t)
	assert.Equal(t, 1.0, s.TimeScale)
	assert.False(t, s.Boosted())

	s.SetBoost(true)
	assert.Equal(t, 4.0, s.TimeScale)
	assert.True(t, s.Boosted())

	s.SetBoost(false)
	assert.Equal(t, 1.0, s.TimeScale)
}
