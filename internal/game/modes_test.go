package game

import (
	"testing"

	"github.com/spacehole-rogue/missionsim/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwitchToMissions(t *testing.T) {
	s := newTestSim(t)
	s.AddShip()
	s.AddShip()

	s.SwitchToMissions()

	assert.Equal(t, ModeMissions, s.Mode)
	require.Len(t, s.Bodies(), 6)
	require.Len(t, s.Ships(), 1)
	assert.Len(t, s.Missions, 5)

	for i, e := range s.Planets() {
		b := s.Body(e)
		assert.Equal(t, world.DefaultResource, b.Resource.Kind)
		assert.Equal(t, 60+25*(i+1), b.Resource.Amount)
	}

	sh := s.Ship(s.Ships()[0])
	assert.Equal(t, "Explorer", sh.Name)
	assert.Equal(t, 80.0, sh.Speed)
	assert.Equal(t, s.Star(), sh.Source)
	assert.True(t, sh.Idle())
}

func TestSwitchToSandboxKeepsBodies(t *testing.T) {
	s := newTestSim(t)
	s.SwitchToMissions()

	s.SwitchToSandbox()

	assert.Equal(t, ModeSandbox, s.Mode)
	assert.Empty(t, s.Missions)
	assert.Len(t, s.Bodies(), 6)
	assert.Len(t, s.Ships(), 1)
}

func TestResetSandbox(t *testing.T) {
	s := newTestSim(t)
	s.SwitchToMissions()
	s.SetBoost(true)
	s.PlacingBlackHole = true

	s.ResetSandbox()

	assert.Equal(t, ModeSandbox, s.Mode)
	assert.Equal(t, 1.0, s.TimeScale)
	assert.False(t, s.PlacingBlackHole)
	assert.Empty(t, s.Ships())
	assert.Empty(t, s.Missions)
	require.Len(t, s.Bodies(), 4)
	assert.Len(t, s.Planets(), 3)
	assert.False(t, s.Star().IsZero())
}

func TestResetSandboxRemovesBlackHole(t *testing.T) {
	s := newTestSim(t)
	s.BeginPlacingBlackHole()
	require.True(t, s.PlaceBlackHole(0, 0))

	s.ResetSandbox()

	assert.True(t, s.BlackHole().IsZero())
	s.BeginPlacingBlackHole()
	assert.True(t, s.PlacingBlackHole)
}

func TestInitializeSystem(t *testing.T) {
	s := newTestSim(t)
	s.InitializeSystem()

	planets := s.Planets()
	require.Len(t, planets, 5)
	for i, e := range planets {
		assert.Equal(t, 50+30*(i+1), s.Body(e).Resource.Amount)
	}
	assert.Len(t, s.Missions, 5)
	assert.Equal(t, ModeSandbox, s.Mode)
}
