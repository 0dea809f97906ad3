package world

import (
	"testing"

	apperrors "github.com/spacehole-rogue/missionsim/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPreset(t *testing.T) {
	data := []byte(`{
		"name": "solar",
		"bodies": [
			{"kind": "star", "name": "Sol", "mass": 1000, "x": 400, "y": 300},
			{"kind": "planet", "name": "Earth", "mass": 1, "orbit_radius": 100, "orbit_period": 365, "x": 500, "y": 300, "parent": 0, "amount": 90},
			{"kind": "moon", "name": "Moon", "mass": 0.1, "orbit_radius": 20, "orbit_period": 27, "parent": 1}
		]
	}`)

	p, err := LoadPreset(data)
	require.NoError(t, err)
	require.Len(t, p.Bodies, 3)

	earth := p.Bodies[1].Body()
	assert.Equal(t, KindPlanet, earth.Kind)
	assert.Equal(t, 100.0, earth.OrbitRadius)
	assert.Equal(t, 500.0, earth.Pos.X)
	assert.Equal(t, DefaultResource, earth.Resource.Kind)
	assert.Equal(t, 90, earth.Resource.Amount)
	assert.Equal(t, float64(PlanetSize), earth.DisplaySize)

	moon := p.Bodies[2].Body()
	assert.Equal(t, KindMoon, moon.Kind)
	assert.Equal(t, float64(MoonSize), moon.DisplaySize)
}

func TestLoadPresetRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad json", `{"name": `},
		{"empty", `{"name": "x", "bodies": []}`},
		{"unknown kind", `{"name": "x", "bodies": [{"kind": "comet"}]}`},
		{"orphan moon", `{"name": "x", "bodies": [{"kind": "moon"}]}`},
		{"forward parent", `{"name": "x", "bodies": [{"kind": "planet", "parent": 1}, {"kind": "star"}]}`},
		{"self parent", `{"name": "x", "bodies": [{"kind": "star"}, {"kind": "planet", "parent": 1}]}`},
		{"moon of star", `{"name": "x", "bodies": [{"kind": "star"}, {"kind": "moon", "parent": 0}]}`},
		{"star with parent", `{"name": "x", "bodies": [{"kind": "star"}, {"kind": "star", "parent": 0}]}`},
		{"two black holes", `{"name": "x", "bodies": [{"kind": "blackhole"}, {"kind": "star"}, {"kind": "blackhole"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPreset([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.GetType(err))
		})
	}
}
