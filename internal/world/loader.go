package world

import (
	"encoding/json"
	"fmt"

	"github.com/mlange-42/ark/ecs"
	apperrors "github.com/spacehole-rogue/missionsim/internal/shared/errors"
)

// Preset is the JSON-serializable definition of a starting scene.
type Preset struct {
	Name   string     `json:"name"`
	Title  string     `json:"title"`
	Bodies []BodySpec `json:"bodies"`
}

// BodySpec defines one body in a preset. Parent is an index into the
// preset's body list and must refer to an earlier entry, so parent chains
// are acyclic by construction.
type BodySpec struct {
	Kind        string  `json:"kind"`
	Name        string  `json:"name"`
	Mass        float64 `json:"mass"`
	OrbitRadius float64 `json:"orbit_radius"`
	OrbitPeriod float64 `json:"orbit_period"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Parent      *int    `json:"parent,omitempty"`
	Resource    string  `json:"resource,omitempty"`
	Amount      int     `json:"amount,omitempty"`
}

// LoadPreset parses and validates a Preset from JSON bytes.
func LoadPreset(data []byte) (*Preset, error) {
	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, apperrors.WrapValidation("parse preset", err)
	}
	if len(p.Bodies) == 0 {
		return nil, apperrors.Validationf("preset %q has no bodies", p.Name)
	}

	holes := 0
	for i, spec := range p.Bodies {
		kind, ok := ParseKind(spec.Kind)
		if !ok {
			return nil, apperrors.Validationf("preset %q body %d: unknown kind %q", p.Name, i, spec.Kind)
		}
		if kind == KindBlackHole {
			holes++
			if holes > 1 {
				return nil, apperrors.Validationf("preset %q body %d: only one black hole is allowed", p.Name, i)
			}
		}
		if spec.Parent == nil {
			if kind == KindMoon {
				return nil, apperrors.Validationf("preset %q body %d: moon %q needs a parent", p.Name, i, spec.Name)
			}
			continue
		}
		parent := *spec.Parent
		if parent < 0 || parent >= i {
			return nil, apperrors.Validationf("preset %q body %d: parent %d must be an earlier body", p.Name, i, parent)
		}
		if err := checkParentKind(kind, p.Bodies[parent].Kind); err != nil {
			return nil, fmt.Errorf("preset %q body %d: %w", p.Name, i, err)
		}
	}
	return &p, nil
}

func checkParentKind(child BodyKind, parentKind string) error {
	pk, _ := ParseKind(parentKind)
	switch child {
	case KindPlanet:
		if pk != KindStar {
			return apperrors.Validationf("planet parent must be a star, got %s", parentKind)
		}
	case KindMoon:
		if pk != KindPlanet {
			return apperrors.Validationf("moon parent must be a planet, got %s", parentKind)
		}
	case KindStar, KindBlackHole:
		return apperrors.Validationf("%s cannot have a parent", KindName(child))
	}
	return nil
}

// Body builds the Body described by spec, without its parent handle.
func (spec BodySpec) Body() Body {
	kind, _ := ParseKind(spec.Kind)

	var (
		b    Body
		none ecs.Entity
	)
	switch kind {
	case KindStar:
		b = NewStar(spec.Name, spec.Mass)
		b.OrbitPeriod = spec.OrbitPeriod
	case KindPlanet:
		b = NewPlanet(spec.Name, spec.Mass, spec.OrbitRadius, spec.OrbitPeriod, none)
		if spec.Resource != "" || spec.Amount > 0 {
			res := spec.Resource
			if res == "" {
				res = DefaultResource
			}
			b.Resource.Set(res, spec.Amount)
		}
	case KindMoon:
		b = NewMoon(spec.Name, spec.Mass, spec.OrbitRadius, spec.OrbitPeriod, none)
	case KindBlackHole:
		b = NewBlackHole(spec.X, spec.Y)
		if spec.Name != "" {
			b.Name = spec.Name
		}
	}
	b.Pos.X = spec.X
	b.Pos.Y = spec.Y
	return b
}
