package game

import (
	"encoding/json"

	"github.com/mlange-42/ark/ecs"
	"github.com/spacehole-rogue/missionsim/internal/mission"
	apperrors "github.com/spacehole-rogue/missionsim/internal/shared/errors"
	"github.com/spacehole-rogue/missionsim/internal/world"
)

// Snapshot is the exported view of the world. Handles are replaced by
// indexes into Bodies and Ships so the file does not depend on entity ids.
type Snapshot struct {
	Mode     string            `json:"mode"`
	Ticks    uint64            `json:"ticks"`
	Elapsed  float64           `json:"elapsed"`
	Credits  int               `json:"credits"`
	Bodies   []BodySnapshot    `json:"bodies"`
	Ships    []ShipSnapshot    `json:"ships"`
	Missions []MissionSnapshot `json:"missions"`
}

type BodySnapshot struct {
	Kind        string  `json:"kind"`
	Name        string  `json:"name"`
	Mass        float64 `json:"mass"`
	OrbitRadius float64 `json:"orbit_radius"`
	OrbitPeriod float64 `json:"orbit_period"`
	Angle       float64 `json:"angle"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Parent      *int    `json:"parent,omitempty"`
	Moons       []int   `json:"moons,omitempty"`
	Resource    string  `json:"resource,omitempty"`
	Amount      int     `json:"amount,omitempty"`
}

type ShipSnapshot struct {
	Name   string  `json:"name"`
	Speed  float64 `json:"speed"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Source *int    `json:"source,omitempty"`
	Target *int    `json:"target,omitempty"`
}

type MissionSnapshot struct {
	ID                string  `json:"id"`
	Description       string  `json:"description"`
	Type              string  `json:"type"`
	Status            string  `json:"status"`
	From              *int    `json:"from,omitempty"`
	To                *int    `json:"to,omitempty"`
	Ship              *int    `json:"ship,omitempty"`
	Progress          float64 `json:"progress"`
	EstimatedDuration float64 `json:"estimated_duration"`
	ResourceKind      string  `json:"resource_kind,omitempty"`
	ResourceAmount    int     `json:"resource_amount,omitempty"`
	Reward            int     `json:"reward"`
	RewardClaimed     bool    `json:"reward_claimed"`
}

// Snapshot captures bodies, ships, missions and credits.
func (s *Sim) Snapshot() Snapshot {
	bodyIdx := indexOf(s.bodies)
	shipIdx := indexOf(s.ships)

	snap := Snapshot{
		Mode:     ModeName(s.Mode),
		Ticks:    s.Ticks,
		Elapsed:  s.Elapsed,
		Credits:  s.Credits,
		Bodies:   make([]BodySnapshot, 0, len(s.bodies)),
		Ships:    make([]ShipSnapshot, 0, len(s.ships)),
		Missions: make([]MissionSnapshot, 0, len(s.Missions)),
	}

	for _, e := range s.bodies {
		b := s.Body(e)
		if b == nil {
			continue
		}
		bs := BodySnapshot{
			Kind:        world.KindName(b.Kind),
			Name:        b.Name,
			Mass:        b.Mass,
			OrbitRadius: b.OrbitRadius,
			OrbitPeriod: b.OrbitPeriod,
			Angle:       b.Angle,
			X:           b.Pos.X,
			Y:           b.Pos.Y,
			Parent:      bodyIdx.lookup(b.Parent),
		}
		for _, m := range b.Moons {
			if i := bodyIdx.lookup(m); i != nil {
				bs.Moons = append(bs.Moons, *i)
			}
		}
		if b.Kind == world.KindPlanet {
			bs.Resource = b.Resource.Kind
			bs.Amount = b.Resource.Amount
		}
		snap.Bodies = append(snap.Bodies, bs)
	}

	for _, e := range s.ships {
		sh := s.Ship(e)
		if sh == nil {
			continue
		}
		snap.Ships = append(snap.Ships, ShipSnapshot{
			Name:   sh.Name,
			Speed:  sh.Speed,
			X:      sh.Pos.X,
			Y:      sh.Pos.Y,
			Source: bodyIdx.lookup(sh.Source),
			Target: bodyIdx.lookup(sh.Target),
		})
	}

	for _, m := range s.Missions {
		snap.Missions = append(snap.Missions, MissionSnapshot{
			ID:                m.ID.String(),
			Description:       m.Description,
			Type:              mission.TypeName(m.Type),
			Status:            mission.StatusName(m.Status()),
			From:              bodyIdx.lookup(m.From),
			To:                bodyIdx.lookup(m.To),
			Ship:              shipIdx.lookup(m.Ship),
			Progress:          m.Progress(),
			EstimatedDuration: m.EstimatedDuration(),
			ResourceKind:      m.ResourceKind,
			ResourceAmount:    m.ResourceAmount,
			Reward:            m.Reward,
			RewardClaimed:     m.RewardClaimed,
		})
	}
	return snap
}

// Export renders the world as indented JSON. There is no matching import.
func (s *Sim) Export() ([]byte, error) {
	data, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		return nil, apperrors.WrapInternal("export world", err)
	}
	return data, nil
}

type entityIndex map[ecs.Entity]int

func indexOf(handles []ecs.Entity) entityIndex {
	idx := make(entityIndex, len(handles))
	for i, e := range handles {
		idx[e] = i
	}
	return idx
}

// lookup returns the position of e, or nil for zero and unknown handles.
func (idx entityIndex) lookup(e ecs.Entity) *int {
	if e.IsZero() {
		return nil
	}
	i, ok := idx[e]
	if !ok {
		return nil
	}
	return &i
}
