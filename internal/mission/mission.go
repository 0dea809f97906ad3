package mission

import (
	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"
	apperrors "github.com/spacehole-rogue/missionsim/internal/shared/errors"
	"github.com/spacehole-rogue/missionsim/internal/world"
)

// Status is the mission lifecycle state.
type Status uint8

const (
	StatusPlanned Status = iota
	StatusInTransit
	StatusCompleted
)

// Type is the kind of work a mission pays for.
type Type uint8

const (
	TypeExplore Type = iota
	TypeGather
	TypeTransport
)

const (
	// distances below this are treated as zero when a mission starts
	distanceEpsilon = 1e-6
	// completion thresholds, either one is sufficient
	arrivalDistance = 1.0
	arrivalProgress = 0.9999
)

// Registry resolves body and ship handles. A handle whose entity is gone
// resolves to nil.
type Registry interface {
	Body(e ecs.Entity) *world.Body
	Ship(e ecs.Entity) *world.Ship
}

// Mission binds a ship to a route and tracks its transit.
type Mission struct {
	ID          uuid.UUID
	Description string
	Type        Type

	From ecs.Entity
	To   ecs.Entity
	Ship ecs.Entity

	ResourceKind   string
	ResourceAmount int
	Reward         int
	RewardClaimed  bool

	status            Status
	progress          float64
	estimatedDuration float64
	initialDistance   float64
}

// New returns a Planned mission from one body to another.
func New(typ Type, description string, from, to ecs.Entity) *Mission {
	return &Mission{
		ID:          uuid.New(),
		Description: description,
		Type:        typ,
		From:        from,
		To:          to,
	}
}

func (m *Mission) Status() Status { return m.status }

func (m *Mission) Progress() float64 { return m.progress }

// EstimatedDuration is the expected transit time in seconds, zero when the
// mission should resolve on its next advance.
func (m *Mission) EstimatedDuration() float64 { return m.estimatedDuration }

// InitialDistance is the ship-to-destination distance captured at start.
func (m *Mission) InitialDistance() float64 { return m.initialDistance }

// CanExtract reports whether the reward is ready to be claimed.
func (m *Mission) CanExtract() bool {
	return m.status == StatusCompleted && !m.RewardClaimed
}

// AssignShip binds a ship without starting the mission.
func (m *Mission) AssignShip(ship ecs.Entity) error {
	if ship.IsZero() {
		return apperrors.InvalidOperation("no ship to assign")
	}
	m.Ship = ship
	return nil
}

// Start places the ship at the source, points it at the destination and
// moves the mission to InTransit. It fails without changing anything when
// the source, destination or ship cannot be resolved.
func (m *Mission) Start(reg Registry) error {
	if m.status != StatusPlanned {
		return apperrors.InvalidOperationf("mission %s already started", m.ID)
	}
	from := reg.Body(m.From)
	if from == nil {
		return apperrors.InvalidOperationf("mission %s has no source", m.ID)
	}
	to := reg.Body(m.To)
	if to == nil {
		return apperrors.InvalidOperationf("mission %s has no destination", m.ID)
	}
	ship := reg.Ship(m.Ship)
	if ship == nil {
		return apperrors.InvalidOperationf("mission %s has no ship assigned", m.ID)
	}

	ship.Pos = from.Pos
	ship.Source = m.From
	ship.Target = m.To

	m.initialDistance = ship.DistanceTo(to)
	if m.initialDistance < distanceEpsilon {
		m.initialDistance = 0
	}

	if ship.Speed <= 0 || m.initialDistance == 0 {
		m.estimatedDuration = 0
	} else {
		m.estimatedDuration = m.initialDistance / ship.Speed
	}

	m.progress = 0
	m.status = StatusInTransit
	return nil
}

// AdvanceTime moves the ship and updates progress. It reports whether the
// mission completed during this call.
func (m *Mission) AdvanceTime(reg Registry, elapsed float64) bool {
	if m.status != StatusInTransit {
		return false
	}
	ship := reg.Ship(m.Ship)
	to := reg.Body(m.To)
	if ship == nil || to == nil {
		return false
	}

	ship.Update(elapsed, reg.Body(ship.Source), reg.Body(ship.Target))

	remaining := ship.DistanceTo(to)

	if m.initialDistance <= 0 {
		if remaining < arrivalDistance {
			m.Complete(reg)
			return true
		}
		return false
	}

	m.progress = clamp01(1 - remaining/m.initialDistance)

	if remaining <= arrivalDistance || m.progress >= arrivalProgress {
		m.Complete(reg)
		return true
	}
	return false
}

// Complete marks the mission done and docks the ship at the destination.
// Call it once per mission.
func (m *Mission) Complete(reg Registry) {
	m.status = StatusCompleted
	m.progress = 1

	ship := reg.Ship(m.Ship)
	to := reg.Body(m.To)
	if ship == nil || to == nil {
		return
	}
	ship.Pos = to.Pos
	ship.Target = ecs.Entity{}
	ship.Source = m.To
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// StatusName returns a label for a mission status.
func StatusName(s Status) string {
	switch s {
	case StatusPlanned:
		return "Planned"
	case StatusInTransit:
		return "In transit"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// TypeName returns a label for a mission type.
func TypeName(t Type) string {
	switch t {
	case TypeExplore:
		return "Explore"
	case TypeGather:
		return "Gather"
	case TypeTransport:
		return "Transport"
	default:
		return "Unknown"
	}
}
