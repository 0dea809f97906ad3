package game

import "github.com/mlange-42/ark/ecs"

// applyGravityWell pulls every other body toward the black hole and removes
// the ones that crossed its destroy radius. Ships are not affected.
// Removal waits until every body has been pulled.
func (s *Sim) applyGravityWell(hole ecs.Entity, elapsed float64) {
	h := s.Body(hole)
	if h == nil {
		return
	}
	center := h.Pos

	var consumed []ecs.Entity
	for _, e := range s.bodies {
		if e == hole {
			continue
		}
		b := s.Body(e)
		if b == nil {
			continue
		}
		if s.well.Pull(center, b, elapsed) {
			consumed = append(consumed, e)
		}
	}

	for _, e := range consumed {
		b := s.Body(e)
		if b == nil {
			// a moon that went down with its planet
			continue
		}
		name := b.Name
		s.removeBody(e)
		s.Log.Addf(MsgCritical, "%s was swallowed by the black hole.", name)
		s.logger.Debug("body consumed", "name", name, "tick", s.Ticks)
	}
}
