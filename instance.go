package spritecache

// InstanceUpdate is the full replacement state for one sprite instance.
// Updates have no partial-field semantics: every update overwrites the whole
// instance, so producers default unset numeric fields to 0 and Visible to
// true (Apply does this for the optional command fields).
type InstanceUpdate struct {
	ID           int
	DefinitionID int
	X, Y         float64
	Rotation     float64 // degrees, clockwise about the instance center
	Visible      bool
}

// Instance is one placed occurrence of a definition. An instance whose
// definition is absent (or is a composition) is retained but never rendered.
type Instance struct {
	DefinitionID int
	X, Y         float64
	Rotation     float64 // degrees, clockwise
	Visible      bool
}

// UpdateInstance writes the instance immediately when its definition id is
// known, and otherwise appends the update to the pending queue. Updates are
// never dropped for referencing a not-yet-defined id — command streams may
// deliver updates ahead of their define.
func (s *Stage) UpdateInstance(u InstanceUpdate) {
	if !s.definitionKnown(u.DefinitionID) {
		s.pending = append(s.pending, u)
		s.spritesDirty = true
		s.warnf("update for instance %d queued: definition %d not yet defined", u.ID, u.DefinitionID)
		return
	}
	s.putInstance(u)
}

// putInstance commits an update into the instance store and marks the sprite
// category dirty. First-update order is preserved as the store's iteration
// (and therefore draw) order; replacing an instance keeps its slot.
func (s *Stage) putInstance(u InstanceUpdate) {
	if _, ok := s.instances[u.ID]; !ok {
		s.instOrder = append(s.instOrder, u.ID)
	}
	s.instances[u.ID] = &Instance{
		DefinitionID: u.DefinitionID,
		X:            u.X,
		Y:            u.Y,
		Rotation:     u.Rotation,
		Visible:      u.Visible,
	}
	s.spritesDirty = true
}

// resolvePending moves every queued update that was waiting on defID into the
// instance store and drops it from the queue. Queue order is preserved and
// applied oldest first, so when several queued updates target the same
// instance id the most recently queued one determines the final state.
func (s *Stage) resolvePending(defID int) {
	if len(s.pending) == 0 {
		return
	}
	kept := s.pending[:0]
	for _, u := range s.pending {
		if u.DefinitionID == defID {
			s.putInstance(u)
		} else {
			kept = append(kept, u)
		}
	}
	s.pending = kept
}
