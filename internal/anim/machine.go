package anim

// Machine is one instance's animation state. Update and TransitionTo must
// be called serially per instance; independent instances need no ordering.
type Machine struct {
	current  State
	previous State

	stateTime float32 // time in the current state; negative while scheduled
	remaining float32 // transition time left, 0 when settled
	total     float32 // full duration of the active transition

	curve     Curve
	overrides map[string]float32
}

// NewMachine returns a machine resting in Hidden.
func NewMachine() *Machine {
	return &Machine{current: Hidden, previous: Hidden}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.current
}

// Previous returns the state before the last transition.
func (m *Machine) Previous() State {
	return m.previous
}

// StateTime returns the time spent in the current state. Scheduled
// instances carry a negative internal marker; external readers see 0.
func (m *Machine) StateTime() float32 {
	if m.stateTime < 0 {
		return 0
	}
	return m.stateTime
}

// IsTransitioning reports whether a cross-fade is in progress.
func (m *Machine) IsTransitioning() bool {
	return m.remaining > 0
}

// CanTransitionTo reports whether the edge current -> target exists.
func (m *Machine) CanTransitionTo(target State) bool {
	_, ok := transitions[m.current][target]
	return ok
}

// TransitionTo starts a cross-fade to target. It returns false without
// mutating state when the edge is not in the transition table.
func (m *Machine) TransitionTo(target State) bool {
	edge, ok := transitions[m.current][target]
	if !ok {
		return false
	}
	m.previous = m.current
	m.current = target
	m.stateTime = 0
	m.remaining = edge.Duration
	m.total = edge.Duration
	m.curve = edge.Curve
	m.overrides = edge.Overrides
	return true
}

// Update advances the machine by dt and returns the blended shape-key
// weight map for this frame.
func (m *Machine) Update(dt float32) map[string]float32 {
	m.stateTime += dt
	if m.remaining > 0 {
		m.remaining -= dt
		if m.remaining < 0 {
			m.remaining = 0
		}
	}
	return m.ShapeKeyValues()
}

// ShapeKeyValues returns the current blended weights. While transitioning,
// each key fades from the previous state's value to the current target with
// blend = 1 - remaining/total; keys absent from the current state fade out
// to 0.
func (m *Machine) ShapeKeyValues() map[string]float32 {
	target := stateDefs[m.current].Weights
	if m.overrides != nil && m.IsTransitioning() {
		merged := make(map[string]float32, len(target)+len(m.overrides))
		for k, v := range target {
			merged[k] = v
		}
		for k, v := range m.overrides {
			merged[k] = v
		}
		target = merged
	}

	if !m.IsTransitioning() || m.total <= 0 {
		out := make(map[string]float32, len(target))
		for k, v := range target {
			out[k] = v
		}
		return out
	}

	blend := m.curve.apply(1 - m.remaining/m.total)
	prev := stateDefs[m.previous].Weights

	out := make(map[string]float32, len(target)+len(prev))
	for k, v := range target {
		out[k] = v
	}
	for k, v := range prev {
		cur := out[k] // 0 when absent: fades out
		out[k] = v + (cur-v)*blend
	}
	for k, v := range target {
		if _, inPrev := prev[k]; !inPrev {
			out[k] = v * blend
		}
	}
	return out
}

// Reset forces the machine back to Hidden with no transition.
func (m *Machine) Reset() {
	m.current = Hidden
	m.previous = Hidden
	m.stateTime = 0
	m.remaining = 0
	m.total = 0
	m.overrides = nil
}
