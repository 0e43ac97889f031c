package anim

import (
	"errors"
	"fmt"
)

// ErrCoordinator reports an invalid coordinator configuration.
var ErrCoordinator = errors.New("invalid coordinator config")

// Coordinator owns N machines and staggers their emergence. All machines
// are owned exclusively; callers interact only through the coordinator.
type Coordinator struct {
	machines []*Machine

	baseDelay    float32
	staggerDelay float32

	elapsed   float32
	triggered bool
}

// NewCoordinator creates a coordinator over count independent instances.
func NewCoordinator(count int, baseDelay, staggerDelay float32) (*Coordinator, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count %d < 1", ErrCoordinator, count)
	}
	if baseDelay < 0 || staggerDelay < 0 {
		return nil, fmt.Errorf("%w: delays must be non-negative", ErrCoordinator)
	}
	machines := make([]*Machine, count)
	for i := range machines {
		machines[i] = NewMachine()
	}
	return &Coordinator{
		machines:     machines,
		baseDelay:    baseDelay,
		staggerDelay: staggerDelay,
	}, nil
}

// Count returns the number of instances.
func (c *Coordinator) Count() int {
	return len(c.machines)
}

// Instance returns the i-th machine for state inspection.
func (c *Coordinator) Instance(i int) *Machine {
	return c.machines[i]
}

// TriggerEmergence schedules each instance's entrance at
// baseDelay + i*staggerDelay. The pending delay is tracked as a negative
// state-time marker on the instance.
func (c *Coordinator) TriggerEmergence() {
	c.triggered = true
	c.elapsed = 0
	for i, m := range c.machines {
		if m.State() == Hidden {
			m.stateTime = -(c.baseDelay + float32(i)*c.staggerDelay)
		}
	}
}

// Update advances global time, starts any instance whose scheduled delay
// has elapsed, then updates every instance. It returns each instance's
// blended weight map, indexed like the instances.
func (c *Coordinator) Update(dt float32) []map[string]float32 {
	c.elapsed += dt
	weights := make([]map[string]float32, len(c.machines))
	for i, m := range c.machines {
		// A scheduled instance starts once this frame carries it past its
		// delay marker.
		if c.triggered && m.State() == Hidden && m.stateTime+dt >= 0 {
			m.TransitionTo(Emerging)
		}
		weights[i] = m.Update(dt)
	}
	return weights
}

// TriggerRetraction requests Retracting on every instance. Instances whose
// current state has no retraction edge are skipped silently.
func (c *Coordinator) TriggerRetraction() {
	for _, m := range c.machines {
		_ = m.TransitionTo(Retracting)
	}
}

// TriggerAttack requests Attacking on instances currently Searching.
func (c *Coordinator) TriggerAttack() {
	for _, m := range c.machines {
		if m.State() == Searching {
			m.TransitionTo(Attacking)
		}
	}
}

// Reset forces every instance back to Hidden and clears the emergence
// trigger.
func (c *Coordinator) Reset() {
	c.triggered = false
	c.elapsed = 0
	for _, m := range c.machines {
		m.Reset()
	}
}

// Elapsed returns the global time advanced since the last trigger or reset.
func (c *Coordinator) Elapsed() float32 {
	return c.elapsed
}
