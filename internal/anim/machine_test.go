package anim

import (
	"testing"

	"github.com/bretbouchard/tentaclegen/internal/shapekey"
)

func TestTransitionTable(t *testing.T) {
	validTransitions := map[State][]State{
		Hidden:     {Emerging},
		Emerging:   {Searching, Retracting},
		Searching:  {Grabbing, Attacking, Retracting},
		Grabbing:   {Searching, Attacking, Retracting},
		Attacking:  {Searching, Retracting},
		Retracting: {Hidden},
	}

	allStates := []State{Hidden, Emerging, Searching, Grabbing, Attacking, Retracting}
	for from, validTos := range validTransitions {
		valid := make(map[State]bool)
		for _, to := range validTos {
			valid[to] = true
		}
		for _, to := range allStates {
			m := machineIn(t, from)
			can := m.CanTransitionTo(to)
			if can != valid[to] {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", from, to, can, valid[to])
			}
			got := m.TransitionTo(to)
			if got != valid[to] {
				t.Errorf("TransitionTo(%s -> %s) = %v, want %v", from, to, got, valid[to])
			}
			if !valid[to] && m.State() != from {
				t.Errorf("rejected transition %s -> %s mutated state to %s", from, to, m.State())
			}
		}
	}
}

// machineIn walks a machine along legal edges into the wanted state.
func machineIn(t *testing.T, want State) *Machine {
	t.Helper()
	m := NewMachine()
	paths := map[State][]State{
		Hidden:     {},
		Emerging:   {Emerging},
		Searching:  {Emerging, Searching},
		Grabbing:   {Emerging, Searching, Grabbing},
		Attacking:  {Emerging, Searching, Attacking},
		Retracting: {Emerging, Retracting},
	}
	for _, step := range paths[want] {
		if !m.TransitionTo(step) {
			t.Fatalf("setup transition to %s failed", step)
		}
	}
	return m
}

func TestTransitionResetsTimers(t *testing.T) {
	m := NewMachine()
	m.Update(5)
	if !m.TransitionTo(Emerging) {
		t.Fatal("Hidden -> Emerging rejected")
	}
	if m.StateTime() != 0 {
		t.Errorf("StateTime() = %v, want 0 after transition", m.StateTime())
	}
	if !m.IsTransitioning() {
		t.Error("IsTransitioning() = false right after transition")
	}
	if m.Previous() != Hidden {
		t.Errorf("Previous() = %v, want Hidden", m.Previous())
	}
}

func TestUpdateFloorsRemaining(t *testing.T) {
	m := NewMachine()
	m.TransitionTo(Emerging) // duration 1.2
	m.Update(0.5)
	if !m.IsTransitioning() {
		t.Error("transition ended too early")
	}
	m.Update(10)
	if m.IsTransitioning() {
		t.Error("transition still running after overshooting dt")
	}
	if got := m.StateTime(); got < 10.49 || got > 10.51 {
		t.Errorf("StateTime() = %v, want ~10.5", got)
	}
}

func TestShapeKeyBlend(t *testing.T) {
	m := NewMachine()
	m.TransitionTo(Emerging)

	// Hidden carries compress_75=1; Emerging targets compress_50=0.5.
	// At blend 0 the weights still match Hidden.
	w := m.ShapeKeyValues()
	c75 := shapekey.Compress75.String()
	c50 := shapekey.Compress50.String()
	if w[c75] != 1 {
		t.Errorf("blend 0: %s = %v, want 1", c75, w[c75])
	}
	if w[c50] != 0 {
		t.Errorf("blend 0: %s = %v, want 0", c50, w[c50])
	}

	// Settled: only the Emerging target remains.
	w = m.Update(1.2)
	if w[c75] != 0 {
		t.Errorf("settled: %s = %v, want 0 (faded out)", c75, w[c75])
	}
	if w[c50] != 0.5 {
		t.Errorf("settled: %s = %v, want 0.5", c50, w[c50])
	}
}

func TestShapeKeyBlendMidpointLinear(t *testing.T) {
	// Searching -> Grabbing is a linear-curve edge.
	m := machineIn(t, Searching)
	m.Update(1) // settle the entry transition
	if !m.TransitionTo(Grabbing) {
		t.Fatal("Searching -> Grabbing rejected")
	}
	w := m.Update(0.25) // half of the 0.5s duration
	curlTip := shapekey.CurlTip.String()
	if w[curlTip] < 0.49 || w[curlTip] > 0.51 {
		t.Errorf("mid-blend %s = %v, want ~0.5", curlTip, w[curlTip])
	}
}

func TestTransitionOverrides(t *testing.T) {
	m := machineIn(t, Attacking)
	m.Update(1)
	if !m.TransitionTo(Retracting) {
		t.Fatal("Attacking -> Retracting rejected")
	}
	// The override keeps curl_tip present mid-transition even though
	// Retracting's own pose drops it.
	w := m.Update(0.5)
	curlTip := shapekey.CurlTip.String()
	if w[curlTip] <= 0 {
		t.Errorf("mid-transition %s = %v, want > 0 (override)", curlTip, w[curlTip])
	}
	// Settled pose uses the state's own weights only.
	w = m.Update(1)
	if w[curlTip] != 0 {
		t.Errorf("settled %s = %v, want 0", curlTip, w[curlTip])
	}
}

func TestReset(t *testing.T) {
	m := machineIn(t, Searching)
	m.Update(2)
	m.Reset()
	if m.State() != Hidden {
		t.Errorf("State() = %v after Reset, want Hidden", m.State())
	}
	if m.IsTransitioning() {
		t.Error("IsTransitioning() = true after Reset")
	}
	if m.StateTime() != 0 {
		t.Errorf("StateTime() = %v after Reset, want 0", m.StateTime())
	}
}

func TestStateDefsCoverAllStates(t *testing.T) {
	for _, s := range []State{Hidden, Emerging, Searching, Grabbing, Attacking, Retracting} {
		def := Def(s)
		if def.Weights == nil {
			t.Errorf("state %s has no weight map", s)
		}
		for key, w := range def.Weights {
			if w < 0 || w > 1 {
				t.Errorf("state %s key %s weight %v outside [0,1]", s, key, w)
			}
		}
	}
}
