// Package anim drives blended shape-key weights through a per-instance
// finite-state model, with a coordinator for staggered multi-instance
// choreography.
package anim

import (
	"fmt"

	"github.com/bretbouchard/tentaclegen/internal/shapekey"
)

// State is one node of the animation graph.
type State int

const (
	Hidden State = iota
	Emerging
	Searching
	Grabbing
	Attacking
	Retracting
)

// String returns the display name of the state.
func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Emerging:
		return "emerging"
	case Searching:
		return "searching"
	case Grabbing:
		return "grabbing"
	case Attacking:
		return "attacking"
	case Retracting:
		return "retracting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Curve shapes the blend progress during a transition.
type Curve int

const (
	CurveLinear Curve = iota
	CurveSmooth
)

func (c Curve) apply(t float32) float32 {
	if c == CurveSmooth {
		return t * t * (3 - 2*t)
	}
	return t
}

// StateDef is the target pose of a state: shape-key weights, an optional
// idle-motion tag for the host, and whether the state loops.
type StateDef struct {
	Weights map[string]float32
	IdleTag string
	Loop    bool
}

// Transition is one legal edge of the graph.
type Transition struct {
	Duration float32
	Curve    Curve
	// Overrides replace target weights only while the transition runs.
	Overrides map[string]float32
}

// stateDefs maps each state to its target pose. Keys are shape-key preset
// names.
var stateDefs = map[State]StateDef{
	Hidden: {
		Weights: map[string]float32{
			shapekey.Compress75.String(): 1,
		},
	},
	Emerging: {
		Weights: map[string]float32{
			shapekey.Compress50.String(): 0.5,
		},
		IdleTag: "sway",
	},
	Searching: {
		Weights: map[string]float32{},
		IdleTag: "sway",
		Loop:    true,
	},
	Grabbing: {
		Weights: map[string]float32{
			shapekey.CurlTip.String():    1,
			shapekey.SqueezeMid.String(): 0.3,
		},
		Loop: true,
	},
	Attacking: {
		Weights: map[string]float32{
			shapekey.CurlFull.String():  1,
			shapekey.Expand125.String(): 0.4,
		},
	},
	Retracting: {
		Weights: map[string]float32{
			shapekey.Compress75.String():  0.8,
			shapekey.SqueezeBase.String(): 0.4,
		},
	},
}

// transitions is the directed graph of legal edges. Only listed edges may
// be taken.
var transitions = map[State]map[State]Transition{
	Hidden: {
		Emerging: {Duration: 1.2, Curve: CurveSmooth},
	},
	Emerging: {
		Searching:  {Duration: 0.8, Curve: CurveSmooth},
		Retracting: {Duration: 1.0},
	},
	Searching: {
		Grabbing:   {Duration: 0.5},
		Attacking:  {Duration: 0.3, Curve: CurveSmooth},
		Retracting: {Duration: 1.0},
	},
	Grabbing: {
		Searching:  {Duration: 0.6},
		Attacking:  {Duration: 0.4},
		Retracting: {Duration: 1.0},
	},
	Attacking: {
		Searching: {Duration: 0.7},
		Retracting: {
			Duration: 1.0,
			// Ease off the strike pose through a tip curl while pulling back.
			Overrides: map[string]float32{
				shapekey.CurlTip.String():    0.5,
				shapekey.Compress75.String(): 0.8,
			},
		},
	},
	Retracting: {
		Hidden: {Duration: 0.5, Curve: CurveSmooth},
	},
}

// Def returns the target pose of a state.
func Def(s State) StateDef {
	return stateDefs[s]
}
