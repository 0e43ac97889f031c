// Package taper provides the 1-D math under tentacle body generation:
// radius profiles along the length and segment station distribution.
package taper

import (
	"errors"
	"fmt"
	"sort"

	vmath "github.com/bretbouchard/tentaclegen/pkg/math"
)

// ErrDomain reports a profile evaluated outside its declared [0,1] domain.
var ErrDomain = errors.New("position outside [0,1] domain")

// organicBulge controls the mid-bulge magnitude of the organic profile.
// Empirically tuned for the fleshy silhouette; tunable, not structural.
const organicBulge = 0.3

// defaultMidPoint is the inflection position of the organic profile.
const defaultMidPoint = 0.4

// Kind selects the taper curve family.
type Kind int

const (
	Linear Kind = iota
	Smooth
	Organic
	CustomPoints
)

// String returns the config-file name of the kind.
func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Smooth:
		return "smooth"
	case Organic:
		return "organic"
	case CustomPoints:
		return "custom"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a config-file name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "linear":
		return Linear, nil
	case "smooth":
		return Smooth, nil
	case "organic":
		return Organic, nil
	case "custom":
		return CustomPoints, nil
	default:
		return Linear, fmt.Errorf("unknown taper kind %q", s)
	}
}

// ControlPoint is one node of a custom piecewise-linear profile.
type ControlPoint struct {
	Position     float32 // normalized position along the length, [0,1]
	RadiusFactor float32 // radius scale at that position, [0,2]
}

// Profile maps normalized position along the tentacle to a radius factor.
// The factor is relative to the base radius: 1 at the base, 1/baseRatio at
// the tip for the closed-form kinds.
type Profile struct {
	kind       Kind
	baseRatio  float32 // baseRadius / tipRadius, > 1 for a tapering body
	smoothness float32
	midPoint   float32
	points     []ControlPoint // sorted by Position, CustomPoints only
}

// NewProfile builds a profile of the given kind. baseRatio is
// baseRadius/tipRadius. points are only consulted for CustomPoints and are
// sorted by position; they may be supplied in any order.
func NewProfile(kind Kind, baseRatio float32, points []ControlPoint) *Profile {
	sorted := make([]ControlPoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return &Profile{
		kind:       kind,
		baseRatio:  baseRatio,
		smoothness: 1,
		midPoint:   defaultMidPoint,
		points:     sorted,
	}
}

// RadiusFactorAt evaluates the profile at normalized position t.
// The closed-form kinds are total on [0,1] and return ErrDomain outside it;
// CustomPoints clamps out-of-range t to the nearest endpoint instead.
func (p *Profile) RadiusFactorAt(t float32) (float32, error) {
	if p.kind == CustomPoints {
		return p.customAt(t), nil
	}
	if t < 0 || t > 1 {
		return 0, fmt.Errorf("%w: t=%v", ErrDomain, t)
	}

	tipFactor := float32(1)
	if p.baseRatio > 0 {
		tipFactor = 1 / p.baseRatio
	}

	switch p.kind {
	case Linear:
		return 1 - t*(1-tipFactor), nil
	case Smooth:
		return 1 - vmath.Smoothstep(t)*(1-tipFactor), nil
	case Organic:
		return p.organicAt(t, tipFactor), nil
	default:
		return 1, nil
	}
}

// organicAt is a two-piece curve: a smoothstep swell toward a mid bulge
// below the inflection point, then quadratic acceleration down to the tip
// factor. This gives the bulbous base and fast distal taper a plain
// linear or smooth curve cannot.
func (p *Profile) organicAt(t, tipFactor float32) float32 {
	bulge := 1 + p.smoothness*organicBulge
	if t < p.midPoint {
		u := vmath.Smoothstep(t / p.midPoint)
		return vmath.Lerp(1, bulge, u)
	}
	u := (t - p.midPoint) / (1 - p.midPoint)
	return bulge + (tipFactor-bulge)*u*u
}

// customAt linearly interpolates sorted control points, clamping beyond
// the extremes.
func (p *Profile) customAt(t float32) float32 {
	if len(p.points) == 0 {
		return 1
	}
	if t <= p.points[0].Position {
		return p.points[0].RadiusFactor
	}
	last := p.points[len(p.points)-1]
	if t >= last.Position {
		return last.RadiusFactor
	}
	for i := 1; i < len(p.points); i++ {
		if t <= p.points[i].Position {
			a := p.points[i-1]
			b := p.points[i]
			span := b.Position - a.Position
			if span <= 0 {
				return b.RadiusFactor
			}
			u := (t - a.Position) / span
			return vmath.Lerp(a.RadiusFactor, b.RadiusFactor, u)
		}
	}
	return last.RadiusFactor
}
