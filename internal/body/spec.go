// Package body generates tapered tubular meshes by sweeping a circular
// cross-section along a parametric spine.
package body

import (
	"errors"
	"fmt"

	"github.com/bretbouchard/tentaclegen/internal/taper"
)

// ErrConfig reports an out-of-range or inconsistent spec field.
// Validation runs before any generation work; a spec never partially applies.
var ErrConfig = errors.New("invalid tentacle spec")

// Field ranges enforced by Validate.
const (
	MinLength     = 0.1
	MaxLength     = 3.0
	MinSegments   = 10
	MaxSegments   = 50
	MinResolution = 16
	MaxResolution = 128
	MaxSubdivs    = 3
)

// Spec describes one tentacle body. It is an immutable value object:
// construct it, validate it, hand it to Generate.
type Spec struct {
	Name       string
	Length     float32 // length units, [0.1, 3.0]
	BaseRadius float32
	TipRadius  float32 // must be < BaseRadius
	Segments   int     // [10, 50]
	Resolution int     // vertices per ring, [16, 128]

	Profile       taper.Kind
	ProfilePoints []taper.ControlPoint // CustomPoints only

	TwistAngle       float32 // radians of twist accumulated base to tip
	SegmentVariation float32 // 0 = uniform stations, up to taper.MaxVariation
	Subdivisions     int     // host-side subdivision hint, [0, 3]
	Seed             int64
}

// Validate checks every field range. All violations wrap ErrConfig.
func (s Spec) Validate() error {
	if s.Length < MinLength || s.Length > MaxLength {
		return fmt.Errorf("%w: length %v outside [%v, %v]", ErrConfig, s.Length, float32(MinLength), float32(MaxLength))
	}
	if s.BaseRadius <= 0 {
		return fmt.Errorf("%w: base radius %v must be positive", ErrConfig, s.BaseRadius)
	}
	if s.TipRadius <= 0 {
		return fmt.Errorf("%w: tip radius %v must be positive", ErrConfig, s.TipRadius)
	}
	if s.TipRadius >= s.BaseRadius {
		return fmt.Errorf("%w: tip radius %v must be smaller than base radius %v", ErrConfig, s.TipRadius, s.BaseRadius)
	}
	if s.Segments < MinSegments || s.Segments > MaxSegments {
		return fmt.Errorf("%w: segments %d outside [%d, %d]", ErrConfig, s.Segments, MinSegments, MaxSegments)
	}
	if s.Resolution < MinResolution || s.Resolution > MaxResolution {
		return fmt.Errorf("%w: resolution %d outside [%d, %d]", ErrConfig, s.Resolution, MinResolution, MaxResolution)
	}
	if s.SegmentVariation < 0 || s.SegmentVariation > taper.MaxVariation {
		return fmt.Errorf("%w: segment variation %v outside [0, %v]", ErrConfig, s.SegmentVariation, float32(taper.MaxVariation))
	}
	if s.Subdivisions < 0 || s.Subdivisions > MaxSubdivs {
		return fmt.Errorf("%w: subdivisions %d outside [0, %d]", ErrConfig, s.Subdivisions, MaxSubdivs)
	}
	if s.Profile == taper.CustomPoints && len(s.ProfilePoints) < 2 {
		return fmt.Errorf("%w: custom profile needs at least 2 control points, got %d", ErrConfig, len(s.ProfilePoints))
	}
	return nil
}

// BaseRatio returns baseRadius / tipRadius.
func (s Spec) BaseRatio() float32 {
	return s.BaseRadius / s.TipRadius
}

// RadiusAt returns the absolute body radius at normalized position t,
// clamping t into [0,1]. Suitable as the radius callback for sucker
// placement.
func (s Spec) RadiusAt(t float32) float32 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	profile := taper.NewProfile(s.Profile, s.BaseRatio(), s.ProfilePoints)
	factor, err := profile.RadiusFactorAt(t)
	if err != nil {
		// Unreachable with clamped t; keep the radius sane regardless.
		return s.TipRadius
	}
	return s.BaseRadius * factor
}
