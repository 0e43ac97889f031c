package body

import (
	"fmt"
	gomath "math"

	"github.com/bretbouchard/tentaclegen/internal/mesh"
	"github.com/bretbouchard/tentaclegen/internal/taper"
	vmath "github.com/bretbouchard/tentaclegen/pkg/math"
)

// Generate sweeps a Resolution-vertex ring over Segments+1 stations and
// connects adjacent rings with quads. Generation is a pure function of the
// spec: the same spec (seed included) produces bit-identical vertex arrays.
func Generate(spec Spec) (*mesh.Buffer, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	uniform := spec.SegmentVariation == 0
	stations, err := taper.Distribute(spec.Segments, spec.Length, uniform, spec.SegmentVariation, spec.Seed)
	if err != nil {
		return nil, fmt.Errorf("distributing stations: %w", err)
	}

	profile := taper.NewProfile(spec.Profile, spec.BaseRatio(), spec.ProfilePoints)

	rings := spec.Segments + 1
	buf := mesh.NewBuffer(rings*spec.Resolution, spec.Segments*spec.Resolution)

	angleStep := 2 * gomath.Pi / float64(spec.Resolution)
	for _, z := range stations {
		t := z / spec.Length
		factor, err := profile.RadiusFactorAt(t)
		if err != nil {
			return nil, fmt.Errorf("profile at t=%v: %w", t, err)
		}
		radius := spec.BaseRadius * factor

		// Twist accumulates linearly with position; it never resets
		// between stations.
		twist := float64(spec.TwistAngle * t)
		for j := 0; j < spec.Resolution; j++ {
			angle := twist + float64(j)*angleStep
			buf.AddVertex(vmath.Vec3{
				X: radius * float32(gomath.Cos(angle)),
				Y: radius * float32(gomath.Sin(angle)),
				Z: z,
			})
		}
	}

	// Quads between adjacent rings, counter-clockwise viewed from outside.
	res := uint32(spec.Resolution)
	for s := 0; s < spec.Segments; s++ {
		ringA := uint32(s) * res
		ringB := ringA + res
		for j := uint32(0); j < res; j++ {
			next := (j + 1) % res
			buf.AddQuad(ringA+j, ringA+next, ringB+next, ringB+j)
		}
	}

	return buf, nil
}
