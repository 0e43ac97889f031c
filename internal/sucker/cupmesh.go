package sucker

import (
	gomath "math"

	"github.com/bretbouchard/tentaclegen/internal/mesh"
	vmath "github.com/bretbouchard/tentaclegen/pkg/math"
)

// BuildCupMesh realizes one placed instance as a small cup: an outer rim
// ring, a raised inner lip, and a cavity sinking to a center point. The cup
// opens along the instance normal. resolution is the ring vertex count.
func BuildCupMesh(inst Instance, spec Spec, resolution int) *mesh.Buffer {
	if resolution < 3 {
		resolution = 3
	}

	outerR := inst.Size / 2
	rimW := spec.RimWidth * inst.Size
	if rimW >= outerR {
		rimW = outerR * 0.5
	}
	innerR := outerR - rimW
	lip := spec.Sharpness * rimW
	depth := spec.CupDepth * inst.Size

	// Local frame: cup profile is built around +Z, then rotated onto the
	// outward normal.
	frame := vmath.QuatBetween(vmath.Vec3{Z: 1}, inst.Normal)
	place := func(local vmath.Vec3) vmath.Vec3 {
		return inst.Position.Add(frame.Rotate(local))
	}

	buf := mesh.NewBuffer(2*resolution+1, 2*resolution)
	step := 2 * gomath.Pi / float64(resolution)

	// Outer ring on the body surface, inner lip ring raised outward.
	for j := 0; j < resolution; j++ {
		cos := float32(gomath.Cos(float64(j) * step))
		sin := float32(gomath.Sin(float64(j) * step))
		buf.AddVertex(place(vmath.Vec3{X: outerR * cos, Y: outerR * sin}))
		buf.AddVertex(place(vmath.Vec3{X: innerR * cos, Y: innerR * sin, Z: lip}))
	}
	center := buf.AddVertex(place(vmath.Vec3{Z: lip - depth}))

	res := uint32(resolution)
	for j := uint32(0); j < res; j++ {
		next := (j + 1) % res
		outerA := 2 * j
		innerA := 2*j + 1
		outerB := 2 * next
		innerB := 2*next + 1
		// Rim quad between outer and inner rings.
		buf.AddQuad(outerA, outerB, innerB, innerA)
		// Cavity triangle from the inner ring down to the center.
		buf.AddTri(innerA, innerB, center)
	}
	return buf
}
