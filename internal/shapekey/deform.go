package shapekey

import (
	"errors"
	"fmt"

	"github.com/bretbouchard/tentaclegen/internal/mesh"
	vmath "github.com/bretbouchard/tentaclegen/pkg/math"
)

// ErrNoGeometry reports a deformer built from an empty point cloud.
var ErrNoGeometry = errors.New("no geometry to deform")

// maxSqueezeContraction caps the Gaussian squeeze at 30% extra contraction
// at its center.
const maxSqueezeContraction = 0.3

// preservationBulge scales the compensation bulge under compression.
// Empirically tuned against visible deflation; tunable, not structural.
const preservationBulge = 0.3

// curlRadiusFactor sets how far the spiral reaches relative to axis length.
const curlRadiusFactor = 0.3

// Deformer computes displacement fields against a fixed local axis
// estimated from a reference point cloud.
type Deformer struct {
	origin  vmath.Vec3 // axis start at the base
	axisDir vmath.Vec3 // unit direction base -> tip
	axisLen float32
}

// Result is one computed displacement field with summary statistics.
type Result struct {
	Displacements   []vmath.Vec3
	MaxDisplacement float32
	// VolumeChangePct approximates the volume change via bounding boxes of
	// the base and displaced point sets, in percent.
	VolumeChangePct float32
}

// NewDeformer estimates the tentacle's local axis from a reference point
// cloud: base at the bounds' XY center on the low-Z face, tip on the high-Z
// face.
func NewDeformer(points []vmath.Vec3) (*Deformer, error) {
	if len(points) == 0 {
		return nil, ErrNoGeometry
	}
	bounds := mesh.BoundsOf(points)
	center := bounds.Center()
	base := vmath.Vec3{X: center.X, Y: center.Y, Z: bounds.Min.Z}
	tip := vmath.Vec3{X: center.X, Y: center.Y, Z: bounds.Max.Z}
	axis := tip.Sub(base)
	length := axis.Length()
	if length == 0 {
		return nil, fmt.Errorf("%w: degenerate axis", ErrNoGeometry)
	}
	return &Deformer{
		origin:  base,
		axisDir: axis.Scale(1 / length),
		axisLen: length,
	}, nil
}

// Apply computes the displacement field moving verts into the deformed
// pose. verts is not mutated; the caller owns the returned result.
func (d *Deformer) Apply(verts []vmath.Vec3, p Params) *Result {
	displacements := make([]vmath.Vec3, len(verts))
	deformed := make([]vmath.Vec3, len(verts))

	// Perpendicular frame for the curl spiral.
	curlE1, curlE2 := d.perpFrame()

	var maxDisp float32
	for i, v := range verts {
		rel := v.Sub(d.origin)
		axial := rel.Dot(d.axisDir)
		t := vmath.Clamp01(axial / d.axisLen)
		radial := rel.Sub(d.axisDir.Scale(axial))

		// Radial scaling: girth change, then the localized squeeze, then
		// the volume-preservation bulge. The factors compose
		// multiplicatively.
		radialScale := p.DiameterScale
		if p.HasSqueeze {
			falloff := vmath.Gauss(t-p.SqueezeCenter, p.SqueezeWidth)
			radialScale *= 1 - maxSqueezeContraction*falloff
		}
		if p.VolumePreservation > 0 && p.DiameterScale < 1 {
			radialScale *= 1 + (1-p.DiameterScale)*p.VolumePreservation*preservationBulge
		}

		pos := d.origin.Add(d.axisDir.Scale(axial)).Add(radial.Scale(radialScale))

		// Spiral curl of the distal portion.
		if p.CurlAngle != 0 && t >= p.CurlStart && p.CurlStart < 1 {
			progress := (t - p.CurlStart) / (1 - p.CurlStart)
			angle := p.CurlAngle * progress
			curlRadius := progress * d.axisLen * curlRadiusFactor
			offset := curlE1.Scale(curlRadius * (1 - vmath.Cos(angle))).
				Add(curlE2.Scale(curlRadius * vmath.Sin(angle)))
			pos = pos.Add(offset)
		}

		// Axial elongation or compression, growing toward the tip.
		if p.LengthScale != 1 {
			pos = pos.Add(d.axisDir.Scale((p.LengthScale - 1) * t * d.axisLen))
		}

		disp := pos.Sub(v)
		displacements[i] = disp
		deformed[i] = pos
		if l := disp.Length(); l > maxDisp {
			maxDisp = l
		}
	}

	return &Result{
		Displacements:   displacements,
		MaxDisplacement: maxDisp,
		VolumeChangePct: volumeChangePct(verts, deformed),
	}
}

// GenerateAll computes one result per library preset except the Base
// reference pose. Presets are independent; order does not affect outcome.
func (d *Deformer) GenerateAll(verts []vmath.Vec3) map[Preset]*Result {
	results := make(map[Preset]*Result, len(Presets)-1)
	for _, preset := range Presets {
		if preset == Base {
			continue
		}
		results[preset] = d.Apply(verts, preset.Params())
	}
	return results
}

// perpFrame returns two unit vectors spanning the plane perpendicular to
// the axis.
func (d *Deformer) perpFrame() (vmath.Vec3, vmath.Vec3) {
	ref := vmath.Vec3{X: 1}
	if vmath.Abs(d.axisDir.Dot(ref)) > 0.99 {
		ref = vmath.Vec3{Y: 1}
	}
	e1 := d.axisDir.Cross(ref).Normalize()
	e2 := d.axisDir.Cross(e1)
	return e1, e2
}

func volumeChangePct(base, deformed []vmath.Vec3) float32 {
	v0 := mesh.BoundsOf(base).Volume()
	if v0 == 0 {
		return 0
	}
	v1 := mesh.BoundsOf(deformed).Volume()
	return (v1 - v0) / v0 * 100
}
