// Package shapekey computes per-vertex displacement fields that approximate
// squeeze, expand and curl deformations on top of a base tentacle mesh.
package shapekey

import "fmt"

// Preset names a deformation in the shipped library.
type Preset int

const (
	Base Preset = iota
	Compress50
	Compress75
	Expand125
	CurlTip
	CurlFull
	SqueezeTip
	SqueezeMid
	SqueezeBase
	SqueezeLocal
)

// Presets lists every library entry including the Base reference pose.
var Presets = []Preset{
	Base, Compress50, Compress75, Expand125,
	CurlTip, CurlFull,
	SqueezeTip, SqueezeMid, SqueezeBase, SqueezeLocal,
}

// String returns the morph-target name used by hosts and animation states.
func (p Preset) String() string {
	switch p {
	case Base:
		return "base"
	case Compress50:
		return "compress_50"
	case Compress75:
		return "compress_75"
	case Expand125:
		return "expand_125"
	case CurlTip:
		return "curl_tip"
	case CurlFull:
		return "curl_full"
	case SqueezeTip:
		return "squeeze_tip"
	case SqueezeMid:
		return "squeeze_mid"
	case SqueezeBase:
		return "squeeze_base"
	case SqueezeLocal:
		return "squeeze_local"
	default:
		return fmt.Sprintf("Preset(%d)", int(p))
	}
}

// Params is a pure, stateless deformation description. Many presets may
// share one base mesh concurrently; nothing here mutates.
type Params struct {
	DiameterScale float32 // radial scale, 1 = unchanged
	LengthScale   float32 // axial scale, 1 = unchanged

	HasSqueeze    bool    // localized Gaussian contraction enabled
	SqueezeCenter float32 // normalized position of the squeeze
	SqueezeWidth  float32 // Gaussian sigma in normalized length

	CurlAngle float32 // total spiral angle in radians, 0 = no curl
	CurlStart float32 // normalized position where the curl begins

	VolumePreservation float32 // [0,1], counteracts deflation under compression
}

// Params returns the deformation parameters for the preset.
func (p Preset) Params() Params {
	switch p {
	case Compress50:
		return Params{DiameterScale: 0.5, LengthScale: 1, VolumePreservation: 0.5}
	case Compress75:
		return Params{DiameterScale: 0.25, LengthScale: 1, VolumePreservation: 0.5}
	case Expand125:
		return Params{DiameterScale: 1.25, LengthScale: 1}
	case CurlTip:
		return Params{DiameterScale: 1, LengthScale: 1, CurlAngle: 3.14159265, CurlStart: 0.6}
	case CurlFull:
		return Params{DiameterScale: 1, LengthScale: 1, CurlAngle: 4.71238898, CurlStart: 0.1}
	case SqueezeTip:
		return Params{DiameterScale: 1, LengthScale: 1, HasSqueeze: true, SqueezeCenter: 0.8, SqueezeWidth: 0.15}
	case SqueezeMid:
		return Params{DiameterScale: 1, LengthScale: 1, HasSqueeze: true, SqueezeCenter: 0.5, SqueezeWidth: 0.2}
	case SqueezeBase:
		return Params{DiameterScale: 1, LengthScale: 1, HasSqueeze: true, SqueezeCenter: 0.2, SqueezeWidth: 0.2}
	case SqueezeLocal:
		return Params{DiameterScale: 1, LengthScale: 1, HasSqueeze: true, SqueezeCenter: 0.5, SqueezeWidth: 0.08}
	default:
		return Params{DiameterScale: 1, LengthScale: 1}
	}
}
