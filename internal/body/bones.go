package body

import (
	"fmt"

	"github.com/bretbouchard/tentaclegen/internal/mesh"
	vmath "github.com/bretbouchard/tentaclegen/pkg/math"
)

// BoneChain computes joint positions for a rig spanning the mesh bounds:
// count+1 joints spaced evenly along the Z extent at the bounds' XY center.
// Creating host skeleton objects from these positions is the host's job.
func BoneChain(bounds mesh.Bounds, count int) ([]vmath.Vec3, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: bone count %d < 1", ErrConfig, count)
	}
	center := bounds.Center()
	span := bounds.Max.Z - bounds.Min.Z
	joints := make([]vmath.Vec3, count+1)
	for i := range joints {
		t := float32(i) / float32(count)
		joints[i] = vmath.Vec3{
			X: center.X,
			Y: center.Y,
			Z: bounds.Min.Z + span*t,
		}
	}
	return joints, nil
}
