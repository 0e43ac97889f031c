package sucker

import (
	"testing"

	vmath "github.com/bretbouchard/tentaclegen/pkg/math"
)

func TestBuildCupMeshCounts(t *testing.T) {
	inst := Instance{
		Position: vmath.Vec3{X: 0.04, Y: 0, Z: 0.5},
		Normal:   vmath.Vec3{X: 1, Y: 0, Z: 0},
		Size:     0.02,
	}
	buf := BuildCupMesh(inst, validSpec(), 8)
	if got := buf.VertexCount(); got != 17 {
		t.Errorf("VertexCount() = %d, want 17 (2 rings x 8 + center)", got)
	}
	if got := len(buf.Quads); got != 8 {
		t.Errorf("quad count = %d, want 8", got)
	}
	if got := len(buf.Tris); got != 8 {
		t.Errorf("tri count = %d, want 8", got)
	}
}

func TestBuildCupMeshOrientation(t *testing.T) {
	inst := Instance{
		Position: vmath.Vec3{X: 0.04, Y: 0, Z: 0.5},
		Normal:   vmath.Vec3{X: 1, Y: 0, Z: 0},
		Size:     0.02,
	}
	spec := validSpec()
	buf := BuildCupMesh(inst, spec, 8)

	// The cavity center is the last vertex, sunk below the rim plane along
	// the inward direction (-X here).
	center := buf.Positions[len(buf.Positions)-1]
	if center.X >= inst.Position.X {
		t.Errorf("cavity center X = %v, want < %v (sunk inward)", center.X, inst.Position.X)
	}
	// Ring vertices stay close to the attachment point.
	for i, p := range buf.Positions[:len(buf.Positions)-1] {
		if p.Distance(inst.Position) > inst.Size {
			t.Errorf("vertex %d at %v too far from attachment point", i, p)
		}
	}
}

func TestBuildCupMeshMinResolution(t *testing.T) {
	inst := Instance{Normal: vmath.Vec3{Z: 1}, Size: 0.01}
	buf := BuildCupMesh(inst, validSpec(), 1)
	if got := buf.VertexCount(); got != 7 {
		t.Errorf("VertexCount() with clamped resolution = %d, want 7", got)
	}
}
