package body

import (
	"errors"
	"testing"

	"github.com/bretbouchard/tentaclegen/internal/mesh"
	vmath "github.com/bretbouchard/tentaclegen/pkg/math"
)

func TestBoneChain(t *testing.T) {
	bounds := mesh.Bounds{
		Min: vmath.Vec3{X: -0.05, Y: -0.05, Z: 0},
		Max: vmath.Vec3{X: 0.05, Y: 0.05, Z: 1.0},
	}
	joints, err := BoneChain(bounds, 4)
	if err != nil {
		t.Fatalf("BoneChain error: %v", err)
	}
	if len(joints) != 5 {
		t.Fatalf("joint count = %d, want 5", len(joints))
	}
	if joints[0].Z != 0 {
		t.Errorf("first joint Z = %v, want 0", joints[0].Z)
	}
	if joints[4].Z != 1.0 {
		t.Errorf("last joint Z = %v, want 1.0", joints[4].Z)
	}
	for _, j := range joints {
		if j.X != 0 || j.Y != 0 {
			t.Errorf("joint %v not on bounds center axis", j)
		}
	}
	// Even spacing.
	for i := 1; i < len(joints); i++ {
		gap := joints[i].Z - joints[i-1].Z
		if gap < 0.249 || gap > 0.251 {
			t.Errorf("joint gap %d = %v, want ~0.25", i, gap)
		}
	}
}

func TestBoneChainRejectsZeroCount(t *testing.T) {
	if _, err := BoneChain(mesh.Bounds{}, 0); !errors.Is(err, ErrConfig) {
		t.Errorf("BoneChain(0) error = %v, want ErrConfig", err)
	}
}
