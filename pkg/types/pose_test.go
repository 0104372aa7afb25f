package types

import (
	"math"
	"testing"
)

// ============================================================================
// Vector3 测试
// ============================================================================

// TestVector3_Length 测试向量长度
func TestVector3_Length(t *testing.T) {
	v := Vector3{X: 3, Y: 4, Z: 0}
	if got := v.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
}

// TestVector3_DistanceTo 测试两点距离
func TestVector3_DistanceTo(t *testing.T) {
	a := Vector3{X: 1, Y: 2, Z: 3}
	b := Vector3{X: 1, Y: 2, Z: 3}
	if got := a.DistanceTo(b); got != 0 {
		t.Errorf("DistanceTo(self) = %v, want 0", got)
	}

	c := Vector3{X: 1, Y: 2, Z: 0}
	d := Vector3{X: 1, Y: 2, Z: 7}
	if got := c.DistanceTo(d); math.Abs(float64(got-7)) > 1e-6 {
		t.Errorf("DistanceTo() = %v, want 7", got)
	}
}

// ============================================================================
// Pose 测试
// ============================================================================

// TestPose_Identity 测试原点位姿
func TestPose_Identity(t *testing.T) {
	if IdentityPose.Position != (Vector3{}) {
		t.Errorf("IdentityPose.Position = %v, want origin", IdentityPose.Position)
	}
	if IdentityPose.Orientation != IdentityQuaternion {
		t.Errorf("IdentityPose.Orientation = %v, want identity", IdentityPose.Orientation)
	}
}

// TestPose_PoseAt 测试指定位置位姿
func TestPose_PoseAt(t *testing.T) {
	p := PoseAt(Vector3{X: 1, Y: 2, Z: 3})
	if p.Position != (Vector3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("PoseAt() position = %v", p.Position)
	}
	if p.Orientation.W != 1 {
		t.Errorf("PoseAt() orientation = %v, want identity", p.Orientation)
	}
}
