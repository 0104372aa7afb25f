package types

import "testing"

// ============================================================================
// AliasInfo 测试
// ============================================================================

// TestAliasInfo_Allows 测试白名单判定
func TestAliasInfo_Allows(t *testing.T) {
	info := AliasInfo{
		ServerSignals: []string{"capture"},
		ServerMethods: []string{"get_transform"},
	}

	if !info.AllowsSignal("capture") {
		t.Error("AllowsSignal(capture) = false, want true")
	}
	if info.AllowsSignal("get_transform") {
		t.Error("AllowsSignal(get_transform) = true, want false")
	}
	if !info.AllowsMethod("get_transform") {
		t.Error("AllowsMethod(get_transform) = false, want true")
	}
	if info.AllowsMethod("destroy") {
		t.Error("AllowsMethod(destroy) = true, want false")
	}
}

// TestAliasInfo_Clone 测试深拷贝独立性
func TestAliasInfo_Clone(t *testing.T) {
	orig := AliasInfo{ServerMethods: []string{"distance"}}
	clone := orig.Clone()
	clone.ServerMethods[0] = "mutated"

	if orig.ServerMethods[0] != "distance" {
		t.Error("Clone() shares backing array with original")
	}
}

// ============================================================================
// Datamap 测试
// ============================================================================

// TestDatamap_Detached 测试构造后与原表脱离
func TestDatamap_Detached(t *testing.T) {
	src := map[string]any{"select": float32(0.5)}
	d := NewDatamap(src)
	src["select"] = float32(1.0)

	v, ok := d.Get("select")
	if !ok {
		t.Fatal("Get(select) missing")
	}
	if v.(float32) != 0.5 {
		t.Errorf("Get(select) = %v, want 0.5", v)
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}
}
